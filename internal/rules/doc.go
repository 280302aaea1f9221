// Package rules holds the sensitivity rule tables used to flag staged files.
//
// A [Set] combines three ordered lists: filename substrings matched against
// the lowercased path, case-insensitive regular expressions matched against
// the staged diff text, and directory prefixes whose files are never
// checked. The built-in tables ([DefaultSensitiveFiles],
// [DefaultSensitivePatterns], [DefaultSkipDirectories]) are always present;
// [Compile] appends user-supplied entries after them.
package rules
