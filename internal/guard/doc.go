// Package guard decides whether an agent's shell command may run when that
// command would create a git commit.
//
// The harness sends a PreToolUse event on stdin. [Guard.Run] parses it and,
// for Bash commands containing "git commit", checks every staged file
// against a [rules.Set]. When anything matches it writes a deny decision as
// JSON; otherwise it writes nothing. Malformed input and git failures always
// resolve to allow: the guard never blocks a commit because of its own
// malfunction.
package guard
