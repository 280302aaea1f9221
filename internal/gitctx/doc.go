// Package gitctx queries a git repository's index by shelling out to git.
//
// [Repo] lists the paths staged for the next commit and returns the staged
// diff of a single path. Every query is read-only: nothing in this package
// modifies the index, the working tree or refs.
package gitctx
