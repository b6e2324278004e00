// Package page decides what the user wants to see.
//
// A [Parser] turns zero to two free-form arguments into exactly one [Page]:
//
//	brws                 Open (repository or branch)
//	brws '#12'           Issue
//	brws main.go#L3-L9   FileOrDir with a line range
//	brws src v1.2.0      FileOrDir at a revision
//	brws main...feature  Diff
//	brws v1.2.0          Tag
//	brws HEAD~3          Commit
//
// Interpretations are tried in that order and the first success wins. When
// none succeeds, [ParseError] reports why each one was rejected.
//
// For files, the commit is replaced by the branch name when the
// remote-tracking branch doesn't contain it yet, so the link opens a page
// that exists on the remote.
package page
