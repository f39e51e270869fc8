// Package git wraps the git CLI.
//
// All operations go through an injected [cmd.Runner] rather than a Go git
// library. Shelling out keeps gwm compatible with user configuration (SSH
// keys, credential helpers, aliases) and makes every query testable with
// a fake runner.
//
// Queries that answer "does X exist" interpret a non-zero exit as false
// and never surface the underlying error; operations whose output the
// caller needs fail with [*Error] carrying the command's stderr.
package git
