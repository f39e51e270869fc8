// Package forge integrates with git hosting CLIs.
//
// Two providers are supported: GitHub through the gh CLI and GitLab
// through the glab CLI. Both materialize change requests (pull/merge
// requests) the same way: fetch the request's metadata as JSON, derive a
// filesystem-safe worktree name from its source branch, and fetch that
// branch from the remote.
//
// Never call gh or glab outside this package.
package forge
