// Package github adapts the GitHub REST API to the RepositoryHost port.
//
// Requests are unthrottled and never retried. The pipeline makes one call
// per repository plus one per extracted entry, so large organizations run
// into GitHub's rate limits; that limitation is inherited from the tool's
// design and deliberately not papered over here.
package github
