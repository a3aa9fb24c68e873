package driven

import "context"

// RepositoryHost provides read access to a source-control hosting API.
//
// The fetch methods treat any non-success response as absence and return an
// empty string with a nil error. Absence is an expected, frequent outcome
// for this pipeline (repositories without READMEs, markers pointing at
// files that no longer exist), not an exceptional one. Only listing
// failures are errors: without the repository list nothing else can run.
type RepositoryHost interface {
	// ListRepositories returns the names of the organization's public
	// repositories, a single page of up to 100 entries, in API order.
	ListRepositories(ctx context.Context, org string) ([]string, error)

	// FetchReadme returns the decoded text of the repository's default
	// README, or "" if the repository has none.
	FetchReadme(ctx context.Context, org, repo string) (string, error)

	// FetchFile returns the decoded text of the file at path, or "" if the
	// file does not exist or cannot be fetched.
	FetchFile(ctx context.Context, org, repo, path string) (string, error)

	// BrowseURL returns the web URL for viewing the file on the host.
	BrowseURL(org, repo, path string) string
}
