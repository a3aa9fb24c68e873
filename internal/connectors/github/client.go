package github

import (
	"context"
	"strings"
	"time"

	gh "github.com/google/go-github/v80/github"
	"golang.org/x/oauth2"

	"github.com/discord-account-support-corp/answers-indexer/internal/core/ports/driven"
)

const (
	// DefaultTimeout is the default HTTP request timeout.
	DefaultTimeout = 30 * time.Second

	// repoPageSize bounds the single repository listing request.
	repoPageSize = 100
)

// Ensure Client implements the interface.
var _ driven.RepositoryHost = (*Client)(nil)

// Client wraps the go-github client with the three lookups the pipeline
// needs.
type Client struct {
	gh *gh.Client
}

// NewClient creates a GitHub API client authenticated with a static token.
func NewClient(ctx context.Context, token string) *Client {
	ts := oauth2.StaticTokenSource(
		&oauth2.Token{AccessToken: token},
	)
	tc := oauth2.NewClient(ctx, ts)
	tc.Timeout = DefaultTimeout

	return &Client{gh: gh.NewClient(tc)}
}

// NewFromGitHub wraps an existing go-github client. Used by tests to point
// the adapter at a local server.
func NewFromGitHub(client *gh.Client) *Client {
	return &Client{gh: client}
}

// ListRepositories returns the names of the organization's public
// repositories in the order the API returns them. Only the first page (up
// to 100 entries) is requested; NextPage is deliberately ignored.
func (c *Client) ListRepositories(ctx context.Context, org string) ([]string, error) {
	opts := &gh.RepositoryListByOrgOptions{
		Type:        "public",
		ListOptions: gh.ListOptions{PerPage: repoPageSize},
	}

	repos, _, err := c.gh.Repositories.ListByOrg(ctx, org, opts)
	if err != nil {
		return nil, wrapError(err, "list repos")
	}

	names := make([]string, 0, len(repos))
	for _, r := range repos {
		names = append(names, r.GetName())
	}
	return names, nil
}

// FetchReadme returns the decoded text of the repository's default README,
// or "" when the repository has none. Any API failure counts as absence.
func (c *Client) FetchReadme(ctx context.Context, org, repo string) (string, error) {
	content, _, err := c.gh.Repositories.GetReadme(ctx, org, repo, nil)
	if err != nil {
		if ctx.Err() != nil {
			return "", ctx.Err()
		}
		return "", nil
	}
	return decode(content), nil
}

// FetchFile returns the decoded text of the file at path, or "" when the
// file is missing, is a directory, or the request fails.
func (c *Client) FetchFile(ctx context.Context, org, repo, path string) (string, error) {
	content, _, _, err := c.gh.Repositories.GetContents(ctx, org, repo, path, nil)
	if err != nil {
		if ctx.Err() != nil {
			return "", ctx.Err()
		}
		return "", nil
	}
	return decode(content), nil
}

// decode extracts a file's text. go-github handles the transport base64;
// bytes that are not valid UTF-8 are dropped rather than failing the fetch.
func decode(content *gh.RepositoryContent) string {
	if content == nil {
		return ""
	}
	text, err := content.GetContent()
	if err != nil {
		return ""
	}
	return strings.ToValidUTF8(text, "")
}
