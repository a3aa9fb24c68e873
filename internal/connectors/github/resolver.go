package github

import "fmt"

// BrowseURL returns the github.com web URL for a file on the main branch.
// org/repo/path -> https://github.com/org/repo/blob/main/path
func (c *Client) BrowseURL(org, repo, path string) string {
	return fmt.Sprintf("https://github.com/%s/%s/blob/main/%s", org, repo, path)
}
