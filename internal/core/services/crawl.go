package services

import (
	"context"
	"fmt"
	"io"

	"github.com/discord-account-support-corp/answers-indexer/internal/config"
	"github.com/discord-account-support-corp/answers-indexer/internal/core/domain"
	"github.com/discord-account-support-corp/answers-indexer/internal/core/ports/driven"
	"github.com/discord-account-support-corp/answers-indexer/internal/logger"
	"github.com/discord-account-support-corp/answers-indexer/internal/readme"
)

// Crawler runs the extract-transform-load pass over one organization.
// Execution is strictly sequential; the only accumulating state is the
// in-memory answer list owned by Run for the duration of the pass.
type Crawler struct {
	host  driven.RepositoryHost
	index driven.SearchIndex
	cfg   *config.Config
	out   io.Writer
}

// NewCrawler wires a crawler from its collaborators. Progress lines are
// written to out.
func NewCrawler(host driven.RepositoryHost, index driven.SearchIndex, cfg *config.Config, out io.Writer) *Crawler {
	return &Crawler{
		host:  host,
		index: index,
		cfg:   cfg,
		out:   out,
	}
}

// Run crawls every repository once and submits all assembled answers to the
// search index in a single batch. It returns the number of documents
// indexed.
//
// A repository without a README contributes nothing, as does an entry whose
// file cannot be fetched; both are skipped silently. Only a failed
// repository listing aborts the run. If no answers are found anywhere, the
// index is never contacted.
func (c *Crawler) Run(ctx context.Context) (int, error) {
	org := c.cfg.Organization

	repos, err := c.host.ListRepositories(ctx, org)
	if err != nil {
		return 0, fmt.Errorf("list repositories: %w", err)
	}
	fmt.Fprintf(c.out, "Found %d repositories in %s\n", len(repos), org)

	var answers []domain.Answer
	for _, repo := range repos {
		fmt.Fprintf(c.out, "→ Checking %s ...\n", repo)

		text, err := c.host.FetchReadme(ctx, org, repo)
		if err != nil {
			return 0, fmt.Errorf("fetch readme for %s: %w", repo, err)
		}
		if text == "" {
			logger.Debug("%s: no README, skipping", repo)
			continue
		}

		for _, entry := range readme.ExtractEntries(text) {
			content, err := c.host.FetchFile(ctx, org, repo, entry.Path)
			if err != nil {
				return 0, fmt.Errorf("fetch %s/%s: %w", repo, entry.Path, err)
			}
			if content == "" {
				logger.Warn("%s: %s references missing file %s", repo, entry.Title, entry.Path)
				continue
			}

			answers = append(answers, domain.Answer{
				Repo:     repo,
				File:     entry.Path,
				Title:    entry.Title,
				Verified: true,
				Content:  content,
				URL:      c.host.BrowseURL(org, repo, entry.Path),
			})
		}
	}

	if len(answers) == 0 {
		fmt.Fprintln(c.out, "No verified answers found.")
		return 0, nil
	}

	fmt.Fprintf(c.out, "Indexing %d verified answers to Meilisearch...\n", len(answers))
	if err := c.index.AddDocuments(ctx, c.cfg.IndexName, answers); err != nil {
		return 0, fmt.Errorf("index answers: %w", err)
	}
	return len(answers), nil
}
