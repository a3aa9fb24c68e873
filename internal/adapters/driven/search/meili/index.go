// Package meili implements the SearchIndex port on Meilisearch.
package meili

import (
	"context"
	"fmt"

	"github.com/meilisearch/meilisearch-go"

	"github.com/discord-account-support-corp/answers-indexer/internal/core/domain"
	"github.com/discord-account-support-corp/answers-indexer/internal/core/ports/driven"
)

// Ensure Index implements the interface.
var _ driven.SearchIndex = (*Index)(nil)

// Index submits answer documents to a Meilisearch instance.
type Index struct {
	client meilisearch.ServiceManager
}

// New creates a Meilisearch-backed index client.
func New(url, apiKey string) *Index {
	return &Index{
		client: meilisearch.New(url, meilisearch.WithAPIKey(apiKey)),
	}
}

// AddDocuments submits docs to the named index in a single bulk call. The
// schema is implied by the document fields; none is declared. Meilisearch
// processes the addition as an async task, which is not awaited here.
func (i *Index) AddDocuments(ctx context.Context, index string, docs []domain.Answer) error {
	if _, err := i.client.Index(index).AddDocumentsWithContext(ctx, docs); err != nil {
		return fmt.Errorf("add documents: %w", err)
	}
	return nil
}
