package driven

import (
	"context"

	"github.com/discord-account-support-corp/answers-indexer/internal/core/domain"
)

// SearchIndex receives the assembled answer documents.
type SearchIndex interface {
	// AddDocuments submits docs to the named index in one bulk call.
	// No schema is declared; the index derives it from the documents.
	AddDocuments(ctx context.Context, index string, docs []domain.Answer) error
}
