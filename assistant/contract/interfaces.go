package contract

import (
	"context"

	openaix "github.com/tripmitra/aria-backend/pkg/openai"
	"github.com/tripmitra/aria-backend/travel"
)

// DestinationStore is the read-side store surface the chat core needs.
type DestinationStore interface {
	List(ctx context.Context, f travel.ListFilter) ([]travel.Destination, error)
	GetByID(ctx context.Context, id int64) (travel.Destination, error)
	Search(ctx context.Context, query string, limit int) ([]travel.Destination, error)
}

// CompletionClient is the external text-completion boundary.
type CompletionClient interface {
	Complete(ctx context.Context, req openaix.Request) (string, error)
}
