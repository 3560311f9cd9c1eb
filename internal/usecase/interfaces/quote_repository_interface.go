package interfaces

import (
	"context"

	"homeclean/internal/domain/entities"
)

// IQuoteRepository abstracts Postgres persistence for quotes and their
// append-only response sub-table.

type IQuoteRepository interface {
	Create(ctx context.Context, q entities.Quote) (entities.Quote, error)
	// GetByID joins the owning request so the quote carries its ClientID.
	GetByID(ctx context.Context, id int64) (entities.Quote, error)
	ListByRequest(ctx context.Context, requestID int64) ([]entities.Quote, error)
	ListByRequestForClient(ctx context.Context, requestID, clientID int64) ([]entities.Quote, error)
	AddResponse(ctx context.Context, r entities.QuoteResponse) (entities.QuoteResponse, error)
	ListResponses(ctx context.Context, quoteID int64) ([]entities.QuoteResponse, error)
	// UpdateStatusIfActive flips the status only while the quote is not in a
	// terminal state; false means the conditional update matched no row, i.e.
	// another transaction finalized the quote first.
	UpdateStatusIfActive(ctx context.Context, id int64, status entities.QuoteStatus) (bool, error)
}
