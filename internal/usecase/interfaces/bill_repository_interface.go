package interfaces

import (
	"context"

	"homeclean/internal/domain/entities"
)

// IBillRepository abstracts Postgres persistence for bills and their
// append-only response sub-table.

type IBillRepository interface {
	Create(ctx context.Context, b entities.Bill) (entities.Bill, error)
	GetByID(ctx context.Context, id int64) (entities.Bill, error)
	GetByIDForClient(ctx context.Context, id, clientID int64) (entities.Bill, error)
	ListAll(ctx context.Context) ([]entities.Bill, error)
	ListByClient(ctx context.Context, clientID int64) ([]entities.Bill, error)
	AddResponse(ctx context.Context, r entities.BillResponse) (entities.BillResponse, error)
	ListResponses(ctx context.Context, billID int64) ([]entities.BillResponse, error)
	// MarkPaidIfUnpaid and MarkDisputedIfUnpaid are conditional updates
	// guarded with status <> 'paid'; false means the bill was already paid.
	MarkPaidIfUnpaid(ctx context.Context, id int64) (bool, error)
	MarkDisputedIfUnpaid(ctx context.Context, id int64) (bool, error)
	// Revise replaces the amount and resets status to pending.
	Revise(ctx context.Context, id int64, amount float64) error
}
