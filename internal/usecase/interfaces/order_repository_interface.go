package interfaces

import (
	"context"

	"homeclean/internal/domain/entities"
)

// IOrderRepository abstracts Postgres persistence for service orders.

type IOrderRepository interface {
	Create(ctx context.Context, o entities.ServiceOrder) (entities.ServiceOrder, error)
	GetByID(ctx context.Context, id int64) (entities.ServiceOrder, error)
	GetByIDForClient(ctx context.Context, id, clientID int64) (entities.ServiceOrder, error)
	ListAll(ctx context.Context) ([]entities.ServiceOrder, error)
	ListByClient(ctx context.Context, clientID int64) ([]entities.ServiceOrder, error)
	// MarkCompletedIfOpen sets status=completed and stamps completed_at only
	// when the order is not already completed; false means no row matched.
	MarkCompletedIfOpen(ctx context.Context, id int64) (bool, error)
}
