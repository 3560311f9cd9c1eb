package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"homeclean/internal/domain/entities"
	"homeclean/internal/usecase/interfaces"
)

const orderColumns = `id, request_id, quote_id, client_id, scheduled_date,
	scheduled_time_start, scheduled_time_end, final_price, status, completed_at, created_at`

// OrderPostgresRepository persists service orders in Postgres.
type OrderPostgresRepository struct {
	pool *pgxpool.Pool
}

var _ interfaces.IOrderRepository = (*OrderPostgresRepository)(nil)

func NewOrderPostgresRepository(pool *pgxpool.Pool) *OrderPostgresRepository {
	return &OrderPostgresRepository{pool: pool}
}

func (r *OrderPostgresRepository) Create(ctx context.Context, o entities.ServiceOrder) (entities.ServiceOrder, error) {
	err := db(ctx, r.pool).QueryRow(ctx, `
		INSERT INTO service_orders (request_id, quote_id, client_id, scheduled_date,
			scheduled_time_start, scheduled_time_end, final_price, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id, created_at`,
		o.RequestID, o.QuoteID, o.ClientID, o.ScheduledDate,
		o.ScheduledTimeStart, o.ScheduledTimeEnd, o.FinalPrice, o.Status,
	).Scan(&o.ID, &o.CreatedAt)
	if err != nil {
		return entities.ServiceOrder{}, err
	}
	return o, nil
}

func (r *OrderPostgresRepository) GetByID(ctx context.Context, id int64) (entities.ServiceOrder, error) {
	row := db(ctx, r.pool).QueryRow(ctx,
		`SELECT `+orderColumns+` FROM service_orders WHERE id = $1`, id)
	return scanOrder(row)
}

func (r *OrderPostgresRepository) GetByIDForClient(ctx context.Context, id, clientID int64) (entities.ServiceOrder, error) {
	row := db(ctx, r.pool).QueryRow(ctx,
		`SELECT `+orderColumns+` FROM service_orders WHERE id = $1 AND client_id = $2`, id, clientID)
	return scanOrder(row)
}

func (r *OrderPostgresRepository) ListAll(ctx context.Context) ([]entities.ServiceOrder, error) {
	rows, err := db(ctx, r.pool).Query(ctx,
		`SELECT `+orderColumns+` FROM service_orders ORDER BY created_at DESC, id DESC`)
	if err != nil {
		return nil, err
	}
	return scanOrders(rows)
}

func (r *OrderPostgresRepository) ListByClient(ctx context.Context, clientID int64) ([]entities.ServiceOrder, error) {
	rows, err := db(ctx, r.pool).Query(ctx,
		`SELECT `+orderColumns+` FROM service_orders WHERE client_id = $1 ORDER BY created_at DESC, id DESC`, clientID)
	if err != nil {
		return nil, err
	}
	return scanOrders(rows)
}

// MarkCompletedIfOpen is a conditional UPDATE: a second complete call (or a
// canceled order) matches no row and reports false.
func (r *OrderPostgresRepository) MarkCompletedIfOpen(ctx context.Context, id int64) (bool, error) {
	tag, err := db(ctx, r.pool).Exec(ctx, `
		UPDATE service_orders SET status = 'completed', completed_at = now()
		WHERE id = $1 AND status IN ('scheduled', 'in_progress')`, id)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

func scanOrder(row pgx.Row) (entities.ServiceOrder, error) {
	var o entities.ServiceOrder
	err := row.Scan(&o.ID, &o.RequestID, &o.QuoteID, &o.ClientID, &o.ScheduledDate,
		&o.ScheduledTimeStart, &o.ScheduledTimeEnd, &o.FinalPrice, &o.Status,
		&o.CompletedAt, &o.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return entities.ServiceOrder{}, nil
	}
	if err != nil {
		return entities.ServiceOrder{}, err
	}
	return o, nil
}

func scanOrders(rows pgx.Rows) ([]entities.ServiceOrder, error) {
	defer rows.Close()

	orders := make([]entities.ServiceOrder, 0)
	for rows.Next() {
		var o entities.ServiceOrder
		if err := rows.Scan(&o.ID, &o.RequestID, &o.QuoteID, &o.ClientID, &o.ScheduledDate,
			&o.ScheduledTimeStart, &o.ScheduledTimeEnd, &o.FinalPrice, &o.Status,
			&o.CompletedAt, &o.CreatedAt); err != nil {
			return nil, err
		}
		orders = append(orders, o)
	}
	return orders, rows.Err()
}
