package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"homeclean/internal/domain/entities"
	"homeclean/internal/usecase/interfaces"
)

const billColumns = `id, order_id, client_id, amount, status, paid_at, created_at`

// BillPostgresRepository persists bills and their append-only response
// sub-table in Postgres.
type BillPostgresRepository struct {
	pool *pgxpool.Pool
}

var _ interfaces.IBillRepository = (*BillPostgresRepository)(nil)

func NewBillPostgresRepository(pool *pgxpool.Pool) *BillPostgresRepository {
	return &BillPostgresRepository{pool: pool}
}

func (r *BillPostgresRepository) Create(ctx context.Context, b entities.Bill) (entities.Bill, error) {
	err := db(ctx, r.pool).QueryRow(ctx, `
		INSERT INTO bills (order_id, client_id, amount, status)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at`,
		b.OrderID, b.ClientID, b.Amount, b.Status,
	).Scan(&b.ID, &b.CreatedAt)
	if err != nil {
		return entities.Bill{}, err
	}
	return b, nil
}

func (r *BillPostgresRepository) GetByID(ctx context.Context, id int64) (entities.Bill, error) {
	row := db(ctx, r.pool).QueryRow(ctx, `SELECT `+billColumns+` FROM bills WHERE id = $1`, id)
	return scanBill(row)
}

func (r *BillPostgresRepository) GetByIDForClient(ctx context.Context, id, clientID int64) (entities.Bill, error) {
	row := db(ctx, r.pool).QueryRow(ctx,
		`SELECT `+billColumns+` FROM bills WHERE id = $1 AND client_id = $2`, id, clientID)
	return scanBill(row)
}

func (r *BillPostgresRepository) ListAll(ctx context.Context) ([]entities.Bill, error) {
	rows, err := db(ctx, r.pool).Query(ctx,
		`SELECT `+billColumns+` FROM bills ORDER BY created_at DESC, id DESC`)
	if err != nil {
		return nil, err
	}
	return scanBills(rows)
}

func (r *BillPostgresRepository) ListByClient(ctx context.Context, clientID int64) ([]entities.Bill, error) {
	rows, err := db(ctx, r.pool).Query(ctx,
		`SELECT `+billColumns+` FROM bills WHERE client_id = $1 ORDER BY created_at DESC, id DESC`, clientID)
	if err != nil {
		return nil, err
	}
	return scanBills(rows)
}

func (r *BillPostgresRepository) AddResponse(ctx context.Context, resp entities.BillResponse) (entities.BillResponse, error) {
	err := db(ctx, r.pool).QueryRow(ctx, `
		INSERT INTO bill_responses (bill_id, responder_id, response_type, dispute_note,
			revised_amount, revision_note)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at`,
		resp.BillID, resp.ResponderID, resp.ResponseType, resp.DisputeNote,
		resp.RevisedAmount, resp.RevisionNote,
	).Scan(&resp.ID, &resp.CreatedAt)
	if err != nil {
		return entities.BillResponse{}, err
	}
	return resp, nil
}

func (r *BillPostgresRepository) ListResponses(ctx context.Context, billID int64) ([]entities.BillResponse, error) {
	rows, err := db(ctx, r.pool).Query(ctx, `
		SELECT id, bill_id, responder_id, response_type, dispute_note, revised_amount, revision_note, created_at
		FROM bill_responses
		WHERE bill_id = $1
		ORDER BY id`, billID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	resps := make([]entities.BillResponse, 0)
	for rows.Next() {
		var resp entities.BillResponse
		if err := rows.Scan(&resp.ID, &resp.BillID, &resp.ResponderID, &resp.ResponseType,
			&resp.DisputeNote, &resp.RevisedAmount, &resp.RevisionNote, &resp.CreatedAt); err != nil {
			return nil, err
		}
		resps = append(resps, resp)
	}
	return resps, rows.Err()
}

// MarkPaidIfUnpaid closes the double-pay race: the UPDATE matches only while
// status <> 'paid', so the losing transaction sees zero rows affected.
func (r *BillPostgresRepository) MarkPaidIfUnpaid(ctx context.Context, id int64) (bool, error) {
	tag, err := db(ctx, r.pool).Exec(ctx, `
		UPDATE bills SET status = 'paid', paid_at = now()
		WHERE id = $1 AND status <> 'paid'`, id)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

func (r *BillPostgresRepository) MarkDisputedIfUnpaid(ctx context.Context, id int64) (bool, error) {
	tag, err := db(ctx, r.pool).Exec(ctx, `
		UPDATE bills SET status = 'disputed'
		WHERE id = $1 AND status <> 'paid'`, id)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

// Revise replaces the amount and reopens the bill; a paid bill loses its
// paid_at stamp when revised.
func (r *BillPostgresRepository) Revise(ctx context.Context, id int64, amount float64) error {
	_, err := db(ctx, r.pool).Exec(ctx, `
		UPDATE bills SET amount = $2, status = 'pending', paid_at = NULL
		WHERE id = $1`, id, amount)
	return err
}

func scanBill(row pgx.Row) (entities.Bill, error) {
	var b entities.Bill
	err := row.Scan(&b.ID, &b.OrderID, &b.ClientID, &b.Amount, &b.Status, &b.PaidAt, &b.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return entities.Bill{}, nil
	}
	if err != nil {
		return entities.Bill{}, err
	}
	return b, nil
}

func scanBills(rows pgx.Rows) ([]entities.Bill, error) {
	defer rows.Close()

	bills := make([]entities.Bill, 0)
	for rows.Next() {
		var b entities.Bill
		if err := rows.Scan(&b.ID, &b.OrderID, &b.ClientID, &b.Amount, &b.Status,
			&b.PaidAt, &b.CreatedAt); err != nil {
			return nil, err
		}
		bills = append(bills, b)
	}
	return bills, rows.Err()
}
