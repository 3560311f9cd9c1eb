package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"homeclean/internal/domain/entities"
	"homeclean/internal/usecase/interfaces"
)

// quoteColumns joins client_id in from the owning request so every loaded
// quote carries it for ownership checks.
const quoteColumns = `q.id, q.request_id, q.contractor_id, q.adjusted_price, q.scheduled_date,
	q.scheduled_time_start, q.scheduled_time_end, q.notes, q.is_rejection, q.rejection_reason,
	q.status, q.created_at, r.client_id`

const quoteFrom = ` FROM quotes q JOIN service_requests r ON r.id = q.request_id`

// QuotePostgresRepository persists quotes and their append-only response
// sub-table in Postgres.
type QuotePostgresRepository struct {
	pool *pgxpool.Pool
}

var _ interfaces.IQuoteRepository = (*QuotePostgresRepository)(nil)

func NewQuotePostgresRepository(pool *pgxpool.Pool) *QuotePostgresRepository {
	return &QuotePostgresRepository{pool: pool}
}

func (r *QuotePostgresRepository) Create(ctx context.Context, q entities.Quote) (entities.Quote, error) {
	err := db(ctx, r.pool).QueryRow(ctx, `
		INSERT INTO quotes (request_id, contractor_id, adjusted_price, scheduled_date,
			scheduled_time_start, scheduled_time_end, notes, is_rejection, rejection_reason, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING id, created_at`,
		q.RequestID, q.ContractorID, q.AdjustedPrice, q.ScheduledDate,
		q.ScheduledTimeStart, q.ScheduledTimeEnd, q.Notes, q.IsRejection, q.RejectionReason, q.Status,
	).Scan(&q.ID, &q.CreatedAt)
	if err != nil {
		return entities.Quote{}, err
	}
	return q, nil
}

func (r *QuotePostgresRepository) GetByID(ctx context.Context, id int64) (entities.Quote, error) {
	row := db(ctx, r.pool).QueryRow(ctx, `SELECT `+quoteColumns+quoteFrom+` WHERE q.id = $1`, id)
	return scanQuote(row)
}

func (r *QuotePostgresRepository) ListByRequest(ctx context.Context, requestID int64) ([]entities.Quote, error) {
	rows, err := db(ctx, r.pool).Query(ctx,
		`SELECT `+quoteColumns+quoteFrom+` WHERE q.request_id = $1 ORDER BY q.id`, requestID)
	if err != nil {
		return nil, err
	}
	return scanQuotes(rows)
}

func (r *QuotePostgresRepository) ListByRequestForClient(ctx context.Context, requestID, clientID int64) ([]entities.Quote, error) {
	rows, err := db(ctx, r.pool).Query(ctx,
		`SELECT `+quoteColumns+quoteFrom+` WHERE q.request_id = $1 AND r.client_id = $2 ORDER BY q.id`,
		requestID, clientID)
	if err != nil {
		return nil, err
	}
	return scanQuotes(rows)
}

func (r *QuotePostgresRepository) AddResponse(ctx context.Context, resp entities.QuoteResponse) (entities.QuoteResponse, error) {
	err := db(ctx, r.pool).QueryRow(ctx, `
		INSERT INTO quote_responses (quote_id, responder_id, response_type, counter_note)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at`,
		resp.QuoteID, resp.ResponderID, resp.ResponseType, resp.CounterNote,
	).Scan(&resp.ID, &resp.CreatedAt)
	if err != nil {
		return entities.QuoteResponse{}, err
	}
	return resp, nil
}

func (r *QuotePostgresRepository) ListResponses(ctx context.Context, quoteID int64) ([]entities.QuoteResponse, error) {
	rows, err := db(ctx, r.pool).Query(ctx, `
		SELECT id, quote_id, responder_id, response_type, counter_note, created_at
		FROM quote_responses
		WHERE quote_id = $1
		ORDER BY id`, quoteID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	resps := make([]entities.QuoteResponse, 0)
	for rows.Next() {
		var resp entities.QuoteResponse
		if err := rows.Scan(&resp.ID, &resp.QuoteID, &resp.ResponderID, &resp.ResponseType,
			&resp.CounterNote, &resp.CreatedAt); err != nil {
			return nil, err
		}
		resps = append(resps, resp)
	}
	return resps, rows.Err()
}

// UpdateStatusIfActive is the guard that closes the double-accept race: the
// UPDATE matches only while the quote is not terminal, so the losing
// transaction sees zero rows affected.
func (r *QuotePostgresRepository) UpdateStatusIfActive(ctx context.Context, id int64, status entities.QuoteStatus) (bool, error) {
	tag, err := db(ctx, r.pool).Exec(ctx, `
		UPDATE quotes SET status = $2
		WHERE id = $1 AND status NOT IN ('accepted', 'rejected')`,
		id, status)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

func scanQuote(row pgx.Row) (entities.Quote, error) {
	var q entities.Quote
	err := row.Scan(&q.ID, &q.RequestID, &q.ContractorID, &q.AdjustedPrice, &q.ScheduledDate,
		&q.ScheduledTimeStart, &q.ScheduledTimeEnd, &q.Notes, &q.IsRejection, &q.RejectionReason,
		&q.Status, &q.CreatedAt, &q.ClientID)
	if errors.Is(err, pgx.ErrNoRows) {
		return entities.Quote{}, nil
	}
	if err != nil {
		return entities.Quote{}, err
	}
	return q, nil
}

func scanQuotes(rows pgx.Rows) ([]entities.Quote, error) {
	defer rows.Close()

	quotes := make([]entities.Quote, 0)
	for rows.Next() {
		var q entities.Quote
		if err := rows.Scan(&q.ID, &q.RequestID, &q.ContractorID, &q.AdjustedPrice, &q.ScheduledDate,
			&q.ScheduledTimeStart, &q.ScheduledTimeEnd, &q.Notes, &q.IsRejection, &q.RejectionReason,
			&q.Status, &q.CreatedAt, &q.ClientID); err != nil {
			return nil, err
		}
		quotes = append(quotes, q)
	}
	return quotes, rows.Err()
}
