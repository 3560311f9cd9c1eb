package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"homeclean/internal/domain/entities"
	"homeclean/internal/usecase/interfaces"
)

const requestColumns = `id, client_id, service_address, cleaning_type, num_rooms,
	preferred_date, preferred_time, proposed_budget, notes, status, created_at`

// ServiceRequestPostgresRepository persists service requests and their photo
// sub-table in Postgres.
type ServiceRequestPostgresRepository struct {
	pool *pgxpool.Pool
}

var _ interfaces.IServiceRequestRepository = (*ServiceRequestPostgresRepository)(nil)

func NewServiceRequestPostgresRepository(pool *pgxpool.Pool) *ServiceRequestPostgresRepository {
	return &ServiceRequestPostgresRepository{pool: pool}
}

func (r *ServiceRequestPostgresRepository) Create(ctx context.Context, req entities.ServiceRequest) (entities.ServiceRequest, error) {
	err := db(ctx, r.pool).QueryRow(ctx, `
		INSERT INTO service_requests (client_id, service_address, cleaning_type, num_rooms,
			preferred_date, preferred_time, proposed_budget, notes, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id, created_at`,
		req.ClientID, req.ServiceAddress, req.CleaningType, req.NumRooms,
		req.PreferredDate, req.PreferredTime, req.ProposedBudget, req.Notes, req.Status,
	).Scan(&req.ID, &req.CreatedAt)
	if err != nil {
		return entities.ServiceRequest{}, err
	}
	return req, nil
}

func (r *ServiceRequestPostgresRepository) GetByID(ctx context.Context, id int64) (entities.ServiceRequest, error) {
	row := db(ctx, r.pool).QueryRow(ctx,
		`SELECT `+requestColumns+` FROM service_requests WHERE id = $1`, id)
	return scanRequest(row)
}

func (r *ServiceRequestPostgresRepository) GetByIDForClient(ctx context.Context, id, clientID int64) (entities.ServiceRequest, error) {
	row := db(ctx, r.pool).QueryRow(ctx,
		`SELECT `+requestColumns+` FROM service_requests WHERE id = $1 AND client_id = $2`, id, clientID)
	return scanRequest(row)
}

func (r *ServiceRequestPostgresRepository) ListAll(ctx context.Context) ([]entities.ServiceRequest, error) {
	rows, err := db(ctx, r.pool).Query(ctx,
		`SELECT `+requestColumns+` FROM service_requests ORDER BY created_at DESC, id DESC`)
	if err != nil {
		return nil, err
	}
	return scanRequests(rows)
}

func (r *ServiceRequestPostgresRepository) ListByClient(ctx context.Context, clientID int64) ([]entities.ServiceRequest, error) {
	rows, err := db(ctx, r.pool).Query(ctx,
		`SELECT `+requestColumns+` FROM service_requests WHERE client_id = $1 ORDER BY created_at DESC, id DESC`, clientID)
	if err != nil {
		return nil, err
	}
	return scanRequests(rows)
}

func (r *ServiceRequestPostgresRepository) UpdateStatus(ctx context.Context, id int64, status entities.RequestStatus) error {
	_, err := db(ctx, r.pool).Exec(ctx,
		`UPDATE service_requests SET status = $2 WHERE id = $1`, id, status)
	return err
}

func (r *ServiceRequestPostgresRepository) BelongsToClient(ctx context.Context, id, clientID int64) (bool, error) {
	var owns bool
	err := db(ctx, r.pool).QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM service_requests WHERE id = $1 AND client_id = $2)`,
		id, clientID).Scan(&owns)
	return owns, err
}

func (r *ServiceRequestPostgresRepository) ListPhotos(ctx context.Context, requestID int64) ([]entities.RequestPhoto, error) {
	rows, err := db(ctx, r.pool).Query(ctx, `
		SELECT id, request_id, photo_path, created_at
		FROM service_request_photos
		WHERE request_id = $1
		ORDER BY id`, requestID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	photos := make([]entities.RequestPhoto, 0)
	for rows.Next() {
		var p entities.RequestPhoto
		if err := rows.Scan(&p.ID, &p.RequestID, &p.PhotoPath, &p.CreatedAt); err != nil {
			return nil, err
		}
		photos = append(photos, p)
	}
	return photos, rows.Err()
}

// CountPhotosForUpdate locks the request row first so two concurrent uploads
// in separate transactions serialize on the cap check.
func (r *ServiceRequestPostgresRepository) CountPhotosForUpdate(ctx context.Context, requestID int64) (int, error) {
	q := db(ctx, r.pool)

	var locked int64
	err := q.QueryRow(ctx,
		`SELECT id FROM service_requests WHERE id = $1 FOR UPDATE`, requestID).Scan(&locked)
	if errors.Is(err, pgx.ErrNoRows) {
		return 0, nil
	}
	if err != nil {
		return 0, err
	}

	var count int
	err = q.QueryRow(ctx,
		`SELECT COUNT(*) FROM service_request_photos WHERE request_id = $1`, requestID).Scan(&count)
	return count, err
}

func (r *ServiceRequestPostgresRepository) AddPhotos(ctx context.Context, requestID int64, paths []string) error {
	q := db(ctx, r.pool)
	for _, p := range paths {
		_, err := q.Exec(ctx,
			`INSERT INTO service_request_photos (request_id, photo_path) VALUES ($1, $2)`,
			requestID, p)
		if err != nil {
			return err
		}
	}
	return nil
}

func scanRequest(row pgx.Row) (entities.ServiceRequest, error) {
	var req entities.ServiceRequest
	err := row.Scan(&req.ID, &req.ClientID, &req.ServiceAddress, &req.CleaningType,
		&req.NumRooms, &req.PreferredDate, &req.PreferredTime, &req.ProposedBudget,
		&req.Notes, &req.Status, &req.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return entities.ServiceRequest{}, nil
	}
	if err != nil {
		return entities.ServiceRequest{}, err
	}
	return req, nil
}

func scanRequests(rows pgx.Rows) ([]entities.ServiceRequest, error) {
	defer rows.Close()

	reqs := make([]entities.ServiceRequest, 0)
	for rows.Next() {
		var req entities.ServiceRequest
		if err := rows.Scan(&req.ID, &req.ClientID, &req.ServiceAddress, &req.CleaningType,
			&req.NumRooms, &req.PreferredDate, &req.PreferredTime, &req.ProposedBudget,
			&req.Notes, &req.Status, &req.CreatedAt); err != nil {
			return nil, err
		}
		reqs = append(reqs, req)
	}
	return reqs, rows.Err()
}
