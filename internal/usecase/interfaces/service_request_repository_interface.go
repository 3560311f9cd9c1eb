package interfaces

import (
	"context"

	"homeclean/internal/domain/entities"
)

// IServiceRequestRepository abstracts Postgres persistence for service
// requests and their photo sub-table.
//
// Access scoping is enforced in the queries themselves: the ForClient
// variants add a client_id predicate so a client can never reach another
// client's rows by guessing ids. Lookups return a zero-value entity (ID 0)
// when no visible row exists.

type IServiceRequestRepository interface {
	Create(ctx context.Context, r entities.ServiceRequest) (entities.ServiceRequest, error)
	GetByID(ctx context.Context, id int64) (entities.ServiceRequest, error)
	GetByIDForClient(ctx context.Context, id, clientID int64) (entities.ServiceRequest, error)
	ListAll(ctx context.Context) ([]entities.ServiceRequest, error)
	ListByClient(ctx context.Context, clientID int64) ([]entities.ServiceRequest, error)
	UpdateStatus(ctx context.Context, id int64, status entities.RequestStatus) error
	BelongsToClient(ctx context.Context, id, clientID int64) (bool, error)
	ListPhotos(ctx context.Context, requestID int64) ([]entities.RequestPhoto, error)
	// CountPhotosForUpdate locks the request row before counting so a
	// concurrent upload inside another transaction cannot slip past the cap.
	CountPhotosForUpdate(ctx context.Context, requestID int64) (int, error)
	AddPhotos(ctx context.Context, requestID int64, paths []string) error
}
