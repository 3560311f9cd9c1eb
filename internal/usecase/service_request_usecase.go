package usecase

import (
	"context"
	"errors"
	"io"
	"log"
	"path/filepath"
	"strings"
	"time"

	"homeclean/internal/domain/entities"
	"homeclean/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrRequestNotFound     = errors.New("service request not found")
	ErrInvalidAddress      = errors.New("service address is required")
	ErrInvalidCleaningType = errors.New("invalid cleaning type")
	ErrInvalidNumRooms     = errors.New("number of rooms must be a positive integer")
	ErrInvalidBudget       = errors.New("proposed budget must be a positive number")
	ErrInvalidPreferredAt  = errors.New("invalid preferred date or time")
	ErrNoPhotos            = errors.New("no photos uploaded")
	ErrTooManyPhotos       = errors.New("maximum 5 photos allowed per request")
)

// CreateServiceRequestInput is the domain command for opening a request.
type CreateServiceRequestInput struct {
	ServiceAddress string
	CleaningType   entities.CleaningType
	NumRooms       int
	PreferredDate  time.Time
	PreferredTime  string
	ProposedBudget float64
	Notes          string
}

// PhotoUpload is one uploaded file already validated at the boundary for
// size and mime type.
type PhotoUpload struct {
	Filename string
	Contents io.Reader
}

// IServiceRequestUseCase exposes the client-facing request operations.
//
// Requests start in pending and are only moved by the quote lifecycle; this
// usecase never touches the status after creation.

type IServiceRequestUseCase interface {
	Create(ctx context.Context, clientID int64, in CreateServiceRequestInput) (entities.ServiceRequest, error)
	Get(ctx context.Context, id, userID int64, role entities.Role) (entities.ServiceRequest, error)
	List(ctx context.Context, userID int64, role entities.Role) ([]entities.ServiceRequest, error)
	UploadPhotos(ctx context.Context, requestID, clientID int64, photos []PhotoUpload) ([]string, error)
}

type ServiceRequestUseCase struct {
	repo    interfaces.IServiceRequestRepository
	storage interfaces.IPhotoStorage
	tx      interfaces.ITxManager
}

var _ IServiceRequestUseCase = (*ServiceRequestUseCase)(nil)

func NewServiceRequestUseCase(repo interfaces.IServiceRequestRepository, storage interfaces.IPhotoStorage, tx interfaces.ITxManager) *ServiceRequestUseCase {
	return &ServiceRequestUseCase{repo: repo, storage: storage, tx: tx}
}

func (u *ServiceRequestUseCase) Create(ctx context.Context, clientID int64, in CreateServiceRequestInput) (entities.ServiceRequest, error) {
	in.ServiceAddress = strings.TrimSpace(in.ServiceAddress)
	if in.ServiceAddress == "" {
		return entities.ServiceRequest{}, ErrInvalidAddress
	}
	if !in.CleaningType.Valid() {
		return entities.ServiceRequest{}, ErrInvalidCleaningType
	}
	if in.NumRooms < 1 {
		return entities.ServiceRequest{}, ErrInvalidNumRooms
	}
	if in.ProposedBudget < 0 {
		return entities.ServiceRequest{}, ErrInvalidBudget
	}
	if in.PreferredDate.IsZero() || strings.TrimSpace(in.PreferredTime) == "" {
		return entities.ServiceRequest{}, ErrInvalidPreferredAt
	}

	r := entities.ServiceRequest{
		ClientID:       clientID,
		ServiceAddress: in.ServiceAddress,
		CleaningType:   in.CleaningType,
		NumRooms:       in.NumRooms,
		PreferredDate:  in.PreferredDate,
		PreferredTime:  strings.TrimSpace(in.PreferredTime),
		ProposedBudget: in.ProposedBudget,
		Notes:          strings.TrimSpace(in.Notes),
		Status:         entities.RequestStatusPending,
	}
	created, err := u.repo.Create(ctx, r)
	if err != nil {
		return entities.ServiceRequest{}, err
	}
	log.Printf("[request][usecase] created request_id=%d client_id=%d type=%s", created.ID, clientID, created.CleaningType)
	return created, nil
}

func (u *ServiceRequestUseCase) Get(ctx context.Context, id, userID int64, role entities.Role) (entities.ServiceRequest, error) {
	var (
		r   entities.ServiceRequest
		err error
	)
	if role == entities.RoleContractor {
		r, err = u.repo.GetByID(ctx, id)
	} else {
		r, err = u.repo.GetByIDForClient(ctx, id, userID)
	}
	if err != nil {
		return entities.ServiceRequest{}, err
	}
	if r.ID == 0 {
		return entities.ServiceRequest{}, ErrRequestNotFound
	}

	photos, err := u.repo.ListPhotos(ctx, r.ID)
	if err != nil {
		return entities.ServiceRequest{}, err
	}
	r.Photos = photos
	return r, nil
}

func (u *ServiceRequestUseCase) List(ctx context.Context, userID int64, role entities.Role) ([]entities.ServiceRequest, error) {
	if role == entities.RoleContractor {
		return u.repo.ListAll(ctx)
	}
	return u.repo.ListByClient(ctx, userID)
}

// UploadPhotos stores the files, then inserts the photo rows inside one
// transaction guarded by the 5-photo cap. A cap violation (or any insert
// failure) removes the just-stored files so no partial add survives.
func (u *ServiceRequestUseCase) UploadPhotos(ctx context.Context, requestID, clientID int64, photos []PhotoUpload) ([]string, error) {
	if len(photos) == 0 {
		return nil, ErrNoPhotos
	}

	owns, err := u.repo.BelongsToClient(ctx, requestID, clientID)
	if err != nil {
		return nil, err
	}
	if !owns {
		return nil, ErrRequestNotFound
	}

	stored := make([]string, 0, len(photos))
	cleanup := func() {
		for _, p := range stored {
			if rmErr := u.storage.Remove(ctx, p); rmErr != nil {
				log.Printf("[request][usecase] photo cleanup failed path=%s err=%v", p, rmErr)
			}
		}
	}

	for _, ph := range photos {
		name := uuid.NewString() + strings.ToLower(filepath.Ext(ph.Filename))
		path, err := u.storage.Save(ctx, name, ph.Contents)
		if err != nil {
			cleanup()
			return nil, err
		}
		stored = append(stored, path)
	}

	err = u.tx.WithinTx(ctx, func(ctx context.Context) error {
		count, err := u.repo.CountPhotosForUpdate(ctx, requestID)
		if err != nil {
			return err
		}
		if count+len(stored) > entities.MaxRequestPhotos {
			return ErrTooManyPhotos
		}
		return u.repo.AddPhotos(ctx, requestID, stored)
	})
	if err != nil {
		cleanup()
		return nil, err
	}

	log.Printf("[request][usecase] photos uploaded request_id=%d count=%d", requestID, len(stored))
	return stored, nil
}
