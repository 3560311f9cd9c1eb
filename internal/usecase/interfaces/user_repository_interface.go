package interfaces

import (
	"context"

	"homeclean/internal/domain/entities"
)

// IUserRepository abstracts Postgres persistence for user accounts.

type IUserRepository interface {
	Create(ctx context.Context, u entities.User) (entities.User, error)
	GetByID(ctx context.Context, id int64) (entities.User, error)
	GetByEmail(ctx context.Context, email string) (entities.User, error)
	EmailExists(ctx context.Context, email string) (bool, error)
	PhoneExists(ctx context.Context, phone string) (bool, error)
}
