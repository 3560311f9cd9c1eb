package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"homeclean/internal/domain/entities"
	"homeclean/internal/usecase/interfaces"
)

const userColumns = `id, first_name, last_name, address, email, phone, password_hash, role,
	card_number_enc, card_name, card_exp_month, card_exp_year, card_cvv_enc, created_at`

// UserPostgresRepository persists user accounts in Postgres. Lookups return a
// zero-value entity (ID 0) when no row exists.
type UserPostgresRepository struct {
	pool *pgxpool.Pool
}

var _ interfaces.IUserRepository = (*UserPostgresRepository)(nil)

func NewUserPostgresRepository(pool *pgxpool.Pool) *UserPostgresRepository {
	return &UserPostgresRepository{pool: pool}
}

func (r *UserPostgresRepository) Create(ctx context.Context, u entities.User) (entities.User, error) {
	err := db(ctx, r.pool).QueryRow(ctx, `
		INSERT INTO users (first_name, last_name, address, email, phone, password_hash, role,
			card_number_enc, card_name, card_exp_month, card_exp_year, card_cvv_enc)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		RETURNING id, created_at`,
		u.FirstName, u.LastName, u.Address, u.Email, u.Phone, u.PasswordHash, u.Role,
		u.CardNumberEnc, u.CardName, u.CardExpMonth, u.CardExpYear, u.CardCVVEnc,
	).Scan(&u.ID, &u.CreatedAt)
	if err != nil {
		return entities.User{}, err
	}
	return u, nil
}

func (r *UserPostgresRepository) GetByID(ctx context.Context, id int64) (entities.User, error) {
	row := db(ctx, r.pool).QueryRow(ctx, `SELECT `+userColumns+` FROM users WHERE id = $1`, id)
	return scanUser(row)
}

func (r *UserPostgresRepository) GetByEmail(ctx context.Context, email string) (entities.User, error) {
	row := db(ctx, r.pool).QueryRow(ctx, `SELECT `+userColumns+` FROM users WHERE email = $1`, email)
	return scanUser(row)
}

func (r *UserPostgresRepository) EmailExists(ctx context.Context, email string) (bool, error) {
	var exists bool
	err := db(ctx, r.pool).QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM users WHERE email = $1)`, email).Scan(&exists)
	return exists, err
}

func (r *UserPostgresRepository) PhoneExists(ctx context.Context, phone string) (bool, error) {
	var exists bool
	err := db(ctx, r.pool).QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM users WHERE phone = $1)`, phone).Scan(&exists)
	return exists, err
}

func scanUser(row pgx.Row) (entities.User, error) {
	var u entities.User
	err := row.Scan(&u.ID, &u.FirstName, &u.LastName, &u.Address, &u.Email, &u.Phone,
		&u.PasswordHash, &u.Role, &u.CardNumberEnc, &u.CardName, &u.CardExpMonth,
		&u.CardExpYear, &u.CardCVVEnc, &u.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return entities.User{}, nil
	}
	if err != nil {
		return entities.User{}, err
	}
	return u, nil
}
