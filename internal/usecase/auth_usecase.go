package usecase

import (
	"context"
	"errors"
	"log"
	"strings"

	"homeclean/internal/domain/entities"
	"homeclean/internal/usecase/interfaces"
)

var (
	ErrEmailTaken         = errors.New("email already registered")
	ErrPhoneTaken         = errors.New("phone number already registered")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrInvalidToken       = errors.New("invalid or expired token")
	ErrUserNotFound       = errors.New("user not found")
)

// RegisterInput carries the registration form. Card fields arrive already
// format-validated at the boundary; number and CVV are encrypted before they
// touch the database.
type RegisterInput struct {
	FirstName  string
	LastName   string
	Address    string
	Email      string
	Phone      string
	Password   string
	CardNumber string
	CardName   string
	ExpMonth   int
	ExpYear    int
	CVV        string
}

// IAuthUseCase handles account registration, login and the token check the
// auth middleware runs per request. Registration always creates client
// accounts; the contractor account is provisioned out of band.

type IAuthUseCase interface {
	Register(ctx context.Context, in RegisterInput) (entities.User, error)
	Login(ctx context.Context, email, password string) (string, entities.User, error)
	Authenticate(ctx context.Context, token string) (int64, entities.Role, error)
	Profile(ctx context.Context, userID int64) (entities.User, error)
}

type AuthUseCase struct {
	users     interfaces.IUserRepository
	hasher    interfaces.IPasswordHasher
	tokens    interfaces.ITokenService
	encryptor interfaces.ICardEncryptor
}

var _ IAuthUseCase = (*AuthUseCase)(nil)

func NewAuthUseCase(users interfaces.IUserRepository, hasher interfaces.IPasswordHasher, tokens interfaces.ITokenService, encryptor interfaces.ICardEncryptor) *AuthUseCase {
	return &AuthUseCase{users: users, hasher: hasher, tokens: tokens, encryptor: encryptor}
}

func (u *AuthUseCase) Register(ctx context.Context, in RegisterInput) (entities.User, error) {
	in.Email = strings.ToLower(strings.TrimSpace(in.Email))
	in.Phone = strings.TrimSpace(in.Phone)

	taken, err := u.users.EmailExists(ctx, in.Email)
	if err != nil {
		return entities.User{}, err
	}
	if taken {
		return entities.User{}, ErrEmailTaken
	}
	taken, err = u.users.PhoneExists(ctx, in.Phone)
	if err != nil {
		return entities.User{}, err
	}
	if taken {
		return entities.User{}, ErrPhoneTaken
	}

	hash, err := u.hasher.Hash(in.Password)
	if err != nil {
		return entities.User{}, err
	}
	cardEnc, err := u.encryptor.Encrypt(strings.ReplaceAll(in.CardNumber, " ", ""))
	if err != nil {
		return entities.User{}, err
	}
	cvvEnc, err := u.encryptor.Encrypt(in.CVV)
	if err != nil {
		return entities.User{}, err
	}

	created, err := u.users.Create(ctx, entities.User{
		FirstName:     strings.TrimSpace(in.FirstName),
		LastName:      strings.TrimSpace(in.LastName),
		Address:       strings.TrimSpace(in.Address),
		Email:         in.Email,
		Phone:         in.Phone,
		PasswordHash:  hash,
		Role:          entities.RoleClient,
		CardNumberEnc: cardEnc,
		CardName:      strings.TrimSpace(in.CardName),
		CardExpMonth:  in.ExpMonth,
		CardExpYear:   in.ExpYear,
		CardCVVEnc:    cvvEnc,
	})
	if err != nil {
		return entities.User{}, err
	}

	log.Printf("[auth][usecase] registered user_id=%d role=%s", created.ID, created.Role)
	return created, nil
}

func (u *AuthUseCase) Login(ctx context.Context, email, password string) (string, entities.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	usr, err := u.users.GetByEmail(ctx, email)
	if err != nil {
		return "", entities.User{}, err
	}
	if usr.ID == 0 {
		return "", entities.User{}, ErrInvalidCredentials
	}
	if err := u.hasher.Compare(usr.PasswordHash, password); err != nil {
		return "", entities.User{}, ErrInvalidCredentials
	}

	token, err := u.tokens.Issue(usr.ID, usr.Role)
	if err != nil {
		return "", entities.User{}, err
	}
	log.Printf("[auth][usecase] login user_id=%d role=%s", usr.ID, usr.Role)
	return token, usr, nil
}

// Profile returns the caller's own account row.
func (u *AuthUseCase) Profile(ctx context.Context, userID int64) (entities.User, error) {
	usr, err := u.users.GetByID(ctx, userID)
	if err != nil {
		return entities.User{}, err
	}
	if usr.ID == 0 {
		return entities.User{}, ErrUserNotFound
	}
	return usr, nil
}

// Authenticate verifies the token, then re-reads the role from the users
// table so role changes take effect without waiting for token expiry.
func (u *AuthUseCase) Authenticate(ctx context.Context, token string) (int64, entities.Role, error) {
	if strings.TrimSpace(token) == "" {
		return 0, "", ErrInvalidToken
	}
	userID, err := u.tokens.Verify(token)
	if err != nil {
		return 0, "", ErrInvalidToken
	}
	usr, err := u.users.GetByID(ctx, userID)
	if err != nil {
		return 0, "", err
	}
	if usr.ID == 0 {
		return 0, "", ErrInvalidToken
	}
	return usr.ID, usr.Role, nil
}
