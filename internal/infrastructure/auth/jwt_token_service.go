package auth

import (
	"errors"
	"log"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v4"

	"homeclean/internal/domain/entities"
	"homeclean/internal/usecase/interfaces"
)

var ErrMissingJWTSecret = errors.New("missing JWT_SECRET")
var ErrInvalidSignedToken = errors.New("invalid or expired token")

// JWTTokenService signs HS256 tokens carrying the user id as subject. The
// role claim is informational only; authorization re-reads it from the
// users table on every request.
type JWTTokenService struct {
	secret []byte
	expiry time.Duration
}

var _ interfaces.ITokenService = (*JWTTokenService)(nil)

func NewJWTTokenService(secret string, expiry time.Duration) (*JWTTokenService, error) {
	if secret == "" {
		log.Printf("[auth][token] missing JWT_SECRET")
		return nil, ErrMissingJWTSecret
	}
	return &JWTTokenService{secret: []byte(secret), expiry: expiry}, nil
}

func (s *JWTTokenService) Issue(userID int64, role entities.Role) (string, error) {
	now := time.Now().UTC()
	claims := jwt.MapClaims{
		"sub":  strconv.FormatInt(userID, 10),
		"role": string(role),
		"iat":  now.Unix(),
		"exp":  now.Add(s.expiry).Unix(),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
}

func (s *JWTTokenService) Verify(token string) (int64, error) {
	parsed, err := jwt.Parse(token, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidSignedToken
		}
		return s.secret, nil
	})
	if err != nil || !parsed.Valid {
		return 0, ErrInvalidSignedToken
	}

	claims, ok := parsed.Claims.(jwt.MapClaims)
	if !ok {
		return 0, ErrInvalidSignedToken
	}
	sub, ok := claims["sub"].(string)
	if !ok {
		return 0, ErrInvalidSignedToken
	}
	userID, err := strconv.ParseInt(sub, 10, 64)
	if err != nil || userID < 1 {
		return 0, ErrInvalidSignedToken
	}
	return userID, nil
}
