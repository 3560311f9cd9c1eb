package auth

import (
	"golang.org/x/crypto/bcrypt"

	"homeclean/internal/usecase/interfaces"
)

// BcryptHasher hashes login passwords with bcrypt at the default cost.
type BcryptHasher struct{}

var _ interfaces.IPasswordHasher = (*BcryptHasher)(nil)

func NewBcryptHasher() *BcryptHasher {
	return &BcryptHasher{}
}

func (h *BcryptHasher) Hash(plain string) (string, error) {
	b, err := bcrypt.GenerateFromPassword([]byte(plain), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

func (h *BcryptHasher) Compare(hash, plain string) error {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plain))
}
