package interfaces

import "homeclean/internal/domain/entities"

// ITokenService issues and verifies the opaque credential exchanged at the
// boundary. The auth middleware only learns a user id from the token; the
// role is re-read from the users table so a stale token cannot carry an old
// role.

type ITokenService interface {
	Issue(userID int64, role entities.Role) (string, error)
	Verify(token string) (int64, error)
}

// IPasswordHasher hashes and checks login passwords.
type IPasswordHasher interface {
	Hash(plain string) (string, error)
	Compare(hash, plain string) error
}

// ICardEncryptor encrypts payment-card fields at rest.
type ICardEncryptor interface {
	Encrypt(plain string) (string, error)
	Decrypt(enc string) (string, error)
}
