package entities

import "time"

// Role is the platform role attached to a user account. The platform runs a
// single contractor organization: contractors act on every request/quote/order/
// bill, clients only on rows they own.

type Role string

const (
	RoleClient     Role = "client"
	RoleContractor Role = "contractor"
)

func (r Role) Valid() bool {
	return r == RoleClient || r == RoleContractor
}

// User is a registered account. Payment-card number and CVV are stored
// encrypted (AES-GCM); the plaintext never leaves the registration flow.
type User struct {
	ID            int64
	FirstName     string
	LastName      string
	Address       string
	Email         string
	Phone         string
	PasswordHash  string
	Role          Role
	CardNumberEnc string
	CardName      string
	CardExpMonth  int
	CardExpYear   int
	CardCVVEnc    string
	CreatedAt     time.Time
}
