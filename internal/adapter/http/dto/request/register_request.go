package request

import (
	"errors"
	"strings"
	"time"
	"unicode"

	"homeclean/internal/usecase"
)

var (
	ErrInvalidCardNumber = errors.New("card number must be 13 to 19 digits")
	ErrInvalidCardExpiry = errors.New("card expiry is invalid or in the past")
	ErrInvalidCardCVV    = errors.New("card cvv must be 3 or 4 digits")
	ErrInvalidPassword   = errors.New("password must be at least 6 characters")
)

// RegisterRequest is the registration payload. Card fields are validated for
// format here; encryption happens in the use case.
type RegisterRequest struct {
	FirstName  string `json:"first_name" binding:"required"`
	LastName   string `json:"last_name" binding:"required"`
	Address    string `json:"address" binding:"required"`
	Email      string `json:"email" binding:"required,email"`
	Phone      string `json:"phone" binding:"required"`
	Password   string `json:"password" binding:"required"`
	CardNumber string `json:"card_number" binding:"required"`
	CardName   string `json:"card_name" binding:"required"`
	ExpMonth   int    `json:"exp_month" binding:"required"`
	ExpYear    int    `json:"exp_year" binding:"required"`
	CVV        string `json:"cvv" binding:"required"`
}

func digitsOnly(s string) bool {
	for _, r := range s {
		if !unicode.IsDigit(r) {
			return false
		}
	}
	return len(s) > 0
}

func (r RegisterRequest) Validate() error {
	if len(r.Password) < 6 {
		return ErrInvalidPassword
	}
	number := strings.ReplaceAll(strings.TrimSpace(r.CardNumber), " ", "")
	if !digitsOnly(number) || len(number) < 13 || len(number) > 19 {
		return ErrInvalidCardNumber
	}
	if r.ExpMonth < 1 || r.ExpMonth > 12 {
		return ErrInvalidCardExpiry
	}
	now := time.Now()
	if r.ExpYear < now.Year() || (r.ExpYear == now.Year() && time.Month(r.ExpMonth) < now.Month()) {
		return ErrInvalidCardExpiry
	}
	cvv := strings.TrimSpace(r.CVV)
	if !digitsOnly(cvv) || len(cvv) < 3 || len(cvv) > 4 {
		return ErrInvalidCardCVV
	}
	return nil
}

func (r RegisterRequest) ToInput() usecase.RegisterInput {
	return usecase.RegisterInput{
		FirstName:  r.FirstName,
		LastName:   r.LastName,
		Address:    r.Address,
		Email:      r.Email,
		Phone:      r.Phone,
		Password:   r.Password,
		CardNumber: r.CardNumber,
		CardName:   r.CardName,
		ExpMonth:   r.ExpMonth,
		ExpYear:    r.ExpYear,
		CVV:        r.CVV,
	}
}

// LoginRequest is the login payload.
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}
