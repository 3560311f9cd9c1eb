package request

import (
	"errors"
	"testing"
	"time"
)

func validRegister() RegisterRequest {
	return RegisterRequest{
		FirstName:  "Ana",
		LastName:   "Souza",
		Address:    "12 Main St",
		Email:      "ana@example.com",
		Phone:      "+5511999990000",
		Password:   "s3cret!",
		CardNumber: "4111 1111 1111 1111",
		CardName:   "ANA SOUZA",
		ExpMonth:   12,
		ExpYear:    time.Now().Year() + 2,
		CVV:        "123",
	}
}

func TestRegisterRequest_Validate(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		if err := validRegister().Validate(); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("short password", func(t *testing.T) {
		r := validRegister()
		r.Password = "abc"
		if err := r.Validate(); !errors.Is(err, ErrInvalidPassword) {
			t.Fatalf("expected ErrInvalidPassword, got %v", err)
		}
	})

	t.Run("card number too short", func(t *testing.T) {
		r := validRegister()
		r.CardNumber = "411111111111"
		if err := r.Validate(); !errors.Is(err, ErrInvalidCardNumber) {
			t.Fatalf("expected ErrInvalidCardNumber, got %v", err)
		}
	})

	t.Run("card number with letters", func(t *testing.T) {
		r := validRegister()
		r.CardNumber = "4111abcd11111111"
		if err := r.Validate(); !errors.Is(err, ErrInvalidCardNumber) {
			t.Fatalf("expected ErrInvalidCardNumber, got %v", err)
		}
	})

	t.Run("spaces in card number accepted", func(t *testing.T) {
		r := validRegister()
		r.CardNumber = "4111 1111 1111 1111"
		if err := r.Validate(); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("month out of range", func(t *testing.T) {
		r := validRegister()
		r.ExpMonth = 13
		if err := r.Validate(); !errors.Is(err, ErrInvalidCardExpiry) {
			t.Fatalf("expected ErrInvalidCardExpiry, got %v", err)
		}
	})

	t.Run("expired year", func(t *testing.T) {
		r := validRegister()
		r.ExpYear = time.Now().Year() - 1
		if err := r.Validate(); !errors.Is(err, ErrInvalidCardExpiry) {
			t.Fatalf("expected ErrInvalidCardExpiry, got %v", err)
		}
	})

	t.Run("bad cvv", func(t *testing.T) {
		r := validRegister()
		r.CVV = "12"
		if err := r.Validate(); !errors.Is(err, ErrInvalidCardCVV) {
			t.Fatalf("expected ErrInvalidCardCVV, got %v", err)
		}
	})

	t.Run("four digit cvv accepted", func(t *testing.T) {
		r := validRegister()
		r.CVV = "1234"
		if err := r.Validate(); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestCreateServiceRequestRequest_ToInput(t *testing.T) {
	t.Run("valid date", func(t *testing.T) {
		r := CreateServiceRequestRequest{
			ServiceAddress: "12 Main St",
			CleaningType:   "basic",
			NumRooms:       3,
			PreferredDate:  "2026-09-10",
			PreferredTime:  "09:00",
		}
		in, err := r.ToInput()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if in.PreferredDate.Format("2006-01-02") != "2026-09-10" {
			t.Fatalf("unexpected date: %v", in.PreferredDate)
		}
	})

	t.Run("bad date", func(t *testing.T) {
		r := CreateServiceRequestRequest{PreferredDate: "10/09/2026"}
		if _, err := r.ToInput(); !errors.Is(err, ErrInvalidDate) {
			t.Fatalf("expected ErrInvalidDate, got %v", err)
		}
	})
}

func TestCreateQuoteRequest_ToInput(t *testing.T) {
	t.Run("rejection skips schedule parsing", func(t *testing.T) {
		r := CreateQuoteRequest{RequestID: 9, IsRejection: true, RejectionReason: "out of area"}
		in, err := r.ToInput()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !in.IsRejection || in.RejectionReason != "out of area" {
			t.Fatalf("unexpected input: %+v", in)
		}
	})

	t.Run("quote requires parseable date", func(t *testing.T) {
		r := CreateQuoteRequest{RequestID: 9, AdjustedPrice: 120, ScheduledDate: "soon"}
		if _, err := r.ToInput(); !errors.Is(err, ErrInvalidDate) {
			t.Fatalf("expected ErrInvalidDate, got %v", err)
		}
	})
}
