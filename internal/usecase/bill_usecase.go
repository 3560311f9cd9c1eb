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
	ErrBillNotFound          = errors.New("bill not found")
	ErrBillAlreadyPaid       = errors.New("bill already paid")
	ErrInvalidBillResponse   = errors.New("invalid bill response type")
	ErrDisputeNoteRequired   = errors.New("dispute note is required")
	ErrRevisedAmountRequired = errors.New("revised amount is required")
	ErrOnlyContractorRevise  = errors.New("only contractor can revise bills")
	ErrOnlyClientPayDispute  = errors.New("only clients can pay or dispute bills")
)

// BillResponseInput is the domain command for responding to a bill.
type BillResponseInput struct {
	ResponseType  entities.BillResponseType
	DisputeNote   string
	RevisedAmount float64
	RevisionNote  string
}

// IBillUseCase covers the bill half of the engine: append-only responses
// driving the bill status. pay and dispute belong to the owning client,
// revise to the contractor; a paid bill rejects pay/dispute but may still be
// revised back to pending with a new amount.

type IBillUseCase interface {
	Respond(ctx context.Context, billID, userID int64, role entities.Role, in BillResponseInput) error
	Get(ctx context.Context, id, userID int64, role entities.Role) (entities.Bill, error)
	List(ctx context.Context, userID int64, role entities.Role) ([]entities.Bill, error)
}

type BillUseCase struct {
	bills interfaces.IBillRepository
	tx    interfaces.ITxManager
}

var _ IBillUseCase = (*BillUseCase)(nil)

func NewBillUseCase(bills interfaces.IBillRepository, tx interfaces.ITxManager) *BillUseCase {
	return &BillUseCase{bills: bills, tx: tx}
}

func (u *BillUseCase) Respond(ctx context.Context, billID, userID int64, role entities.Role, in BillResponseInput) error {
	if !in.ResponseType.Valid() {
		return ErrInvalidBillResponse
	}
	if !in.ResponseType.AllowedFor(role) {
		if in.ResponseType == entities.BillResponseRevise {
			return ErrOnlyContractorRevise
		}
		return ErrOnlyClientPayDispute
	}

	b, err := u.getScoped(ctx, billID, userID, role)
	if err != nil {
		return err
	}

	if _, ok := entities.NextBillStatus(b.Status, in.ResponseType); !ok {
		return ErrBillAlreadyPaid
	}

	in.DisputeNote = strings.TrimSpace(in.DisputeNote)
	in.RevisionNote = strings.TrimSpace(in.RevisionNote)
	switch in.ResponseType {
	case entities.BillResponseDispute:
		if in.DisputeNote == "" {
			return ErrDisputeNoteRequired
		}
	case entities.BillResponseRevise:
		if in.RevisedAmount <= 0 {
			return ErrRevisedAmountRequired
		}
	}

	err = u.tx.WithinTx(ctx, func(ctx context.Context) error {
		if _, err := u.bills.AddResponse(ctx, entities.BillResponse{
			BillID:        billID,
			ResponderID:   userID,
			ResponseType:  in.ResponseType,
			DisputeNote:   in.DisputeNote,
			RevisedAmount: in.RevisedAmount,
			RevisionNote:  in.RevisionNote,
		}); err != nil {
			return err
		}

		switch in.ResponseType {
		case entities.BillResponsePay:
			applied, err := u.bills.MarkPaidIfUnpaid(ctx, billID)
			if err != nil {
				return err
			}
			if !applied {
				return ErrBillAlreadyPaid
			}
			return nil
		case entities.BillResponseDispute:
			applied, err := u.bills.MarkDisputedIfUnpaid(ctx, billID)
			if err != nil {
				return err
			}
			if !applied {
				return ErrBillAlreadyPaid
			}
			return nil
		default:
			return u.bills.Revise(ctx, billID, in.RevisedAmount)
		}
	})
	if err != nil {
		return err
	}

	log.Printf("[bill][usecase] response saved bill_id=%d type=%s responder_id=%d", billID, in.ResponseType, userID)
	return nil
}

func (u *BillUseCase) Get(ctx context.Context, id, userID int64, role entities.Role) (entities.Bill, error) {
	b, err := u.getScoped(ctx, id, userID, role)
	if err != nil {
		return entities.Bill{}, err
	}

	responses, err := u.bills.ListResponses(ctx, b.ID)
	if err != nil {
		return entities.Bill{}, err
	}
	b.Responses = responses
	return b, nil
}

func (u *BillUseCase) List(ctx context.Context, userID int64, role entities.Role) ([]entities.Bill, error) {
	if role == entities.RoleContractor {
		return u.bills.ListAll(ctx)
	}
	return u.bills.ListByClient(ctx, userID)
}

func (u *BillUseCase) getScoped(ctx context.Context, id, userID int64, role entities.Role) (entities.Bill, error) {
	var (
		b   entities.Bill
		err error
	)
	if role == entities.RoleContractor {
		b, err = u.bills.GetByID(ctx, id)
	} else {
		b, err = u.bills.GetByIDForClient(ctx, id, userID)
	}
	if err != nil {
		return entities.Bill{}, err
	}
	if b.ID == 0 {
		return entities.Bill{}, ErrBillNotFound
	}
	return b, nil
}
