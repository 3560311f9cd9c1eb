package usecase

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"homeclean/internal/domain/entities"
	"homeclean/internal/usecase/interfaces"
)

var (
	ErrQuoteNotFound           = errors.New("quote not found")
	ErrQuoteAccessDenied       = errors.New("quote access denied")
	ErrQuoteFinalStatus        = errors.New("quote already has final status")
	ErrRequestNotQuotable      = errors.New("request is not open for quotes")
	ErrRejectionReasonRequired = errors.New("rejection reason is required")
	ErrInvalidQuotePrice       = errors.New("adjusted price must be greater than zero")
	ErrInvalidSchedule         = errors.New("invalid scheduled window")
	ErrInvalidQuoteResponse    = errors.New("invalid quote response type")
	ErrCounterNoteRequired     = errors.New("counter note is required")
)

// CreateQuoteInput is the domain command for quoting or rejecting a request.
// When IsRejection is set the price/schedule fields are ignored and a
// degenerate rejected quote is persisted instead.
type CreateQuoteInput struct {
	RequestID          int64
	AdjustedPrice      float64
	ScheduledDate      time.Time
	ScheduledTimeStart string
	ScheduledTimeEnd   string
	Notes              string
	IsRejection        bool
	RejectionReason    string
}

// IQuoteUseCase is the quote half of the negotiation engine: quote/rejection
// creation by the contractor and client responses driving the quote, the
// request and — on acceptance — order creation.
//
// Accepting a quote must atomically mark the quote accepted, mark the request
// accepted and create the service order; the three writes share one
// transaction so a failed order insert rolls everything back.

type IQuoteUseCase interface {
	Create(ctx context.Context, contractorID int64, in CreateQuoteInput) (entities.Quote, error)
	Respond(ctx context.Context, quoteID, clientID int64, responseType entities.QuoteResponseType, counterNote string) error
	Get(ctx context.Context, id, userID int64, role entities.Role) (entities.Quote, error)
	ListByRequest(ctx context.Context, requestID, userID int64, role entities.Role) ([]entities.Quote, error)
}

type QuoteUseCase struct {
	quotes   interfaces.IQuoteRepository
	requests interfaces.IServiceRequestRepository
	orders   interfaces.IOrderRepository
	tx       interfaces.ITxManager
}

var _ IQuoteUseCase = (*QuoteUseCase)(nil)

func NewQuoteUseCase(quotes interfaces.IQuoteRepository, requests interfaces.IServiceRequestRepository, orders interfaces.IOrderRepository, tx interfaces.ITxManager) *QuoteUseCase {
	return &QuoteUseCase{quotes: quotes, requests: requests, orders: orders, tx: tx}
}

func (u *QuoteUseCase) Create(ctx context.Context, contractorID int64, in CreateQuoteInput) (entities.Quote, error) {
	req, err := u.requests.GetByID(ctx, in.RequestID)
	if err != nil {
		return entities.Quote{}, err
	}
	if req.ID == 0 {
		return entities.Quote{}, ErrRequestNotFound
	}
	if !req.Status.Quotable() {
		return entities.Quote{}, ErrRequestNotQuotable
	}

	if in.IsRejection {
		return u.createRejection(ctx, contractorID, req, in)
	}
	return u.createQuote(ctx, contractorID, req, in)
}

func (u *QuoteUseCase) createRejection(ctx context.Context, contractorID int64, req entities.ServiceRequest, in CreateQuoteInput) (entities.Quote, error) {
	reason := strings.TrimSpace(in.RejectionReason)
	if reason == "" {
		return entities.Quote{}, ErrRejectionReasonRequired
	}
	nextReq, ok := entities.NextRequestStatus(req.Status, entities.RequestEventQuoteRejected)
	if !ok {
		return entities.Quote{}, ErrRequestNotQuotable
	}

	// A rejection is a degenerate quote: zero price, dummy schedule, born
	// rejected. It can never leave the rejected status.
	q := entities.Quote{
		RequestID:          req.ID,
		ContractorID:       contractorID,
		AdjustedPrice:      0,
		ScheduledDate:      time.Now().UTC().Truncate(24 * time.Hour),
		ScheduledTimeStart: "00:00",
		ScheduledTimeEnd:   "00:00",
		Notes:              strings.TrimSpace(in.Notes),
		IsRejection:        true,
		RejectionReason:    reason,
		Status:             entities.QuoteStatusRejected,
	}

	var created entities.Quote
	err := u.tx.WithinTx(ctx, func(ctx context.Context) error {
		var err error
		created, err = u.quotes.Create(ctx, q)
		if err != nil {
			return err
		}
		return u.requests.UpdateStatus(ctx, req.ID, nextReq)
	})
	if err != nil {
		return entities.Quote{}, err
	}
	log.Printf("[quote][usecase] rejection created quote_id=%d request_id=%d", created.ID, req.ID)
	return created, nil
}

func (u *QuoteUseCase) createQuote(ctx context.Context, contractorID int64, req entities.ServiceRequest, in CreateQuoteInput) (entities.Quote, error) {
	if in.AdjustedPrice <= 0 {
		return entities.Quote{}, ErrInvalidQuotePrice
	}
	start := strings.TrimSpace(in.ScheduledTimeStart)
	end := strings.TrimSpace(in.ScheduledTimeEnd)
	if in.ScheduledDate.IsZero() || start == "" || end == "" || start >= end {
		return entities.Quote{}, ErrInvalidSchedule
	}
	nextReq, ok := entities.NextRequestStatus(req.Status, entities.RequestEventQuoteSent)
	if !ok {
		return entities.Quote{}, ErrRequestNotQuotable
	}

	q := entities.Quote{
		RequestID:          req.ID,
		ContractorID:       contractorID,
		AdjustedPrice:      in.AdjustedPrice,
		ScheduledDate:      in.ScheduledDate,
		ScheduledTimeStart: start,
		ScheduledTimeEnd:   end,
		Notes:              strings.TrimSpace(in.Notes),
		Status:             entities.QuoteStatusPending,
	}

	var created entities.Quote
	err := u.tx.WithinTx(ctx, func(ctx context.Context) error {
		var err error
		created, err = u.quotes.Create(ctx, q)
		if err != nil {
			return err
		}
		return u.requests.UpdateStatus(ctx, req.ID, nextReq)
	})
	if err != nil {
		return entities.Quote{}, err
	}
	log.Printf("[quote][usecase] quote created quote_id=%d request_id=%d price=%.2f", created.ID, req.ID, created.AdjustedPrice)
	return created, nil
}

// Respond appends a client response and applies its side effects. accept is
// one-way: the status write is a conditional update so two concurrent accepts
// cannot both finalize the quote — the loser's transaction sees zero affected
// rows and rolls back, including its already-inserted response row.
func (u *QuoteUseCase) Respond(ctx context.Context, quoteID, clientID int64, responseType entities.QuoteResponseType, counterNote string) error {
	if !responseType.Valid() {
		return ErrInvalidQuoteResponse
	}

	q, err := u.quotes.GetByID(ctx, quoteID)
	if err != nil {
		return err
	}
	if q.ID == 0 {
		return ErrQuoteNotFound
	}
	if q.ClientID != clientID {
		return ErrQuoteAccessDenied
	}
	if q.Status.Final() {
		return ErrQuoteFinalStatus
	}

	counterNote = strings.TrimSpace(counterNote)
	if responseType.RequiresNote() && counterNote == "" {
		return ErrCounterNoteRequired
	}

	next, ok := entities.NextQuoteStatus(q.Status, responseType)
	if !ok {
		return ErrQuoteFinalStatus
	}

	err = u.tx.WithinTx(ctx, func(ctx context.Context) error {
		if _, err := u.quotes.AddResponse(ctx, entities.QuoteResponse{
			QuoteID:      quoteID,
			ResponderID:  clientID,
			ResponseType: responseType,
			CounterNote:  counterNote,
		}); err != nil {
			return err
		}

		applied, err := u.quotes.UpdateStatusIfActive(ctx, quoteID, next)
		if err != nil {
			return err
		}
		if !applied {
			return ErrQuoteFinalStatus
		}

		if responseType != entities.QuoteResponseAccept {
			return nil
		}

		req, err := u.requests.GetByID(ctx, q.RequestID)
		if err != nil {
			return err
		}
		nextReq, ok := entities.NextRequestStatus(req.Status, entities.RequestEventQuoteAccepted)
		if !ok {
			return ErrRequestNotQuotable
		}
		if err := u.requests.UpdateStatus(ctx, q.RequestID, nextReq); err != nil {
			return err
		}
		_, err = u.orders.Create(ctx, entities.ServiceOrder{
			RequestID:          q.RequestID,
			QuoteID:            quoteID,
			ClientID:           clientID,
			ScheduledDate:      q.ScheduledDate,
			ScheduledTimeStart: q.ScheduledTimeStart,
			ScheduledTimeEnd:   q.ScheduledTimeEnd,
			FinalPrice:         q.AdjustedPrice,
			Status:             entities.OrderStatusScheduled,
		})
		return err
	})
	if err != nil {
		return err
	}

	log.Printf("[quote][usecase] response saved quote_id=%d type=%s status=%s", quoteID, responseType, next)
	return nil
}

func (u *QuoteUseCase) Get(ctx context.Context, id, userID int64, role entities.Role) (entities.Quote, error) {
	q, err := u.quotes.GetByID(ctx, id)
	if err != nil {
		return entities.Quote{}, err
	}
	if q.ID == 0 {
		return entities.Quote{}, ErrQuoteNotFound
	}
	if role == entities.RoleClient && q.ClientID != userID {
		return entities.Quote{}, ErrQuoteAccessDenied
	}

	responses, err := u.quotes.ListResponses(ctx, q.ID)
	if err != nil {
		return entities.Quote{}, err
	}
	q.Responses = responses
	return q, nil
}

func (u *QuoteUseCase) ListByRequest(ctx context.Context, requestID, userID int64, role entities.Role) ([]entities.Quote, error) {
	if role == entities.RoleContractor {
		return u.quotes.ListByRequest(ctx, requestID)
	}
	return u.quotes.ListByRequestForClient(ctx, requestID, userID)
}
