package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"homeclean/internal/domain/entities"
	mock_interfaces "homeclean/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func passthroughTx(tx *mock_interfaces.MockITxManager) {
	tx.EXPECT().WithinTx(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, fn func(context.Context) error) error {
			return fn(ctx)
		},
	)
}

func newQuoteMocks(t *testing.T) (*mock_interfaces.MockIQuoteRepository, *mock_interfaces.MockIServiceRequestRepository, *mock_interfaces.MockIOrderRepository, *mock_interfaces.MockITxManager, *QuoteUseCase) {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)
	quotes := mock_interfaces.NewMockIQuoteRepository(ctrl)
	requests := mock_interfaces.NewMockIServiceRequestRepository(ctrl)
	orders := mock_interfaces.NewMockIOrderRepository(ctrl)
	tx := mock_interfaces.NewMockITxManager(ctrl)
	return quotes, requests, orders, tx, NewQuoteUseCase(quotes, requests, orders, tx)
}

func TestQuoteUseCase_Create(t *testing.T) {
	sched := time.Date(2026, 9, 10, 0, 0, 0, 0, time.UTC)

	t.Run("request not found", func(t *testing.T) {
		_, requests, _, _, uc := newQuoteMocks(t)
		requests.EXPECT().GetByID(gomock.Any(), int64(9)).Return(entities.ServiceRequest{}, nil)

		_, err := uc.Create(context.Background(), 1, CreateQuoteInput{RequestID: 9})
		if !errors.Is(err, ErrRequestNotFound) {
			t.Fatalf("expected ErrRequestNotFound, got %v", err)
		}
	})

	t.Run("request not quotable", func(t *testing.T) {
		_, requests, _, _, uc := newQuoteMocks(t)
		requests.EXPECT().GetByID(gomock.Any(), int64(9)).Return(entities.ServiceRequest{ID: 9, Status: entities.RequestStatusAccepted}, nil)

		_, err := uc.Create(context.Background(), 1, CreateQuoteInput{RequestID: 9})
		if !errors.Is(err, ErrRequestNotQuotable) {
			t.Fatalf("expected ErrRequestNotQuotable, got %v", err)
		}
	})

	t.Run("invalid price", func(t *testing.T) {
		_, requests, _, _, uc := newQuoteMocks(t)
		requests.EXPECT().GetByID(gomock.Any(), int64(9)).Return(entities.ServiceRequest{ID: 9, Status: entities.RequestStatusPending}, nil)

		_, err := uc.Create(context.Background(), 1, CreateQuoteInput{RequestID: 9, AdjustedPrice: 0, ScheduledDate: sched, ScheduledTimeStart: "09:00", ScheduledTimeEnd: "11:00"})
		if !errors.Is(err, ErrInvalidQuotePrice) {
			t.Fatalf("expected ErrInvalidQuotePrice, got %v", err)
		}
	})

	t.Run("invalid schedule window", func(t *testing.T) {
		_, requests, _, _, uc := newQuoteMocks(t)
		requests.EXPECT().GetByID(gomock.Any(), int64(9)).Return(entities.ServiceRequest{ID: 9, Status: entities.RequestStatusPending}, nil)

		_, err := uc.Create(context.Background(), 1, CreateQuoteInput{RequestID: 9, AdjustedPrice: 120, ScheduledDate: sched, ScheduledTimeStart: "14:00", ScheduledTimeEnd: "09:00"})
		if !errors.Is(err, ErrInvalidSchedule) {
			t.Fatalf("expected ErrInvalidSchedule, got %v", err)
		}
	})

	t.Run("quote created and request marked quote_sent", func(t *testing.T) {
		quotes, requests, _, tx, uc := newQuoteMocks(t)
		requests.EXPECT().GetByID(gomock.Any(), int64(9)).Return(entities.ServiceRequest{ID: 9, Status: entities.RequestStatusPending}, nil)
		passthroughTx(tx)
		quotes.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.Quote{})).DoAndReturn(
			func(_ context.Context, q entities.Quote) (entities.Quote, error) {
				if q.RequestID != 9 || q.ContractorID != 1 || q.AdjustedPrice != 120 || q.Status != entities.QuoteStatusPending {
					t.Fatalf("unexpected quote: %+v", q)
				}
				q.ID = 5
				return q, nil
			},
		)
		requests.EXPECT().UpdateStatus(gomock.Any(), int64(9), entities.RequestStatusQuoteSent).Return(nil)

		created, err := uc.Create(context.Background(), 1, CreateQuoteInput{
			RequestID:          9,
			AdjustedPrice:      120,
			ScheduledDate:      sched,
			ScheduledTimeStart: "09:00",
			ScheduledTimeEnd:   "11:00",
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if created.ID != 5 {
			t.Fatalf("expected created id, got %+v", created)
		}
	})

	t.Run("requote while quote_sent stays quote_sent", func(t *testing.T) {
		quotes, requests, _, tx, uc := newQuoteMocks(t)
		requests.EXPECT().GetByID(gomock.Any(), int64(9)).Return(entities.ServiceRequest{ID: 9, Status: entities.RequestStatusQuoteSent}, nil)
		passthroughTx(tx)
		quotes.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, q entities.Quote) (entities.Quote, error) {
				q.ID = 6
				return q, nil
			},
		)
		requests.EXPECT().UpdateStatus(gomock.Any(), int64(9), entities.RequestStatusQuoteSent).Return(nil)

		_, err := uc.Create(context.Background(), 1, CreateQuoteInput{
			RequestID:          9,
			AdjustedPrice:      150,
			ScheduledDate:      sched,
			ScheduledTimeStart: "09:00",
			ScheduledTimeEnd:   "11:00",
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("rejection requires a reason", func(t *testing.T) {
		_, requests, _, _, uc := newQuoteMocks(t)
		requests.EXPECT().GetByID(gomock.Any(), int64(9)).Return(entities.ServiceRequest{ID: 9, Status: entities.RequestStatusPending}, nil)

		_, err := uc.Create(context.Background(), 1, CreateQuoteInput{RequestID: 9, IsRejection: true, RejectionReason: "   "})
		if !errors.Is(err, ErrRejectionReasonRequired) {
			t.Fatalf("expected ErrRejectionReasonRequired, got %v", err)
		}
	})

	t.Run("rejection persists rejected quote and rejects request", func(t *testing.T) {
		quotes, requests, _, tx, uc := newQuoteMocks(t)
		requests.EXPECT().GetByID(gomock.Any(), int64(9)).Return(entities.ServiceRequest{ID: 9, Status: entities.RequestStatusPending}, nil)
		passthroughTx(tx)
		quotes.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.Quote{})).DoAndReturn(
			func(_ context.Context, q entities.Quote) (entities.Quote, error) {
				if !q.IsRejection || q.Status != entities.QuoteStatusRejected || q.RejectionReason != "out of coverage area" {
					t.Fatalf("unexpected rejection quote: %+v", q)
				}
				if q.AdjustedPrice != 0 {
					t.Fatalf("rejection must carry zero price, got %v", q.AdjustedPrice)
				}
				q.ID = 7
				return q, nil
			},
		)
		requests.EXPECT().UpdateStatus(gomock.Any(), int64(9), entities.RequestStatusRejected).Return(nil)

		created, err := uc.Create(context.Background(), 1, CreateQuoteInput{RequestID: 9, IsRejection: true, RejectionReason: " out of coverage area "})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if created.ID != 7 {
			t.Fatalf("expected created id, got %+v", created)
		}
	})

	t.Run("request update failure rolls back through tx error", func(t *testing.T) {
		quotes, requests, _, tx, uc := newQuoteMocks(t)
		requests.EXPECT().GetByID(gomock.Any(), int64(9)).Return(entities.ServiceRequest{ID: 9, Status: entities.RequestStatusPending}, nil)
		passthroughTx(tx)
		quotes.EXPECT().Create(gomock.Any(), gomock.Any()).Return(entities.Quote{ID: 5}, nil)
		requests.EXPECT().UpdateStatus(gomock.Any(), int64(9), entities.RequestStatusQuoteSent).Return(errors.New("db"))

		_, err := uc.Create(context.Background(), 1, CreateQuoteInput{
			RequestID:          9,
			AdjustedPrice:      120,
			ScheduledDate:      sched,
			ScheduledTimeStart: "09:00",
			ScheduledTimeEnd:   "11:00",
		})
		if err == nil || err.Error() != "db" {
			t.Fatalf("expected db error, got %v", err)
		}
	})
}

func TestQuoteUseCase_Respond(t *testing.T) {
	base := entities.Quote{
		ID:                 5,
		RequestID:          9,
		ClientID:           3,
		AdjustedPrice:      120,
		ScheduledDate:      time.Date(2026, 9, 10, 0, 0, 0, 0, time.UTC),
		ScheduledTimeStart: "09:00",
		ScheduledTimeEnd:   "11:00",
		Status:             entities.QuoteStatusPending,
	}

	t.Run("invalid response type", func(t *testing.T) {
		_, _, _, _, uc := newQuoteMocks(t)
		err := uc.Respond(context.Background(), 5, 3, "maybe", "")
		if !errors.Is(err, ErrInvalidQuoteResponse) {
			t.Fatalf("expected ErrInvalidQuoteResponse, got %v", err)
		}
	})

	t.Run("quote not found", func(t *testing.T) {
		quotes, _, _, _, uc := newQuoteMocks(t)
		quotes.EXPECT().GetByID(gomock.Any(), int64(5)).Return(entities.Quote{}, nil)

		err := uc.Respond(context.Background(), 5, 3, entities.QuoteResponseAccept, "")
		if !errors.Is(err, ErrQuoteNotFound) {
			t.Fatalf("expected ErrQuoteNotFound, got %v", err)
		}
	})

	t.Run("other client denied", func(t *testing.T) {
		quotes, _, _, _, uc := newQuoteMocks(t)
		quotes.EXPECT().GetByID(gomock.Any(), int64(5)).Return(base, nil)

		err := uc.Respond(context.Background(), 5, 99, entities.QuoteResponseAccept, "")
		if !errors.Is(err, ErrQuoteAccessDenied) {
			t.Fatalf("expected ErrQuoteAccessDenied, got %v", err)
		}
	})

	t.Run("final quote refuses responses", func(t *testing.T) {
		quotes, _, _, _, uc := newQuoteMocks(t)
		accepted := base
		accepted.Status = entities.QuoteStatusAccepted
		quotes.EXPECT().GetByID(gomock.Any(), int64(5)).Return(accepted, nil)

		err := uc.Respond(context.Background(), 5, 3, entities.QuoteResponseAccept, "")
		if !errors.Is(err, ErrQuoteFinalStatus) {
			t.Fatalf("expected ErrQuoteFinalStatus, got %v", err)
		}
	})

	t.Run("counter requires a note", func(t *testing.T) {
		quotes, _, _, _, uc := newQuoteMocks(t)
		quotes.EXPECT().GetByID(gomock.Any(), int64(5)).Return(base, nil)

		err := uc.Respond(context.Background(), 5, 3, entities.QuoteResponseCounter, "  ")
		if !errors.Is(err, ErrCounterNoteRequired) {
			t.Fatalf("expected ErrCounterNoteRequired, got %v", err)
		}
	})

	t.Run("renegotiate moves quote to renegotiating only", func(t *testing.T) {
		quotes, _, _, tx, uc := newQuoteMocks(t)
		quotes.EXPECT().GetByID(gomock.Any(), int64(5)).Return(base, nil)
		passthroughTx(tx)
		quotes.EXPECT().AddResponse(gomock.Any(), gomock.AssignableToTypeOf(entities.QuoteResponse{})).DoAndReturn(
			func(_ context.Context, r entities.QuoteResponse) (entities.QuoteResponse, error) {
				if r.QuoteID != 5 || r.ResponderID != 3 || r.ResponseType != entities.QuoteResponseRenegotiate {
					t.Fatalf("unexpected response: %+v", r)
				}
				return r, nil
			},
		)
		quotes.EXPECT().UpdateStatusIfActive(gomock.Any(), int64(5), entities.QuoteStatusRenegotiating).Return(true, nil)

		if err := uc.Respond(context.Background(), 5, 3, entities.QuoteResponseRenegotiate, ""); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("accept finalizes quote, request and creates order atomically", func(t *testing.T) {
		quotes, requests, orders, tx, uc := newQuoteMocks(t)
		quotes.EXPECT().GetByID(gomock.Any(), int64(5)).Return(base, nil)
		passthroughTx(tx)
		quotes.EXPECT().AddResponse(gomock.Any(), gomock.Any()).Return(entities.QuoteResponse{}, nil)
		quotes.EXPECT().UpdateStatusIfActive(gomock.Any(), int64(5), entities.QuoteStatusAccepted).Return(true, nil)
		requests.EXPECT().GetByID(gomock.Any(), int64(9)).Return(entities.ServiceRequest{ID: 9, ClientID: 3, Status: entities.RequestStatusQuoteSent}, nil)
		requests.EXPECT().UpdateStatus(gomock.Any(), int64(9), entities.RequestStatusAccepted).Return(nil)
		orders.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.ServiceOrder{})).DoAndReturn(
			func(_ context.Context, o entities.ServiceOrder) (entities.ServiceOrder, error) {
				if o.RequestID != 9 || o.QuoteID != 5 || o.ClientID != 3 {
					t.Fatalf("unexpected order linkage: %+v", o)
				}
				if o.FinalPrice != base.AdjustedPrice || o.Status != entities.OrderStatusScheduled {
					t.Fatalf("order must copy quote terms: %+v", o)
				}
				if o.ScheduledTimeStart != "09:00" || o.ScheduledTimeEnd != "11:00" {
					t.Fatalf("order must copy schedule: %+v", o)
				}
				o.ID = 11
				return o, nil
			},
		)

		if err := uc.Respond(context.Background(), 5, 3, entities.QuoteResponseAccept, ""); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("accept refuses a request outside the transition table", func(t *testing.T) {
		quotes, requests, _, tx, uc := newQuoteMocks(t)
		quotes.EXPECT().GetByID(gomock.Any(), int64(5)).Return(base, nil)
		passthroughTx(tx)
		quotes.EXPECT().AddResponse(gomock.Any(), gomock.Any()).Return(entities.QuoteResponse{}, nil)
		quotes.EXPECT().UpdateStatusIfActive(gomock.Any(), int64(5), entities.QuoteStatusAccepted).Return(true, nil)
		requests.EXPECT().GetByID(gomock.Any(), int64(9)).Return(entities.ServiceRequest{ID: 9, ClientID: 3, Status: entities.RequestStatusRejected}, nil)

		err := uc.Respond(context.Background(), 5, 3, entities.QuoteResponseAccept, "")
		if !errors.Is(err, ErrRequestNotQuotable) {
			t.Fatalf("expected ErrRequestNotQuotable, got %v", err)
		}
	})

	t.Run("lost accept race surfaces final status", func(t *testing.T) {
		quotes, _, _, tx, uc := newQuoteMocks(t)
		quotes.EXPECT().GetByID(gomock.Any(), int64(5)).Return(base, nil)
		passthroughTx(tx)
		quotes.EXPECT().AddResponse(gomock.Any(), gomock.Any()).Return(entities.QuoteResponse{}, nil)
		quotes.EXPECT().UpdateStatusIfActive(gomock.Any(), int64(5), entities.QuoteStatusAccepted).Return(false, nil)

		err := uc.Respond(context.Background(), 5, 3, entities.QuoteResponseAccept, "")
		if !errors.Is(err, ErrQuoteFinalStatus) {
			t.Fatalf("expected ErrQuoteFinalStatus, got %v", err)
		}
	})

	t.Run("order create failure aborts the accept", func(t *testing.T) {
		quotes, requests, orders, tx, uc := newQuoteMocks(t)
		quotes.EXPECT().GetByID(gomock.Any(), int64(5)).Return(base, nil)
		passthroughTx(tx)
		quotes.EXPECT().AddResponse(gomock.Any(), gomock.Any()).Return(entities.QuoteResponse{}, nil)
		quotes.EXPECT().UpdateStatusIfActive(gomock.Any(), int64(5), entities.QuoteStatusAccepted).Return(true, nil)
		requests.EXPECT().GetByID(gomock.Any(), int64(9)).Return(entities.ServiceRequest{ID: 9, ClientID: 3, Status: entities.RequestStatusQuoteSent}, nil)
		requests.EXPECT().UpdateStatus(gomock.Any(), int64(9), entities.RequestStatusAccepted).Return(nil)
		orders.EXPECT().Create(gomock.Any(), gomock.Any()).Return(entities.ServiceOrder{}, errors.New("db"))

		err := uc.Respond(context.Background(), 5, 3, entities.QuoteResponseAccept, "")
		if err == nil || err.Error() != "db" {
			t.Fatalf("expected db error, got %v", err)
		}
	})
}

func TestQuoteUseCase_Get(t *testing.T) {
	t.Run("not found", func(t *testing.T) {
		quotes, _, _, _, uc := newQuoteMocks(t)
		quotes.EXPECT().GetByID(gomock.Any(), int64(5)).Return(entities.Quote{}, nil)

		_, err := uc.Get(context.Background(), 5, 3, entities.RoleClient)
		if !errors.Is(err, ErrQuoteNotFound) {
			t.Fatalf("expected ErrQuoteNotFound, got %v", err)
		}
	})

	t.Run("client cannot read another client's quote", func(t *testing.T) {
		quotes, _, _, _, uc := newQuoteMocks(t)
		quotes.EXPECT().GetByID(gomock.Any(), int64(5)).Return(entities.Quote{ID: 5, ClientID: 3}, nil)

		_, err := uc.Get(context.Background(), 5, 99, entities.RoleClient)
		if !errors.Is(err, ErrQuoteAccessDenied) {
			t.Fatalf("expected ErrQuoteAccessDenied, got %v", err)
		}
	})

	t.Run("contractor reads any quote with responses", func(t *testing.T) {
		quotes, _, _, _, uc := newQuoteMocks(t)
		quotes.EXPECT().GetByID(gomock.Any(), int64(5)).Return(entities.Quote{ID: 5, ClientID: 3}, nil)
		quotes.EXPECT().ListResponses(gomock.Any(), int64(5)).Return([]entities.QuoteResponse{{ID: 1, QuoteID: 5}}, nil)

		q, err := uc.Get(context.Background(), 5, 1, entities.RoleContractor)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(q.Responses) != 1 {
			t.Fatalf("expected responses attached, got %+v", q.Responses)
		}
	})
}

func TestQuoteUseCase_ListByRequest(t *testing.T) {
	t.Run("contractor sees all", func(t *testing.T) {
		quotes, _, _, _, uc := newQuoteMocks(t)
		quotes.EXPECT().ListByRequest(gomock.Any(), int64(9)).Return([]entities.Quote{{ID: 5}}, nil)

		res, err := uc.ListByRequest(context.Background(), 9, 1, entities.RoleContractor)
		if err != nil || len(res) != 1 {
			t.Fatalf("unexpected result: %v %v", res, err)
		}
	})

	t.Run("client scoped to own request", func(t *testing.T) {
		quotes, _, _, _, uc := newQuoteMocks(t)
		quotes.EXPECT().ListByRequestForClient(gomock.Any(), int64(9), int64(3)).Return(nil, nil)

		res, err := uc.ListByRequest(context.Background(), 9, 3, entities.RoleClient)
		if err != nil || res != nil {
			t.Fatalf("unexpected result: %v %v", res, err)
		}
	})
}
