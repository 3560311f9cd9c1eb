package handlers

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"homeclean/internal/adapter/http/handlers/mocks"
	"homeclean/internal/domain/entities"
	"homeclean/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func asUser(id int64, role entities.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(ctxUserID, id)
		c.Set(ctxRole, role)
		c.Next()
	}
}

func TestQuoteHandler_Create(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid json", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuoteUseCase(ctrl)
		h := NewQuoteHandler(uc)

		r := gin.New()
		r.POST("/v1/quotes", asUser(1, entities.RoleContractor), h.Create)

		req := httptest.NewRequest(http.MethodPost, "/v1/quotes", bytes.NewBufferString("{"))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("bad scheduled date", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuoteUseCase(ctrl)
		h := NewQuoteHandler(uc)

		r := gin.New()
		r.POST("/v1/quotes", asUser(1, entities.RoleContractor), h.Create)

		req := httptest.NewRequest(http.MethodPost, "/v1/quotes", bytes.NewBufferString(`{"request_id":9,"adjusted_price":120,"scheduled_date":"soon"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("request not quotable maps to 400", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuoteUseCase(ctrl)
		h := NewQuoteHandler(uc)

		r := gin.New()
		r.POST("/v1/quotes", asUser(1, entities.RoleContractor), h.Create)

		uc.EXPECT().Create(gomock.Any(), int64(1), gomock.Any()).Return(entities.Quote{}, usecase.ErrRequestNotQuotable)

		req := httptest.NewRequest(http.MethodPost, "/v1/quotes", bytes.NewBufferString(`{"request_id":9,"adjusted_price":120,"scheduled_date":"2026-09-10","scheduled_time_start":"09:00","scheduled_time_end":"11:00"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuoteUseCase(ctrl)
		h := NewQuoteHandler(uc)

		r := gin.New()
		r.POST("/v1/quotes", asUser(1, entities.RoleContractor), h.Create)

		uc.EXPECT().Create(gomock.Any(), int64(1), gomock.Any()).Return(entities.Quote{
			ID:            5,
			RequestID:     9,
			ContractorID:  1,
			AdjustedPrice: 120,
			ScheduledDate: time.Date(2026, 9, 10, 0, 0, 0, 0, time.UTC),
			Status:        entities.QuoteStatusPending,
		}, nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/quotes", bytes.NewBufferString(`{"request_id":9,"adjusted_price":120,"scheduled_date":"2026-09-10","scheduled_time_start":"09:00","scheduled_time_end":"11:00"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
	})
}

func TestQuoteHandler_Respond(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid id", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuoteUseCase(ctrl)
		h := NewQuoteHandler(uc)

		r := gin.New()
		r.POST("/v1/quotes/:id/respond", asUser(3, entities.RoleClient), h.Respond)

		req := httptest.NewRequest(http.MethodPost, "/v1/quotes/zero/respond", bytes.NewBufferString(`{"response_type":"accept"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("final status maps to 400", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuoteUseCase(ctrl)
		h := NewQuoteHandler(uc)

		r := gin.New()
		r.POST("/v1/quotes/:id/respond", asUser(3, entities.RoleClient), h.Respond)

		uc.EXPECT().Respond(gomock.Any(), int64(5), int64(3), entities.QuoteResponseAccept, "").Return(usecase.ErrQuoteFinalStatus)

		req := httptest.NewRequest(http.MethodPost, "/v1/quotes/5/respond", bytes.NewBufferString(`{"response_type":"accept"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("access denied maps to 403", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuoteUseCase(ctrl)
		h := NewQuoteHandler(uc)

		r := gin.New()
		r.POST("/v1/quotes/:id/respond", asUser(99, entities.RoleClient), h.Respond)

		uc.EXPECT().Respond(gomock.Any(), int64(5), int64(99), entities.QuoteResponseAccept, "").Return(usecase.ErrQuoteAccessDenied)

		req := httptest.NewRequest(http.MethodPost, "/v1/quotes/5/respond", bytes.NewBufferString(`{"response_type":"accept"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusForbidden {
			t.Fatalf("expected 403, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuoteUseCase(ctrl)
		h := NewQuoteHandler(uc)

		r := gin.New()
		r.POST("/v1/quotes/:id/respond", asUser(3, entities.RoleClient), h.Respond)

		uc.EXPECT().Respond(gomock.Any(), int64(5), int64(3), entities.QuoteResponseCounter, "can you do 100").Return(nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/quotes/5/respond", bytes.NewBufferString(`{"response_type":"counter","counter_note":"can you do 100"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNoContent {
			t.Fatalf("expected 204, got %d", w.Code)
		}
	})
}

func TestQuoteHandler_Get(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuoteUseCase(ctrl)
		h := NewQuoteHandler(uc)

		r := gin.New()
		r.GET("/v1/quotes/:id", asUser(3, entities.RoleClient), h.Get)

		uc.EXPECT().Get(gomock.Any(), int64(5), int64(3), entities.RoleClient).Return(entities.Quote{}, usecase.ErrQuoteNotFound)

		req := httptest.NewRequest(http.MethodGet, "/v1/quotes/5", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuoteUseCase(ctrl)
		h := NewQuoteHandler(uc)

		r := gin.New()
		r.GET("/v1/quotes/:id", asUser(1, entities.RoleContractor), h.Get)

		uc.EXPECT().Get(gomock.Any(), int64(5), int64(1), entities.RoleContractor).Return(entities.Quote{ID: 5}, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/quotes/5", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})
}
