package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"homeclean/internal/adapter/http/handlers/mocks"
	"homeclean/internal/domain/entities"
	"homeclean/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func TestOrderHandler_Complete(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid id", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIOrderUseCase(ctrl)
		h := NewOrderHandler(uc)

		r := gin.New()
		r.POST("/v1/orders/:id/complete", asUser(1, entities.RoleContractor), h.Complete)

		req := httptest.NewRequest(http.MethodPost, "/v1/orders/nope/complete", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("already completed maps to 400", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIOrderUseCase(ctrl)
		h := NewOrderHandler(uc)

		r := gin.New()
		r.POST("/v1/orders/:id/complete", asUser(1, entities.RoleContractor), h.Complete)

		uc.EXPECT().Complete(gomock.Any(), int64(11)).Return(entities.Bill{}, usecase.ErrOrderAlreadyCompleted)

		req := httptest.NewRequest(http.MethodPost, "/v1/orders/11/complete", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("success returns the bill", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIOrderUseCase(ctrl)
		h := NewOrderHandler(uc)

		r := gin.New()
		r.POST("/v1/orders/:id/complete", asUser(1, entities.RoleContractor), h.Complete)

		uc.EXPECT().Complete(gomock.Any(), int64(11)).Return(entities.Bill{ID: 21, OrderID: 11, Amount: 120, Status: entities.BillStatusPending}, nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/orders/11/complete", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
	})
}

func TestOrderHandler_Get(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIOrderUseCase(ctrl)
		h := NewOrderHandler(uc)

		r := gin.New()
		r.GET("/v1/orders/:id", asUser(3, entities.RoleClient), h.Get)

		uc.EXPECT().Get(gomock.Any(), int64(11), int64(3), entities.RoleClient).Return(entities.ServiceOrder{}, usecase.ErrOrderNotFound)

		req := httptest.NewRequest(http.MethodGet, "/v1/orders/11", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})
}
