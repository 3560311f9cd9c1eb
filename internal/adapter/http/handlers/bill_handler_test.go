package handlers

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"homeclean/internal/adapter/http/handlers/mocks"
	"homeclean/internal/domain/entities"
	"homeclean/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func TestBillHandler_Respond(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid json", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIBillUseCase(ctrl)
		h := NewBillHandler(uc)

		r := gin.New()
		r.POST("/v1/bills/:id/respond", asUser(3, entities.RoleClient), h.Respond)

		req := httptest.NewRequest(http.MethodPost, "/v1/bills/21/respond", bytes.NewBufferString("{"))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("already paid maps to 400", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIBillUseCase(ctrl)
		h := NewBillHandler(uc)

		r := gin.New()
		r.POST("/v1/bills/:id/respond", asUser(3, entities.RoleClient), h.Respond)

		uc.EXPECT().Respond(gomock.Any(), int64(21), int64(3), entities.RoleClient, gomock.Any()).Return(usecase.ErrBillAlreadyPaid)

		req := httptest.NewRequest(http.MethodPost, "/v1/bills/21/respond", bytes.NewBufferString(`{"response_type":"pay"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("role denial maps to 403", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIBillUseCase(ctrl)
		h := NewBillHandler(uc)

		r := gin.New()
		r.POST("/v1/bills/:id/respond", asUser(1, entities.RoleContractor), h.Respond)

		uc.EXPECT().Respond(gomock.Any(), int64(21), int64(1), entities.RoleContractor, gomock.Any()).Return(usecase.ErrOnlyClientPayDispute)

		req := httptest.NewRequest(http.MethodPost, "/v1/bills/21/respond", bytes.NewBufferString(`{"response_type":"pay"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusForbidden {
			t.Fatalf("expected 403, got %d", w.Code)
		}
	})

	t.Run("revise success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIBillUseCase(ctrl)
		h := NewBillHandler(uc)

		r := gin.New()
		r.POST("/v1/bills/:id/respond", asUser(1, entities.RoleContractor), h.Respond)

		uc.EXPECT().Respond(gomock.Any(), int64(21), int64(1), entities.RoleContractor, usecase.BillResponseInput{
			ResponseType:  entities.BillResponseRevise,
			RevisedAmount: 95,
			RevisionNote:  "smaller scope",
		}).Return(nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/bills/21/respond", bytes.NewBufferString(`{"response_type":"revise","revised_amount":95,"revision_note":"smaller scope"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNoContent {
			t.Fatalf("expected 204, got %d", w.Code)
		}
	})
}

func TestBillHandler_Get(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIBillUseCase(ctrl)
		h := NewBillHandler(uc)

		r := gin.New()
		r.GET("/v1/bills/:id", asUser(3, entities.RoleClient), h.Get)

		uc.EXPECT().Get(gomock.Any(), int64(21), int64(3), entities.RoleClient).Return(entities.Bill{}, usecase.ErrBillNotFound)

		req := httptest.NewRequest(http.MethodGet, "/v1/bills/21", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIBillUseCase(ctrl)
		h := NewBillHandler(uc)

		r := gin.New()
		r.GET("/v1/bills/:id", asUser(1, entities.RoleContractor), h.Get)

		uc.EXPECT().Get(gomock.Any(), int64(21), int64(1), entities.RoleContractor).Return(entities.Bill{ID: 21, Amount: 120}, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/bills/21", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})
}

func TestBillHandler_List(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIBillUseCase(ctrl)
		h := NewBillHandler(uc)

		r := gin.New()
		r.GET("/v1/bills", asUser(3, entities.RoleClient), h.List)

		uc.EXPECT().List(gomock.Any(), int64(3), entities.RoleClient).Return([]entities.Bill{{ID: 21}}, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/bills", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})
}
