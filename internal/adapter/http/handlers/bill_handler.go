package handlers

import (
	"errors"
	"net/http"

	request "homeclean/internal/adapter/http/dto/request"
	response "homeclean/internal/adapter/http/dto/response"
	"homeclean/internal/domain/entities"
	"homeclean/internal/usecase"
	"homeclean/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidBillPayload = pkg.NewDomainErrorSimple("INVALID_BILL_INPUT", "Invalid bill payload", http.StatusBadRequest)
	errInvalidBillID      = pkg.NewDomainErrorSimple("INVALID_BILL_ID", "Invalid bill id", http.StatusBadRequest)
)

// BillHandler handles bills and their response history.

type BillHandler struct {
	usecase usecase.IBillUseCase
}

func NewBillHandler(uc usecase.IBillUseCase) *BillHandler {
	return &BillHandler{usecase: uc}
}

// Respond appends pay/dispute/revise to the bill.
func (h *BillHandler) Respond(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		c.JSON(errInvalidBillID.HTTPStatus, errInvalidBillID.ToHTTPError())
		return
	}

	var payload request.BillResponseRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidBillPayload.HTTPStatus, errInvalidBillPayload.ToHTTPError())
		return
	}

	err := h.usecase.Respond(c.Request.Context(), id, callerID(c), callerRole(c), usecase.BillResponseInput{
		ResponseType:  entities.BillResponseType(payload.ResponseType),
		DisputeNote:   payload.DisputeNote,
		RevisedAmount: payload.RevisedAmount,
		RevisionNote:  payload.RevisionNote,
	})
	if err != nil {
		appErr := mapBillError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *BillHandler) Get(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		c.JSON(errInvalidBillID.HTTPStatus, errInvalidBillID.ToHTTPError())
		return
	}

	b, err := h.usecase.Get(c.Request.Context(), id, callerID(c), callerRole(c))
	if err != nil {
		appErr := mapBillError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromBill(b))
}

func (h *BillHandler) List(c *gin.Context) {
	bs, err := h.usecase.List(c.Request.Context(), callerID(c), callerRole(c))
	if err != nil {
		appErr := mapBillError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromBills(bs))
}

func mapBillError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidBillResponse),
		errors.Is(err, usecase.ErrDisputeNoteRequired),
		errors.Is(err, usecase.ErrRevisedAmountRequired):
		return pkg.NewDomainErrorSimple("INVALID_BILL_INPUT", err.Error(), http.StatusBadRequest)
	case errors.Is(err, usecase.ErrOnlyContractorRevise),
		errors.Is(err, usecase.ErrOnlyClientPayDispute):
		return pkg.NewDomainErrorSimple("BILL_ROLE_DENIED", err.Error(), http.StatusForbidden)
	case errors.Is(err, usecase.ErrBillAlreadyPaid):
		return pkg.NewDomainErrorSimple("BILL_ALREADY_PAID", "Bill already paid", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrBillNotFound):
		return pkg.NewDomainErrorSimple("BILL_NOT_FOUND", "Bill not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
