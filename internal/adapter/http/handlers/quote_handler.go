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
	errInvalidQuotePayload = pkg.NewDomainErrorSimple("INVALID_QUOTE_INPUT", "Invalid quote payload", http.StatusBadRequest)
	errInvalidQuoteID      = pkg.NewDomainErrorSimple("INVALID_QUOTE_ID", "Invalid quote id", http.StatusBadRequest)
)

// QuoteHandler handles contractor quotes and client responses.

type QuoteHandler struct {
	usecase usecase.IQuoteUseCase
}

func NewQuoteHandler(uc usecase.IQuoteUseCase) *QuoteHandler {
	return &QuoteHandler{usecase: uc}
}

// Create is the contractor endpoint for quoting or rejecting a request.
func (h *QuoteHandler) Create(c *gin.Context) {
	var payload request.CreateQuoteRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidQuotePayload.HTTPStatus, errInvalidQuotePayload.ToHTTPError())
		return
	}

	in, err := payload.ToInput()
	if err != nil {
		c.JSON(errInvalidQuotePayload.HTTPStatus, errInvalidQuotePayload.ToHTTPError())
		return
	}

	created, err := h.usecase.Create(c.Request.Context(), callerID(c), in)
	if err != nil {
		appErr := mapQuoteError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromQuote(created))
}

// Respond is the client endpoint for accept/renegotiate/counter.
func (h *QuoteHandler) Respond(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		c.JSON(errInvalidQuoteID.HTTPStatus, errInvalidQuoteID.ToHTTPError())
		return
	}

	var payload request.QuoteResponseRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidQuotePayload.HTTPStatus, errInvalidQuotePayload.ToHTTPError())
		return
	}

	err := h.usecase.Respond(c.Request.Context(), id, callerID(c), entities.QuoteResponseType(payload.ResponseType), payload.CounterNote)
	if err != nil {
		appErr := mapQuoteError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *QuoteHandler) Get(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		c.JSON(errInvalidQuoteID.HTTPStatus, errInvalidQuoteID.ToHTTPError())
		return
	}

	q, err := h.usecase.Get(c.Request.Context(), id, callerID(c), callerRole(c))
	if err != nil {
		appErr := mapQuoteError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromQuote(q))
}

// ListByRequest lists the quotes of one service request.
func (h *QuoteHandler) ListByRequest(c *gin.Context) {
	requestID, ok := pathID(c, "id")
	if !ok {
		c.JSON(errInvalidRequestID.HTTPStatus, errInvalidRequestID.ToHTTPError())
		return
	}

	qs, err := h.usecase.ListByRequest(c.Request.Context(), requestID, callerID(c), callerRole(c))
	if err != nil {
		appErr := mapQuoteError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromQuotes(qs))
}

func mapQuoteError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidQuotePrice),
		errors.Is(err, usecase.ErrInvalidSchedule),
		errors.Is(err, usecase.ErrInvalidQuoteResponse),
		errors.Is(err, usecase.ErrRejectionReasonRequired),
		errors.Is(err, usecase.ErrCounterNoteRequired):
		return pkg.NewDomainErrorSimple("INVALID_QUOTE_INPUT", err.Error(), http.StatusBadRequest)
	case errors.Is(err, usecase.ErrRequestNotQuotable):
		return pkg.NewDomainErrorSimple("REQUEST_NOT_QUOTABLE", "Request is not open for quotes", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrQuoteFinalStatus):
		return pkg.NewDomainErrorSimple("QUOTE_FINAL_STATUS", "Quote already has final status", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrQuoteAccessDenied):
		return pkg.NewDomainErrorSimple("QUOTE_ACCESS_DENIED", "Quote access denied", http.StatusForbidden)
	case errors.Is(err, usecase.ErrQuoteNotFound):
		return pkg.NewDomainErrorSimple("QUOTE_NOT_FOUND", "Quote not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrRequestNotFound):
		return pkg.NewDomainErrorSimple("REQUEST_NOT_FOUND", "Service request not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
