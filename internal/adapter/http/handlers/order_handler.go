package handlers

import (
	"errors"
	"net/http"

	response "homeclean/internal/adapter/http/dto/response"
	"homeclean/internal/usecase"
	"homeclean/pkg"

	"github.com/gin-gonic/gin"
)

var errInvalidOrderID = pkg.NewDomainErrorSimple("INVALID_ORDER_ID", "Invalid order id", http.StatusBadRequest)

// OrderHandler handles service orders. The single mutation is completion.

type OrderHandler struct {
	usecase usecase.IOrderUseCase
}

func NewOrderHandler(uc usecase.IOrderUseCase) *OrderHandler {
	return &OrderHandler{usecase: uc}
}

// Complete marks the order completed and returns the generated bill.
func (h *OrderHandler) Complete(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		c.JSON(errInvalidOrderID.HTTPStatus, errInvalidOrderID.ToHTTPError())
		return
	}

	bill, err := h.usecase.Complete(c.Request.Context(), id)
	if err != nil {
		appErr := mapOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromBill(bill))
}

func (h *OrderHandler) Get(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		c.JSON(errInvalidOrderID.HTTPStatus, errInvalidOrderID.ToHTTPError())
		return
	}

	o, err := h.usecase.Get(c.Request.Context(), id, callerID(c), callerRole(c))
	if err != nil {
		appErr := mapOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromOrder(o))
}

func (h *OrderHandler) List(c *gin.Context) {
	os, err := h.usecase.List(c.Request.Context(), callerID(c), callerRole(c))
	if err != nil {
		appErr := mapOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromOrders(os))
}

func mapOrderError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrOrderAlreadyCompleted):
		return pkg.NewDomainErrorSimple("ORDER_ALREADY_COMPLETED", "Order already completed", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrOrderNotFound):
		return pkg.NewDomainErrorSimple("ORDER_NOT_FOUND", "Order not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
