package handlers

import (
	"errors"
	"net/http"

	request "homeclean/internal/adapter/http/dto/request"
	response "homeclean/internal/adapter/http/dto/response"
	"homeclean/internal/usecase"
	"homeclean/pkg"

	"github.com/gin-gonic/gin"
)

var errInvalidAuthPayload = pkg.NewDomainErrorSimple("INVALID_AUTH_INPUT", "Invalid auth payload", http.StatusBadRequest)

// AuthHandler handles registration and login.

type AuthHandler struct {
	usecase usecase.IAuthUseCase
}

func NewAuthHandler(uc usecase.IAuthUseCase) *AuthHandler {
	return &AuthHandler{usecase: uc}
}

// Register creates a client account. Card fields are format-checked here;
// the use case encrypts them before persisting.
func (h *AuthHandler) Register(c *gin.Context) {
	var payload request.RegisterRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidAuthPayload.HTTPStatus, errInvalidAuthPayload.ToHTTPError())
		return
	}
	if err := payload.Validate(); err != nil {
		appErr := pkg.NewDomainErrorSimple("INVALID_AUTH_INPUT", err.Error(), http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	user, err := h.usecase.Register(c.Request.Context(), payload.ToInput())
	if err != nil {
		appErr := mapAuthError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromUser(user))
}

func (h *AuthHandler) Login(c *gin.Context) {
	var payload request.LoginRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidAuthPayload.HTTPStatus, errInvalidAuthPayload.ToHTTPError())
		return
	}

	token, user, err := h.usecase.Login(c.Request.Context(), payload.Email, payload.Password)
	if err != nil {
		appErr := mapAuthError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.LoginResponse{Token: token, User: response.FromUser(user)})
}

// Profile returns the caller's own account. Card number and CVV never leave
// the database decrypted here.
func (h *AuthHandler) Profile(c *gin.Context) {
	user, err := h.usecase.Profile(c.Request.Context(), callerID(c))
	if err != nil {
		appErr := mapAuthError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromUser(user))
}

func mapAuthError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrEmailTaken):
		return pkg.NewDomainErrorSimple("EMAIL_ALREADY_EXISTS", "Email already registered", http.StatusConflict)
	case errors.Is(err, usecase.ErrPhoneTaken):
		return pkg.NewDomainErrorSimple("PHONE_ALREADY_EXISTS", "Phone number already registered", http.StatusConflict)
	case errors.Is(err, usecase.ErrInvalidCredentials):
		return pkg.NewDomainErrorSimple("INVALID_CREDENTIALS", "Invalid email or password", http.StatusUnauthorized)
	case errors.Is(err, usecase.ErrInvalidToken):
		return pkg.NewDomainErrorSimple("UNAUTHORIZED", "Missing or invalid token", http.StatusUnauthorized)
	case errors.Is(err, usecase.ErrUserNotFound):
		return pkg.NewDomainErrorSimple("USER_NOT_FOUND", "User not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
