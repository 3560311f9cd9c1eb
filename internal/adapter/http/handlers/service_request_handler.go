package handlers

import (
	"errors"
	"mime/multipart"
	"net/http"
	"path/filepath"
	"strconv"
	"strings"

	request "homeclean/internal/adapter/http/dto/request"
	response "homeclean/internal/adapter/http/dto/response"
	"homeclean/internal/usecase"
	"homeclean/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidRequestPayload = pkg.NewDomainErrorSimple("INVALID_REQUEST_INPUT", "Invalid service request payload", http.StatusBadRequest)
	errInvalidRequestID      = pkg.NewDomainErrorSimple("INVALID_REQUEST_ID", "Invalid request id", http.StatusBadRequest)
)

// maxPhotoSize caps each uploaded photo at 5 MB.
const maxPhotoSize = 5 << 20

var allowedPhotoExts = map[string]bool{
	".jpeg": true,
	".jpg":  true,
	".png":  true,
	".gif":  true,
}

// ServiceRequestHandler handles client service requests and their photos.

type ServiceRequestHandler struct {
	usecase usecase.IServiceRequestUseCase
}

func NewServiceRequestHandler(uc usecase.IServiceRequestUseCase) *ServiceRequestHandler {
	return &ServiceRequestHandler{usecase: uc}
}

func (h *ServiceRequestHandler) Create(c *gin.Context) {
	var payload request.CreateServiceRequestRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidRequestPayload.HTTPStatus, errInvalidRequestPayload.ToHTTPError())
		return
	}

	in, err := payload.ToInput()
	if err != nil {
		c.JSON(errInvalidRequestPayload.HTTPStatus, errInvalidRequestPayload.ToHTTPError())
		return
	}

	created, err := h.usecase.Create(c.Request.Context(), callerID(c), in)
	if err != nil {
		appErr := mapRequestError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromServiceRequest(created))
}

func (h *ServiceRequestHandler) Get(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		c.JSON(errInvalidRequestID.HTTPStatus, errInvalidRequestID.ToHTTPError())
		return
	}

	r, err := h.usecase.Get(c.Request.Context(), id, callerID(c), callerRole(c))
	if err != nil {
		appErr := mapRequestError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromServiceRequest(r))
}

func (h *ServiceRequestHandler) List(c *gin.Context) {
	rs, err := h.usecase.List(c.Request.Context(), callerID(c), callerRole(c))
	if err != nil {
		appErr := mapRequestError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromServiceRequests(rs))
}

// UploadPhotos accepts a multipart form with up to 5 "photos" files, each at
// most 5 MB, jpeg/jpg/png/gif.
func (h *ServiceRequestHandler) UploadPhotos(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		c.JSON(errInvalidRequestID.HTTPStatus, errInvalidRequestID.ToHTTPError())
		return
	}

	form, err := c.MultipartForm()
	if err != nil {
		c.JSON(errInvalidRequestPayload.HTTPStatus, errInvalidRequestPayload.ToHTTPError())
		return
	}
	files := form.File["photos"]

	for _, f := range files {
		if f.Size > maxPhotoSize {
			appErr := pkg.NewDomainErrorSimple("PHOTO_TOO_LARGE", "Each photo must be at most 5MB", http.StatusBadRequest)
			c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
			return
		}
		if !allowedPhotoExts[strings.ToLower(filepath.Ext(f.Filename))] {
			appErr := pkg.NewDomainErrorSimple("INVALID_PHOTO_TYPE", "Photos must be jpeg, jpg, png or gif", http.StatusBadRequest)
			c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
			return
		}
	}

	uploads := make([]usecase.PhotoUpload, 0, len(files))
	opened := make([]multipart.File, 0, len(files))
	closeAll := func() {
		for _, f := range opened {
			f.Close()
		}
	}
	for _, f := range files {
		file, err := f.Open()
		if err != nil {
			closeAll()
			c.JSON(errInvalidRequestPayload.HTTPStatus, errInvalidRequestPayload.ToHTTPError())
			return
		}
		opened = append(opened, file)
		uploads = append(uploads, usecase.PhotoUpload{Filename: f.Filename, Contents: file})
	}

	paths, err := h.usecase.UploadPhotos(c.Request.Context(), id, callerID(c), uploads)
	closeAll()
	if err != nil {
		appErr := mapRequestError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.PhotoUploadResponse{Photos: paths})
}

func pathID(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id < 1 {
		return 0, false
	}
	return id, true
}

func mapRequestError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidAddress),
		errors.Is(err, usecase.ErrInvalidCleaningType),
		errors.Is(err, usecase.ErrInvalidNumRooms),
		errors.Is(err, usecase.ErrInvalidBudget),
		errors.Is(err, usecase.ErrInvalidPreferredAt),
		errors.Is(err, usecase.ErrNoPhotos):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST_INPUT", err.Error(), http.StatusBadRequest)
	case errors.Is(err, usecase.ErrTooManyPhotos):
		return pkg.NewDomainErrorSimple("TOO_MANY_PHOTOS", "Maximum 5 photos allowed per request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrRequestNotFound):
		return pkg.NewDomainErrorSimple("REQUEST_NOT_FOUND", "Service request not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
