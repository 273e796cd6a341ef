package http

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/mrlokans/madr/internal/apperrors"
)

// --- Response Types ---

// ErrorResponse is the error body of every endpoint.
type ErrorResponse struct {
	Detail string `json:"detail"`
}

// MessageResponse is returned by greeting and delete endpoints.
type MessageResponse struct {
	Message string `json:"message"`
}

// --- Error Response Helpers ---

var statusByKind = map[apperrors.Kind]int{
	apperrors.KindConflict:     http.StatusConflict,
	apperrors.KindNotFound:     http.StatusNotFound,
	apperrors.KindUnauthorized: http.StatusUnauthorized,
	apperrors.KindBadRequest:   http.StatusBadRequest,
	apperrors.KindValidation:   http.StatusUnprocessableEntity,
	apperrors.KindInternal:     http.StatusInternalServerError,
}

// respondError maps a service error to its status code. Internal errors are
// logged with the request id and answered with a generic message.
func respondError(c *gin.Context, err error) {
	kind := apperrors.KindOf(err)
	status, ok := statusByKind[kind]
	if !ok {
		status = http.StatusInternalServerError
	}

	switch kind {
	case apperrors.KindInternal:
		log.Printf("Internal error (request %s, %s %s): %v", GetRequestID(c), c.Request.Method, c.FullPath(), err)
	case apperrors.KindUnauthorized:
		c.Header("WWW-Authenticate", "Bearer")
	}

	c.AbortWithStatusJSON(status, ErrorResponse{Detail: apperrors.MessageOf(err)})
}

// respondValidation answers a request whose shape failed binding.
func respondValidation(c *gin.Context, err error) {
	c.AbortWithStatusJSON(http.StatusUnprocessableEntity, ErrorResponse{Detail: err.Error()})
}

// respondMessage sends a 200 OK response with a message.
func respondMessage(c *gin.Context, message string) {
	c.JSON(http.StatusOK, MessageResponse{Message: message})
}

// --- Parameter Parsing ---

var errInvalidID = errors.New("id must be a positive integer")

// parseIDParam extracts a positive integer ID from the URL. On failure it
// responds with 422 and returns false.
func parseIDParam(c *gin.Context, paramName string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(paramName), 10, 0)
	if err != nil || id == 0 {
		respondValidation(c, errInvalidID)
		return 0, false
	}
	return uint(id), true
}
