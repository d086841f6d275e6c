package response

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/navlink-io/navlink/internal/application"
	"github.com/navlink-io/navlink/internal/domain/deeplink"
)

// envelope is the standard response wrapper for all JSON endpoints.
type envelope struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Error   *apiError   `json:"error,omitempty"`
}

// apiError carries a stable machine-readable code next to the message.
type apiError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// Success writes a 200 response with the given payload.
func Success(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, envelope{Success: true, Data: data})
}

// BadRequest writes a 400 response with the given message.
func BadRequest(c *gin.Context, message string) {
	writeError(c, http.StatusBadRequest, "bad_request", message)
}

// NotFound writes a 404 response with the given message.
func NotFound(c *gin.Context, message string) {
	writeError(c, http.StatusNotFound, "not_found", message)
}

// Error maps an application or domain error to its HTTP representation.
//
// Unsupported target/request combinations are 422s with a stable code per
// sentinel: the request was well-formed, the target just cannot express
// it. Anything unrecognized becomes an opaque 500.
func Error(c *gin.Context, err error) {
	var validationErr *application.ValidationError
	if errors.As(err, &validationErr) {
		BadRequest(c, validationErr.Message)
		return
	}

	var notFoundErr *application.NotFoundError
	if errors.As(err, &notFoundErr) {
		NotFound(c, notFoundErr.Message)
		return
	}

	switch {
	case errors.Is(err, deeplink.ErrRoutingUnsupported):
		writeError(c, http.StatusUnprocessableEntity, "routing_unsupported", err.Error())
	case errors.Is(err, deeplink.ErrStartLocationUnsupported):
		writeError(c, http.StatusUnprocessableEntity, "start_location_unsupported", err.Error())
	case errors.Is(err, deeplink.ErrStartLocationRequired):
		writeError(c, http.StatusUnprocessableEntity, "start_location_required", err.Error())
	case errors.Is(err, deeplink.ErrTravelModeUnsupported):
		writeError(c, http.StatusUnprocessableEntity, "travel_mode_unsupported", err.Error())
	default:
		writeError(c, http.StatusInternalServerError, "internal_error", "internal server error")
	}
}

func writeError(c *gin.Context, status int, code, message string) {
	c.JSON(status, envelope{
		Success: false,
		Error:   &apiError{Code: code, Message: message},
	})
}
