package response

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/navlink-io/navlink/internal/application"
	"github.com/navlink-io/navlink/internal/domain/deeplink"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// serve runs a handler that writes the mapped response for err and
// returns the recorder.
func serve(t *testing.T, err error) *httptest.ResponseRecorder {
	t.Helper()

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/", func(c *gin.Context) { Error(c, err) })

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
	return w
}

func decodeCode(t *testing.T, w *httptest.ResponseRecorder) string {
	t.Helper()

	var env struct {
		Success bool `json:"success"`
		Error   struct {
			Code    string `json:"code"`
			Message string `json:"message"`
		} `json:"error"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	require.False(t, env.Success)
	return env.Error.Code
}

// TestError_MapsDomainSentinels assigns each unsupported-combination
// sentinel its 422 code, including when wrapped with the target key.
func TestError_MapsDomainSentinels(t *testing.T) {
	tests := []struct {
		err      error
		wantCode string
	}{
		{deeplink.ErrRoutingUnsupported, "routing_unsupported"},
		{deeplink.ErrStartLocationUnsupported, "start_location_unsupported"},
		{deeplink.ErrStartLocationRequired, "start_location_required"},
		{deeplink.ErrTravelModeUnsupported, "travel_mode_unsupported"},
		{fmt.Errorf("waze: %w", deeplink.ErrStartLocationUnsupported), "start_location_unsupported"},
	}

	for _, tt := range tests {
		t.Run(tt.wantCode, func(t *testing.T) {
			w := serve(t, tt.err)
			assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
			assert.Equal(t, tt.wantCode, decodeCode(t, w))
		})
	}
}

// TestError_MapsApplicationErrors gives validation problems a 400 and
// missing resources a 404.
func TestError_MapsApplicationErrors(t *testing.T) {
	w := serve(t, application.NewValidationError("destination is required"))
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "bad_request", decodeCode(t, w))

	w = serve(t, application.NewNotFoundError("target not found: petal_maps"))
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "not_found", decodeCode(t, w))
}

// TestError_UnrecognizedErrorsAreOpaque500s keeps internal details (such
// as the defensive ErrInvalidURL) out of the response body.
func TestError_UnrecognizedErrorsAreOpaque500s(t *testing.T) {
	for _, err := range []error{deeplink.ErrInvalidURL, fmt.Errorf("boom")} {
		w := serve(t, err)
		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.Equal(t, "internal_error", decodeCode(t, w))
		assert.NotContains(t, w.Body.String(), err.Error())
	}
}

// TestSuccessEnvelope checks the success wrapper shape.
func TestSuccessEnvelope(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/", func(c *gin.Context) { Success(c, gin.H{"url": "waze://?ll=1,2"}) })

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))

	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"success":true,"data":{"url":"waze://?ll=1,2"}}`, w.Body.String())
}
