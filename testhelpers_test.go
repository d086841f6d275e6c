package main_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/navlink-io/navlink/internal/application"
	"github.com/navlink-io/navlink/internal/handler"
	"github.com/navlink-io/navlink/internal/middleware"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// setupServer wires the full HTTP stack the way cmd/server does:
// global middleware chain, health probes and the deeplink API, on a
// no-op logger.
func setupServer(t *testing.T) *gin.Engine {
	t.Helper()

	gin.SetMode(gin.TestMode)
	log := zap.NewNop()

	router := gin.New()
	router.Use(middleware.RecoveryMiddleware(log))
	router.Use(middleware.LoggerMiddleware(log))
	router.Use(middleware.RequestIDMiddleware())
	router.Use(middleware.CORSMiddleware())
	router.Use(middleware.SecurityHeadersMiddleware())

	handler.NewHealthHandler("navlink").RegisterRoutes(router)

	linkService := application.NewLinkService(log)
	handler.NewLinkHandler(linkService).RegisterRoutes(&router.RouterGroup)

	return router
}

// buildLink POSTs a deeplink build request and returns the recorder.
func buildLink(t *testing.T, router *gin.Engine, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	payload, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/links", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

// getPath GETs a path and returns the recorder.
func getPath(t *testing.T, router *gin.Engine, path string) *httptest.ResponseRecorder {
	t.Helper()

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
	return w
}

// linkFromResponse unmarshals the success envelope's data into a LinkDTO.
func linkFromResponse(t *testing.T, w *httptest.ResponseRecorder) application.LinkDTO {
	t.Helper()

	var env struct {
		Success bool                `json:"success"`
		Data    application.LinkDTO `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	require.True(t, env.Success, "expected a success envelope, got %s", w.Body.String())
	return env.Data
}

// targetsFromResponse unmarshals the success envelope's data into TargetDTOs.
func targetsFromResponse(t *testing.T, w *httptest.ResponseRecorder) []application.TargetDTO {
	t.Helper()

	var env struct {
		Success bool                    `json:"success"`
		Data    []application.TargetDTO `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	require.True(t, env.Success, "expected a success envelope, got %s", w.Body.String())
	return env.Data
}

// errorCodeFromResponse returns the stable code of an error envelope.
func errorCodeFromResponse(t *testing.T, w *httptest.ResponseRecorder) string {
	t.Helper()

	var env struct {
		Success bool `json:"success"`
		Error   struct {
			Code    string `json:"code"`
			Message string `json:"message"`
		} `json:"error"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	require.False(t, env.Success, "expected an error envelope, got %s", w.Body.String())
	return env.Error.Code
}
