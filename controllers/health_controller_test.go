package controllers

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func healthCheck(t *testing.T, hc *HealthController) string {
	t.Helper()
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/health", hc.Health)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
	return rec.Body.String()
}

func TestHealth(t *testing.T) {
	t.Run("Store Reachable", func(t *testing.T) {
		hc := NewHealthController("test", false, func(ctx context.Context) error { return nil })
		assert.Contains(t, healthCheck(t, hc), `"database":"connected"`)
	})

	t.Run("Store Down After Startup", func(t *testing.T) {
		// The probe runs per request, so an outage that begins after boot
		// must be reported, not the connection state from startup.
		hc := NewHealthController("test", false, func(ctx context.Context) error {
			return errors.New("connection refused")
		})
		assert.Contains(t, healthCheck(t, hc), `"database":"disconnected"`)
	})

	t.Run("Degraded Mode", func(t *testing.T) {
		hc := NewHealthController("test", true, nil)
		assert.Contains(t, healthCheck(t, hc), `"database":"degraded"`)
	})
}
