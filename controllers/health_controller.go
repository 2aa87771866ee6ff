package controllers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

type HealthController struct {
	env      string
	degraded bool
	ping     func(ctx context.Context) error
}

// NewHealthController takes a ping probe against the primary store; pass nil
// in degraded mode, where there is no store to probe.
func NewHealthController(env string, degraded bool, ping func(ctx context.Context) error) *HealthController {
	return &HealthController{env: env, degraded: degraded, ping: ping}
}

// Root serves an index of the API surface.
func (hc *HealthController) Root(c *gin.Context) {
	respond(c, http.StatusOK, gin.H{
		"message": "Delivery backend API",
		"routes": gin.H{
			"products":   "GET /api/products",
			"categories": "GET /api/categories",
			"auth": gin.H{
				"register": "POST /api/auth/register",
				"login":    "POST /api/auth/login",
			},
			"cart": gin.H{
				"get":    "GET /api/cart",
				"add":    "POST /api/cart/add",
				"remove": "DELETE /api/cart/remove/:productId",
				"clear":  "DELETE /api/cart",
			},
			"orders": gin.H{
				"create": "POST /api/orders",
				"list":   "GET /api/orders",
				"get":    "GET /api/orders/:id",
			},
			"health": "GET /health",
		},
	})
}

// Health reports liveness and whether the primary store is serving. The
// store is probed on every call, so an outage after startup shows up here.
func (hc *HealthController) Health(c *gin.Context) {
	database := "connected"
	if hc.degraded {
		database = "degraded"
	} else if hc.ping != nil {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
		defer cancel()
		if err := hc.ping(ctx); err != nil {
			database = "disconnected"
		}
	}
	respond(c, http.StatusOK, gin.H{
		"status":      "OK",
		"environment": hc.env,
		"database":    database,
		"timestamp":   time.Now().UTC().Format(time.RFC3339),
	})
}
