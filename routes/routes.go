package routes

import (
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"

	"github.com/Natanjhon7/delivery-backend-v2/controllers"
	"github.com/Natanjhon7/delivery-backend-v2/middleware"
	"github.com/Natanjhon7/delivery-backend-v2/models"
)

type Dependencies struct {
	Health     *controllers.HealthController
	Auth       *controllers.AuthController
	Products   *controllers.ProductController
	Categories *controllers.CategoryController
	Cart       *controllers.CartController
	Orders     *controllers.OrderController
	Tokens     middleware.TokenValidator
	Users      middleware.UserFinder

	// Degraded disables every route that needs the primary store for
	// writes or identity; only catalog reads and health stay up.
	Degraded bool
}

func Register(r *gin.Engine, deps Dependencies) {
	r.Use(cors.Default())

	r.GET("/", deps.Health.Root)
	r.GET("/health", deps.Health.Health)

	api := r.Group("/api")

	products := api.Group("/products")
	{
		products.GET("", deps.Products.List)
		products.GET("/:id", deps.Products.Get)
	}

	categories := api.Group("/categories")
	{
		categories.GET("", deps.Categories.List)
	}

	if deps.Degraded {
		registerDegraded(api, products, categories)
		return
	}

	authGuard := middleware.Authenticate(deps.Tokens, deps.Users)
	adminGuard := middleware.RequireRole(models.RoleAdmin)

	products.POST("", authGuard, adminGuard, deps.Products.Create)
	products.PUT("/:id", authGuard, adminGuard, deps.Products.Update)
	products.DELETE("/:id", authGuard, adminGuard, deps.Products.Delete)

	categories.POST("", authGuard, adminGuard, deps.Categories.Create)
	categories.DELETE("/:id", authGuard, adminGuard, deps.Categories.Delete)

	auth := api.Group("/auth")
	auth.Use(middleware.RateLimit(rate.Limit(2), 10))
	{
		auth.POST("/register", deps.Auth.Register)
		auth.POST("/login", deps.Auth.Login)
	}

	cart := api.Group("/cart")
	cart.Use(authGuard)
	{
		cart.GET("", deps.Cart.Get)
		cart.POST("/add", deps.Cart.Add)
		cart.DELETE("/remove/:productId", deps.Cart.Remove)
		cart.DELETE("", deps.Cart.Clear)
	}

	orders := api.Group("/orders")
	orders.Use(authGuard)
	{
		orders.POST("", deps.Orders.Create)
		orders.GET("", deps.Orders.List)
		orders.GET("/:id", deps.Orders.Get)
		orders.PATCH("/:id/status", adminGuard, deps.Orders.UpdateStatus)
		orders.PUT("/:id", adminGuard, deps.Orders.Update)
		orders.DELETE("/:id", adminGuard, deps.Orders.Delete)
	}

	admin := api.Group("/admin")
	admin.Use(authGuard, adminGuard)
	{
		admin.GET("/orders", deps.Orders.ListAll)
	}
}

// registerDegraded keeps the store-dependent surface routable while the
// primary database is down, answering 503 instead of 404 so clients can tell
// "temporarily off" from "wrong path".
func registerDegraded(api, products, categories *gin.RouterGroup) {
	unavailable := func(c *gin.Context) {
		c.AbortWithStatusJSON(http.StatusServiceUnavailable, gin.H{
			"success": false,
			"message": "Service is running in degraded mode; only catalog reads are available",
		})
	}

	products.POST("", unavailable)
	products.PUT("/:id", unavailable)
	products.DELETE("/:id", unavailable)

	categories.POST("", unavailable)
	categories.DELETE("/:id", unavailable)

	api.POST("/auth/register", unavailable)
	api.POST("/auth/login", unavailable)

	api.GET("/cart", unavailable)
	api.POST("/cart/add", unavailable)
	api.DELETE("/cart/remove/:productId", unavailable)
	api.DELETE("/cart", unavailable)

	api.POST("/orders", unavailable)
	api.GET("/orders", unavailable)
	api.GET("/orders/:id", unavailable)
	api.PATCH("/orders/:id/status", unavailable)
	api.PUT("/orders/:id", unavailable)
	api.DELETE("/orders/:id", unavailable)

	api.GET("/admin/orders", unavailable)
}
