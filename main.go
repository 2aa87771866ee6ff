package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/Natanjhon7/delivery-backend-v2/config"
	"github.com/Natanjhon7/delivery-backend-v2/controllers"
	"github.com/Natanjhon7/delivery-backend-v2/database"
	"github.com/Natanjhon7/delivery-backend-v2/events"
	"github.com/Natanjhon7/delivery-backend-v2/logger"
	"github.com/Natanjhon7/delivery-backend-v2/repository"
	"github.com/Natanjhon7/delivery-backend-v2/routes"
	"github.com/Natanjhon7/delivery-backend-v2/services"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	log := logger.Initialize(cfg.Env)
	defer log.Sync()

	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	ctx := context.Background()

	deps := routes.Dependencies{}

	mongoClient, db, err := database.ConnectMongo(ctx, cfg.MongoURI, cfg.MongoDatabase)
	if err != nil {
		if !cfg.AllowDegraded {
			log.Fatal("failed to connect to MongoDB", zap.Error(err))
		}
		log.Warn("MongoDB unreachable, starting in degraded mode", zap.Error(err))
		deps.Degraded = true
	}

	if deps.Degraded {
		memCatalog := repository.NewMemoryCatalog()
		catalog := services.NewCatalogService(memCatalog, memCatalog.Categories(), true)

		deps.Health = controllers.NewHealthController(cfg.Env, true, nil)
		deps.Products = controllers.NewProductController(catalog)
		deps.Categories = controllers.NewCategoryController(catalog)
	} else {
		defer mongoClient.Disconnect(ctx)
		log.Info("connected to MongoDB", zap.String("database", cfg.MongoDatabase))

		productRepo := repository.NewProductRepository(db)
		categoryRepo := repository.NewCategoryRepository(db)
		userRepo := repository.NewUserRepository(db)
		if err := userRepo.EnsureIndexes(ctx); err != nil {
			log.Fatal("failed to create user indexes", zap.Error(err))
		}
		orderRepo := repository.NewOrderRepository(db)

		var cartStore repository.CartStore
		if cfg.CartBackend == "redis" {
			redisClient, err := database.NewRedisClient(ctx, cfg.RedisURL)
			if err != nil {
				log.Fatal("failed to connect to Redis", zap.Error(err))
			}
			cartStore = repository.NewRedisCartStore(redisClient, cfg.CartTTL)
			log.Info("cart store: redis")
		} else {
			cartStore = repository.NewMemoryCartStore()
			log.Info("cart store: memory (single instance only)")
		}

		var orderEvents services.IOrderEvents
		if cfg.OrderTopic != "" {
			producer := events.NewProducer(cfg.KafkaBrokers, cfg.OrderTopic)
			defer producer.Close()
			orderEvents = producer
			log.Info("order events enabled", zap.String("topic", cfg.OrderTopic))
		}

		tokens := services.NewTokenService(cfg.JWTSecret, cfg.TokenTTL)
		auth := services.NewAuthService(userRepo, tokens)
		catalog := services.NewCatalogService(productRepo, categoryRepo, false)
		carts := services.NewCartService(cartStore, productRepo)
		orders := services.NewOrderService(orderRepo, cartStore, orderEvents, cfg.DeliveryFee, log)

		deps.Health = controllers.NewHealthController(cfg.Env, false, func(ctx context.Context) error {
			return mongoClient.Ping(ctx, nil)
		})
		deps.Auth = controllers.NewAuthController(auth)
		deps.Products = controllers.NewProductController(catalog)
		deps.Categories = controllers.NewCategoryController(catalog)
		deps.Cart = controllers.NewCartController(carts)
		deps.Orders = controllers.NewOrderController(orders)
		deps.Tokens = tokens
		deps.Users = userRepo
	}

	router := gin.New()
	router.Use(logger.RequestLogger(log), gin.Recovery())
	routes.Register(router, deps)

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	go func() {
		log.Info("server listening", zap.String("port", cfg.Port), zap.Bool("degraded", deps.Degraded))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("server failed", zap.Error(err))
		}
	}()

	// Graceful shutdown
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	log.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("shutdown error", zap.Error(err))
	}
}
