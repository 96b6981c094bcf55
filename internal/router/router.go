package router

import (
	"fmt"
	"strings"

	"github.com/freshmart/freshmart/internal/cache"
	"github.com/freshmart/freshmart/internal/config"
	adminhandlers "github.com/freshmart/freshmart/internal/http/handlers/admin"
	publichandlers "github.com/freshmart/freshmart/internal/http/handlers/public"
	"github.com/freshmart/freshmart/internal/logger"
	"github.com/freshmart/freshmart/internal/provider"

	"github.com/gin-gonic/gin"
)

// SetupRouter wires the HTTP surface.
func SetupRouter(cfg *config.Config, c *provider.Container) *gin.Engine {
	log := logger.L
	if log == nil {
		log = logger.Init(cfg.Server.Mode, cfg.Log.ToLoggerOptions())
	}
	r := gin.New()

	publicHandler := publichandlers.New(c)
	adminHandler := adminhandlers.New(c)

	redisPrefix := strings.TrimSpace(cfg.Redis.Prefix)
	if redisPrefix == "" {
		redisPrefix = "fm"
	}
	redisClient := cache.Client()
	loginRule := RateLimitRule{
		Prefix:        fmt.Sprintf("%s:rate:login", redisPrefix),
		WindowSeconds: cfg.Security.LoginRateLimit.WindowSeconds,
		MaxRequests:   cfg.Security.LoginRateLimit.MaxAttempts,
	}

	r.Use(gin.Recovery())
	r.Use(RequestIDMiddleware())
	r.Use(LoggerMiddleware(log))
	r.Use(CORSMiddleware(cfg.CORS))

	// Product imagery is served straight off disk.
	r.Static("/images", cfg.Images.Dir)

	auth := r.Group("/auth")
	{
		auth.POST("/register", publicHandler.Register)
		auth.POST("/login", RateLimitMiddleware(redisClient, loginRule, KeyByIPAndJSONField("email")), publicHandler.Login)
	}

	// Catalog browsing is open to everyone.
	r.GET("/products", publicHandler.ListProducts)
	r.GET("/products/:id", publicHandler.GetProduct)

	authed := r.Group("")
	authed.Use(JWTAuthMiddleware(cfg.JWT.SecretKey, c.UserRepo))
	{
		authed.GET("/me", publicHandler.Me)

		authed.GET("/cart", publicHandler.GetCart)
		authed.POST("/cart/add", publicHandler.AddCartItem)
		authed.POST("/cart/remove", publicHandler.RemoveCartItem)
		authed.POST("/cart/checkout", publicHandler.Checkout)

		authed.GET("/orders/my-orders", publicHandler.MyOrders)
	}

	admin := r.Group("")
	admin.Use(JWTAuthMiddleware(cfg.JWT.SecretKey, c.UserRepo), AdminOnlyMiddleware())
	{
		admin.GET("/orders", adminHandler.ListOrders)
		admin.POST("/products", adminHandler.CreateProduct)
		admin.PUT("/products/:id", adminHandler.UpdateProduct)
		admin.DELETE("/products/:id", adminHandler.DeleteProduct)
	}

	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	return r
}
