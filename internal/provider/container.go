package provider

import (
	"github.com/freshmart/freshmart/internal/cache"
	"github.com/freshmart/freshmart/internal/config"
	"github.com/freshmart/freshmart/internal/logger"
	"github.com/freshmart/freshmart/internal/models"
	"github.com/freshmart/freshmart/internal/repository"
	"github.com/freshmart/freshmart/internal/service"
)

// Container holds every repository and service, wired once at startup.
type Container struct {
	Config *config.Config

	// Repositories
	UserRepo    repository.UserRepository
	ProductRepo repository.ProductRepository
	CartRepo    repository.CartRepository
	OrderRepo   repository.OrderRepository

	// Services
	AuthService     *service.AuthService
	ProductService  *service.ProductService
	CartService     *service.CartService
	CheckoutService *service.CheckoutService
	OrderService    *service.OrderService
}

// NewContainer initializes the container.
func NewContainer(cfg *config.Config) *Container {
	if err := cache.InitRedis(&cfg.Redis); err != nil {
		logger.Warnw("provider_init_redis_failed", "error", err)
	}

	c := &Container{Config: cfg}
	c.initRepositories()
	c.initServices()
	return c
}

func (c *Container) initRepositories() {
	db := models.DB
	c.UserRepo = repository.NewUserRepository(db)
	c.ProductRepo = repository.NewProductRepository(db)
	c.CartRepo = repository.NewCartRepository(db)
	c.OrderRepo = repository.NewOrderRepository(db)
}

func (c *Container) initServices() {
	c.AuthService = service.NewAuthService(c.Config, c.UserRepo)
	c.ProductService = service.NewProductService(c.ProductRepo)
	c.CartService = service.NewCartService(c.CartRepo, c.ProductRepo)
	c.CheckoutService = service.NewCheckoutService(c.CartRepo, c.ProductRepo, c.OrderRepo)
	c.OrderService = service.NewOrderService(c.OrderRepo)
}
