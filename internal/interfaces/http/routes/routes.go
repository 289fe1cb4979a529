// internal/interfaces/http/routes/routes.go
package routes

import (
	"github.com/coupledelight/shop-api/internal/config"
	"github.com/coupledelight/shop-api/internal/domain/cart"
	"github.com/coupledelight/shop-api/internal/domain/checkout"
	"github.com/coupledelight/shop-api/internal/domain/order"
	"github.com/coupledelight/shop-api/internal/domain/product"
	"github.com/coupledelight/shop-api/internal/domain/user"
	"github.com/coupledelight/shop-api/internal/interfaces/http/handlers"
	"github.com/coupledelight/shop-api/internal/interfaces/http/middleware"
	"github.com/coupledelight/shop-api/internal/pkg/auth"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// Dependencies are the storage backends behind the API
type Dependencies struct {
	Products    product.Repository
	Orders      order.Repository
	Users       user.Repository
	CartStorage cart.Storage
	Numbers     order.NumberSource
	Receipts    handlers.ReceiptGenerator
}

// Handlers groups the API handlers
type Handlers struct {
	Auth     *handlers.AuthHandler
	Product  *handlers.ProductHandler
	Cart     *handlers.CartHandler
	Checkout *handlers.CheckoutHandler
	Order    *handlers.OrderHandler
}

// NewHandlers wires services and handlers on top of deps
func NewHandlers(cfg *config.Config, deps Dependencies, jwtManager *auth.JWTManager, logger logrus.FieldLogger) *Handlers {
	products := product.NewService(deps.Products, logger)
	orders := order.NewService(deps.Orders, deps.Numbers, logger)
	users := user.NewService(deps.Users, auth.NewPasswordManager(cfg.Security.BcryptCost), jwtManager, logger)
	sessions := handlers.NewCartSessions(deps.CartStorage, cfg.Cart, cfg.IsProduction(), logger)

	return &Handlers{
		Auth:     handlers.NewAuthHandler(users),
		Product:  handlers.NewProductHandler(products),
		Cart:     handlers.NewCartHandler(products, sessions),
		Checkout: handlers.NewCheckoutHandler(checkout.NewService(orders, logger), sessions),
		Order:    handlers.NewOrderHandler(orders, deps.Receipts, logger),
	}
}

// SetupRoutes registers every API route on rg
func SetupRoutes(rg *gin.RouterGroup, h *Handlers, jwtManager *auth.JWTManager) {
	SetupAuthRoutes(rg, h, jwtManager)
	SetupProductRoutes(rg, h)
	SetupCartRoutes(rg, h, jwtManager)
	SetupOrderRoutes(rg, h, jwtManager)
}

// SetupAuthRoutes sets up authentication related routes
func SetupAuthRoutes(rg *gin.RouterGroup, h *Handlers, jwtManager *auth.JWTManager) {
	authGroup := rg.Group("/auth")
	{
		authGroup.POST("/register", h.Auth.Register)
		authGroup.POST("/login", h.Auth.Login)
		authGroup.POST("/refresh", h.Auth.RefreshToken)

		protected := authGroup.Group("")
		protected.Use(middleware.AuthMiddleware(jwtManager))
		{
			protected.GET("/profile", h.Auth.GetProfile)
			protected.PUT("/profile", h.Auth.UpdateProfile)
		}
	}
}

// SetupProductRoutes sets up catalog routes
func SetupProductRoutes(rg *gin.RouterGroup, h *Handlers) {
	products := rg.Group("/products")
	{
		products.GET("", h.Product.GetProducts)
		products.GET("/:id", h.Product.GetProduct)
	}
}

// SetupCartRoutes sets up the session cart and checkout routes
func SetupCartRoutes(rg *gin.RouterGroup, h *Handlers, jwtManager *auth.JWTManager) {
	cartGroup := rg.Group("/cart")
	{
		cartGroup.GET("", h.Cart.GetCart)
		cartGroup.POST("/items", h.Cart.AddToCart)
		cartGroup.PUT("/items/:productId", h.Cart.UpdateCartItem)
		cartGroup.DELETE("/items/:productId", h.Cart.RemoveFromCart)
		cartGroup.DELETE("", h.Cart.ClearCart)
	}

	checkoutGroup := rg.Group("/checkout")
	checkoutGroup.Use(middleware.OptionalAuthMiddleware(jwtManager))
	{
		checkoutGroup.GET("/quote", h.Checkout.GetQuote)
		checkoutGroup.POST("", h.Checkout.PlaceOrder)
	}
}

// SetupOrderRoutes sets up order routes. Guests identify their orders by email.
func SetupOrderRoutes(rg *gin.RouterGroup, h *Handlers, jwtManager *auth.JWTManager) {
	orders := rg.Group("/orders")
	orders.Use(middleware.OptionalAuthMiddleware(jwtManager))
	{
		orders.POST("", h.Order.CreateOrder)
		orders.GET("", h.Order.GetOrders)
		orders.GET("/:orderNumber", h.Order.GetOrder)
		orders.GET("/:orderNumber/receipt", h.Order.GetReceipt)
	}
}
