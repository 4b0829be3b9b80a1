// internal/interfaces/http/routes/routes.go
package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/your-org/zmart-backend/internal/config"
	"github.com/your-org/zmart-backend/internal/domain/admin"
	"github.com/your-org/zmart-backend/internal/domain/cart"
	"github.com/your-org/zmart-backend/internal/domain/catalog"
	"github.com/your-org/zmart-backend/internal/domain/order"
	"github.com/your-org/zmart-backend/internal/domain/user"
	"github.com/your-org/zmart-backend/internal/domain/wishlist"
	"github.com/your-org/zmart-backend/internal/interfaces/http/handlers"
	"github.com/your-org/zmart-backend/internal/interfaces/http/middleware"
)

// Services bundles the domain services the routes dispatch into.
type Services struct {
	Store    *admin.Store
	Catalog  *catalog.Service
	Cart     *cart.Service
	Wishlist *wishlist.Service
	Order    *order.Service
	User     *user.Service
}

// NewServices wires the domain services around a shared state store.
func NewServices(store *admin.Store, cfg *config.Config) *Services {
	catalogService := catalog.NewService(store)
	cartService := cart.NewService(store, cfg.Store.SessionTTL)
	return &Services{
		Store:    store,
		Catalog:  catalogService,
		Cart:     cartService,
		Wishlist: wishlist.NewService(store, cartService),
		Order:    order.NewService(store, cartService),
		User:     user.NewService(cfg),
	}
}

// SetupRoutes registers every API route on the group.
func SetupRoutes(rg *gin.RouterGroup, svc *Services, cfg *config.Config) {
	SetupAuthRoutes(rg, svc, cfg)
	SetupProductRoutes(rg, svc, cfg)
	SetupCartRoutes(rg, svc, cfg)
	SetupOrderRoutes(rg, svc, cfg)
	SetupAdminRoutes(rg, svc, cfg)
}

// SetupAuthRoutes sets up authentication related routes
func SetupAuthRoutes(rg *gin.RouterGroup, svc *Services, cfg *config.Config) {
	authHandler := handlers.NewAuthHandler(svc.User, svc.Cart, cfg)

	auth := rg.Group("/auth")
	auth.Use(middleware.AuthRateLimit())
	{
		// Public auth endpoints
		auth.POST("/register", authHandler.Register)
		auth.POST("/login", authHandler.Login)
		auth.POST("/refresh", authHandler.RefreshToken)

		// Protected auth endpoints
		protected := auth.Group("")
		protected.Use(middleware.AuthMiddleware(cfg))
		{
			protected.POST("/logout", authHandler.Logout)
			protected.GET("/profile", authHandler.GetProfile)
			protected.PUT("/profile", authHandler.UpdateProfile)
		}
	}
}

// SetupProductRoutes sets up product related routes
func SetupProductRoutes(rg *gin.RouterGroup, svc *Services, cfg *config.Config) {
	productHandler := handlers.NewProductHandler(svc.Catalog, cfg)

	products := rg.Group("/products")
	products.Use(middleware.OptionalAuthMiddleware(cfg))
	{
		products.GET("", productHandler.GetProducts)
		products.GET("/categories", productHandler.GetCategories)
		products.GET("/:id", productHandler.GetProduct)

		// Mutations require admin privileges
		protected := products.Group("")
		protected.Use(middleware.AuthMiddleware(cfg))
		protected.Use(middleware.AdminMiddleware())
		{
			protected.PUT("/:id", productHandler.UpdateProduct)
			protected.DELETE("/:id", productHandler.DeleteProduct)
		}
	}
}

// SetupCartRoutes sets up cart and wishlist routes. Both work with guest
// sessions or authenticated users.
func SetupCartRoutes(rg *gin.RouterGroup, svc *Services, cfg *config.Config) {
	cartHandler := handlers.NewCartHandler(svc.Cart, cfg)
	wishlistHandler := handlers.NewWishlistHandler(svc.Wishlist, cfg)

	cartGroup := rg.Group("/cart")
	cartGroup.Use(middleware.OptionalAuthMiddleware(cfg))
	cartGroup.Use(middleware.SessionID())
	{
		cartGroup.GET("", cartHandler.GetCart)
		cartGroup.POST("/items", cartHandler.AddItem)
		cartGroup.PUT("/items/:id", cartHandler.UpdateItem)
		cartGroup.DELETE("/items/:id", cartHandler.RemoveItem)
		cartGroup.DELETE("", cartHandler.ClearCart)
	}

	wishlistGroup := rg.Group("/wishlist")
	wishlistGroup.Use(middleware.OptionalAuthMiddleware(cfg))
	wishlistGroup.Use(middleware.SessionID())
	{
		wishlistGroup.GET("", wishlistHandler.GetWishlist)
		wishlistGroup.POST("/items", wishlistHandler.AddItem)
		wishlistGroup.DELETE("/items/:id", wishlistHandler.RemoveItem)
		wishlistGroup.POST("/items/:id/move-to-cart", wishlistHandler.MoveToCart)
	}
}

// SetupOrderRoutes sets up checkout and order history routes
func SetupOrderRoutes(rg *gin.RouterGroup, svc *Services, cfg *config.Config) {
	orderHandler := handlers.NewOrderHandler(svc.Order, cfg)

	checkout := rg.Group("/checkout")
	checkout.Use(middleware.AuthMiddleware(cfg))
	checkout.Use(middleware.SessionID())
	{
		checkout.POST("", orderHandler.Checkout)
	}

	orders := rg.Group("/orders")
	orders.Use(middleware.AuthMiddleware(cfg))
	{
		orders.GET("", orderHandler.GetOrders)
		orders.GET("/:id", orderHandler.GetOrder)
	}
}

// SetupAdminRoutes sets up admin panel routes
func SetupAdminRoutes(rg *gin.RouterGroup, svc *Services, cfg *config.Config) {
	adminHandler := handlers.NewAdminHandler(svc.Store, svc.Catalog, cfg)

	adminGroup := rg.Group("/admin")
	adminGroup.Use(middleware.AuthMiddleware(cfg))
	adminGroup.Use(middleware.AdminMiddleware())
	{
		adminGroup.GET("/dashboard", adminHandler.Dashboard)

		// Product management
		products := adminGroup.Group("/products")
		{
			products.GET("", adminHandler.GetProducts)
			products.POST("", adminHandler.CreateProduct)
			products.PUT("/:id", adminHandler.UpdateProduct)
			products.DELETE("/:id", adminHandler.DeleteProduct)
		}

		// Order management
		orders := adminGroup.Group("/orders")
		{
			orders.GET("", adminHandler.GetOrders)
			orders.POST("", adminHandler.CreateOrder)
			orders.PUT("/:id/status", adminHandler.UpdateOrderStatus)
			orders.DELETE("/:id", adminHandler.DeleteOrder)
		}

		// User management
		users := adminGroup.Group("/users")
		{
			users.GET("", adminHandler.GetUsers)
		}
	}
}
