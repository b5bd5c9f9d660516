package routes

import (
	"time"

	"bookbrew_bff/internal/cache"
	"bookbrew_bff/internal/config"
	"bookbrew_bff/internal/handlers"
	"bookbrew_bff/internal/middleware"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

// Handlers regroupe les handlers injectés au montage des routes.
type Handlers struct {
	Auth       *handlers.AuthHandler
	Cart       *handlers.CartHandler
	Checkout   *handlers.CheckoutHandler
	Products   *handlers.ProductHandler
	Customers  *handlers.CustomerHandler
	Users      *handlers.UserHandler
	Orders     *handlers.OrderHandler
	Storefront *handlers.StorefrontHandler
}

// RegisterRoutes monte toute la surface /bff consommée par le navigateur.
func RegisterRoutes(r *gin.Engine, rdb *redis.Client, h Handlers) {
	blacklist := cache.NewTokenBlacklist(rdb)

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{config.AllowedOrigins()},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	bff := r.Group("/bff")

	// Auth
	bff.POST("/auth/login", middleware.LoginRateLimit(rdb), h.Auth.Login)

	// Catalogue public (la navigation ne demande pas de compte)
	bff.GET("/products", h.Products.List)
	bff.GET("/products/:id", h.Products.Get)

	// Boutique (session requise)
	shop := bff.Group("", middleware.AuthRequired(blacklist))
	{
		shop.POST("/auth/logout", h.Auth.Logout)
		shop.GET("/auth/me", h.Auth.Me)

		shop.GET("/cart", h.Cart.Get)
		shop.POST("/cart/items", h.Cart.Add)
		shop.PUT("/cart/items/:productId", h.Cart.UpdateQuantity)
		shop.DELETE("/cart/items/:productId", h.Cart.Remove)
		shop.DELETE("/cart", h.Cart.Clear)

		shop.POST("/checkout", h.Checkout.Submit)

		shop.GET("/my-orders", h.Orders.MyOrders)
		shop.GET("/my-addresses", h.Storefront.MyAddresses)
		shop.POST("/my-addresses", h.Storefront.CreateAddress)
		shop.GET("/payment-methods", h.Storefront.PaymentMethods)
		shop.GET("/promotions", h.Storefront.Promotions)
	}

	// Panneaux de gestion (profil ADMIN requis)
	admin := bff.Group("", middleware.AuthRequired(blacklist), middleware.RequireAdmin())
	{
		admin.GET("/customers", h.Customers.List)
		admin.GET("/customers/:id", h.Customers.Get)
		admin.POST("/customers", h.Customers.Create)
		admin.PUT("/customers/:id", h.Customers.Update)
		admin.DELETE("/customers/:id", h.Customers.Delete)

		admin.GET("/users", h.Users.List)
		admin.GET("/users/:id", h.Users.Get)
		admin.POST("/users", h.Users.Create)
		admin.PUT("/users/:id", h.Users.Update)
		admin.DELETE("/users/:id", h.Users.Delete)

		admin.POST("/products", h.Products.Create)
		admin.PUT("/products/:id", h.Products.Update)
		admin.DELETE("/products/:id", h.Products.Delete)

		admin.GET("/orders", h.Orders.List)
		admin.GET("/orders/:id", h.Orders.Get)
		admin.PATCH("/orders/:id/status", h.Orders.UpdateStatus)
	}
}
