package main

import (
	"log"
	"time"

	"bookbrew_bff/internal/backend"
	"bookbrew_bff/internal/cache"
	"bookbrew_bff/internal/checkout"
	"bookbrew_bff/internal/config"
	"bookbrew_bff/internal/handlers"
	"bookbrew_bff/internal/routes"
	"bookbrew_bff/internal/store"

	"github.com/gin-gonic/gin"
)

func main() {
	config.Load()

	rdb, err := cache.InitRedis()
	if err != nil {
		log.Fatalf("❌ Échec initialisation Redis: %v", err)
	}
	defer cache.CloseRedis(rdb)

	api := backend.New(config.BackendBaseURL())
	log.Println("✅ Client backend BookBrew initialisé:", config.BackendBaseURL())

	carts := store.NewCartStore(store.NewRedisRepository(rdb))
	sessions := store.NewSessionStore(store.NewRedisSessionRepository(rdb))
	guard := cache.NewCheckoutGuard(rdb, 30*time.Second)
	checkoutService := checkout.NewService(carts, api, guard)

	r := gin.Default()
	routes.RegisterRoutes(r, rdb, routes.Handlers{
		Auth:       handlers.NewAuthHandler(api, sessions, cache.NewTokenBlacklist(rdb)),
		Cart:       handlers.NewCartHandler(carts, api),
		Checkout:   handlers.NewCheckoutHandler(checkoutService),
		Products:   handlers.NewProductHandler(api),
		Customers:  handlers.NewCustomerHandler(api),
		Users:      handlers.NewUserHandler(api),
		Orders:     handlers.NewOrderHandler(api),
		Storefront: handlers.NewStorefrontHandler(api),
	})

	port := config.Port()
	log.Println("🚀 Serveur BookBrew BFF lancé sur le port", port)
	if err := r.Run(":" + port); err != nil {
		log.Fatalf("❌ Erreur serveur: %v", err)
	}
}
