package main

import (
	"log"
	"time"

	"github.com/sharongvarghese/ShopCart/internal/config"
	"github.com/sharongvarghese/ShopCart/internal/database"
	"github.com/sharongvarghese/ShopCart/internal/handlers"
	"github.com/sharongvarghese/ShopCart/internal/migrations"
	"github.com/sharongvarghese/ShopCart/internal/redis"
	"github.com/sharongvarghese/ShopCart/internal/repository"
	"github.com/sharongvarghese/ShopCart/internal/services"
	"github.com/sharongvarghese/ShopCart/internal/validation"

	"github.com/gin-gonic/gin"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Initialize database
	db, err := database.Initialize(cfg.DatabaseURL)
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	if err := migrations.RunMigrations(db, cfg.AdminEmail); err != nil {
		log.Fatal("Failed to migrate database:", err)
	}

	// Initialize Redis
	redisClient, err := redis.Initialize(cfg.RedisURL)
	if err != nil {
		log.Fatal("Failed to connect to Redis:", err)
	}
	defer redisClient.Close()

	// Register custom form validators
	if err := validation.Register(); err != nil {
		log.Fatal("Failed to register validators:", err)
	}

	cartTTL := time.Duration(cfg.CartTTL) * time.Second
	sessionTTL := time.Duration(cfg.SessionTTL) * time.Second

	// Initialize repositories
	userRepo := repository.NewUserRepository(db)
	categoryRepo := repository.NewCategoryRepository(db)
	productRepo := repository.NewProductRepository(db)
	orderRepo := repository.NewOrderRepository(db)
	orderItemRepo := repository.NewOrderItemRepository(db)

	// Initialize services
	userService := services.NewUserService(userRepo)
	catalogService := services.NewCatalogService(productRepo, categoryRepo)
	cartService := services.NewCartService(productRepo, redisClient, cartTTL)
	checkoutService := services.NewCheckoutService(orderRepo, redisClient)
	orderService := services.NewOrderService(orderRepo, orderItemRepo)

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(userService, redisClient, sessionTTL)
	catalogHandler := handlers.NewCatalogHandler(catalogService)
	cartHandler := handlers.NewCartHandler(cartService, redisClient)
	checkoutHandler := handlers.NewCheckoutHandler(checkoutService, redisClient)
	orderHandler := handlers.NewOrderHandler(orderService)

	// Setup routes
	router := gin.Default()
	router.Use(handlers.SessionMiddleware())

	// Auth
	router.POST("/signup", authHandler.Signup)
	router.POST("/login", authHandler.Login)
	router.POST("/logout", authHandler.Logout)

	// Catalog
	router.GET("/categories", catalogHandler.ListCategories)
	router.GET("/products", catalogHandler.ListProducts)
	router.GET("/products/:product_id", catalogHandler.GetProduct)

	// Cart and checkout
	router.GET("/cart", cartHandler.GetCart)
	router.POST("/cart/items/:product_id", cartHandler.AddToCart)
	router.PUT("/cart/items/:product_id", cartHandler.UpdateQuantity)
	router.POST("/cart/items/:product_id/adjust", cartHandler.AdjustQuantity)
	router.DELETE("/cart/items/:product_id", cartHandler.RemoveFromCart)
	router.DELETE("/cart", cartHandler.ClearCart)
	router.POST("/checkout", checkoutHandler.Checkout)

	// Admin
	admin := router.Group("/admin")
	admin.Use(handlers.AdminMiddleware(redisClient, userService))
	{
		admin.GET("/orders", orderHandler.ListOrders)
		admin.GET("/orders/:order_id", orderHandler.GetOrder)
		admin.PUT("/orders/:order_id/status", orderHandler.UpdateStatus)
		admin.DELETE("/orders/:order_id", orderHandler.DeleteOrder)

		admin.POST("/categories", catalogHandler.CreateCategory)
		admin.DELETE("/categories/:category_id", catalogHandler.DeleteCategory)
		admin.POST("/products", catalogHandler.CreateProduct)
		admin.PUT("/products/:product_id", catalogHandler.UpdateProduct)
		admin.DELETE("/products/:product_id", catalogHandler.DeleteProduct)
	}

	// Start server
	log.Printf("Server starting on port %s", cfg.ServerPort)
	if err := router.Run(":" + cfg.ServerPort); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}
