package main

import (
	"fmt"
	"log"

	"github.com/sharongvarghese/ShopCart/internal/config"
	"github.com/sharongvarghese/ShopCart/internal/database"
	"github.com/sharongvarghese/ShopCart/internal/migrations"
	"github.com/sharongvarghese/ShopCart/internal/models"
	"github.com/sharongvarghese/ShopCart/internal/repository"
)

func main() {
	fmt.Println("Initializing database...")

	// Load configuration
	cfg := config.Load()

	// Initialize database
	db, err := database.Initialize(cfg.DatabaseURL)
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	// Force recreate all tables
	fmt.Println("Dropping existing tables...")
	err = db.Migrator().DropTable(
		&models.User{},
		&models.Category{},
		&models.Product{},
		&models.Order{},
		&models.OrderItem{},
	)
	if err != nil {
		log.Printf("Warning: Error dropping tables: %v", err)
	}

	// Recreate tables and seed the admin account
	if err := migrations.RunMigrations(db, cfg.AdminEmail); err != nil {
		log.Fatal("Failed to migrate database:", err)
	}

	// Seed a small sample catalog
	fmt.Println("Seeding sample catalog...")
	categoryRepo := repository.NewCategoryRepository(db)
	productRepo := repository.NewProductRepository(db)

	electronics := &models.Category{Name: "Electronics"}
	if err := categoryRepo.Create(electronics); err != nil {
		log.Printf("Warning: Failed to create category: %v", err)
	}
	clothing := &models.Category{Name: "Clothing"}
	if err := categoryRepo.Create(clothing); err != nil {
		log.Printf("Warning: Failed to create category: %v", err)
	}

	samples := []models.Product{
		{Name: "Wireless Headphones", Price: 59.99, Description: "Over-ear, 30h battery", CategoryID: electronics.ID},
		{Name: "USB-C Charger", Price: 19.99, Description: "65W fast charger", CategoryID: electronics.ID},
		{Name: "Cotton T-Shirt", Price: 9.99, Description: "Plain white, unisex", CategoryID: clothing.ID},
	}
	for i := range samples {
		if err := productRepo.Create(&samples[i]); err != nil {
			log.Printf("Warning: Failed to create product %s: %v", samples[i].Name, err)
		}
	}

	fmt.Println("Database initialization completed successfully!")
}
