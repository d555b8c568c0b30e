package migrations

import (
	"errors"
	"log"

	"github.com/sharongvarghese/ShopCart/internal/models"
	"github.com/sharongvarghese/ShopCart/internal/repository"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// RunMigrations migrates the schema and seeds the default admin account.
func RunMigrations(db *gorm.DB, adminEmail string) error {
	log.Println("Running database migrations...")

	err := db.AutoMigrate(
		&models.User{},
		&models.Category{},
		&models.Product{},
		&models.Order{},
		&models.OrderItem{},
	)
	if err != nil {
		return err
	}

	if err := seedAdmin(db, adminEmail); err != nil {
		log.Printf("Warning: Failed to seed admin user: %v", err)
	}

	log.Println("Database migrations completed successfully!")
	return nil
}

func seedAdmin(db *gorm.DB, adminEmail string) error {
	userRepo := repository.NewUserRepository(db)

	existing, err := userRepo.GetByUsername("admin")
	if err == nil && existing != nil {
		log.Println("Admin user already exists")
		return nil
	}
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte("admin123"), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	admin := &models.User{
		Username:     "admin",
		Email:        adminEmail,
		PasswordHash: string(hashedPassword),
		Role:         string(models.RoleAdmin),
		IsActive:     true,
	}

	if err := userRepo.Create(admin); err != nil {
		return err
	}

	log.Println("Admin user created successfully")
	log.Println("Username: admin")
	log.Println("Password: admin123")
	return nil
}
