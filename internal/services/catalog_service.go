package services

import (
	"errors"

	"github.com/sharongvarghese/ShopCart/internal/models"
	"github.com/sharongvarghese/ShopCart/internal/repository"

	"gorm.io/gorm"
)

type CatalogService interface {
	GetProduct(id uint) (*models.Product, error)
	ListProducts() ([]models.Product, error)
	ListProductsByCategory(categoryID uint) ([]models.Product, error)
	ListCategories() ([]models.Category, error)

	// Admin operations
	CreateCategory(admin AdminCapability, name string) (*models.Category, error)
	DeleteCategory(admin AdminCapability, id uint) error
	CreateProduct(admin AdminCapability, product *models.Product) error
	UpdateProduct(admin AdminCapability, product *models.Product) error
	DeleteProduct(admin AdminCapability, id uint) error
}

type catalogService struct {
	productRepo  repository.ProductRepository
	categoryRepo repository.CategoryRepository
}

func NewCatalogService(productRepo repository.ProductRepository, categoryRepo repository.CategoryRepository) CatalogService {
	return &catalogService{productRepo: productRepo, categoryRepo: categoryRepo}
}

func (s *catalogService) GetProduct(id uint) (*models.Product, error) {
	product, err := s.productRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProductNotFound
		}
		return nil, err
	}
	return product, nil
}

func (s *catalogService) ListProducts() ([]models.Product, error) {
	return s.productRepo.GetAll()
}

func (s *catalogService) ListProductsByCategory(categoryID uint) ([]models.Product, error) {
	if _, err := s.categoryRepo.GetByID(categoryID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCategoryNotFound
		}
		return nil, err
	}
	return s.productRepo.GetByCategoryID(categoryID)
}

func (s *catalogService) ListCategories() ([]models.Category, error) {
	return s.categoryRepo.GetAll()
}

func (s *catalogService) CreateCategory(admin AdminCapability, name string) (*models.Category, error) {
	category := &models.Category{Name: name}
	if err := s.categoryRepo.Create(category); err != nil {
		return nil, err
	}
	return category, nil
}

func (s *catalogService) DeleteCategory(admin AdminCapability, id uint) error {
	if _, err := s.categoryRepo.GetByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrCategoryNotFound
		}
		return err
	}
	return s.categoryRepo.Delete(id)
}

func (s *catalogService) CreateProduct(admin AdminCapability, product *models.Product) error {
	if _, err := s.categoryRepo.GetByID(product.CategoryID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrCategoryNotFound
		}
		return err
	}
	return s.productRepo.Create(product)
}

func (s *catalogService) UpdateProduct(admin AdminCapability, product *models.Product) error {
	if _, err := s.productRepo.GetByID(product.ID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrProductNotFound
		}
		return err
	}
	return s.productRepo.Update(product)
}

func (s *catalogService) DeleteProduct(admin AdminCapability, id uint) error {
	if _, err := s.productRepo.GetByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrProductNotFound
		}
		return err
	}
	return s.productRepo.Delete(id)
}
