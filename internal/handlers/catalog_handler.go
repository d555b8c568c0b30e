package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/sharongvarghese/ShopCart/internal/models"
	"github.com/sharongvarghese/ShopCart/internal/services"

	"github.com/gin-gonic/gin"
)

type CatalogHandler struct {
	catalogService services.CatalogService
}

func NewCatalogHandler(catalogService services.CatalogService) *CatalogHandler {
	return &CatalogHandler{catalogService: catalogService}
}

// GET /products
func (h *CatalogHandler) ListProducts(c *gin.Context) {
	if categoryParam := c.Query("category_id"); categoryParam != "" {
		categoryID, err := strconv.ParseUint(categoryParam, 10, 32)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid category id"})
			return
		}
		products, err := h.catalogService.ListProductsByCategory(uint(categoryID))
		if err != nil {
			if errors.Is(err, services.ErrCategoryNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "category not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list products"})
			return
		}
		c.JSON(http.StatusOK, products)
		return
	}

	products, err := h.catalogService.ListProducts()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list products"})
		return
	}
	c.JSON(http.StatusOK, products)
}

// GET /products/:product_id
func (h *CatalogHandler) GetProduct(c *gin.Context) {
	id, ok := productIDParam(c)
	if !ok {
		return
	}

	product, err := h.catalogService.GetProduct(id)
	if err != nil {
		if errors.Is(err, services.ErrProductNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "product not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to get product"})
		return
	}
	c.JSON(http.StatusOK, product)
}

// GET /categories
func (h *CatalogHandler) ListCategories(c *gin.Context) {
	categories, err := h.catalogService.ListCategories()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list categories"})
		return
	}
	c.JSON(http.StatusOK, categories)
}

type createCategoryRequest struct {
	Name string `json:"name" binding:"required"`
}

// POST /admin/categories
func (h *CatalogHandler) CreateCategory(c *gin.Context) {
	var req createCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "name is required"})
		return
	}

	category, err := h.catalogService.CreateCategory(adminCapability(c), req.Name)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create category"})
		return
	}
	c.JSON(http.StatusCreated, category)
}

// DELETE /admin/categories/:category_id
func (h *CatalogHandler) DeleteCategory(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("category_id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid category id"})
		return
	}

	if err := h.catalogService.DeleteCategory(adminCapability(c), uint(id)); err != nil {
		if errors.Is(err, services.ErrCategoryNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "category not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete category"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "category deleted"})
}

type productRequest struct {
	Name        string  `json:"name" binding:"required"`
	Price       float64 `json:"price" binding:"required,gt=0"`
	Description string  `json:"description"`
	ImageURL    string  `json:"image_url"`
	CategoryID  uint    `json:"category_id" binding:"required"`
}

// POST /admin/products
func (h *CatalogHandler) CreateProduct(c *gin.Context) {
	var req productRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	product := &models.Product{
		Name:        req.Name,
		Price:       req.Price,
		Description: req.Description,
		ImageURL:    req.ImageURL,
		CategoryID:  req.CategoryID,
	}

	if err := h.catalogService.CreateProduct(adminCapability(c), product); err != nil {
		if errors.Is(err, services.ErrCategoryNotFound) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "category not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create product"})
		return
	}
	c.JSON(http.StatusCreated, product)
}

// PUT /admin/products/:product_id
func (h *CatalogHandler) UpdateProduct(c *gin.Context) {
	id, ok := productIDParam(c)
	if !ok {
		return
	}

	var req productRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	product := &models.Product{
		ID:          id,
		Name:        req.Name,
		Price:       req.Price,
		Description: req.Description,
		ImageURL:    req.ImageURL,
		CategoryID:  req.CategoryID,
	}

	if err := h.catalogService.UpdateProduct(adminCapability(c), product); err != nil {
		if errors.Is(err, services.ErrProductNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "product not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update product"})
		return
	}
	c.JSON(http.StatusOK, product)
}

// DELETE /admin/products/:product_id
func (h *CatalogHandler) DeleteProduct(c *gin.Context) {
	id, ok := productIDParam(c)
	if !ok {
		return
	}

	if err := h.catalogService.DeleteProduct(adminCapability(c), id); err != nil {
		if errors.Is(err, services.ErrProductNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "product not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete product"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "product deleted"})
}
