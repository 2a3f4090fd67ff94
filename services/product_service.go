package services

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"sort"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/achraf-fouad/aura-scents/models"
	"github.com/achraf-fouad/aura-scents/repository"
	"github.com/achraf-fouad/aura-scents/storage"
)

// SortKey selects the shop sort order.
type SortKey string

const (
	SortPopularity SortKey = "popularity"
	SortNewest     SortKey = "newest"
	SortPriceAsc   SortKey = "price-asc"
	SortPriceDesc  SortKey = "price-desc"
)

func IsValidSortKey(k string) bool {
	switch SortKey(k) {
	case SortPopularity, SortNewest, SortPriceAsc, SortPriceDesc:
		return true
	}
	return false
}

// ProductFilter narrows the catalog. An empty set on a dimension means
// no restriction on that dimension; price bounds are inclusive.
type ProductFilter struct {
	Categories  []string
	Intensities []string
	PriceMin    *float64
	PriceMax    *float64
}

// ProductInput carries the admin form fields for create/update.
type ProductInput struct {
	Name          string                `json:"name"`
	Brand         string                `json:"brand"`
	Price         float64               `json:"price"`
	OriginalPrice *float64              `json:"original_price"`
	Images        []string              `json:"images"`
	Description   string                `json:"description"`
	Category      string                `json:"category"`
	Intensity     string                `json:"intensity"`
	Notes         models.FragranceNotes `json:"notes"`
	Size          string                `json:"size"`
	IsNew         bool                  `json:"is_new"`
	IsBestSeller  bool                  `json:"is_best_seller"`
}

// ProductService exposes the catalog to shoppers and CRUD to the admin
// panel.
type ProductService interface {
	ListProducts(ctx context.Context, filter ProductFilter, sortKey SortKey) ([]models.Product, *ServiceError)
	GetProduct(ctx context.Context, id uuid.UUID) (*models.Product, *ServiceError)
	BestSellers(ctx context.Context) ([]models.Product, *ServiceError)
	NewArrivals(ctx context.Context) ([]models.Product, *ServiceError)
	CreateProduct(ctx context.Context, input ProductInput) (*models.Product, *ServiceError)
	UpdateProduct(ctx context.Context, id uuid.UUID, input ProductInput) (*models.Product, *ServiceError)
	DeleteProduct(ctx context.Context, id uuid.UUID) *ServiceError
	UploadImage(ctx context.Context, filename, contentType string, body io.Reader) (string, *ServiceError)
}

type productServiceImpl struct {
	repo     repository.ProductRepository
	uploader storage.Uploader
	logger   *zap.Logger
}

func NewProductService(repo repository.ProductRepository, uploader storage.Uploader, logger *zap.Logger) ProductService {
	return &productServiceImpl{repo: repo, uploader: uploader, logger: logger}
}

// FilterProducts keeps products matching every supplied predicate.
func FilterProducts(products []models.Product, filter ProductFilter) []models.Product {
	result := make([]models.Product, 0, len(products))
	for _, p := range products {
		if len(filter.Categories) > 0 && !contains(filter.Categories, p.Category) {
			continue
		}
		if len(filter.Intensities) > 0 && !contains(filter.Intensities, p.Intensity) {
			continue
		}
		if filter.PriceMin != nil && p.Price < *filter.PriceMin {
			continue
		}
		if filter.PriceMax != nil && p.Price > *filter.PriceMax {
			continue
		}
		result = append(result, p)
	}
	return result
}

// SortProducts orders a product list in place. Every sort is stable so
// ties keep catalog order and sorting an already-sorted list is a
// no-op.
func SortProducts(products []models.Product, key SortKey) {
	switch key {
	case SortPriceAsc:
		sort.SliceStable(products, func(i, j int) bool {
			return products[i].Price < products[j].Price
		})
	case SortPriceDesc:
		sort.SliceStable(products, func(i, j int) bool {
			return products[i].Price > products[j].Price
		})
	case SortNewest:
		sort.SliceStable(products, func(i, j int) bool {
			return products[i].IsNew && !products[j].IsNew
		})
	case SortPopularity:
		sort.SliceStable(products, func(i, j int) bool {
			return products[i].IsBestSeller && !products[j].IsBestSeller
		})
	}
}

func contains(haystack []string, needle string) bool {
	for _, s := range haystack {
		if s == needle {
			return true
		}
	}
	return false
}

func (s *productServiceImpl) ListProducts(ctx context.Context, filter ProductFilter, sortKey SortKey) ([]models.Product, *ServiceError) {
	products, err := s.repo.FindAll(ctx)
	if err != nil {
		s.logger.Error("Failed to fetch catalog", zap.Error(err))
		return nil, ErrPersistence("Failed to fetch products")
	}

	products = FilterProducts(products, filter)
	SortProducts(products, sortKey)
	return products, nil
}

func (s *productServiceImpl) GetProduct(ctx context.Context, id uuid.UUID) (*models.Product, *ServiceError) {
	product, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound("Product not found")
		}
		s.logger.Error("Failed to fetch product", zap.String("id", id.String()), zap.Error(err))
		return nil, ErrPersistence("Failed to fetch product")
	}
	return product, nil
}

func (s *productServiceImpl) BestSellers(ctx context.Context) ([]models.Product, *ServiceError) {
	products, err := s.repo.FindAll(ctx)
	if err != nil {
		s.logger.Error("Failed to fetch catalog", zap.Error(err))
		return nil, ErrPersistence("Failed to fetch products")
	}
	result := make([]models.Product, 0)
	for _, p := range products {
		if p.IsBestSeller {
			result = append(result, p)
		}
	}
	return result, nil
}

func (s *productServiceImpl) NewArrivals(ctx context.Context) ([]models.Product, *ServiceError) {
	products, err := s.repo.FindAll(ctx)
	if err != nil {
		s.logger.Error("Failed to fetch catalog", zap.Error(err))
		return nil, ErrPersistence("Failed to fetch products")
	}
	result := make([]models.Product, 0)
	for _, p := range products {
		if p.IsNew {
			result = append(result, p)
		}
	}
	return result, nil
}

func (s *productServiceImpl) validateInput(input ProductInput) *ServiceError {
	if input.Name == "" {
		return ErrValidation("Product name is required")
	}
	if input.Brand == "" {
		return ErrValidation("Product brand is required")
	}
	if input.Price < 0 {
		return ErrValidation("Price must not be negative")
	}
	if !models.IsValidCategory(input.Category) {
		return ErrValidation("Invalid category: " + input.Category)
	}
	if !models.IsValidIntensity(input.Intensity) {
		return ErrValidation("Invalid intensity: " + input.Intensity)
	}
	return nil
}

func (s *productServiceImpl) CreateProduct(ctx context.Context, input ProductInput) (*models.Product, *ServiceError) {
	if svcErr := s.validateInput(input); svcErr != nil {
		return nil, svcErr
	}

	product := &models.Product{
		Name:          input.Name,
		Brand:         input.Brand,
		Price:         input.Price,
		OriginalPrice: input.OriginalPrice,
		Images:        input.Images,
		Description:   input.Description,
		Category:      input.Category,
		Intensity:     input.Intensity,
		Notes:         input.Notes,
		Size:          input.Size,
		IsNew:         input.IsNew,
		IsBestSeller:  input.IsBestSeller,
	}
	if err := s.repo.Create(ctx, product); err != nil {
		s.logger.Error("Failed to create product", zap.Error(err))
		return nil, ErrPersistence("Failed to create product")
	}

	s.logger.Info("Product created",
		zap.String("id", product.ID.String()),
		zap.String("name", product.Name),
	)
	return product, nil
}

func (s *productServiceImpl) UpdateProduct(ctx context.Context, id uuid.UUID, input ProductInput) (*models.Product, *ServiceError) {
	if svcErr := s.validateInput(input); svcErr != nil {
		return nil, svcErr
	}

	product, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound("Product not found")
		}
		return nil, ErrPersistence("Failed to fetch product")
	}

	product.Name = input.Name
	product.Brand = input.Brand
	product.Price = input.Price
	product.OriginalPrice = input.OriginalPrice
	product.Images = input.Images
	product.Description = input.Description
	product.Category = input.Category
	product.Intensity = input.Intensity
	product.Notes = input.Notes
	product.Size = input.Size
	product.IsNew = input.IsNew
	product.IsBestSeller = input.IsBestSeller

	if err := s.repo.Update(ctx, product); err != nil {
		s.logger.Error("Failed to update product", zap.String("id", id.String()), zap.Error(err))
		return nil, ErrPersistence("Failed to update product")
	}
	return product, nil
}

func (s *productServiceImpl) DeleteProduct(ctx context.Context, id uuid.UUID) *ServiceError {
	rows, err := s.repo.Delete(ctx, id)
	if err != nil {
		s.logger.Error("Failed to delete product", zap.String("id", id.String()), zap.Error(err))
		return ErrPersistence("Failed to delete product")
	}
	if rows == 0 {
		return ErrNotFound("Product not found")
	}
	s.logger.Info("Product deleted", zap.String("id", id.String()))
	return nil
}

// UploadImage stores a product image and returns its public URL.
func (s *productServiceImpl) UploadImage(ctx context.Context, filename, contentType string, body io.Reader) (string, *ServiceError) {
	if s.uploader == nil {
		return "", ErrPersistence("Image storage is not configured")
	}

	key := fmt.Sprintf("%s%s", uuid.New().String(), filepath.Ext(filename))
	url, err := s.uploader.Upload(ctx, key, contentType, body)
	if err != nil {
		s.logger.Error("Image upload failed", zap.String("filename", filename), zap.Error(err))
		return "", ErrPersistence("Failed to upload image")
	}
	return url, nil
}
