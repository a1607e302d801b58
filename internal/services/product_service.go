package services

import (
	"context"
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"

	"storefront/internal/models"
	"storefront/internal/repositories"
)

// ProductService handles business logic related to products.
type ProductService struct {
	repo     repositories.ProductRepository
	validate *validator.Validate
	log      zerolog.Logger
}

// NewProductService creates a new ProductService.
func NewProductService(repo repositories.ProductRepository, log zerolog.Logger) *ProductService {
	return &ProductService{
		repo:     repo,
		validate: models.NewValidator(),
		log:      log,
	}
}

// GetAllProducts retrieves all products.
func (s *ProductService) GetAllProducts(ctx context.Context) ([]models.Product, error) {
	products, err := s.repo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list products: %w", err)
	}
	s.log.Debug().Int("count", len(products)).Msg("listed products")
	return products, nil
}

// CreateProduct validates and stores a product. Only the seeding tool
// creates products; the HTTP API never does.
func (s *ProductService) CreateProduct(ctx context.Context, product *models.Product) error {
	if err := models.Validate(s.validate, "product", product); err != nil {
		return err
	}
	if err := s.repo.Create(ctx, product); err != nil {
		return fmt.Errorf("failed to create product %q: %w", product.Name, err)
	}
	return nil
}
