// Package service provides the implementation of catalog business logic.
package service

import (
	"context"
	"fmt"
	"strings"

	cerrors "github.com/catalogsvc/catalog/internal/errors"
	"github.com/catalogsvc/catalog/internal/store"
	"github.com/shopspring/decimal"
)

// CatalogService defines the methods for managing catalog products.
// It abstracts the underlying business logic and data access.
type CatalogService interface {
	// FindByID retrieves a single product by its unique identifier.
	// Returns ErrProductNotFound if no product exists with the given ID.
	FindByID(ctx context.Context, id int64) (*ProductDto, error)

	// FindAll returns all persisted products. Order is store-defined.
	// Returns an empty slice if no products exist.
	FindAll(ctx context.Context) ([]ProductDto, error)

	// FindByCategory returns all products whose category exactly equals the
	// argument. Returns an empty slice if none match.
	FindByCategory(ctx context.Context, category store.Category) ([]ProductDto, error)

	// Create adds a new product to the catalog. The candidate must already
	// be validated.
	Create(ctx context.Context, candidate ProductCandidateDto) (*ProductDto, error)

	// Update replaces every field of an existing product except its ID.
	// Returns ErrProductNotFound if no product exists with the given ID.
	Update(ctx context.Context, id int64, candidate ProductCandidateDto) (*ProductDto, error)

	// UpdateStock overwrites only the stock quantity of a product, leaving
	// every other field untouched.
	// Returns ErrProductNotFound if no product exists with the given ID.
	UpdateStock(ctx context.Context, id int64, stock int32) (*ProductDto, error)

	// DeleteByID removes a product permanently.
	// Returns ErrProductNotFound if no product exists with the given ID.
	DeleteByID(ctx context.Context, id int64) error
}

// Service implements CatalogService and provides methods to manage products.
type Service struct {
	repository store.ProductStore
}

// NewService creates a new instance of CatalogService with the provided repository.
func NewService(repo store.ProductStore) *Service {
	return &Service{
		repository: repo,
	}
}

// ProductCandidateDto carries the payload for create and full-update
// requests. Stock is a pointer so an explicit 0 passes the required rule.
type ProductCandidateDto struct {
	Name        string          `json:"name"        validate:"required,min=3,max=100"`
	Description string          `json:"description,omitempty" validate:"omitempty,max=500"`
	Price       decimal.Decimal `json:"price"       validate:"required,gte=0.01"`
	Stock       *int32          `json:"stock"       validate:"required,gte=0"`
	Category    store.Category  `json:"category"    validate:"required,category"`
}

// Normalize trims surrounding whitespace so blank input fails the length rules.
func (c *ProductCandidateDto) Normalize() {
	c.Name = strings.TrimSpace(c.Name)
	c.Description = strings.TrimSpace(c.Description)
}

// StockUpdateDto carries the payload for the stock-only partial update.
type StockUpdateDto struct {
	Stock *int32 `json:"stock" validate:"required,gte=0"`
}

// ProductDto represents the data transfer object for a product.
type ProductDto struct {
	ID          int64           `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description,omitempty"`
	Price       decimal.Decimal `json:"price"`
	Stock       int32           `json:"stock"`
	Category    store.Category  `json:"category"`
}

// FindByID retrieves a product by its ID and returns it as a ProductDto.
// Returns ErrProductNotFound if no product exists with the given ID.
func (s *Service) FindByID(ctx context.Context, id int64) (*ProductDto, error) {
	product, err := s.repository.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch product by ID %d: %w", id, err)
	}

	return toDto(product), nil
}

// FindAll retrieves every persisted product and returns them as ProductDtos.
// Returns an empty slice if no products exist or error if the retrieval fails.
func (s *Service) FindAll(ctx context.Context) ([]ProductDto, error) {
	products, err := s.repository.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch products: %w", err)
	}
	return toDtos(products), nil
}

// FindByCategory retrieves all products with an exact category match.
// An empty result is not an error.
func (s *Service) FindByCategory(ctx context.Context, category store.Category) ([]ProductDto, error) {
	products, err := s.repository.FindByCategory(ctx, category)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch products in category %s: %w", category, err)
	}
	return toDtos(products), nil
}

// Create persists a new product and returns it with its assigned ID.
func (s *Service) Create(ctx context.Context, candidate ProductCandidateDto) (*ProductDto, error) {
	saved, err := s.repository.Save(ctx, candidate.toProduct())
	if err != nil {
		return nil, fmt.Errorf("failed to create product: %w", err)
	}

	return toDto(saved), nil
}

// Update fetches the current record, replaces every field except the ID and
// writes it back. Returns ErrProductNotFound if no product exists with the given ID.
func (s *Service) Update(ctx context.Context, id int64, candidate ProductCandidateDto) (*ProductDto, error) {
	current, err := s.repository.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to update product with ID %d: %w", id, err)
	}

	current.Name = candidate.Name
	current.Description = candidate.Description
	current.Price = candidate.Price
	current.Stock = *candidate.Stock
	current.Category = candidate.Category

	saved, err := s.repository.Save(ctx, current)
	if err != nil {
		return nil, fmt.Errorf("failed to update product with ID %d: %w", id, err)
	}

	return toDto(saved), nil
}

// UpdateStock fetches the current record and writes it back with only the
// stock quantity replaced. Returns ErrProductNotFound if no product exists
// with the given ID.
func (s *Service) UpdateStock(ctx context.Context, id int64, stock int32) (*ProductDto, error) {
	current, err := s.repository.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to update stock for product with ID %d: %w", id, err)
	}

	current.Stock = stock

	saved, err := s.repository.Save(ctx, current)
	if err != nil {
		return nil, fmt.Errorf("failed to update stock for product with ID %d: %w", id, err)
	}

	return toDto(saved), nil
}

// DeleteByID removes a product after probing for its existence, so deletion
// is never attempted on a missing key.
func (s *Service) DeleteByID(ctx context.Context, id int64) error {
	exists, err := s.repository.ExistsByID(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to check product with ID %d: %w", id, err)
	}
	if !exists {
		return fmt.Errorf("no product with ID %d: %w", id, cerrors.ErrProductNotFound)
	}
	if err := s.repository.DeleteByID(ctx, id); err != nil {
		return fmt.Errorf("failed to delete product with ID %d: %w", id, err)
	}
	return nil
}

// toProduct converts a candidate into a store.Product without an ID.
func (c ProductCandidateDto) toProduct() *store.Product {
	return &store.Product{
		Name:        c.Name,
		Description: c.Description,
		Price:       c.Price,
		Stock:       *c.Stock,
		Category:    c.Category,
	}
}

// toDto converts a store.Product to a ProductDto.
func toDto(product *store.Product) *ProductDto {
	return &ProductDto{
		ID:          product.ID,
		Name:        product.Name,
		Description: product.Description,
		Price:       product.Price,
		Stock:       product.Stock,
		Category:    product.Category,
	}
}

func toDtos(products []store.Product) []ProductDto {
	dtos := make([]ProductDto, len(products))
	for i, p := range products {
		dtos[i] = *toDto(&p)
	}
	return dtos
}
