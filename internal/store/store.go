// Package store provides an interface for product storage operations.
package store

import "context"

// ProductStore is an interface for product storage operations.
// It abstracts the underlying data store, allowing for different implementations (e.g., in-memory, database).
type ProductStore interface {
	// Save persists a product. A product without an ID is inserted and gets
	// one assigned; a product with an ID has its full row overwritten.
	// Returns ErrProductNotFound when the ID no longer exists.
	Save(ctx context.Context, product *Product) (*Product, error)

	// FindByID retrieves a single product by its unique identifier.
	// Returns ErrProductNotFound if no product exists with the given ID.
	FindByID(ctx context.Context, id int64) (*Product, error)

	// FindAll returns all persisted products. Order is store-defined.
	// Returns an empty slice if no products exist.
	FindAll(ctx context.Context) ([]Product, error)

	// FindByCategory returns all products whose category exactly equals the
	// argument. Returns an empty slice if none match.
	FindByCategory(ctx context.Context, category Category) ([]Product, error)

	// ExistsByID reports whether a product with the given ID exists.
	ExistsByID(ctx context.Context, id int64) (bool, error)

	// DeleteByID removes a product by its ID.
	// Returns ErrProductNotFound if no product exists with the given ID.
	DeleteByID(ctx context.Context, id int64) error
}
