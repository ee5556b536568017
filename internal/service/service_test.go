package service

import (
	"context"
	"errors"
	"testing"

	cerrors "github.com/catalogsvc/catalog/internal/errors"
	"github.com/catalogsvc/catalog/internal/store"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mockProductStore is a mock implementation of the ProductStore interface.
// It records the last saved product so tests can inspect what the service
// wrote back.
type mockProductStore struct {
	product   *store.Product
	products  []store.Product
	exists    bool
	findErr   error
	saveErr   error
	existsErr error
	deleteErr error
	saved     *store.Product
}

func (m *mockProductStore) Save(_ context.Context, p *store.Product) (*store.Product, error) {
	if m.saveErr != nil {
		return nil, m.saveErr
	}
	clone := *p
	if clone.ID == 0 {
		clone.ID = 1
	}
	m.saved = &clone
	return &clone, nil
}

func (m *mockProductStore) FindByID(_ context.Context, _ int64) (*store.Product, error) {
	if m.findErr != nil {
		return nil, m.findErr
	}
	clone := *m.product
	return &clone, nil
}

func (m *mockProductStore) FindAll(_ context.Context) ([]store.Product, error) {
	return m.products, m.findErr
}

func (m *mockProductStore) FindByCategory(_ context.Context, _ store.Category) ([]store.Product, error) {
	return m.products, m.findErr
}

func (m *mockProductStore) ExistsByID(_ context.Context, _ int64) (bool, error) {
	return m.exists, m.existsErr
}

func (m *mockProductStore) DeleteByID(_ context.Context, _ int64) error {
	return m.deleteErr
}

func int32Ptr(i int32) *int32 { return &i }

func widget() *store.Product {
	return &store.Product{
		ID:          1,
		Name:        "Widget",
		Description: "A reliable widget",
		Price:       decimal.RequireFromString("9.99"),
		Stock:       10,
		Category:    store.CategoryElectronics,
	}
}

func widgetCandidate() ProductCandidateDto {
	return ProductCandidateDto{
		Name:        "Widget",
		Description: "A reliable widget",
		Price:       decimal.RequireFromString("9.99"),
		Stock:       int32Ptr(10),
		Category:    store.CategoryElectronics,
	}
}

func Test_CatalogService_FindByID(t *testing.T) {
	testCases := []struct {
		name        string
		mockStore   *mockProductStore
		productID   int64
		expected    *ProductDto
		expectError error
	}{
		{
			name:      "Success - product found",
			mockStore: &mockProductStore{product: widget()},
			productID: 1,
			expected: &ProductDto{
				ID:          1,
				Name:        "Widget",
				Description: "A reliable widget",
				Price:       decimal.RequireFromString("9.99"),
				Stock:       10,
				Category:    store.CategoryElectronics,
			},
		},
		{
			name:        "Error - product not found",
			mockStore:   &mockProductStore{findErr: cerrors.ErrProductNotFound},
			productID:   99,
			expectError: cerrors.ErrProductNotFound,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			// given
			service := NewService(tc.mockStore)
			// when
			found, err := service.FindByID(context.Background(), tc.productID)
			// then
			if tc.expectError != nil {
				assert.ErrorIs(t, err, tc.expectError)
				assert.Nil(t, found)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.expected, found)
		})
	}
}

func Test_CatalogService_FindAll(t *testing.T) {
	ErrStoreError := errors.New("store error")
	testCases := []struct {
		name        string
		mockStore   *mockProductStore
		expected    []ProductDto
		expectError error
	}{
		{
			name:      "Success - products found",
			mockStore: &mockProductStore{products: []store.Product{*widget()}},
			expected: []ProductDto{{
				ID:          1,
				Name:        "Widget",
				Description: "A reliable widget",
				Price:       decimal.RequireFromString("9.99"),
				Stock:       10,
				Category:    store.CategoryElectronics,
			}},
		},
		{
			name:      "Success - no products",
			mockStore: &mockProductStore{products: []store.Product{}},
			expected:  []ProductDto{},
		},
		{
			name:        "Error - store error",
			mockStore:   &mockProductStore{findErr: ErrStoreError},
			expectError: ErrStoreError,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			// given
			service := NewService(tc.mockStore)
			// when
			found, err := service.FindAll(context.Background())
			// then
			if tc.expectError != nil {
				assert.ErrorIs(t, err, tc.expectError)
				assert.Nil(t, found)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.expected, found)
		})
	}
}

func Test_CatalogService_FindByCategory(t *testing.T) {
	ErrStoreError := errors.New("store error")
	testCases := []struct {
		name        string
		mockStore   *mockProductStore
		category    store.Category
		expectedLen int
		expectError error
	}{
		{
			name:        "Success - products in category",
			mockStore:   &mockProductStore{products: []store.Product{*widget()}},
			category:    store.CategoryElectronics,
			expectedLen: 1,
		},
		{
			name:        "Success - empty category is not an error",
			mockStore:   &mockProductStore{products: []store.Product{}},
			category:    store.CategoryToys,
			expectedLen: 0,
		},
		{
			name:        "Error - store error",
			mockStore:   &mockProductStore{findErr: ErrStoreError},
			category:    store.CategoryElectronics,
			expectError: ErrStoreError,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			// given
			service := NewService(tc.mockStore)
			// when
			found, err := service.FindByCategory(context.Background(), tc.category)
			// then
			if tc.expectError != nil {
				assert.ErrorIs(t, err, tc.expectError)
				return
			}
			require.NoError(t, err)
			assert.Len(t, found, tc.expectedLen)
		})
	}
}

func Test_CatalogService_Create(t *testing.T) {
	ErrStoreError := errors.New("store error")

	t.Run("Success - product created with assigned ID", func(t *testing.T) {
		// given
		mockStore := &mockProductStore{}
		service := NewService(mockStore)
		// when
		created, err := service.Create(context.Background(), widgetCandidate())
		// then
		require.NoError(t, err)
		assert.Equal(t, int64(1), created.ID)
		assert.Equal(t, "Widget", created.Name)
		assert.True(t, created.Price.Equal(decimal.RequireFromString("9.99")))
		assert.Equal(t, int32(10), created.Stock)
		assert.Equal(t, store.CategoryElectronics, created.Category)
	})

	t.Run("Error - store error", func(t *testing.T) {
		// given
		service := NewService(&mockProductStore{saveErr: ErrStoreError})
		// when
		created, err := service.Create(context.Background(), widgetCandidate())
		// then
		assert.ErrorIs(t, err, ErrStoreError)
		assert.Nil(t, created)
	})
}

func Test_CatalogService_Update(t *testing.T) {
	ErrStoreError := errors.New("store error")

	t.Run("Success - every field except ID replaced", func(t *testing.T) {
		// given
		mockStore := &mockProductStore{product: widget()}
		service := NewService(mockStore)
		candidate := ProductCandidateDto{
			Name:        "Widget Pro",
			Description: "",
			Price:       decimal.RequireFromString("19.99"),
			Stock:       int32Ptr(3),
			Category:    store.CategoryHome,
		}
		// when
		updated, err := service.Update(context.Background(), 1, candidate)
		// then
		require.NoError(t, err)
		assert.Equal(t, int64(1), updated.ID)
		assert.Equal(t, "Widget Pro", updated.Name)
		assert.Equal(t, "", updated.Description)
		assert.True(t, updated.Price.Equal(decimal.RequireFromString("19.99")))
		assert.Equal(t, int32(3), updated.Stock)
		assert.Equal(t, store.CategoryHome, updated.Category)
		// the write kept the original identity
		require.NotNil(t, mockStore.saved)
		assert.Equal(t, int64(1), mockStore.saved.ID)
	})

	t.Run("Error - product not found", func(t *testing.T) {
		// given
		service := NewService(&mockProductStore{findErr: cerrors.ErrProductNotFound})
		// when
		updated, err := service.Update(context.Background(), 99, widgetCandidate())
		// then
		assert.ErrorIs(t, err, cerrors.ErrProductNotFound)
		assert.Nil(t, updated)
	})

	t.Run("Error - store error on write", func(t *testing.T) {
		// given
		service := NewService(&mockProductStore{product: widget(), saveErr: ErrStoreError})
		// when
		updated, err := service.Update(context.Background(), 1, widgetCandidate())
		// then
		assert.ErrorIs(t, err, ErrStoreError)
		assert.Nil(t, updated)
	})
}

func Test_CatalogService_UpdateStock(t *testing.T) {
	// Concurrent updates against the same ID are last-write-wins: the service
	// does a read-modify-write with no optimistic locking.
	t.Run("Success - only stock changes", func(t *testing.T) {
		// given
		mockStore := &mockProductStore{product: widget()}
		service := NewService(mockStore)
		// when
		updated, err := service.UpdateStock(context.Background(), 1, 0)
		// then
		require.NoError(t, err)
		assert.Equal(t, int32(0), updated.Stock)
		assert.Equal(t, "Widget", updated.Name)
		assert.Equal(t, "A reliable widget", updated.Description)
		assert.True(t, updated.Price.Equal(decimal.RequireFromString("9.99")))
		assert.Equal(t, store.CategoryElectronics, updated.Category)
	})

	t.Run("Error - product not found", func(t *testing.T) {
		// given
		service := NewService(&mockProductStore{findErr: cerrors.ErrProductNotFound})
		// when
		updated, err := service.UpdateStock(context.Background(), 99, 5)
		// then
		assert.ErrorIs(t, err, cerrors.ErrProductNotFound)
		assert.Nil(t, updated)
	})
}

func Test_CatalogService_DeleteByID(t *testing.T) {
	ErrStoreError := errors.New("store error")
	testCases := []struct {
		name        string
		mockStore   *mockProductStore
		productID   int64
		expectError error
	}{
		{
			name:      "Success - product deleted",
			mockStore: &mockProductStore{exists: true},
			productID: 1,
		},
		{
			name:        "Error - missing product reported before delete",
			mockStore:   &mockProductStore{exists: false},
			productID:   99,
			expectError: cerrors.ErrProductNotFound,
		},
		{
			name:        "Error - existence check fails",
			mockStore:   &mockProductStore{existsErr: ErrStoreError},
			productID:   1,
			expectError: ErrStoreError,
		},
		{
			name:        "Error - delete fails",
			mockStore:   &mockProductStore{exists: true, deleteErr: ErrStoreError},
			productID:   1,
			expectError: ErrStoreError,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			// given
			service := NewService(tc.mockStore)
			// when
			err := service.DeleteByID(context.Background(), tc.productID)
			// then
			if tc.expectError != nil {
				assert.ErrorIs(t, err, tc.expectError)
				return
			}
			require.NoError(t, err)
		})
	}
}
