package store

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product is the catalog record as persisted. ID is assigned by the store on
// first save and never reused after deletion.
type Product struct {
	ID          int64
	Name        string
	Description string
	// Price is kept as a decimal to avoid float rounding (NUMERIC in Postgres).
	Price     decimal.Decimal
	Stock     int32
	Category  Category
	CreatedAt time.Time
	UpdatedAt time.Time
}
