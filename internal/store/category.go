package store

import "fmt"

// Category classifies a product. The set of tags is closed; anything outside
// it is rejected at the boundary.
type Category string

const (
	CategoryElectronics Category = "ELECTRONICS"
	CategoryClothing    Category = "CLOTHING"
	CategoryFood        Category = "FOOD"
	CategoryBooks       Category = "BOOKS"
	CategoryToys        Category = "TOYS"
	CategoryHome        Category = "HOME"
	CategorySports      Category = "SPORTS"
)

var knownCategories = map[Category]struct{}{
	CategoryElectronics: {},
	CategoryClothing:    {},
	CategoryFood:        {},
	CategoryBooks:       {},
	CategoryToys:        {},
	CategoryHome:        {},
	CategorySports:      {},
}

// Valid reports whether c is one of the known category tags.
func (c Category) Valid() bool {
	_, ok := knownCategories[c]
	return ok
}

// ParseCategory converts a raw path or payload value into a Category.
// Returns an error for anything outside the known tag set.
func ParseCategory(s string) (Category, error) {
	c := Category(s)
	if !c.Valid() {
		return "", fmt.Errorf("unknown category: %q", s)
	}
	return c, nil
}
