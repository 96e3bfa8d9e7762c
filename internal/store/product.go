package store

import (
	"fmt"
	"math/rand"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/primalhq/primal/internal/model"
)

// ProductInput carries raw product fields as captured from the user.
// Stock and Price arrive as strings and are parsed at the store boundary;
// unparsable or negative values are rejected, not coerced.
type ProductInput struct {
	Name     string
	Brand    string
	Category string
	Barcode  string
	Stock    string
	Price    string
}

// SuggestBarcode returns a generated SKU of the form the product form
// pre-fills for new products.
func SuggestBarcode() string {
	return fmt.Sprintf("SKU%d", rand.Intn(1000000))
}

// AddProduct validates input, assigns a fresh unique id, and appends the
// product to the catalog.
//
// Fails with a validation error when name or barcode is empty, when the
// category does not exist, or when stock/price do not parse to
// non-negative values. On failure no collection is altered.
func (s *Store) AddProduct(in ProductInput) (model.Product, error) {
	p, err := s.buildProduct(in)
	if err != nil {
		return model.Product{}, err
	}
	p.ID = uuid.NewString()
	s.state.Products = append(s.state.Products, p)
	return p, nil
}

// UpdateProduct replaces the product with the given id in place,
// preserving the id and the collection position. Fails with a not-found
// error when the id is absent.
func (s *Store) UpdateProduct(id string, in ProductInput) (model.Product, error) {
	idx := s.state.FindProduct(id)
	if idx < 0 {
		return model.Product{}, NewNotFoundError("product", id)
	}
	p, err := s.buildProduct(in)
	if err != nil {
		return model.Product{}, err
	}
	p.ID = id
	s.state.Products[idx] = p
	return p, nil
}

// RemoveProduct deletes the product with the given id and drops it from
// the selection set. Fails with a not-found error when the id is absent.
func (s *Store) RemoveProduct(id string) (model.Product, error) {
	idx := s.state.FindProduct(id)
	if idx < 0 {
		return model.Product{}, NewNotFoundError("product", id)
	}
	removed := s.state.Products[idx]
	s.state.Products = append(s.state.Products[:idx], s.state.Products[idx+1:]...)
	s.Deselect(id)
	return removed, nil
}

// Product returns a copy of the product with the given id.
func (s *Store) Product(id string) (model.Product, error) {
	idx := s.state.FindProduct(id)
	if idx < 0 {
		return model.Product{}, NewNotFoundError("product", id)
	}
	return s.state.Products[idx], nil
}

// buildProduct validates and converts raw input into a typed product.
// The id is left empty for the caller to assign.
func (s *Store) buildProduct(in ProductInput) (model.Product, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return model.Product{}, NewValidationError("name", "product name is required")
	}
	barcode := strings.TrimSpace(in.Barcode)
	if barcode == "" {
		return model.Product{}, NewValidationError("barcode", "barcode is required")
	}
	if !s.state.HasCategory(in.Category) {
		return model.Product{}, NewValidationError("category", fmt.Sprintf("unknown category %q", in.Category))
	}

	stock, err := parseStock(in.Stock)
	if err != nil {
		return model.Product{}, err
	}
	price, err := parsePrice(in.Price)
	if err != nil {
		return model.Product{}, err
	}

	return model.Product{
		Name:     name,
		Brand:    strings.TrimSpace(in.Brand),
		Category: in.Category,
		Barcode:  barcode,
		Stock:    stock,
		Price:    price,
	}, nil
}

// parseStock parses a stock count. Empty input means zero.
func parseStock(raw string) (int, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, NewValidationError("stock", fmt.Sprintf("stock %q is not an integer", raw))
	}
	if n < 0 {
		return 0, NewValidationError("stock", "stock must not be negative")
	}
	return n, nil
}

// parsePrice parses a unit price. Empty input means zero.
func parsePrice(raw string) (decimal.Decimal, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return decimal.Zero, nil
	}
	d, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.Zero, NewValidationError("price", fmt.Sprintf("price %q is not a number", raw))
	}
	if d.IsNegative() {
		return decimal.Zero, NewValidationError("price", "price must not be negative")
	}
	return d, nil
}
