package model

import (
	"bytes"
	"encoding/json"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// Historical backups store stock and price as loosely-typed values: JSON
// numbers, numeric strings, empty strings, or null, depending on which
// form the original UI captured. Decoding normalizes all of them, treating
// anything unparsable as zero rather than rejecting the whole document.

type looseProduct struct {
	ID       string          `json:"id"`
	Name     string          `json:"name"`
	Brand    string          `json:"brand"`
	Category string          `json:"category"`
	Barcode  string          `json:"barcode"`
	Stock    json.RawMessage `json:"stock"`
	Price    json.RawMessage `json:"price"`
}

// UnmarshalJSON decodes a product, accepting number-or-string stock and
// price fields.
func (p *Product) UnmarshalJSON(data []byte) error {
	var raw looseProduct
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	p.ID = raw.ID
	p.Name = raw.Name
	p.Brand = raw.Brand
	p.Category = raw.Category
	p.Barcode = raw.Barcode
	p.Stock = looseInt(raw.Stock)
	p.Price = looseDecimal(raw.Price)
	return nil
}

// looseInt parses a raw JSON value as an integer, coercing unparsable
// input to 0. Fractional numbers are truncated, matching parseInt.
func looseInt(raw json.RawMessage) int {
	s := looseString(raw)
	if s == "" {
		return 0
	}
	if n, err := strconv.Atoi(s); err == nil {
		return n
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return int(f)
	}
	return 0
}

// looseDecimal parses a raw JSON value as a decimal, coercing unparsable
// input to zero.
func looseDecimal(raw json.RawMessage) decimal.Decimal {
	s := looseString(raw)
	if s == "" {
		return decimal.Zero
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero
	}
	return d
}

// looseString reduces a raw JSON scalar to its text content: quoted
// strings are unquoted, null becomes empty, everything else is kept as-is.
func looseString(raw json.RawMessage) string {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return ""
	}
	if raw[0] == '"' {
		var s string
		if err := json.Unmarshal(raw, &s); err != nil {
			return ""
		}
		return strings.TrimSpace(s)
	}
	return string(raw)
}
