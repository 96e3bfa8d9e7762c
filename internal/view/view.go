// Package view derives read-only view models from a state snapshot.
//
// Every function here is pure: it never mutates its input and owns no
// state of its own, so the rendering layer can recompute any projection
// after every mutation.
package view

import (
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/text/cases"

	"github.com/primalhq/primal/internal/model"
)

// recentLogLimit caps the dashboard activity preview.
const recentLogLimit = 5

// Stats is the dashboard headline view model.
type Stats struct {
	CategoryCount   int
	ProductCount    int
	TotalStockUnits int
	RecentLogs      []model.LogEntry
}

// DashboardStats aggregates the headline numbers and the most recent
// activity (newest first, at most five entries).
func DashboardStats(st model.State) Stats {
	total := 0
	for _, p := range st.Products {
		total += p.Stock
	}
	n := len(st.Logs)
	if n > recentLogLimit {
		n = recentLogLimit
	}
	return Stats{
		CategoryCount:   len(st.Categories),
		ProductCount:    len(st.Products),
		TotalStockUnits: total,
		RecentLogs:      append([]model.LogEntry(nil), st.Logs[:n]...),
	}
}

// StockRow is one line of the stock forecast table.
type StockRow struct {
	Product model.Product
	Low     bool
}

// Report is the stock forecast view model.
type Report struct {
	Threshold      int
	LowStockCount  int
	InventoryValue decimal.Decimal
	Rows           []StockRow
}

// LowStockReport classifies every product against the configured
// threshold and totals the inventory value (Σ price × stock).
//
// The boundary is inclusive: stock equal to the threshold is low.
func LowStockReport(st model.State) Report {
	r := Report{
		Threshold:      st.Settings.LowStockThreshold,
		InventoryValue: decimal.Zero,
		Rows:           make([]StockRow, 0, len(st.Products)),
	}
	for _, p := range st.Products {
		low := p.Stock <= r.Threshold
		if low {
			r.LowStockCount++
		}
		r.InventoryValue = r.InventoryValue.Add(p.Price.Mul(decimal.NewFromInt(int64(p.Stock))))
		r.Rows = append(r.Rows, StockRow{Product: p, Low: low})
	}
	return r
}

var fold = cases.Fold()

// FilteredProducts returns the products whose name, barcode, or brand
// contains the query, compared case-insensitively via Unicode case
// folding. An absent brand never matches a non-empty query. The empty
// query returns all products. Result order is the underlying collection
// order (insertion order), never re-sorted.
func FilteredProducts(st model.State, query string) []model.Product {
	out := make([]model.Product, 0, len(st.Products))
	if query == "" {
		return append(out, st.Products...)
	}
	q := fold.String(query)
	for _, p := range st.Products {
		if strings.Contains(fold.String(p.Name), q) ||
			strings.Contains(fold.String(p.Barcode), q) ||
			(p.Brand != "" && strings.Contains(fold.String(p.Brand), q)) {
			out = append(out, p)
		}
	}
	return out
}

// CategoryCount pairs a category name with its product reference count.
type CategoryCount struct {
	Category string
	Count    int
}

// CategoryUsage counts product references for every category, in
// category insertion order. Unreferenced categories appear with a zero
// count.
func CategoryUsage(st model.State) []CategoryCount {
	out := make([]CategoryCount, 0, len(st.Categories))
	for _, c := range st.Categories {
		count := 0
		for _, p := range st.Products {
			if p.Category == c {
				count++
			}
		}
		out = append(out, CategoryCount{Category: c, Count: count})
	}
	return out
}
