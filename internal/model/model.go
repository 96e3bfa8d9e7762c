// Package model defines the canonical data model for a Primal store:
// products, categories, the activity log, profile and settings singletons,
// auth state, and the transient UI state layered on top of them.
//
// All collections are owned by the state store (internal/store); model
// types carry no behavior beyond JSON shape and copying.
package model

import "github.com/shopspring/decimal"

// LogType categorizes activity log entries.
type LogType string

const (
	LogProduct  LogType = "Product"
	LogCategory LogType = "Category"
	LogSystem   LogType = "System"
)

// Product is a single catalog entry.
//
// ID is assigned at creation and immutable. Category references a category
// by name; referential integrity is enforced by the store at write time.
// Stock and Price are typed here, but imported documents may carry them as
// strings (the historical storage format) - see UnmarshalJSON in loose.go.
type Product struct {
	ID       string          `json:"id"`
	Name     string          `json:"name"`
	Brand    string          `json:"brand,omitempty"`
	Category string          `json:"category"`
	Barcode  string          `json:"barcode"`
	Stock    int             `json:"stock"`
	Price    decimal.Decimal `json:"price"`
}

// LogEntry is one immutable activity log record.
//
// ID is a monotonic millisecond timestamp; Timestamp is the human-readable
// display form captured at record time. Entries carry no back-reference to
// the entity they describe.
type LogEntry struct {
	ID        int64   `json:"id"`
	Type      LogType `json:"type"`
	Action    string  `json:"action"`
	Details   string  `json:"details"`
	Timestamp string  `json:"timestamp"`
}

// Profile is the store identity singleton. ProfileImage is a data URI, or
// empty when no image has been uploaded.
type Profile struct {
	CompanyName  string `json:"companyName"`
	ProfileImage string `json:"profileImage"`
}

// Settings is the global configuration singleton.
type Settings struct {
	Currency          string `json:"currency"`
	LowStockThreshold int    `json:"lowStockThreshold"`
}

// Theme is a persisted UI preference.
type Theme string

const (
	ThemeLight Theme = "light"
	ThemeDark  Theme = "dark"
)

// View identifies the active screen. Transient: restored to ViewDashboard
// on load, never authoritative persisted state.
type View string

const (
	ViewDashboard  View = "dashboard"
	ViewProducts   View = "products"
	ViewCategories View = "categories"
	ViewStock      View = "stock"
	ViewActivity   View = "activity"
	ViewSettings   View = "settings"
)

// Views lists every supported view.
var Views = []View{ViewDashboard, ViewProducts, ViewCategories, ViewStock, ViewActivity, ViewSettings}

// State is a complete snapshot of the store.
//
// Products, Categories, Logs, Profile, Settings, Password, Theme and
// SidebarCollapsed are persistence-scoped. LoggedIn is session-scoped and
// never written to durable storage. View and Selected are transient UI
// state layered over the persisted data.
type State struct {
	Products         []Product
	Categories       []string
	Logs             []LogEntry
	Profile          Profile
	Settings         Settings
	Password         string // empty = first-run setup pending
	LoggedIn         bool
	Theme            Theme
	SidebarCollapsed bool
	View             View
	Selected         []string
}

// DefaultState returns the state of a brand-new store, matching the seed
// data a fresh installation starts with.
func DefaultState() State {
	return State{
		Products:   []Product{},
		Categories: []string{"Stationery", "Electronics", "Home"},
		Logs:       []LogEntry{},
		Profile: Profile{
			CompanyName: "Primal Pro",
		},
		Settings: Settings{
			Currency:          "₹",
			LowStockThreshold: 10,
		},
		Theme: ThemeLight,
		View:  ViewDashboard,
	}
}

// Clone returns a deep copy of the state. Mutating the copy never affects
// the original; projectors and command handlers work on clones.
func (s State) Clone() State {
	out := s
	out.Products = append([]Product(nil), s.Products...)
	out.Categories = append([]string(nil), s.Categories...)
	out.Logs = append([]LogEntry(nil), s.Logs...)
	out.Selected = append([]string(nil), s.Selected...)
	return out
}

// HasCategory reports whether name is present in the category set
// (case-sensitive exact match).
func (s State) HasCategory(name string) bool {
	for _, c := range s.Categories {
		if c == name {
			return true
		}
	}
	return false
}

// FindProduct returns the index of the product with the given id, or -1.
func (s State) FindProduct(id string) int {
	for i, p := range s.Products {
		if p.ID == id {
			return i
		}
	}
	return -1
}
