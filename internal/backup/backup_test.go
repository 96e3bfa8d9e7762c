package backup

import (
	"testing"
	"time"

	"github.com/sebdah/goldie/v2"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/primalhq/primal/internal/model"
	"github.com/primalhq/primal/internal/store"
)

func price(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

func fixtureState() model.State {
	st := model.DefaultState()
	st.Products = []model.Product{
		{ID: "p-1", Name: "Gel Pen", Brand: "Scribe", Category: "Stationery", Barcode: "SKU100", Stock: 5, Price: price("12.5")},
		{ID: "p-2", Name: "Notebook", Category: "Stationery", Barcode: "SKU200", Stock: 30, Price: price("49")},
	}
	st.Logs = []model.LogEntry{{
		ID:        1768473000000,
		Type:      model.LogSystem,
		Action:    "Updated Settings",
		Details:   "Global configuration changed",
		Timestamp: "1/15/2026, 10:30:00 AM",
	}}
	st.Password = "abc"
	return st
}

func TestExportImport_Idempotent(t *testing.T) {
	st := fixtureState()

	doc := ExportSnapshot(st)
	data, err := Marshal(doc)
	require.NoError(t, err)

	got, err := ImportSnapshot(data, st)
	require.NoError(t, err)

	assert.Equal(t, st.Products, got.Products)
	assert.Equal(t, st.Categories, got.Categories)
	assert.Equal(t, st.Logs, got.Logs)
	assert.Equal(t, st.Profile, got.Profile)
	assert.Equal(t, st.Settings, got.Settings)
	assert.Equal(t, st.Password, got.Password)
}

func TestExportSnapshot_CopiesCollections(t *testing.T) {
	st := fixtureState()
	doc := ExportSnapshot(st)

	doc.Products[0].Name = "Tampered"
	doc.Categories[0] = "Tampered"

	assert.Equal(t, "Gel Pen", st.Products[0].Name)
	assert.Equal(t, "Stationery", st.Categories[0])
}

func TestExportDocument_Golden(t *testing.T) {
	data, err := Marshal(ExportSnapshot(fixtureState()))
	require.NoError(t, err)

	g := goldie.New(t)
	g.Assert(t, "export_document", data)
}

func TestImportSnapshot_MissingRequiredSections(t *testing.T) {
	current := fixtureState()

	tests := []struct {
		name string
		doc  string
	}{
		{"missing products", `{"categories":["Home"]}`},
		{"missing categories", `{"products":[]}`},
		{"null products", `{"products":null,"categories":["Home"]}`},
		{"empty object", `{}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ImportSnapshot([]byte(tt.doc), current)
			assert.True(t, store.IsFormat(err), "want format error, got %v", err)
			assert.Equal(t, current, got, "failed import must return current state untouched")
		})
	}
}

func TestImportSnapshot_NotJSON(t *testing.T) {
	_, err := ImportSnapshot([]byte("not json"), fixtureState())
	assert.True(t, store.IsFormat(err))
}

func TestImportSnapshot_OptionalSectionsKeepCurrent(t *testing.T) {
	current := fixtureState()

	got, err := ImportSnapshot([]byte(`{"products":[],"categories":["Office"]}`), current)
	require.NoError(t, err)

	// Required sections replace wholesale.
	assert.Empty(t, got.Products)
	assert.Equal(t, []string{"Office"}, got.Categories)

	// Optional sections merge over the current values.
	assert.Equal(t, current.Logs, got.Logs)
	assert.Equal(t, current.Profile, got.Profile)
	assert.Equal(t, current.Settings, got.Settings)
	assert.Equal(t, "abc", got.Password)
}

func TestImportSnapshot_OptionalSectionsReplaceWhenPresent(t *testing.T) {
	current := fixtureState()
	doc := `{
		"products": [],
		"categories": ["Office"],
		"logs": [],
		"profile": {"companyName": "Acme", "profileImage": ""},
		"settings": {"currency": "$", "lowStockThreshold": 3},
		"password": "next"
	}`

	got, err := ImportSnapshot([]byte(doc), current)
	require.NoError(t, err)

	assert.Empty(t, got.Logs)
	assert.Equal(t, "Acme", got.Profile.CompanyName)
	assert.Equal(t, "$", got.Settings.Currency)
	assert.Equal(t, 3, got.Settings.LowStockThreshold)
	assert.Equal(t, "next", got.Password)
}

func TestImportSnapshot_LooseNumerics(t *testing.T) {
	// Historical backups store stock and price as strings.
	doc := `{
		"products": [
			{"id": "1", "name": "Pen", "category": "Stationery", "barcode": "S1", "stock": "7", "price": "12.50"},
			{"id": "2", "name": "Mug", "category": "Home", "barcode": "S2", "stock": "oops", "price": null}
		],
		"categories": ["Stationery", "Home"]
	}`

	got, err := ImportSnapshot([]byte(doc), model.DefaultState())
	require.NoError(t, err)

	require.Len(t, got.Products, 2)
	assert.Equal(t, 7, got.Products[0].Stock)
	assert.Equal(t, "12.50", got.Products[0].Price.StringFixed(2))
	assert.Equal(t, 0, got.Products[1].Stock, "unparsable stock coerces to 0")
	assert.True(t, got.Products[1].Price.IsZero(), "absent price coerces to 0")
}

func TestFileName(t *testing.T) {
	now := time.Date(2026, 8, 28, 12, 0, 0, 0, time.UTC)
	assert.Equal(t, "primal_pro_backup_2026-08-28.json", FileName(now))
}
