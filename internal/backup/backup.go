// Package backup serializes the whole store to a portable JSON document
// and restores it.
//
// Trust boundary: the export document includes the master password in
// plaintext, consistent with the rest of the system storing it unhashed.
// An exported backup must therefore be treated as a secret itself.
package backup

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/primalhq/primal/internal/model"
	"github.com/primalhq/primal/internal/store"
)

// Document is the portable backup format: one JSON object holding every
// persistence-scoped collection and singleton. Export always writes all
// fields; import requires only products and categories.
type Document struct {
	Products   []model.Product  `json:"products"`
	Categories []string         `json:"categories"`
	Logs       []model.LogEntry `json:"logs"`
	Profile    model.Profile    `json:"profile"`
	Settings   model.Settings   `json:"settings"`
	Password   string           `json:"password"`
}

// ExportSnapshot builds a complete, lossless document from a state
// snapshot.
func ExportSnapshot(st model.State) Document {
	return Document{
		Products:   append([]model.Product{}, st.Products...),
		Categories: append([]string{}, st.Categories...),
		Logs:       append([]model.LogEntry{}, st.Logs...),
		Profile:    st.Profile,
		Settings:   st.Settings,
		Password:   st.Password,
	}
}

// Marshal renders a document as indented JSON, the on-disk backup form.
func Marshal(doc Document) ([]byte, error) {
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal backup: %w", err)
	}
	return append(data, '\n'), nil
}

// FileName returns the suggested backup file name for the given day.
func FileName(now time.Time) string {
	return fmt.Sprintf("primal_pro_backup_%s.json", now.Format("2006-01-02"))
}

// rawDocument distinguishes absent sections from empty ones.
type rawDocument struct {
	Products   json.RawMessage `json:"products"`
	Categories json.RawMessage `json:"categories"`
	Logs       json.RawMessage `json:"logs"`
	Profile    json.RawMessage `json:"profile"`
	Settings   json.RawMessage `json:"settings"`
	Password   json.RawMessage `json:"password"`
}

func present(raw json.RawMessage) bool {
	return len(raw) > 0 && string(raw) != "null"
}

// ImportSnapshot parses a backup document and merges it over the current
// state.
//
// Products and categories are required; a document missing either fails
// with a format error and current is returned untouched. Optional
// sections (logs, profile, settings, password) fall back to the current
// in-memory values when absent - import is a partial-overwrite merge for
// optional fields and a full replace for required ones. The session flag
// is never part of the document.
func ImportSnapshot(data []byte, current model.State) (model.State, error) {
	var raw rawDocument
	if err := json.Unmarshal(data, &raw); err != nil {
		return current, store.NewFormatError(fmt.Sprintf("backup is not valid JSON: %v", err))
	}
	if !present(raw.Products) {
		return current, store.NewFormatError("backup is missing the products section")
	}
	if !present(raw.Categories) {
		return current, store.NewFormatError("backup is missing the categories section")
	}

	next := current.Clone()

	if err := json.Unmarshal(raw.Products, &next.Products); err != nil {
		return current, store.NewFormatError(fmt.Sprintf("invalid products section: %v", err))
	}
	if err := json.Unmarshal(raw.Categories, &next.Categories); err != nil {
		return current, store.NewFormatError(fmt.Sprintf("invalid categories section: %v", err))
	}
	if present(raw.Logs) {
		if err := json.Unmarshal(raw.Logs, &next.Logs); err != nil {
			return current, store.NewFormatError(fmt.Sprintf("invalid logs section: %v", err))
		}
	}
	if present(raw.Profile) {
		if err := json.Unmarshal(raw.Profile, &next.Profile); err != nil {
			return current, store.NewFormatError(fmt.Sprintf("invalid profile section: %v", err))
		}
	}
	if present(raw.Settings) {
		if err := json.Unmarshal(raw.Settings, &next.Settings); err != nil {
			return current, store.NewFormatError(fmt.Sprintf("invalid settings section: %v", err))
		}
	}
	if present(raw.Password) {
		var pw string
		if err := json.Unmarshal(raw.Password, &pw); err != nil {
			return current, store.NewFormatError(fmt.Sprintf("invalid password section: %v", err))
		}
		if pw != "" {
			next.Password = pw
		}
	}

	return next, nil
}
