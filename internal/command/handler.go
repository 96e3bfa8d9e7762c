// Package command hosts the mutation entry points of the application.
//
// Every command follows the same shape: validate and mutate the in-memory
// store, append an activity log entry, then flush the whole state to
// durable storage. A failed flush is reported as a distinct persistence
// error so callers can tell "mutated and saved" from "mutated but
// unsaved"; the in-memory mutation is kept either way.
//
// Commands are the only code permitted to mutate the store. Projections
// (internal/view) read snapshots and never write.
package command

import (
	"context"
	"log/slog"

	"github.com/primalhq/primal/internal/backup"
	"github.com/primalhq/primal/internal/kv"
	"github.com/primalhq/primal/internal/label"
	"github.com/primalhq/primal/internal/model"
	"github.com/primalhq/primal/internal/store"
)

// Handler wires the store to its persistence adapter. One handler per
// session; a session is one process.
type Handler struct {
	store *store.Store
	db    *kv.Store
	log   *slog.Logger
}

// New creates a handler around an already-loaded store.
func New(st *store.Store, db *kv.Store, logger *slog.Logger) *Handler {
	if logger == nil {
		logger = slog.Default()
	}
	return &Handler{store: st, db: db, log: logger}
}

// Store exposes the underlying store for read-side snapshots.
func (h *Handler) Store() *store.Store { return h.store }

// requireAuth gates mutations behind a logged-in session.
func (h *Handler) requireAuth() error {
	if !h.store.LoggedIn() {
		return store.NewAuthError()
	}
	return nil
}

// flush persists the whole state, logging and wrapping failures.
func (h *Handler) flush(ctx context.Context) error {
	if err := h.store.Persist(ctx, h.db); err != nil {
		h.log.Error("state flush failed", "err", err)
		return err
	}
	return nil
}

// Login authenticates the session. On first run the candidate becomes
// the master password, which is flushed immediately.
func (h *Handler) Login(ctx context.Context, candidate string) error {
	firstRun := h.store.FirstRun()
	if err := h.store.Login(candidate); err != nil {
		return err
	}
	if firstRun {
		h.store.RecordLog(model.LogSystem, "Updated Security", "Master password set")
		return h.flush(ctx)
	}
	return nil
}

// Logout clears the session flag. Nothing durable changes.
func (h *Handler) Logout() {
	h.store.Logout()
}

// AddProduct creates a product and logs the addition.
func (h *Handler) AddProduct(ctx context.Context, in store.ProductInput) (model.Product, error) {
	if err := h.requireAuth(); err != nil {
		return model.Product{}, err
	}
	p, err := h.store.AddProduct(in)
	if err != nil {
		return model.Product{}, err
	}
	h.store.RecordLog(model.LogProduct, "Added Product", p.Name)
	h.log.Info("product added", "id", p.ID, "name", p.Name)
	return p, h.flush(ctx)
}

// UpdateProduct replaces a product in place and logs the update.
func (h *Handler) UpdateProduct(ctx context.Context, id string, in store.ProductInput) (model.Product, error) {
	if err := h.requireAuth(); err != nil {
		return model.Product{}, err
	}
	p, err := h.store.UpdateProduct(id, in)
	if err != nil {
		return model.Product{}, err
	}
	h.store.RecordLog(model.LogProduct, "Updated Product", p.Name)
	h.log.Info("product updated", "id", p.ID)
	return p, h.flush(ctx)
}

// RemoveProduct deletes a product, dropping it from the selection set.
func (h *Handler) RemoveProduct(ctx context.Context, id string) error {
	if err := h.requireAuth(); err != nil {
		return err
	}
	p, err := h.store.RemoveProduct(id)
	if err != nil {
		return err
	}
	h.store.RecordLog(model.LogProduct, "Deleted Product", p.Name)
	h.log.Info("product deleted", "id", id)
	return h.flush(ctx)
}

// AddCategory appends a category and logs the addition.
func (h *Handler) AddCategory(ctx context.Context, name string) error {
	if err := h.requireAuth(); err != nil {
		return err
	}
	if err := h.store.AddCategory(name); err != nil {
		return err
	}
	h.store.RecordLog(model.LogCategory, "Added Category", name)
	return h.flush(ctx)
}

// RemoveCategory deletes an unreferenced category.
func (h *Handler) RemoveCategory(ctx context.Context, name string) error {
	if err := h.requireAuth(); err != nil {
		return err
	}
	if err := h.store.RemoveCategory(name); err != nil {
		return err
	}
	h.store.RecordLog(model.LogCategory, "Deleted Category", name)
	return h.flush(ctx)
}

// SettingsInput carries one settings-save submission: profile fields,
// configuration, and an optional password change, applied together the
// way the settings screen saves them.
type SettingsInput struct {
	CompanyName  string
	ProfileImage string
	Currency     string
	Threshold    string
	NewPassword  string
}

// SaveSettings applies a whole settings-screen submission: profile and
// settings are replaced wholesale, and a non-empty new password rotates
// the credential.
func (h *Handler) SaveSettings(ctx context.Context, in SettingsInput) error {
	if err := h.requireAuth(); err != nil {
		return err
	}
	if err := h.store.SetSettings(in.Currency, in.Threshold); err != nil {
		return err
	}
	h.store.SetProfile(model.Profile{
		CompanyName:  in.CompanyName,
		ProfileImage: in.ProfileImage,
	})
	if in.NewPassword != "" {
		if err := h.store.SetPassword(in.NewPassword); err != nil {
			return err
		}
		h.store.RecordLog(model.LogSystem, "Updated Security", "Master password changed")
	}
	h.store.RecordLog(model.LogSystem, "Updated Settings", "Global configuration changed")
	return h.flush(ctx)
}

// SetTheme persists the theme preference. No auth gate: UI preferences
// are not inventory data.
func (h *Handler) SetTheme(ctx context.Context, t model.Theme) error {
	if err := h.store.SetTheme(t); err != nil {
		return err
	}
	return h.flush(ctx)
}

// SetSidebarCollapsed persists the sidebar preference.
func (h *Handler) SetSidebarCollapsed(ctx context.Context, collapsed bool) error {
	h.store.SetSidebarCollapsed(collapsed)
	return h.flush(ctx)
}

// Export builds a complete backup document and logs the export.
// The document includes the plaintext password; treat it as a secret.
func (h *Handler) Export(ctx context.Context) (backup.Document, error) {
	if err := h.requireAuth(); err != nil {
		return backup.Document{}, err
	}
	doc := backup.ExportSnapshot(h.store.Snapshot())
	h.store.RecordLog(model.LogSystem, "Exported Data", "Created full backup")
	if err := h.flush(ctx); err != nil {
		return doc, err
	}
	return doc, nil
}

// Import restores a backup document over the current state and flushes
// the result. Required sections replace; optional sections merge.
func (h *Handler) Import(ctx context.Context, data []byte) error {
	if err := h.requireAuth(); err != nil {
		return err
	}
	next, err := backup.ImportSnapshot(data, h.store.Snapshot())
	if err != nil {
		return err
	}
	h.store.Replace(next)
	h.store.RecordLog(model.LogSystem, "Imported Data", "Restored from backup")
	return h.flush(ctx)
}

// Select, Deselect, SelectAll and ClearSelection manage the transient
// bulk-operation selection. Nothing durable changes, so no flush.

func (h *Handler) Select(id string) error       { return h.store.Select(id) }
func (h *Handler) Deselect(id string)           { h.store.Deselect(id) }
func (h *Handler) SelectAll(ids []string) error { return h.store.SelectAll(ids) }
func (h *Handler) ClearSelection()              { h.store.ClearSelection() }

// PrintSingle composes and renders one product label.
func (h *Handler) PrintSingle(id string, r label.Renderer) (label.Sheet, error) {
	p, err := h.store.Product(id)
	if err != nil {
		return label.Sheet{}, err
	}
	sheet := label.ComposeSingle(p)
	return sheet, sheet.Render(r)
}

// PrintSelected composes a bulk sheet from the current selection, in
// selection order, and renders it. An empty selection is a validation
// error.
func (h *Handler) PrintSelected(r label.Renderer) (label.Sheet, error) {
	ids := h.store.Selected()
	if len(ids) == 0 {
		return label.Sheet{}, store.NewValidationError("selection", "no products selected")
	}
	products := make([]model.Product, 0, len(ids))
	for _, id := range ids {
		p, err := h.store.Product(id)
		if err != nil {
			return label.Sheet{}, err
		}
		products = append(products, p)
	}
	sheet := label.ComposeSheet(products)
	return sheet, sheet.Render(r)
}
