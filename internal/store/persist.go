package store

import (
	"context"
	"fmt"

	"github.com/primalhq/primal/internal/kv"
	"github.com/primalhq/primal/internal/model"
)

// Storage keys, one logical state section per key. The session flag has
// no key on purpose: it is session-scoped and must not survive a restart.
const (
	KeyProducts   = "products"
	KeyCategories = "categories"
	KeyLogs       = "logs"
	KeyProfile    = "profile"
	KeySettings   = "settings"
	KeyPassword   = "password"
	KeyTheme      = "theme"
	KeySidebar    = "sidebar-collapsed"
)

// Load assembles a store from durable storage. Absent keys fall back to
// the corresponding section of the default first-run state, so a fresh
// database yields a fully usable store.
func Load(ctx context.Context, db *kv.Store, clock Clock) (*Store, error) {
	st := model.DefaultState()

	sections := []struct {
		key string
		out any
	}{
		{KeyProducts, &st.Products},
		{KeyCategories, &st.Categories},
		{KeyLogs, &st.Logs},
		{KeyProfile, &st.Profile},
		{KeySettings, &st.Settings},
		{KeyPassword, &st.Password},
		{KeyTheme, &st.Theme},
		{KeySidebar, &st.SidebarCollapsed},
	}
	for _, sec := range sections {
		if _, err := db.Get(ctx, sec.key, sec.out); err != nil {
			return nil, fmt.Errorf("load state: %w", err)
		}
	}

	return FromState(st, clock), nil
}

// Persist flushes every persistence-scoped section to durable storage.
//
// The whole state is written on every flush, mirroring the single-writer
// save-everything model. The password key is only written once a password
// exists, so a first-run database carries no credential row. A failed
// write surfaces as a persistence error naming the key; the in-memory
// state keeps the mutation.
func (s *Store) Persist(ctx context.Context, db *kv.Store) error {
	sections := []struct {
		key   string
		value any
	}{
		{KeyProducts, s.state.Products},
		{KeyCategories, s.state.Categories},
		{KeyLogs, s.state.Logs},
		{KeyProfile, s.state.Profile},
		{KeySettings, s.state.Settings},
		{KeyTheme, s.state.Theme},
		{KeySidebar, s.state.SidebarCollapsed},
	}
	for _, sec := range sections {
		if err := db.Put(ctx, sec.key, sec.value); err != nil {
			return NewPersistenceError(sec.key, err)
		}
	}
	if s.state.Password != "" {
		if err := db.Put(ctx, KeyPassword, s.state.Password); err != nil {
			return NewPersistenceError(KeyPassword, err)
		}
	}
	return nil
}
