package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddCategory_PreservesInsertionOrder(t *testing.T) {
	s := newTestStore(t)

	require.NoError(t, s.AddCategory("Office"))
	require.NoError(t, s.AddCategory("Garden"))

	cats := s.Snapshot().Categories
	assert.Equal(t, []string{"Stationery", "Electronics", "Home", "Office", "Garden"}, cats)
}

func TestAddCategory_Duplicate(t *testing.T) {
	s := newTestStore(t)

	err := s.AddCategory("Home")
	assert.True(t, IsDuplicate(err))

	// Exact-match semantics: differing case is a different category.
	assert.NoError(t, s.AddCategory("home"))
}

func TestAddCategory_EmptyName(t *testing.T) {
	s := newTestStore(t)
	assert.True(t, IsValidation(s.AddCategory("  ")))
}

func TestRemoveCategory_RefusedWhileReferenced(t *testing.T) {
	s := newTestStore(t)
	_, err := s.AddProduct(validInput()) // references Stationery
	require.NoError(t, err)

	err = s.RemoveCategory("Stationery")
	assert.True(t, IsConflict(err))
	assert.Contains(t, s.Snapshot().Categories, "Stationery", "refused deletion must not remove")
}

func TestRemoveCategory_Succeeds(t *testing.T) {
	s := newTestStore(t)
	before := len(s.Snapshot().Categories)

	require.NoError(t, s.RemoveCategory("Home"))

	cats := s.Snapshot().Categories
	assert.Len(t, cats, before-1)
	assert.NotContains(t, cats, "Home")
}

func TestRemoveCategory_UnblockedAfterProductRemoval(t *testing.T) {
	s := newTestStore(t)
	p, err := s.AddProduct(validInput())
	require.NoError(t, err)

	require.True(t, IsConflict(s.RemoveCategory("Stationery")))
	_, err = s.RemoveProduct(p.ID)
	require.NoError(t, err)
	assert.NoError(t, s.RemoveCategory("Stationery"))
}

func TestRemoveCategory_NotFound(t *testing.T) {
	s := newTestStore(t)
	assert.True(t, IsNotFound(s.RemoveCategory("Groceries")))
}
