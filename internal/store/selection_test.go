package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func addProducts(t *testing.T, s *Store, n int) []string {
	t.Helper()
	ids := make([]string, 0, n)
	for i := 0; i < n; i++ {
		p, err := s.AddProduct(validInput())
		require.NoError(t, err)
		ids = append(ids, p.ID)
	}
	return ids
}

func TestSelect_AndDeselect(t *testing.T) {
	s := newTestStore(t)
	ids := addProducts(t, s, 2)

	require.NoError(t, s.Select(ids[0]))
	require.NoError(t, s.Select(ids[0])) // idempotent
	require.NoError(t, s.Select(ids[1]))
	assert.Equal(t, ids, s.Selected())

	s.Deselect(ids[0])
	assert.Equal(t, []string{ids[1]}, s.Selected())

	s.Deselect("unknown") // no-op
	assert.Equal(t, []string{ids[1]}, s.Selected())
}

func TestSelect_UnknownID(t *testing.T) {
	s := newTestStore(t)
	assert.True(t, IsNotFound(s.Select("ghost")))
}

func TestSelectAll_ReplacesWholesale(t *testing.T) {
	s := newTestStore(t)
	ids := addProducts(t, s, 3)

	require.NoError(t, s.Select(ids[2]))
	require.NoError(t, s.SelectAll(ids[:2]))
	assert.Equal(t, ids[:2], s.Selected())

	// Idempotent
	require.NoError(t, s.SelectAll(ids[:2]))
	assert.Equal(t, ids[:2], s.Selected())
}

func TestSelectAll_UnknownIDKeepsPrevious(t *testing.T) {
	s := newTestStore(t)
	ids := addProducts(t, s, 2)
	require.NoError(t, s.Select(ids[0]))

	err := s.SelectAll([]string{ids[1], "ghost"})
	assert.True(t, IsNotFound(err))
	assert.Equal(t, []string{ids[0]}, s.Selected(), "failed SelectAll must not alter the set")
}

func TestClearSelection(t *testing.T) {
	s := newTestStore(t)
	ids := addProducts(t, s, 2)
	require.NoError(t, s.SelectAll(ids))

	s.ClearSelection()
	assert.Empty(t, s.Selected())
}

func TestSelection_SubsetInvariantUnderRemoval(t *testing.T) {
	s := newTestStore(t)
	ids := addProducts(t, s, 3)
	require.NoError(t, s.SelectAll(ids))

	_, err := s.RemoveProduct(ids[1])
	require.NoError(t, err)

	assert.Equal(t, []string{ids[0], ids[2]}, s.Selected())
	for _, sel := range s.Selected() {
		assert.GreaterOrEqual(t, s.Snapshot().FindProduct(sel), 0, "selection must stay a subset of product ids")
	}
}
