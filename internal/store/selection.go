package store

// Selection tracking for bulk operations. The selection set is always a
// subset of current product ids and never survives a reload.

// Select adds a product id to the selection set. Selecting an id twice is
// a no-op; selecting an unknown id fails with a not-found error so the
// subset invariant can never be broken.
func (s *Store) Select(id string) error {
	if s.state.FindProduct(id) < 0 {
		return NewNotFoundError("product", id)
	}
	for _, sel := range s.state.Selected {
		if sel == id {
			return nil
		}
	}
	s.state.Selected = append(s.state.Selected, id)
	return nil
}

// Deselect removes a product id from the selection set. Removing an
// unselected id is a no-op.
func (s *Store) Deselect(id string) {
	out := s.state.Selected[:0]
	for _, sel := range s.state.Selected {
		if sel != id {
			out = append(out, sel)
		}
	}
	s.state.Selected = out
}

// SelectAll replaces the selection wholesale with the given ids.
// Idempotent. Fails with a not-found error when any id is unknown,
// leaving the previous selection intact.
func (s *Store) SelectAll(ids []string) error {
	for _, id := range ids {
		if s.state.FindProduct(id) < 0 {
			return NewNotFoundError("product", id)
		}
	}
	next := make([]string, 0, len(ids))
	seen := make(map[string]bool, len(ids))
	for _, id := range ids {
		if !seen[id] {
			seen[id] = true
			next = append(next, id)
		}
	}
	s.state.Selected = next
	return nil
}

// ClearSelection empties the selection set.
func (s *Store) ClearSelection() {
	s.state.Selected = nil
}

// Selected returns a copy of the current selection in selection order.
func (s *Store) Selected() []string {
	return append([]string(nil), s.state.Selected...)
}
