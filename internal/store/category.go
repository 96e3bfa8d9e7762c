package store

import "strings"

// AddCategory appends a new category name, preserving insertion order.
// Matching is case-sensitive exact: "Home" and "home" are distinct.
// Fails with a duplicate error when the name is already present.
func (s *Store) AddCategory(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return NewValidationError("name", "category name is required")
	}
	if s.state.HasCategory(name) {
		return NewDuplicateError(name)
	}
	s.state.Categories = append(s.state.Categories, name)
	return nil
}

// RemoveCategory deletes a category by name.
//
// Deletion is refused with a conflict error while any product references
// the name. This is deliberate: category deletion must never silently
// orphan or mass-edit products.
func (s *Store) RemoveCategory(name string) error {
	if !s.state.HasCategory(name) {
		return NewNotFoundError("category", name)
	}
	count := 0
	for _, p := range s.state.Products {
		if p.Category == name {
			count++
		}
	}
	if count > 0 {
		return NewConflictError(name, count)
	}
	out := s.state.Categories[:0]
	for _, c := range s.state.Categories {
		if c != name {
			out = append(out, c)
		}
	}
	s.state.Categories = out
	return nil
}
