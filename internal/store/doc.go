// Package store owns the canonical in-memory model of a Primal inventory
// and enforces its invariants on every mutation.
//
// The store implements a single-writer state engine with:
//   - Products: the catalog, referencing categories by name
//   - Categories: an ordered, insertion-ordered name set
//   - Activity log: bounded append-only audit trail (100 entries)
//   - Selection: transient product-id set for bulk operations
//   - Profile / Settings / Auth singletons
//
// # Critical Patterns
//
// CP-1: Referential Integrity Without Cascade
//   - Products must reference an existing category at write time
//   - Category deletion is refused while referenced, never cascaded
//
// CP-2: Typed Numeric Boundary
//   - Stock and price arrive as raw strings and are parsed and validated
//     here; garbage is rejected, never coerced at read time
//
// CP-3: Selection Subset Invariant
//   - The selection set is always a subset of current product ids;
//     product removal implies deselection
//
// CP-4: Session vs Persistence Scope
//   - The password survives restarts; the logged-in flag never does
//
// All mutations are synchronous and atomic with respect to the in-memory
// model: validation happens before any collection is altered, so a failed
// operation leaves the previous state intact. The store is explicitly
// constructed and passed by handle; there is no package-level instance.
//
// Durable persistence lives in internal/kv; the mapping between state
// sections and storage keys is in persist.go.
package store
