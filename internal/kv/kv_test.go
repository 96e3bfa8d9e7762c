package kv

import (
	"context"
	"os"
	"path/filepath"
	"testing"
)

func TestOpen_CreatesNewDatabase(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.db")

	s, err := Open(path)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer s.Close()

	// Verify file was created
	if _, err := os.Stat(path); os.IsNotExist(err) {
		t.Error("database file was not created")
	}
}

func TestOpen_Idempotent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.db")

	for i := 0; i < 3; i++ {
		s, err := Open(path)
		if err != nil {
			t.Fatalf("Open() iteration %d failed: %v", i, err)
		}
		s.Close()
	}
}

func TestOpen_AppliesPragmas(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.db")

	s, err := Open(path)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer s.Close()

	if err := s.verifyPragma("journal_mode", "wal"); err != nil {
		t.Error(err)
	}
	if err := s.verifyPragma("busy_timeout", "5000"); err != nil {
		t.Error(err)
	}
}

func TestPutGet_Roundtrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.db")
	s, err := Open(path)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer s.Close()

	ctx := context.Background()
	type doc struct {
		Name  string `json:"name"`
		Count int    `json:"count"`
	}

	if err := s.Put(ctx, "sample", doc{Name: "pens", Count: 3}); err != nil {
		t.Fatalf("Put() failed: %v", err)
	}

	var got doc
	found, err := s.Get(ctx, "sample", &got)
	if err != nil {
		t.Fatalf("Get() failed: %v", err)
	}
	if !found {
		t.Fatal("Get() reported key absent after Put()")
	}
	if got.Name != "pens" || got.Count != 3 {
		t.Errorf("Get() = %+v, want {pens 3}", got)
	}
}

func TestGet_AbsentKey(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.db")
	s, err := Open(path)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer s.Close()

	var out string
	found, err := s.Get(context.Background(), "missing", &out)
	if err != nil {
		t.Fatalf("Get() failed: %v", err)
	}
	if found {
		t.Error("Get() reported a missing key as present")
	}
}

func TestPut_ReplacesExistingValue(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.db")
	s, err := Open(path)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer s.Close()

	ctx := context.Background()
	if err := s.Put(ctx, "theme", "light"); err != nil {
		t.Fatalf("first Put() failed: %v", err)
	}
	if err := s.Put(ctx, "theme", "dark"); err != nil {
		t.Fatalf("second Put() failed: %v", err)
	}

	var got string
	if _, err := s.Get(ctx, "theme", &got); err != nil {
		t.Fatalf("Get() failed: %v", err)
	}
	if got != "dark" {
		t.Errorf("Get() = %q, want %q", got, "dark")
	}
}

func TestDelete_AndKeys(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.db")
	s, err := Open(path)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer s.Close()

	ctx := context.Background()
	for _, k := range []string{"b", "a", "c"} {
		if err := s.Put(ctx, k, k); err != nil {
			t.Fatalf("Put(%q) failed: %v", k, err)
		}
	}
	if err := s.Delete(ctx, "b"); err != nil {
		t.Fatalf("Delete() failed: %v", err)
	}
	// Deleting an absent key is not an error
	if err := s.Delete(ctx, "b"); err != nil {
		t.Fatalf("second Delete() failed: %v", err)
	}

	keys, err := s.Keys(ctx)
	if err != nil {
		t.Fatalf("Keys() failed: %v", err)
	}
	if len(keys) != 2 || keys[0] != "a" || keys[1] != "c" {
		t.Errorf("Keys() = %v, want [a c]", keys)
	}
}

func TestValues_SurviveReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.db")
	ctx := context.Background()

	s1, err := Open(path)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	if err := s1.Put(ctx, "password", "secret"); err != nil {
		t.Fatalf("Put() failed: %v", err)
	}
	s1.Close()

	s2, err := Open(path)
	if err != nil {
		t.Fatalf("reopen failed: %v", err)
	}
	defer s2.Close()

	var got string
	found, err := s2.Get(ctx, "password", &got)
	if err != nil {
		t.Fatalf("Get() failed: %v", err)
	}
	if !found || got != "secret" {
		t.Errorf("Get() = (%q, %v), want (secret, true)", got, found)
	}
}
