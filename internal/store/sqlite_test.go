package store

import (
	"context"
	"path/filepath"
	"testing"
	"time"
)

func openTestSQLite(t *testing.T) *SQLite {
	t.Helper()
	s, err := OpenSQLite(context.Background(), filepath.Join(t.TempDir(), "nested", "mdpad.sqlite"))
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func TestSQLite_SaveLoad_RoundTrip(t *testing.T) {
	s := openTestSQLite(t)

	if _, ok := s.Load(KeyDocument); ok {
		t.Fatalf("expected absent key on a fresh database")
	}
	if err := s.Save(KeyDocument, "# Title\n\nbody"); err != nil {
		t.Fatalf("save: %v", err)
	}
	got, ok := s.Load(KeyDocument)
	if !ok || got != "# Title\n\nbody" {
		t.Fatalf("load: got (%q,%v)", got, ok)
	}

	// Overwrites replace the row.
	if err := s.Save(KeyDocument, "second"); err != nil {
		t.Fatalf("save: %v", err)
	}
	if got, _ := s.Load(KeyDocument); got != "second" {
		t.Fatalf("expected overwrite, got %q", got)
	}
}

func TestSQLite_PersistsAcrossReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "mdpad.sqlite")

	s, err := OpenSQLite(context.Background(), path)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	if err := s.Save(KeyDarkMode, FormatBool(true)); err != nil {
		t.Fatalf("save: %v", err)
	}
	if err := s.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}

	s2, err := OpenSQLite(context.Background(), path)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	defer s2.Close()
	if v, ok := LoadBool(s2, KeyDarkMode); !ok || !v {
		t.Fatalf("expected dark mode true after reopen, got (%v,%v)", v, ok)
	}
}

func TestSQLite_UpdatedAt(t *testing.T) {
	s := openTestSQLite(t)
	fixed := time.UnixMilli(1_700_000_000_000)
	s.now = func() time.Time { return fixed }

	if err := s.Save(KeyDocument, "x"); err != nil {
		t.Fatalf("save: %v", err)
	}
	got, ok := s.UpdatedAt(KeyDocument)
	if !ok || !got.Equal(fixed) {
		t.Fatalf("UpdatedAt=(%v,%v), want %v", got, ok, fixed)
	}
	if _, ok := s.UpdatedAt("missing"); ok {
		t.Fatalf("expected no timestamp for missing key")
	}
}

func TestSQLite_ClearRemovesBothKeys(t *testing.T) {
	s := openTestSQLite(t)
	_ = s.Save(KeyDocument, "doc")
	_ = s.Save(KeyDarkMode, "true")
	_ = s.Save("other", "kept")

	if err := s.Clear(); err != nil {
		t.Fatalf("clear: %v", err)
	}
	if _, ok := s.Load(KeyDocument); ok {
		t.Fatalf("document not cleared")
	}
	if _, ok := s.Load(KeyDarkMode); ok {
		t.Fatalf("dark mode not cleared")
	}
	if v, ok := s.Load("other"); !ok || v != "kept" {
		t.Fatalf("unrelated key should survive, got (%q,%v)", v, ok)
	}
}

func TestSQLite_ClosedBehavesLikeAbsent(t *testing.T) {
	s := openTestSQLite(t)
	_ = s.Save(KeyDocument, "doc")
	_ = s.Close()

	if _, ok := s.Load(KeyDocument); ok {
		t.Fatalf("expected closed store to report absent")
	}
	if err := s.Save(KeyDocument, "x"); err == nil {
		t.Fatalf("expected save on closed store to fail")
	}
}

func TestOpenSQLite_EmptyPath(t *testing.T) {
	if _, err := OpenSQLite(context.Background(), "  "); err == nil {
		t.Fatalf("expected error for empty path")
	}
}
