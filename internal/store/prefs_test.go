package store

import "testing"

func TestLoadBool(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		stored *string
		want   bool
		wantOK bool
	}{
		{name: "absent", stored: nil, want: false, wantOK: false},
		{name: "true", stored: strPtr("true"), want: true, wantOK: true},
		{name: "false", stored: strPtr("false"), want: false, wantOK: true},
		{name: "padded", stored: strPtr(" true\n"), want: true, wantOK: true},
		{name: "garbage", stored: strPtr("yes please"), want: false, wantOK: false},
	}

	for _, tt := range tests {
		m := NewMemory()
		if tt.stored != nil {
			_ = m.Save(KeyDarkMode, *tt.stored)
		}
		got, ok := LoadBool(m, KeyDarkMode)
		if got != tt.want || ok != tt.wantOK {
			t.Fatalf("%s: LoadBool=(%v,%v), want (%v,%v)", tt.name, got, ok, tt.want, tt.wantOK)
		}
	}
}

func TestLoadBool_NilPreferences(t *testing.T) {
	t.Parallel()

	if v, ok := LoadBool(nil, KeyDarkMode); v || ok {
		t.Fatalf("expected (false,false), got (%v,%v)", v, ok)
	}
}

func TestMemory_SaveLoadClear(t *testing.T) {
	t.Parallel()

	m := NewMemory()
	if _, ok := m.Load(KeyDocument); ok {
		t.Fatalf("expected empty store")
	}
	if err := m.Save(KeyDocument, "# hi"); err != nil {
		t.Fatalf("save: %v", err)
	}
	if err := m.Save(KeyDarkMode, FormatBool(true)); err != nil {
		t.Fatalf("save: %v", err)
	}
	if v, ok := m.Load(KeyDocument); !ok || v != "# hi" {
		t.Fatalf("load document: got (%q,%v)", v, ok)
	}
	if m.Writes() != 2 {
		t.Fatalf("expected 2 writes, got %d", m.Writes())
	}

	if err := m.Clear(); err != nil {
		t.Fatalf("clear: %v", err)
	}
	if _, ok := m.Load(KeyDocument); ok {
		t.Fatalf("expected document to be cleared")
	}
	if _, ok := m.Load(KeyDarkMode); ok {
		t.Fatalf("expected dark mode to be cleared")
	}
}

func TestMemory_ZeroValueSave(t *testing.T) {
	t.Parallel()

	var m Memory
	if err := m.Save("k", "v"); err != nil {
		t.Fatalf("save: %v", err)
	}
	if v, ok := m.Load("k"); !ok || v != "v" {
		t.Fatalf("got (%q,%v)", v, ok)
	}
}

func strPtr(s string) *string { return &s }
