package cache

import (
	"os"
	"path/filepath"
	"testing"
)

func TestOpenMissingFile(t *testing.T) {
	s, err := Open(filepath.Join(t.TempDir(), "hints.json"))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	if _, ok := s.GetInt(HintKey); ok {
		t.Fatal("empty store should have no hint")
	}
}

func TestSaveAndReload(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sub", "hints.json")
	s, err := Open(path)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	s.SetInt(HintKey, 4)
	if err := s.Save(); err != nil {
		t.Fatalf("Save: %v", err)
	}

	reloaded, err := Open(path)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	v, ok := reloaded.GetInt(HintKey)
	if !ok || v != 4 {
		t.Fatalf("GetInt = %d,%v, want 4,true", v, ok)
	}
}

func TestDelete(t *testing.T) {
	path := filepath.Join(t.TempDir(), "hints.json")
	s, err := Open(path)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	s.SetInt(HintKey, 2)
	s.Delete(HintKey)
	if err := s.Save(); err != nil {
		t.Fatalf("Save: %v", err)
	}
	reloaded, err := Open(path)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	if _, ok := reloaded.GetInt(HintKey); ok {
		t.Fatal("deleted key survived save")
	}
}

func TestCorruptFileDiscarded(t *testing.T) {
	path := filepath.Join(t.TempDir(), "hints.json")
	if err := os.WriteFile(path, []byte("{not json"), 0o644); err != nil {
		t.Fatal(err)
	}
	s, err := Open(path)
	if err != nil {
		t.Fatalf("Open should tolerate corrupt file, got %v", err)
	}
	if _, ok := s.GetInt(HintKey); ok {
		t.Fatal("corrupt store should be empty")
	}
}
