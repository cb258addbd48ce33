package storage

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDirSaveAvoidsOverwrite(t *testing.T) {
	dir := t.TempDir()
	store, err := NewDir(dir)
	if err != nil {
		t.Fatalf("NewDir: %v", err)
	}

	first, err := store.Save("inkwash-harbor.png", []byte("one"))
	if err != nil {
		t.Fatalf("first save: %v", err)
	}
	second, err := store.Save("inkwash-harbor.png", []byte("two"))
	if err != nil {
		t.Fatalf("second save: %v", err)
	}

	if first != filepath.Join(dir, "inkwash-harbor.png") {
		t.Fatalf("first path = %q", first)
	}
	if second != filepath.Join(dir, "inkwash-harbor-2.png") {
		t.Fatalf("second path = %q", second)
	}

	data, err := os.ReadFile(first)
	if err != nil || string(data) != "one" {
		t.Fatalf("first file data = %q, err = %v", data, err)
	}
}

func TestDirSaveStripsPathElements(t *testing.T) {
	dir := t.TempDir()
	store, err := NewDir(dir)
	if err != nil {
		t.Fatalf("NewDir: %v", err)
	}

	path, err := store.Save("../outside/evil.png", []byte("x"))
	if err != nil {
		t.Fatalf("save: %v", err)
	}
	if path != filepath.Join(dir, "evil.png") {
		t.Fatalf("path = %q, want within %q", path, dir)
	}
}

func TestDirSaveRejectsEmptyName(t *testing.T) {
	store, err := NewDir(t.TempDir())
	if err != nil {
		t.Fatalf("NewDir: %v", err)
	}
	if _, err := store.Save("   ", []byte("x")); err == nil {
		t.Fatal("expected an error for empty name")
	}
}
