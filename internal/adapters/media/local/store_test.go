package local

import (
	"context"
	"os"
	"path/filepath"
	"testing"
)

func TestSave_WritesAndOverwrites(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "uploads")
	s, err := New(dir)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	ctx := context.Background()

	if err := s.Save(ctx, "video.mp4", []byte("v1")); err != nil {
		t.Fatalf("Save: %v", err)
	}
	// mismo nombre => se sobreescribe, no hay versiones
	if err := s.Save(ctx, "video.mp4", []byte("v2")); err != nil {
		t.Fatalf("Save overwrite: %v", err)
	}

	raw, err := os.ReadFile(filepath.Join(dir, "video.mp4"))
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if string(raw) != "v2" {
		t.Errorf("expected overwritten content, got %q", raw)
	}
}

func TestSave_RejectsEmptyName(t *testing.T) {
	s, err := New(t.TempDir())
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if err := s.Save(context.Background(), "", []byte("x")); err == nil {
		t.Fatal("expected error for empty name")
	}
}
