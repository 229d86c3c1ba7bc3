package local

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
)

// Store escribe assets en el directorio local de uploads.
// Crea/sobreescribe el archivo bajo su nombre saneado; el ciclo de vida
// termina ahí: nada se modifica ni se borra después.
type Store struct {
	dir string
}

func New(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create upload dir: %w", err)
	}
	return &Store{dir: dir}, nil
}

func (s *Store) Save(ctx context.Context, name string, data []byte) error {
	if name == "" {
		return fmt.Errorf("empty sanitized filename")
	}
	if err := os.WriteFile(filepath.Join(s.dir, name), data, 0o644); err != nil {
		return fmt.Errorf("write local copy: %w", err)
	}
	return nil
}

// Dir es el directorio servido por la ruta /uploads.
func (s *Store) Dir() string { return s.dir }
