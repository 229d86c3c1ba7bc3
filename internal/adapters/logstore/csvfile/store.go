package csvfile

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/gofrs/flock"

	"story-gate/internal/domain/eventlog"
)

// timestampLayout es el formato de la columna timestamp (segundos).
const timestampLayout = "2006-01-02 15:04:05"

// header fijo del CSV. El orden de columnas nunca cambia.
var header = []string{"timestamp", "ip", "event", "password", "chat", "story_url"}

// Store persiste el log de eventos en un archivo CSV append-only.
//
// Concurrencia: cada Append es una única escritura de un registro al final
// del archivo, bajo un mutex (escritores del mismo proceso) y un flock
// (escritores de otros procesos). Así los appends concurrentes solo se
// intercalan a granularidad de registro, nunca a media línea.
type Store struct {
	path string

	mu   sync.Mutex
	lock *flock.Flock
}

// New crea el Store y deja el archivo listo con su header si no existe.
func New(path string) (*Store, error) {
	if dir := filepath.Dir(path); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create log dir: %w", err)
		}
	}

	s := &Store{
		path: path,
		lock: flock.New(path + ".lock"),
	}

	if err := s.ensureHeader(); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *Store) ensureHeader() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.lock.Lock(); err != nil {
		return fmt.Errorf("acquire log lock: %w", err)
	}
	defer s.lock.Unlock()

	info, err := os.Stat(s.path)
	if err == nil && info.Size() > 0 {
		return nil
	}
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("stat log file: %w", err)
	}

	f, err := os.OpenFile(s.path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return fmt.Errorf("create log file: %w", err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(header); err != nil {
		return fmt.Errorf("write log header: %w", err)
	}
	w.Flush()
	return w.Error()
}

// Append escribe un registro en el orden fijo de columnas, con strings
// vacíos para los campos opcionales ausentes.
func (s *Store) Append(ctx context.Context, rec eventlog.Record) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.lock.Lock(); err != nil {
		return fmt.Errorf("acquire log lock: %w", err)
	}
	defer s.lock.Unlock()

	f, err := os.OpenFile(s.path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return fmt.Errorf("open log file: %w", err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	row := []string{
		rec.Timestamp.Format(timestampLayout),
		rec.SourceIP,
		string(rec.Kind),
		rec.Credential,
		rec.ChatText,
		rec.StoryURL,
	}
	if err := w.Write(row); err != nil {
		return fmt.Errorf("write log record: %w", err)
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("flush log record: %w", err)
	}
	return nil
}

// FindLatest relee el archivo completo y escanea del final hacia atrás.
// O(n) por consulta: aceptable a la escala esperada, y deja al log como
// única fuente de verdad (los appends posteriores siempre ganan).
func (s *Store) FindLatest(ctx context.Context, kind eventlog.Kind) (string, error) {
	f, err := os.Open(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return "", nil
		}
		return "", fmt.Errorf("open log file: %w", err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1 // tolera filas viejas con otro ancho

	rows, err := r.ReadAll()
	if err != nil {
		return "", fmt.Errorf("read log file: %w", err)
	}

	// rows[0] es el header; se escanea del más reciente al más viejo.
	for i := len(rows) - 1; i >= 1; i-- {
		row := rows[i]
		if len(row) < 6 {
			continue
		}
		if row[2] == string(kind) && row[5] != "" {
			return row[5], nil
		}
	}
	return "", nil
}
