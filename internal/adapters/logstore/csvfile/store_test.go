package csvfile

import (
	"context"
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"story-gate/internal/domain/eventlog"
)

func newTestStore(t *testing.T) (*Store, string) {
	t.Helper()

	path := filepath.Join(t.TempDir(), "logs.csv")
	s, err := New(path)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return s, path
}

func TestNew_WritesHeaderOnce(t *testing.T) {
	s, path := newTestStore(t)

	// reabrir sobre el mismo archivo no debe duplicar el header
	if _, err := New(path); err != nil {
		t.Fatalf("reopen: %v", err)
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(string(raw)), "\n")
	if len(lines) != 1 {
		t.Fatalf("expected only the header, got %d lines", len(lines))
	}
	if lines[0] != "timestamp,ip,event,password,chat,story_url" {
		t.Fatalf("unexpected header: %q", lines[0])
	}

	_ = s
}

func TestAppend_FixedFieldOrder(t *testing.T) {
	s, path := newTestStore(t)
	ctx := context.Background()

	ts := time.Date(2026, 8, 23, 10, 30, 0, 0, time.UTC)
	err := s.Append(ctx, eventlog.Record{
		Timestamp:  ts,
		SourceIP:   "1.2.3.4",
		Kind:       eventlog.KindPasswordAttempt,
		Credential: "mrshaik",
	})
	if err != nil {
		t.Fatalf("Append: %v", err)
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer f.Close()

	rows, err := csv.NewReader(f).ReadAll()
	if err != nil {
		t.Fatalf("read csv: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("expected header + 1 record, got %d rows", len(rows))
	}

	want := []string{"2026-08-23 10:30:00", "1.2.3.4", "password_attempt", "mrshaik", "", ""}
	got := rows[1]
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("field %d: got %q want %q", i, got[i], want[i])
		}
	}
}

func TestFindLatest_LaterAppendsShadowEarlierOnes(t *testing.T) {
	s, _ := newTestStore(t)
	ctx := context.Background()

	appendUpload := func(kind eventlog.Kind, url string) {
		t.Helper()
		if err := s.Append(ctx, eventlog.Record{
			Timestamp: time.Now(),
			SourceIP:  "unknown",
			Kind:      kind,
			StoryURL:  url,
		}); err != nil {
			t.Fatalf("Append: %v", err)
		}
	}

	appendUpload(eventlog.KindAdminStoryUpload, "A")
	appendUpload(eventlog.KindUserStoryUpload, "B")
	appendUpload(eventlog.KindAdminStoryUpload, "C")

	got, err := s.FindLatest(ctx, eventlog.KindAdminStoryUpload)
	if err != nil {
		t.Fatalf("FindLatest: %v", err)
	}
	if got != "C" {
		t.Errorf("expected latest admin story C, got %q", got)
	}

	got, err = s.FindLatest(ctx, eventlog.KindUserStoryUpload)
	if err != nil {
		t.Fatalf("FindLatest: %v", err)
	}
	if got != "B" {
		t.Errorf("expected latest user story B, got %q", got)
	}
}

func TestFindLatest_SkipsRecordsWithoutURL(t *testing.T) {
	s, _ := newTestStore(t)
	ctx := context.Background()

	// un chat no tiene story_url y no debe contar
	if err := s.Append(ctx, eventlog.Record{
		Timestamp: time.Now(),
		SourceIP:  "unknown",
		Kind:      eventlog.KindChatMessage,
		ChatText:  "hola",
	}); err != nil {
		t.Fatalf("Append: %v", err)
	}

	got, err := s.FindLatest(ctx, eventlog.KindAdminStoryUpload)
	if err != nil {
		t.Fatalf("FindLatest: %v", err)
	}
	if got != "" {
		t.Errorf("expected empty url, got %q", got)
	}
}

func TestFindLatest_MissingFileIsEmptyNotError(t *testing.T) {
	s := &Store{path: filepath.Join(t.TempDir(), "no-existe.csv")}

	got, err := s.FindLatest(context.Background(), eventlog.KindAdminStoryUpload)
	if err != nil {
		t.Fatalf("expected nil error for missing log, got %v", err)
	}
	if got != "" {
		t.Errorf("expected empty url, got %q", got)
	}
}

func TestAppend_QuotesEmbeddedDelimiters(t *testing.T) {
	s, _ := newTestStore(t)
	ctx := context.Background()

	chat := `hola, "mundo"` + "\ncon salto"
	if err := s.Append(ctx, eventlog.Record{
		Timestamp: time.Now(),
		SourceIP:  "unknown",
		Kind:      eventlog.KindChatMessage,
		ChatText:  chat,
	}); err != nil {
		t.Fatalf("Append: %v", err)
	}

	f, err := os.Open(s.path)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer f.Close()

	rows, err := csv.NewReader(f).ReadAll()
	if err != nil {
		t.Fatalf("read csv: %v", err)
	}
	if rows[1][4] != chat {
		t.Errorf("chat round-trip: got %q want %q", rows[1][4], chat)
	}
}

func TestAppend_ConcurrentWritersInterleaveAtRecordGranularity(t *testing.T) {
	s, path := newTestStore(t)
	ctx := context.Background()

	const n = 50

	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			err := s.Append(ctx, eventlog.Record{
				Timestamp: time.Now(),
				SourceIP:  "unknown",
				Kind:      eventlog.KindChatMessage,
				ChatText:  fmt.Sprintf("mensaje-%d", i),
			})
			if err != nil {
				t.Errorf("Append %d: %v", i, err)
			}
		}(i)
	}
	wg.Wait()

	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	rows, err := r.ReadAll()
	if err != nil {
		t.Fatalf("read csv: %v", err)
	}

	// header + n registros, todos bien formados (sin líneas truncadas/mezcladas)
	if len(rows) != n+1 {
		t.Fatalf("expected %d rows, got %d", n+1, len(rows))
	}
	seen := map[string]bool{}
	for _, row := range rows[1:] {
		if len(row) != 6 {
			t.Fatalf("malformed row: %v", row)
		}
		if row[2] != string(eventlog.KindChatMessage) {
			t.Fatalf("unexpected event kind %q", row[2])
		}
		seen[row[4]] = true
	}
	if len(seen) != n {
		t.Errorf("expected %d distinct messages, got %d", n, len(seen))
	}
}
