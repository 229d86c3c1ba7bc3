package eventlog

import (
	"context"
	"errors"
	"testing"
	"time"

	"story-gate/internal/platform/logger"
)

type fakeRepo struct {
	recs      []Record
	appendErr error
	findErr   error
}

func (f *fakeRepo) Append(_ context.Context, rec Record) error {
	if f.appendErr != nil {
		return f.appendErr
	}
	f.recs = append(f.recs, rec)
	return nil
}

func (f *fakeRepo) FindLatest(_ context.Context, kind Kind) (string, error) {
	if f.findErr != nil {
		return "", f.findErr
	}
	for i := len(f.recs) - 1; i >= 0; i-- {
		if f.recs[i].Kind == kind && f.recs[i].StoryURL != "" {
			return f.recs[i].StoryURL, nil
		}
	}
	return "", nil
}

type fakeNotifier struct {
	recs []Record
	err  error
}

func (f *fakeNotifier) Notify(_ context.Context, rec Record) error {
	if f.err != nil {
		return f.err
	}
	f.recs = append(f.recs, rec)
	return nil
}

func TestRecord_FillsDefaults(t *testing.T) {
	repo := &fakeRepo{}
	svc := NewService(repo, nil, logger.Nop())
	fixed := time.Date(2026, 8, 23, 12, 0, 0, 999_000_000, time.UTC)
	svc.now = func() time.Time { return fixed }

	svc.Record(context.Background(), Record{Kind: KindChatMessage, ChatText: "hola"})

	if len(repo.recs) != 1 {
		t.Fatalf("expected 1 record, got %d", len(repo.recs))
	}
	rec := repo.recs[0]
	if rec.ID == "" {
		t.Error("expected assigned record ID")
	}
	if rec.SourceIP != "unknown" {
		t.Errorf("expected unknown source ip, got %q", rec.SourceIP)
	}
	// precisión de segundos
	if !rec.Timestamp.Equal(fixed.Truncate(time.Second)) {
		t.Errorf("expected truncated timestamp, got %v", rec.Timestamp)
	}
}

func TestRecord_AppendFailureIsSwallowed(t *testing.T) {
	repo := &fakeRepo{appendErr: errors.New("disk full")}
	notifier := &fakeNotifier{}
	svc := NewService(repo, notifier, logger.Nop())

	// no debe entrar en pánico ni devolver nada: el caller siempre completa
	svc.Record(context.Background(), Record{Kind: KindChatMessage})

	// el espejo se intenta igual, tras el append fallido
	if len(notifier.recs) != 1 {
		t.Errorf("expected mirror attempt after failed append, got %d", len(notifier.recs))
	}
}

func TestRecord_NotifierFailureDoesNotAffectPrimary(t *testing.T) {
	repo := &fakeRepo{}
	notifier := &fakeNotifier{err: errors.New("webhook timeout")}
	svc := NewService(repo, notifier, logger.Nop())

	svc.Record(context.Background(), Record{Kind: KindChatMessage, ChatText: "hola"})

	if len(repo.recs) != 1 {
		t.Fatalf("expected durable append despite notifier failure, got %d", len(repo.recs))
	}
}

func TestLatestStoryURL_DegradesToEmptyOnReadError(t *testing.T) {
	repo := &fakeRepo{findErr: errors.New("log unreadable")}
	svc := NewService(repo, nil, logger.Nop())

	if got := svc.LatestStoryURL(context.Background(), KindAdminStoryUpload); got != "" {
		t.Errorf("expected empty url on read error, got %q", got)
	}
}

func TestLatestStoryURL_ReturnsMostRecent(t *testing.T) {
	repo := &fakeRepo{}
	svc := NewService(repo, nil, logger.Nop())
	ctx := context.Background()

	svc.Record(ctx, Record{Kind: KindAdminStoryUpload, StoryURL: "A"})
	svc.Record(ctx, Record{Kind: KindUserStoryUpload, StoryURL: "B"})
	svc.Record(ctx, Record{Kind: KindAdminStoryUpload, StoryURL: "C"})

	if got := svc.LatestStoryURL(ctx, KindAdminStoryUpload); got != "C" {
		t.Errorf("expected C, got %q", got)
	}
}
