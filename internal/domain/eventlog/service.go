package eventlog

import (
	"context"
	"time"

	"github.com/google/uuid"

	"story-gate/internal/platform/logger"
)

type Service struct {
	repo     Repository
	notifier Notifier // puede ser nil (sin espejo configurado)
	log      logger.Logger
	now      func() time.Time
}

func NewService(repo Repository, notifier Notifier, log logger.Logger) *Service {
	return &Service{
		repo:     repo,
		notifier: notifier,
		log:      log,
		now:      time.Now,
	}
}

// Record completa y persiste un registro, y luego lo espeja (best-effort).
// No devuelve error: un fallo al escribir el log se reporta al operador
// y se traga; la operación primaria del caller siempre completa.
func (s *Service) Record(ctx context.Context, rec Record) {
	if rec.ID == "" {
		rec.ID = uuid.NewString()
	}
	if rec.Timestamp.IsZero() {
		rec.Timestamp = s.now()
	}
	rec.Timestamp = rec.Timestamp.Truncate(time.Second)
	if rec.SourceIP == "" {
		rec.SourceIP = "unknown"
	}

	if err := s.repo.Append(ctx, rec); err != nil {
		s.log.Error("failed to append event log record", map[string]any{
			"event": string(rec.Kind),
			"error": err.Error(),
		})
	}

	// Espejo secundario: cualquier fallo (red, timeout, non-2xx)
	// se registra y se descarta.
	if s.notifier == nil {
		return
	}
	if err := s.notifier.Notify(ctx, rec); err != nil {
		s.log.Warn("failed to mirror event to webhook", map[string]any{
			"event": string(rec.Kind),
			"error": err.Error(),
		})
	}
}

// LatestStoryURL degrada a "" ante cualquier error de lectura:
// los endpoints de consulta nunca responden 5xx por un log ilegible.
func (s *Service) LatestStoryURL(ctx context.Context, kind Kind) string {
	url, err := s.repo.FindLatest(ctx, kind)
	if err != nil {
		s.log.Error("failed to read event log", map[string]any{
			"event": string(kind),
			"error": err.Error(),
		})
		return ""
	}
	return url
}
