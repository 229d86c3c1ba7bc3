package stories

import (
	"context"
	"errors"

	"story-gate/internal/domain/eventlog"
	"story-gate/internal/domain/media"
)

var (
	ErrNoFilename      = errors.New("no selected file")
	ErrUnsupportedType = errors.New("unsupported file type")
)

// Service es el pipeline de upload: valida, persiste en dos tiers y
// registra exactamente un evento por upload exitoso.
type Service struct {
	media *media.Service
	log   *eventlog.Service
}

func NewService(mediaSvc *media.Service, logSvc *eventlog.Service) *Service {
	return &Service{
		media: mediaSvc,
		log:   logSvc,
	}
}

// Upload recorre RECEIVED -> VALIDATED -> STORED -> LOGGED. Los rechazos
// de validación cortan antes de tocar el media store o el log (cero
// side effects). En el camino exitoso la URL siempre es no vacía porque
// el media store nunca falla abiertamente.
func (s *Service) Upload(ctx context.Context, ip, filename string, data []byte, uploaderClass string) (string, error) {
	if filename == "" {
		return "", ErrNoFilename
	}
	if !media.AllowedFile(filename) {
		return "", ErrUnsupportedType
	}

	url, _ := s.media.Store(ctx, filename, data)

	kind := eventlog.KindUserStoryUpload
	if uploaderClass == "admin" {
		kind = eventlog.KindAdminStoryUpload
	}

	s.log.Record(ctx, eventlog.Record{
		SourceIP: ip,
		Kind:     kind,
		StoryURL: url,
	})

	return url, nil
}
