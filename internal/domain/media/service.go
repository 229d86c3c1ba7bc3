package media

import (
	"context"
	"strings"

	"story-gate/internal/platform/logger"
)

// LocalStore es el tier de fallback: escribe el asset en el directorio
// local de uploads bajo su nombre saneado.
type LocalStore interface {
	Save(ctx context.Context, name string, data []byte) error
}

// RemoteUploader es el tier remoto (media host). Un intento por request,
// con timeout acotado; devuelve la secure URL del asset.
type RemoteUploader interface {
	Upload(ctx context.Context, name string, data []byte) (string, error)
}

// Service implementa la persistencia en dos tiers. Nunca devuelve error
// al pipeline: cualquier fallo degrada al fallback local.
type Service struct {
	local   LocalStore
	remote  RemoteUploader // nil => sin tier remoto configurado
	baseURL string
	log     logger.Logger
}

func NewService(local LocalStore, remote RemoteUploader, publicBaseURL string, log logger.Logger) *Service {
	return &Service{
		local:   local,
		remote:  remote,
		baseURL: strings.TrimRight(publicBaseURL, "/"),
		log:     log,
	}
}

// Store persiste los bytes en ambos tiers y devuelve una URL estable:
//  1. escritura local incondicional (best-effort; un fallo se loguea y
//     el pipeline sigue)
//  2. un único intento de subida remota; si responde, su secure URL es
//     el resultado canónico
//  3. ante cualquier fallo remoto, la URL de fallback sirve la copia
//     local por la ruta /uploads de este mismo sistema
//
// filename ya debe venir validado; acá solo se sanea.
func (s *Service) Store(ctx context.Context, filename string, data []byte) (string, Tier) {
	name := Sanitize(filename)

	if err := s.local.Save(ctx, name, data); err != nil {
		s.log.Error("local save failed", map[string]any{
			"file":  name,
			"error": err.Error(),
		})
	}

	if s.remote != nil {
		url, err := s.remote.Upload(ctx, name, data)
		if err == nil && url != "" {
			s.log.Info("remote upload success", map[string]any{
				"file": name,
				"url":  url,
			})
			return url, TierRemote
		}
		if err != nil {
			s.log.Error("remote upload failed", map[string]any{
				"file":  name,
				"error": err.Error(),
			})
		}
	}

	return s.baseURL + "/uploads/" + name, TierLocal
}
