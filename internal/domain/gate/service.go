package gate

import (
	"context"

	"story-gate/internal/domain/eventlog"
)

// Service compara la credencial contra el secreto estático configurado.
// Sin sesiones ni tokens: el check es de una sola vez.
type Service struct {
	password string
	log      *eventlog.Service
}

func NewService(password string, logSvc *eventlog.Service) *Service {
	return &Service{
		password: password,
		log:      logSvc,
	}
}

// Check registra SIEMPRE el intento (exitoso o no) con la credencial en
// crudo, para auditoría. La comparación es directa, fiel al original
// (no constant-time).
func (s *Service) Check(ctx context.Context, ip, submitted string) bool {
	ok := submitted == s.password

	kind := eventlog.KindPasswordAttemptFailed
	if ok {
		kind = eventlog.KindPasswordAttempt
	}

	s.log.Record(ctx, eventlog.Record{
		SourceIP:   ip,
		Kind:       kind,
		Credential: submitted,
	})

	return ok
}
