package eventlog

import "time"

// Record es una fila del log de eventos. Los registros son inmutables:
// el log es append-only y nunca se actualiza ni se borra nada.
type Record struct {
	// ID se asigna en el Service al registrar. Viaja en el espejo
	// por webhook pero NO se persiste en el CSV (el header es fijo).
	ID string

	Timestamp time.Time // precisión de segundos
	SourceIP  string    // best-effort; "unknown" si no hay
	Kind      Kind

	// Campos opcionales según el tipo de evento.
	Credential string // solo intentos de gate (credencial en crudo)
	ChatText   string
	StoryURL   string
}
