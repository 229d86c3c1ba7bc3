package eventlog

import "context"

// Repository es el sink durable y la única fuente de verdad del historial.
type Repository interface {
	// Append escribe un registro al final del log. Nunca debe
	// corromper ni reordenar registros previos, incluso con
	// escritores concurrentes.
	Append(ctx context.Context, rec Record) error

	// FindLatest devuelve el story_url del registro más reciente
	// del tipo dado con story_url no vacío; "" si no hay ninguno.
	FindLatest(ctx context.Context, kind Kind) (string, error)
}

// Notifier es el espejo secundario (fire-and-forget). Sus fallos
// jamás afectan al resultado del sink primario.
type Notifier interface {
	Notify(ctx context.Context, rec Record) error
}
