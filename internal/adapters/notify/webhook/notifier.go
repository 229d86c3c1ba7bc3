package webhook

import (
	"context"
	"net/http"
	"time"

	"story-gate/internal/domain/eventlog"
	"story-gate/internal/platform/httpclient"
)

// notifyTimeout es el techo del espejo: un webhook colgado no puede
// demorar el request más allá de esto.
const notifyTimeout = 5 * time.Second

// Notifier espeja cada registro del log como JSON a un endpoint externo.
// Es estrictamente best-effort: el caller descarta cualquier error.
type Notifier struct {
	client *httpclient.Client
	url    string
}

func New(url string) *Notifier {
	return &Notifier{
		client: httpclient.New(notifyTimeout),
		url:    url,
	}
}

// NewWithClient permite inyectar el client (tests).
func NewWithClient(url string, client *httpclient.Client) *Notifier {
	return &Notifier{client: client, url: url}
}

// payload replica los campos del registro, con los mismos nombres que
// las columnas del CSV más el event_id asignado por el Service.
type payload struct {
	EventID   string `json:"event_id"`
	Timestamp string `json:"timestamp"`
	IP        string `json:"ip"`
	Event     string `json:"event"`
	Password  string `json:"password"`
	Chat      string `json:"chat"`
	StoryURL  string `json:"story_url"`
}

func (n *Notifier) Notify(ctx context.Context, rec eventlog.Record) error {
	ctx, cancel := context.WithTimeout(ctx, notifyTimeout)
	defer cancel()

	return n.client.DoJSON(ctx, http.MethodPost, n.url, payload{
		EventID:   rec.ID,
		Timestamp: rec.Timestamp.Format("2006-01-02 15:04:05"),
		IP:        rec.SourceIP,
		Event:     string(rec.Kind),
		Password:  rec.Credential,
		Chat:      rec.ChatText,
		StoryURL:  rec.StoryURL,
	}, nil)
}
