package eventlog

import (
	"encoding/json"
	"net/http"

	"story-gate/internal/middleware"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Get("/last_admin_story", lastStoryHandler(svc, KindAdminStoryUpload))
	r.Get("/last_user_story", lastStoryHandler(svc, KindUserStoryUpload))
	r.Post("/log_chat", logChatHandler(svc))
}

// storyURLResponse es la URL del último story de una clase de actor.
type storyURLResponse struct {
	URL string `json:"url"`
}

// logChatRequest es el cuerpo para registrar un mensaje de chat.
type logChatRequest struct {
	Chat string `json:"chat"`
}

// chatAckResponse es el acuse de recibo del chat.
type chatAckResponse struct {
	Status string `json:"status"`
}

// lastStoryHandler godoc
// @Summary Último story de admin o user
// @Description Escanea el log de eventos del más reciente al más viejo y devuelve el story_url del último upload de la clase pedida. Si no hay ninguno (o el log es ilegible) devuelve url vacía, nunca un error.
// @Tags stories
// @Produce json
// @Success 200 {object} storyURLResponse
// @Router /last_admin_story [get]
// @Router /last_user_story [get]
func lastStoryHandler(svc *Service, kind Kind) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		url := svc.LatestStoryURL(r.Context(), kind)
		writeJSON(w, http.StatusOK, storyURLResponse{URL: url})
	}
}

// logChatHandler godoc
// @Summary Registrar mensaje de chat
// @Description Registra un mensaje de chat en el log de eventos y devuelve un acuse. El registro es best-effort: un fallo del log no produce error al cliente.
// @Tags chat
// @Accept json
// @Produce json
// @Param payload body logChatRequest true "Mensaje de chat"
// @Success 200 {object} chatAckResponse
// @Router /log_chat [post]
func logChatHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req logChatRequest
		// body vacío o inválido => chat vacío (fiel al original)
		_ = json.NewDecoder(r.Body).Decode(&req)

		svc.Record(r.Context(), Record{
			SourceIP: middleware.ClientIP(r),
			Kind:     KindChatMessage,
			ChatText: req.Chat,
		})

		writeJSON(w, http.StatusOK, chatAckResponse{Status: "ok"})
	}
}

// writeJSON está duplicado intencionalmente en handlers de distintos módulos
// para no crear helpers compartidos demasiado pronto.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
