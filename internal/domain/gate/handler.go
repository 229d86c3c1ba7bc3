package gate

import (
	"encoding/json"
	"net/http"

	"story-gate/internal/middleware"
	"story-gate/internal/web"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Get("/", indexHandler())
	r.Post("/save_password", savePasswordHandler(svc))
	r.Get("/main", mainHandler())
}

// savePasswordRequest es el cuerpo con la credencial enviada.
type savePasswordRequest struct {
	Password string `json:"password"`
}

// gateResponse lleva redirect en aceptación o message en rechazo.
type gateResponse struct {
	Redirect string `json:"redirect,omitempty"`
	Message  string `json:"message,omitempty"`
}

func indexHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		web.Render(w, "index.html")
	}
}

func mainHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		web.Render(w, "main.html")
	}
}

// savePasswordHandler godoc
// @Summary Validar la credencial del gate
// @Description Compara la credencial contra el secreto estático y registra el intento (exitoso o fallido) en el log de eventos. Si coincide devuelve el path de redirect al dashboard; si no, un mensaje de rechazo.
// @Tags gate
// @Accept json
// @Produce json
// @Param payload body savePasswordRequest true "Credencial"
// @Success 200 {object} gateResponse
// @Router /save_password [post]
func savePasswordHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req savePasswordRequest
		// body inválido => credencial vacía (cuenta como intento fallido)
		_ = json.NewDecoder(r.Body).Decode(&req)

		if svc.Check(r.Context(), middleware.ClientIP(r), req.Password) {
			writeJSON(w, http.StatusOK, gateResponse{Redirect: "/main"})
			return
		}

		writeJSON(w, http.StatusOK, gateResponse{Message: "Wrong password ❌"})
	}
}

// writeJSON está duplicado intencionalmente en handlers de distintos módulos
// para no crear helpers compartidos demasiado pronto.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
