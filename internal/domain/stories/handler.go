package stories

import (
	"errors"
	"io"
	"net/http"
	"os"
	"path/filepath"

	"story-gate/internal/domain/media"
	"story-gate/internal/middleware"

	"github.com/go-chi/chi/v5"
)

// maxUploadBytes limita el multipart en memoria/disco temporal.
const maxUploadBytes = 100 << 20 // 100 MB

func RegisterRoutes(r chi.Router, svc *Service, uploadsDir string) {
	r.Post("/upload_story_video", uploadStoryHandler(svc))
	r.Get("/uploads/{filename}", serveUploadHandler(uploadsDir))
}

// uploadStoryHandler godoc
// @Summary Subir un story de video
// @Description Recibe un form multipart con el campo `video` y un campo opcional `uploader` (admin|user, default user). Valida la extensión contra el allow-list, guarda copia local, intenta la subida remota y registra exactamente un evento con la URL resultante. Los rechazos de validación no producen ningún side effect.
// @Tags stories
// @Accept multipart/form-data
// @Param video formData file true "Archivo de video (mp4, mov, webm, ogg, mkv)"
// @Param uploader formData string false "Clase de actor: admin o user"
// @Success 303 {string} string "redirect a /main"
// @Failure 400 {string} string "No file part / No selected file / Unsupported file type"
// @Router /upload_story_video [post]
func uploadStoryHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		r.Body = http.MaxBytesReader(w, r.Body, maxUploadBytes)

		file, header, err := r.FormFile("video")
		if err != nil {
			http.Error(w, "No file part", http.StatusBadRequest)
			return
		}
		defer file.Close()

		if header.Filename == "" {
			http.Error(w, "No selected file", http.StatusBadRequest)
			return
		}

		uploader := r.FormValue("uploader")
		if uploader == "" {
			uploader = "user"
		}

		data, err := io.ReadAll(file)
		if err != nil {
			http.Error(w, "failed to read upload", http.StatusBadRequest)
			return
		}

		_, err = svc.Upload(r.Context(), middleware.ClientIP(r), header.Filename, data, uploader)
		if err != nil {
			switch {
			case errors.Is(err, ErrNoFilename):
				http.Error(w, "No selected file", http.StatusBadRequest)
			case errors.Is(err, ErrUnsupportedType):
				http.Error(w, "Unsupported file type", http.StatusBadRequest)
			default:
				http.Error(w, "internal error", http.StatusInternalServerError)
			}
			return
		}

		http.Redirect(w, r, "/main", http.StatusSeeOther)
	}
}

// serveUploadHandler godoc
// @Summary Servir copia local de un story
// @Description Sirve un archivo previamente guardado en el directorio de uploads (ruta de fallback cuando el media host remoto no está disponible).
// @Tags stories
// @Param filename path string true "Nombre del archivo"
// @Success 200 {file} binary
// @Failure 404 {string} string "not found"
// @Router /uploads/{filename} [get]
func serveUploadHandler(uploadsDir string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		// re-sanear: la URL nunca debe salir del directorio de uploads
		name := media.Sanitize(chi.URLParam(r, "filename"))
		if name == "" {
			http.NotFound(w, r)
			return
		}

		path := filepath.Join(uploadsDir, name)
		if _, err := os.Stat(path); err != nil {
			http.NotFound(w, r)
			return
		}

		http.ServeFile(w, r, path)
	}
}
