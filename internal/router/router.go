package router

import (
	"net/http"

	"story-gate/internal/adapters/logstore/csvfile"
	cld "story-gate/internal/adapters/media/cloudinary"
	"story-gate/internal/adapters/media/local"
	"story-gate/internal/adapters/notify/webhook"
	"story-gate/internal/config"
	"story-gate/internal/domain/eventlog"
	"story-gate/internal/domain/gate"
	"story-gate/internal/domain/media"
	"story-gate/internal/domain/stories"
	"story-gate/internal/platform/logger"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "story-gate/docs"
)

type Options struct {
	Config *config.Config
	Logger logger.Logger // nil => se construye desde Config

	// Inyectables para tests. Si vienen nil se construyen desde Config:
	// LogStore => CSV en Config.Storage.LogFile
	// Notifier => webhook si hay Config.Webhook.URL (si no, sin espejo)
	// Remote   => Cloudinary si hay credenciales (si no, solo tier local)
	LogStore eventlog.Repository
	Notifier eventlog.Notifier
	Remote   media.RemoteUploader
}

func NewRouter(opts Options) (http.Handler, error) {
	cfg := opts.Config

	log := opts.Logger
	if log == nil {
		log = logger.New(logger.Options{
			Level:  logger.ParseLevel(cfg.Log.Level),
			Format: logger.ParseFormat(cfg.Log.Format),
			App:    cfg.Log.App,
		})
	}

	repo := opts.LogStore
	if repo == nil {
		store, err := csvfile.New(cfg.Storage.LogFile)
		if err != nil {
			return nil, err
		}
		repo = store
	}

	notifier := opts.Notifier
	if notifier == nil && cfg.Webhook.URL != "" {
		notifier = webhook.New(cfg.Webhook.URL)
	}

	remote := opts.Remote
	if remote == nil && cfg.Cloudinary.Enabled() {
		up, err := cld.New(cfg.Cloudinary.CloudName, cfg.Cloudinary.APIKey, cfg.Cloudinary.APISecret)
		if err != nil {
			return nil, err
		}
		remote = up
	}

	localStore, err := local.New(cfg.Storage.UploadDir)
	if err != nil {
		return nil, err
	}

	// Services por módulo
	logSvc := eventlog.NewService(repo, notifier, log)
	mediaSvc := media.NewService(localStore, remote, cfg.HTTP.PublicBaseURL, log)
	storiesSvc := stories.NewService(mediaSvc, logSvc)
	gateSvc := gate.NewService(cfg.Gate.Password, logSvc)

	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(chimw.Recoverer)

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	r.Get("/swagger/*", httpSwagger.WrapHandler)

	// Rutas por módulo
	gate.RegisterRoutes(r, gateSvc)
	stories.RegisterRoutes(r, storiesSvc, cfg.Storage.UploadDir)
	eventlog.RegisterRoutes(r, logSvc)

	return r, nil
}
