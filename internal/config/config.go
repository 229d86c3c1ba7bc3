package config

import (
	"fmt"
	"os"
	"time"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// DefaultGatePassword es el secreto por defecto del gate.
// SIEMPRE debe sobreescribirse (GATE_PASSWORD) en un despliegue real.
const DefaultGatePassword = "mrshaik"

// Config es inmutable después de Load y se pasa explícitamente
// a cada componente (nada de estado global).
type Config struct {
	HTTP       HTTPConfig       `koanf:"http"`
	Gate       GateConfig       `koanf:"gate"`
	Storage    StorageConfig    `koanf:"storage"`
	Cloudinary CloudinaryConfig `koanf:"cloudinary"`
	Webhook    WebhookConfig    `koanf:"webhook"`
	Log        LogConfig        `koanf:"log"`
}

type HTTPConfig struct {
	Port         string        `koanf:"port"`
	ReadTimeout  time.Duration `koanf:"read_timeout"`
	WriteTimeout time.Duration `koanf:"write_timeout"`

	// PublicBaseURL se usa para construir la URL de fallback
	// (/uploads/...) cuando falla la subida remota. Opcional.
	PublicBaseURL string `koanf:"public_base_url"`
}

type GateConfig struct {
	// Password es el secreto compartido. Los intentos se registran
	// con la credencial en crudo (auditoría, fiel al comportamiento original).
	Password string `koanf:"password"`
}

type StorageConfig struct {
	UploadDir string `koanf:"upload_dir"`
	LogFile   string `koanf:"log_file"`
}

type CloudinaryConfig struct {
	CloudName string `koanf:"cloud_name"`
	APIKey    string `koanf:"api_key"`
	APISecret string `koanf:"api_secret"`
}

// Enabled indica si hay credenciales suficientes para intentar
// la subida remota. Sin credenciales, solo queda el tier local.
func (c CloudinaryConfig) Enabled() bool {
	return c.CloudName != "" && c.APIKey != "" && c.APISecret != ""
}

type WebhookConfig struct {
	// URL opcional a donde se espeja cada registro del log (best-effort).
	URL string `koanf:"url"`
}

type LogConfig struct {
	Level  string `koanf:"level"`
	Format string `koanf:"format"`
	App    string `koanf:"app"`
}

// Load construye la Config: yaml opcional + defaults + overrides por env.
// path vacío => solo defaults y env.
func Load(path string) (*Config, error) {
	k := koanf.New(".")

	if path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("failed to load config file: %w", err)
		}
	}

	applyDefaults(k)
	applyEnvOverrides(k)

	var cfg Config
	if err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{Tag: "koanf"}); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return &cfg, nil
}

func applyDefaults(k *koanf.Koanf) {
	setDefault(k, "http.port", "8080")
	setDefault(k, "http.read_timeout", 5*time.Second)
	setDefault(k, "http.write_timeout", 60*time.Second)
	setDefault(k, "http.public_base_url", "")

	setDefault(k, "gate.password", DefaultGatePassword)

	setDefault(k, "storage.upload_dir", "static/uploads")
	setDefault(k, "storage.log_file", "logs.csv")

	setDefault(k, "log.level", "info")
	setDefault(k, "log.format", "text")
	setDefault(k, "log.app", "story-gate")
}

func applyEnvOverrides(k *koanf.Koanf) {
	setEnv(k, "http.port", "PORT")
	setEnv(k, "http.public_base_url", "PUBLIC_BASE_URL")

	setEnv(k, "gate.password", "GATE_PASSWORD")

	setEnv(k, "storage.upload_dir", "UPLOAD_DIR")
	setEnv(k, "storage.log_file", "LOG_FILE")

	setEnv(k, "cloudinary.cloud_name", "CLOUDINARY_CLOUD_NAME")
	setEnv(k, "cloudinary.api_key", "CLOUDINARY_API_KEY")
	setEnv(k, "cloudinary.api_secret", "CLOUDINARY_API_SECRET")

	setEnv(k, "webhook.url", "WEBHOOK_URL")

	setEnv(k, "log.level", "LOG_LEVEL")
	setEnv(k, "log.format", "LOG_FORMAT")
	setEnv(k, "log.app", "APP_NAME")
}

// setDefault solo escribe si la key no existe todavía (no pisa el yaml).
func setDefault(k *koanf.Koanf, key string, value interface{}) {
	if !k.Exists(key) {
		k.Set(key, value)
	}
}

func setEnv(k *koanf.Koanf, key, envVar string) {
	if v := os.Getenv(envVar); v != "" {
		k.Set(key, v)
	}
}
