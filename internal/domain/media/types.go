package media

import (
	"path/filepath"
	"regexp"
	"strings"
)

// Tier indica qué nivel terminó sirviendo el asset.
type Tier string

const (
	TierLocal  Tier = "local"
	TierRemote Tier = "remote"
)

// allowedExtensions es el allow-list compilado de contenedores de video.
var allowedExtensions = map[string]struct{}{
	"mp4":  {},
	"mov":  {},
	"webm": {},
	"ogg":  {},
	"mkv":  {},
}

// AllowedFile valida que el nombre tenga una extensión del allow-list.
func AllowedFile(filename string) bool {
	i := strings.LastIndex(filename, ".")
	if i < 0 || i == len(filename)-1 {
		return false
	}
	ext := strings.ToLower(filename[i+1:])
	_, ok := allowedExtensions[ext]
	return ok
}

var unsafeChars = regexp.MustCompile(`[^A-Za-z0-9._-]+`)

// Sanitize quita componentes de ruta y caracteres inseguros antes de
// cualquier uso del nombre en el filesystem.
func Sanitize(filename string) string {
	// separadores de windows también cuentan como ruta
	name := strings.ReplaceAll(filename, `\`, "/")
	name = filepath.Base(name)

	name = unsafeChars.ReplaceAllString(name, "_")
	// sin archivos ocultos
	name = strings.TrimLeft(name, ".")
	if name == "" {
		return ""
	}
	return name
}
