package cloudinary

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
)

const (
	// folder lógico fijo donde viven los stories en el media host
	storiesFolder = "stories"

	// techo de la subida remota: una dependencia externa colgada no
	// puede frenar el pipeline más allá de esto
	uploadTimeout = 30 * time.Second
)

// Uploader es el tier remoto sobre Cloudinary (resource type video).
type Uploader struct {
	cld *cloudinary.Cloudinary
}

func New(cloudName, apiKey, apiSecret string) (*Uploader, error) {
	cld, err := cloudinary.NewFromParams(cloudName, apiKey, apiSecret)
	if err != nil {
		return nil, fmt.Errorf("init cloudinary: %w", err)
	}
	return &Uploader{cld: cld}, nil
}

// Upload sube los bytes como video a la carpeta de stories y devuelve la
// secure URL. Un solo intento, sin retry; el caller decide el fallback.
func (u *Uploader) Upload(ctx context.Context, name string, data []byte) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, uploadTimeout)
	defer cancel()

	res, err := u.cld.Upload.Upload(ctx, bytes.NewReader(data), uploader.UploadParams{
		Folder:       storiesFolder,
		ResourceType: "video",
	})
	if err != nil {
		return "", fmt.Errorf("cloudinary upload: %w", err)
	}
	if res.Error.Message != "" {
		return "", fmt.Errorf("cloudinary upload: %s", res.Error.Message)
	}
	if res.SecureURL == "" {
		return "", errors.New("cloudinary upload: empty secure url")
	}
	return res.SecureURL, nil
}
