package storage

import (
	"context"
	"encoding/json"
	"fmt"

	"gorm.io/datatypes"

	"github.com/BruksfildServices01/shelter-adoption/internal/httperr"
	"github.com/BruksfildServices01/shelter-adoption/internal/infra/imaging"
)

// CheckImages valida cantidad, tamaño y extensión sin subir nada.
func CheckImages(files []File) error {
	if len(files) == 0 {
		return httperr.Validation("evidence_required")
	}
	if len(files) > MaxFilesCount {
		return httperr.Validation("too_many_files")
	}
	for _, f := range files {
		if _, _, err := f.Check(ImageExtensions); err != nil {
			return err
		}
	}
	return nil
}

// UploadWebP convierte todas las imágenes antes de subir la primera, así
// una imagen corrupta no deja archivos a medias. Devuelve las URLs como
// arreglo JSON listo para la columna jsonb.
func UploadWebP(ctx context.Context, b Bucket, files []File, key func() string) (datatypes.JSON, error) {
	if err := CheckImages(files); err != nil {
		return nil, err
	}

	converted := make([][]byte, len(files))
	for i, f := range files {
		data, err := imaging.ToWebP(f.Data, imaging.MaxSide)
		if err != nil {
			return nil, err
		}
		converted[i] = data
	}

	urls := make([]string, 0, len(converted))
	for _, data := range converted {
		url, err := b.Upload(ctx, key(), data, "image/webp")
		if err != nil {
			return nil, httperr.Upstream("storage_failure", fmt.Errorf("upload evidence: %w", err))
		}
		urls = append(urls, url)
	}

	raw, err := json.Marshal(urls)
	if err != nil {
		return nil, err
	}
	return datatypes.JSON(raw), nil
}
