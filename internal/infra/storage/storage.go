package storage

import (
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"github.com/BruksfildServices01/shelter-adoption/internal/httperr"
)

const (
	MaxFileSize   = 5 * 1024 * 1024
	MaxFilesCount = 5
)

// Bucket es el colaborador de almacenamiento de archivos.
type Bucket interface {
	Upload(ctx context.Context, key string, body []byte, contentType string) (string, error)
	PublicURL(key string) string
}

// extensión -> content type
var DocumentExtensions = map[string]string{
	".jpg":  "image/jpeg",
	".jpeg": "image/jpeg",
	".png":  "image/png",
	".pdf":  "application/pdf",
}

var ImageExtensions = map[string]string{
	".jpg":  "image/jpeg",
	".jpeg": "image/jpeg",
	".png":  "image/png",
}

// File es un archivo recibido, ya leído a memoria (máx. MaxFileSize).
type File struct {
	Name string
	Data []byte
}

// Check valida tamaño y extensión; devuelve extensión y content type.
func (f File) Check(allowed map[string]string) (string, string, error) {
	if len(f.Data) == 0 {
		return "", "", httperr.Validation("file_required")
	}
	if len(f.Data) > MaxFileSize {
		return "", "", httperr.Validation("file_too_large")
	}

	ext := strings.ToLower(filepath.Ext(f.Name))
	ct, ok := allowed[ext]
	if !ok {
		return "", "", httperr.Validation("file_type_not_allowed")
	}
	return ext, ct, nil
}

// FromMultipart lee el archivo del formulario con límite de tamaño.
func FromMultipart(fh *multipart.FileHeader) (File, error) {
	if fh.Size > MaxFileSize {
		return File{}, httperr.Validation("file_too_large")
	}

	src, err := fh.Open()
	if err != nil {
		return File{}, err
	}
	defer src.Close()

	data, err := io.ReadAll(io.LimitReader(src, MaxFileSize+1))
	if err != nil {
		return File{}, err
	}
	return File{Name: fh.Filename, Data: data}, nil
}

// ===============================
// Object keys
// ===============================

func DocumentKey(profileID uint, docType, ext string) string {
	return fmt.Sprintf("documentos/%d/%s/%s%s", profileID, docType, uuid.NewString(), ext)
}

func PetPhotoKey(petID uint) string {
	return fmt.Sprintf("mascotas/%d/%s.webp", petID, uuid.NewString())
}

func HomeEvidenceKey(requestID uint) string {
	return fmt.Sprintf("evidencias/solicitudes/%d/%s.webp", requestID, uuid.NewString())
}

func FollowUpEvidenceKey(followUpID uint) string {
	return fmt.Sprintf("evidencias/seguimientos/%d/%s.webp", followUpID, uuid.NewString())
}
