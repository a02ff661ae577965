package storage

import (
	"context"
	"os"
	"path/filepath"
	"strings"
)

// Local guarda en disco; para desarrollo sin bucket. Los archivos se
// sirven con r.Static(baseURL, dir).
type Local struct {
	dir     string
	baseURL string
}

func NewLocal(dir, baseURL string) *Local {
	return &Local{dir: dir, baseURL: strings.TrimRight(baseURL, "/")}
}

func (l *Local) Upload(_ context.Context, key string, body []byte, _ string) (string, error) {
	path := filepath.Join(l.dir, filepath.FromSlash(key))
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return "", err
	}
	if err := os.WriteFile(path, body, 0o644); err != nil {
		return "", err
	}
	return l.PublicURL(key), nil
}

func (l *Local) PublicURL(key string) string {
	return l.baseURL + "/" + key
}
