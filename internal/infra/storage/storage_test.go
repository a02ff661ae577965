package storage

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/BruksfildServices01/shelter-adoption/internal/httperr"
)

func TestFileCheck(t *testing.T) {
	cases := []struct {
		name string
		file File
		code string
	}{
		{"empty", File{Name: "a.pdf"}, "file_required"},
		{"too large", File{Name: "a.pdf", Data: make([]byte, MaxFileSize+1)}, "file_too_large"},
		{"extension", File{Name: "a.exe", Data: []byte("x")}, "file_type_not_allowed"},
	}
	for _, tc := range cases {
		if _, _, err := tc.file.Check(DocumentExtensions); !httperr.IsBusiness(err, tc.code) {
			t.Fatalf("%s: expected %s, got %v", tc.name, tc.code, err)
		}
	}

	ext, ct, err := File{Name: "INE.PDF", Data: []byte("%PDF")}.Check(DocumentExtensions)
	if err != nil || ext != ".pdf" || ct != "application/pdf" {
		t.Fatalf("unexpected result ext=%q ct=%q err=%v", ext, ct, err)
	}
}

func TestDocumentKey_NamespacedByProfileAndType(t *testing.T) {
	key := DocumentKey(42, "curp", ".png")
	if !strings.HasPrefix(key, "documentos/42/curp/") || !strings.HasSuffix(key, ".png") {
		t.Fatalf("unexpected key %q", key)
	}
	if DocumentKey(42, "curp", ".png") == key {
		t.Fatal("keys must be unique per upload")
	}
}

func TestLocal_UploadWritesFile(t *testing.T) {
	dir := t.TempDir()
	l := NewLocal(dir, "http://localhost:8080/uploads/")

	url, err := l.Upload(context.Background(), "documentos/1/curp/x.png", []byte("img"), "image/png")
	if err != nil {
		t.Fatalf("Upload: %v", err)
	}
	if url != "http://localhost:8080/uploads/documentos/1/curp/x.png" {
		t.Fatalf("unexpected url %q", url)
	}

	got, err := os.ReadFile(filepath.Join(dir, "documentos", "1", "curp", "x.png"))
	if err != nil || string(got) != "img" {
		t.Fatalf("file not written: %q %v", got, err)
	}
}

func TestS3_PublicURL(t *testing.T) {
	b := NewS3(S3Config{Region: "us-east-1", Bucket: "refugio", Endpoint: "http://minio:9000/"})
	if got := b.PublicURL("a/b.webp"); got != "http://minio:9000/refugio/a/b.webp" {
		t.Fatalf("unexpected url %q", got)
	}

	b = NewS3(S3Config{Bucket: "refugio", PublicBaseURL: "https://cdn.refugio.mx"})
	if got := b.PublicURL("a/b.webp"); got != "https://cdn.refugio.mx/a/b.webp" {
		t.Fatalf("unexpected url %q", got)
	}
}

func tinyPNG() []byte {
	img := image.NewRGBA(image.Rect(0, 0, 4, 4))
	var buf bytes.Buffer
	_ = png.Encode(&buf, img)
	return buf.Bytes()
}

func TestUploadWebP_AllOrNothing(t *testing.T) {
	ctx := context.Background()
	b := NewMemory()
	n := 0
	key := func() string { n++; return fmt.Sprintf("k%d.webp", n) }

	files := []File{{Name: "a.png", Data: tinyPNG()}, {Name: "b.png", Data: []byte("not an image")}}
	if _, err := UploadWebP(ctx, b, files, key); !httperr.IsBusiness(err, "invalid_image") {
		t.Fatalf("expected invalid_image, got %v", err)
	}
	if b.Len() != 0 {
		t.Fatalf("nothing should be uploaded, got %d objects", b.Len())
	}

	if _, err := UploadWebP(ctx, b, nil, key); !httperr.IsBusiness(err, "evidence_required") {
		t.Fatalf("expected evidence_required, got %v", err)
	}

	raw, err := UploadWebP(ctx, b, files[:1], key)
	if err != nil {
		t.Fatalf("UploadWebP: %v", err)
	}
	if string(raw) != `["memory://k1.webp"]` {
		t.Fatalf("unexpected json %s", raw)
	}
}
