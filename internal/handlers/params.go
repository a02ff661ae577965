package handlers

import (
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/shelter-adoption/internal/httperr"
	"github.com/BruksfildServices01/shelter-adoption/internal/infra/storage"
)

// idParam lee un :id numérico; si no lo es ya respondió 400.
func idParam(c *gin.Context, name string) (uint, bool) {
	n, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil || n == 0 {
		httperr.FromError(c, httperr.Validation("invalid_id"))
		return 0, false
	}
	return uint(n), true
}

func bindJSON(c *gin.Context, dst any) bool {
	if err := c.ShouldBindJSON(dst); err != nil {
		httperr.FromError(c, httperr.Validation("invalid_request"))
		return false
	}
	return true
}

func queryInt(c *gin.Context, key string, def int) int {
	v := c.Query(key)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return def
	}
	return n
}

func queryUint(c *gin.Context, key string) uint {
	n, _ := strconv.ParseUint(c.Query(key), 10, 64)
	return uint(n)
}

// queryList acepta ?estado=a&estado=b y ?estado=a,b.
func queryList(c *gin.Context, key string) []string {
	var out []string
	for _, v := range c.QueryArray(key) {
		for _, s := range strings.Split(v, ",") {
			if s = strings.TrimSpace(s); s != "" {
				out = append(out, s)
			}
		}
	}
	return out
}

// parseDateTime interpreta fecha (2006-01-02) y hora (15:04) en la zona del refugio.
func parseDateTime(loc *time.Location, date, clock string) (time.Time, error) {
	t, err := time.ParseInLocation("2006-01-02 15:04", date+" "+clock, loc)
	if err != nil {
		return time.Time{}, httperr.Validation("invalid_datetime")
	}
	return t, nil
}

func formFile(c *gin.Context, field string) (storage.File, error) {
	fh, err := c.FormFile(field)
	if err != nil {
		return storage.File{}, httperr.Validation("file_required")
	}
	return storage.FromMultipart(fh)
}

// formFiles lee los archivos del campo; el mínimo lo valida el caso de uso.
func formFiles(c *gin.Context, field string) ([]storage.File, error) {
	form, err := c.MultipartForm()
	if err != nil {
		return nil, httperr.Validation("evidence_required")
	}

	headers := form.File[field]
	if len(headers) > storage.MaxFilesCount {
		return nil, httperr.Validation("too_many_files")
	}

	files := make([]storage.File, 0, len(headers))
	for _, fh := range headers {
		f, err := storage.FromMultipart(fh)
		if err != nil {
			return nil, err
		}
		files = append(files, f)
	}
	return files, nil
}
