package handlers

import (
	"context"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/shelter-adoption/internal/audit"
	"github.com/BruksfildServices01/shelter-adoption/internal/httperr"
	"github.com/BruksfildServices01/shelter-adoption/internal/httpresp"
	"github.com/BruksfildServices01/shelter-adoption/internal/middleware"
	"github.com/BruksfildServices01/shelter-adoption/internal/models"
)

// AuditReader lo implementa audit.Logger.
type AuditReader interface {
	List(ctx context.Context, q audit.Query) ([]models.AuditLog, int64, error)
}

// ======================================================
// HANDLER
// ======================================================

type AuditLogsHandler struct {
	reader AuditReader
	loc    *time.Location
}

func NewAuditLogsHandler(reader AuditReader, loc *time.Location) *AuditLogsHandler {
	return &AuditLogsHandler{reader: reader, loc: loc}
}

func (h *AuditLogsHandler) List(c *gin.Context) {
	if middleware.Actor(c).ProfileID == 0 {
		httperr.FromError(c, httperr.Unauthenticated("not_authenticated"))
		return
	}

	q := audit.Query{
		Action: c.Query("action"),
		Entity: c.Query("entity"),
		Page:   queryInt(c, "page", 1),
		Limit:  queryInt(c, "limit", 50),
	}

	q.Normalize()

	if id := queryUint(c, "actor_id"); id != 0 {
		q.ActorID = &id
	}

	// --------------------------------------------------
	// Rango de fechas en la zona del refugio
	// --------------------------------------------------

	if v := c.Query("from"); v != "" {
		if from, err := time.ParseInLocation("2006-01-02", v, h.loc); err == nil {
			q.From = &from
		}
	}
	if v := c.Query("to"); v != "" {
		if to, err := time.ParseInLocation("2006-01-02", v, h.loc); err == nil {
			end := to.AddDate(0, 0, 1)
			q.To = &end
		}
	}

	logs, total, err := h.reader.List(c.Request.Context(), q)
	if err != nil {
		httperr.FromError(c, httperr.Upstream("store_failure", err))
		return
	}

	httpresp.Page(c, logs, total, q.Page, q.Limit)
}
