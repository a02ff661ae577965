package handlers

import (
	"github.com/gin-gonic/gin"

	domainProfile "github.com/BruksfildServices01/shelter-adoption/internal/domain/profile"
	"github.com/BruksfildServices01/shelter-adoption/internal/httperr"
	"github.com/BruksfildServices01/shelter-adoption/internal/httpresp"
	"github.com/BruksfildServices01/shelter-adoption/internal/middleware"
	ucDashboard "github.com/BruksfildServices01/shelter-adoption/internal/usecase/dashboard"
	ucProfile "github.com/BruksfildServices01/shelter-adoption/internal/usecase/profile"
	ucReconcile "github.com/BruksfildServices01/shelter-adoption/internal/usecase/reconcile"
)

type AdminHandler struct {
	listProfiles *ucProfile.ListProfiles
	setActive    *ucProfile.SetActive
	overview     *ucDashboard.AdminOverview
	reconcile    *ucReconcile.Reconcile
}

func NewAdminHandler(
	listProfiles *ucProfile.ListProfiles,
	setActive *ucProfile.SetActive,
	overview *ucDashboard.AdminOverview,
	reconcile *ucReconcile.Reconcile,
) *AdminHandler {
	return &AdminHandler{
		listProfiles: listProfiles,
		setActive:    setActive,
		overview:     overview,
		reconcile:    reconcile,
	}
}

type ActiveRequest struct {
	Active *bool `json:"activo"`
}

func (h *AdminHandler) ListProfiles(c *gin.Context) {
	f := domainProfile.Filter{
		Role:  c.Query("rol"),
		Query: c.Query("q"),
	}
	if v := c.Query("activo"); v != "" {
		active := v == "true"
		f.Active = &active
	}

	list, err := h.listProfiles.Execute(c.Request.Context(), middleware.Actor(c), f)
	if err != nil {
		httperr.FromError(c, err)
		return
	}
	httpresp.List(c, list)
}

func (h *AdminHandler) SetActive(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}

	var req ActiveRequest
	if !bindJSON(c, &req) {
		return
	}
	if req.Active == nil {
		httperr.FromError(c, httperr.Validation("invalid_request"))
		return
	}

	p, err := h.setActive.Execute(c.Request.Context(), middleware.Actor(c), id, *req.Active)
	if err != nil {
		httperr.FromError(c, err)
		return
	}
	httpresp.OK(c, p)
}

func (h *AdminHandler) Dashboard(c *gin.Context) {
	s, err := h.overview.Execute(c.Request.Context(), middleware.Actor(c))
	if err != nil {
		httperr.FromError(c, err)
		return
	}
	httpresp.OK(c, s)
}

// Reconcile con ?dry_run=true solo reporta lo que corregiría.
func (h *AdminHandler) Reconcile(c *gin.Context) {
	dryRun := c.Query("dry_run") == "true"

	fixes, err := h.reconcile.Execute(c.Request.Context(), middleware.Actor(c), dryRun)
	if err != nil {
		httperr.FromError(c, err)
		return
	}

	httpresp.OK(c, gin.H{
		"dry_run":      dryRun,
		"correcciones": fixes,
		"total":        len(fixes),
	})
}
