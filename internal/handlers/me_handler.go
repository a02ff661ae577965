package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/shelter-adoption/internal/httperr"
	"github.com/BruksfildServices01/shelter-adoption/internal/httpresp"
	"github.com/BruksfildServices01/shelter-adoption/internal/middleware"
	ucDashboard "github.com/BruksfildServices01/shelter-adoption/internal/usecase/dashboard"
	ucProfile "github.com/BruksfildServices01/shelter-adoption/internal/usecase/profile"
)

type MeHandler struct {
	getMe    *ucProfile.GetMe
	updateMe *ucProfile.UpdateMe
	overview *ucDashboard.AdopterOverview
}

func NewMeHandler(
	getMe *ucProfile.GetMe,
	updateMe *ucProfile.UpdateMe,
	overview *ucDashboard.AdopterOverview,
) *MeHandler {
	return &MeHandler{getMe: getMe, updateMe: updateMe, overview: overview}
}

// Campos ausentes no se tocan.
type UpdateMeRequest struct {
	FirstName *string `json:"nombre"`
	LastName  *string `json:"apellidos"`
	Phone     *string `json:"telefono"`
	Address   *string `json:"direccion"`
}

func (h *MeHandler) GetMe(c *gin.Context) {
	p, err := h.getMe.Execute(c.Request.Context(), middleware.Actor(c))
	if err != nil {
		httperr.FromError(c, err)
		return
	}
	httpresp.OK(c, p)
}

func (h *MeHandler) UpdateMe(c *gin.Context) {
	var req UpdateMeRequest
	if !bindJSON(c, &req) {
		return
	}

	p, err := h.updateMe.Execute(c.Request.Context(), middleware.Actor(c), ucProfile.UpdateMeInput{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Phone:     req.Phone,
		Address:   req.Address,
	})
	if err != nil {
		httperr.FromError(c, err)
		return
	}
	httpresp.OK(c, p)
}

func (h *MeHandler) Dashboard(c *gin.Context) {
	s, err := h.overview.Execute(c.Request.Context(), middleware.Actor(c))
	if err != nil {
		httperr.FromError(c, err)
		return
	}
	httpresp.OK(c, s)
}
