package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	domainDonation "github.com/BruksfildServices01/shelter-adoption/internal/domain/donation"
	"github.com/BruksfildServices01/shelter-adoption/internal/httperr"
	"github.com/BruksfildServices01/shelter-adoption/internal/httpresp"
	"github.com/BruksfildServices01/shelter-adoption/internal/middleware"
	ucDonation "github.com/BruksfildServices01/shelter-adoption/internal/usecase/donation"
)

type DonationHandler struct {
	create  *ucDonation.CreateDonation
	webhook *ucDonation.HandleWebhook
	list    *ucDonation.ListDonations
}

func NewDonationHandler(
	create *ucDonation.CreateDonation,
	webhook *ucDonation.HandleWebhook,
	list *ucDonation.ListDonations,
) *DonationHandler {
	return &DonationHandler{create: create, webhook: webhook, list: list}
}

type DonationRequest struct {
	DonorName  string  `json:"nombre"`
	DonorEmail string  `json:"email"`
	Amount     float64 `json:"monto"`
	Message    string  `json:"mensaje"`
}

// webhookBody es el formato nuevo de MercadoPago; el viejo manda todo en query.
type webhookBody struct {
	Type string `json:"type"`
	Data struct {
		ID string `json:"id"`
	} `json:"data"`
}

// Create es pública; si hay sesión la donación queda ligada al perfil.
func (h *DonationHandler) Create(c *gin.Context) {
	var req DonationRequest
	if !bindJSON(c, &req) {
		return
	}

	out, err := h.create.Execute(c.Request.Context(), middleware.Actor(c), ucDonation.Input{
		DonorName:  req.DonorName,
		DonorEmail: req.DonorEmail,
		Amount:     req.Amount,
		Message:    req.Message,
	})
	if err != nil {
		httperr.FromError(c, err)
		return
	}
	httpresp.Created(c, out)
}

// Webhook: cualquier respuesta no 2xx hace que MercadoPago reintente.
func (h *DonationHandler) Webhook(c *gin.Context) {
	topic := c.Query("type")
	if topic == "" {
		topic = c.Query("topic")
	}
	paymentID := c.Query("data.id")
	if paymentID == "" {
		paymentID = c.Query("id")
	}

	if topic == "" || paymentID == "" {
		var body webhookBody
		if err := c.ShouldBindJSON(&body); err == nil {
			if topic == "" {
				topic = body.Type
			}
			if paymentID == "" {
				paymentID = body.Data.ID
			}
		}
	}

	if _, err := h.webhook.Execute(c.Request.Context(), topic, paymentID); err != nil {
		httperr.FromError(c, err)
		return
	}
	c.Status(http.StatusOK)
}

func (h *DonationHandler) List(c *gin.Context) {
	f := domainDonation.Filter{
		Status: c.Query("estado"),
		Limit:  queryInt(c, "limit", 0),
	}

	list, err := h.list.Execute(c.Request.Context(), middleware.Actor(c), f)
	if err != nil {
		httperr.FromError(c, err)
		return
	}
	httpresp.List(c, list)
}
