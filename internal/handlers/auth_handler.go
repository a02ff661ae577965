package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/shelter-adoption/internal/httperr"
	"github.com/BruksfildServices01/shelter-adoption/internal/httpresp"
	ucProfile "github.com/BruksfildServices01/shelter-adoption/internal/usecase/profile"
)

type AuthHandler struct {
	register     *ucProfile.Register
	confirmEmail *ucProfile.ConfirmEmail
	login        *ucProfile.Login
	requestReset *ucProfile.RequestPasswordReset
	resetPass    *ucProfile.ResetPassword
}

func NewAuthHandler(
	register *ucProfile.Register,
	confirmEmail *ucProfile.ConfirmEmail,
	login *ucProfile.Login,
	requestReset *ucProfile.RequestPasswordReset,
	resetPass *ucProfile.ResetPassword,
) *AuthHandler {
	return &AuthHandler{
		register:     register,
		confirmEmail: confirmEmail,
		login:        login,
		requestReset: requestReset,
		resetPass:    resetPass,
	}
}

// --------- Requests ---------

type RegisterRequest struct {
	FirstName string `json:"nombre"`
	LastName  string `json:"apellidos"`
	CURP      string `json:"curp"`
	Email     string `json:"email"`
	Phone     string `json:"telefono"`
	Address   string `json:"direccion"`
	Password  string `json:"password"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type TokenRequest struct {
	Token string `json:"token"`
}

type ResetRequest struct {
	Email string `json:"email"`
}

type NewPasswordRequest struct {
	Token    string `json:"token"`
	Password string `json:"password"`
}

// --------- Handlers ---------

func (h *AuthHandler) Register(c *gin.Context) {
	var req RegisterRequest
	if !bindJSON(c, &req) {
		return
	}

	p, err := h.register.Execute(c.Request.Context(), ucProfile.RegisterInput{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		CURP:      req.CURP,
		Email:     req.Email,
		Phone:     req.Phone,
		Address:   req.Address,
		Password:  req.Password,
	})
	if err != nil {
		httperr.FromError(c, err)
		return
	}

	httpresp.Created(c, p)
}

func (h *AuthHandler) Confirm(c *gin.Context) {
	var req TokenRequest
	if !bindJSON(c, &req) {
		return
	}

	if err := h.confirmEmail.Execute(c.Request.Context(), req.Token); err != nil {
		httperr.FromError(c, err)
		return
	}

	httpresp.OK(c, gin.H{"confirmado": true})
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if !bindJSON(c, &req) {
		return
	}

	token, p, err := h.login.Execute(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		httperr.FromError(c, err)
		return
	}

	httpresp.OK(c, gin.H{
		"token":  token,
		"perfil": p,
	})
}

// RequestReset responde igual exista o no el correo.
func (h *AuthHandler) RequestReset(c *gin.Context) {
	var req ResetRequest
	if !bindJSON(c, &req) {
		return
	}

	if err := h.requestReset.Execute(c.Request.Context(), req.Email); err != nil {
		httperr.FromError(c, err)
		return
	}

	httpresp.Accepted(c, gin.H{"enviado": true})
}

func (h *AuthHandler) ResetPassword(c *gin.Context) {
	var req NewPasswordRequest
	if !bindJSON(c, &req) {
		return
	}

	if err := h.resetPass.Execute(c.Request.Context(), req.Token, req.Password); err != nil {
		httperr.FromError(c, err)
		return
	}

	httpresp.OK(c, gin.H{"actualizado": true})
}
