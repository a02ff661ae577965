package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/shelter-adoption/internal/auth"
	"github.com/BruksfildServices01/shelter-adoption/internal/config"
	"github.com/BruksfildServices01/shelter-adoption/internal/httperr"
)

const (
	ContextUserID   = "userID"
	ContextUserRole = "userRole"
)

func bearerActor(cfg *config.Config, header string) (auth.Actor, string) {
	if header == "" {
		return auth.Actor{}, "missing_authorization_header"
	}

	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return auth.Actor{}, "invalid_authorization_header"
	}

	actor, err := auth.ParseToken(cfg.JWTSecret, strings.TrimSpace(parts[1]))
	if err != nil {
		return auth.Actor{}, "invalid_token"
	}
	return actor, ""
}

func AuthMiddleware(cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		actor, code := bearerActor(cfg, c.GetHeader("Authorization"))
		if code != "" {
			httperr.Abort(c, http.StatusUnauthorized, code)
			return
		}

		c.Set(ContextUserID, actor.ProfileID)
		c.Set(ContextUserRole, actor.Role)

		c.Next()
	}
}

// OptionalAuth identifica al usuario si manda token, sin exigirlo.
// Un token inválido se ignora: la ruta sigue siendo pública.
func OptionalAuth(cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		if actor, code := bearerActor(cfg, c.GetHeader("Authorization")); code == "" {
			c.Set(ContextUserID, actor.ProfileID)
			c.Set(ContextUserRole, actor.Role)
		}
		c.Next()
	}
}

// RequireAdmin corta antes del handler; los casos de uso vuelven a validar.
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := auth.RequireAdmin(Actor(c)); err != nil {
			httperr.Abort(c, http.StatusForbidden, "admin_only")
			return
		}
		c.Next()
	}
}

// Actor arma el auth.Actor a partir del contexto; vacío si no hay sesión.
func Actor(c *gin.Context) auth.Actor {
	id, _ := c.Get(ContextUserID)
	role, _ := c.Get(ContextUserRole)

	uid, _ := id.(uint)
	r, _ := role.(auth.Role)
	return auth.Actor{ProfileID: uid, Role: r}
}
