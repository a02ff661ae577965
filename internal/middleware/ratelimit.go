package middleware

import (
	"context"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/shelter-adoption/internal/httperr"
)

// Limiter decide si la clave puede seguir (ver infra/cache).
type Limiter interface {
	Allow(ctx context.Context, key string) (bool, error)
}

// RateLimit limita por IP y prefijo de ruta; si el limitador falla se deja pasar.
func RateLimit(limiter Limiter, prefix string) gin.HandlerFunc {
	return func(c *gin.Context) {
		key := prefix + ":" + c.ClientIP()

		ok, err := limiter.Allow(c.Request.Context(), key)
		if err != nil {
			log.Printf("ratelimit key=%s error=%v", key, err)
			c.Next()
			return
		}
		if !ok {
			httperr.Abort(c, http.StatusTooManyRequests, "rate_limited")
			return
		}

		c.Next()
	}
}
