package httperr

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
)

type HTTPError struct {
	Code    string `json:"error_code"`
	Message string `json:"message"`
}

func Write(c *gin.Context, status int, code, message string) {
	c.JSON(status, HTTPError{
		Code:    code,
		Message: message,
	})
}

// Abort corta la cadena de middlewares con el mensaje del código.
func Abort(c *gin.Context, status int, code string) {
	c.AbortWithStatusJSON(status, HTTPError{
		Code:    code,
		Message: messageFor(code),
	})
}

func Internal(c *gin.Context, code, message string) {
	Write(c, http.StatusInternalServerError, code, message)
}

// StatusFor traduce el Kind a status HTTP.
func StatusFor(kind Kind) int {
	switch kind {
	case KindValidation:
		return http.StatusBadRequest
	case KindNotFound:
		return http.StatusNotFound
	case KindConflict:
		return http.StatusConflict
	case KindUnauthenticated:
		return http.StatusUnauthorized
	case KindForbidden:
		return http.StatusForbidden
	case KindUpstream:
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

// FromError escribe la respuesta para cualquier error devuelto por un caso de uso.
func FromError(c *gin.Context, err error) {
	var be BusinessError
	if !errors.As(err, &be) {
		log.Printf("request path=%s error=%v", c.FullPath(), err)
		Internal(c, "internal_error", messageFor("internal_error"))
		return
	}

	if be.Kind == KindUpstream {
		log.Printf("request path=%s upstream=%s error=%v", c.FullPath(), be.Code, be.Err)
	}

	Write(c, StatusFor(be.Kind), be.Code, messageFor(be.Code))
}
