package httperr

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// HTTPError is the body of every failed request.
type HTTPError struct {
	Code    string `json:"error_code"`
	Message string `json:"message"`
}

// Write answers the request and stops the handler chain, so middleware can
// reject a request with a single call.
func Write(c *gin.Context, status int, code, message string) {
	c.AbortWithStatusJSON(status, HTTPError{
		Code:    code,
		Message: message,
	})
}

func BadRequest(c *gin.Context, code, message string) {
	Write(c, http.StatusBadRequest, code, message)
}

func NotFound(c *gin.Context, code, message string) {
	Write(c, http.StatusNotFound, code, message)
}

func RequestTooLarge(c *gin.Context, code, message string) {
	Write(c, http.StatusRequestEntityTooLarge, code, message)
}

func Internal(c *gin.Context, code, message string) {
	Write(c, http.StatusInternalServerError, code, message)
}

// BadGateway reports a failure of an upstream provider.
func BadGateway(c *gin.Context, code, message string) {
	Write(c, http.StatusBadGateway, code, message)
}

func Unauthorized(c *gin.Context, code, message string) {
	Write(c, http.StatusUnauthorized, code, message)
}

// Unauthenticated is the answer for a request that needs a signed-in caller
// and has none.
func Unauthenticated(c *gin.Context) {
	Unauthorized(c, "unauthenticated", "Sign in to continue.")
}
