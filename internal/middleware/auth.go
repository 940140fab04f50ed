package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/rental-marketplace/internal/httperr"
	"github.com/BruksfildServices01/rental-marketplace/internal/identity"
)

const ContextIdentity = "identity"

// Identify reads an optional bearer token. Requests without one continue
// anonymously; a malformed or invalid token is rejected.
func Identify(v *identity.Verifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.Next()
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			httperr.Unauthorized(c, "invalid_authorization_header", "Authorization header must be a bearer token.")
			return
		}

		ident, err := v.Parse(parts[1])
		if err != nil {
			httperr.Unauthorized(c, "invalid_token", "Invalid or expired token.")
			return
		}

		c.Set(ContextIdentity, ident)
		c.Next()
	}
}

// RequireIdentity rejects anonymous requests. It must run after Identify.
func RequireIdentity() gin.HandlerFunc {
	return func(c *gin.Context) {
		if IdentityFrom(c) == nil {
			httperr.Unauthenticated(c)
			return
		}
		c.Next()
	}
}

// IdentityFrom returns nil for anonymous requests.
func IdentityFrom(c *gin.Context) *identity.Identity {
	v, ok := c.Get(ContextIdentity)
	if !ok {
		return nil
	}
	ident, _ := v.(*identity.Identity)
	return ident
}
