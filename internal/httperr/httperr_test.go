package httperr

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriters_AbortTheChain(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := map[string]struct {
		write  func(*gin.Context)
		status int
		body   HTTPError
	}{
		"unauthenticated": {
			write:  Unauthenticated,
			status: http.StatusUnauthorized,
			body:   HTTPError{Code: "unauthenticated", Message: "Sign in to continue."},
		},
		"bad gateway": {
			write:  func(c *gin.Context) { BadGateway(c, "payment_lookup_failed", "Could not confirm payment.") },
			status: http.StatusBadGateway,
			body:   HTTPError{Code: "payment_lookup_failed", Message: "Could not confirm payment."},
		},
		"too large": {
			write:  func(c *gin.Context) { RequestTooLarge(c, "form_too_large", "too big") },
			status: http.StatusRequestEntityTooLarge,
			body:   HTTPError{Code: "form_too_large", Message: "too big"},
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			reached := false
			r := gin.New()
			r.GET("/", func(c *gin.Context) { tt.write(c) }, func(c *gin.Context) { reached = true })

			w := httptest.NewRecorder()
			r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))

			assert.Equal(t, tt.status, w.Code)
			assert.False(t, reached)

			var got HTTPError
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
			assert.Equal(t, tt.body, got)
		})
	}
}
