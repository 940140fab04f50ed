package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/rental-marketplace/internal/identity"
)

func newEngine(v *identity.Verifier) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(CORSMiddleware([]string{"http://app.test"}), Identify(v))

	r.GET("/open", func(c *gin.Context) {
		id := ""
		if ident := IdentityFrom(c); ident != nil {
			id = ident.ID
		}
		c.String(http.StatusOK, id)
	})
	r.GET("/closed", RequireIdentity(), func(c *gin.Context) {
		c.String(http.StatusOK, IdentityFrom(c).ID)
	})
	return r
}

func TestIdentify(t *testing.T) {
	v := identity.NewVerifier("secret")
	r := newEngine(v)

	token, err := v.Sign(identity.Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "user_1",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	})
	require.NoError(t, err)

	cases := []struct {
		name   string
		path   string
		header string
		status int
		body   string
	}{
		{"anonymous open", "/open", "", http.StatusOK, ""},
		{"anonymous closed", "/closed", "", http.StatusUnauthorized, ""},
		{"signed in", "/closed", "Bearer " + token, http.StatusOK, "user_1"},
		{"bad scheme", "/open", "Basic abc", http.StatusUnauthorized, ""},
		{"bad token", "/open", "Bearer nope", http.StatusUnauthorized, ""},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, tc.path, nil)
			if tc.header != "" {
				req.Header.Set("Authorization", tc.header)
			}
			r.ServeHTTP(w, req)

			assert.Equal(t, tc.status, w.Code)
			if tc.status == http.StatusOK {
				assert.Equal(t, tc.body, w.Body.String())
			}
		})
	}
}

func TestCORS(t *testing.T) {
	r := newEngine(identity.NewVerifier("secret"))

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodOptions, "/open", nil)
	req.Header.Set("Origin", "http://app.test")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "http://app.test", w.Header().Get("Access-Control-Allow-Origin"))

	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodGet, "/open", nil)
	req.Header.Set("Origin", "http://evil.test")
	r.ServeHTTP(w, req)

	assert.Empty(t, w.Header().Get("Access-Control-Allow-Origin"))
}
