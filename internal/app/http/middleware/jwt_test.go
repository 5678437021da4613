package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"prompt-vault/internal/infra/tokens"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAuthRouter(svc *tokens.Service) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(AuthMiddleware(svc))
	r.GET("/protected", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"user_id": c.GetString(CtxUserID),
			"email":   c.GetString(CtxEmail),
		})
	})
	return r
}

func TestAuthMiddlewareMissingHeader(t *testing.T) {
	r := newAuthRouter(tokens.New("test-secret", time.Hour))

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusUnauthorized, resp.Code)
}

func TestAuthMiddlewareMalformedHeader(t *testing.T) {
	r := newAuthRouter(tokens.New("test-secret", time.Hour))

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Token abc")
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusUnauthorized, resp.Code)
}

func TestAuthMiddlewareGarbageToken(t *testing.T) {
	r := newAuthRouter(tokens.New("test-secret", time.Hour))

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer not-a-real-token")
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusUnauthorized, resp.Code)
}

func TestAuthMiddlewareExpiredToken(t *testing.T) {
	issuer := tokens.New("test-secret", time.Hour)
	r := newAuthRouter(issuer)

	expired := tokens.New("test-secret", -time.Hour)
	token, err := expired.Issue(tokens.Payload{UserID: "1", Email: "a@b.com"})
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusUnauthorized, resp.Code)
}

func TestAuthMiddlewareValidToken(t *testing.T) {
	svc := tokens.New("test-secret", time.Hour)
	r := newAuthRouter(svc)

	token, err := svc.Issue(tokens.Payload{UserID: "42", Email: "a@b.com"})
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusOK, resp.Code)
	assert.Contains(t, resp.Body.String(), `"user_id":"42"`)
	assert.Contains(t, resp.Body.String(), `"email":"a@b.com"`)
}
