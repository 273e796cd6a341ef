package auth

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mrlokans/madr/internal/apperrors"
	"github.com/mrlokans/madr/internal/entities"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type stubResolver struct {
	accounts map[string]*entities.Account
	err      error
}

func (s stubResolver) ResolveToken(_ context.Context, token string) (*entities.Account, error) {
	if s.err != nil {
		return nil, s.err
	}
	if account, ok := s.accounts[token]; ok {
		return account, nil
	}
	return nil, ErrInvalidCredential
}

func setupProtectedRouter(resolver TokenResolver) *gin.Engine {
	router := gin.New()
	router.GET("/protected", NewMiddleware(resolver).RequireAuth(), func(c *gin.Context) {
		account := CurrentAccount(c)
		c.JSON(http.StatusOK, gin.H{"id": GetAccountID(c), "email": account.Email})
	})
	return router
}

func TestMiddleware_RequireAuth(t *testing.T) {
	resolver := stubResolver{accounts: map[string]*entities.Account{
		"good-token": {ID: 7, Username: "alice", Email: "alice@example.com"},
	}}
	router := setupProtectedRouter(resolver)

	tests := []struct {
		name       string
		header     string
		wantStatus int
		wantBody   string
	}{
		{"valid token", "Bearer good-token", http.StatusOK, `{"id":7,"email":"alice@example.com"}`},
		{"scheme is case insensitive", "bearer good-token", http.StatusOK, `{"id":7,"email":"alice@example.com"}`},
		{"missing header", "", http.StatusUnauthorized, `{"detail":"Not authenticated"}`},
		{"wrong scheme", "Basic good-token", http.StatusUnauthorized, `{"detail":"Not authenticated"}`},
		{"empty token", "Bearer ", http.StatusUnauthorized, `{"detail":"Not authenticated"}`},
		{"unknown token", "Bearer bad-token", http.StatusUnauthorized, `{"detail":"Could not validate credentials"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/protected", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			assert.Equal(t, tt.wantStatus, w.Code)
			assert.JSONEq(t, tt.wantBody, w.Body.String())
			if tt.wantStatus == http.StatusUnauthorized {
				assert.Equal(t, "Bearer", w.Header().Get("WWW-Authenticate"))
			}
		})
	}
}

func TestMiddleware_RequireAuth_InternalError(t *testing.T) {
	router := setupProtectedRouter(stubResolver{err: apperrors.Internal(errors.New("db down"))})

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer whatever")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusInternalServerError, w.Code)
	assert.NotContains(t, w.Body.String(), "db down")
}

func TestCurrentAccount_Unauthenticated(t *testing.T) {
	c, _ := gin.CreateTestContext(httptest.NewRecorder())

	assert.Nil(t, CurrentAccount(c))
	assert.Zero(t, GetAccountID(c))
}
