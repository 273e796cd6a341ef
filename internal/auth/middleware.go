package auth

import (
	"context"
	"log"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/mrlokans/madr/internal/apperrors"
	"github.com/mrlokans/madr/internal/entities"
)

// Context keys for account data
const (
	ContextKeyAccount   = "auth_account"
	ContextKeyAccountID = "auth_account_id"
)

const msgNotAuthenticated = "Not authenticated"

// TokenResolver maps a bearer token to the account it was issued to.
type TokenResolver interface {
	ResolveToken(ctx context.Context, token string) (*entities.Account, error)
}

// Middleware authenticates bearer tokens on protected routes.
type Middleware struct {
	resolver TokenResolver
}

// NewMiddleware creates a new authentication middleware.
func NewMiddleware(resolver TokenResolver) *Middleware {
	return &Middleware{resolver: resolver}
}

// RequireAuth rejects requests without a valid bearer token and stores the
// authenticated account in the Gin context.
func (m *Middleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		token, ok := bearerToken(c.GetHeader("Authorization"))
		if !ok {
			abortUnauthorized(c, msgNotAuthenticated)
			return
		}

		account, err := m.resolver.ResolveToken(c.Request.Context(), token)
		if err != nil {
			if apperrors.IsKind(err, apperrors.KindUnauthorized) {
				abortUnauthorized(c, apperrors.MessageOf(err))
				return
			}
			log.Printf("auth: failed to resolve token: %v", err)
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
				"detail": apperrors.MessageOf(err),
			})
			return
		}

		c.Set(ContextKeyAccount, account)
		c.Set(ContextKeyAccountID, account.ID)
		c.Next()
	}
}

// bearerToken extracts the token from "Bearer <token>".
func bearerToken(header string) (string, bool) {
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
		return "", false
	}
	token := strings.TrimSpace(parts[1])
	return token, token != ""
}

func abortUnauthorized(c *gin.Context, message string) {
	c.Header("WWW-Authenticate", "Bearer")
	c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"detail": message})
}

// CurrentAccount retrieves the authenticated account from the context.
// Returns nil outside RequireAuth.
func CurrentAccount(c *gin.Context) *entities.Account {
	if v, exists := c.Get(ContextKeyAccount); exists {
		if account, ok := v.(*entities.Account); ok {
			return account
		}
	}
	return nil
}

// GetAccountID retrieves the authenticated account's ID from the context.
// Returns 0 if not authenticated.
func GetAccountID(c *gin.Context) uint {
	if id, exists := c.Get(ContextKeyAccountID); exists {
		if accountID, ok := id.(uint); ok {
			return accountID
		}
	}
	return 0
}
