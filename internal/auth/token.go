package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const TokenType = "bearer"

var (
	ErrInvalidToken         = errors.New("invalid token")
	ErrTokenExpired         = errors.New("token expired")
	ErrMissingSubject       = errors.New("token has no subject")
	ErrUnsupportedAlgorithm = errors.New("unsupported signing algorithm")
)

var signingMethods = map[string]*jwt.SigningMethodHMAC{
	"HS256": jwt.SigningMethodHS256,
	"HS384": jwt.SigningMethodHS384,
	"HS512": jwt.SigningMethodHS512,
}

// Token is the body returned by the login and refresh endpoints.
type Token struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

// TokenIssuer signs and verifies access tokens whose subject is an account email.
type TokenIssuer struct {
	secret []byte
	method *jwt.SigningMethodHMAC
	expiry time.Duration
	now    func() time.Time
}

// NewTokenIssuer creates an issuer for the given HMAC algorithm (HS256, HS384
// or HS512).
func NewTokenIssuer(secret, algorithm string, expiry time.Duration) (*TokenIssuer, error) {
	method, ok := signingMethods[algorithm]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedAlgorithm, algorithm)
	}
	if secret == "" {
		return nil, errors.New("token secret is required")
	}

	return &TokenIssuer{
		secret: []byte(secret),
		method: method,
		expiry: expiry,
		now:    time.Now,
	}, nil
}

// Issue returns a signed token for subject expiring after the configured duration.
func (ti *TokenIssuer) Issue(subject string) (Token, error) {
	now := ti.now()
	token := jwt.NewWithClaims(ti.method, jwt.RegisteredClaims{
		Subject:   subject,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(ti.expiry)),
	})

	signed, err := token.SignedString(ti.secret)
	if err != nil {
		return Token{}, fmt.Errorf("failed to sign token: %w", err)
	}

	return Token{AccessToken: signed, TokenType: TokenType}, nil
}

// Subject verifies signature, algorithm and expiry and returns the subject claim.
func (ti *TokenIssuer) Subject(tokenString string) (string, error) {
	claims := &jwt.RegisteredClaims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (any, error) {
		return ti.secret, nil
	},
		jwt.WithValidMethods([]string{ti.method.Alg()}),
		jwt.WithTimeFunc(ti.now),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return "", ErrTokenExpired
		}
		return "", fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}
	if !token.Valid {
		return "", ErrInvalidToken
	}
	if claims.Subject == "" {
		return "", ErrMissingSubject
	}

	return claims.Subject, nil
}
