package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestIssuer(t *testing.T, secret, algorithm string) *TokenIssuer {
	t.Helper()
	issuer, err := NewTokenIssuer(secret, algorithm, 30*time.Minute)
	require.NoError(t, err)
	return issuer
}

func TestTokenIssuer_RoundTrip(t *testing.T) {
	for _, alg := range []string{"HS256", "HS384", "HS512"} {
		t.Run(alg, func(t *testing.T) {
			issuer := newTestIssuer(t, "super-secret", alg)

			token, err := issuer.Issue("alice@example.com")
			require.NoError(t, err)
			assert.Equal(t, "bearer", token.TokenType)
			assert.NotEmpty(t, token.AccessToken)

			subject, err := issuer.Subject(token.AccessToken)
			require.NoError(t, err)
			assert.Equal(t, "alice@example.com", subject)
		})
	}
}

func TestNewTokenIssuer_Validation(t *testing.T) {
	_, err := NewTokenIssuer("secret", "RS256", time.Minute)
	assert.ErrorIs(t, err, ErrUnsupportedAlgorithm)

	_, err = NewTokenIssuer("", "HS256", time.Minute)
	assert.Error(t, err)
}

func TestTokenIssuer_Expiry(t *testing.T) {
	issuer := newTestIssuer(t, "secret", "HS256")
	issuedAt := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	issuer.now = func() time.Time { return issuedAt }

	token, err := issuer.Issue("alice@example.com")
	require.NoError(t, err)

	issuer.now = func() time.Time { return issuedAt.Add(29 * time.Minute) }
	_, err = issuer.Subject(token.AccessToken)
	assert.NoError(t, err)

	issuer.now = func() time.Time { return issuedAt.Add(31 * time.Minute) }
	_, err = issuer.Subject(token.AccessToken)
	assert.ErrorIs(t, err, ErrTokenExpired)
}

func TestTokenIssuer_Rejects(t *testing.T) {
	issuer := newTestIssuer(t, "right-secret", "HS256")

	otherSecret := newTestIssuer(t, "wrong-secret", "HS256")
	wrongSig, err := otherSecret.Issue("alice@example.com")
	require.NoError(t, err)

	otherAlg := newTestIssuer(t, "right-secret", "HS512")
	wrongAlg, err := otherAlg.Issue("alice@example.com")
	require.NoError(t, err)

	noSubject, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	}).SignedString([]byte("right-secret"))
	require.NoError(t, err)

	noExpiry, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject: "alice@example.com",
	}).SignedString([]byte("right-secret"))
	require.NoError(t, err)

	unsigned, err := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.RegisteredClaims{
		Subject:   "alice@example.com",
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	}).SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	tests := []struct {
		name    string
		token   string
		wantErr error
	}{
		{"malformed", "not.a.jwt", ErrInvalidToken},
		{"empty", "", ErrInvalidToken},
		{"wrong secret", wrongSig.AccessToken, ErrInvalidToken},
		{"wrong algorithm", wrongAlg.AccessToken, ErrInvalidToken},
		{"unsigned", unsigned, ErrInvalidToken},
		{"no expiry", noExpiry, ErrInvalidToken},
		{"no subject", noSubject, ErrMissingSubject},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := issuer.Subject(tt.token)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}
