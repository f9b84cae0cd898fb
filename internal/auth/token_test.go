package auth

import (
	"testing"
	"time"

	"gothampost/internal/models"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "0123456789abcdef0123456789abcdef"

func newTestIssuer(t *testing.T) *TokenIssuer {
	t.Helper()
	issuer, err := NewTokenIssuer(testSecret, "gothampost-api", "gothampost-client", time.Hour)
	require.NoError(t, err)
	return issuer
}

func TestNewTokenIssuerRejectsShortSecret(t *testing.T) {
	_, err := NewTokenIssuer("too-short", "iss", "aud", time.Hour)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "at least 32")
}

func TestNewTokenIssuerDefaultsTTL(t *testing.T) {
	issuer, err := NewTokenIssuer(testSecret, "iss", "aud", 0)
	require.NoError(t, err)
	assert.Equal(t, DefaultTokenTTL, issuer.TTL())
}

func TestIssueAndValidateRoundtrip(t *testing.T) {
	issuer := newTestIssuer(t)

	token, err := issuer.IssueToken(42, models.RoleRegisteredUser)
	require.NoError(t, err)

	identity, err := issuer.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, uint(42), identity.UserID)
	assert.Equal(t, models.RoleRegisteredUser, identity.Role)
	assert.NotEmpty(t, identity.JTI)
}

func TestValidateTokenWrongSecret(t *testing.T) {
	issuer := newTestIssuer(t)
	other, err := NewTokenIssuer("ffffffffffffffffffffffffffffffff", "gothampost-api", "gothampost-client", time.Hour)
	require.NoError(t, err)

	token, err := other.IssueToken(1, models.RoleAdmin)
	require.NoError(t, err)

	_, err = issuer.ValidateToken(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestValidateTokenWrongIssuerOrAudience(t *testing.T) {
	issuer := newTestIssuer(t)

	foreign, err := NewTokenIssuer(testSecret, "other-api", "gothampost-client", time.Hour)
	require.NoError(t, err)
	token, err := foreign.IssueToken(1, models.RoleReader)
	require.NoError(t, err)
	_, err = issuer.ValidateToken(token)
	assert.ErrorIs(t, err, ErrInvalidToken)

	foreign, err = NewTokenIssuer(testSecret, "gothampost-api", "other-client", time.Hour)
	require.NoError(t, err)
	token, err = foreign.IssueToken(1, models.RoleReader)
	require.NoError(t, err)
	_, err = issuer.ValidateToken(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

// signClaims builds a token with arbitrary claims using the test secret so
// malformed and expired tokens can be crafted directly.
func signClaims(t *testing.T, claims jwt.MapClaims) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(testSecret))
	require.NoError(t, err)
	return signed
}

func TestValidateTokenExpired(t *testing.T) {
	issuer := newTestIssuer(t)

	now := time.Now()
	token := signClaims(t, jwt.MapClaims{
		"sub":  "42",
		"role": string(models.RoleRegisteredUser),
		"iss":  "gothampost-api",
		"aud":  "gothampost-client",
		"exp":  now.Add(-time.Minute).Unix(),
		"iat":  now.Add(-2 * time.Hour).Unix(),
		"nbf":  now.Add(-2 * time.Hour).Unix(),
		"jti":  "expired-1",
	})

	_, err := issuer.ValidateToken(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestValidateTokenMissingExpiry(t *testing.T) {
	issuer := newTestIssuer(t)

	token := signClaims(t, jwt.MapClaims{
		"sub":  "42",
		"role": string(models.RoleRegisteredUser),
		"iss":  "gothampost-api",
		"aud":  "gothampost-client",
	})

	_, err := issuer.ValidateToken(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestValidateTokenBadClaims(t *testing.T) {
	issuer := newTestIssuer(t)
	exp := time.Now().Add(time.Hour).Unix()

	tests := []struct {
		name   string
		claims jwt.MapClaims
	}{
		{"zero user id", jwt.MapClaims{
			"sub": "0", "role": "Reader",
			"iss": "gothampost-api", "aud": "gothampost-client", "exp": exp,
		}},
		{"non-numeric subject", jwt.MapClaims{
			"sub": "abc", "role": "Reader",
			"iss": "gothampost-api", "aud": "gothampost-client", "exp": exp,
		}},
		{"unknown role", jwt.MapClaims{
			"sub": "42", "role": "Superuser",
			"iss": "gothampost-api", "aud": "gothampost-client", "exp": exp,
		}},
		{"missing role", jwt.MapClaims{
			"sub": "42",
			"iss": "gothampost-api", "aud": "gothampost-client", "exp": exp,
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := issuer.ValidateToken(signClaims(t, tt.claims))
			assert.ErrorIs(t, err, ErrInvalidToken)
		})
	}
}

func TestValidateTokenGarbage(t *testing.T) {
	issuer := newTestIssuer(t)
	_, err := issuer.ValidateToken("not.a.token")
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestPasswordHashing(t *testing.T) {
	hash, err := HashPassword("secret123")
	require.NoError(t, err)
	assert.NotEqual(t, "secret123", hash)

	assert.True(t, VerifyPassword("secret123", hash))
	assert.False(t, VerifyPassword("wrong", hash))
}
