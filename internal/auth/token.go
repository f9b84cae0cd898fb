package auth

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"gothampost/internal/models"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// MinSecretLength is the minimum HMAC signing key length. Shorter keys are
// rejected when the issuer is constructed, not per request.
const MinSecretLength = 32

// DefaultTokenTTL is how long issued tokens stay valid.
const DefaultTokenTTL = 2 * time.Hour

// ErrInvalidToken is returned when a token fails signature, claim, or
// expiry validation. Callers should treat it as a 401.
var ErrInvalidToken = errors.New("invalid or expired token")

// Identity is the authenticated identity carried by a validated token.
type Identity struct {
	UserID uint
	Role   models.UserRole
	JTI    string
}

// TokenIssuer mints and validates HS256 bearer tokens. It is constructed
// once at startup from immutable configuration and is safe for concurrent use.
type TokenIssuer struct {
	secret   []byte
	issuer   string
	audience string
	ttl      time.Duration
}

// NewTokenIssuer validates the signing key and returns a TokenIssuer.
func NewTokenIssuer(secret, issuer, audience string, ttl time.Duration) (*TokenIssuer, error) {
	if len(secret) < MinSecretLength {
		return nil, fmt.Errorf("JWT secret must be at least %d characters, got %d", MinSecretLength, len(secret))
	}
	if ttl <= 0 {
		ttl = DefaultTokenTTL
	}
	return &TokenIssuer{
		secret:   []byte(secret),
		issuer:   issuer,
		audience: audience,
		ttl:      ttl,
	}, nil
}

// IssueToken creates a signed token carrying the user id as a string subject
// and the role by name.
func (t *TokenIssuer) IssueToken(userID uint, role models.UserRole) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"sub":  strconv.FormatUint(uint64(userID), 10), // Subject (user ID as string)
		"role": string(role),                           // Role name, the only trusted role source
		"iss":  t.issuer,
		"aud":  t.audience,
		"exp":  now.Add(t.ttl).Unix(),
		"iat":  now.Unix(),
		"nbf":  now.Unix(),
		"jti":  generateJTI(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(t.secret)
}

// ValidateToken parses and verifies a bearer token and returns the identity
// it carries. Any failure (bad signature, wrong issuer/audience, expired,
// malformed claims, unknown role) yields ErrInvalidToken.
func (t *TokenIssuer) ValidateToken(tokenString string) (Identity, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", token.Header["alg"])
		}
		return t.secret, nil
	},
		jwt.WithIssuer(t.issuer),
		jwt.WithAudience(t.audience),
		jwt.WithExpirationRequired(),
	)
	if err != nil || !token.Valid {
		return Identity{}, ErrInvalidToken
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return Identity{}, ErrInvalidToken
	}

	sub, ok := claims["sub"].(string)
	if !ok {
		return Identity{}, ErrInvalidToken
	}
	userID, err := strconv.ParseUint(sub, 10, 32)
	if err != nil || userID == 0 {
		return Identity{}, ErrInvalidToken
	}

	roleName, ok := claims["role"].(string)
	if !ok {
		return Identity{}, ErrInvalidToken
	}
	role, ok := models.ParseRole(roleName)
	if !ok {
		return Identity{}, ErrInvalidToken
	}

	jti, _ := claims["jti"].(string)

	return Identity{
		UserID: uint(userID),
		Role:   role,
		JTI:    jti,
	}, nil
}

// TTL returns the configured token lifetime.
func (t *TokenIssuer) TTL() time.Duration {
	return t.ttl
}

// generateJTI creates a unique JWT ID so individual tokens can be revoked.
func generateJTI() string {
	return fmt.Sprintf("%d-%s", time.Now().Unix(), uuid.New().String()[:8])
}
