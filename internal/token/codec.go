package token

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"simpleblog/internal/models"
)

// DefaultTTL is the session lifetime embedded in every issued token.
const DefaultTTL = 24 * time.Hour

// skyColor is a fixed marker claim carried by every token.
const skyColor = "blue"

var ErrMissingSecret = errors.New("token: signing secret is empty")

// Codec issues and verifies signed session tokens. The token is the sole
// record of a session; nothing is stored server-side, so signature
// integrity and the embedded expiry are the only defenses against forgery
// and indefinite session lifetime.
type Codec struct {
	secret []byte
	ttl    time.Duration
}

// New creates a Codec with the given signing secret. An empty secret is a
// misconfiguration and returns ErrMissingSecret.
func New(secret []byte, ttl time.Duration) (*Codec, error) {
	if len(secret) == 0 {
		return nil, ErrMissingSecret
	}
	if ttl == 0 {
		ttl = DefaultTTL
	}
	return &Codec{secret: secret, ttl: ttl}, nil
}

// Issue signs a token carrying the user's identity and an expiry of
// now + ttl.
func (c *Codec) Issue(userID int64, username string) (string, error) {
	now := time.Now()
	claims := &models.Claims{
		UserID:   userID,
		Username: username,
		SkyColor: skyColor,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(c.ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(c.secret)
}

// Verify checks signature and expiry. Every missing, malformed, forged or
// expired input maps to (nil, false); valid tokens return the recovered
// claims. Only HS256 signatures are accepted.
func (c *Codec) Verify(tokenString string) (*models.Claims, bool) {
	if tokenString == "" {
		return nil, false
	}
	claims := &models.Claims{}
	tok, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return c.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil || !tok.Valid {
		return nil, false
	}
	return claims, true
}
