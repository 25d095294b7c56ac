package token

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"simpleblog/internal/models"
)

func TestNew_EmptySecret(t *testing.T) {
	t.Parallel()

	_, err := New(nil, time.Hour)
	require.ErrorIs(t, err, ErrMissingSecret)
}

func TestIssueVerify_RoundTrip(t *testing.T) {
	t.Parallel()

	codec, err := New([]byte("test-secret"), time.Hour)
	require.NoError(t, err)

	tok, err := codec.Issue(42, "alice")
	require.NoError(t, err)

	claims, ok := codec.Verify(tok)
	require.True(t, ok)
	assert.Equal(t, int64(42), claims.UserID)
	assert.Equal(t, "alice", claims.Username)
	assert.Equal(t, "blue", claims.SkyColor)
}

func TestVerify_Expired(t *testing.T) {
	t.Parallel()

	codec, err := New([]byte("test-secret"), -time.Minute)
	require.NoError(t, err)

	tok, err := codec.Issue(1, "bob")
	require.NoError(t, err)

	claims, ok := codec.Verify(tok)
	assert.False(t, ok)
	assert.Nil(t, claims)
}

func TestVerify_WrongSecret(t *testing.T) {
	t.Parallel()

	issuer, err := New([]byte("right-secret"), time.Hour)
	require.NoError(t, err)
	verifier, err := New([]byte("wrong-secret"), time.Hour)
	require.NoError(t, err)

	tok, err := issuer.Issue(1, "bob")
	require.NoError(t, err)

	_, ok := verifier.Verify(tok)
	assert.False(t, ok)
}

func TestVerify_WrongSigningMethod(t *testing.T) {
	t.Parallel()

	secret := []byte("test-secret")
	codec, err := New(secret, time.Hour)
	require.NoError(t, err)

	claims := &models.Claims{
		UserID:   1,
		Username: "bob",
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}
	tok, err := jwt.NewWithClaims(jwt.SigningMethodHS512, claims).SignedString(secret)
	require.NoError(t, err)

	_, ok := codec.Verify(tok)
	assert.False(t, ok)
}

func TestVerify_TotalOnGarbage(t *testing.T) {
	t.Parallel()

	codec, err := New([]byte("test-secret"), time.Hour)
	require.NoError(t, err)

	for _, input := range []string{
		"",
		"not.a.jwt",
		"garbage",
		"aaaa.bbbb.cccc",
		"eyJhbGciOiJIUzI1NiJ9..",
	} {
		claims, ok := codec.Verify(input)
		assert.False(t, ok, "input %q", input)
		assert.Nil(t, claims, "input %q", input)
	}
}
