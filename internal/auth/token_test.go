package auth

import (
	"testing"
	"time"

	jwt "github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenRoundTrip(t *testing.T) {
	tm := NewTokenManager("secret", time.Hour)

	token, exp, err := tm.GenerateToken("a@x.com")
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now().Add(time.Hour), exp, 5*time.Second)

	claims, err := tm.ParseToken(token)
	require.NoError(t, err)
	assert.Equal(t, "a@x.com", claims.Email)

	session := claims.Session()
	assert.Equal(t, "a@x.com", session.Email)
	assert.Equal(t, exp.Unix(), session.ExpiresAt.Unix())
}

func TestGenerateTokenRequiresEmail(t *testing.T) {
	tm := NewTokenManager("secret", time.Hour)
	_, _, err := tm.GenerateToken("  ")
	assert.Error(t, err)
}

func TestDefaultTTLIsOneDay(t *testing.T) {
	assert.Equal(t, 24*time.Hour, NewTokenManager("secret", 0).TTL())
}

func TestParseTokenRejects(t *testing.T) {
	tm := NewTokenManager("secret", time.Hour)
	valid, _, err := tm.GenerateToken("a@x.com")
	require.NoError(t, err)

	expired := NewTokenManager("secret", time.Hour)
	expired.now = func() time.Time { return time.Now().Add(-2 * time.Hour) }
	stale, _, err := expired.GenerateToken("a@x.com")
	require.NoError(t, err)

	otherAlg := jwt.NewWithClaims(jwt.SigningMethodHS384, &Claims{
		Email:            "a@x.com",
		RegisteredClaims: jwt.RegisteredClaims{ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour))},
	})
	wrongAlg, err := otherAlg.SignedString([]byte("secret"))
	require.NoError(t, err)

	noExpiry := jwt.NewWithClaims(jwt.SigningMethodHS256, &Claims{Email: "a@x.com"})
	unbounded, err := noExpiry.SignedString([]byte("secret"))
	require.NoError(t, err)

	cases := map[string]struct {
		manager *TokenManager
		token   string
	}{
		"wrong secret": {manager: NewTokenManager("other", time.Hour), token: valid},
		"expired":      {manager: tm, token: stale},
		"malformed":    {manager: tm, token: "not.a.token"},
		"empty":        {manager: tm, token: ""},
		"wrong alg":    {manager: tm, token: wrongAlg},
		"no expiry":    {manager: tm, token: unbounded},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := tc.manager.ParseToken(tc.token)
			assert.Error(t, err)
		})
	}
}
