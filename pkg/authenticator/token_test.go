package authenticator

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

type testClaims struct {
	ID string `mapstructure:"id"`
}

func TestTokenEngine(t *testing.T) {
	engine := NewTokenEngine("secret")
	token, err := engine.Generate(time.Minute, testClaims{ID: "user1"})
	require.NoError(t, err)

	var claims testClaims
	err = engine.Verify(token, &claims)
	require.NoError(t, err)
	require.Equal(t, "user1", claims.ID)
}

func TestTokenEngineExpiration(t *testing.T) {
	engine := NewTokenEngine("secret")
	token, err := engine.Generate(-time.Second, testClaims{ID: "user1"})
	require.NoError(t, err)

	var claims testClaims
	err = engine.Verify(token, &claims)
	require.Error(t, err)
}

func TestTokenEngineWrongSecret(t *testing.T) {
	engine := NewTokenEngine("secret")
	token, err := engine.Generate(time.Minute, testClaims{ID: "user1"})
	require.NoError(t, err)

	var claims testClaims
	err = NewTokenEngine("another-secret").Verify(token, &claims)
	require.Error(t, err)
}

func TestTokenEngineExpiry(t *testing.T) {
	engine := NewTokenEngine("secret")
	token, err := engine.Generate(time.Hour, testClaims{ID: "user1"})
	require.NoError(t, err)

	expiry, err := engine.Expiry(token)
	require.NoError(t, err)
	require.WithinDuration(t, time.Now().Add(time.Hour), expiry, 5*time.Second)

	_, err = engine.Expiry("not-a-token")
	require.Error(t, err)
}
