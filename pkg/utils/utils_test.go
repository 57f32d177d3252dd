package utils

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOr(t *testing.T) {
	assert.Equal(t, "b", Or("", "b", "c"))
	assert.Equal(t, "", Or("", ""))
	assert.Equal(t, 3, Or(0, 3))
}

func TestSafelyRun(t *testing.T) {
	assert.NoError(t, SafelyRun(func() {}))

	err := SafelyRun(func() { panic(errors.New("boom")) })
	require.Error(t, err)
	assert.Contains(t, err.Error(), "boom")

	err = SafelyRun(func() { panic("text") })
	require.Error(t, err)
	assert.Contains(t, err.Error(), "text")
}

func TestJWTRoundTrip(t *testing.T) {
	token, err := SignJWT("secret", 7, time.Hour)
	require.NoError(t, err)

	claims, err := ParseJWT(token, "secret")
	require.NoError(t, err)
	assert.Equal(t, int64(7), claims.UID)

	_, err = ParseJWT(token, "other")
	assert.Error(t, err)
}

func TestJWTExpired(t *testing.T) {
	token, err := SignJWT("secret", 7, -time.Minute)
	require.NoError(t, err)

	_, err = ParseJWT(token, "secret")
	assert.Error(t, err)
}
