package vault

import (
	"bytes"
	"encoding/base64"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testKey(b byte) string {
	return base64.StdEncoding.EncodeToString(bytes.Repeat([]byte{b}, 32))
}

func TestNewSealer_EmptyKey(t *testing.T) {
	s, err := NewSealer("")
	require.NoError(t, err)
	assert.Nil(t, s)
	assert.False(t, s.Enabled())
}

func TestNewSealer_InvalidKey(t *testing.T) {
	_, err := NewSealer("not base64!")
	assert.ErrorIs(t, err, ErrInvalidKey)

	_, err = NewSealer(base64.StdEncoding.EncodeToString([]byte("short")))
	assert.ErrorIs(t, err, ErrInvalidKey)
}

func TestSealer_RoundTrip(t *testing.T) {
	s, err := NewSealer(testKey(7))
	require.NoError(t, err)
	require.True(t, s.Enabled())

	sealed, err := s.Seal("postgres://user:pass@db/app")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(sealed, sealedPrefix))
	assert.NotContains(t, sealed, "pass@db")

	plain, err := s.Open(sealed)
	require.NoError(t, err)
	assert.Equal(t, "postgres://user:pass@db/app", plain)
}

func TestSealer_NonceIsRandom(t *testing.T) {
	s, err := NewSealer(testKey(1))
	require.NoError(t, err)

	a, err := s.Seal("same")
	require.NoError(t, err)
	b, err := s.Seal("same")
	require.NoError(t, err)
	assert.NotEqual(t, a, b)
}

func TestSealer_PlaintextPassthrough(t *testing.T) {
	s, err := NewSealer(testKey(2))
	require.NoError(t, err)

	plain, err := s.Open("legacy-plaintext")
	require.NoError(t, err)
	assert.Equal(t, "legacy-plaintext", plain)

	var none *Sealer
	stored, err := none.Seal("value")
	require.NoError(t, err)
	assert.Equal(t, "value", stored)
}

func TestSealer_OpenWithoutKey(t *testing.T) {
	s, err := NewSealer(testKey(3))
	require.NoError(t, err)
	sealed, err := s.Seal("value")
	require.NoError(t, err)

	var none *Sealer
	_, err = none.Open(sealed)
	assert.ErrorIs(t, err, ErrNoKey)
}

func TestSealer_WrongKey(t *testing.T) {
	a, err := NewSealer(testKey(4))
	require.NoError(t, err)
	b, err := NewSealer(testKey(5))
	require.NoError(t, err)

	sealed, err := a.Seal("value")
	require.NoError(t, err)

	_, err = b.Open(sealed)
	assert.ErrorIs(t, err, ErrCorrupted)

	_, err = a.Open(sealedPrefix + "!!!")
	assert.ErrorIs(t, err, ErrCorrupted)
}
