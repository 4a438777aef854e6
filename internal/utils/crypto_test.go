package utils

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testKey = bytes.Repeat([]byte{0x42}, 32)

func TestNormalizeNationalID(t *testing.T) {
	assert.Equal(t, "3520212345671", NormalizeNationalID("35202-1234567-1"))
	assert.Equal(t, "3520212345671", NormalizeNationalID(" 35202 1234567 1 "))
	assert.Equal(t, "AB123", NormalizeNationalID("ab-123"))
}

func TestHashNationalID(t *testing.T) {
	a := HashNationalID("3520212345671", "secret")
	b := HashNationalID("3520212345671", "secret")
	c := HashNationalID("3520212345671", "other")

	assert.Equal(t, a, b)
	assert.NotEqual(t, a, c)
	assert.Len(t, a, 64)
}

func TestEncryptDecrypt(t *testing.T) {
	encrypted, err := Encrypt("3520212345671", testKey)
	require.NoError(t, err)
	assert.NotContains(t, encrypted, "3520212345671")

	again, err := Encrypt("3520212345671", testKey)
	require.NoError(t, err)
	assert.NotEqual(t, encrypted, again, "nonce must differ per call")

	plain, err := Decrypt(encrypted, testKey)
	require.NoError(t, err)
	assert.Equal(t, "3520212345671", plain)
}

func TestEncryptDecrypt_Errors(t *testing.T) {
	_, err := Encrypt("", testKey)
	assert.Error(t, err)

	_, err = Encrypt("data", []byte("short"))
	assert.Error(t, err)

	_, err = Decrypt("", testKey)
	assert.Error(t, err)

	_, err = Decrypt("not-hex", testKey)
	assert.Error(t, err)

	_, err = Decrypt("abcd", testKey)
	assert.Error(t, err)

	encrypted, err := Encrypt("data", testKey)
	require.NoError(t, err)
	_, err = Decrypt(encrypted, bytes.Repeat([]byte{0x01}, 32))
	assert.Error(t, err, "wrong key must fail authentication")
}

func TestToken(t *testing.T) {
	now := time.Now()
	token, err := GenerateToken("admin-1", "admin", "secret", time.Hour, now)
	require.NoError(t, err)

	claims, err := ParseToken(token, "secret")
	require.NoError(t, err)
	assert.Equal(t, "admin-1", claims.Subject)
	assert.Equal(t, "admin", claims.Username)

	_, err = ParseToken(token, "wrong")
	assert.Error(t, err)

	expired, err := GenerateToken("admin-1", "admin", "secret", time.Hour, now.Add(-2*time.Hour))
	require.NoError(t, err)
	_, err = ParseToken(expired, "secret")
	assert.Error(t, err)
}
