package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewManagerWithoutSecret(t *testing.T) {
	assert.Nil(t, NewManager("", time.Hour, "dhaara"))
}

func TestAccessTokenRoundTrip(t *testing.T) {
	m := NewManager("test-secret", time.Hour, "dhaara")
	token, err := m.NewAccessToken("usr_1", "client@example.com", "CLIENT")
	require.NoError(t, err)

	claims, err := m.Parse(token)
	require.NoError(t, err)
	assert.Equal(t, "usr_1", claims.Subject)
	assert.Equal(t, "client@example.com", claims.Email)
	assert.Equal(t, "CLIENT", claims.Role)
}

func TestParseRejectsExpiredToken(t *testing.T) {
	m := NewManager("test-secret", time.Minute, "dhaara")
	issued := time.Now().Add(-time.Hour)
	m.now = func() time.Time { return issued }
	token, err := m.NewAccessToken("usr_1", "client@example.com", "CLIENT")
	require.NoError(t, err)

	m.now = nil
	_, err = m.Parse(token)
	assert.Error(t, err)
}

func TestParseRejectsOtherSecret(t *testing.T) {
	token, err := NewManager("secret-a", time.Hour, "dhaara").NewAccessToken("usr_1", "a@example.com", "CLIENT")
	require.NoError(t, err)

	_, err = NewManager("secret-b", time.Hour, "dhaara").Parse(token)
	assert.Error(t, err)
}

func TestPasswordHashing(t *testing.T) {
	hash, err := HashPassword("correct horse")
	require.NoError(t, err)
	assert.NoError(t, ComparePassword(hash, "correct horse"))
	assert.Error(t, ComparePassword(hash, "wrong horse"))

	_, err = HashPassword("")
	assert.Error(t, err)
}
