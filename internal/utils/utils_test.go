package utils

import (
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSlugify(t *testing.T) {
	assert.Equal(t, "wills-and-trusts", Slugify("  Wills & Trusts "))
	assert.Equal(t, "clients-notes", Slugify("Client's Notes"))
	assert.Equal(t, "a-b", Slugify("a//b"))
}

func TestSafeFileName(t *testing.T) {
	assert.Equal(t, "contract-notes.pdf", SafeFileName("../Contract Notes.PDF"))
	assert.Equal(t, "evidence.jpg", SafeFileName(`C:\Users\me\Evidence.jpg`))
	assert.Equal(t, "file", SafeFileName("...."))
	assert.Equal(t, "archive", SafeFileName("archive.verylongextension"))
}

func TestNewID(t *testing.T) {
	id := NewID("call")
	require.True(t, strings.HasPrefix(id, "call_"))
	_, err := uuid.Parse(strings.TrimPrefix(id, "call_"))
	assert.NoError(t, err)
	assert.NotEqual(t, id, NewID("call"))
}
