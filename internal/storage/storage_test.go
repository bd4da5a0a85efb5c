package storage

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestURLStorePut(t *testing.T) {
	store := NewURLStore("")
	url, err := store.Put(context.Background(), Object{Key: "file_1_notes.pdf", Size: 5}, strings.NewReader("hello"))
	require.NoError(t, err)
	assert.Equal(t, "/uploads/file_1_notes.pdf", url)
}

func TestNewMinIOStoreDefaultsExpiry(t *testing.T) {
	store, err := NewMinIOStore(MinIOConfig{
		Endpoint:  "localhost:9000",
		AccessKey: "minio",
		SecretKey: "minio123",
		Bucket:    "uploads",
	})
	require.NoError(t, err)
	assert.Equal(t, "uploads", store.bucket)
	assert.Equal(t, 24*60*60, int(store.expiry.Seconds()))
}
