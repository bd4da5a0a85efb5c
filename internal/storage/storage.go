package storage

import (
	"context"
	"io"
)

type Object struct {
	Key         string
	Size        int64
	ContentType string
}

// FileStore persists an uploaded object and returns the URL clients fetch it from.
type FileStore interface {
	Put(ctx context.Context, obj Object, body io.Reader) (string, error)
}

// URLStore discards the body and only derives the public path.
type URLStore struct {
	BasePath string
}

func NewURLStore(basePath string) *URLStore {
	if basePath == "" {
		basePath = "/uploads"
	}
	return &URLStore{BasePath: basePath}
}

func (s *URLStore) Put(ctx context.Context, obj Object, body io.Reader) (string, error) {
	if _, err := io.Copy(io.Discard, body); err != nil {
		return "", err
	}
	return s.BasePath + "/" + obj.Key, nil
}
