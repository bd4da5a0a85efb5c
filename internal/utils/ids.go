package utils

import "github.com/google/uuid"

// NewID returns a server-assigned identifier such as "msg_6f1c…".
func NewID(prefix string) string {
	return prefix + "_" + uuid.NewString()
}
