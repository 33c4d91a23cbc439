package utils

import (
	"github.com/google/uuid"
	gonanoid "github.com/matoous/go-nanoid/v2"
)

const idAlphabet = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz"

// GenerateUUID returns the opaque identifier assigned to stored records.
// Record ids are never reused or mutated after creation.
func GenerateUUID() string {
	return uuid.NewString()
}

// GenerateRequestID returns a short id used to correlate access-log lines.
func GenerateRequestID() string {
	id, err := gonanoid.Generate(idAlphabet, 12)
	if err != nil {
		return uuid.NewString()
	}
	return id
}
