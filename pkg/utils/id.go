package utils

import gonanoid "github.com/matoous/go-nanoid/v2"

const characters = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"

// GenerateID returns a short alphanumeric identifier for persisted records.
func GenerateID() (string, error) {
	return gonanoid.Generate(characters, 12)
}

// MustGenerateID is GenerateID for call sites where the entropy source
// failing is not a recoverable situation.
func MustGenerateID() string {
	return gonanoid.MustGenerate(characters, 12)
}
