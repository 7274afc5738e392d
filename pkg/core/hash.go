package core

import (
	"crypto/sha256"
	"encoding/hex"
)

// HashBytes returns the hex-encoded SHA-256 digest of content.
// Version blobs are identified by this hash; two adjacent versions never
// share one.
func HashBytes(content []byte) string {
	sum := sha256.Sum256(content)
	return hex.EncodeToString(sum[:])
}

// EmptyHash is the hash of zero-length content, used when a note is
// created with an empty version 1.
func EmptyHash() string {
	return HashBytes(nil)
}
