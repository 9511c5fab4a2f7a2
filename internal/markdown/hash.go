package markdown

import (
	"crypto/sha256"
	"encoding/hex"
)

// HashContent returns the hex-encoded SHA-256 digest of the fragment's UTF-8
// bytes. The digest carries no timestamps or iteration-order artefacts, so
// identical content always yields the identical hash.
func HashContent(fragment string) string {
	sum := sha256.Sum256([]byte(fragment))
	return hex.EncodeToString(sum[:])
}
