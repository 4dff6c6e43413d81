package yaixm

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
)

// Digest returns a SHA-256 of the document's contents. Two documents have
// the same digest only if they decode to the same records, whatever their
// release information says.
func (d *Document) Digest() (string, error) {
	b, err := json.Marshal(d)
	if err != nil {
		return "", err
	}
	sum := sha256.Sum256(b)
	return hex.EncodeToString(sum[:]), nil
}
