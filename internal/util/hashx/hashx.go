package hashx

import (
	"crypto/sha256"
	"encoding/hex"
)

// Sha256Hex is the hex sha256 of b, used to tag generated configs.
func Sha256Hex(b []byte) string {
	h := sha256.Sum256(b)
	return hex.EncodeToString(h[:])
}

// Short is the first 12 hex digits of Sha256Hex.
func Short(b []byte) string {
	return Sha256Hex(b)[:12]
}
