package utils

import (
	"crypto/sha1"
	"encoding/hex"
)

// CreateChecksum fingerprints a sequence so two trials can be compared
// without keeping their inputs around.
func CreateChecksum(sequence []int64) string {
	hasher := sha1.New()
	hasher.Write(Int64ToByteArray(sequence))
	return hex.EncodeToString(hasher.Sum(nil))
}
