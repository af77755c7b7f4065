package hash

import (
	"crypto/sha256"
	"encoding/hex"
)

// SHA256Hex returns the hex-encoded SHA256 hash of the input string.
func SHA256Hex(input string) string {
	h := sha256.Sum256([]byte(input))
	return hex.EncodeToString(h[:])
}

// Prefix returns the first prefixLen characters of SHA256(input).
func Prefix(input string, prefixLen int) string {
	full := SHA256Hex(input)
	if prefixLen > len(full) {
		return full
	}
	return full[:prefixLen]
}

// KeyFingerprint identifies a secret (API key) in logs and Redis keys without
// revealing it.
func KeyFingerprint(secret string) string {
	return Prefix(secret, 16)
}

// HashIP hashes an IP address with a salt for logging and rate-limit buckets.
func HashIP(ip, salt string) string {
	return Prefix(salt+ip, 12)
}
