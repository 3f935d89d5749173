package wafcdk

import (
	"crypto/rand"
	"encoding/hex"
)

// SecretHeaderName is the request header the distribution adds to every
// origin request. Callers wire its value into their own origin-verification
// logic (e.g. a Lambda authorizer) to reject traffic that bypasses
// CloudFront.
const SecretHeaderName = "X-Origin-Verify"

const secretHeaderNumBytes = 16

// NewSecretHeaderValue generates a fresh origin-verification token: 16 bytes
// from a cryptographically strong source, hex-encoded to 32 lowercase
// characters. Every call produces a distinct value.
func NewSecretHeaderValue() *string {
	buf := make([]byte, secretHeaderNumBytes)
	if _, err := rand.Read(buf); err != nil {
		panic("wafcdk: failed to read random bytes: " + err.Error())
	}

	val := hex.EncodeToString(buf)

	return &val
}
