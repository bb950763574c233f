// FILE: internal/pkg/identity/identity.go
package identity

import (
	"crypto/md5"
	"encoding/hex"
)

const placeholder = "unknown"

// DeriveUserKey turns two client-supplied request fields into a stable
// pseudonymous key (128-bit digest rendered as hex). Both inputs are
// self-reported and spoofable, so the key is a rate-limiting convenience
// only and must never be treated as proof of identity.
//
// Missing inputs fall back to a fixed placeholder, so the function is total.
func DeriveUserKey(userAgent, ipAddress string) string {
	if userAgent == "" {
		userAgent = placeholder
	}
	if ipAddress == "" {
		ipAddress = placeholder
	}
	sum := md5.Sum([]byte(userAgent + ipAddress))
	return hex.EncodeToString(sum[:])
}
