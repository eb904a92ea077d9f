package canon

import (
	"crypto/sha256"
	"encoding/hex"
)

// Domain prefixes for content digests.
// The version suffix leaves room for a future algorithm change.
const (
	DomainInput  = "bbcode2md/input/v1"
	DomainOutput = "bbcode2md/output/v1"
)

// Digest computes SHA256(domain || 0x00 || data) as lowercase hex.
// The null separator keeps domain and data boundaries unambiguous.
func Digest(domain string, data []byte) string {
	h := sha256.New()
	h.Write([]byte(domain))
	h.Write([]byte{0x00})
	h.Write(data)
	return hex.EncodeToString(h.Sum(nil))
}

// DigestString is Digest over the UTF-8 bytes of s.
// Unlike Marshal, the text is hashed exactly as given, without normalization.
func DigestString(domain, s string) string {
	return Digest(domain, []byte(s))
}
