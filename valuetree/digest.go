package valuetree

import (
	"encoding/hex"

	"github.com/zeebo/blake3"
)

// Digest computes the BLAKE3-256 content hash of an encoded tree. Two runs
// over identical input must report the same digest on any machine.
func Digest(data []byte) [32]byte {
	return blake3.Sum256(data)
}

// DigestHex is Digest rendered as lowercase hex.
func DigestHex(data []byte) string {
	d := Digest(data)
	return hex.EncodeToString(d[:])
}
