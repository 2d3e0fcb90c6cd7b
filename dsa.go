package dsa

import (
	"crypto/sha1"
	"crypto/sha256"

	"github.com/go-i2p/logger"
	"github.com/samber/oops"
)

var log = logger.GetGoI2PLogger()

// Modulus bounds accepted by every operation in this package. The
// subgroup order is constrained separately to 160, 224 or 256 bits.
const (
	MinModulusBits = 1024
	MaxModulusBits = 3072
)

// Digest length bounds accepted by Sign and Verify.
const (
	MinDigestBytes = 1
	MaxDigestBytes = 64
)

var (
	ErrInvalidParameters = oops.Errorf("invalid dsa parameters")
	ErrInvalidPublicKey  = oops.Errorf("invalid dsa public key")
	ErrInvalidPrivateKey = oops.Errorf("invalid dsa private key")
	ErrIncompleteKey     = oops.Errorf("dsa key missing required field")
	ErrBadDigestSize     = oops.Errorf("dsa digest must be 1 to 64 bytes")
)

// hashDigest hashes data with the digest matched to the key's subgroup
// width: SHA-1 for 160 bit q, SHA-224 for 224, SHA-256 for 256.
func hashDigest(k *DSAKey, data []byte) []byte {
	switch countBits(k.Q) {
	case 160:
		h := sha1.Sum(data)
		return h[:]
	case 224:
		h := sha256.Sum224(data)
		return h[:]
	default:
		h := sha256.Sum256(data)
		return h[:]
	}
}
