package dsa

import (
	"crypto/dsa"

	"github.com/go-i2p/dsa/rand"
	"github.com/samber/oops"
	"github.com/sirupsen/logrus"
)

// truncateDigest clips a digest to the subgroup width so the engine
// sees at most bits(q) leading bits, per FIPS 186-3 section 4.6.
func truncateDigest(digest []byte, size int) []byte {
	if len(digest) > size {
		return digest[:size]
	}
	return digest
}

// Sign produces a DSA signature over digest with the given private
// key. The digest must be 1 to 64 bytes and is truncated to the
// subgroup width before signing. Both returned components are exactly
// ceil(bits(q)/8) bytes, left-padded with zeros.
func Sign(digest []byte, key *DSAKey) (r, s []byte, err error) {
	log.WithFields(logrus.Fields{
		"digest_length": len(digest),
	}).Debug("Signing digest with DSA")
	if len(digest) < MinDigestBytes || len(digest) > MaxDigestBytes {
		return nil, nil, ErrBadDigestSize
	}
	if !key.SanePrivateKey() {
		return nil, nil, ErrInvalidPrivateKey
	}
	priv, err := keyToPrivateKey(key)
	if err != nil {
		return nil, nil, err
	}
	if err := rand.Poll(); err != nil {
		return nil, nil, err
	}
	size := subprimeSize(key)
	rInt, sInt, err := dsa.Sign(rand.Reader, priv, truncateDigest(digest, size))
	if err != nil {
		log.WithError(err).Error("Failed to create DSA signature")
		return nil, nil, oops.Errorf("dsa sign: %w", err)
	}
	r, s = signatureBytes(rInt, sInt, size)
	log.WithField("component_length", size).Debug("DSA signature created successfully")
	return r, s, nil
}

// Verify checks a DSA signature over digest against the given public
// key. The digest must be 1 to 64 bytes and both components must be
// exactly ceil(bits(q)/8) bytes. Any malformed input verifies false.
func Verify(digest, r, s []byte, key *DSAKey) bool {
	if key == nil {
		return false
	}
	log.WithFields(logrus.Fields{
		"digest_length": len(digest),
		"r_length":      len(r),
		"s_length":      len(s),
	}).Debug("Verifying DSA signature")
	size := subprimeSize(key)
	if len(digest) < MinDigestBytes || len(digest) > MaxDigestBytes {
		return false
	}
	if len(r) != size || len(s) != size {
		return false
	}
	if !key.SanePublicKey() {
		return false
	}
	pub, err := keyToPublicKey(key)
	if err != nil {
		return false
	}
	rInt, sInt := signatureInts(r, s)
	return dsa.Verify(pub, truncateDigest(digest, size), rInt, sInt)
}
