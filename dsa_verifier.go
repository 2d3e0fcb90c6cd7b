package dsa

import (
	"github.com/go-i2p/dsa/types"
	"github.com/sirupsen/logrus"
)

// DSAVerifier checks packed r||s signatures against one public key
// record.
type DSAVerifier struct {
	k *DSAKey
}

// verify data with a dsa public key
func (v *DSAVerifier) Verify(data, sig []byte) (err error) {
	log.WithFields(logrus.Fields{
		"data_length": len(data),
		"sig_length":  len(sig),
	}).Debug("Verifying DSA signature")
	err = v.VerifyHash(hashDigest(v.k, data), sig)
	return
}

// verify hash of data with a dsa public key
func (v *DSAVerifier) VerifyHash(h, sig []byte) (err error) {
	log.WithFields(logrus.Fields{
		"hash_length": len(h),
		"sig_length":  len(sig),
	}).Debug("Verifying DSA signature hash")
	size := subprimeSize(v.k)
	if len(sig) != 2*size {
		log.Error("Bad DSA signature size")
		err = types.ErrBadSignatureSize
	} else if Verify(h, sig[:size], sig[size:], v.k) {
		log.Debug("DSA signature verified successfully")
	} else {
		log.Warn("Invalid DSA signature")
		err = types.ErrInvalidSignature
	}
	return
}
