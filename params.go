package dsa

import (
	"crypto/dsa"
	"math/big"

	"github.com/go-i2p/dsa/rand"
	"github.com/samber/oops"
	"github.com/sirupsen/logrus"
)

// sizesFor maps a requested modulus width to the nearest parameter
// size pair the engine supports, rounding up. The engine pairs 160
// bit subgroups with 1024 bit moduli and 256 bit subgroups with the
// larger moduli.
func sizesFor(bits int) dsa.ParameterSizes {
	switch {
	case bits <= 1024:
		return dsa.L1024N160
	case bits <= 2048:
		return dsa.L2048N256
	default:
		return dsa.L3072N256
	}
}

// GenerateParameters creates a fresh DSA parameter set with a modulus
// of at least the requested bit width. The width must lie within
// [MinModulusBits, MaxModulusBits] and is rounded up to a size the
// engine supports.
func GenerateParameters(bits int) (*DSAKey, error) {
	log.WithFields(logrus.Fields{
		"bits": bits,
	}).Debug("Generating DSA parameters")
	if bits < MinModulusBits || bits > MaxModulusBits {
		log.WithField("bits", bits).Error("Requested modulus width out of range")
		return nil, ErrInvalidParameters
	}
	if err := rand.Poll(); err != nil {
		return nil, err
	}
	var params dsa.Parameters
	if err := dsa.GenerateParameters(&params, rand.Reader, sizesFor(bits)); err != nil {
		log.WithError(err).Error("Failed to generate DSA parameters")
		return nil, oops.Errorf("dsa parameter generation: %w", err)
	}
	key, err := parametersToKey(&params)
	if err != nil {
		return nil, err
	}
	log.Debug("DSA parameters generated successfully")
	return key, nil
}

// VerifyParameters checks the arithmetic of a parameter set on top of
// the structural tier: q must divide p-1 and g must generate a
// subgroup of order greater than one, so g^((p-1)/q) mod p != 1.
func VerifyParameters(key *DSAKey) bool {
	if !key.SaneParameters() {
		return false
	}
	params, err := keyToParameters(key)
	if err != nil {
		return false
	}
	pm1 := new(big.Int).Sub(params.P, big.NewInt(1))
	div, rem := new(big.Int), new(big.Int)
	div.DivMod(pm1, params.Q, rem)
	if rem.Sign() != 0 {
		log.Debug("DSA parameter check failed: q does not divide p-1")
		return false
	}
	if new(big.Int).Exp(params.G, div, params.P).Cmp(big.NewInt(1)) == 0 {
		log.Debug("DSA parameter check failed: generator has trivial order")
		return false
	}
	return true
}
