package dsa

import "math/big"

// ComputePublicValue derives the public value g^x mod p for a record
// missing one. It returns the minimal encoding of the derived value,
// or nil without error when the record already carries a public
// value. The record itself is never modified.
func ComputePublicValue(key *DSAKey) ([]byte, error) {
	log.Debug("Computing DSA public value")
	if !key.SaneCompute() {
		log.Error("Invalid DSA key for public value computation")
		return nil, ErrInvalidPrivateKey
	}
	if !key.NeedsCompute() {
		log.Debug("DSA public value already present")
		return nil, nil
	}
	p := new(big.Int).SetBytes(key.P)
	g := new(big.Int).SetBytes(key.G)
	x := new(big.Int).SetBytes(key.X)
	y := new(big.Int).Exp(g, x, p)
	log.Debug("DSA public value computed successfully")
	return bigBytes(y), nil
}
