package dsa

import "math/big"

// signatureInts parses raw big-endian signature components into
// engine integers.
func signatureInts(r, s []byte) (*big.Int, *big.Int) {
	return new(big.Int).SetBytes(r), new(big.Int).SetBytes(s)
}

// signatureBytes encodes engine integers r and s left-padded with
// zeros to exactly size bytes each. Components from the engine never
// exceed the subgroup width; FillBytes panics if one somehow does.
func signatureBytes(rInt, sInt *big.Int, size int) (r, s []byte) {
	r = rInt.FillBytes(make([]byte, size))
	s = sInt.FillBytes(make([]byte, size))
	return
}
