package dsa

// The Sane* methods gate key records structurally, by bit length
// alone. They are cheap, pure and safe on nil receivers. Arithmetic
// validity lives in VerifyParameters, VerifyPublicKey and
// VerifyPrivateKey.

// SaneParameters reports whether the record carries a plausible
// parameter set: p between 1024 and 3072 bits, q exactly 160, 224 or
// 256 bits, and g present and no wider than p.
func (k *DSAKey) SaneParameters() bool {
	if k == nil {
		return false
	}
	pbits := countBits(k.P)
	if pbits < MinModulusBits || pbits > MaxModulusBits {
		return false
	}
	qbits := countBits(k.Q)
	if qbits != 160 && qbits != 224 && qbits != 256 {
		return false
	}
	gbits := countBits(k.G)
	if gbits == 0 || gbits > pbits {
		return false
	}
	return true
}

// SanePublicKey reports whether the record passes SaneParameters and
// carries a public value no wider than p.
func (k *DSAKey) SanePublicKey() bool {
	if !k.SaneParameters() {
		return false
	}
	ybits := countBits(k.Y)
	return ybits != 0 && ybits <= countBits(k.P)
}

// SanePrivateKey reports whether the record passes SanePublicKey and
// carries a private exponent no wider than q.
func (k *DSAKey) SanePrivateKey() bool {
	if !k.SanePublicKey() {
		return false
	}
	xbits := countBits(k.X)
	return xbits != 0 && xbits <= countBits(k.Q)
}

// SaneCompute reports whether the record could derive its public
// value: sane parameters and exponent, with y either absent or no
// wider than p.
func (k *DSAKey) SaneCompute() bool {
	if !k.SaneParameters() {
		return false
	}
	if countBits(k.Y) > countBits(k.P) {
		return false
	}
	xbits := countBits(k.X)
	return xbits != 0 && xbits <= countBits(k.Q)
}

// NeedsCompute reports whether the record lacks its public value.
func (k *DSAKey) NeedsCompute() bool {
	return k != nil && countBits(k.Y) == 0
}
