package dsa

// countBits returns the number of significant bits in the big-endian
// buffer buf, skipping leading zero bytes. An empty or all-zero buffer
// counts zero bits, which the validity tiers read as an absent field.
func countBits(buf []byte) int {
	i := 0
	for i < len(buf) && buf[i] == 0 {
		i++
	}
	bits := (len(buf) - i) * 8
	if bits == 0 {
		return 0
	}
	bits -= 8
	for oct := buf[i]; oct != 0; oct >>= 1 {
		bits++
	}
	return bits
}

// subprimeSize returns the byte width of a signature component under
// the key's subgroup, ceil(bits(q)/8).
func subprimeSize(k *DSAKey) int {
	return (countBits(k.Q) + 7) / 8
}
