// Package dsa implements FIPS 186-3 DSA over flat byte-encoded key
// records.
//
// A DSAKey carries the minimal big-endian encodings of p, q, g, y and
// x in one record; which fields are populated decides whether it acts
// as a parameter set, a public key or a private key. Records convert
// to and from the crypto/dsa engine types at operation boundaries, and
// signatures travel as two fixed-width components of ceil(bits(q)/8)
// bytes each.
//
// Validity is layered: the Sane* methods gate structure by bit length
// alone, while VerifyParameters, VerifyPublicKey and VerifyPrivateKey
// add the arithmetic checks. Generation operations poll the entropy
// source before committing to the engine.
package dsa
