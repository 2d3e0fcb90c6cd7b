package dsa

import (
	"github.com/go-i2p/dsa/types"
)

// DSAKey is a flat DSA key record. Each field holds the minimal
// big-endian encoding of its value; a zero-length field is absent.
// A parameter set populates P, Q and G, a public key adds Y, and a
// private key adds X. Records produced by this package are never
// mutated after construction and may be shared across goroutines.
type DSAKey struct {
	P []byte
	Q []byte
	G []byte
	Y []byte
	X []byte
}

var (
	_ types.SigningPublicKey  = &DSAKey{}
	_ types.SigningPrivateKey = &DSAKey{}
)

// packKey copies the field encodings into one backing buffer and
// returns a record whose fields alias disjoint regions of it. The
// subslices are capacity-capped so an append through one field can
// never reach into the next.
func packKey(p, q, g, y, x []byte) *DSAKey {
	arena := make([]byte, len(p)+len(q)+len(g)+len(y)+len(x))
	off := 0
	take := func(src []byte) []byte {
		if len(src) == 0 {
			return nil
		}
		n := copy(arena[off:], src)
		out := arena[off : off+n : off+n]
		off += n
		return out
	}
	k := &DSAKey{}
	k.P = take(p)
	k.Q = take(q)
	k.G = take(g)
	k.Y = take(y)
	k.X = take(x)
	return k
}

// Len returns the total length of the packed field encodings.
func (k *DSAKey) Len() int {
	return len(k.P) + len(k.Q) + len(k.G) + len(k.Y) + len(k.X)
}

// Bytes returns the field encodings back to back in p, q, g, y, x
// order. The result is a fresh copy.
func (k *DSAKey) Bytes() []byte {
	out := make([]byte, 0, k.Len())
	out = append(out, k.P...)
	out = append(out, k.Q...)
	out = append(out, k.G...)
	out = append(out, k.Y...)
	out = append(out, k.X...)
	return out
}

// SignatureSize returns the byte length of a packed r||s signature
// under this record's parameters.
func (k *DSAKey) SignatureSize() int {
	return 2 * subprimeSize(k)
}

// Public strips the private exponent from the record, deriving the
// public value first when the record lacks one.
func (k *DSAKey) Public() (types.SigningPublicKey, error) {
	if k == nil {
		return nil, ErrIncompleteKey
	}
	y := k.Y
	if k.NeedsCompute() {
		derived, err := ComputePublicValue(k)
		if err != nil {
			return nil, err
		}
		y = derived
	}
	pub := packKey(k.P, k.Q, k.G, y, nil)
	if !pub.SanePublicKey() {
		log.Error("Invalid DSA public key after stripping private exponent")
		return nil, ErrInvalidPublicKey
	}
	log.Debug("DSA public key derived successfully")
	return pub, nil
}

// Generate creates a fresh keypair over this record's parameters.
func (k *DSAKey) Generate() (types.SigningPrivateKey, error) {
	log.Debug("Generating new DSA private key")
	return CreatePrivateKey(k)
}

// create a new dsa signer bound to this private key
func (k *DSAKey) NewSigner() (types.Signer, error) {
	log.Debug("Creating new DSA signer")
	if !k.SanePrivateKey() {
		log.Error("Invalid DSA private key format")
		return nil, ErrInvalidPrivateKey
	}
	return &DSASigner{k: k}, nil
}

// create a new dsa verifier bound to this record's public half
func (k *DSAKey) NewVerifier() (types.Verifier, error) {
	log.Debug("Creating new DSA verifier")
	if !k.SanePublicKey() {
		log.Error("Invalid DSA public key format")
		return nil, ErrInvalidPublicKey
	}
	return &DSAVerifier{k: k}, nil
}
