package dsa

import (
	"crypto/sha1"
	"testing"

	"github.com/go-i2p/dsa/types"
	"github.com/stretchr/testify/assert"
)

func TestSignerVerifierRoundTrip(t *testing.T) {
	assert := assert.New(t)
	key := testKey(t)

	signer, err := key.NewSigner()
	assert.Nil(err)
	verifier, err := key.NewVerifier()
	assert.Nil(err)

	data := []byte("the quick brown fox")
	sig, err := signer.Sign(data)
	assert.Nil(err)
	assert.Equal(key.SignatureSize(), len(sig), "packed signature is r||s at fixed width")
	assert.Nil(verifier.Verify(data, sig), "fresh signature should verify")

	sig[len(sig)-1] ^= 0x01
	assert.ErrorIs(verifier.Verify(data, sig), types.ErrInvalidSignature)

	assert.ErrorIs(verifier.VerifyHash(make([]byte, 20), sig[:39]), types.ErrBadSignatureSize)
}

func TestSignHashVerifyHash(t *testing.T) {
	assert := assert.New(t)
	key := testKey(t)

	signer, err := key.NewSigner()
	assert.Nil(err)
	verifier, err := key.NewVerifier()
	assert.Nil(err)

	h := sha1.Sum([]byte("jumps over the lazy dog"))
	sig, err := signer.SignHash(h[:])
	assert.Nil(err)
	assert.Nil(verifier.VerifyHash(h[:], sig))

	h[0] ^= 0x01
	assert.ErrorIs(verifier.VerifyHash(h[:], sig), types.ErrInvalidSignature)
}

func TestNewSignerRejectsPublicRecord(t *testing.T) {
	assert := assert.New(t)
	key := testKey(t)

	public := packKey(key.P, key.Q, key.G, key.Y, nil)
	_, err := public.NewSigner()
	assert.ErrorIs(err, ErrInvalidPrivateKey)

	_, err = public.NewVerifier()
	assert.Nil(err, "a public record still verifies")
}

func TestNewVerifierRejectsParameterRecord(t *testing.T) {
	assert := assert.New(t)
	key := testKey(t)

	params := packKey(key.P, key.Q, key.G, nil, nil)
	_, err := params.NewVerifier()
	assert.ErrorIs(err, ErrInvalidPublicKey)
}

func TestPublicStripsExponent(t *testing.T) {
	assert := assert.New(t)
	key := testKey(t)

	pub, err := key.Public()
	assert.Nil(err)

	record, ok := pub.(*DSAKey)
	assert.True(ok)
	assert.Equal(key.P, record.P)
	assert.Equal(key.Q, record.Q)
	assert.Equal(key.G, record.G)
	assert.Equal(key.Y, record.Y)
	assert.Nil(record.X, "the exponent must not survive")
}

func TestPublicDerivesMissingValue(t *testing.T) {
	assert := assert.New(t)
	key := testKey(t)

	stripped := packKey(key.P, key.Q, key.G, nil, key.X)
	pub, err := stripped.Public()
	assert.Nil(err)

	record := pub.(*DSAKey)
	assert.Equal(key.Y, record.Y, "public value is recomputed from g^x mod p")
}

func TestGenerateFreshKeypair(t *testing.T) {
	assert := assert.New(t)
	key := testKey(t)

	fresh, err := key.Generate()
	assert.Nil(err)

	record := fresh.(*DSAKey)
	assert.True(VerifyPrivateKey(record))
	assert.Equal(key.P, record.P, "parameters are reused")
	assert.NotEqual(key.X, record.X, "the exponent must be fresh")
}

func TestLenAndBytes(t *testing.T) {
	assert := assert.New(t)

	k := &DSAKey{
		P: []byte{1, 2},
		Q: []byte{3},
		G: []byte{4},
		Y: []byte{5, 6},
		X: []byte{7},
	}
	assert.Equal(7, k.Len())
	assert.Equal([]byte{1, 2, 3, 4, 5, 6, 7}, k.Bytes())

	// Bytes hands out a copy
	b := k.Bytes()
	b[0] = 0xee
	assert.Equal(byte(1), k.P[0])
}
