package dsa

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKeyCodecRoundTrip(t *testing.T) {
	assert := assert.New(t)
	key := testKey(t)

	priv, err := keyToPrivateKey(key)
	assert.Nil(err)

	back, err := privateKeyToKey(priv)
	assert.Nil(err)
	assert.Equal(key.P, back.P)
	assert.Equal(key.Q, back.Q)
	assert.Equal(key.G, back.G)
	assert.Equal(key.Y, back.Y)
	assert.Equal(key.X, back.X)

	params, err := keyToParameters(key)
	assert.Nil(err)
	back, err = parametersToKey(params)
	assert.Nil(err)
	assert.Equal(key.P, back.P)
	assert.Equal(key.Q, back.Q)
	assert.Equal(key.G, back.G)
	assert.Nil(back.Y)
	assert.Nil(back.X)

	pub, err := keyToPublicKey(key)
	assert.Nil(err)
	back, err = publicKeyToKey(pub)
	assert.Nil(err)
	assert.Equal(key.P, back.P)
	assert.Equal(key.Y, back.Y)
	assert.Nil(back.X)
}

func TestKeyCodecModes(t *testing.T) {
	assert := assert.New(t)
	key := testKey(t)

	params := packKey(key.P, key.Q, key.G, nil, nil)
	_, err := keyToParameters(params)
	assert.Nil(err, "parameter record should convert in parameter mode")
	_, err = keyToPublicKey(params)
	assert.ErrorIs(err, ErrIncompleteKey, "public mode requires y")
	_, err = keyToPrivateKey(params)
	assert.ErrorIs(err, ErrIncompleteKey, "private mode requires x")

	public := packKey(key.P, key.Q, key.G, key.Y, nil)
	_, err = keyToPublicKey(public)
	assert.Nil(err, "public record should convert in public mode")
	_, err = keyToPrivateKey(public)
	assert.ErrorIs(err, ErrIncompleteKey, "private mode requires x")
}

func TestKeyCodecMissingParameters(t *testing.T) {
	assert := assert.New(t)

	_, err := keyToDSA(nil, modeParameters)
	assert.ErrorIs(err, ErrIncompleteKey)
	_, err = keyToDSA(&DSAKey{P: []byte{1}, G: []byte{2}}, modeParameters)
	assert.ErrorIs(err, ErrIncompleteKey, "q is required in every mode")
}

func TestPackKeyArena(t *testing.T) {
	assert := assert.New(t)

	p := []byte{1, 2, 3}
	q := []byte{4, 5}
	g := []byte{6}
	k := packKey(p, q, g, nil, nil)

	assert.Equal(p, k.P)
	assert.Equal(q, k.Q)
	assert.Equal(g, k.G)
	assert.Nil(k.Y)
	assert.Nil(k.X)

	// mutating the source buffers must not reach the packed record
	p[0] = 0xaa
	assert.Equal(byte(1), k.P[0])

	// appending through one field must not bleed into the next
	_ = append(k.P, 0xbb)
	assert.Equal(byte(4), k.Q[0])
}

func TestKeyFromDSARejectsMissingValues(t *testing.T) {
	assert := assert.New(t)
	key := testKey(t)

	priv, err := keyToPrivateKey(key)
	assert.Nil(err)

	pub := priv.PublicKey
	pub.Y = nil
	_, err = publicKeyToKey(&pub)
	assert.ErrorIs(err, ErrIncompleteKey, "nil y cannot pack in public mode")
}

func TestBigBytes(t *testing.T) {
	assert := assert.New(t)

	assert.Equal([]byte{0}, bigBytes(new(big.Int)), "zero still encodes one byte")
	assert.Equal([]byte{0x01, 0x00}, bigBytes(big.NewInt(256)))
}
