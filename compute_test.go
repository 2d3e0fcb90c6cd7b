package dsa

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestComputePublicValue(t *testing.T) {
	assert := assert.New(t)
	key := testKey(t)

	stripped := packKey(key.P, key.Q, key.G, nil, key.X)
	assert.True(stripped.NeedsCompute())

	y, err := ComputePublicValue(stripped)
	assert.Nil(err)
	assert.Equal(key.Y, y, "derived value should match the generated one")
	assert.Nil(stripped.Y, "the record itself stays untouched")
}

func TestComputePublicValueAlreadyPresent(t *testing.T) {
	assert := assert.New(t)
	key := testKey(t)

	y, err := ComputePublicValue(key)
	assert.Nil(err)
	assert.Nil(y, "a present public value yields the no-new-value marker")
}

func TestComputePublicValueRejectsInsane(t *testing.T) {
	assert := assert.New(t)
	key := testKey(t)

	noExponent := packKey(key.P, key.Q, key.G, nil, nil)
	_, err := ComputePublicValue(noExponent)
	assert.ErrorIs(err, ErrInvalidPrivateKey)

	_, err = ComputePublicValue(nil)
	assert.ErrorIs(err, ErrInvalidPrivateKey)
}
