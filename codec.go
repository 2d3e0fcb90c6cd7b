package dsa

import (
	"crypto/dsa"
	"math/big"
)

// keyMode selects how deep a codec conversion reaches into a record.
type keyMode int

const (
	// modeParameters converts p, q and g only.
	modeParameters keyMode = iota
	// modePublic converts the parameters plus the public value y.
	modePublic
	// modePrivate converts the full record including the exponent x.
	modePrivate
)

// bigBytes returns the minimal big-endian encoding of v, one zero
// byte when v is zero.
func bigBytes(v *big.Int) []byte {
	b := v.Bytes()
	if len(b) == 0 {
		return []byte{0}
	}
	return b
}

// keyToDSA converts a flat record into engine form. The returned
// private key is populated only as deep as mode requires; callers
// take its Parameters or PublicKey component for the narrower modes.
// A required field that is absent fails the conversion.
func keyToDSA(k *DSAKey, mode keyMode) (*dsa.PrivateKey, error) {
	if k == nil || len(k.P) == 0 || len(k.Q) == 0 || len(k.G) == 0 {
		return nil, ErrIncompleteKey
	}
	priv := &dsa.PrivateKey{}
	priv.P = new(big.Int).SetBytes(k.P)
	priv.Q = new(big.Int).SetBytes(k.Q)
	priv.G = new(big.Int).SetBytes(k.G)
	if mode >= modePublic {
		if len(k.Y) == 0 {
			return nil, ErrIncompleteKey
		}
		priv.Y = new(big.Int).SetBytes(k.Y)
	}
	if mode >= modePrivate {
		if len(k.X) == 0 {
			return nil, ErrIncompleteKey
		}
		priv.X = new(big.Int).SetBytes(k.X)
	}
	return priv, nil
}

// keyFromDSA packs engine values back into a flat record. Only fields
// the mode requires are encoded; a required engine value that is nil
// fails the conversion.
func keyFromDSA(priv *dsa.PrivateKey, mode keyMode) (*DSAKey, error) {
	if priv == nil || priv.P == nil || priv.Q == nil || priv.G == nil {
		return nil, ErrIncompleteKey
	}
	var y, x []byte
	if mode >= modePublic {
		if priv.Y == nil {
			return nil, ErrIncompleteKey
		}
		y = bigBytes(priv.Y)
	}
	if mode >= modePrivate {
		if priv.X == nil {
			return nil, ErrIncompleteKey
		}
		x = bigBytes(priv.X)
	}
	return packKey(bigBytes(priv.P), bigBytes(priv.Q), bigBytes(priv.G), y, x), nil
}

func keyToParameters(k *DSAKey) (*dsa.Parameters, error) {
	priv, err := keyToDSA(k, modeParameters)
	if err != nil {
		return nil, err
	}
	return &priv.Parameters, nil
}

func keyToPublicKey(k *DSAKey) (*dsa.PublicKey, error) {
	priv, err := keyToDSA(k, modePublic)
	if err != nil {
		return nil, err
	}
	return &priv.PublicKey, nil
}

func keyToPrivateKey(k *DSAKey) (*dsa.PrivateKey, error) {
	return keyToDSA(k, modePrivate)
}

func parametersToKey(params *dsa.Parameters) (*DSAKey, error) {
	if params == nil {
		return nil, ErrIncompleteKey
	}
	priv := &dsa.PrivateKey{}
	priv.Parameters = *params
	return keyFromDSA(priv, modeParameters)
}

func publicKeyToKey(pub *dsa.PublicKey) (*DSAKey, error) {
	if pub == nil {
		return nil, ErrIncompleteKey
	}
	priv := &dsa.PrivateKey{}
	priv.PublicKey = *pub
	return keyFromDSA(priv, modePublic)
}

func privateKeyToKey(priv *dsa.PrivateKey) (*DSAKey, error) {
	return keyFromDSA(priv, modePrivate)
}
