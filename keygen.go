package dsa

import (
	"crypto/dsa"
	"math/big"

	"github.com/go-i2p/dsa/rand"
	"github.com/samber/oops"
)

// CreatePrivateKey generates a fresh keypair over the parameter set
// carried by params. Any record with sane parameters serves; public
// and private fields it may carry are ignored.
func CreatePrivateKey(params *DSAKey) (*DSAKey, error) {
	log.Debug("Generating DSA key pair")
	if !params.SaneParameters() {
		log.Error("Refusing key generation over insane parameters")
		return nil, ErrInvalidParameters
	}
	engineParams, err := keyToParameters(params)
	if err != nil {
		return nil, err
	}
	if err := rand.Poll(); err != nil {
		return nil, err
	}
	priv := &dsa.PrivateKey{}
	priv.Parameters = *engineParams
	if err := dsa.GenerateKey(priv, rand.Reader); err != nil {
		log.WithError(err).Error("Failed to generate DSA key pair")
		return nil, oops.Errorf("dsa key generation: %w", err)
	}
	key, err := privateKeyToKey(priv)
	if err != nil {
		return nil, err
	}
	log.Debug("DSA key pair generated successfully")
	return key, nil
}

// VerifyPublicKey checks a public key record: the parameters verify
// arithmetically and the public value is structurally sane.
func VerifyPublicKey(key *DSAKey) bool {
	if !VerifyParameters(key) {
		return false
	}
	return key.SanePublicKey()
}

// VerifyPrivateKey checks a full keypair: the public half verifies
// and g^x mod p reproduces the public value exactly.
func VerifyPrivateKey(key *DSAKey) bool {
	if !key.SanePrivateKey() {
		return false
	}
	if !VerifyPublicKey(key) {
		return false
	}
	priv, err := keyToPrivateKey(key)
	if err != nil {
		return false
	}
	// x < y for any well formed keypair
	if priv.X.CmpAbs(priv.Y) >= 0 {
		return false
	}
	y := new(big.Int).Exp(priv.G, priv.X, priv.P)
	return y.Cmp(priv.Y) == 0
}
