package keystore

import (
	"github.com/go-i2p/dsa/types"
	"github.com/go-i2p/logger"
)

var log = logger.GetGoI2PLogger()

// KeyStore is an interface for storing and retrieving signing keys
type KeyStore interface {
	KeyID() string
	// GetKeys returns the public and private keys
	GetKeys() (publicKey types.SigningPublicKey, privateKey types.SigningPrivateKey, err error)
	// StoreKeys stores the keys
	StoreKeys() error
}
