package keystore

import (
	"encoding/hex"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/go-i2p/dsa"
	"github.com/go-i2p/dsa/types"
	"github.com/go-i2p/logger"
	"github.com/samber/oops"
)

// DSAKeyStore persists one DSA private key record as a traditional
// DER file named private-<id>.key under its directory.
type DSAKeyStore struct {
	dir  string
	name string
	key  *dsa.DSAKey
}

var _ KeyStore = &DSAKeyStore{}

// NewDSAKeyStore wraps an existing private key record without
// touching the filesystem.
func NewDSAKeyStore(dir, name string, key *dsa.DSAKey) *DSAKeyStore {
	log.WithFields(logger.Fields{
		"at":   "NewDSAKeyStore",
		"dir":  dir,
		"name": name,
	}).Debug("Creating new DSA keystore")
	return &DSAKeyStore{
		dir:  dir,
		name: name,
		key:  key,
	}
}

// NewDSAKeyStoreFromDisk loads the named key from dir. When no key
// file exists yet it generates a fresh keypair over new parameters of
// the given modulus width; StoreKeys persists it.
func NewDSAKeyStoreFromDisk(dir, name string, bits int) (*DSAKeyStore, error) {
	if name == "" {
		return nil, oops.Errorf("keystore: name required to load from disk")
	}
	ks := &DSAKeyStore{dir: dir, name: name}
	fullPath := filepath.Join(dir, ks.filename())
	if _, err := os.Stat(fullPath); os.IsNotExist(err) {
		log.WithFields(logger.Fields{
			"at":   "NewDSAKeyStoreFromDisk",
			"path": fullPath,
			"bits": bits,
		}).Debug("No stored key, generating a new one")
		key, err := generateNewKey(bits)
		if err != nil {
			return nil, err
		}
		ks.key = key
	} else {
		keyData, err := os.ReadFile(fullPath)
		if err != nil {
			return nil, err
		}
		key, err := loadExistingKey(keyData)
		if err != nil {
			return nil, err
		}
		log.WithFields(logger.Fields{
			"at":   "NewDSAKeyStoreFromDisk",
			"path": fullPath,
		}).Debug("Loaded stored key")
		ks.key = key
	}
	return ks, nil
}

func generateNewKey(bits int) (*dsa.DSAKey, error) {
	params, err := dsa.GenerateParameters(bits)
	if err != nil {
		return nil, err
	}
	return dsa.CreatePrivateKey(params)
}

func loadExistingKey(keyData []byte) (*dsa.DSAKey, error) {
	key, err := dsa.ImportPrivateKey(keyData)
	if err != nil {
		return nil, err
	}
	if !dsa.VerifyPrivateKey(key) {
		return nil, oops.Errorf("keystore: stored key failed verification")
	}
	return key, nil
}

// Key returns the stored private key record.
func (ks *DSAKeyStore) Key() *dsa.DSAKey {
	return ks.key
}

func (ks *DSAKeyStore) KeyID() string {
	if ks.name == "" {
		log.WithField("at", "KeyID").Debug("Deriving KeyID from public value")
		public, err := ks.key.Public()
		if err != nil {
			log.WithError(err).Warn("Failed to get public key, generating fallback ID")
			// Random enough to avoid file collisions
			nowTime := time.Now().UnixNano()
			fallbackID := fmt.Sprintf("unknown-%d-%d", os.Getpid(), int(nowTime%1000000))
			log.WithField("fallback_id", fallbackID).Debug("Generated fallback KeyID")
			return fallbackID
		}
		b := public.Bytes()
		if len(b) > 10 {
			b = b[:10]
		}
		return hex.EncodeToString(b)
	}
	log.WithField("key_id", ks.name).Debug("Using configured KeyID")
	return ks.name
}

func (ks *DSAKeyStore) GetKeys() (types.SigningPublicKey, types.SigningPrivateKey, error) {
	log.WithField("at", "GetKeys").Debug("Retrieving DSA key pair")
	public, err := ks.key.Public()
	if err != nil {
		log.WithError(err).Error("Failed to derive public key from private key")
		return nil, nil, err
	}
	log.WithField("at", "GetKeys").Debug("Successfully retrieved key pair")
	return public, ks.key, nil
}

func (ks *DSAKeyStore) StoreKeys() error {
	log.WithFields(logger.Fields{
		"at":  "StoreKeys",
		"dir": ks.dir,
	}).Debug("Storing DSA key to filesystem")

	// make sure the directory exists
	if _, err := os.Stat(ks.dir); os.IsNotExist(err) {
		log.WithField("dir", ks.dir).Debug("Creating keystore directory")
		// Use 0700 to protect private key material from other users
		if err := os.MkdirAll(ks.dir, 0o700); err != nil {
			log.WithError(err).WithField("dir", ks.dir).Error("Failed to create keystore directory")
			return err
		}
	}
	der, err := dsa.ExportPrivateKey(ks.key)
	if err != nil {
		log.WithError(err).Error("Failed to encode private key")
		return err
	}
	fullPath := filepath.Join(ks.dir, ks.filename())
	log.WithField("path", fullPath).Debug("Writing private key to file")
	if err := os.WriteFile(fullPath, der, 0o600); err != nil {
		log.WithError(err).WithField("path", fullPath).Error("Failed to write private key file")
		return err
	}
	log.WithField("path", fullPath).Info("Successfully stored private key")
	return nil
}

func (ks *DSAKeyStore) filename() string {
	return fmt.Sprintf("private-%s.key", ks.KeyID())
}
