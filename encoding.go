package dsa

import (
	"encoding/asn1"
	"math/big"

	"github.com/samber/oops"
	"github.com/sirupsen/logrus"
)

// ASN.1 layouts matching the OpenSSL traditional DSA encodings, as
// produced by i2d_DSAPrivateKey and i2d_DSAPublicKey.
type dsaPrivateKeyASN1 struct {
	Version int
	P       *big.Int
	Q       *big.Int
	G       *big.Int
	Y       *big.Int
	X       *big.Int
}

type dsaPublicKeyASN1 struct {
	Y *big.Int
	P *big.Int
	Q *big.Int
	G *big.Int
}

// ExportPrivateKey encodes a private key record as traditional DER:
// SEQUENCE { version, p, q, g, y, x }.
func ExportPrivateKey(key *DSAKey) ([]byte, error) {
	log.Debug("Exporting DSA private key")
	if !key.SanePrivateKey() {
		log.Error("Refusing to export insane DSA private key")
		return nil, ErrInvalidPrivateKey
	}
	priv, err := keyToPrivateKey(key)
	if err != nil {
		return nil, err
	}
	der, err := asn1.Marshal(dsaPrivateKeyASN1{
		Version: 0,
		P:       priv.P,
		Q:       priv.Q,
		G:       priv.G,
		Y:       priv.Y,
		X:       priv.X,
	})
	if err != nil {
		log.WithError(err).Error("Failed to export DSA private key")
		return nil, oops.Errorf("dsa private key export: %w", err)
	}
	log.WithField("der_length", len(der)).Debug("DSA private key exported successfully")
	return der, nil
}

// ImportPrivateKey parses a traditional DER private key. Trailing
// bytes after the structure are tolerated and ignored.
func ImportPrivateKey(der []byte) (*DSAKey, error) {
	log.WithFields(logrus.Fields{
		"der_length": len(der),
	}).Debug("Importing DSA private key")
	var raw dsaPrivateKeyASN1
	rest, err := asn1.Unmarshal(der, &raw)
	if err != nil {
		log.WithError(err).Error("Failed to import DSA private key")
		return nil, oops.Errorf("dsa private key import: %w", err)
	}
	if len(rest) > 0 {
		log.WithField("trailing_bytes", len(rest)).Debug("Ignoring data after DER structure")
	}
	if err := checkImported(raw.P, raw.Q, raw.G, raw.Y, raw.X); err != nil {
		return nil, err
	}
	return packKey(bigBytes(raw.P), bigBytes(raw.Q), bigBytes(raw.G), bigBytes(raw.Y), bigBytes(raw.X)), nil
}

// ExportPublicKey encodes a public key record as traditional DER:
// SEQUENCE { y, p, q, g }.
func ExportPublicKey(key *DSAKey) ([]byte, error) {
	log.Debug("Exporting DSA public key")
	if !key.SanePublicKey() {
		log.Error("Refusing to export insane DSA public key")
		return nil, ErrInvalidPublicKey
	}
	pub, err := keyToPublicKey(key)
	if err != nil {
		return nil, err
	}
	der, err := asn1.Marshal(dsaPublicKeyASN1{
		Y: pub.Y,
		P: pub.P,
		Q: pub.Q,
		G: pub.G,
	})
	if err != nil {
		log.WithError(err).Error("Failed to export DSA public key")
		return nil, oops.Errorf("dsa public key export: %w", err)
	}
	log.WithField("der_length", len(der)).Debug("DSA public key exported successfully")
	return der, nil
}

// ImportPublicKey parses a traditional DER public key. Trailing bytes
// after the structure are tolerated and ignored.
func ImportPublicKey(der []byte) (*DSAKey, error) {
	log.WithFields(logrus.Fields{
		"der_length": len(der),
	}).Debug("Importing DSA public key")
	var raw dsaPublicKeyASN1
	rest, err := asn1.Unmarshal(der, &raw)
	if err != nil {
		log.WithError(err).Error("Failed to import DSA public key")
		return nil, oops.Errorf("dsa public key import: %w", err)
	}
	if len(rest) > 0 {
		log.WithField("trailing_bytes", len(rest)).Debug("Ignoring data after DER structure")
	}
	if err := checkImported(raw.P, raw.Q, raw.G, raw.Y); err != nil {
		return nil, err
	}
	return packKey(bigBytes(raw.P), bigBytes(raw.Q), bigBytes(raw.G), bigBytes(raw.Y), nil), nil
}

// checkImported rejects parsed integers that are absent or negative.
// The record encoding is unsigned, so a negative value could not
// round-trip and is treated as malformed input.
func checkImported(vals ...*big.Int) error {
	for _, v := range vals {
		if v == nil || v.Sign() < 0 {
			return oops.Errorf("dsa key import: bad integer field")
		}
	}
	return nil
}
