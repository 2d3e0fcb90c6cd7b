package dsa

import (
	"crypto/dsa"

	"github.com/samber/oops"
	"golang.org/x/crypto/ssh"
)

// ExportSSHPublicKey encodes a public key record as an OpenSSH
// authorized_keys line of type ssh-dss.
func ExportSSHPublicKey(key *DSAKey) ([]byte, error) {
	log.Debug("Exporting DSA public key as ssh-dss")
	if !key.SanePublicKey() {
		log.Error("Refusing to export insane DSA public key")
		return nil, ErrInvalidPublicKey
	}
	pub, err := keyToPublicKey(key)
	if err != nil {
		return nil, err
	}
	sshPub, err := ssh.NewPublicKey(pub)
	if err != nil {
		log.WithError(err).Error("Failed to wrap DSA public key for SSH")
		return nil, oops.Errorf("ssh public key export: %w", err)
	}
	return ssh.MarshalAuthorizedKey(sshPub), nil
}

// ImportSSHPublicKey parses an authorized_keys line and returns the
// embedded DSA public key record. Lines carrying other key types
// fail.
func ImportSSHPublicKey(line []byte) (*DSAKey, error) {
	log.Debug("Importing DSA public key from ssh-dss")
	sshPub, _, _, _, err := ssh.ParseAuthorizedKey(line)
	if err != nil {
		log.WithError(err).Error("Failed to parse authorized key line")
		return nil, oops.Errorf("ssh public key import: %w", err)
	}
	cryptoPub, ok := sshPub.(ssh.CryptoPublicKey)
	if !ok {
		return nil, oops.Errorf("ssh public key import: unsupported key type %s", sshPub.Type())
	}
	pub, ok := cryptoPub.CryptoPublicKey().(*dsa.PublicKey)
	if !ok {
		log.WithField("key_type", sshPub.Type()).Error("Authorized key is not ssh-dss")
		return nil, oops.Errorf("ssh public key import: not a dsa key (%s)", sshPub.Type())
	}
	return publicKeyToKey(pub)
}
