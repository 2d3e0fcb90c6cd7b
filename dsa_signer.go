package dsa

// DSASigner signs data under one private key record. The packed
// signature it produces is r||s with both components padded to the
// subgroup width.
type DSASigner struct {
	k *DSAKey
}

// sign data by hashing it with the digest matched to the key's
// subgroup width and signing the hash
func (ds *DSASigner) Sign(data []byte) (sig []byte, err error) {
	log.WithField("data_length", len(data)).Debug("Signing data with DSA")
	sig, err = ds.SignHash(hashDigest(ds.k, data))
	return
}

// sign a precomputed hash with our private key
func (ds *DSASigner) SignHash(h []byte) (sig []byte, err error) {
	log.WithField("hash_length", len(h)).Debug("Signing hash with DSA")
	r, s, err := Sign(h, ds.k)
	if err != nil {
		log.WithError(err).Error("Failed to create DSA signature")
		return nil, err
	}
	sig = make([]byte, 0, len(r)+len(s))
	sig = append(sig, r...)
	sig = append(sig, s...)
	log.WithField("sig_length", len(sig)).Debug("DSA signature created successfully")
	return sig, nil
}
