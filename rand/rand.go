// Package rand supplies the entropy source for key and parameter
// generation. It wraps the operating system CSPRNG behind a swappable
// reader so tests can substitute a deterministic or failing source.
package rand

import (
	crand "crypto/rand"
	"io"

	"github.com/go-i2p/logger"
	"github.com/samber/oops"
)

var log = logger.GetGoI2PLogger()

// Reader is the entropy source used by every generation operation in
// this module. It defaults to the operating system CSPRNG.
var Reader io.Reader = crand.Reader

// Read fills p with random bytes from Reader.
func Read(p []byte) (int, error) {
	return io.ReadFull(Reader, p)
}

// Poll draws a small probe from Reader to confirm the entropy source
// is usable before a generation operation commits to it.
func Poll() error {
	var probe [8]byte
	if _, err := io.ReadFull(Reader, probe[:]); err != nil {
		log.WithError(err).Error("Entropy source unavailable")
		return oops.Errorf("entropy poll failed: %w", err)
	}
	return nil
}
