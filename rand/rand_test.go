package rand

import (
	"bytes"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
)

type failReader struct{}

func (failReader) Read([]byte) (int, error) { return 0, io.ErrUnexpectedEOF }

func TestRead(t *testing.T) {
	assert := assert.New(t)

	buf := make([]byte, 64)
	n, err := Read(buf)
	assert.Nil(err, "reading from the system source should not fail")
	assert.Equal(64, n, "short read from entropy source")
	assert.False(bytes.Equal(buf, make([]byte, 64)), "buffer should not remain all zero")
}

func TestPoll(t *testing.T) {
	assert := assert.New(t)
	assert.Nil(Poll(), "poll against the system source should succeed")
}

func TestPollFailure(t *testing.T) {
	assert := assert.New(t)

	old := Reader
	Reader = failReader{}
	defer func() { Reader = old }()

	assert.NotNil(Poll(), "poll should fail when the source errors")
}
