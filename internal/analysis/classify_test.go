package analysis

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestProtocol(t *testing.T) {
	assert.Equal(t, LabelTCP, Protocol(SockStream))
	assert.Equal(t, LabelUDP, Protocol(SockDgram))

	for _, other := range []uint32{0, 3, 5, 42, ^uint32(0)} {
		if other == SockStream || other == SockDgram {
			continue
		}
		assert.Equal(t, LabelUnknown, Protocol(other), "socket type %d", other)
	}
}
