package speech

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPCMEstimateMs(t *testing.T) {
	// 24 kHz * 16-bit mono = 48000 bytes per second.
	assert.Equal(t, 1000, pcmEstimateMs(make([]byte, 48000)))
	assert.Equal(t, 500, pcmEstimateMs(make([]byte, 24000)))
	assert.Equal(t, 0, pcmEstimateMs(nil))
}
