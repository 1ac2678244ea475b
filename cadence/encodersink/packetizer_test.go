// SPDX-FileCopyrightText: 2025 The Pion community <https://pion.ly>
// SPDX-License-Identifier: MIT

package encodersink

import (
	"testing"

	"github.com/pion/rtp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// wholePayloader hands the payload back as a single chunk, regardless of
// MTU, so tests can assert on exact packet counts.
type wholePayloader struct{}

func (wholePayloader) Payload(_ uint16, payload []byte) [][]byte {
	if len(payload) == 0 {
		return nil
	}
	return [][]byte{payload}
}

func TestPacketizeSingleChunkSetsMarker(t *testing.T) {
	seq := rtp.NewRandomSequencer()
	pz := newPacketizer(1200, 96, 42, wholePayloader{}, seq, 90000)

	packets := pz.packetize([]byte("frame-bytes"), 3000)
	require.Len(t, packets, 1)
	assert.True(t, packets[0].Marker)
	assert.Equal(t, uint8(96), packets[0].PayloadType)
	assert.Equal(t, uint32(42), packets[0].SSRC)
}

func TestPacketizeEmptyPayloadReturnsNil(t *testing.T) {
	seq := rtp.NewRandomSequencer()
	pz := newPacketizer(1200, 96, 42, wholePayloader{}, seq, 90000)
	assert.Nil(t, pz.packetize(nil, 0))
}

func TestPacketizeAdvancesTimestampBySamples(t *testing.T) {
	seq := rtp.NewRandomSequencer()
	pz := newPacketizer(1200, 96, 42, wholePayloader{}, seq, 90000)
	start := pz.timestamp

	pz.packetize([]byte("a"), 1500)
	assert.Equal(t, start+1500, pz.timestamp)

	pz.skipSamples(500)
	assert.Equal(t, start+2000, pz.timestamp)
}

func TestPacketizeSequenceNumbersIncrease(t *testing.T) {
	seq := rtp.NewRandomSequencer()
	pz := newPacketizer(1200, 96, 42, wholePayloader{}, seq, 90000)

	first := pz.packetize([]byte("a"), 100)
	second := pz.packetize([]byte("b"), 100)
	require.Len(t, first, 1)
	require.Len(t, second, 1)
	assert.Equal(t, first[0].SequenceNumber+1, second[0].SequenceNumber)
}
