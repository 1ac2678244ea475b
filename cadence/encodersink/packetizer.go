// SPDX-FileCopyrightText: 2025 The Pion community <https://pion.ly>
// SPDX-License-Identifier: MIT

package encodersink

import (
	"github.com/pion/randutil"
	"github.com/pion/rtp"
)

// Use global random generator to properly seed by crypto grade random.
var globalMathRandomGenerator = randutil.NewMathRandomGenerator() //nolint:gochecknoglobals

// packetizer turns a frame's payload into one or more RTP packets. It is
// trimmed down from a general-purpose RTP sender's packetizer: no padding
// generation and no abs-send-time extension, since the cadence adapter's
// output goes straight to an encoder pipeline rather than a congestion
// controller that needs probing packets.
type packetizer struct {
	mtu         uint16
	payloadType uint8
	ssrc        uint32
	payloader   rtp.Payloader
	sequencer   rtp.Sequencer
	timestamp   uint32
	clockRate   uint32
}

func newPacketizer(mtu uint16, payloadType uint8, ssrc uint32, payloader rtp.Payloader, sequencer rtp.Sequencer, clockRate uint32) *packetizer {
	return &packetizer{
		mtu:         mtu,
		payloadType: payloadType,
		ssrc:        ssrc,
		payloader:   payloader,
		sequencer:   sequencer,
		timestamp:   globalMathRandomGenerator.Uint32(),
		clockRate:   clockRate,
	}
}

// packetize splits payload into RTP packets and advances the running
// timestamp by samples.
func (p *packetizer) packetize(payload []byte, samples uint32) []*rtp.Packet {
	if len(payload) == 0 {
		return nil
	}

	payloads := p.payloader.Payload(p.mtu-12, payload)
	packets := make([]*rtp.Packet, len(payloads))

	for i, pp := range payloads {
		packets[i] = &rtp.Packet{
			Header: rtp.Header{
				Version:        2,
				Marker:         i == len(payloads)-1,
				PayloadType:    p.payloadType,
				SequenceNumber: p.sequencer.NextSequenceNumber(),
				Timestamp:      p.timestamp,
				SSRC:           p.ssrc,
			},
			Payload: pp,
		}
	}
	p.timestamp += samples

	return packets
}

// skipSamples introduces a gap in the running timestamp without emitting
// packets, used to account for frames the adapter reported as discarded
// before they ever reached the sink.
func (p *packetizer) skipSamples(samples uint32) {
	p.timestamp += samples
}
