// SPDX-FileCopyrightText: 2025 The Pion community <https://pion.ly>
// SPDX-License-Identifier: MIT

// Package encodersink adapts the cadence adapter's EncoderCallback contract
// onto a pion/webrtc outbound track, so frames the adapter schedules are
// packetized into RTP and sent the same way a real encoder's output would
// be.
package encodersink

import (
	"errors"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/pion/logging"
	"github.com/pion/rtp"
	"github.com/pion/rtp/codecs"
	"github.com/pion/webrtc/v4"

	"framecadence/cadence/frame"
)

const outboundMTU = 1200

var errNoPayloaderForCodec = errors.New("encodersink: no payloader for codec")

// Sink implements cadence.EncoderCallback and webrtc.TrackLocal: frames the
// adapter schedules are packetized and written to the wrapped RTP track as
// soon as they're delivered, and discarded-frame notifications widen the
// next packetized frame's timestamp gap instead of being dropped silently.
type Sink struct {
	mu         sync.RWMutex
	rtpTrack   *webrtc.TrackLocalStaticRTP
	packetizer *packetizer
	sequencer  rtp.Sequencer
	clockRate  uint32

	lastTimestampUs int64
	discarded       atomic.Uint32

	log logging.LeveledLogger
}

// New constructs a Sink bound to a fresh RTP track advertising capability.
// The returned Sink must be added to a PeerConnection before OnFrame starts
// producing output; frames delivered before Bind runs are silently
// dropped, matching how a real encoder output has nowhere to go before
// negotiation completes.
func New(capability webrtc.RTPCodecCapability, id, streamID string) (*Sink, error) {
	rtpTrack, err := webrtc.NewTrackLocalStaticRTP(capability, id, streamID)
	if err != nil {
		return nil, err
	}
	return &Sink{
		rtpTrack: rtpTrack,
		log:      logging.NewDefaultLoggerFactory().NewLogger("cadence_encodersink"),
	}, nil
}

// Track exposes the underlying TrackLocal for adding to a PeerConnection.
func (s *Sink) Track() webrtc.TrackLocal { return s }

// ID implements webrtc.TrackLocal.
func (s *Sink) ID() string { return s.rtpTrack.ID() }

// StreamID implements webrtc.TrackLocal.
func (s *Sink) StreamID() string { return s.rtpTrack.StreamID() }

// RID implements webrtc.TrackLocal.
func (s *Sink) RID() string { return s.rtpTrack.RID() }

// Kind implements webrtc.TrackLocal.
func (s *Sink) Kind() webrtc.RTPCodecType { return s.rtpTrack.Kind() }

// Codec implements webrtc.TrackLocal.
func (s *Sink) Codec() webrtc.RTPCodecCapability { return s.rtpTrack.Codec() }

// Bind implements webrtc.TrackLocal: it negotiates the wrapped track, then
// builds the packetizer for the agreed codec and clock rate.
func (s *Sink) Bind(t webrtc.TrackLocalContext) (webrtc.RTPCodecParameters, error) {
	codec, err := s.rtpTrack.Bind(t)
	if err != nil {
		return codec, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.packetizer != nil {
		return codec, nil
	}

	payloader, err := payloaderForCodec(codec.RTPCodecCapability)
	if err != nil {
		return codec, err
	}
	s.sequencer = rtp.NewRandomSequencer()
	s.packetizer = newPacketizer(outboundMTU, uint8(codec.PayloadType), globalMathRandomGenerator.Uint32(), payloader, s.sequencer, uint32(codec.ClockRate))
	s.clockRate = uint32(codec.ClockRate)

	return codec, nil
}

// Unbind implements webrtc.TrackLocal.
func (s *Sink) Unbind(t webrtc.TrackLocalContext) error {
	return s.rtpTrack.Unbind(t)
}

// OnFrame implements cadence.EncoderCallback.
func (s *Sink) OnFrame(_ time.Time, framesScheduledForProcessing int32, f frame.Frame) {
	s.mu.RLock()
	pz := s.packetizer
	clockRate := s.clockRate
	s.mu.RUnlock()
	if pz == nil {
		return
	}

	samples := s.samplesSince(f, clockRate)
	if discarded := s.discarded.Swap(0); discarded > 0 {
		pz.skipSamples(samples * discarded)
	}

	packets := pz.packetize(f.Data(), samples)
	for _, p := range packets {
		if err := s.rtpTrack.WriteRTP(p); err != nil {
			s.log.Errorf("write rtp: %v", err)
		}
	}
	s.log.Tracef("wrote frame %s as %d packets, %d frames still scheduled", f.ID(), len(packets), framesScheduledForProcessing)
}

// OnDiscardedFrame implements cadence.EncoderCallback: it records the drop
// so the next delivered frame's packetizer timestamp accounts for the gap,
// mirroring how a real track skips RTP timestamp samples for frames that
// never made it to the encoder.
func (s *Sink) OnDiscardedFrame() {
	s.discarded.Add(1)
}

func (s *Sink) samplesSince(f frame.Frame, clockRate uint32) uint32 {
	defer func() { s.lastTimestampUs = f.TimestampUs() }()
	if s.lastTimestampUs <= 0 || f.TimestampUs() <= s.lastTimestampUs {
		return 0
	}
	elapsed := float64(f.TimestampUs()-s.lastTimestampUs) / 1e6
	return uint32(elapsed * float64(clockRate))
}

func payloaderForCodec(codec webrtc.RTPCodecCapability) (rtp.Payloader, error) {
	switch strings.ToLower(codec.MimeType) {
	case strings.ToLower(webrtc.MimeTypeH264):
		return &codecs.H264Payloader{}, nil
	case strings.ToLower(webrtc.MimeTypeH265):
		return &codecs.H265Payloader{}, nil
	case strings.ToLower(webrtc.MimeTypeVP8):
		return &codecs.VP8Payloader{EnablePictureID: true}, nil
	case strings.ToLower(webrtc.MimeTypeVP9):
		return &codecs.VP9Payloader{}, nil
	case strings.ToLower(webrtc.MimeTypeAV1):
		return &codecs.AV1Payloader{}, nil
	default:
		return nil, errNoPayloaderForCodec
	}
}
