// SPDX-FileCopyrightText: 2025 The Pion community <https://pion.ly>
// SPDX-License-Identifier: MIT

package cadence

import (
	"time"

	"github.com/pion/logging"

	"framecadence/cadence/frame"
	"framecadence/cadence/ratewindow"
)

// frameRateAveragingWindowMs is the window size used to estimate the
// input frame rate while passthrough mode is active.
const frameRateAveragingWindowMs = 1000

// passthroughMode forwards every frame verbatim and keeps a windowed
// estimate of the input frame rate alive, including while zero-hertz mode
// is the active mode, so a later switch back to passthrough doesn't start
// from a cold estimate.
type passthroughMode struct {
	clock      Clock
	callback   EncoderCallback
	rateWindow *ratewindow.Window
	log        logging.LeveledLogger
}

func newPassthroughMode(clock Clock, callback EncoderCallback) *passthroughMode {
	return &passthroughMode{
		clock:      clock,
		callback:   callback,
		rateWindow: ratewindow.New(frameRateAveragingWindowMs, 1000),
		log:        logging.NewDefaultLoggerFactory().NewLogger("cadence_passthrough"),
	}
}

// OnFrame implements adapterMode.
func (m *passthroughMode) OnFrame(postTime time.Time, scheduled int32, f frame.Frame) {
	m.callback.OnFrame(postTime, scheduled, f)
}

// InputFrameRateFps implements adapterMode.
func (m *passthroughMode) InputFrameRateFps() (uint32, bool) {
	return m.rateWindow.Rate(m.clock.NowMs())
}

// UpdateFrameRate implements adapterMode.
func (m *passthroughMode) UpdateFrameRate() {
	m.rateWindow.Update(1, m.clock.NowMs())
}
