// SPDX-FileCopyrightText: 2025 The Pion community <https://pion.ly>
// SPDX-License-Identifier: MIT

package cadence

import (
	"time"

	"github.com/pion/logging"

	"framecadence/cadence/frame"
	"framecadence/cadence/taskqueue"
)

// ZeroHertzIdleRepeatRatePeriod is the repeat interval once every enabled
// spatial layer has converged.
const ZeroHertzIdleRepeatRatePeriod = 1000 * time.Millisecond

// ZeroHertzParams configures a ZeroHertzMode activation. It is immutable
// once the mode it activates has been constructed.
type ZeroHertzParams struct {
	NumSimulcastLayers int
}

// zeroHertzMode is the cadence state machine: it forwards the newest
// frame on a fixed delay and, once the source goes idle, synthesizes
// repeats of the last frame until either a new frame arrives or the mode
// is torn down.
type zeroHertzMode struct {
	queue      TaskQueue
	clock      Clock
	callback   EncoderCallback
	maxFps     float64
	frameDelay time.Duration

	// queuedFrames holds at most the frames awaiting delivery, plus the
	// current repeat source while isRepeating is true. Its length is <=1
	// outside the brief window between OnFrame and the next scheduled
	// dispatch, and exactly 1 while isRepeating.
	queuedFrames []frame.Frame
	// currentFrameID is incremented on every upstream frame and doubles as
	// the cancellation token every repeat task is stamped with: a repeat
	// task that fires after a newer frame arrived sees a mismatch and
	// becomes a no-op.
	currentFrameID int
	isRepeating    bool
	layerTrackers  []spatialLayerTracker

	safety *taskqueue.SafetyFlag
	log    logging.LeveledLogger
}

func newZeroHertzMode(queue TaskQueue, clock Clock, callback EncoderCallback, maxFps float64, params ZeroHertzParams) *zeroHertzMode {
	return &zeroHertzMode{
		queue:         queue,
		clock:         clock,
		callback:      callback,
		maxFps:        maxFps,
		frameDelay:    time.Duration(float64(time.Second) / maxFps),
		layerTrackers: make([]spatialLayerTracker, params.NumSimulcastLayers),
		safety:        taskqueue.NewSafetyFlag(),
		log:           logging.NewDefaultLoggerFactory().NewLogger("cadence_zerohertz"),
	}
}

// close tears down the mode: every task it has posted, already in flight
// or not yet fired, becomes a no-op. This is how the adapter discards
// zero-hertz state entirely when switching back to passthrough.
func (m *zeroHertzMode) close() {
	m.safety.Cancel()
}

// UpdateLayerStatus records whether the given spatial layer is currently
// enabled.
func (m *zeroHertzMode) UpdateLayerStatus(spatialIndex int, enabled bool) error {
	if spatialIndex < 0 || spatialIndex >= len(m.layerTrackers) {
		return ErrInvalidLayerIndex
	}
	m.layerTrackers[spatialIndex].setEnabled(enabled)
	if enabled {
		if m.layerTrackers[spatialIndex].converged() {
			m.log.Infof("layer %d enabled", spatialIndex)
		} else {
			m.log.Infof("layer %d enabled and it's assumed quality has not converged", spatialIndex)
		}
	} else {
		m.log.Infof("layer %d disabled", spatialIndex)
	}
	return nil
}

// UpdateLayerQualityConvergence records the given spatial layer's latest
// quality convergence status.
func (m *zeroHertzMode) UpdateLayerQualityConvergence(spatialIndex int, converged bool) error {
	if spatialIndex < 0 || spatialIndex >= len(m.layerTrackers) {
		return ErrInvalidLayerIndex
	}
	m.log.Infof("layer %d quality has converged: %v", spatialIndex, converged)
	m.layerTrackers[spatialIndex].setConverged(converged)
	return nil
}

// OnFrame implements adapterMode.
func (m *zeroHertzMode) OnFrame(_ time.Time, _ int32, f frame.Frame) {
	for i := range m.layerTrackers {
		m.layerTrackers[i].resetToNotConverged()
	}

	if m.isRepeating {
		m.log.Tracef("cancel repeat and restart with original, frame id %d", m.currentFrameID)
		m.queuedFrames = m.queuedFrames[:0]
	}

	m.queuedFrames = append(m.queuedFrames, f)
	m.currentFrameID++
	m.isRepeating = false

	safety := m.safety
	m.queue.PostDelayed(safety.Guard(m.processOnDelayedCadence), m.frameDelay)
}

// InputFrameRateFps implements adapterMode: the zero-hertz mode always
// reports its configured target rate, never a measured one.
func (m *zeroHertzMode) InputFrameRateFps() (uint32, bool) {
	return uint32(m.maxFps), true
}

// UpdateFrameRate implements adapterMode: a no-op, since the zero-hertz
// rate is fixed by configuration, not measurement.
func (m *zeroHertzMode) UpdateFrameRate() {}

// processOnDelayedCadence sends the oldest queued frame and, if it was
// the only one queued, starts the idle-repeat sequence.
func (m *zeroHertzMode) processOnDelayedCadence() {
	if len(m.queuedFrames) == 0 {
		return
	}

	m.sendFrameNow(m.queuedFrames[0])

	if len(m.queuedFrames) > 1 {
		m.queuedFrames = m.queuedFrames[1:]
		return
	}

	m.isRepeating = true
	m.scheduleRepeat(m.currentFrameID)
}

// scheduleRepeat posts the next repeat of frameID, at the fast cadence
// while any enabled layer hasn't converged, or the slow idle-repeat
// period once they all have.
func (m *zeroHertzMode) scheduleRepeat(frameID int) {
	repeatDelay := m.frameDelay
	if m.allEnabledLayersConverged() {
		repeatDelay = ZeroHertzIdleRepeatRatePeriod
	}

	safety := m.safety
	m.queue.PostDelayed(safety.Guard(func() {
		m.processRepeatedFrame(frameID, repeatDelay)
	}), repeatDelay)
}

// allEnabledLayersConverged reports true if there are no enabled layers,
// or every enabled layer has converged. Disabled layers never object, and
// an all-disabled configuration is vacuously converged.
func (m *zeroHertzMode) allEnabledLayersConverged() bool {
	for i := range m.layerTrackers {
		t := &m.layerTrackers[i]
		if t.enabled() && !t.converged() {
			return false
		}
	}
	return true
}

// processRepeatedFrame re-sends the queued frame as a repeat, unless a
// newer frame has superseded frameID, then schedules the next repeat.
func (m *zeroHertzMode) processRepeatedFrame(frameID int, scheduledDelay time.Duration) {
	if frameID != m.currentFrameID {
		return
	}
	if len(m.queuedFrames) == 0 {
		return
	}

	repeat := &m.queuedFrames[0]
	repeat.SetUpdateRect(frame.UpdateRect{})

	if repeat.TimestampUs() > 0 {
		repeat.SetTimestampUs(repeat.TimestampUs() + scheduledDelay.Microseconds())
	}
	if repeat.NtpTimeMs() > 0 {
		repeat.SetNtpTimeMs(repeat.NtpTimeMs() + scheduledDelay.Milliseconds())
	}

	m.sendFrameNow(*repeat)
	m.scheduleRepeat(frameID)
}

// sendFrameNow delivers f to the callback, timestamped with the current
// time.
func (m *zeroHertzMode) sendFrameNow(f frame.Frame) {
	m.callback.OnFrame(m.clock.Now(), 1, f)
}
