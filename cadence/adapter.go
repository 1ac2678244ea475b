// SPDX-FileCopyrightText: 2025 The Pion community <https://pion.ly>
// SPDX-License-Identifier: MIT

package cadence

import (
	"sync"
	"sync/atomic"

	"github.com/pion/logging"

	"framecadence/cadence/frame"
)

// zeroHertzScreenshareTrialName gates zero-hertz mode at construction
// time: the field trial is consulted exactly once, when the Adapter is
// built.
const zeroHertzScreenshareTrialName = "WebRTC-ZeroHertzScreenshare"

// SourceConstraints mirrors the upstream source's advertised frame rate
// range. A nil pointer field means "unset".
type SourceConstraints struct {
	MinFps *int
	MaxFps *int
}

// Adapter is the frame cadence adapter (C7): the façade a video source
// feeds frames into and an encoder pipeline receives frames from. It holds
// exactly one of PassthroughMode or ZeroHertzMode live at a time and
// switches between them by reconstruction rather than mutation.
type Adapter struct {
	clock Clock
	queue TaskQueue

	zeroHertzScreenshareEnabled bool
	fieldTrial                  FieldTrial
	metrics                     Metrics
	log                         logging.LeveledLogger

	mu sync.Mutex

	callback    EncoderCallback
	passthrough *passthroughMode
	zeroHertz   *zeroHertzMode
	current     adapterMode

	zeroHertzParams *ZeroHertzParams
	constraints     *SourceConstraints

	hasReportedFrameRateConstraintMetrics bool

	framesScheduled atomic.Int32

	initialized bool

	// onFrameSeq guards against concurrent OnFrame invocations, which
	// violate the documented single-caller contract. It substitutes for a
	// race checker: production code only logs a violation rather than
	// panicking.
	onFrameSeq atomic.Bool
}

// New constructs an Adapter bound to the given clock and task queue.
// OnFrame posts each frame's delivery onto the queue, and zero-hertz mode
// schedules its delayed dispatches and repeats there; the other Adapter
// methods, OnConstraintsChanged included, run on the caller's goroutine
// under the adapter's mutex.
func New(clock Clock, queue TaskQueue, opts ...Option) (*Adapter, error) {
	a := &Adapter{
		clock:      clock,
		queue:      queue,
		fieldTrial: nil,
		log:        logging.NewDefaultLoggerFactory().NewLogger("cadence_adapter"),
	}
	for _, opt := range opts {
		if err := opt(a); err != nil {
			return nil, err
		}
	}
	if a.fieldTrial != nil {
		a.zeroHertzScreenshareEnabled = a.fieldTrial.IsEnabled(zeroHertzScreenshareTrialName)
	}
	if a.metrics == nil {
		a.metrics = noopMetrics{}
	}
	return a, nil
}

// Initialize wires the downstream callback and activates PassthroughMode.
// It must be called exactly once before any other Adapter method.
func (a *Adapter) Initialize(callback EncoderCallback) error {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.initialized {
		return ErrAlreadyInitialized
	}
	a.callback = callback
	a.passthrough = newPassthroughMode(a.clock, callback)
	a.current = a.passthrough
	a.initialized = true
	return nil
}

// SetZeroHertzParams records the caller's intent to enable zero-hertz mode
// (params != nil) or disable it (params == nil), then reconfigures if the
// combination of trial/constraints/params now calls for a different mode.
//
// The "was enabled" comparison here intentionally looks only at whether
// zero-hertz params were previously set, not at the full
// isZeroHertzScreenshareEnabled() computation — this is deliberately
// asymmetric with OnConstraintsChanged below.
func (a *Adapter) SetZeroHertzParams(params *ZeroHertzParams) error {
	a.mu.Lock()
	defer a.mu.Unlock()
	if !a.initialized {
		return ErrNotInitialized
	}
	if params != nil && params.NumSimulcastLayers < 1 {
		return ErrInvalidZeroHertzParams
	}

	wasZeroHertzEnabled := a.zeroHertzParams != nil
	if params != nil && !wasZeroHertzEnabled {
		a.hasReportedFrameRateConstraintMetrics = false
	}
	a.zeroHertzParams = params
	a.maybeReconfigure(wasZeroHertzEnabled)
	return nil
}

// OnConstraintsChanged records the source's advertised frame rate range and
// reconfigures if needed. Unlike SetZeroHertzParams, the "was enabled"
// comparison here uses the full isZeroHertzScreenshareEnabled() check,
// evaluated before the new constraints are stored.
func (a *Adapter) OnConstraintsChanged(constraints SourceConstraints) error {
	a.mu.Lock()
	defer a.mu.Unlock()
	if !a.initialized {
		return ErrNotInitialized
	}
	minFps, maxFps := -1, -1
	if constraints.MinFps != nil {
		minFps = *constraints.MinFps
	}
	if constraints.MaxFps != nil {
		maxFps = *constraints.MaxFps
	}
	a.log.Infof("OnConstraintsChanged min_fps %d max_fps %d", minFps, maxFps)

	wasZeroHertzEnabled := a.isZeroHertzScreenshareEnabled()
	a.constraints = &constraints
	a.maybeReconfigure(wasZeroHertzEnabled)
	return nil
}

// isZeroHertzScreenshareEnabled reports whether every condition for
// zero-hertz mode holds: the field trial must be on, the source must have
// advertised min_fps == 0 and max_fps > 0, and a caller must have supplied
// zero-hertz params.
func (a *Adapter) isZeroHertzScreenshareEnabled() bool {
	if !a.zeroHertzScreenshareEnabled || a.constraints == nil || a.zeroHertzParams == nil {
		return false
	}
	if a.constraints.MaxFps == nil || *a.constraints.MaxFps <= 0 {
		return false
	}
	if a.constraints.MinFps == nil || *a.constraints.MinFps != 0 {
		return false
	}
	return true
}

// maybeReconfigure activates zero-hertz mode on a rising edge, tears it
// down completely (discarding all pending repeat tasks) on a falling
// edge, and otherwise leaves the currently active mode alone.
func (a *Adapter) maybeReconfigure(wasZeroHertzEnabled bool) {
	isZeroHertzEnabled := a.isZeroHertzScreenshareEnabled()
	if isZeroHertzEnabled {
		if !wasZeroHertzEnabled {
			a.zeroHertz = newZeroHertzMode(a.queue, a.clock, a.callback, float64(*a.constraints.MaxFps), *a.zeroHertzParams)
			a.log.Infof("zero hertz mode activated")
		}
		a.current = a.zeroHertz
		return
	}
	if wasZeroHertzEnabled && a.zeroHertz != nil {
		a.zeroHertz.close()
		a.zeroHertz = nil
	}
	a.current = a.passthrough
}

// OnFrame delivers an upstream frame to the currently active mode. It
// posts the actual delivery onto the task queue, keeping the caller's
// thread separate from the adapter's serialized execution context.
func (a *Adapter) OnFrame(f frame.Frame) {
	if a.onFrameSeq.Swap(true) {
		a.log.Errorf("OnFrame invoked concurrently; this violates the single-caller contract")
	}
	defer a.onFrameSeq.Store(false)

	postTime := a.clock.Now()
	a.framesScheduled.Add(1)
	a.queue.Post(func() {
		scheduled := a.framesScheduled.Add(-1) + 1
		a.mu.Lock()
		current := a.current
		a.mu.Unlock()
		if current == nil {
			return
		}
		current.OnFrame(postTime, scheduled, f)
		a.maybeReportConstraintMetrics()
	})
}

// OnDiscardedFrame notifies the downstream callback that an upstream frame
// never reached the adapter.
func (a *Adapter) OnDiscardedFrame() {
	a.mu.Lock()
	callback := a.callback
	a.mu.Unlock()
	if callback != nil {
		callback.OnDiscardedFrame()
	}
}

// InputFrameRateFps reports the currently active mode's estimate of the
// input frame rate.
func (a *Adapter) InputFrameRateFps() (uint32, bool) {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.current == nil {
		return 0, false
	}
	return a.current.InputFrameRateFps()
}

// UpdateFrameRate keeps the passthrough rate estimator alive regardless of
// which mode is currently active, so a later switch back to passthrough
// doesn't start from a cold estimate.
func (a *Adapter) UpdateFrameRate() {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.passthrough != nil {
		a.passthrough.UpdateFrameRate()
	}
}

// UpdateLayerStatus forwards to the active zero-hertz mode, if any. It is a
// no-op in passthrough mode.
func (a *Adapter) UpdateLayerStatus(spatialIndex int, enabled bool) error {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.zeroHertz == nil {
		return nil
	}
	return a.zeroHertz.UpdateLayerStatus(spatialIndex, enabled)
}

// UpdateLayerQualityConvergence forwards to the active zero-hertz mode, if
// any. It is a no-op in passthrough mode.
func (a *Adapter) UpdateLayerQualityConvergence(spatialIndex int, converged bool) error {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.zeroHertz == nil {
		return nil
	}
	return a.zeroHertz.UpdateLayerQualityConvergence(spatialIndex, converged)
}

// maybeReportConstraintMetrics reports at most once each time zero-hertz
// params go from unset to set, on the first frame that arrives after
// SetZeroHertzParams cleared the reported flag, whether or not zero-hertz
// mode is then active. A frame that arrives while no params are set
// consumes the flag without reporting.
func (a *Adapter) maybeReportConstraintMetrics() {
	a.mu.Lock()
	if a.hasReportedFrameRateConstraintMetrics {
		a.mu.Unlock()
		return
	}
	a.hasReportedFrameRateConstraintMetrics = true
	if a.zeroHertzParams == nil {
		a.mu.Unlock()
		return
	}
	constraints := a.constraints
	metrics := a.metrics
	a.mu.Unlock()

	reportConstraintMetrics(metrics, constraints)
}

// noopMetrics is the zero-value Metrics sink used when no sink is
// configured.
type noopMetrics struct{}

func (noopMetrics) ObserveBoolean(string, bool)    {}
func (noopMetrics) ObserveCount(string, int, int)  {}
func (noopMetrics) ObserveSparse(string, int, int) {}
