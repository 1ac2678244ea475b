// SPDX-FileCopyrightText: 2025 The Pion community <https://pion.ly>
// SPDX-License-Identifier: MIT

package cadence

// layerState is the three-way state of a spatial layer's convergence
// tracking: a layer either has no opinion on convergence (disabled), or it
// does and that opinion is either "still improving" or "converged".
type layerState int

const (
	layerDisabled layerState = iota
	layerEnabledNotConverged
	layerEnabledConverged
)

type spatialLayerTracker struct {
	state layerState
}

func (t *spatialLayerTracker) enabled() bool {
	return t.state != layerDisabled
}

func (t *spatialLayerTracker) converged() bool {
	return t.state == layerEnabledConverged
}

// setEnabled implements UpdateLayerStatus. Enabling a tracker that is
// already enabled is a no-op: its convergence bit is left exactly where it
// was. Enabling a disabled tracker seeds it as not-converged. Disabling
// always wins, regardless of prior convergence state.
//
// The ordering this preserves is: disable, then set-converged (silently
// ignored because the tracker is disabled), then enable — the tracker
// comes back as not-converged, not converged, because enabling only seeds
// the not-converged state and never inherits a stale convergence bit from
// before the disable.
func (t *spatialLayerTracker) setEnabled(enabled bool) {
	if enabled {
		if t.state == layerDisabled {
			t.state = layerEnabledNotConverged
		}
		return
	}
	t.state = layerDisabled
}

// setConverged implements UpdateLayerQualityConvergence. A disabled tracker
// has no voice and silently ignores the call.
func (t *spatialLayerTracker) setConverged(converged bool) {
	if t.state == layerDisabled {
		return
	}
	if converged {
		t.state = layerEnabledConverged
	} else {
		t.state = layerEnabledNotConverged
	}
}

// resetToNotConverged is called on every new upstream frame: new content
// invalidates any steady state an enabled layer had reached. Disabled
// layers are left alone.
func (t *spatialLayerTracker) resetToNotConverged() {
	if t.state == layerEnabledConverged {
		t.state = layerEnabledNotConverged
	}
}
