// SPDX-FileCopyrightText: 2025 The Pion community <https://pion.ly>
// SPDX-License-Identifier: MIT

package cadence

import "github.com/pion/logging"

// Option configures an Adapter at construction time.
type Option func(*Adapter) error

// WithFieldTrial supplies the field trial source the adapter consults for
// WebRTC-ZeroHertzScreenshare at construction time. Without this option the
// trial is treated as disabled and the adapter never activates zero-hertz
// mode.
func WithFieldTrial(source FieldTrial) Option {
	return func(a *Adapter) error {
		a.fieldTrial = source
		return nil
	}
}

// WithMetrics supplies the sink ConstraintMetrics are reported through.
// Without this option metrics observations are discarded.
func WithMetrics(metrics Metrics) Option {
	return func(a *Adapter) error {
		a.metrics = metrics
		return nil
	}
}

// WithLoggerFactory overrides the pion/logging factory the adapter derives
// its own logger from. Without this option a default factory is used.
func WithLoggerFactory(factory logging.LoggerFactory) Option {
	return func(a *Adapter) error {
		a.log = factory.NewLogger("cadence_adapter")
		return nil
	}
}
