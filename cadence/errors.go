// SPDX-FileCopyrightText: 2025 The Pion community <https://pion.ly>
// SPDX-License-Identifier: MIT

package cadence

import "errors"

var (
	// ErrAlreadyInitialized is returned by Initialize when it has already
	// been called once on this adapter.
	ErrAlreadyInitialized = errors.New("cadence: adapter already initialized")
	// ErrNotInitialized is returned by operations that require Initialize
	// to have run first.
	ErrNotInitialized = errors.New("cadence: adapter not initialized")
	// ErrInvalidLayerIndex is returned by the per-layer operations when
	// spatialIndex is out of range for the configured simulcast layer
	// count. It signals a programmer error in the caller, not a runtime
	// condition.
	ErrInvalidLayerIndex = errors.New("cadence: invalid spatial layer index")
	// ErrInvalidZeroHertzParams is returned when ZeroHertzParams fails
	// validation (currently: fewer than one simulcast layer configured).
	ErrInvalidZeroHertzParams = errors.New("cadence: zero hertz params must configure at least one simulcast layer")
	// ErrWrongThread marks a sequence-checker violation: an operation that
	// must run on the task queue was invoked from somewhere else.
	// Production code only logs the violation (see Adapter.OnFrame's race
	// guard) rather than returning it, so this sentinel mainly exists for
	// tests to assert against.
	ErrWrongThread = errors.New("cadence: operation invoked off its required task queue")
)
