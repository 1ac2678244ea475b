// SPDX-FileCopyrightText: 2025 The Pion community <https://pion.ly>
// SPDX-License-Identifier: MIT

// Package cadence implements a frame cadence adapter: an intermediary
// between a video frame source and an encoder pipeline that regulates the
// rate and timing at which frames are delivered downstream.
package cadence

import (
	"time"

	"framecadence/cadence/frame"
)

// Clock is the monotonic time source the adapter is driven by. See
// cadence/clockutil for the concrete implementations.
type Clock interface {
	Now() time.Time
	NowMs() int64
	NowUs() int64
}

// TaskQueue is the single-threaded FIFO executor the adapter posts frame
// delivery onto and zero-hertz mode schedules its dispatches and repeats
// on. See cadence/taskqueue for the concrete implementations.
type TaskQueue interface {
	Post(task func())
	PostDelayed(task func(), delay time.Duration)
}

// EncoderCallback is the sink the adapter delivers frames to.
type EncoderCallback interface {
	// OnFrame delivers a frame that either passed straight through or was
	// produced by the zero-hertz repeat machinery.
	OnFrame(postTime time.Time, framesScheduledForProcessing int32, f frame.Frame)
	// OnDiscardedFrame notifies the callback that an upstream frame was
	// dropped before it ever reached the adapter.
	OnDiscardedFrame()
}

// FieldTrial answers whether a named trial is enabled. The adapter checks
// zeroHertzScreenshareTrialName exactly once, at construction.
type FieldTrial interface {
	IsEnabled(name string) bool
}

// Metrics is the emission primitive behind the adapter's one-shot
// frame-rate constraint observations. Counts are clamped to 100 by the
// sink itself.
type Metrics interface {
	ObserveBoolean(name string, value bool)
	ObserveCount(name string, value, boundary int)
	ObserveSparse(name string, value, boundary int)
}

// adapterMode is the common shape of PassthroughMode and ZeroHertzMode. The
// adapter holds at most one live instance at a time and switches by
// reconstructing, never by mutating in place.
type adapterMode interface {
	OnFrame(postTime time.Time, framesScheduledForProcessing int32, f frame.Frame)
	InputFrameRateFps() (uint32, bool)
	UpdateFrameRate()
}
