// SPDX-FileCopyrightText: 2025 The Pion community <https://pion.ly>
// SPDX-License-Identifier: MIT

// Package ratewindow implements a windowed event-rate estimator, used by
// the cadence adapter's passthrough mode to track the input frame rate.
package ratewindow

import "sync"

// Window estimates an event rate by counting occurrences within a trailing
// time window. It mirrors WebRTC's RateStatistics: a window size in
// milliseconds and a scale factor that converts "events per window" into
// whatever unit the caller wants ("events per second" for scale=1000 with a
// window measured in milliseconds).
type Window struct {
	mu       sync.Mutex
	windowMs int64
	scale    float64
	samples  []sample
}

type sample struct {
	atMs  int64
	count uint32
}

// New returns a Window averaging over the trailing windowMs milliseconds,
// reporting rates scaled by scale.
func New(windowMs int64, scale float64) *Window {
	return &Window{windowMs: windowMs, scale: scale}
}

// Update records count occurrences at nowMs.
func (w *Window) Update(count uint32, nowMs int64) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.evict(nowMs)
	w.samples = append(w.samples, sample{atMs: nowMs, count: count})
}

// Rate returns the estimated rate as of nowMs, and false if there are fewer
// than two samples in the window.
func (w *Window) Rate(nowMs int64) (uint32, bool) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.evict(nowMs)
	if len(w.samples) < 2 {
		return 0, false
	}

	var total uint32
	for _, s := range w.samples {
		total += s.count
	}
	elapsedMs := nowMs - w.samples[0].atMs
	if elapsedMs <= 0 {
		return 0, false
	}

	rate := float64(total) * w.scale / float64(elapsedMs)
	return uint32(rate + 0.5), true
}

func (w *Window) evict(nowMs int64) {
	cutoff := nowMs - w.windowMs
	i := 0
	for i < len(w.samples) && w.samples[i].atMs < cutoff {
		i++
	}
	w.samples = w.samples[i:]
}
