// SPDX-FileCopyrightText: 2025 The Pion community <https://pion.ly>
// SPDX-License-Identifier: MIT

// Package frame defines the value-like frame handle passed between a video
// source and the cadence adapter.
package frame

import "github.com/google/uuid"

// UpdateRect describes which pixel region changed since the previous frame.
// The zero value represents "no pixels changed".
type UpdateRect struct {
	OffsetX int
	OffsetY int
	Width   int
	Height  int
}

// Empty reports whether the rectangle carries no change.
func (r UpdateRect) Empty() bool {
	return r.Width == 0 || r.Height == 0
}

// Frame is a cheap-to-copy handle to a video frame. Copying a Frame never
// copies the pixel payload: the underlying buffer is shared between copies,
// exactly like a slice header. Only the scalar fields (timestamps, update
// rectangle) are per-handle and may diverge between copies, which is what
// lets the zero-hertz cadence machinery adjust a repeat's timestamps without
// touching the frame the source originally produced.
type Frame struct {
	id          uuid.UUID
	data        []byte
	timestampUs int64
	ntpTimeMs   int64
	updateRect  UpdateRect
}

// New creates a Frame wrapping data. data is not copied; the caller must not
// mutate it after handing it to New.
func New(data []byte) Frame {
	return Frame{id: uuid.New(), data: data}
}

// ID identifies the frame's content independent of any later timestamp
// adjustments applied to repeats derived from it.
func (f Frame) ID() uuid.UUID {
	return f.id
}

// Data returns the shared pixel payload. Callers must treat it as read-only.
func (f Frame) Data() []byte {
	return f.data
}

// TimestampUs returns the presentation timestamp in microseconds, or 0 if
// unset.
func (f Frame) TimestampUs() int64 {
	return f.timestampUs
}

// SetTimestampUs sets the presentation timestamp in microseconds.
func (f *Frame) SetTimestampUs(us int64) {
	f.timestampUs = us
}

// NtpTimeMs returns the NTP timestamp in milliseconds, or 0 if unset.
func (f Frame) NtpTimeMs() int64 {
	return f.ntpTimeMs
}

// SetNtpTimeMs sets the NTP timestamp in milliseconds.
func (f *Frame) SetNtpTimeMs(ms int64) {
	f.ntpTimeMs = ms
}

// UpdateRect returns the frame's current update rectangle.
func (f Frame) UpdateRect() UpdateRect {
	return f.updateRect
}

// SetUpdateRect overwrites the frame's update rectangle.
func (f *Frame) SetUpdateRect(r UpdateRect) {
	f.updateRect = r
}

// WithUpdateRect sets the frame's initial update rectangle at construction
// time, before the frame enters the adapter.
func (f Frame) WithUpdateRect(r UpdateRect) Frame {
	f.updateRect = r
	return f
}
