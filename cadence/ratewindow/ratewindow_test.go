// SPDX-FileCopyrightText: 2025 The Pion community <https://pion.ly>
// SPDX-License-Identifier: MIT

package ratewindow_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"framecadence/cadence/ratewindow"
)

func TestRateRequiresTwoSamples(t *testing.T) {
	w := ratewindow.New(1000, 1000)
	_, ok := w.Rate(0)
	assert.False(t, ok)

	w.Update(1, 0)
	_, ok = w.Rate(0)
	assert.False(t, ok, "a single sample is not enough to estimate a rate")
}

func TestRateTracksSteadyInput(t *testing.T) {
	w := ratewindow.New(1000, 1000)
	for ms := int64(0); ms <= 1000; ms += 100 {
		w.Update(1, ms)
	}

	rate, ok := w.Rate(1000)
	assert.True(t, ok)
	assert.InDelta(t, 11, rate, 1)
}

func TestRateEvictsOldSamples(t *testing.T) {
	w := ratewindow.New(1000, 1000)
	w.Update(1, 0)
	w.Update(1, 100)

	rate, ok := w.Rate(5000)
	assert.False(t, ok, "samples older than the window must be evicted")
	assert.Zero(t, rate)
}
