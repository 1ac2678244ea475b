// SPDX-FileCopyrightText: 2025 The Pion community <https://pion.ly>
// SPDX-License-Identifier: MIT

package cadence

// Metric names for the one-shot frame-rate constraint observations.
const (
	metricConstraintsExists        = "Screenshare.FrameRateConstraints.Exists"
	metricMinExists                = "Screenshare.FrameRateConstraints.Min.Exists"
	metricMinValue                 = "Screenshare.FrameRateConstraints.Min.Value"
	metricMaxExists                = "Screenshare.FrameRateConstraints.Max.Exists"
	metricMaxValue                 = "Screenshare.FrameRateConstraints.Max.Value"
	metricMinUnsetMax              = "Screenshare.FrameRateConstraints.MinUnset.Max"
	metricMinLessThanMaxMin        = "Screenshare.FrameRateConstraints.MinLessThanMax.Min"
	metricMinLessThanMaxMax        = "Screenshare.FrameRateConstraints.MinLessThanMax.Max"
	metricSixtyMinPlusMaxMinusOne  = "Screenshare.FrameRateConstraints.60MinPlusMaxMinusOne"
)

// countBoundary is the clamp every bounded-count metric is reported with.
const countBoundary = 100

// sparseBoundary is the multi-dimensional bucket count: 60 *
// max(min_fps) + max(max_fps) - 1, with both capped at 60.
const sparseBoundary = 60*60 + 60 - 1

// reportConstraintMetrics runs at most once each time zero-hertz params
// are set (the adapter gates repeat calls before invoking this) and
// reports which of
// SourceConstraints' fields were present, and a multi-dimensional bucket
// encoding both when both are present.
//
// The sparse histogram is emitted whenever both min and max are present,
// independent of the MinLessThanMax pair below it, which is gated on
// min < max: that gate only wraps the MinLessThanMax.{Min,Max} pair and
// falls through unconditionally into the sparse histogram.
func reportConstraintMetrics(sink Metrics, constraints *SourceConstraints) {
	sink.ObserveBoolean(metricConstraintsExists, constraints != nil)
	if constraints == nil {
		return
	}

	sink.ObserveBoolean(metricMinExists, constraints.MinFps != nil)
	if constraints.MinFps != nil {
		sink.ObserveCount(metricMinValue, *constraints.MinFps, countBoundary)
	}

	sink.ObserveBoolean(metricMaxExists, constraints.MaxFps != nil)
	if constraints.MaxFps != nil {
		sink.ObserveCount(metricMaxValue, *constraints.MaxFps, countBoundary)
	}

	if constraints.MinFps == nil {
		if constraints.MaxFps != nil {
			sink.ObserveCount(metricMinUnsetMax, *constraints.MaxFps, countBoundary)
		}
		return
	}
	if constraints.MaxFps == nil {
		return
	}

	if *constraints.MinFps < *constraints.MaxFps {
		sink.ObserveCount(metricMinLessThanMaxMin, *constraints.MinFps, countBoundary)
		sink.ObserveCount(metricMinLessThanMaxMax, *constraints.MaxFps, countBoundary)
	}

	sink.ObserveSparse(metricSixtyMinPlusMaxMinusOne, *constraints.MinFps*60+*constraints.MaxFps-1, sparseBoundary)
}
