// SPDX-FileCopyrightText: 2025 The Pion community <https://pion.ly>
// SPDX-License-Identifier: MIT

package cadence

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type fakeMetrics struct {
	booleans map[string]bool
	counts   map[string]int
	sparse   map[string]int
}

func newFakeMetrics() *fakeMetrics {
	return &fakeMetrics{
		booleans: map[string]bool{},
		counts:   map[string]int{},
		sparse:   map[string]int{},
	}
}

func (f *fakeMetrics) ObserveBoolean(name string, value bool)  { f.booleans[name] = value }
func (f *fakeMetrics) ObserveCount(name string, value, _ int)  { f.counts[name] = value }
func (f *fakeMetrics) ObserveSparse(name string, value, _ int) { f.sparse[name] = value }

func TestReportConstraintMetricsNilConstraints(t *testing.T) {
	sink := newFakeMetrics()
	reportConstraintMetrics(sink, nil)
	assert.Equal(t, false, sink.booleans[metricConstraintsExists])
	assert.Empty(t, sink.counts)
}

func TestReportConstraintMetricsMinUnset(t *testing.T) {
	sink := newFakeMetrics()
	reportConstraintMetrics(sink, &SourceConstraints{MaxFps: intPtr(30)})
	assert.True(t, sink.booleans[metricConstraintsExists])
	assert.False(t, sink.booleans[metricMinExists])
	assert.True(t, sink.booleans[metricMaxExists])
	assert.Equal(t, 30, sink.counts[metricMaxValue])
	assert.Equal(t, 30, sink.counts[metricMinUnsetMax])
	assert.NotContains(t, sink.sparse, metricSixtyMinPlusMaxMinusOne)
}

func TestReportConstraintMetricsMinLessThanMax(t *testing.T) {
	sink := newFakeMetrics()
	reportConstraintMetrics(sink, &SourceConstraints{MinFps: intPtr(0), MaxFps: intPtr(30)})
	assert.Equal(t, 0, sink.counts[metricMinLessThanMaxMin])
	assert.Equal(t, 30, sink.counts[metricMinLessThanMaxMax])
	assert.Equal(t, 0*60+30-1, sink.sparse[metricSixtyMinPlusMaxMinusOne])
}

func TestReportConstraintMetricsMinNotLessThanMaxStillReportsSparse(t *testing.T) {
	sink := newFakeMetrics()
	reportConstraintMetrics(sink, &SourceConstraints{MinFps: intPtr(30), MaxFps: intPtr(30)})
	assert.NotContains(t, sink.counts, metricMinLessThanMaxMin)
	assert.NotContains(t, sink.counts, metricMinLessThanMaxMax)
	assert.Equal(t, 30*60+30-1, sink.sparse[metricSixtyMinPlusMaxMinusOne])
}
