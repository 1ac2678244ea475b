// SPDX-FileCopyrightText: 2025 The Pion community <https://pion.ly>
// SPDX-License-Identifier: MIT

// Package constraintmetrics implements the emission primitives behind the
// cadence adapter's one-shot constraint-shape counters. It stays free of
// any dependency on package cadence: its types satisfy cadence.Metrics
// structurally, the same way interceptors satisfy pion/interceptor's
// interfaces without importing each other.
package constraintmetrics

import "sync"

// Observation is a single recorded metric emission, kept for tests and for
// anything that wants to inspect what a Counters sink has seen so far.
type Observation struct {
	Name     string
	Value    int
	Boundary int
}

// Counters is an in-process Metrics sink that keeps the last value
// observed under each name, guarded by a mutex. It exists because no
// histogram or metrics client backend is otherwise wired into this module
// for one-shot observations; the demo binary reports through LoggingSink
// instead.
type Counters struct {
	mu        sync.Mutex
	booleans  map[string]bool
	counts    map[string]Observation
	sparse    map[string]Observation
	observed  []string
}

// NewCounters returns an empty Counters sink.
func NewCounters() *Counters {
	return &Counters{
		booleans: make(map[string]bool),
		counts:   make(map[string]Observation),
		sparse:   make(map[string]Observation),
	}
}

// ObserveBoolean implements cadence.Metrics.
func (c *Counters) ObserveBoolean(name string, value bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.booleans[name] = value
	c.observed = append(c.observed, name)
}

// ObserveCount implements cadence.Metrics. The emission primitive clamps
// counts to 100.
func (c *Counters) ObserveCount(name string, value, boundary int) {
	if value > 100 {
		value = 100
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.counts[name] = Observation{Name: name, Value: value, Boundary: boundary}
	c.observed = append(c.observed, name)
}

// ObserveSparse implements cadence.Metrics.
func (c *Counters) ObserveSparse(name string, value, boundary int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.sparse[name] = Observation{Name: name, Value: value, Boundary: boundary}
	c.observed = append(c.observed, name)
}

// Boolean returns the last boolean recorded under name.
func (c *Counters) Boolean(name string) (bool, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	v, ok := c.booleans[name]
	return v, ok
}

// Count returns the last bounded count recorded under name.
func (c *Counters) Count(name string) (Observation, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	v, ok := c.counts[name]
	return v, ok
}

// Sparse returns the last sparse enumeration recorded under name.
func (c *Counters) Sparse(name string) (Observation, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	v, ok := c.sparse[name]
	return v, ok
}

// Observed returns, in emission order, the names observed so far.
func (c *Counters) Observed() []string {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]string, len(c.observed))
	copy(out, c.observed)
	return out
}
