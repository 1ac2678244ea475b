// SPDX-FileCopyrightText: 2025 The Pion community <https://pion.ly>
// SPDX-License-Identifier: MIT

package taskqueue

import (
	"sync"
	"time"

	"framecadence/cadence/clockutil"
)

type delayedTask struct {
	deadlineMs int64
	seq        int64
	fn         func()
}

// Manual is a fully synchronous, single-threaded cadence.TaskQueue
// implementation driven by an explicit Advance call instead of real timers.
// It is the test counterpart to Queue: it lets cadence test scenarios be
// expressed as "advance the clock by exactly this much and assert what
// fired", without any real sleeping. The manually-stepped design mirrors a
// virtual network manager driven by an explicit tick rather than
// wall-clock timers.
type Manual struct {
	mu        sync.Mutex
	clock     *clockutil.Simulated
	immediate []func()
	delayed   []delayedTask
	seq       int64
}

// NewManual returns a Manual queue that reads "now" from clock.
func NewManual(clock *clockutil.Simulated) *Manual {
	return &Manual{clock: clock}
}

// Post implements cadence.TaskQueue.
func (m *Manual) Post(task func()) {
	m.mu.Lock()
	m.immediate = append(m.immediate, task)
	m.mu.Unlock()
}

// PostDelayed implements cadence.TaskQueue.
func (m *Manual) PostDelayed(task func(), delay time.Duration) {
	m.mu.Lock()
	m.seq++
	m.delayed = append(m.delayed, delayedTask{
		deadlineMs: m.clock.NowMs() + delay.Milliseconds(),
		seq:        m.seq,
		fn:         task,
	})
	m.mu.Unlock()
}

// RunReady drains every immediate task, including ones posted by a task
// that itself just ran, without advancing the clock.
func (m *Manual) RunReady() {
	for {
		m.mu.Lock()
		if len(m.immediate) == 0 {
			m.mu.Unlock()
			return
		}
		task := m.immediate[0]
		m.immediate = m.immediate[1:]
		m.mu.Unlock()
		task()
	}
}

// Advance drains ready immediate tasks, then moves the clock forward by d,
// running every delayed task whose deadline falls at or before the new
// time in deadline order (ties broken by post order), including any
// further immediate or delayed tasks those tasks post along the way.
func (m *Manual) Advance(d time.Duration) {
	m.RunReady()
	target := m.clock.NowMs() + d.Milliseconds()

	for {
		next, ok := m.popNextDue(target)
		if !ok {
			m.clock.SetMs(target)
			return
		}
		m.clock.SetMs(next.deadlineMs)
		next.fn()
		m.RunReady()
	}
}

func (m *Manual) popNextDue(target int64) (delayedTask, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	idx := -1
	var best delayedTask
	for i, t := range m.delayed {
		if t.deadlineMs > target {
			continue
		}
		if idx == -1 || t.deadlineMs < best.deadlineMs || (t.deadlineMs == best.deadlineMs && t.seq < best.seq) {
			idx = i
			best = t
		}
	}
	if idx == -1 {
		return delayedTask{}, false
	}
	m.delayed = append(m.delayed[:idx], m.delayed[idx+1:]...)
	return best, true
}

// Pending reports how many delayed tasks are still scheduled. Useful in
// tests that assert a repeat sequence stopped.
func (m *Manual) Pending() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.delayed)
}
