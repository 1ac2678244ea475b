// SPDX-FileCopyrightText: 2025 The Pion community <https://pion.ly>
// SPDX-License-Identifier: MIT

package constraintmetrics

import "github.com/pion/logging"

// LoggingSink is a Metrics sink that writes every observation to a
// pion/logging.LeveledLogger instead of accumulating it, useful for the
// demo binary where there's no metrics backend to scrape.
type LoggingSink struct {
	log logging.LeveledLogger
}

// NewLoggingSink wraps log.
func NewLoggingSink(log logging.LeveledLogger) *LoggingSink {
	return &LoggingSink{log: log}
}

// ObserveBoolean implements cadence.Metrics.
func (s *LoggingSink) ObserveBoolean(name string, value bool) {
	s.log.Infof("%s = %v", name, value)
}

// ObserveCount implements cadence.Metrics. The emission primitive clamps
// counts to 100.
func (s *LoggingSink) ObserveCount(name string, value, boundary int) {
	if value > 100 {
		value = 100
	}
	s.log.Infof("%s = %d (boundary %d)", name, value, boundary)
}

// ObserveSparse implements cadence.Metrics.
func (s *LoggingSink) ObserveSparse(name string, value, boundary int) {
	s.log.Infof("%s = %d (sparse boundary %d)", name, value, boundary)
}
