// SPDX-FileCopyrightText: 2025 The Pion community <https://pion.ly>
// SPDX-License-Identifier: MIT

package main

import "log/slog"

// ErrAttr wraps err for structured logging.
func ErrAttr(err error) slog.Attr {
	return slog.Any("error", err)
}
