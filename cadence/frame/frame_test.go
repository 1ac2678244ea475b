// SPDX-FileCopyrightText: 2025 The Pion community <https://pion.ly>
// SPDX-License-Identifier: MIT

package frame_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"framecadence/cadence/frame"
)

func TestCopySharesBuffer(t *testing.T) {
	original := frame.New([]byte{1, 2, 3})
	clone := original

	clone.SetTimestampUs(42)

	assert.Equal(t, int64(0), original.TimestampUs(), "mutating the clone must not affect the original's scalar fields")
	assert.Same(t, &original.Data()[0], &clone.Data()[0], "clones must share the same backing payload")
	assert.Equal(t, original.ID(), clone.ID(), "identity survives a value copy")
}

func TestUpdateRectEmpty(t *testing.T) {
	assert.True(t, frame.UpdateRect{}.Empty())
	assert.True(t, frame.UpdateRect{Width: 10}.Empty())
	assert.False(t, frame.UpdateRect{Width: 10, Height: 10}.Empty())
}

func TestWithUpdateRect(t *testing.T) {
	f := frame.New(nil).WithUpdateRect(frame.UpdateRect{Width: 4, Height: 4})
	assert.False(t, f.UpdateRect().Empty())
}
