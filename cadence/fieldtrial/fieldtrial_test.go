// SPDX-FileCopyrightText: 2025 The Pion community <https://pion.ly>
// SPDX-License-Identifier: MIT

package fieldtrial_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"framecadence/cadence/fieldtrial"
)

func TestStatic(t *testing.T) {
	src := fieldtrial.NewStatic("WebRTC-ZeroHertzScreenshare")
	assert.True(t, src.IsEnabled("WebRTC-ZeroHertzScreenshare"))
	assert.False(t, src.IsEnabled("Some-Other-Trial"))
}

func TestEnvParsesGroups(t *testing.T) {
	src := fieldtrial.NewEnv("WebRTC-ZeroHertzScreenshare/Enabled/Other-Trial/Disabled/")
	assert.True(t, src.IsEnabled("WebRTC-ZeroHertzScreenshare"))
	assert.False(t, src.IsEnabled("Other-Trial"))
	assert.False(t, src.IsEnabled("Unknown"))
}

func TestEnvEmptyString(t *testing.T) {
	src := fieldtrial.NewEnv("")
	assert.False(t, src.IsEnabled("Anything"))
}
