// SPDX-FileCopyrightText: 2025 The Pion community <https://pion.ly>
// SPDX-License-Identifier: MIT

package main

import (
	"flag"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config configures the cadence-demo binary: a synthetic screenshare
// source whose frames are pushed through a cadence.Adapter and packetized
// onto an outbound RTP track.
type Config struct {
	MinFps             int    `yaml:"min_fps"`
	MaxFps             int    `yaml:"max_fps"`
	NumSimulcastLayers int    `yaml:"num_simulcast_layers"`
	FieldTrials        string `yaml:"field_trials"`
	IceServer          string `yaml:"ice_server"`
}

// LoadConfig parses -config from the command line and unmarshals the YAML
// document at that path.
func LoadConfig() (Config, error) {
	configPath := flag.String("config", "", "path to config")
	flag.Parse()
	configBytes, err := os.ReadFile(*configPath)
	if err != nil {
		return Config{}, fmt.Errorf("read file: %w", err)
	}
	var config Config
	if err := yaml.Unmarshal(configBytes, &config); err != nil {
		return Config{}, fmt.Errorf("yaml unmarshal: %w", err)
	}
	if config.NumSimulcastLayers < 1 {
		config.NumSimulcastLayers = 1
	}
	return config, nil
}
