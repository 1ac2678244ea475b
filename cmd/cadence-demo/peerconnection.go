// SPDX-FileCopyrightText: 2025 The Pion community <https://pion.ly>
// SPDX-License-Identifier: MIT

package main

import (
	"fmt"

	"github.com/pion/interceptor"
	"github.com/pion/webrtc/v4"
)

// PeerConnectionFactory builds PeerConnections sharing one negotiated
// MediaEngine and interceptor registry.
type PeerConnectionFactory struct {
	api       *webrtc.API
	iceServer string
}

func newPeerConnectionFactory(config Config) (PeerConnectionFactory, error) {
	m := &webrtc.MediaEngine{}
	if err := m.RegisterDefaultCodecs(); err != nil {
		return PeerConnectionFactory{}, fmt.Errorf("register default codecs: %w", err)
	}

	ir := &interceptor.Registry{}
	if err := webrtc.RegisterDefaultInterceptors(m, ir); err != nil {
		return PeerConnectionFactory{}, fmt.Errorf("register default interceptors: %w", err)
	}

	return PeerConnectionFactory{
		api:       webrtc.NewAPI(webrtc.WithMediaEngine(m), webrtc.WithInterceptorRegistry(ir)),
		iceServer: config.IceServer,
	}, nil
}

func (f PeerConnectionFactory) New() (*webrtc.PeerConnection, error) {
	if f.iceServer == "" {
		return f.api.NewPeerConnection(webrtc.Configuration{})
	}
	return f.api.NewPeerConnection(webrtc.Configuration{
		ICEServers: []webrtc.ICEServer{{URLs: []string{f.iceServer}}},
	})
}
