// SPDX-FileCopyrightText: 2025 The Pion community <https://pion.ly>
// SPDX-License-Identifier: MIT

// Command cadence-demo drives a synthetic screenshare source through a
// cadence.Adapter and packetizes whatever it schedules onto an outbound
// WebRTC video track, so the zero-hertz cadence behavior can be observed
// end to end without a real capturer or encoder.
package main

import (
	"context"
	"log/slog"
	"os/signal"
	"syscall"
	"time"

	"github.com/pion/logging"
	"github.com/pion/webrtc/v4"
	"golang.org/x/sync/errgroup"

	"framecadence/cadence"
	"framecadence/cadence/clockutil"
	"framecadence/cadence/constraintmetrics"
	"framecadence/cadence/encodersink"
	"framecadence/cadence/fieldtrial"
	"framecadence/cadence/frame"
	"framecadence/cadence/taskqueue"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := run(ctx); err != nil {
		slog.Error("cadence-demo exited", ErrAttr(err))
	}
}

func run(ctx context.Context) error {
	config, err := LoadConfig()
	if err != nil {
		return err
	}

	pcFactory, err := newPeerConnectionFactory(config)
	if err != nil {
		return err
	}
	pc, err := pcFactory.New()
	if err != nil {
		return err
	}
	defer pc.Close() //nolint:errcheck

	sink, err := encodersink.New(webrtc.RTPCodecCapability{MimeType: webrtc.MimeTypeVP8, ClockRate: 90000}, "screenshare", "cadence-demo")
	if err != nil {
		return err
	}
	if _, err := pc.AddTrack(sink.Track()); err != nil {
		return err
	}

	queue := taskqueue.New()
	defer queue.Close()

	adapter, err := cadence.New(
		clockutil.NewReal(),
		queue,
		cadence.WithFieldTrial(fieldtrial.NewEnv(config.FieldTrials)),
		cadence.WithMetrics(constraintmetrics.NewLoggingSink(logging.NewDefaultLoggerFactory().NewLogger("cadence_demo_metrics"))),
	)
	if err != nil {
		return err
	}
	if err := adapter.Initialize(sink); err != nil {
		return err
	}

	minFps, maxFps := config.MinFps, config.MaxFps
	if err := adapter.OnConstraintsChanged(cadence.SourceConstraints{MinFps: &minFps, MaxFps: &maxFps}); err != nil {
		return err
	}
	if err := adapter.SetZeroHertzParams(&cadence.ZeroHertzParams{NumSimulcastLayers: config.NumSimulcastLayers}); err != nil {
		return err
	}

	return generateSyntheticFrames(ctx, adapter, maxFps)
}

// generateSyntheticFrames stands in for a real capturer: it pushes a fresh
// frame at maxFps until the context is cancelled, so the adapter's cadence
// behavior can be exercised without a camera or screen grabber.
func generateSyntheticFrames(ctx context.Context, adapter *cadence.Adapter, maxFps int) error {
	if maxFps <= 0 {
		maxFps = 30
	}
	ticker := time.NewTicker(time.Second / time.Duration(maxFps))
	defer ticker.Stop()

	wg, ctx := errgroup.WithContext(ctx)
	wg.Go(func() error {
		for {
			select {
			case <-ctx.Done():
				return nil
			case now := <-ticker.C:
				f := frame.New([]byte("synthetic-frame"))
				f.SetTimestampUs(now.UnixMicro())
				adapter.OnFrame(f)
				adapter.UpdateFrameRate()
			}
		}
	})
	return wg.Wait()
}
