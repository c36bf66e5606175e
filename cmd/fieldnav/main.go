// Command fieldnav runs the live evacuation navigator for one device. It
// reads GPS fixes over MQTT, polls the platform for incidents and shelters
// and logs every state change. Lines on stdin answer the shelter prompt
// ("y"/"n") or force a recalculation ("r").
package main

import (
	"bufio"
	"context"
	"errors"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/jonboulle/clockwork"

	"drp/internal/components"
	"drp/internal/config"
	"drp/internal/domain"
	"drp/internal/drpclient"
	"drp/internal/evacuation"
	"drp/internal/mqtt"
	"drp/internal/navigator"
	"drp/internal/observability"
	"drp/internal/ors"
)

func main() {
	if err := run(); err != nil {
		os.Exit(1)
	}
}

func run() error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := config.LoadField(ctx)
	if err != nil {
		slog.Error("load config failed", "err", err)
		return err
	}
	logger := components.SetupLogger(cfg.Env).With(slog.String("device_id", cfg.Field.DeviceID))

	mqttCfg := cfg.MQTT
	mqttCfg.ClientID = "fieldnav-" + cfg.Field.DeviceID
	client, err := mqtt.NewClient(mqttCfg, logger)
	if err != nil {
		logger.Error("mqtt connect failed", "err", err)
		return err
	}
	defer client.Disconnect(250)

	clock := clockwork.NewRealClock()
	router := ors.NewClient(cfg.ORS.BaseURL, cfg.ORS.APIKey, cfg.ORS.Timeout, observability.NewMetrics(), logger)
	source := mqtt.NewDeviceSource(client, cfg.Field.DeviceID, clock, logger)

	nav := navigator.New(navigator.Config{
		HitAreaRadius:    cfg.Navigator.HitAreaRadius,
		ArrivalThreshold: cfg.Navigator.ArrivalThreshold,
		RouteTimeout:     cfg.Navigator.RouteTimeout,
		Watch: navigator.WatchOptions{
			EnableHighAccuracy:   true,
			DistanceFilterMeters: cfg.Navigator.DistanceFilter,
			MinInterval:          cfg.Navigator.MinInterval,
		},
	}, evacuation.NewPlanner(router, logger), source, clock, logger)

	nav.OnChange(func(s navigator.Snapshot) {
		attrs := []any{
			slog.String("state", string(s.State)),
			slog.Bool("inside", s.Inside),
			slog.Int("hit_areas", len(s.HitAreas)),
		}
		if s.Route.Mode != domain.RouteNone {
			attrs = append(attrs,
				slog.String("route_mode", string(s.Route.Mode)),
				slog.Int("route_points", len(s.Route.Route)),
			)
		}
		if s.Destination != nil {
			attrs = append(attrs, slog.String("shelter", s.Destination.Title))
		}
		if s.Message != "" {
			attrs = append(attrs, slog.String("message", s.Message))
		}
		logger.Info("navigator", attrs...)
	})

	api := drpclient.NewClient(cfg.Field.APIURL, 10*time.Second, logger)
	go refresh(ctx, api, nav, cfg.Field.RefreshInterval, logger)
	go readCommands(os.Stdin, nav)

	if err := nav.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		logger.Error("navigator stopped", "err", err)
		return err
	}
	logger.Info("navigator stopped")
	return nil
}

// refresh pulls the incident and shelter sets immediately and then on every
// tick. A failed fetch keeps the previous set.
func refresh(ctx context.Context, api *drpclient.Client, nav *navigator.Navigator, every time.Duration, logger *slog.Logger) {
	ticker := time.NewTicker(every)
	defer ticker.Stop()

	for {
		if incidents, err := api.ActiveIncidents(ctx); err != nil {
			logger.Warn("fetch incidents failed", slog.Any("error", err))
		} else {
			nav.UpdateIncidents(incidents)
		}
		if shelters, err := api.Shelters(ctx); err != nil {
			logger.Warn("fetch shelters failed", slog.Any("error", err))
		} else {
			nav.UpdateShelters(shelters)
		}

		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}
	}
}

func readCommands(in io.Reader, nav *navigator.Navigator) {
	sc := bufio.NewScanner(in)
	for sc.Scan() {
		switch strings.ToLower(strings.TrimSpace(sc.Text())) {
		case "y", "yes":
			nav.AnswerPrompt(true)
		case "n", "no":
			nav.AnswerPrompt(false)
		case "r":
			nav.Recalculate()
		}
	}
}
