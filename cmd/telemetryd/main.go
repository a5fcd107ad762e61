/*
 * Copyright 2025 Heliotrace Systems, Inc.
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"time"

	"github.com/heliotrace/solarmesh/pkg/adapter"
	"github.com/heliotrace/solarmesh/pkg/adapter/mqtt"
	"github.com/heliotrace/solarmesh/pkg/auth"
	"github.com/heliotrace/solarmesh/pkg/catalog"
	"github.com/heliotrace/solarmesh/pkg/config"
	"github.com/heliotrace/solarmesh/pkg/db"
	"github.com/heliotrace/solarmesh/pkg/dispatch"
	"github.com/heliotrace/solarmesh/pkg/events"
	"github.com/heliotrace/solarmesh/pkg/ingest"
	"github.com/heliotrace/solarmesh/pkg/lifecycle"
	"github.com/heliotrace/solarmesh/pkg/logger"
	"github.com/heliotrace/solarmesh/pkg/models"
	"github.com/heliotrace/solarmesh/pkg/natsutil"
	"github.com/heliotrace/solarmesh/pkg/poller"
	"github.com/heliotrace/solarmesh/pkg/registry"
)

var errFailedToLoadConfig = fmt.Errorf("failed to load config")

// commandRoutes maps control-plane command types to the wire action each
// one lowers to. Params pass through untouched; the device firmware
// interprets them under the generic action.
var commandRoutes = map[string]string{
	models.ActionRead:      models.ActionRead,
	models.ActionWrite:     models.ActionWrite,
	models.ActionWriteMany: models.ActionWriteMany,
	models.ActionRaw:       models.ActionRaw,
	models.ActionPing:      models.ActionPing,
	"set_power_mode":       models.ActionWrite,
	"set_tou_windows":      models.ActionWriteMany,
	"reboot":               models.ActionRaw,
}

func main() {
	if err := run(); err != nil {
		log.Fatalf("Fatal error: %v", err)
	}
}

func run() error {
	configPath := flag.String("config", "/etc/solarmesh/telemetryd.json", "Path to telemetryd config file")
	flag.Parse()

	ctx := context.Background()

	cfgLoader := config.NewConfig(nil)

	var cfg models.TelemetrydConfig

	if err := cfgLoader.LoadAndValidate(ctx, *configPath, &cfg); err != nil {
		return fmt.Errorf("%w: %w", errFailedToLoadConfig, err)
	}

	logConfig := cfg.Logging
	if logConfig == nil {
		logConfig = &logger.Config{
			Level:  "info",
			Output: "stdout",
		}
	}

	daemonLogger, err := lifecycle.CreateComponentLogger(ctx, "telemetryd", logConfig)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	// Opens the pool and applies pending migrations.
	database, err := db.New(ctx, &cfg.Database, daemonLogger)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer database.Close()

	deviceRegistry := registry.NewDeviceRegistry(database, &cfg.Auth, daemonLogger)
	metricCatalog := catalog.NewCatalog(database, daemonLogger)
	ingestor := ingest.NewIngestor(database, metricCatalog, daemonLogger)
	authService := auth.NewAuth(deviceRegistry, &cfg.Auth, daemonLogger)

	// Control-plane fan-out is optional; without it events stay local and
	// device snapshots queue until a broker is configured.
	var (
		eventSink events.Publisher
		syncOut   poller.SyncPublisher
	)

	if cfg.Events != nil && cfg.Events.Enabled && cfg.NATS != nil {
		nc, err := natsutil.ConnectWithSecurity(cfg.NATS.URL, cfg.NATS.Security, daemonLogger)
		if err != nil {
			return fmt.Errorf("failed to connect to NATS: %w", err)
		}
		defer nc.Close()

		publisher, err := natsutil.CreateEventPublisherWithDomain(
			ctx, nc, cfg.NATS.Domain, cfg.Events.StreamName, cfg.Events.Subjects, daemonLogger)
		if err != nil {
			return fmt.Errorf("failed to create event publisher: %w", err)
		}

		eventSink = publisher
		syncOut = publisher
	}

	journal := events.NewJournal(database, eventSink, daemonLogger)

	executors := dispatch.NewRegistry()
	dispatcher := dispatch.NewDispatcher(database, executors, daemonLogger)

	drivers := adapter.NewRegistry()
	drivers.Register(models.ProtocolMQTT, mqtt.NewAdapter)

	brokerAddr := ""
	if cfg.MQTT != nil {
		brokerAddr = cfg.MQTT.BrokerURL
	}

	adapterDeps := adapter.Deps{
		Logger:      daemonLogger,
		MQTT:        cfg.MQTT,
		OnTelemetry: telemetryHandler(ingestor, deviceRegistry, daemonLogger),
		OnStatus:    statusHandler(deviceRegistry, journal, brokerAddr, daemonLogger),
	}

	p, err := poller.New(poller.Config{
		Scheduler:      cfg.Scheduler,
		Retention:      cfg.Retention,
		SessionMaxIdle: time.Duration(cfg.Auth.SessionTimeout),
		Devices:        deviceRegistry,
		Ingestor:       ingestor,
		Journal:        journal,
		Commands:       dispatcher,
		Auth:           authService,
		DB:             database,
		Adapters:       drivers,
		AdapterDeps:    adapterDeps,
		Sync:           syncOut,
	}, nil, daemonLogger)
	if err != nil {
		return err
	}

	for commandType, action := range commandRoutes {
		executors.Register(commandType, adapterExecutor(p, deviceRegistry, action))
	}

	attachConnectedAdapters(ctx, p, deviceRegistry, drivers, adapterDeps, daemonLogger)

	return lifecycle.Run(ctx, &lifecycle.RunOptions{
		ServiceName: "telemetryd",
		Service:     p,
		Logger:      daemonLogger,
	})
}

// telemetryHandler ingests every snapshot a device pushes and keeps its
// session alive while data flows.
func telemetryHandler(ingestor ingest.Service, devices registry.Manager, log logger.Logger) adapter.TelemetryHandler {
	return func(ctx context.Context, device *models.Device, snapshot *models.Telemetry) {
		points := ingest.SnapshotPoints(device, snapshot)
		if len(points) == 0 {
			return
		}

		source := ingest.Source{Type: ingest.SourceTypeMQTT, ID: device.ID}

		if _, err := ingestor.IngestPoints(ctx, source, points); err != nil {
			log.Error().Err(err).Str("device_id", device.ID).Msg("Failed to ingest pushed telemetry")
			return
		}

		devices.TouchSession(device.ID)
	}
}

// statusHandler persists transport transitions, tracks the session table,
// and journals each transition so operators can spot flapping devices.
func statusHandler(devices registry.Manager, journal events.Service, brokerAddr string, log logger.Logger) adapter.StatusHandler {
	return func(ctx context.Context, device *models.Device, status models.ConnectionStatus, detail string) {
		if device == nil {
			return
		}

		if err := devices.UpdateConnectionStatus(ctx, device.ID, status); err != nil {
			log.Warn().Err(err).Str("device_id", device.ID).Msg("Failed to persist connection status")
		}

		switch status {
		case models.ConnectionStatusConnected:
			devices.OpenSession(device.ID, brokerAddr)
		case models.ConnectionStatusDisconnected, models.ConnectionStatusError:
			devices.CloseSession(device.ID)
		}

		if err := journal.Append(ctx, connectionEvent(device, status, detail)); err != nil {
			log.Warn().Err(err).Str("device_id", device.ID).Msg("Failed to journal connection event")
		}
	}
}

func connectionEvent(device *models.Device, status models.ConnectionStatus, detail string) *models.DeviceEvent {
	event := &models.DeviceEvent{
		Time:     time.Now().UTC(),
		DeviceID: device.ID,
		SiteID:   device.SiteID,
		Severity: models.SeverityInfo,
	}

	switch status {
	case models.ConnectionStatusConnected:
		event.EventType = models.EventTypeConnect
		event.Message = "Device connected"
	case models.ConnectionStatusDisconnected:
		event.EventType = models.EventTypeDisconnect
		event.Severity = models.SeverityWarning
		event.Message = "Device disconnected"
	case models.ConnectionStatusError:
		event.EventType = models.EventTypeError
		event.Severity = models.SeverityError
		event.Message = "Device transport error"
	default:
		event.EventType = models.EventTypeStatusChange
		event.Severity = models.SeverityWarning
		event.Message = "Device reported unrecognized status"
	}

	if detail != "" {
		event.Details = map[string]interface{}{"detail": detail}
	}

	return event
}

// adapterExecutor returns an executor that delivers a queued command to
// its device over the device's live adapter. The adapter applies its own
// configured timeout; the dispatcher enforces the command's expiry.
func adapterExecutor(p *poller.Poller, devices registry.Manager, action string) dispatch.ExecutorFunc {
	return func(ctx context.Context, cmd *models.DeviceCommand) *models.CommandResult {
		device, err := devices.GetByID(ctx, cmd.DeviceID)
		if err != nil {
			return &models.CommandResult{
				ErrorCode:    models.ErrCodeDeviceNotFound,
				ErrorMessage: err.Error(),
			}
		}

		ad, err := p.AdapterFor(ctx, device)
		if err != nil {
			return &models.CommandResult{
				ErrorCode:    models.ErrCodeException,
				ErrorMessage: err.Error(),
			}
		}

		result := ad.HandleCommand(ctx, models.AdapterCommand{
			Action: action,
			Params: cmd.Params,
		})

		if ok, _ := result["ok"].(bool); !ok {
			reason, _ := result["reason"].(string)

			// Leave the code empty so the dispatcher can tell a deadline
			// expiry apart from a device rejection.
			return &models.CommandResult{
				Data:         result,
				ErrorMessage: reason,
			}
		}

		return &models.CommandResult{
			Success: true,
			Data:    result,
		}
	}
}

// attachConnectedAdapters pre-builds adapters for devices that were
// connected before the restart, so push transports are subscribed before
// their first due poll. Failures are not fatal; the scheduler builds the
// adapter lazily when the device next comes due.
func attachConnectedAdapters(ctx context.Context, p *poller.Poller, devices registry.Manager, drivers adapter.Registry, deps adapter.Deps, log logger.Logger) {
	connected, err := devices.ListConnected(ctx)
	if err != nil {
		log.Warn().Err(err).Msg("Listing connected devices for adapter bootstrap failed")
		return
	}

	attached := 0

	for _, device := range connected {
		ad, err := drivers.Get(device, deps)
		if err != nil {
			if !errors.Is(err, adapter.ErrUnknownProtocol) {
				log.Warn().Err(err).Str("device_id", device.ID).Msg("Adapter bootstrap failed")
			}

			continue
		}

		if err := ad.Connect(ctx); err != nil {
			log.Warn().Err(err).Str("device_id", device.ID).Msg("Adapter connect failed during bootstrap")

			_ = ad.Close()

			continue
		}

		p.AttachAdapter(device.ID, ad)
		attached++
	}

	if attached > 0 {
		log.Info().Int("devices", attached).Msg("Reattached adapters for previously connected devices")
	}
}
