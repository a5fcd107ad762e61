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

// Package poller drives the periodic work of the telemetry plane: polling
// devices that are due, sweeping runtime state, expiring overdue commands,
// and pushing unsynced device snapshots to the control plane. It owns the
// live adapter for each device it polls and drains them all on shutdown.
package poller

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/heliotrace/solarmesh/pkg/adapter"
	"github.com/heliotrace/solarmesh/pkg/auth"
	"github.com/heliotrace/solarmesh/pkg/db"
	"github.com/heliotrace/solarmesh/pkg/dispatch"
	"github.com/heliotrace/solarmesh/pkg/events"
	"github.com/heliotrace/solarmesh/pkg/ingest"
	"github.com/heliotrace/solarmesh/pkg/logger"
	"github.com/heliotrace/solarmesh/pkg/models"
	"github.com/heliotrace/solarmesh/pkg/registry"
)

// defaultDueLimit caps how many due devices one cycle picks up. Devices
// beyond the cap stay due and are collected by the next tick.
const defaultDueLimit = 128

const defaultSessionMaxIdle = 5 * time.Minute

var (
	errDeviceRegistryRequired  = errors.New("poller: device registry is required")
	errIngestorRequired        = errors.New("poller: ingest service is required")
	errAdapterRegistryRequired = errors.New("poller: adapter registry is required")
	errClosing                 = errors.New("error closing adapters")
)

// Config wires the scheduler's collaborators and tuning. Devices, Ingestor,
// and Adapters are required; every other service is optional and its work is
// skipped when absent. Scheduler and Retention must already be validated.
type Config struct {
	Scheduler models.SchedulerConfig
	Retention models.RetentionConfig

	// SessionMaxIdle is how long a device session may sit idle before the
	// sweep closes it. Zero means the default of five minutes.
	SessionMaxIdle time.Duration

	Devices     registry.Manager
	Ingestor    ingest.Service
	Journal     events.Service
	Commands    dispatch.Service
	Auth        auth.Service
	DB          db.Service
	Adapters    adapter.Registry
	AdapterDeps adapter.Deps
	Sync        SyncPublisher
}

// Poller is the periodic scheduler for the telemetry plane.
type Poller struct {
	scheduler      models.SchedulerConfig
	retention      models.RetentionConfig
	sessionMaxIdle time.Duration

	devices     registry.Manager
	ingestor    ingest.Service
	journal     events.Service
	commands    dispatch.Service
	auth        auth.Service
	store       db.Service
	drivers     adapter.Registry
	adapterDeps adapter.Deps
	syncOut     SyncPublisher

	clock  Clock
	logger logger.Logger

	mu       sync.Mutex
	adapters map[string]adapter.Adapter

	done      chan struct{}
	closeOnce sync.Once
	wg        sync.WaitGroup
	startWg   sync.WaitGroup
}

// New creates a poller. A nil clock selects the real one.
func New(cfg Config, clock Clock, log logger.Logger) (*Poller, error) {
	if cfg.Devices == nil {
		return nil, errDeviceRegistryRequired
	}

	if cfg.Ingestor == nil {
		return nil, errIngestorRequired
	}

	if cfg.Adapters == nil {
		return nil, errAdapterRegistryRequired
	}

	if clock == nil {
		clock = realClock{}
	}

	sessionMaxIdle := cfg.SessionMaxIdle
	if sessionMaxIdle <= 0 {
		sessionMaxIdle = defaultSessionMaxIdle
	}

	return &Poller{
		scheduler:      cfg.Scheduler,
		retention:      cfg.Retention,
		sessionMaxIdle: sessionMaxIdle,
		devices:        cfg.Devices,
		ingestor:       cfg.Ingestor,
		journal:        cfg.Journal,
		commands:       cfg.Commands,
		auth:           cfg.Auth,
		store:          cfg.DB,
		drivers:        cfg.Adapters,
		adapterDeps:    cfg.AdapterDeps,
		syncOut:        cfg.Sync,
		clock:          clock,
		logger:         log,
		adapters:       make(map[string]adapter.Adapter),
		done:           make(chan struct{}),
	}, nil
}

// Start implements the lifecycle.Service interface. It runs one polling
// cycle immediately, then keeps cycling until the context is cancelled or
// Stop is called.
func (p *Poller) Start(ctx context.Context) error {
	tick := time.Duration(p.scheduler.Tick)
	sweepEvery := time.Duration(p.scheduler.SweepInterval)
	expireEvery := time.Duration(p.retention.ExpireCommandsEvery)

	// The waitgroup defers run last so Stop cannot return before the
	// tickers are stopped.
	p.startWg.Add(1)
	defer p.startWg.Done()

	p.wg.Add(1)
	defer p.wg.Done()

	pollTicker := p.clock.Ticker(tick)
	defer pollTicker.Stop()

	sweepTicker := p.clock.Ticker(sweepEvery)
	defer sweepTicker.Stop()

	expiryTicker := p.clock.Ticker(expireEvery)
	defer expiryTicker.Stop()

	p.logger.Info().
		Dur("tick", tick).
		Dur("sweep_interval", sweepEvery).
		Int("max_concurrent", p.scheduler.MaxConcurrent).
		Msg("Starting poll scheduler")

	p.pollDue(ctx)

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-p.done:
			return nil
		case <-pollTicker.Chan():
			p.wg.Add(1)

			go func() {
				defer p.wg.Done()
				p.pollDue(ctx)
			}()
		case <-sweepTicker.Chan():
			p.wg.Add(1)

			go func() {
				defer p.wg.Done()
				p.sweep(ctx)
			}()
		case <-expiryTicker.Chan():
			p.wg.Add(1)

			go func() {
				defer p.wg.Done()
				p.expireCommands(ctx)
			}()
		}
	}
}

// Stop implements the lifecycle.Service interface. It halts the loop, waits
// out in-flight cycles, then drains every tracked adapter.
func (p *Poller) Stop(_ context.Context) error {
	p.closeOnce.Do(func() {
		close(p.done)
	})

	p.startWg.Wait()
	p.wg.Wait()

	return p.Drain()
}

// AttachAdapter hands the scheduler an already connected adapter, replacing
// and closing any previous one for the device. Startup uses this so push
// transports are listening before their first due poll.
func (p *Poller) AttachAdapter(deviceID string, ad adapter.Adapter) {
	if deviceID == "" || ad == nil {
		return
	}

	p.mu.Lock()
	previous := p.adapters[deviceID]
	p.adapters[deviceID] = ad
	p.mu.Unlock()

	if previous != nil && previous != ad {
		_ = previous.Close()
	}
}

// Drain closes every tracked adapter. The table is reset, so a still-running
// scheduler rebuilds adapters on the next cycle.
func (p *Poller) Drain() error {
	p.mu.Lock()
	adapters := p.adapters
	p.adapters = make(map[string]adapter.Adapter)
	p.mu.Unlock()

	var errs []error

	for id, ad := range adapters {
		if err := ad.Close(); err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", id, err))
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("%w: %v", errClosing, errs)
	}

	return nil
}

// pollDue runs one polling cycle over the devices whose next poll time has
// arrived, at most MaxConcurrent devices in flight at once.
func (p *Poller) pollDue(ctx context.Context) {
	due, err := p.devices.ListDueForPolling(ctx, defaultDueLimit)
	if err != nil {
		p.logger.Error().Err(err).Msg("Listing due devices failed")
		return
	}

	if len(due) == 0 {
		return
	}

	p.logger.Debug().Int("due", len(due)).Msg("Starting polling cycle")

	sem := make(chan struct{}, p.scheduler.MaxConcurrent)

	var wg sync.WaitGroup

	for _, device := range due {
		select {
		case <-ctx.Done():
			wg.Wait()
			return
		case sem <- struct{}{}:
		}

		wg.Add(1)

		go func(device *models.Device) {
			defer wg.Done()
			defer func() { <-sem }()

			p.pollDevice(ctx, device)
		}(device)
	}

	wg.Wait()

	p.logger.Debug().Int("due", len(due)).Msg("Polling cycle completed")
}

func (p *Poller) pollDevice(ctx context.Context, device *models.Device) {
	if snapshot := p.collect(ctx, device); snapshot != nil {
		p.storeSnapshot(ctx, device, snapshot)
	}

	// A failed attempt still reschedules on the device's own interval;
	// leaving next_poll_at in the past would retry a dead device every tick.
	if err := p.devices.UpdatePollTime(ctx, device); err != nil {
		p.logger.Warn().Err(err).Str("device_id", device.ID).Msg("Failed to stamp poll time")
	}
}

// collect returns the device's current snapshot, or nil when there is
// nothing worth storing this cycle.
func (p *Poller) collect(ctx context.Context, device *models.Device) *models.Telemetry {
	ad, err := p.AdapterFor(ctx, device)
	if err != nil {
		p.logger.Warn().Err(err).Str("device_id", device.ID).Msg("No adapter for due device")
		return nil
	}

	snapshot, err := ad.Poll(ctx)
	if err != nil {
		p.logger.Warn().Err(err).Str("device_id", device.ID).Msg("Device poll failed")
		return nil
	}

	if snapshot == nil || snapshot.Empty() || snapshot.Stale {
		p.logger.Debug().Str("device_id", device.ID).Msg("No fresh telemetry for due device")
		return nil
	}

	return snapshot
}

func (p *Poller) storeSnapshot(ctx context.Context, device *models.Device, snapshot *models.Telemetry) {
	points := ingest.SnapshotPoints(device, snapshot)
	if len(points) == 0 {
		return
	}

	source := ingest.Source{Type: ingest.SourceTypePoller, ID: device.ID}

	batch, err := p.ingestor.IngestPoints(ctx, source, points)
	if err != nil {
		p.logger.Error().Err(err).Str("device_id", device.ID).Msg("Failed to ingest polled telemetry")
		return
	}

	p.logger.Debug().
		Str("device_id", device.ID).
		Str("batch_id", batch.BatchID).
		Int("points", len(points)).
		Msg("Polled telemetry ingested")
}

// AdapterFor returns the device's live adapter, building and connecting one
// on first use. Command executors share the table, so a command rides the
// same transport session the scheduler polls over.
func (p *Poller) AdapterFor(ctx context.Context, device *models.Device) (adapter.Adapter, error) {
	p.mu.Lock()
	ad, ok := p.adapters[device.ID]
	p.mu.Unlock()

	if ok {
		return ad, nil
	}

	built, err := p.drivers.Get(device, p.adapterDeps)
	if err != nil {
		return nil, err
	}

	if err := built.Connect(ctx); err != nil {
		return nil, fmt.Errorf("connect adapter for %s: %w", device.ID, err)
	}

	p.mu.Lock()
	if existing, ok := p.adapters[device.ID]; ok {
		p.mu.Unlock()

		// Lost a build race against an overlapping cycle.
		_ = built.Close()

		return existing, nil
	}

	p.adapters[device.ID] = built
	p.mu.Unlock()

	return built, nil
}

// sweep is the periodic housekeeping pass: idle sessions, aged auth state,
// journal and batch retention, and the control-plane sync queue. Each part
// runs independently; one failing does not stop the rest.
func (p *Poller) sweep(ctx context.Context) {
	now := p.clock.Now().UTC()

	if closed := p.devices.SweepSessions(p.sessionMaxIdle); closed > 0 {
		p.logger.Info().Int("closed", closed).Msg("Idle device sessions closed")
	}

	if p.auth != nil {
		lockouts, challenges := p.auth.Sweep()
		if lockouts > 0 || challenges > 0 {
			p.logger.Debug().Int("lockouts", lockouts).Int("challenges", challenges).Msg("Aged auth state pruned")
		}
	}

	if p.journal != nil && p.retention.Events > 0 {
		cutoff := now.Add(-time.Duration(p.retention.Events))

		if _, err := p.journal.DeleteOlderThan(ctx, cutoff, !p.retention.DropUnacknowledged); err != nil {
			p.logger.Warn().Err(err).Msg("Event retention sweep failed")
		}
	}

	if p.store != nil && p.retention.Batches > 0 {
		cutoff := now.Add(-time.Duration(p.retention.Batches))

		deleted, err := p.store.DeleteIngestionBatchesOlderThan(ctx, cutoff)
		if err != nil {
			p.logger.Warn().Err(err).Msg("Batch retention sweep failed")
		} else if deleted > 0 {
			p.logger.Info().Int64("deleted", deleted).Time("cutoff", cutoff).Msg("Aged ingestion batches deleted")
		}
	}

	p.publishUnsynced(ctx)
}

func (p *Poller) expireCommands(ctx context.Context) {
	if p.commands == nil {
		return
	}

	if _, err := p.commands.ExpireCommands(ctx); err != nil {
		p.logger.Warn().Err(err).Msg("Command expiry sweep failed")
	}
}

// publishUnsynced pushes devices the control plane has not seen yet and
// marks them synced only after the publish succeeds, so a broker outage
// leaves them queued for the next sweep.
func (p *Poller) publishUnsynced(ctx context.Context) {
	if p.syncOut == nil {
		return
	}

	devices, err := p.devices.ListUnsynced(ctx)
	if err != nil {
		p.logger.Warn().Err(err).Msg("Listing unsynced devices failed")
		return
	}

	if len(devices) == 0 {
		return
	}

	if err := p.syncOut.PublishDeviceSync(ctx, devices); err != nil {
		p.logger.Warn().Err(err).Int("devices", len(devices)).Msg("Device sync publish failed")
		return
	}

	ids := make([]string, 0, len(devices))

	for _, device := range devices {
		if device != nil {
			ids = append(ids, device.ID)
		}
	}

	if err := p.devices.MarkSynced(ctx, ids); err != nil {
		p.logger.Warn().Err(err).Msg("Failed to mark devices synced")
		return
	}

	p.logger.Info().Int("devices", len(ids)).Msg("Device snapshots synced to control plane")
}
