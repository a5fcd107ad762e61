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

// Package mqtt is the MQTT protocol driver. Devices push telemetry and
// status; commands run request/response over a pair of topics with a
// correlation id. One adapter maintains one broker connection per device:
//
//	<prefix>/<device_id>/telemetry        device -> plane
//	<prefix>/<device_id>/status           retained, last-will offline
//	<prefix>/<device_id>/command          plane -> device
//	<prefix>/<device_id>/command/response device -> plane
package mqtt

import (
	"context"
	"crypto/tls"
	"crypto/x509"
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"os"
	"sync"
	"time"

	"github.com/eclipse/paho.golang/autopaho"
	"github.com/eclipse/paho.golang/paho"

	"github.com/heliotrace/solarmesh/pkg/adapter"
	"github.com/heliotrace/solarmesh/pkg/config"
	"github.com/heliotrace/solarmesh/pkg/logger"
	"github.com/heliotrace/solarmesh/pkg/models"
)

const (
	connectUpTimeout = 30 * time.Second
	handlerTimeout   = 10 * time.Second
	closeTimeout     = 5 * time.Second
	pingTimeout      = 5 * time.Second
)

var (
	errConfigMissing     = errors.New("mqtt adapter requires broker configuration")
	errCAParsingFailed   = errors.New("failed to parse CA certificate")
	errSerialUnavailable = errors.New("device did not report a serial number")
)

// nowUTC allows tests to override the timestamp source.
var nowUTC = func() time.Time {
	return time.Now().UTC()
}

// Adapter binds one MQTT device to the telemetry plane.
type Adapter struct {
	device *models.Device
	cfg    *models.MQTTConfig
	log    logger.Logger

	onTelemetry adapter.TelemetryHandler
	onStatus    adapter.StatusHandler

	cache *adapter.TelemetryCache

	// invertBatteryPower flips the sign of reported battery power for
	// devices that use charge-positive convention. The plane's convention
	// is discharge-positive.
	invertBatteryPower bool

	mu     sync.Mutex
	cm     *autopaho.ConnectionManager
	cancel context.CancelFunc

	pendingMu sync.Mutex
	pending   map[string]chan map[string]interface{}
}

// NewAdapter is the adapter.Creator for MQTT devices.
func NewAdapter(device *models.Device, deps adapter.Deps) (adapter.Adapter, error) {
	if deps.MQTT == nil {
		return nil, errConfigMissing
	}

	invert := false
	if v, ok := device.ConnectionConfig["invert_battery_power"].(bool); ok {
		invert = v
	}

	return &Adapter{
		device:             device,
		cfg:                deps.MQTT,
		log:                deps.Logger,
		onTelemetry:        deps.OnTelemetry,
		onStatus:           deps.OnStatus,
		cache:              adapter.NewTelemetryCache(),
		invertBatteryPower: invert,
		pending:            make(map[string]chan map[string]interface{}),
	}, nil
}

// Connect establishes the broker connection and registers the last-will
// offline status. Calling Connect on a live adapter is a no-op. Failure to
// reach the broker immediately is not an error; the connection manager
// keeps retrying in the background.
func (a *Adapter) Connect(ctx context.Context) error {
	a.mu.Lock()
	if a.cm != nil {
		a.mu.Unlock()
		return nil
	}
	a.mu.Unlock()

	brokerURL, err := url.Parse(a.cfg.BrokerURL)
	if err != nil {
		return fmt.Errorf("parse mqtt broker url: %w", err)
	}

	tlsCfg, err := brokerTLSConfig(brokerURL.Scheme, a.cfg.Security)
	if err != nil {
		return err
	}

	clientCfg := autopaho.ClientConfig{
		ServerUrls:                    []*url.URL{brokerURL},
		TlsCfg:                        tlsCfg,
		KeepAlive:                     a.cfg.KeepAlive,
		CleanStartOnInitialConnection: false,
		SessionExpiryInterval:         a.cfg.SessionExpiry,
		ConnectUsername:               a.cfg.Username,
		ConnectPassword:               []byte(a.cfg.Password),
		WillMessage: &paho.WillMessage{
			Topic:   a.topic("status"),
			Payload: statusPayload("offline", nowUTC()),
			QoS:     1,
			Retain:  true,
		},
		OnConnectionUp: a.onConnectionUp,
		OnConnectError: func(err error) {
			a.log.Warn().
				Err(err).
				Str("device_id", a.device.ID).
				Str("broker", a.cfg.BrokerURL).
				Msg("MQTT connection attempt failed")

			if a.onStatus != nil {
				a.onStatus(context.Background(), a.device, models.ConnectionStatusError, err.Error())
			}
		},
		ClientConfig: paho.ClientConfig{
			ClientID: a.cfg.ClientIDPrefix + "-" + a.device.ID,
		},
	}

	// The connection manager outlives the Connect call; its lifetime is
	// bound to Close, not to the caller's context.
	connCtx, cancel := context.WithCancel(context.Background())

	cm, err := autopaho.NewConnection(connCtx, clientCfg)
	if err != nil {
		cancel()
		return fmt.Errorf("mqtt connect: %w", err)
	}

	cm.AddOnPublishReceived(a.route)

	a.mu.Lock()
	a.cm = cm
	a.cancel = cancel
	a.mu.Unlock()

	awaitCtx, awaitCancel := context.WithTimeout(ctx, connectUpTimeout)
	defer awaitCancel()

	if err := cm.AwaitConnection(awaitCtx); err != nil {
		a.log.Warn().
			Err(err).
			Str("device_id", a.device.ID).
			Msg("MQTT initial connection pending, retrying in background")
	}

	return nil
}

// Close publishes a retained offline status and tears down the connection.
// Safe to call more than once.
func (a *Adapter) Close() error {
	a.mu.Lock()
	cm := a.cm
	cancel := a.cancel
	a.cm = nil
	a.cancel = nil
	a.mu.Unlock()

	if cm == nil {
		return nil
	}

	ctx, ctxCancel := context.WithTimeout(context.Background(), closeTimeout)
	defer ctxCancel()

	if _, err := cm.Publish(ctx, &paho.Publish{
		Topic:   a.topic("status"),
		Payload: statusPayload("offline", nowUTC()),
		QoS:     1,
		Retain:  true,
	}); err != nil {
		a.log.Debug().Err(err).Str("device_id", a.device.ID).Msg("Offline status publish failed during close")
	}

	if err := cm.Disconnect(ctx); err != nil {
		a.log.Debug().Err(err).Str("device_id", a.device.ID).Msg("MQTT disconnect returned error")
	}

	cancel()

	return nil
}

// Poll returns the freshest cached snapshot; the device is never contacted.
func (a *Adapter) Poll(_ context.Context) (*models.Telemetry, error) {
	return a.cache.PollSnapshot(a.device, a.log), nil
}

// ReadSerialNumber prefers the registry row and only asks the device when
// the row has no serial recorded.
func (a *Adapter) ReadSerialNumber(ctx context.Context) (string, error) {
	if a.device.SerialNumber != "" {
		return a.device.SerialNumber, nil
	}

	result := a.HandleCommand(ctx, models.AdapterCommand{
		Action: models.ActionRead,
		Params: map[string]interface{}{"field": "serial_number"},
	})

	if ok, _ := result["ok"].(bool); !ok {
		reason, _ := result["reason"].(string)
		return "", fmt.Errorf("read serial number: %s", reason)
	}

	serial, _ := result["value"].(string)
	if serial == "" {
		return "", errSerialUnavailable
	}

	return serial, nil
}

// CheckConnectivity answers from cached telemetry when it is fresh enough,
// otherwise sends a ping command.
func (a *Adapter) CheckConnectivity(ctx context.Context) bool {
	if age, ok := a.cache.Age(nowUTC()); ok && age <= adapter.ConnectivityWindow {
		return true
	}

	result := a.HandleCommand(ctx, models.AdapterCommand{
		Action:  models.ActionPing,
		Timeout: pingTimeout,
	})

	ok, _ := result["ok"].(bool)

	return ok
}

// TOUCapability reads time-of-use support from the device's connection
// config. Devices that never declared it report unsupported.
func (a *Adapter) TOUCapability() models.TOUCapability {
	cfg := a.device.ConnectionConfig

	out := models.TOUCapability{}

	if v, ok := cfg["tou_supported"].(bool); ok {
		out.Supported = v
	}

	if v, ok := cfg["tou_max_windows"].(float64); ok {
		out.MaxWindows = int(v)
	}

	if v, ok := cfg["tou_bidirectional"].(bool); ok {
		out.Bidirectional = v
	}

	return out
}

// onConnectionUp runs on every (re-)connect. autopaho does not resubscribe
// after a reconnect, so subscriptions are re-established here, then the
// retained online status goes out.
func (a *Adapter) onConnectionUp(cm *autopaho.ConnectionManager, _ *paho.Connack) {
	a.log.Info().
		Str("device_id", a.device.ID).
		Str("broker", a.cfg.BrokerURL).
		Msg("MQTT connection up")

	ctx, cancel := context.WithTimeout(context.Background(), handlerTimeout)
	defer cancel()

	if _, err := cm.Subscribe(ctx, &paho.Subscribe{
		Subscriptions: []paho.SubscribeOptions{
			{Topic: a.topic("telemetry"), QoS: a.cfg.QoS},
			{Topic: a.topic("status"), QoS: a.cfg.QoS},
			{Topic: a.topic("command/response"), QoS: a.cfg.QoS},
		},
	}); err != nil {
		a.log.Error().Err(err).Str("device_id", a.device.ID).Msg("MQTT subscribe failed")
	}

	if _, err := cm.Publish(ctx, &paho.Publish{
		Topic:   a.topic("status"),
		Payload: statusPayload("online", nowUTC()),
		QoS:     1,
		Retain:  true,
	}); err != nil {
		a.log.Warn().Err(err).Str("device_id", a.device.ID).Msg("Online status publish failed")
	}
}

// route dispatches inbound messages by topic. Handler panics are contained
// so one malformed payload cannot take down the network loop.
func (a *Adapter) route(pr autopaho.PublishReceived) (bool, error) {
	defer func() {
		if r := recover(); r != nil {
			a.log.Error().
				Interface("panic", r).
				Str("topic", pr.Packet.Topic).
				Msg("MQTT message handler panicked")
		}
	}()

	switch pr.Packet.Topic {
	case a.topic("telemetry"):
		a.handleTelemetry(pr.Packet.Payload)
	case a.topic("status"):
		a.handleStatus(pr.Packet.Payload)
	case a.topic("command/response"):
		a.handleCommandResponse(pr.Packet.Payload)
	}

	return true, nil
}

func (a *Adapter) handleTelemetry(payload []byte) {
	receivedAt := nowUTC()

	snapshot, err := decodeTelemetry(payload, receivedAt)
	if err != nil {
		a.log.Warn().
			Err(err).
			Str("device_id", a.device.ID).
			Msg("Dropping undecodable telemetry payload")

		return
	}

	if a.invertBatteryPower && snapshot.BatteryPowerW != nil {
		inverted := -*snapshot.BatteryPowerW
		snapshot.BatteryPowerW = &inverted
	}

	a.cache.Store(snapshot, receivedAt)

	if a.onTelemetry != nil {
		a.onTelemetry(context.Background(), a.device, snapshot)
	}
}

func (a *Adapter) handleStatus(payload []byte) {
	var msg struct {
		Status string `json:"status"`
	}

	if err := json.Unmarshal(payload, &msg); err != nil {
		a.log.Warn().Err(err).Str("device_id", a.device.ID).Msg("Dropping undecodable status payload")
		return
	}

	var status models.ConnectionStatus

	switch msg.Status {
	case "online":
		status = models.ConnectionStatusConnected
	case "offline":
		status = models.ConnectionStatusDisconnected
	default:
		status = models.ConnectionStatusUnknown
	}

	if a.onStatus != nil {
		a.onStatus(context.Background(), a.device, status, msg.Status)
	}
}

func (a *Adapter) topic(leaf string) string {
	return a.cfg.TopicPrefix + "/" + a.device.ID + "/" + leaf
}

func statusPayload(status string, ts time.Time) []byte {
	payload, _ := json.Marshal(map[string]interface{}{
		"status": status,
		"ts":     ts.Format(time.RFC3339),
	})

	return payload
}

// brokerTLSConfig builds TLS settings for secure broker schemes. Plain
// mqtt:// and tcp:// schemes return nil. When mTLS material is configured
// it is loaded; otherwise secure schemes use system roots.
func brokerTLSConfig(scheme string, sec *models.SecurityConfig) (*tls.Config, error) {
	switch scheme {
	case "mqtts", "ssl", "tls":
	default:
		return nil, nil
	}

	if sec == nil || sec.Mode == "" || sec.Mode == "none" {
		return &tls.Config{MinVersion: tls.VersionTLS12}, nil
	}

	config.NormalizeTLSPaths(&sec.TLS, sec.CertDir)

	out := &tls.Config{
		MinVersion: tls.VersionTLS12,
		ServerName: sec.ServerName,
	}

	if sec.TLS.CAFile != "" {
		caCert, err := os.ReadFile(sec.TLS.CAFile)
		if err != nil {
			return nil, fmt.Errorf("read CA certificate: %w", err)
		}

		caPool := x509.NewCertPool()
		if !caPool.AppendCertsFromPEM(caCert) {
			return nil, errCAParsingFailed
		}

		out.RootCAs = caPool
	}

	if sec.Mode == "mtls" {
		cert, err := tls.LoadX509KeyPair(sec.TLS.CertFile, sec.TLS.KeyFile)
		if err != nil {
			return nil, fmt.Errorf("load client certificate: %w", err)
		}

		out.Certificates = []tls.Certificate{cert}
	}

	return out, nil
}
