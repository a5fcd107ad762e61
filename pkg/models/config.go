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

package models

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/heliotrace/solarmesh/pkg/logger"
)

var (
	errInvalidDuration        = errors.New("invalid duration")
	errLoggingConfigRequired  = errors.New("logging configuration is required")
	errDatabaseHostRequired   = errors.New("database.host is required")
	errDatabaseNameRequired   = errors.New("database.database is required")
	errMQTTBrokerRequired     = errors.New("mqtt.broker_url is required")
	errMQTTQoSInvalid         = errors.New("mqtt.qos must be 0, 1, or 2")
	errSchedulerTickInvalid   = errors.New("scheduler.tick must be non-negative")
	errAuthMaxFailuresInvalid = errors.New("auth.max_failures must be non-negative")
)

// Duration wraps time.Duration so config files can use values like "90s" or "24h".
type Duration time.Duration

// MarshalJSON renders the duration in time.Duration string notation.
func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}

// UnmarshalJSON accepts either a duration string or raw nanoseconds.
func (d *Duration) UnmarshalJSON(data []byte) error {
	var v interface{}
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
	case string:
		parsed, err := time.ParseDuration(value)
		if err != nil {
			return fmt.Errorf("%w: %q", errInvalidDuration, value)
		}

		*d = Duration(parsed)
	default:
		return fmt.Errorf("%w: %v", errInvalidDuration, v)
	}

	return nil
}

func (d Duration) String() string {
	return time.Duration(d).String()
}

// TLSConfig holds certificate material for mutual TLS.
type TLSConfig struct {
	CertFile     string `json:"cert_file"`
	KeyFile      string `json:"key_file"`
	CAFile       string `json:"ca_file"`
	ClientCAFile string `json:"client_ca_file,omitempty"`
	SkipVerify   bool   `json:"skip_verify,omitempty"`
}

// SecurityConfig wraps TLS material with the directory used to resolve
// relative certificate paths and the expected peer name.
type SecurityConfig struct {
	Mode       string    `json:"mode,omitempty"` // none | tls | mtls
	CertDir    string    `json:"cert_dir,omitempty"`
	ServerName string    `json:"server_name,omitempty"`
	TLS        TLSConfig `json:"tls"`
}

// CNPGDatabase describes a CloudNativePG-managed TimescaleDB endpoint.
type CNPGDatabase struct {
	Host               string            `json:"host"`
	Port               int               `json:"port,omitempty"`
	Database           string            `json:"database"`
	Username           string            `json:"username,omitempty"`
	Password           string            `json:"password,omitempty"`
	SSLMode            string            `json:"ssl_mode,omitempty"`
	ApplicationName    string            `json:"application_name,omitempty"`
	MaxConnections     int32             `json:"max_connections,omitempty"`
	MinConnections     int32             `json:"min_connections,omitempty"`
	MaxConnLifetime    Duration          `json:"max_conn_lifetime,omitempty"`
	HealthCheckPeriod  Duration          `json:"health_check_period,omitempty"`
	StatementTimeout   Duration          `json:"statement_timeout,omitempty"`
	ExtraRuntimeParams map[string]string `json:"extra_runtime_params,omitempty"`
	CertDir            string            `json:"cert_dir,omitempty"`
	TLS                *TLSConfig        `json:"tls,omitempty"`
}

// MQTTConfig carries broker settings shared by MQTT-attached devices.
type MQTTConfig struct {
	BrokerURL      string          `json:"broker_url"`
	ClientIDPrefix string          `json:"client_id_prefix,omitempty"`
	Username       string          `json:"username,omitempty"`
	Password       string          `json:"password,omitempty"`
	TopicPrefix    string          `json:"topic_prefix,omitempty"`
	KeepAlive      uint16          `json:"keep_alive_seconds,omitempty"`
	SessionExpiry  uint32          `json:"session_expiry_seconds,omitempty"`
	QoS            byte            `json:"qos,omitempty"`
	CommandTimeout Duration        `json:"command_timeout,omitempty"`
	Security       *SecurityConfig `json:"security,omitempty"`
}

// Validate applies broker defaults.
func (c *MQTTConfig) Validate() error {
	if c.BrokerURL == "" {
		return errMQTTBrokerRequired
	}

	if c.ClientIDPrefix == "" {
		c.ClientIDPrefix = "telemetryd"
	}

	if c.TopicPrefix == "" {
		c.TopicPrefix = "solarmesh"
	}

	if c.KeepAlive == 0 {
		c.KeepAlive = 30
	}

	if c.QoS > 2 {
		return errMQTTQoSInvalid
	}

	if c.CommandTimeout <= 0 {
		c.CommandTimeout = Duration(10 * time.Second)
	}

	return nil
}

// SchedulerConfig tunes the polling scheduler loop.
type SchedulerConfig struct {
	Tick          Duration `json:"tick,omitempty"`
	SweepInterval Duration `json:"sweep_interval,omitempty"`
	MaxConcurrent int      `json:"max_concurrent,omitempty"`
}

// Validate applies scheduler defaults.
func (c *SchedulerConfig) Validate() error {
	if c.Tick < 0 {
		return errSchedulerTickInvalid
	}

	if c.Tick == 0 {
		c.Tick = Duration(5 * time.Second)
	}

	if c.SweepInterval <= 0 {
		c.SweepInterval = Duration(time.Minute)
	}

	if c.MaxConcurrent <= 0 {
		c.MaxConcurrent = 8
	}

	return nil
}

// AuthConfig tunes device authentication and request signing.
type AuthConfig struct {
	TokenPepper      string   `json:"token_pepper,omitempty"`
	SigningMasterKey string   `json:"signing_master_key,omitempty"`
	TokenTTL         Duration `json:"token_ttl,omitempty"`
	MaxFailures      int      `json:"max_failures,omitempty"`
	LockoutWindow    Duration `json:"lockout_window,omitempty"`
	SessionTimeout   Duration `json:"session_timeout,omitempty"`
	ChallengeTTL     Duration `json:"challenge_ttl,omitempty"`
	ClockSkew        Duration `json:"clock_skew,omitempty"`
}

// Validate applies authentication defaults.
func (c *AuthConfig) Validate() error {
	if c.MaxFailures < 0 {
		return errAuthMaxFailuresInvalid
	}

	if c.TokenTTL <= 0 {
		c.TokenTTL = Duration(365 * 24 * time.Hour)
	}

	if c.MaxFailures == 0 {
		c.MaxFailures = 5
	}

	if c.LockoutWindow <= 0 {
		c.LockoutWindow = Duration(30 * time.Minute)
	}

	if c.SessionTimeout <= 0 {
		c.SessionTimeout = Duration(5 * time.Minute)
	}

	if c.ChallengeTTL <= 0 {
		c.ChallengeTTL = Duration(5 * time.Minute)
	}

	if c.ClockSkew <= 0 {
		c.ClockSkew = Duration(time.Minute)
	}

	return nil
}

// RetentionConfig tunes the runtime sweeps that prune journal and batch rows.
// Raw telemetry and aggregate retention run as database policies instead.
type RetentionConfig struct {
	Events              Duration `json:"events,omitempty"`
	DropUnacknowledged  bool     `json:"drop_unacknowledged,omitempty"`
	Batches             Duration `json:"batches,omitempty"`
	ExpireCommandsEvery Duration `json:"expire_commands_every,omitempty"`
}

// Validate applies retention defaults.
func (c *RetentionConfig) Validate() error {
	if c.Events <= 0 {
		c.Events = Duration(90 * 24 * time.Hour)
	}

	if c.Batches <= 0 {
		c.Batches = Duration(30 * 24 * time.Hour)
	}

	if c.ExpireCommandsEvery <= 0 {
		c.ExpireCommandsEvery = Duration(time.Minute)
	}

	return nil
}

// TelemetrydConfig is the root configuration for the telemetry daemon.
type TelemetrydConfig struct {
	Database  CNPGDatabase    `json:"database"`
	NATS      *NATSConfig     `json:"nats,omitempty"`
	Events    *EventsConfig   `json:"events,omitempty"`
	MQTT      *MQTTConfig     `json:"mqtt,omitempty"`
	Scheduler SchedulerConfig `json:"scheduler"`
	Auth      AuthConfig      `json:"auth"`
	Retention RetentionConfig `json:"retention"`
	Security  *SecurityConfig `json:"security,omitempty"`
	Logging   *logger.Config  `json:"logging,omitempty"`
}

// Validate checks required fields and cascades defaults into each section.
func (c *TelemetrydConfig) Validate() error {
	if c.Logging == nil {
		return errLoggingConfigRequired
	}

	if c.Database.Host == "" {
		return errDatabaseHostRequired
	}

	if c.Database.Database == "" {
		return errDatabaseNameRequired
	}

	if c.NATS != nil {
		if err := c.NATS.Validate(); err != nil {
			return err
		}
	}

	if c.Events != nil {
		if err := c.Events.Validate(); err != nil {
			return err
		}
	}

	if c.MQTT != nil {
		if err := c.MQTT.Validate(); err != nil {
			return err
		}
	}

	if err := c.Scheduler.Validate(); err != nil {
		return err
	}

	if err := c.Auth.Validate(); err != nil {
		return err
	}

	return c.Retention.Validate()
}
