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

package config

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/heliotrace/solarmesh/pkg/logger"
	"github.com/heliotrace/solarmesh/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testServiceConfig struct {
	Name     string          `json:"name"`
	Port     int             `json:"port"`
	Interval models.Duration `json:"interval"`
}

func (c *testServiceConfig) Validate() error {
	if c.Port == 0 {
		c.Port = 9090
	}

	return nil
}

func writeConfigFile(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	return path
}

func TestLoadAndValidateFromFile(t *testing.T) {
	path := writeConfigFile(t, `{"name":"telemetryd","interval":"90s"}`)

	var cfg testServiceConfig

	loader := NewConfig(nil)
	require.NoError(t, loader.LoadAndValidate(context.Background(), path, &cfg))

	assert.Equal(t, "telemetryd", cfg.Name)
	assert.Equal(t, models.Duration(90*time.Second), cfg.Interval)
	assert.Equal(t, 9090, cfg.Port, "Validate should apply defaults")
}

func TestLoadAndValidateMissingFile(t *testing.T) {
	var cfg testServiceConfig

	loader := NewConfig(logger.NewTestLogger())
	err := loader.LoadAndValidate(context.Background(), "/nonexistent/config.json", &cfg)

	require.Error(t, err)
}

func TestLoadAndValidateRejectsUnknownSource(t *testing.T) {
	t.Setenv("CONFIG_SOURCE", "carrier-pigeon")

	var cfg testServiceConfig

	loader := NewConfig(logger.NewTestLogger())
	err := loader.LoadAndValidate(context.Background(), "ignored.json", &cfg)

	require.ErrorIs(t, err, errInvalidConfigSource)
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("CONFIG_SOURCE", "env")
	t.Setenv("SOLARMESH_NAME", "from-env")
	t.Setenv("SOLARMESH_PORT", "7070")
	t.Setenv("SOLARMESH_INTERVAL", "2m")

	var cfg testServiceConfig

	loader := NewConfig(logger.NewTestLogger())
	require.NoError(t, loader.LoadAndValidate(context.Background(), "", &cfg))

	assert.Equal(t, "from-env", cfg.Name)
	assert.Equal(t, 7070, cfg.Port)
	assert.Equal(t, models.Duration(2*time.Minute), cfg.Interval)
}

func TestLoadFromEnvironmentConfigJSON(t *testing.T) {
	t.Setenv("CONFIG_SOURCE", "env")
	t.Setenv("SOLARMESH_CONFIG_JSON", `{"name":"blob","port":8081}`)

	var cfg testServiceConfig

	loader := NewConfig(logger.NewTestLogger())
	require.NoError(t, loader.LoadAndValidate(context.Background(), "", &cfg))

	assert.Equal(t, "blob", cfg.Name)
	assert.Equal(t, 8081, cfg.Port)
}

func TestNormalizeTLSPaths(t *testing.T) {
	tls := models.TLSConfig{
		CertFile: "client.pem",
		KeyFile:  "client-key.pem",
		CAFile:   "/etc/solarmesh/certs/root.pem",
	}

	NormalizeTLSPaths(&tls, "/etc/solarmesh/certs")

	assert.Equal(t, "/etc/solarmesh/certs/client.pem", tls.CertFile)
	assert.Equal(t, "/etc/solarmesh/certs/client-key.pem", tls.KeyFile)
	assert.Equal(t, "/etc/solarmesh/certs/root.pem", tls.CAFile, "absolute paths stay untouched")
	assert.Equal(t, tls.CAFile, tls.ClientCAFile, "client CA falls back to the CA file")
}

func TestLoadAndValidateNormalizesSecuritySections(t *testing.T) {
	path := writeConfigFile(t, `{
		"nats": {
			"url": "tls://nats.fleet.internal:4222",
			"security": {
				"mode": "mtls",
				"cert_dir": "/etc/solarmesh/certs",
				"tls": {"cert_file": "nats.pem", "key_file": "nats-key.pem", "ca_file": "root.pem"}
			}
		},
		"security": {
			"cert_dir": "/etc/solarmesh/certs",
			"tls": {"cert_file": "telemetryd.pem", "key_file": "telemetryd-key.pem", "ca_file": "root.pem"}
		}
	}`)

	var cfg struct {
		NATS     *models.NATSConfig     `json:"nats"`
		Security *models.SecurityConfig `json:"security"`
	}

	loader := NewConfig(logger.NewTestLogger())
	require.NoError(t, loader.LoadAndValidate(context.Background(), path, &cfg))

	require.NotNil(t, cfg.Security)
	assert.Equal(t, "/etc/solarmesh/certs/telemetryd.pem", cfg.Security.TLS.CertFile)
}
