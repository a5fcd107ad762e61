package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"
	"time"

	"github.com/heliotrace/solarmesh/pkg/db"
	"github.com/heliotrace/solarmesh/pkg/lifecycle"
	"github.com/heliotrace/solarmesh/pkg/logger"
	"github.com/heliotrace/solarmesh/pkg/models"
)

type migrateConfig struct {
	host              string
	port              int
	database          string
	username          string
	password          string
	passwordFile      string
	sslMode           string
	certDir           string
	caFile            string
	certFile          string
	keyFile           string
	appName           string
	statementTimeout  time.Duration
	healthCheckPeriod time.Duration
	maxConns          int
	minConns          int
	debug             bool
	runtimeParams     map[string]string
}

var (
	errTLSFilesIncomplete      = errors.New("tls: --ca-file, --cert-file, and --key-file must be provided together")
	errHostRequired            = errors.New("database host is required")
	errDatabaseRequired        = errors.New("database name is required")
	errInvalidPort             = errors.New("invalid database port")
	errInvalidRuntimeParameter = errors.New("invalid runtime parameter format")
	errRuntimeParamKeyEmpty    = errors.New("runtime parameter key cannot be empty")
)

func main() {
	cfg := parseFlags()

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := run(ctx, cfg)
	cancel()

	if err != nil {
		log.Fatalf("migrate: %v", err)
	}
}

func run(ctx context.Context, cfg *migrateConfig) error {
	if err := cfg.validate(); err != nil {
		return err
	}

	if err := cfg.resolvePassword(); err != nil {
		return err
	}

	logCfg := &logger.Config{
		Level:  "info",
		Debug:  cfg.debug,
		Output: "stdout",
	}

	appLogger, err := lifecycle.CreateComponentLogger(ctx, "migrate", logCfg)
	if err != nil {
		return fmt.Errorf("initialize logger: %w", err)
	}

	tsdb := &models.CNPGDatabase{
		Host:            cfg.host,
		Port:            cfg.port,
		Database:        cfg.database,
		Username:        cfg.username,
		Password:        cfg.password,
		SSLMode:         cfg.sslMode,
		ApplicationName: cfg.appName,
		CertDir:         cfg.certDir,
	}

	if len(cfg.runtimeParams) > 0 {
		tsdb.ExtraRuntimeParams = make(map[string]string, len(cfg.runtimeParams))
		for key, value := range cfg.runtimeParams {
			tsdb.ExtraRuntimeParams[key] = value
		}
	}

	if cfg.maxConns > 0 {
		tsdb.MaxConnections = int32(cfg.maxConns)
	}

	if cfg.minConns > 0 {
		tsdb.MinConnections = int32(cfg.minConns)
	}

	if cfg.statementTimeout > 0 {
		tsdb.StatementTimeout = models.Duration(cfg.statementTimeout)
	}

	if cfg.healthCheckPeriod > 0 {
		tsdb.HealthCheckPeriod = models.Duration(cfg.healthCheckPeriod)
	}

	if cfg.caFile != "" || cfg.certFile != "" || cfg.keyFile != "" {
		if cfg.caFile == "" || cfg.certFile == "" || cfg.keyFile == "" {
			return errTLSFilesIncomplete
		}

		tsdb.TLS = &models.TLSConfig{
			CertFile: cfg.certFile,
			KeyFile:  cfg.keyFile,
			CAFile:   cfg.caFile,
		}
	}

	pool, err := db.NewPool(ctx, tsdb, appLogger)
	if err != nil {
		return fmt.Errorf("connect to TimescaleDB: %w", err)
	}
	defer pool.Close()

	appLogger.Info().Msg("applying schema migrations")

	if err := db.RunMigrations(ctx, pool, appLogger); err != nil {
		return fmt.Errorf("apply migrations: %w", err)
	}

	appLogger.Info().Msg("schema migrations finished successfully")

	return nil
}

func (cfg *migrateConfig) validate() error {
	if strings.TrimSpace(cfg.host) == "" {
		return errHostRequired
	}

	if strings.TrimSpace(cfg.database) == "" {
		return errDatabaseRequired
	}

	if cfg.port <= 0 || cfg.port > 65535 {
		return fmt.Errorf("%w: %d", errInvalidPort, cfg.port)
	}

	return nil
}

func (cfg *migrateConfig) resolvePassword() error {
	if cfg.password != "" || cfg.passwordFile == "" {
		return nil
	}

	data, err := os.ReadFile(cfg.passwordFile)
	if err != nil {
		return fmt.Errorf("read password file: %w", err)
	}

	cfg.password = strings.TrimSpace(string(data))

	return nil
}

func parseFlags() *migrateConfig {
	cfg := &migrateConfig{
		runtimeParams: make(map[string]string),
	}

	flag.StringVar(&cfg.host, "host", envString("TSDB_HOST", "127.0.0.1"), "TimescaleDB host or IP address")
	flag.IntVar(&cfg.port, "port", envInt("TSDB_PORT", 5432), "TimescaleDB port")
	flag.StringVar(&cfg.database, "database", envString("TSDB_DATABASE", "solarmesh"), "Target database name")
	flag.StringVar(&cfg.username, "username", envStringAny([]string{"TSDB_USERNAME", "TSDB_USER"}, "postgres"), "Database username")
	flag.StringVar(&cfg.password, "password", envString("TSDB_PASSWORD", ""), "Database password (prefer env or --password-file)")
	flag.StringVar(&cfg.passwordFile, "password-file", envString("TSDB_PASSWORD_FILE", ""), "Path to a file that contains the database password")
	flag.StringVar(&cfg.sslMode, "sslmode", envString("TSDB_SSLMODE", "disable"), "Postgres sslmode")
	flag.StringVar(&cfg.certDir, "cert-dir", envString("TSDB_CERT_DIR", ""), "Directory that contains TLS files (optional)")
	flag.StringVar(&cfg.caFile, "ca-file", envString("TSDB_CA_FILE", ""), "Path to the database CA bundle")
	flag.StringVar(&cfg.certFile, "cert-file", envString("TSDB_CERT_FILE", ""), "Path to the client certificate")
	flag.StringVar(&cfg.keyFile, "key-file", envString("TSDB_KEY_FILE", ""), "Path to the client private key")
	flag.StringVar(&cfg.appName, "app-name", envString("TSDB_APP_NAME", "solarmesh-migrator"), "Application name recorded in pg_stat_activity")
	flag.DurationVar(&cfg.statementTimeout, "statement-timeout", envDuration("TSDB_STATEMENT_TIMEOUT", 0), "Optional statement timeout (e.g. 30s)")
	flag.DurationVar(&cfg.healthCheckPeriod, "health-check-period", envDuration("TSDB_HEALTH_CHECK_PERIOD", 0), "Optional pgx pool health check period")
	flag.IntVar(&cfg.maxConns, "max-conns", envInt("TSDB_MAX_CONNS", 4), "Maximum pgx connections")
	flag.IntVar(&cfg.minConns, "min-conns", envInt("TSDB_MIN_CONNS", 0), "Minimum pgx connections")
	flag.BoolVar(&cfg.debug, "debug", envBool("TSDB_MIGRATE_DEBUG", false), "Enable debug logging")
	flag.Func("runtime-param", "Additional runtime parameter in key=value form (repeatable)", func(value string) error {
		value = strings.TrimSpace(value)
		if value == "" {
			return nil
		}

		parts := strings.SplitN(value, "=", 2)
		if len(parts) != 2 {
			return fmt.Errorf("%w: %q", errInvalidRuntimeParameter, value)
		}

		key := strings.TrimSpace(parts[0])
		val := strings.TrimSpace(parts[1])
		if key == "" {
			return errRuntimeParamKeyEmpty
		}

		cfg.runtimeParams[key] = val

		return nil
	})

	flag.Parse()

	return cfg
}

func envString(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}

	return fallback
}

func envStringAny(keys []string, fallback string) string {
	for _, key := range keys {
		if value := os.Getenv(key); value != "" {
			return value
		}
	}

	return fallback
}

func envInt(key string, fallback int) int {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.Atoi(value); err == nil {
			return parsed
		}
	}

	return fallback
}

func envDuration(key string, fallback time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if parsed, err := time.ParseDuration(value); err == nil {
			return parsed
		}
	}

	return fallback
}

func envBool(key string, fallback bool) bool {
	if value := os.Getenv(key); value != "" {
		switch strings.ToLower(value) {
		case "1", "true", "yes", "on":
			return true
		case "0", "false", "no", "off":
			return false
		}
	}

	return fallback
}
