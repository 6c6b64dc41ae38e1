package main

import (
	"context"
	"errors"
	"net"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/eternalApril/nisekv/internal/config"
	"github.com/eternalApril/nisekv/internal/engine"
	"github.com/eternalApril/nisekv/internal/logger"
	"github.com/eternalApril/nisekv/internal/metrics"
	"github.com/eternalApril/nisekv/internal/server"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

const shutdownTimeout = 5 * time.Second

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the nisekv server",
	Long: `Start the nisekv server. Settings are read from config.yaml, then from environment
variables (NISEKV_<SECTION>_<KEY>, e.g. NISEKV_SERVER_PORT=6390), then from flags.
.env and .env.local are loaded into the environment first.`,
	PreRunE: bindFlags,
	RunE:    serve,
}

// flagKeys maps every serve flag to its configuration key
var flagKeys = map[string]string{
	"host":         "server.host",
	"port":         "server.port",
	"requirepass":  "server.requirepass",
	"databases":    "storage.databases",
	"seed":         "storage.seed",
	"log-level":    "log.level",
	"log-format":   "log.format",
	"metrics":      "metrics.enabled",
	"metrics-addr": "metrics.addr",
}

func init() {
	cobra.OnInitialize(initEnv)

	flags := serveCmd.Flags()
	flags.String("config", ".", "directory containing config.yaml")
	flags.String("host", "0.0.0.0", "address to listen on")
	flags.String("port", "6380", "port to listen on")
	flags.String("requirepass", "", "password clients must AUTH with (empty disables authentication)")
	flags.Int("databases", engine.DefaultDatabases, "number of databases")
	flags.Uint64("seed", 0, "seed of the random key selection (0 = time-seeded)")
	flags.String("log-level", "info", "log level (debug, info, warn, error)")
	flags.String("log-format", "json", "log format (json, console)")
	flags.Bool("metrics", false, "serve Prometheus metrics over HTTP")
	flags.String("metrics-addr", "127.0.0.1:9121", "address of the metrics endpoint")
}

func initEnv() {
	// load env files
	_ = godotenv.Load(".env")
	_ = godotenv.Load(".env.local")
}

// bindFlags binds the explicitly set flags to their configuration keys
func bindFlags(cmd *cobra.Command, _ []string) error {
	for name, key := range flagKeys {
		f := cmd.Flags().Lookup(name)
		if f == nil || !f.Changed {
			continue
		}
		if err := viper.BindPFlag(key, f); err != nil {
			return err
		}
	}
	return nil
}

func serve(cmd *cobra.Command, _ []string) error {
	dir, _ := cmd.Flags().GetString("config")

	cfg, err := config.Load(dir)
	if err != nil {
		return err
	}

	log, err := logger.New(cfg.Log.Level, cfg.Log.Format)
	if err != nil {
		return err
	}
	defer log.Sync() //nolint:errcheck

	log.Info("nisekv starting",
		zap.String("version", Version),
		zap.String("port", cfg.Server.Port),
		zap.Int("databases", cfg.Storage.Databases),
		zap.Bool("auth", cfg.Server.RequirePass != ""),
	)

	registry := engine.NewRegistry(&engine.Options{
		Databases: cfg.Storage.Databases,
		Seed:      cfg.Storage.Seed,
	})

	m := metrics.New()
	dispatcher, err := server.NewDispatcher(registry, server.Options{
		RequirePass: cfg.Server.RequirePass,
		Metrics:     m,
		Logger:      log,
	})
	if err != nil {
		log.Error("cant initialize dispatcher", zap.Error(err))
		return err
	}

	address := net.JoinHostPort(cfg.Server.Host, cfg.Server.Port)
	listener, err := net.Listen("tcp", address)
	if err != nil {
		log.Error("listener error", zap.Error(err))
		return err
	}
	log.Info("listening on", zap.String("address", address))

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	var metricsSrv *http.Server
	if cfg.Metrics.Enabled {
		mux := http.NewServeMux()
		mux.Handle("/metrics", m.Handler())
		metricsSrv = &http.Server{Addr: cfg.Metrics.Addr, Handler: mux, ReadHeaderTimeout: 5 * time.Second}

		go func() {
			log.Info("metrics listening on", zap.String("address", cfg.Metrics.Addr))
			if err := metricsSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				log.Error("metrics server error", zap.Error(err))
			}
		}()
	}

	srv := server.NewServer(dispatcher, log)
	serveErr := make(chan error, 1)
	go func() {
		serveErr <- srv.Serve(listener)
	}()

	select {
	case <-ctx.Done():
	case err := <-serveErr:
		if err != nil {
			log.Error("accept loop stopped", zap.Error(err))
		}
	}

	log.Info("shutting down...")

	if metricsSrv != nil {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		metricsSrv.Shutdown(shutdownCtx) //nolint:errcheck
	}

	srv.Shutdown(shutdownTimeout)

	log.Info("nisekv stopped")
	return nil
}
