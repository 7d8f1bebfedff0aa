// Command consensource-sds subscribes to certificate registry state-delta
// events from a Sawtooth validator and projects them into a PostgreSQL
// reporting database.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	zmq "github.com/pebbe/zmq4"

	"github.com/target/consensource-sds/config"
	"github.com/target/consensource-sds/handler"
	"github.com/target/consensource-sds/logging"
	"github.com/target/consensource-sds/metrics"
	"github.com/target/consensource-sds/storage"
	"github.com/target/consensource-sds/subscriber"
)

const version = "1.0.0"

func main() {
	var (
		configPath = flag.String("config", "", "Path to the YAML configuration file")
		connect    = flag.String("connect", "", "Validator component endpoint, e.g. tcp://localhost:4004")
		verbosity  = flag.Int("v", 0, "Log verbosity, 0 for warnings, 1 for info, 2 for debug")
		dbName     = flag.String("dbname", "", "Reporting database name")
		dbHost     = flag.String("dbhost", "", "Reporting database host")
		dbPort     = flag.Int("dbport", 0, "Reporting database port")
		dbUser     = flag.String("dbuser", "", "Reporting database user")
		dbPass     = flag.String("dbpass", "", "Reporting database password")
	)
	flag.Parse()

	cfg, err := loadConfig(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}
	applyFlagOverrides(cfg, *connect, *verbosity, *dbName, *dbHost, *dbPort, *dbUser, *dbPass)

	logger := logging.NewComponentLogger("state-delta-subscriber", version, cfg.Logging.Verbosity)
	logger.Info().
		Str("validator", cfg.Validator.Endpoint).
		Str("database", cfg.Database.Host).
		Msg("Starting state delta subscriber")

	ctx := context.Background()

	store, err := storage.NewPostgresStore(ctx, cfg.ConnectionString(), logger)
	if err != nil {
		logger.Fatal().Err(err).Msg("Failed to connect to reporting database")
	}
	defer store.Close()

	knownBlocks, err := store.FetchKnownBlocks(ctx)
	if err != nil {
		logger.Fatal().Err(err).Msg("Failed to fetch known blocks")
	}
	knownBlockIDs := make([]string, 0, len(knownBlocks))
	for _, block := range knownBlocks {
		knownBlockIDs = append(knownBlockIDs, block.BlockID)
	}
	logger.Info().Int("count", len(knownBlockIDs)).Msg("Loaded known blocks from reporting database")

	zmqCtx, err := zmq.NewContext()
	if err != nil {
		logger.Fatal().Err(err).Msg("Failed to create ZMQ context")
	}
	conn, err := subscriber.NewZmqValidatorConnection(zmqCtx, cfg.Validator.Endpoint)
	if err != nil {
		logger.Fatal().Err(err).Msg("Failed to connect to validator")
	}

	healthServer := metrics.NewHealthServer(cfg.Health.Port)
	healthServer.Start()
	defer healthServer.Stop()

	eventHandler := handler.NewEventHandler(store, logger, healthServer)
	sub := subscriber.New(conn, eventHandler, logger)

	signals := make(chan os.Signal, 1)
	signal.Notify(signals, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-signals
		logger.Info().Str("signal", sig.String()).Msg("Shutting down")
		sub.Shutdown()
	}()

	if err := sub.Start(ctx, knownBlockIDs, 0); err != nil {
		healthServer.RecordError(err)
		logger.Fatal().Err(err).Msg("Subscriber exited with error")
	}
	logger.Info().Msg("Subscriber stopped")
}

func loadConfig(path string) (*config.Config, error) {
	if path == "" {
		return config.Default(), nil
	}
	return config.Load(path)
}

// applyFlagOverrides layers non-zero command line values over the loaded
// configuration.
func applyFlagOverrides(cfg *config.Config, connect string, verbosity int, dbName, dbHost string, dbPort int, dbUser, dbPass string) {
	if connect != "" {
		cfg.Validator.Endpoint = connect
	}
	if verbosity > 0 {
		cfg.Logging.Verbosity = verbosity
	}
	if dbName != "" {
		cfg.Database.Name = dbName
	}
	if dbHost != "" {
		cfg.Database.Host = dbHost
	}
	if dbPort != 0 {
		cfg.Database.Port = dbPort
	}
	if dbUser != "" {
		cfg.Database.User = dbUser
	}
	if dbPass != "" {
		cfg.Database.Password = dbPass
	}
}
