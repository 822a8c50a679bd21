package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/btcsuite/btcd/rpcclient"
	"github.com/goodnatureofminers/blockinsight7000-anomaly/internal/anomaly/bitcoin"
	"github.com/goodnatureofminers/blockinsight7000-anomaly/internal/anomaly/model"
	"github.com/goodnatureofminers/blockinsight7000-anomaly/internal/anomaly/repository/clickhouse"
	"github.com/goodnatureofminers/blockinsight7000-anomaly/internal/anomaly/service"
	"github.com/goodnatureofminers/blockinsight7000-anomaly/internal/metrics"
	observed "github.com/goodnatureofminers/blockinsight7000-anomaly/internal/pkg/btcd/rpcclient"
	"github.com/jessevdk/go-flags"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

type config struct {
	ClickhouseDSN string        `long:"clickhouse-dsn" env:"STATS_INGESTER_CLICKHOUSE_DSN" description:"ClickHouse DSN" required:"true"`
	Coin          model.Coin    `long:"coin" env:"STATS_INGESTER_COIN" description:"coin name" required:"true"`
	Network       model.Network `long:"network" env:"STATS_INGESTER_NETWORK" description:"network name" required:"true"`
	RPCURL        string        `long:"rpc-url" env:"STATS_INGESTER_RPC_URL" description:"Bitcoin RPC URL" default:"http://127.0.0.1:8332"`
	RPCUser       string        `long:"rpc-user" env:"STATS_INGESTER_RPC_USER" description:"Bitcoin RPC username"`
	RPCPassword   string        `long:"rpc-password" env:"STATS_INGESTER_RPC_PASSWORD" description:"Bitcoin RPC password"`
	RPCRate       int           `long:"rpc-rate" env:"STATS_INGESTER_RPC_RATE" description:"max RPC requests per second, unlimited when 0" default:"50"`
	StartHeight   uint64        `long:"start-height" env:"STATS_INGESTER_START_HEIGHT" description:"first height to ingest into an empty table"`
	ChunkSize     uint64        `long:"chunk-size" env:"STATS_INGESTER_CHUNK_SIZE" description:"blocks fetched per iteration" default:"500"`
	Workers       int           `long:"workers" env:"STATS_INGESTER_WORKERS" description:"concurrent getblockstats calls" default:"8"`
	PollInterval  time.Duration `long:"poll-interval" env:"STATS_INGESTER_POLL_INTERVAL" description:"wait between iterations once caught up" default:"30s"`
	MetricsAddr   string        `long:"metrics-addr" env:"STATS_INGESTER_METRICS_ADDR" description:"address for metrics server" default:":2112"`
}

func main() {
	cfg := config{}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger, err := zap.NewDevelopment()
	if err != nil {
		panic("can't initialize zap logger: " + err.Error())
	}
	defer func() {
		_ = logger.Sync()
	}()

	if _, err := flags.ParseArgs(&cfg, os.Args); err != nil {
		var ferr *flags.Error
		if errors.As(err, &ferr) && ferr.Type == flags.ErrHelp {
			return
		}
		logger.Fatal("failed to parse flags", zap.Error(err))
	}

	if err := run(ctx, cfg, logger); err != nil && !errors.Is(err, context.Canceled) {
		logger.Fatal("stats ingester failed", zap.Error(err))
	}
}

func run(ctx context.Context, cfg config, logger *zap.Logger) error {
	startMetricsServer(ctx, cfg.MetricsAddr, logger)

	repo, err := clickhouse.NewRepository(cfg.ClickhouseDSN, metrics.NewClickhouseRepository())
	if err != nil {
		return fmt.Errorf("init repository: %w", err)
	}
	defer func() {
		if err := repo.Close(); err != nil {
			logger.Warn("failed to close repository", zap.Error(err))
		}
	}()

	rpcClient, err := newRPCClient(cfg.RPCURL, cfg.RPCUser, cfg.RPCPassword)
	if err != nil {
		return fmt.Errorf("init rpc client: %w", err)
	}
	defer func() {
		rpcClient.Shutdown()
		rpcClient.WaitForShutdown()
	}()

	rpc := observed.NewObservedClient(rpcClient, metrics.NewRPCClient(cfg.Coin, cfg.Network))
	source := bitcoin.NewStatsSource(rpc, cfg.Coin, cfg.Network, cfg.RPCRate)

	svc, err := service.NewStatsIngester(
		repo,
		source,
		metrics.NewStatsIngester(cfg.Coin, cfg.Network),
		cfg.Coin,
		cfg.Network,
		service.StatsIngesterConfig{
			StartHeight:  cfg.StartHeight,
			ChunkSize:    cfg.ChunkSize,
			WorkerCount:  cfg.Workers,
			PollInterval: cfg.PollInterval,
		},
		logger,
	)
	if err != nil {
		return err
	}
	return svc.Run(ctx)
}

func startMetricsServer(ctx context.Context, addr string, logger *zap.Logger) {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())

	srv := &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadTimeout:       15 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		logger.Info("starting metrics server", zap.String("addr", addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("metrics server failed", zap.Error(err))
		}
	}()

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Error("failed to shutdown metrics server", zap.Error(err))
		}
	}()
}

func newRPCClient(rawURL, user, password string) (*rpcclient.Client, error) {
	parsed, err := url.Parse(rawURL)
	if err != nil {
		return nil, fmt.Errorf("parse rpc url: %w", err)
	}
	if parsed.Scheme != "http" {
		return nil, fmt.Errorf("rpc url scheme %q not supported, use http", parsed.Scheme)
	}
	if parsed.Host == "" {
		return nil, errors.New("rpc url missing host")
	}

	return rpcclient.New(&rpcclient.ConnConfig{
		Host:         parsed.Host,
		User:         user,
		Pass:         password,
		HTTPPostMode: true,
		DisableTLS:   true,
	}, nil)
}
