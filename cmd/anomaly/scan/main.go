package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/goodnatureofminers/blockinsight7000-anomaly/internal/anomaly/model"
	"github.com/goodnatureofminers/blockinsight7000-anomaly/internal/anomaly/pipeline"
	"github.com/goodnatureofminers/blockinsight7000-anomaly/internal/anomaly/repository/clickhouse"
	"github.com/goodnatureofminers/blockinsight7000-anomaly/internal/anomaly/service"
	"github.com/goodnatureofminers/blockinsight7000-anomaly/internal/anomaly/source/csvfile"
	appconfig "github.com/goodnatureofminers/blockinsight7000-anomaly/internal/config"
	"github.com/goodnatureofminers/blockinsight7000-anomaly/internal/metrics"
	"github.com/jessevdk/go-flags"
	"go.uber.org/zap"
)

type config struct {
	Input         string        `long:"input" env:"ANOMALY_SCAN_INPUT" description:"CSV or gzip-compressed CSV file; ClickHouse is used when empty"`
	Profile       string        `long:"profile" env:"ANOMALY_PROFILE" description:"YAML pipeline profile" default:"anomaly.yaml"`
	Percentile    int           `long:"percentile" env:"ANOMALY_SCAN_PERCENTILE" description:"percentile threshold (90-99); profile value when 0"`
	Top           int           `long:"top" env:"ANOMALY_SCAN_TOP" description:"number of highest-risk blocks to report" default:"10"`
	Store         bool          `long:"store" env:"ANOMALY_SCAN_STORE" description:"persist risk scores to ClickHouse"`
	ClickhouseDSN string        `long:"clickhouse-dsn" env:"ANOMALY_SCAN_CLICKHOUSE_DSN" description:"ClickHouse DSN"`
	Coin          model.Coin    `long:"coin" env:"ANOMALY_SCAN_COIN" description:"coin name" default:"BTC"`
	Network       model.Network `long:"network" env:"ANOMALY_SCAN_NETWORK" description:"network name" default:"mainnet"`
	FromHeight    uint64        `long:"from" env:"ANOMALY_SCAN_FROM" description:"first block height (ClickHouse source)"`
	ToHeight      uint64        `long:"to" env:"ANOMALY_SCAN_TO" description:"last block height (ClickHouse source)"`
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

	if err := run(ctx, cfg, logger); err != nil {
		logger.Fatal("anomaly scan failed", zap.Error(err))
	}
}

func run(ctx context.Context, cfg config, logger *zap.Logger) error {
	profile, err := appconfig.LoadProfile(cfg.Profile)
	if err != nil {
		return fmt.Errorf("load profile: %w", err)
	}
	percentile := profile.Percentile
	if cfg.Percentile != 0 {
		percentile = cfg.Percentile
	}

	var repo *clickhouse.Repository
	if cfg.Input == "" || cfg.Store {
		if cfg.ClickhouseDSN == "" {
			return errors.New("ClickHouse DSN is required without --input or with --store")
		}
		repo, err = clickhouse.NewRepository(cfg.ClickhouseDSN, metrics.NewClickhouseRepository())
		if err != nil {
			return fmt.Errorf("init repository: %w", err)
		}
		defer func() {
			if err := repo.Close(); err != nil {
				logger.Warn("failed to close repository", zap.Error(err))
			}
		}()
	}

	runner := pipeline.New(logger, metrics.NewPipeline(), profile.NonNegativeColumns)
	var (
		source service.TableSource
		store  service.ScoreStore
	)
	if repo != nil {
		source, store = repo, repo
	}
	svc := service.NewScanService(source, store, runner, logger)

	var res *pipeline.Result
	if cfg.Input != "" {
		table, err := csvfile.Read(cfg.Input)
		if err != nil {
			return err
		}
		logger.Info("loaded table", zap.String("input", cfg.Input), zap.Int("rows", table.Len()), zap.Strings("columns", table.Columns()))
		if res, err = svc.ScanTable(table, percentile); err != nil {
			return err
		}
		if cfg.Store {
			if err := svc.Store(ctx, cfg.Coin, cfg.Network, res); err != nil {
				return err
			}
		}
	} else {
		res, err = svc.Scan(ctx, service.ScanRequest{
			Coin:       cfg.Coin,
			Network:    cfg.Network,
			FromHeight: cfg.FromHeight,
			ToHeight:   cfg.ToHeight,
			Percentile: percentile,
			Store:      cfg.Store,
		})
		if err != nil {
			return err
		}
	}

	report(logger, res, cfg.Top)
	return nil
}

func report(logger *zap.Logger, res *pipeline.Result, top int) {
	logger.Info("thresholds",
		zap.Int("percentile", res.Percentile),
		zap.Float64("fee_spread", res.Thresholds.FeeSpread),
		zap.Float64("tx_complexity", res.Thresholds.TxComplexity),
		zap.Float64("fee_per_tx", res.Thresholds.FeePerTx),
	)
	logger.Info("summary",
		zap.Int("rows_total", res.RowsIn),
		zap.Int("rows_cleaned", res.RowsCleaned),
		zap.Int("rows_dropped", res.RowsIn-res.RowsCleaned),
		zap.Int("suspicious", res.SuspiciousCount()),
		zap.Strings("degenerate_features", res.Normalization.Degenerate),
	)
	for _, i := range res.SuspiciousRows() {
		h, _ := res.Height(i)
		logger.Info("suspicious block",
			zap.Float64("height", h),
			zap.Float64("fee_spread", res.Features.FeeSpread[i]),
			zap.Float64("tx_complexity", res.Features.TxComplexity[i]),
			zap.Float64("fee_per_tx", res.Features.FeePerTx[i]),
		)
	}
	for rank, i := range res.Top(top) {
		h, _ := res.Height(i)
		logger.Info("top risk block",
			zap.Int("rank", rank+1),
			zap.Float64("height", h),
			zap.Float64("risk_score", res.RiskScores[i]),
			zap.Bool("suspicious", res.Suspicious[i]),
		)
	}
}
