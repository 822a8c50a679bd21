package service

import (
	"context"
	"time"

	"github.com/goodnatureofminers/blockinsight7000-anomaly/internal/anomaly/model"
	"github.com/goodnatureofminers/blockinsight7000-anomaly/internal/anomaly/pipeline"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	TableSource interface {
		BlockStats(ctx context.Context, coin model.Coin, network model.Network, fromHeight, toHeight uint64) (*model.Table, error)
	}
	ScoreStore interface {
		InsertRiskScores(ctx context.Context, scores []model.RiskScore) error
	}
	Runner interface {
		Run(table *model.Table, percentile int) (*pipeline.Result, error)
	}

	StatsSource interface {
		LatestHeight(ctx context.Context) (uint64, error)
		FetchBlockStats(ctx context.Context, height uint64) (model.BlockStats, error)
	}
	StatsRepository interface {
		MaxBlockStatsHeight(ctx context.Context, coin model.Coin, network model.Network) (uint64, error)
		InsertBlockStats(ctx context.Context, stats []model.BlockStats) error
	}
	StatsIngesterMetrics interface {
		ObserveSync(err error, blocks int, height uint64, started time.Time)
	}
)
