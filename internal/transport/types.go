package transport

import (
	"context"

	"github.com/goodnatureofminers/blockinsight7000-anomaly/internal/anomaly/pipeline"
	"github.com/goodnatureofminers/blockinsight7000-anomaly/internal/anomaly/service"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	// Scanner runs the anomaly pipeline over a stored height range.
	Scanner interface {
		Scan(ctx context.Context, req service.ScanRequest) (*pipeline.Result, error)
	}
	// Pinger reports whether a backing store is reachable.
	Pinger interface {
		Ping(ctx context.Context) error
	}
)
