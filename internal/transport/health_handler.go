package transport

import (
	"context"

	"go.uber.org/zap"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
)

// HealthHandler implements the gRPC health service on top of a storage ping.
type HealthHandler struct {
	healthpb.UnimplementedHealthServer
	store  Pinger
	logger *zap.Logger
}

// NewHealthHandler returns a HealthHandler instance.
func NewHealthHandler(store Pinger, logger *zap.Logger) *HealthHandler {
	return &HealthHandler{store: store, logger: logger.Named("healthHandler")}
}

// Check reports SERVING while the store answers pings.
func (h *HealthHandler) Check(ctx context.Context, _ *healthpb.HealthCheckRequest) (*healthpb.HealthCheckResponse, error) {
	if err := h.store.Ping(ctx); err != nil {
		h.logger.Warn("store ping failed", zap.Error(err))
		return &healthpb.HealthCheckResponse{Status: healthpb.HealthCheckResponse_NOT_SERVING}, nil
	}
	return &healthpb.HealthCheckResponse{Status: healthpb.HealthCheckResponse_SERVING}, nil
}
