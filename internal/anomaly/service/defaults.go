package service

import "time"

const (
	defaultStatsWorkerCount         = 8
	defaultStatsChunkSize    uint64 = 500
	defaultStatsPollInterval        = 30 * time.Second
)
