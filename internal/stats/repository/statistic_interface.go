package repository

import (
	statsdomain "mailpilot-backend/internal/stats/domain"
)

// StatisticRepository defines the interface for statistic persistence
type StatisticRepository interface {
	// RecordRun inserts the run's statistic rows and advances the tenant's
	// history cursor in a single transaction. Either both commit or neither.
	RecordRun(tenantEmail string, records []statsdomain.StatisticRecord, newCursor string) error
	// SumProcessed sums processed counts for (tenant, rule) inside the
	// optional [start, end) epoch-second window. Missing rows sum to 0.
	SumProcessed(tenantEmail, ruleRemoteID string, start, end *int64) (int64, error)
}
