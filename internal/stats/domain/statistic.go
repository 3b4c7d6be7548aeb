package domain

import "time"

// StatisticRecord is one per-rule aggregation result from one engine run.
// Rows are append-only and reference rules by their Gmail filter id so the
// history survives rule deletion. Timestamp is epoch seconds UTC.
type StatisticRecord struct {
	ID           string    `json:"id" gorm:"primaryKey"`
	TenantEmail  string    `json:"tenant_email" gorm:"index:idx_stat_tenant_rule;not null"`
	RuleRemoteID string    `json:"rule_remote_id" gorm:"index:idx_stat_tenant_rule;not null"`
	RuleName     string    `json:"rule_name"`
	Timestamp    int64     `json:"timestamp" gorm:"index;not null"`
	Processed    int       `json:"processed" gorm:"not null;default:0"`
	CreatedAt    time.Time `json:"created_at"`
}
