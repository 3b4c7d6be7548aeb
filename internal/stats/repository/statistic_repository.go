package repository

import (
	"fmt"
	"time"

	statsdomain "mailpilot-backend/internal/stats/domain"
	tenantdomain "mailpilot-backend/internal/tenant/domain"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// statisticRepository implements StatisticRepository interface
type statisticRepository struct {
	db *gorm.DB
}

// NewStatisticRepository creates a new instance of statisticRepository
func NewStatisticRepository(db *gorm.DB) StatisticRepository {
	return &statisticRepository{
		db: db,
	}
}

func (r *statisticRepository) RecordRun(tenantEmail string, records []statsdomain.StatisticRecord, newCursor string) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		now := time.Now()
		for i := range records {
			records[i].ID = uuid.New().String()
			records[i].TenantEmail = tenantEmail
			records[i].CreatedAt = now
		}
		if len(records) > 0 {
			if err := tx.Create(&records).Error; err != nil {
				return err
			}
		}

		// Cursor advancement is the last step of the run and must not
		// outlive a failed statistics insert.
		result := tx.Model(&tenantdomain.Tenant{}).
			Where("email = ?", tenantEmail).
			Updates(map[string]interface{}{
				"history_cursor": newCursor,
				"updated_at":     now,
			})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return fmt.Errorf("tenant %s not found while advancing cursor", tenantEmail)
		}
		return nil
	})
}

func (r *statisticRepository) SumProcessed(tenantEmail, ruleRemoteID string, start, end *int64) (int64, error) {
	q := r.db.Model(&statsdomain.StatisticRecord{}).
		Where("tenant_email = ? AND rule_remote_id = ?", tenantEmail, ruleRemoteID)
	if start != nil {
		q = q.Where("timestamp >= ?", *start)
	}
	if end != nil {
		q = q.Where("timestamp < ?", *end)
	}

	var total *int64
	if err := q.Select("SUM(processed)").Scan(&total).Error; err != nil {
		return 0, err
	}
	if total == nil {
		return 0, nil
	}
	return *total, nil
}
