package repository

import (
	"errors"
	"time"

	mirrordomain "mailpilot-backend/internal/mirror/domain"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ruleRepository implements RuleRepository interface
type ruleRepository struct {
	db *gorm.DB
}

// NewRuleRepository creates a new instance of ruleRepository
func NewRuleRepository(db *gorm.DB) RuleRepository {
	return &ruleRepository{
		db: db,
	}
}

func (r *ruleRepository) ListByTenant(tenantEmail string) ([]mirrordomain.Rule, error) {
	var rules []mirrordomain.Rule
	err := r.db.Where("tenant_email = ?", tenantEmail).Order("name asc").Find(&rules).Error
	return rules, err
}

func (r *ruleRepository) FindByID(tenantEmail, id string) (*mirrordomain.Rule, error) {
	var rule mirrordomain.Rule
	err := r.db.Where("tenant_email = ? AND id = ?", tenantEmail, id).First(&rule).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &rule, nil
}

func (r *ruleRepository) Upsert(rule *mirrordomain.Rule) error {
	var existing mirrordomain.Rule
	err := r.db.Where("tenant_email = ? AND remote_id = ?", rule.TenantEmail, rule.RemoteID).First(&existing).Error

	now := time.Now()
	if errors.Is(err, gorm.ErrRecordNotFound) {
		rule.ID = uuid.New().String()
		if rule.Name == "" {
			// Remote filters are nameless; fall back to the criteria
			rule.Name = rule.Criteria
		}
		rule.CreatedAt = now
		rule.UpdatedAt = now
		return r.db.Create(rule).Error
	} else if err != nil {
		return err
	}

	// Gmail filters carry no display name, so a name set locally wins
	// over the fallback derived from the remote filter.
	if rule.Name != "" {
		existing.Name = rule.Name
	}
	existing.Criteria = rule.Criteria
	existing.AddLabelIDs = rule.AddLabelIDs
	existing.RemoveLabelIDs = rule.RemoveLabelIDs
	existing.Forward = rule.Forward
	existing.UpdatedAt = now
	if err := r.db.Save(&existing).Error; err != nil {
		return err
	}
	*rule = existing
	return nil
}

func (r *ruleRepository) DeleteStale(tenantEmail string, keepRemoteIDs []string) error {
	if len(keepRemoteIDs) == 0 {
		return r.DeleteByTenant(tenantEmail)
	}
	return r.db.Where("tenant_email = ? AND remote_id NOT IN ?", tenantEmail, keepRemoteIDs).
		Delete(&mirrordomain.Rule{}).Error
}

func (r *ruleRepository) Delete(tenantEmail, id string) error {
	return r.db.Where("tenant_email = ? AND id = ?", tenantEmail, id).Delete(&mirrordomain.Rule{}).Error
}

func (r *ruleRepository) DeleteByTenant(tenantEmail string) error {
	return r.db.Where("tenant_email = ?", tenantEmail).Delete(&mirrordomain.Rule{}).Error
}
