package repository

import (
	"errors"
	"time"

	mirrordomain "mailpilot-backend/internal/mirror/domain"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// labelRepository implements LabelRepository interface
type labelRepository struct {
	db *gorm.DB
}

// NewLabelRepository creates a new instance of labelRepository
func NewLabelRepository(db *gorm.DB) LabelRepository {
	return &labelRepository{
		db: db,
	}
}

func (r *labelRepository) ListByTenant(tenantEmail string) ([]mirrordomain.Label, error) {
	var labels []mirrordomain.Label
	err := r.db.Where("tenant_email = ?", tenantEmail).Order("name asc").Find(&labels).Error
	return labels, err
}

func (r *labelRepository) FindByID(tenantEmail, id string) (*mirrordomain.Label, error) {
	var label mirrordomain.Label
	err := r.db.Where("tenant_email = ? AND id = ?", tenantEmail, id).First(&label).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &label, nil
}

func (r *labelRepository) Upsert(label *mirrordomain.Label) error {
	var existing mirrordomain.Label
	err := r.db.Where("tenant_email = ? AND remote_id = ?", label.TenantEmail, label.RemoteID).First(&existing).Error

	now := time.Now()
	if errors.Is(err, gorm.ErrRecordNotFound) {
		label.ID = uuid.New().String()
		label.CreatedAt = now
		label.UpdatedAt = now
		return r.db.Create(label).Error
	} else if err != nil {
		return err
	}

	existing.Name = label.Name
	existing.TextColor = label.TextColor
	existing.BackgroundColor = label.BackgroundColor
	existing.UpdatedAt = now
	if err := r.db.Save(&existing).Error; err != nil {
		return err
	}
	*label = existing
	return nil
}

func (r *labelRepository) DeleteStale(tenantEmail string, keepRemoteIDs []string) error {
	if len(keepRemoteIDs) == 0 {
		return r.DeleteByTenant(tenantEmail)
	}
	return r.db.Where("tenant_email = ? AND remote_id NOT IN ?", tenantEmail, keepRemoteIDs).
		Delete(&mirrordomain.Label{}).Error
}

func (r *labelRepository) Delete(tenantEmail, id string) error {
	return r.db.Where("tenant_email = ? AND id = ?", tenantEmail, id).Delete(&mirrordomain.Label{}).Error
}

func (r *labelRepository) DeleteByTenant(tenantEmail string) error {
	return r.db.Where("tenant_email = ?", tenantEmail).Delete(&mirrordomain.Label{}).Error
}
