package repository

import (
	"errors"
	"time"

	tenantdomain "mailpilot-backend/internal/tenant/domain"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// tenantRepository implements TenantRepository interface
type tenantRepository struct {
	db *gorm.DB
}

// NewTenantRepository creates a new instance of tenantRepository
func NewTenantRepository(db *gorm.DB) TenantRepository {
	return &tenantRepository{
		db: db,
	}
}

func (r *tenantRepository) Create(tenant *tenantdomain.Tenant) error {
	tenant.ID = uuid.New().String()
	tenant.CreatedAt = time.Now()
	tenant.UpdatedAt = time.Now()
	return r.db.Create(tenant).Error
}

func (r *tenantRepository) FindByEmail(email string) (*tenantdomain.Tenant, error) {
	var tenant tenantdomain.Tenant
	err := r.db.Where("email = ?", email).First(&tenant).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &tenant, nil
}

func (r *tenantRepository) ListAll() ([]tenantdomain.Tenant, error) {
	var tenants []tenantdomain.Tenant
	err := r.db.Order("email asc").Find(&tenants).Error
	return tenants, err
}

func (r *tenantRepository) UpdateTokens(email, accessToken, refreshToken string) error {
	return r.db.Model(&tenantdomain.Tenant{}).
		Where("email = ?", email).
		Updates(map[string]interface{}{
			"access_token":  accessToken,
			"refresh_token": refreshToken,
			"updated_at":    time.Now(),
		}).Error
}

func (r *tenantRepository) UpdateCursor(email, cursor string) error {
	return r.db.Model(&tenantdomain.Tenant{}).
		Where("email = ?", email).
		Updates(map[string]interface{}{
			"history_cursor": cursor,
			"updated_at":     time.Now(),
		}).Error
}

func (r *tenantRepository) Delete(email string) error {
	return r.db.Where("email = ?", email).Delete(&tenantdomain.Tenant{}).Error
}
