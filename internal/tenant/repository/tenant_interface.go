package repository

import (
	tenantdomain "mailpilot-backend/internal/tenant/domain"
)

// TenantRepository defines the interface for tenant persistence
type TenantRepository interface {
	Create(tenant *tenantdomain.Tenant) error
	FindByEmail(email string) (*tenantdomain.Tenant, error)
	// ListAll returns every tenant ordered by email for stable iteration
	ListAll() ([]tenantdomain.Tenant, error)
	// UpdateTokens replaces the stored OAuth tokens, leaving the cursor alone
	UpdateTokens(email, accessToken, refreshToken string) error
	// UpdateCursor sets the history cursor (baseline initialization)
	UpdateCursor(email, cursor string) error
	Delete(email string) error
}
