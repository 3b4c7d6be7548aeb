package repository

import (
	mirrordomain "mailpilot-backend/internal/mirror/domain"
)

// RuleRepository defines the interface for the local rule cache
type RuleRepository interface {
	// ListByTenant returns the tenant's rules sorted by name
	ListByTenant(tenantEmail string) ([]mirrordomain.Rule, error)
	FindByID(tenantEmail, id string) (*mirrordomain.Rule, error)
	// Upsert inserts or refreshes the row keyed by (tenant, remote id).
	// A locally assigned name survives the refresh.
	Upsert(rule *mirrordomain.Rule) error
	// DeleteStale removes rows whose remote id is no longer present remotely
	DeleteStale(tenantEmail string, keepRemoteIDs []string) error
	Delete(tenantEmail, id string) error
	DeleteByTenant(tenantEmail string) error
}
