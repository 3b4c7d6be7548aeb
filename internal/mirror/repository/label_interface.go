package repository

import (
	mirrordomain "mailpilot-backend/internal/mirror/domain"
)

// LabelRepository defines the interface for the local label cache
type LabelRepository interface {
	// ListByTenant returns the tenant's labels sorted by name
	ListByTenant(tenantEmail string) ([]mirrordomain.Label, error)
	FindByID(tenantEmail, id string) (*mirrordomain.Label, error)
	// Upsert inserts or refreshes the row keyed by (tenant, remote id)
	Upsert(label *mirrordomain.Label) error
	// DeleteStale removes rows whose remote id is no longer present remotely
	DeleteStale(tenantEmail string, keepRemoteIDs []string) error
	Delete(tenantEmail, id string) error
	DeleteByTenant(tenantEmail string) error
}
