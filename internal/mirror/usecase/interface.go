package usecase

import (
	"context"
	"errors"

	mirrordomain "mailpilot-backend/internal/mirror/domain"
	mirrordto "mailpilot-backend/internal/mirror/dto"
	tenantdomain "mailpilot-backend/internal/tenant/domain"
)

var (
	ErrLabelNotFound = errors.New("label not found")
	ErrRuleNotFound  = errors.New("rule not found")
)

// LabelUsecase keeps the local label cache converged with Gmail
type LabelUsecase interface {
	// SyncLabels reconciles the local cache against Gmail and returns it
	SyncLabels(ctx context.Context, tenant *tenantdomain.Tenant) ([]mirrordomain.Label, error)
	// CreateLabel creates the label in Gmail first, then mirrors it
	CreateLabel(ctx context.Context, tenant *tenantdomain.Tenant, req *mirrordto.CreateLabelRequest) (*mirrordomain.Label, error)
	// DeleteLabel deletes by local id; unknown ids yield ErrLabelNotFound
	DeleteLabel(ctx context.Context, tenant *tenantdomain.Tenant, id string) error
}

// RuleUsecase keeps the local rule cache converged with Gmail filters
type RuleUsecase interface {
	SyncRules(ctx context.Context, tenant *tenantdomain.Tenant) ([]mirrordomain.Rule, error)
	CreateRule(ctx context.Context, tenant *tenantdomain.Tenant, req *mirrordto.CreateRuleRequest) (*mirrordomain.Rule, error)
	DeleteRule(ctx context.Context, tenant *tenantdomain.Tenant, id string) error
}
