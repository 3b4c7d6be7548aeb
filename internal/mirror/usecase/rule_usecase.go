package usecase

import (
	"context"
	"fmt"

	mirrordomain "mailpilot-backend/internal/mirror/domain"
	mirrordto "mailpilot-backend/internal/mirror/dto"
	"mailpilot-backend/internal/mirror/repository"
	tenantdomain "mailpilot-backend/internal/tenant/domain"
	"mailpilot-backend/pkg/gmail"
)

// ruleUsecase implements RuleUsecase interface
type ruleUsecase struct {
	ruleRepo    repository.RuleRepository
	gmailClient gmail.Client
}

// NewRuleUsecase creates a new instance of ruleUsecase
func NewRuleUsecase(ruleRepo repository.RuleRepository, gmailClient gmail.Client) RuleUsecase {
	return &ruleUsecase{
		ruleRepo:    ruleRepo,
		gmailClient: gmailClient,
	}
}

// SyncRules makes the local cache set-equal (by remote id) to Gmail's
// filter set and returns the reconciled cache sorted by name.
func (u *ruleUsecase) SyncRules(ctx context.Context, tenant *tenantdomain.Tenant) ([]mirrordomain.Rule, error) {
	remote, err := u.gmailClient.ListFilters(ctx, tenant.Credentials())
	if err != nil {
		return nil, fmt.Errorf("failed to fetch filters from Gmail: %w", err)
	}

	keep := make([]string, 0, len(remote))
	for _, rf := range remote {
		keep = append(keep, rf.ID)
		rule := &mirrordomain.Rule{
			TenantEmail:    tenant.Email,
			RemoteID:       rf.ID,
			Criteria:       rf.Criteria,
			AddLabelIDs:    rf.AddLabelIDs,
			RemoveLabelIDs: rf.RemoveLabelIDs,
			Forward:        rf.Forward,
		}
		if err := u.ruleRepo.Upsert(rule); err != nil {
			return nil, err
		}
	}

	if err := u.ruleRepo.DeleteStale(tenant.Email, keep); err != nil {
		return nil, err
	}

	return u.ruleRepo.ListByTenant(tenant.Email)
}

func (u *ruleUsecase) CreateRule(ctx context.Context, tenant *tenantdomain.Tenant, req *mirrordto.CreateRuleRequest) (*mirrordomain.Rule, error) {
	// Gmail is the commit point; the local mirror follows only on success
	created, err := u.gmailClient.CreateFilter(ctx, tenant.Credentials(), gmail.Filter{
		Criteria:       req.Criteria,
		AddLabelIDs:    req.AddLabelIDs,
		RemoveLabelIDs: req.RemoveLabelIDs,
		Forward:        req.Forward,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create filter in Gmail: %w", err)
	}

	rule := &mirrordomain.Rule{
		TenantEmail:    tenant.Email,
		RemoteID:       created.ID,
		Name:           req.Name,
		Criteria:       created.Criteria,
		AddLabelIDs:    created.AddLabelIDs,
		RemoveLabelIDs: created.RemoveLabelIDs,
		Forward:        created.Forward,
	}
	if err := u.ruleRepo.Upsert(rule); err != nil {
		// The next SyncRules pass repairs a missed mirror write
		return nil, err
	}
	return rule, nil
}

func (u *ruleUsecase) DeleteRule(ctx context.Context, tenant *tenantdomain.Tenant, id string) error {
	rule, err := u.ruleRepo.FindByID(tenant.Email, id)
	if err != nil {
		return err
	}
	if rule == nil {
		return ErrRuleNotFound
	}

	if err := u.gmailClient.DeleteFilter(ctx, tenant.Credentials(), rule.RemoteID); err != nil {
		return fmt.Errorf("failed to delete filter from Gmail: %w", err)
	}

	return u.ruleRepo.Delete(tenant.Email, id)
}
