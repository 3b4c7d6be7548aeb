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

// labelUsecase implements LabelUsecase interface
type labelUsecase struct {
	labelRepo   repository.LabelRepository
	gmailClient gmail.Client
}

// NewLabelUsecase creates a new instance of labelUsecase
func NewLabelUsecase(labelRepo repository.LabelRepository, gmailClient gmail.Client) LabelUsecase {
	return &labelUsecase{
		labelRepo:   labelRepo,
		gmailClient: gmailClient,
	}
}

// SyncLabels makes the local cache set-equal (by remote id) to Gmail's
// label set and returns the reconciled cache sorted by name.
func (u *labelUsecase) SyncLabels(ctx context.Context, tenant *tenantdomain.Tenant) ([]mirrordomain.Label, error) {
	remote, err := u.gmailClient.ListLabels(ctx, tenant.Credentials())
	if err != nil {
		return nil, fmt.Errorf("failed to fetch labels from Gmail: %w", err)
	}

	keep := make([]string, 0, len(remote))
	for _, rl := range remote {
		keep = append(keep, rl.ID)
		label := &mirrordomain.Label{
			TenantEmail:     tenant.Email,
			RemoteID:        rl.ID,
			Name:            rl.Name,
			TextColor:       rl.TextColor,
			BackgroundColor: rl.BackgroundColor,
		}
		if err := u.labelRepo.Upsert(label); err != nil {
			return nil, err
		}
	}

	if err := u.labelRepo.DeleteStale(tenant.Email, keep); err != nil {
		return nil, err
	}

	return u.labelRepo.ListByTenant(tenant.Email)
}

func (u *labelUsecase) CreateLabel(ctx context.Context, tenant *tenantdomain.Tenant, req *mirrordto.CreateLabelRequest) (*mirrordomain.Label, error) {
	// Gmail is the commit point; the local mirror follows only on success
	created, err := u.gmailClient.CreateLabel(ctx, tenant.Credentials(), req.Name, req.TextColor, req.BackgroundColor)
	if err != nil {
		return nil, fmt.Errorf("failed to create label in Gmail: %w", err)
	}

	label := &mirrordomain.Label{
		TenantEmail:     tenant.Email,
		RemoteID:        created.ID,
		Name:            created.Name,
		TextColor:       created.TextColor,
		BackgroundColor: created.BackgroundColor,
	}
	if err := u.labelRepo.Upsert(label); err != nil {
		// The next SyncLabels pass repairs a missed mirror write
		return nil, err
	}
	return label, nil
}

func (u *labelUsecase) DeleteLabel(ctx context.Context, tenant *tenantdomain.Tenant, id string) error {
	label, err := u.labelRepo.FindByID(tenant.Email, id)
	if err != nil {
		return err
	}
	if label == nil {
		return ErrLabelNotFound
	}

	if err := u.gmailClient.DeleteLabel(ctx, tenant.Credentials(), label.RemoteID); err != nil {
		return fmt.Errorf("failed to delete label from Gmail: %w", err)
	}

	return u.labelRepo.Delete(tenant.Email, id)
}
