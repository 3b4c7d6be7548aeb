package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	mirrorrepo "mailpilot-backend/internal/mirror/repository"
	tenantdomain "mailpilot-backend/internal/tenant/domain"
	tenantdto "mailpilot-backend/internal/tenant/dto"
	"mailpilot-backend/internal/tenant/repository"
	"mailpilot-backend/pkg/config"
	"mailpilot-backend/pkg/gmail"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// ErrTenantNotFound is returned when an operation targets an unknown tenant.
var ErrTenantNotFound = errors.New("tenant not found")

// oauthUsecase implements OAuthUsecase interface
type oauthUsecase struct {
	tenantRepo repository.TenantRepository
	labelRepo  mirrorrepo.LabelRepository
	ruleRepo   mirrorrepo.RuleRepository
	provider   OAuthProvider
	config     *config.Config
}

// NewOAuthUsecase creates a new instance of oauthUsecase
func NewOAuthUsecase(tenantRepo repository.TenantRepository, labelRepo mirrorrepo.LabelRepository, ruleRepo mirrorrepo.RuleRepository, provider OAuthProvider, cfg *config.Config) OAuthUsecase {
	return &oauthUsecase{
		tenantRepo: tenantRepo,
		labelRepo:  labelRepo,
		ruleRepo:   ruleRepo,
		provider:   provider,
		config:     cfg,
	}
}

func (u *oauthUsecase) GetAuthURL() string {
	return u.provider.AuthCodeURL(uuid.New().String())
}

func (u *oauthUsecase) HandleCallback(ctx context.Context, code string) (*tenantdto.TokenResponse, error) {
	token, err := u.provider.Exchange(ctx, code)
	if err != nil {
		return nil, fmt.Errorf("failed to exchange authorization code: %w", err)
	}

	creds := gmail.Credentials{
		AccessToken:  token.AccessToken,
		RefreshToken: token.RefreshToken,
	}
	profile, err := u.provider.GetProfile(ctx, creds)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve account profile: %w", err)
	}

	existing, err := u.tenantRepo.FindByEmail(profile.EmailAddress)
	if err != nil {
		return nil, err
	}

	if existing == nil {
		tenant := &tenantdomain.Tenant{
			Email:        profile.EmailAddress,
			AccessToken:  token.AccessToken,
			RefreshToken: token.RefreshToken,
		}
		if err := u.tenantRepo.Create(tenant); err != nil {
			return nil, err
		}
	} else {
		// Re-authorization: refresh tokens, keep the history cursor
		if err := u.tenantRepo.UpdateTokens(profile.EmailAddress, token.AccessToken, token.RefreshToken); err != nil {
			return nil, err
		}
	}

	appToken, err := u.generateToken(profile.EmailAddress)
	if err != nil {
		return nil, err
	}

	return &tenantdto.TokenResponse{
		AccessToken: appToken,
		Email:       profile.EmailAddress,
	}, nil
}

func (u *oauthUsecase) RemoveAccount(ctx context.Context, email string) error {
	tenant, err := u.tenantRepo.FindByEmail(email)
	if err != nil {
		return err
	}
	if tenant == nil {
		return ErrTenantNotFound
	}

	// Statistic rows are append-only history and survive account removal
	if err := u.labelRepo.DeleteByTenant(email); err != nil {
		return err
	}
	if err := u.ruleRepo.DeleteByTenant(email); err != nil {
		return err
	}
	return u.tenantRepo.Delete(email)
}

func (u *oauthUsecase) ValidateToken(tokenString string) (*tenantdomain.Tenant, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		return []byte(u.config.JWTSecret), nil
	})

	if err != nil || !token.Valid {
		return nil, errors.New("invalid token")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, errors.New("invalid token claims")
	}

	email, ok := claims["email"].(string)
	if !ok {
		return nil, errors.New("invalid token claims")
	}

	tenant, err := u.tenantRepo.FindByEmail(email)
	if err != nil {
		return nil, err
	}
	if tenant == nil {
		return nil, ErrTenantNotFound
	}

	return tenant, nil
}

func (u *oauthUsecase) generateToken(email string) (string, error) {
	claims := jwt.MapClaims{
		"email": email,
		"exp":   time.Now().Add(u.config.JWTExpiry).Unix(),
		"iat":   time.Now().Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(u.config.JWTSecret))
}
