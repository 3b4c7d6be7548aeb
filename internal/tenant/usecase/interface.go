package usecase

import (
	"context"

	tenantdomain "mailpilot-backend/internal/tenant/domain"
	tenantdto "mailpilot-backend/internal/tenant/dto"
	"mailpilot-backend/pkg/gmail"

	"golang.org/x/oauth2"
)

// OAuthProvider is the slice of the Gmail service the onboarding flow needs.
type OAuthProvider interface {
	AuthCodeURL(state string) string
	Exchange(ctx context.Context, code string) (*oauth2.Token, error)
	GetProfile(ctx context.Context, creds gmail.Credentials) (*gmail.Profile, error)
}

// OAuthUsecase handles tenant onboarding and request authentication
type OAuthUsecase interface {
	// GetAuthURL returns the Google consent page URL
	GetAuthURL() string
	// HandleCallback exchanges the authorization code, upserts the tenant
	// and returns an app token identifying it
	HandleCallback(ctx context.Context, code string) (*tenantdto.TokenResponse, error)
	// RemoveAccount deletes the tenant and its label/rule mirror
	RemoveAccount(ctx context.Context, email string) error
	// ValidateToken resolves an app token to the tenant it was issued for
	ValidateToken(tokenString string) (*tenantdomain.Tenant, error)
}
