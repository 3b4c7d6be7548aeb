package dto

// AuthURLResponse carries the Google consent page URL.
type AuthURLResponse struct {
	URL string `json:"url"`
}

// TokenResponse is returned after a successful OAuth callback.
type TokenResponse struct {
	AccessToken string `json:"access_token"`
	Email       string `json:"email"`
}
