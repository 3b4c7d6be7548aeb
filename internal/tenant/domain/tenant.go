package domain

import (
	"time"

	"mailpilot-backend/pkg/gmail"
)

// Tenant is one authorized Gmail account the engine manages.
// HistoryCursor is empty until the first reconciliation run establishes
// a baseline; only the reconciliation engine advances it afterwards.
type Tenant struct {
	ID            string    `json:"id" gorm:"primaryKey"`
	Email         string    `json:"email" gorm:"uniqueIndex;not null"`
	AccessToken   string    `json:"-"`
	RefreshToken  string    `json:"-"`
	HistoryCursor string    `json:"history_cursor"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// Credentials returns the tenant's tokens in the shape the Gmail client takes.
func (t *Tenant) Credentials() gmail.Credentials {
	return gmail.Credentials{
		AccessToken:  t.AccessToken,
		RefreshToken: t.RefreshToken,
	}
}
