package domain

import "time"

// Label is the local cache of one Gmail label. Gmail owns the
// authoritative copy; SyncLabels keeps this row converged with it.
type Label struct {
	ID              string    `json:"id" gorm:"primaryKey"`
	TenantEmail     string    `json:"tenant_email" gorm:"index:idx_label_tenant;not null"`
	RemoteID        string    `json:"remote_id" gorm:"index:idx_label_tenant;not null"`
	Name            string    `json:"name" gorm:"not null"`
	TextColor       string    `json:"text_color"`
	BackgroundColor string    `json:"background_color"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}
