package domain

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"
)

// StringList stores a []string as a JSON column.
type StringList []string

func (l StringList) Value() (driver.Value, error) {
	if l == nil {
		return "[]", nil
	}
	b, err := json.Marshal(l)
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

func (l *StringList) Scan(value interface{}) error {
	if value == nil {
		*l = nil
		return nil
	}
	switch v := value.(type) {
	case []byte:
		return json.Unmarshal(v, l)
	case string:
		return json.Unmarshal([]byte(v), l)
	default:
		return fmt.Errorf("unsupported type %T for StringList", value)
	}
}

// Rule is the local cache of one Gmail filter. RemoteID is the Gmail
// filter id; statistics reference rules by RemoteID so they survive
// rule deletion.
type Rule struct {
	ID             string     `json:"id" gorm:"primaryKey"`
	TenantEmail    string     `json:"tenant_email" gorm:"index:idx_rule_tenant;not null"`
	RemoteID       string     `json:"remote_id" gorm:"index:idx_rule_tenant;not null"`
	Name           string     `json:"name"`
	Criteria       string     `json:"criteria"`
	AddLabelIDs    StringList `json:"add_label_ids" gorm:"type:text"`
	RemoveLabelIDs StringList `json:"remove_label_ids" gorm:"type:text"`
	Forward        string     `json:"forward"`
	CreatedAt      time.Time  `json:"created_at"`
	UpdatedAt      time.Time  `json:"updated_at"`
}
