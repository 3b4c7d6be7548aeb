package dto

import (
	mirrordomain "mailpilot-backend/internal/mirror/domain"
)

type CreateLabelRequest struct {
	Name            string `json:"name" binding:"required"`
	TextColor       string `json:"text_color"`
	BackgroundColor string `json:"background_color"`
}

type CreateRuleRequest struct {
	Name           string   `json:"name"`
	Criteria       string   `json:"criteria" binding:"required"`
	AddLabelIDs    []string `json:"add_label_ids"`
	RemoveLabelIDs []string `json:"remove_label_ids"`
	Forward        string   `json:"forward"`
}

type LabelsResponse struct {
	Labels []mirrordomain.Label `json:"labels"`
}

type RulesResponse struct {
	Rules []mirrordomain.Rule `json:"rules"`
}
