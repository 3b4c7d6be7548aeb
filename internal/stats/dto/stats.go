package dto

type RuleStatsResponse struct {
	RuleRemoteID string `json:"rule_remote_id"`
	Window       string `json:"window"`
	Processed    int64  `json:"processed"`
}

type MessageCountsResponse struct {
	Total  int64 `json:"total"`
	Read   int64 `json:"read"`
	Unread int64 `json:"unread"`
}
