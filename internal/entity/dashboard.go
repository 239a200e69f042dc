package entity

type StatsCard struct {
	Title    string `json:"title"`
	Value    string `json:"value"`
	Subtitle string `json:"subtitle,omitempty"`
	Icon     string `json:"icon,omitempty"`
}

type DashboardSummary struct {
	Role     Role           `json:"role"`
	FullName string         `json:"full_name"`
	Title    string         `json:"title"`
	Cards    []StatsCard    `json:"cards"`
	Trend    []TrendPoint   `json:"trend,omitempty"`
	Pending  []LeaveRequest `json:"pending,omitempty"`
	Unread   int            `json:"unread_notifications"`
}
