package dto

type CreateWidgetDTO struct {
	DashboardID uint64            `json:"dashboardId" binding:"required"`
	WidgetType  string            `json:"widgetType" binding:"required"`
	Platform    string            `json:"platform" binding:"required"`
	AccountID   *uint64           `json:"accountId"`
	Metric      string            `json:"metric" binding:"required"`
	Size        string            `json:"size"`
	Title       string            `json:"title" validate:"max=100"`
	Config      map[string]string `json:"config"`
}

// UpdateWidgetDTO 部分更新，nil 字段不改动
type UpdateWidgetDTO struct {
	Position *int              `json:"position"`
	Size     *string           `json:"size"`
	Title    *string           `json:"title" validate:"omitempty,max=100"`
	Config   map[string]string `json:"config"`
}

type WidgetDTO struct {
	ID          uint64            `json:"id"`
	DashboardID uint64            `json:"dashboardId"`
	WidgetType  string            `json:"widgetType"`
	Platform    string            `json:"platform"`
	AccountID   *uint64           `json:"accountId"`
	Metric      string            `json:"metric"`
	Size        string            `json:"size"`
	Position    int               `json:"position"`
	Title       string            `json:"title"`
	Config      map[string]string `json:"config"`
}
