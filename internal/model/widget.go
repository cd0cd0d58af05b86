package model

import "time"

type Widget struct {
	ID          uint64            `gorm:"primaryKey" json:"id"`
	DashboardID uint64            `gorm:"not null;index" json:"dashboardId"`
	WidgetType  string            `gorm:"type:varchar(20);not null" json:"widgetType"`
	Platform    string            `gorm:"type:varchar(20);not null" json:"platform"`
	AccountID   *uint64           `json:"accountId"`
	Metric      string            `gorm:"type:varchar(50);not null" json:"metric"`
	Size        string            `gorm:"type:varchar(10);not null;default:medium" json:"size"`
	Position    int               `gorm:"not null;default:0" json:"position"`
	Title       string            `gorm:"type:varchar(100)" json:"title"`
	Config      map[string]string `gorm:"serializer:json" json:"config"`
	CreatedAt   time.Time         `json:"createdAt"`
	UpdatedAt   time.Time         `json:"updatedAt"`
}

func (Widget) TableName() string {
	return "widgets"
}
