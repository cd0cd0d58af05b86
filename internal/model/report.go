package model

import "time"

type Report struct {
	ID          uint64    `gorm:"primaryKey" json:"id"`
	DashboardID uint64    `gorm:"not null;index" json:"dashboardId"`
	PeriodFrom  time.Time `gorm:"type:date;not null" json:"periodFrom"`
	PeriodTo    time.Time `gorm:"type:date;not null" json:"periodTo"`
	ObjectName  string    `gorm:"type:varchar(200)" json:"objectName"`
	Status      string    `gorm:"type:varchar(20);not null;default:pending" json:"status"`
	CreatedAt   time.Time `json:"createdAt"`
}

func (Report) TableName() string {
	return "reports"
}
