package model

import "time"

type Dashboard struct {
	ID         uint64    `gorm:"primaryKey" json:"id"`
	UserID     uint64    `gorm:"not null;index" json:"userId"`
	Name       string    `gorm:"type:varchar(100);not null" json:"name"`
	ClientName string    `gorm:"type:varchar(100)" json:"clientName"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

func (Dashboard) TableName() string {
	return "dashboards"
}
