package model

import "time"

// MetricSnapshot 账号每日指标快照，按 (account_id, metric_date) 唯一
type MetricSnapshot struct {
	ID         uint64             `gorm:"primaryKey" json:"id"`
	AccountID  uint64             `gorm:"not null;index:idx_account_date,unique" json:"accountId"`
	MetricDate time.Time          `gorm:"type:date;not null;index:idx_account_date,unique;column:metric_date" json:"metricDate"`
	Metrics    map[string]float64 `gorm:"serializer:json;not null" json:"metrics"`
	CreatedAt  time.Time          `json:"createdAt"`
}

func (MetricSnapshot) TableName() string {
	return "metric_snapshots"
}
