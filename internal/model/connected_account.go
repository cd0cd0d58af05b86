package model

import "time"

// ConnectedAccount 通过 OAuth 授权接入的客户社媒账号，
// AccessToken 由外部授权流程写入，这里只读消费
type ConnectedAccount struct {
	ID                  uint64    `gorm:"primaryKey" json:"id"`
	UserID              uint64    `gorm:"not null;index" json:"userId"`
	Platform            string    `gorm:"type:varchar(20);not null" json:"platform"`
	PlatformAccountID   string    `gorm:"type:varchar(100);not null" json:"platformAccountId"`
	PlatformAccountType string    `gorm:"type:varchar(30);not null" json:"platformAccountType"`
	AccountName         string    `gorm:"type:varchar(100)" json:"accountName"`
	AccessToken         string    `gorm:"type:text;not null" json:"-"`
	IsActive            bool      `gorm:"not null;default:true" json:"isActive"`
	CreatedAt           time.Time `json:"createdAt"`
	UpdatedAt           time.Time `json:"updatedAt"`
}

func (ConnectedAccount) TableName() string {
	return "connected_accounts"
}
