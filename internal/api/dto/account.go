package dto

// AccountDTO 连接账号的对外视图，不含访问凭证
type AccountDTO struct {
	ID                  uint64 `json:"id"`
	Platform            string `json:"platform"`
	PlatformAccountID   string `json:"platformAccountId"`
	PlatformAccountType string `json:"platformAccountType"`
	AccountName         string `json:"accountName"`
	IsActive            bool   `json:"isActive"`
}
