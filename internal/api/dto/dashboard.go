package dto

type CreateDashboardDTO struct {
	Name       string `json:"name" binding:"required" validate:"min=1,max=100"`
	ClientName string `json:"clientName" validate:"max=100"`
}

type DashboardDTO struct {
	ID         uint64 `json:"id"`
	Name       string `json:"name"`
	ClientName string `json:"clientName"`
}
