package dto

type CompileReportDTO struct {
	DashboardID uint64 `json:"dashboardId" binding:"required"`
	From        string `json:"from" binding:"required"` // 2026-01-01
	To          string `json:"to" binding:"required"`
}

type ReportDTO struct {
	ID          uint64 `json:"id"`
	DashboardID uint64 `json:"dashboardId"`
	PeriodFrom  string `json:"periodFrom"`
	PeriodTo    string `json:"periodTo"`
	Status      string `json:"status"`
	DownloadURL string `json:"downloadUrl,omitempty"`
}
