package api

import "Pulseboard/internal/api/handler"

// HandlersGroup 封装了所有已初始化的 Handler 实例
type HandlersGroup struct {
	CatalogHandler    *handler.CatalogHandler
	AccountHandler    *handler.AccountHandler
	DashboardHandler  *handler.DashboardHandler
	WidgetHandler     *handler.WidgetHandler
	WidgetDataHandler *handler.WidgetDataHandler
	ReportHandler     *handler.ReportHandler
}
