package api

import (
	"Pulseboard/internal/api/middleware"
	"Pulseboard/internal/pkg/logger"
	"net/http"

	"github.com/gin-gonic/gin"
)

func SetupRouter(group *HandlersGroup) *gin.Engine {
	r := gin.New()
	_ = r.SetTrustedProxies([]string{"localhost"})

	// TraceId & Logger & CORS
	r.Use(middleware.TraceMiddleware())
	r.Use(middleware.CORSMiddleware())
	logger.SetupGin(r)

	apiGroup := r.Group("/api")
	{
		apiGroup.GET("/ping", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{
				"Code":    200,
				"Message": "pong",
				"Data":    nil,
			})
		})

		// 指标目录无需登录，供前端选择器使用
		apiGroup.GET("/catalog/metrics", group.CatalogHandler.GetMetrics)

		accountGroup := apiGroup.Group("/accounts")
		accountGroup.Use(middleware.AuthMiddleware())
		{
			accountGroup.GET("", group.AccountHandler.GetAccounts)
			accountGroup.GET("/:account_id", group.AccountHandler.GetAccount)
			accountGroup.DELETE("/:account_id", group.AccountHandler.DeactivateAccount)
		}

		dashboardGroup := apiGroup.Group("/dashboards")
		dashboardGroup.Use(middleware.AuthMiddleware())
		{
			dashboardGroup.POST("", group.DashboardHandler.CreateDashboard)
			dashboardGroup.GET("", group.DashboardHandler.GetDashboards)
			dashboardGroup.GET("/:dashboard_id", group.DashboardHandler.GetDashboard)
			dashboardGroup.DELETE("/:dashboard_id", group.DashboardHandler.DeleteDashboard)
		}

		widgetGroup := apiGroup.Group("/widgets")
		widgetGroup.Use(middleware.AuthMiddleware())
		{
			widgetGroup.POST("", group.WidgetHandler.CreateWidget)
			widgetGroup.GET("", group.WidgetHandler.GetWidgets)
			widgetGroup.PUT("/:widget_id", group.WidgetHandler.UpdateWidget)
			widgetGroup.DELETE("/:widget_id", group.WidgetHandler.DeleteWidget)
			widgetGroup.GET("/:widget_id/data", group.WidgetDataHandler.GetWidgetData)
		}

		reportGroup := apiGroup.Group("/reports")
		reportGroup.Use(middleware.AuthMiddleware())
		{
			reportGroup.POST("", group.ReportHandler.CompileReport)
			reportGroup.GET("/:report_id", group.ReportHandler.GetReport)
			reportGroup.DELETE("/:report_id", group.ReportHandler.DeleteReport)
		}
	}

	return r
}
