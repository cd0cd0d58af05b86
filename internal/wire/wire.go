package wire

import (
	"Pulseboard/internal/api"
	"Pulseboard/internal/api/config"
	"Pulseboard/internal/api/handler"
	"Pulseboard/internal/job"
	"Pulseboard/internal/pkg/consts"
	"Pulseboard/internal/pkg/cron"
	"Pulseboard/internal/pkg/insights"
	"Pulseboard/internal/repository"
	"Pulseboard/internal/service"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// ApplicationContainer 封装了应用运行所需的所有顶级组件
type ApplicationContainer struct {
	Router  *gin.Engine
	DB      *gorm.DB
	CronMgr *cron.Manager
}

func BuildApplication(db *gorm.DB, cfg *config.Config) (*ApplicationContainer, error) {
	dashboardRepo := repository.NewDashboardRepo(db)
	widgetRepo := repository.NewWidgetRepo(db)
	accountRepo := repository.NewAccountRepo(db)
	snapshotRepo := repository.NewSnapshotRepo(db)
	reportRepo := repository.NewReportRepo(db)

	registry := buildInsightRegistry(cfg)

	dashboardService := service.NewDashboardService(dashboardRepo, widgetRepo)
	widgetService := service.NewWidgetService(widgetRepo, dashboardRepo, accountRepo)
	widgetDataService := service.NewWidgetDataService(widgetRepo, accountRepo, snapshotRepo, registry)
	accountService := service.NewAccountService(accountRepo)
	snapshotService := service.NewSnapshotService(accountRepo, snapshotRepo, registry)
	reportService := service.NewReportService(dashboardRepo, widgetRepo, reportRepo, accountRepo, widgetDataService)

	handlers := &api.HandlersGroup{
		CatalogHandler:    handler.NewCatalogHandler(),
		AccountHandler:    handler.NewAccountHandler(accountService),
		DashboardHandler:  handler.NewDashboardHandler(dashboardService),
		WidgetHandler:     handler.NewWidgetHandler(widgetService),
		WidgetDataHandler: handler.NewWidgetDataHandler(widgetDataService),
		ReportHandler:     handler.NewReportHandler(reportService),
	}

	router := api.SetupRouter(handlers)

	snapshotJob := job.NewSnapshotJob(snapshotService)
	cronMgr := cron.NewCronManager(snapshotJob)

	return &ApplicationContainer{
		Router:  router,
		DB:      db,
		CronMgr: cronMgr,
	}, nil
}

func buildInsightRegistry(cfg *config.Config) *insights.Registry {
	registry := insights.NewRegistry()
	registry.Register(consts.PlatformMeta, insights.NewMetaFetcher(cfg.Platforms.Meta.BaseURL, timeoutOf(cfg.Platforms.Meta)))
	registry.Register(consts.PlatformLinkedIn, insights.NewLinkedInFetcher(cfg.Platforms.LinkedIn.BaseURL, timeoutOf(cfg.Platforms.LinkedIn)))
	registry.Register(consts.PlatformYouTube, insights.NewYouTubeFetcher(cfg.Platforms.YouTube.BaseURL, timeoutOf(cfg.Platforms.YouTube)))
	registry.Register(consts.PlatformTikTok, insights.NewTikTokFetcher(cfg.Platforms.TikTok.BaseURL, timeoutOf(cfg.Platforms.TikTok)))
	return registry
}

func timeoutOf(cfg config.PlatformAPIConfig) time.Duration {
	if cfg.Timeout <= 0 {
		return 10 * time.Second
	}
	return time.Duration(cfg.Timeout) * time.Second
}
