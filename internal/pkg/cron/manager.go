package cron

import (
	"Pulseboard/internal/job"
	log "log/slog"

	"github.com/robfig/cron/v3"
)

type Manager struct {
	engine      *cron.Cron
	snapshotJob *job.SnapshotJob
}

func NewCronManager(snapshotJob *job.SnapshotJob) *Manager {
	return &Manager{
		engine:      cron.New(cron.WithSeconds()),
		snapshotJob: snapshotJob,
	}
}

// RegisterJobs 注册定时任务
func (s *Manager) RegisterJobs() error {
	// 每天凌晨拉取前一天的平台快照
	if _, err := s.engine.AddJob("0 30 2 * * *", s.snapshotJob); err != nil {
		return err
	}
	return nil
}

func (s *Manager) Start() {
	log.Info("Cron 定时任务引擎启动")
	s.engine.Start()
}

func (s *Manager) Stop() {
	log.Info("Cron 定时任务引擎停止")
	s.engine.Stop()
}
