package job

import (
	"Pulseboard/internal/pkg/consts"
	"Pulseboard/internal/pkg/logger"
	"Pulseboard/internal/pkg/redis"
	"Pulseboard/internal/service"
	"context"
	log "log/slog"
	"time"

	"github.com/google/uuid"
)

// SnapshotJob 每日快照拉取任务，多实例部署时用分布式锁保证只跑一份
type SnapshotJob struct {
	snapshotSvc service.SnapshotService
}

func NewSnapshotJob(snapshotSvc service.SnapshotService) *SnapshotJob {
	return &SnapshotJob{
		snapshotSvc: snapshotSvc,
	}
}

func (s *SnapshotJob) Run() {
	traceID := "job-" + uuid.NewString()
	ctx := context.WithValue(context.Background(), logger.TraceIDKey, traceID)

	lockValue := uuid.NewString()
	lock, err := redis.TryLock(ctx, consts.SnapshotSyncLock, lockValue, time.Minute*30, 1)
	if err != nil {
		log.ErrorContext(ctx, "acquire snapshot sync lock error", "err", err)
		return
	}
	if !lock {
		log.InfoContext(ctx, "snapshot sync already running on another instance, skip")
		return
	}
	defer redis.UnLock(ctx, consts.SnapshotSyncLock, lockValue)

	if err = s.snapshotSvc.SyncDailySnapshots(ctx); err != nil {
		log.ErrorContext(ctx, "sync daily snapshots error", "err", err)
		return
	}

	log.InfoContext(ctx, "sync daily snapshots success", "date", time.Now().Format(time.DateOnly))
}
