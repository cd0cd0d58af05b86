package service

import (
	"Pulseboard/internal/model"
	"Pulseboard/internal/pkg/insights"
	"Pulseboard/internal/repository"
	"context"
	"time"

	log "log/slog"
)

type SnapshotService interface {
	SyncDailySnapshots(ctx context.Context) error
	SyncAccountSnapshot(ctx context.Context, account *model.ConnectedAccount, date time.Time) error
}

type snapshotServiceImpl struct {
	accountRepo  repository.AccountRepo
	snapshotRepo repository.SnapshotRepo
	registry     *insights.Registry
}

func NewSnapshotService(
	accountRepo repository.AccountRepo,
	snapshotRepo repository.SnapshotRepo,
	registry *insights.Registry,
) SnapshotService {
	return &snapshotServiceImpl{
		accountRepo:  accountRepo,
		snapshotRepo: snapshotRepo,
		registry:     registry,
	}
}

// SyncDailySnapshots 为所有激活账号落昨日指标快照。
// 单账号失败只记日志不中断整轮
func (s *snapshotServiceImpl) SyncDailySnapshots(ctx context.Context) error {
	accounts, err := s.accountRepo.GetActiveAccounts(ctx)
	if err != nil {
		return err
	}

	yesterday := getMidnight(time.Now()).AddDate(0, 0, -1)
	for _, account := range accounts {
		if err = s.SyncAccountSnapshot(ctx, account, yesterday); err != nil {
			log.ErrorContext(ctx, "sync account snapshot failed",
				"account_id", account.ID, "platform", account.Platform, "err", err)
		}
	}
	return nil
}

func (s *snapshotServiceImpl) SyncAccountSnapshot(ctx context.Context, account *model.ConnectedAccount, date time.Time) error {
	if account.AccessToken == "" {
		return ErrMissingCredential
	}

	data, err := s.registry.Fetch(ctx, account.Platform, account.PlatformAccountID, account.PlatformAccountType, account.AccessToken, date, date)
	if err != nil {
		return err
	}
	if len(data) == 0 {
		// 平台无数据不算失败，留给解析层按无快照处理
		return nil
	}

	snapshot := &model.MetricSnapshot{
		AccountID:  account.ID,
		MetricDate: date,
		Metrics:    data,
	}
	return s.snapshotRepo.SaveOrUpdateSnapshot(ctx, snapshot)
}

func getMidnight(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
