package service

import (
	"Pulseboard/internal/pkg/consts"
	"Pulseboard/internal/pkg/insights"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSyncAccountSnapshot(t *testing.T) {
	ctx := context.Background()
	date := day(2026, 8, 30)

	t.Run("正常落快照", func(t *testing.T) {
		snapshotRepo := &fakeSnapshotRepo{}
		fetcher := &fakeFetcher{insights: insights.Insights{"follower_count": 1234, "likes": 56}}
		svc := NewSnapshotService(newFakeAccountRepo(), snapshotRepo, registryWith(consts.PlatformTikTok, fetcher))

		err := svc.SyncAccountSnapshot(ctx, testAccount(), date)
		require.NoError(t, err)
		require.Len(t, snapshotRepo.saved, 1)
		assert.Equal(t, uint64(1), snapshotRepo.saved[0].AccountID)
		assert.Equal(t, date, snapshotRepo.saved[0].MetricDate)
		assert.Equal(t, 1234.0, snapshotRepo.saved[0].Metrics["follower_count"])
	})

	t.Run("平台返回空数据不算失败也不落库", func(t *testing.T) {
		snapshotRepo := &fakeSnapshotRepo{}
		fetcher := &fakeFetcher{insights: insights.Insights{}}
		svc := NewSnapshotService(newFakeAccountRepo(), snapshotRepo, registryWith(consts.PlatformTikTok, fetcher))

		err := svc.SyncAccountSnapshot(ctx, testAccount(), date)
		require.NoError(t, err)
		assert.Empty(t, snapshotRepo.saved)
	})

	t.Run("缺少凭证", func(t *testing.T) {
		account := testAccount()
		account.AccessToken = ""
		svc := NewSnapshotService(newFakeAccountRepo(), &fakeSnapshotRepo{}, registryWith(consts.PlatformTikTok, &fakeFetcher{}))

		err := svc.SyncAccountSnapshot(ctx, account, date)
		assert.ErrorIs(t, err, ErrMissingCredential)
	})

	t.Run("平台抓取失败向上返回", func(t *testing.T) {
		wantErr := errors.New("rate limited")
		svc := NewSnapshotService(newFakeAccountRepo(), &fakeSnapshotRepo{}, registryWith(consts.PlatformTikTok, &fakeFetcher{err: wantErr}))

		err := svc.SyncAccountSnapshot(ctx, testAccount(), date)
		assert.ErrorIs(t, err, wantErr)
	})
}

func TestSyncDailySnapshots(t *testing.T) {
	ctx := context.Background()

	// 第二个账号没有凭证，同步应跳过它继续跑完
	broken := testAccount()
	broken.ID = 2
	broken.AccessToken = ""
	inactive := testAccount()
	inactive.ID = 3
	inactive.IsActive = false

	accountRepo := newFakeAccountRepo(testAccount(), broken, inactive)
	snapshotRepo := &fakeSnapshotRepo{}
	fetcher := &fakeFetcher{insights: insights.Insights{"follower_count": 100}}
	svc := NewSnapshotService(accountRepo, snapshotRepo, registryWith(consts.PlatformTikTok, fetcher))

	err := svc.SyncDailySnapshots(ctx)
	require.NoError(t, err)

	// 只有激活且有凭证的账号落了快照
	require.Len(t, snapshotRepo.saved, 1)
	assert.Equal(t, uint64(1), snapshotRepo.saved[0].AccountID)
	assert.Equal(t, 1, fetcher.calls)
}

func TestGetMidnight(t *testing.T) {
	got := getMidnight(time.Date(2026, 8, 31, 15, 4, 5, 99, time.UTC))
	assert.Equal(t, day(2026, 8, 31), got)
}
