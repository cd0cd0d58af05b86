package service

import (
	"Pulseboard/internal/api/dto"
	"Pulseboard/internal/model"
	"Pulseboard/internal/pkg/consts"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestReportService(
	dashboardRepo *fakeDashboardRepo,
	reportRepo *fakeReportRepo,
	accountRepo *fakeAccountRepo,
	widgetDataSvc WidgetDataService,
) *reportServiceImpl {
	return &reportServiceImpl{
		dashboardRepo: dashboardRepo,
		widgetRepo:    newFakeWidgetRepo(),
		reportRepo:    reportRepo,
		accountRepo:   accountRepo,
		widgetDataSvc: widgetDataSvc,
	}
}

func TestResolveEntries(t *testing.T) {
	accountID := uint64(1)
	widgets := []*model.Widget{
		{ID: 1, Metric: "follower_count", AccountID: &accountID},
		{ID: 2, Metric: "likes", Title: "客户指定标题"},
		{ID: 3, Metric: "video_views"},
	}
	dataSvc := &fakeWidgetDataService{
		results: map[uint64]*dto.WidgetDataDTO{
			1: {WidgetID: 1, Current: 1200, Previous: 1000, Change: 20, Source: consts.DataSourceSnapshot},
			2: {WidgetID: 2, Current: 300, Previous: 280, Change: 7.1, Source: consts.DataSourceEstimated},
		},
		errs: map[uint64]error{
			3: ErrMissingCredential,
		},
	}
	svc := newTestReportService(newFakeDashboardRepo(ownedDashboard()), newFakeReportRepo(), newFakeAccountRepo(testAccount()), dataSvc)

	entries := svc.resolveEntries(context.Background(), widgets, day(2026, 8, 1), day(2026, 8, 14))
	require.Len(t, entries, 3)

	// 快照来源的行不带估算标记，标题回退到目录展示名
	assert.Equal(t, "粉丝数", entries[0].Title)
	assert.Equal(t, 1200.0, entries[0].Current)
	assert.False(t, entries[0].Estimated)
	assert.False(t, entries[0].NoData)

	// 估算来源的行带标记，客户标题优先于目录
	assert.Equal(t, "客户指定标题", entries[1].Title)
	assert.True(t, entries[1].Estimated)
	assert.False(t, entries[1].NoData)

	// 单个组件解析失败只记为无数据，不影响其它行
	assert.Equal(t, "video_views", entries[2].Title)
	assert.True(t, entries[2].NoData)
	assert.False(t, entries[2].Estimated)
}

func TestRenderHTMLMarksEstimatedEntries(t *testing.T) {
	svc := newTestReportService(newFakeDashboardRepo(), newFakeReportRepo(), newFakeAccountRepo(), &fakeWidgetDataService{})
	dashboard := &model.Dashboard{ID: 1, Name: "月报看板", ClientName: "客户A"}

	t.Run("含估算行时带星号和脚注", func(t *testing.T) {
		entries := []*reportEntry{
			{Title: "粉丝数", Current: 1200, Previous: 1000, Change: 20},
			{Title: "点赞量", Current: 300, Previous: 280, Change: 7.1, Estimated: true},
		}
		html, err := svc.renderHTML(dashboard, day(2026, 8, 1), day(2026, 8, 14), entries)
		require.NoError(t, err)

		assert.Contains(t, html, "点赞量 *")
		assert.NotContains(t, html, "粉丝数 *")
		assert.Contains(t, html, "标记的指标包含估算值")
	})

	t.Run("全部真实数据时无脚注", func(t *testing.T) {
		entries := []*reportEntry{
			{Title: "粉丝数", Current: 1200, Previous: 1000, Change: 20},
		}
		html, err := svc.renderHTML(dashboard, day(2026, 8, 1), day(2026, 8, 14), entries)
		require.NoError(t, err)

		assert.NotContains(t, html, "标记的指标包含估算值")
	})

	t.Run("无数据行渲染占位", func(t *testing.T) {
		entries := []*reportEntry{
			{Title: "视频播放量", NoData: true},
		}
		html, err := svc.renderHTML(dashboard, day(2026, 8, 1), day(2026, 8, 14), entries)
		require.NoError(t, err)

		assert.Contains(t, html, "暂无数据")
		assert.False(t, strings.Contains(html, "视频播放量 *"))
	})
}

func TestDeleteReport(t *testing.T) {
	ctx := context.Background()

	t.Run("报告不存在", func(t *testing.T) {
		svc := newTestReportService(newFakeDashboardRepo(ownedDashboard()), newFakeReportRepo(), newFakeAccountRepo(), &fakeWidgetDataService{})
		assert.ErrorIs(t, svc.DeleteReport(ctx, 10, 99), ErrReportNotFound)
	})

	t.Run("越权删除", func(t *testing.T) {
		reportRepo := newFakeReportRepo(&model.Report{ID: 1, DashboardID: 1, Status: consts.ReportStatusReady})
		svc := newTestReportService(newFakeDashboardRepo(ownedDashboard()), reportRepo, newFakeAccountRepo(), &fakeWidgetDataService{})
		assert.ErrorIs(t, svc.DeleteReport(ctx, 20, 1), UnauthorizedError)
		_, ok := reportRepo.reports[1]
		assert.True(t, ok)
	})

	t.Run("正常删除", func(t *testing.T) {
		reportRepo := newFakeReportRepo(&model.Report{ID: 1, DashboardID: 1, Status: consts.ReportStatusPending})
		svc := newTestReportService(newFakeDashboardRepo(ownedDashboard()), reportRepo, newFakeAccountRepo(), &fakeWidgetDataService{})
		require.NoError(t, svc.DeleteReport(ctx, 10, 1))
		_, ok := reportRepo.reports[1]
		assert.False(t, ok)
	})
}

func TestCompileReportRejectsBadPeriod(t *testing.T) {
	ctx := context.Background()
	svc := newTestReportService(newFakeDashboardRepo(ownedDashboard()), newFakeReportRepo(), newFakeAccountRepo(), &fakeWidgetDataService{})

	cases := []struct {
		name string
		from string
		to   string
	}{
		{"起始日期格式错误", "2026/08/01", "2026-08-14"},
		{"结束日期格式错误", "2026-08-01", "14-08-2026"},
		{"区间倒置", "2026-08-14", "2026-08-01"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			_, err := svc.CompileReport(ctx, 10, &dto.CompileReportDTO{DashboardID: 1, From: c.from, To: c.to})
			assert.ErrorIs(t, err, ErrParamInvalid)
		})
	}
}
