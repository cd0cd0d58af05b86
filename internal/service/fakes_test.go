package service

import (
	"Pulseboard/internal/api/dto"
	"Pulseboard/internal/model"
	"Pulseboard/internal/pkg/insights"
	"context"
	"sort"
	"time"
)

// 服务层测试用的内存假实现，只覆盖被测路径需要的行为

type fakeWidgetRepo struct {
	widgets     map[uint64]*model.Widget
	maxPosition int
	nextID      uint64
	saved       *model.Widget
}

func newFakeWidgetRepo() *fakeWidgetRepo {
	return &fakeWidgetRepo{widgets: make(map[uint64]*model.Widget), nextID: 1}
}

func (f *fakeWidgetRepo) CreateWidget(_ context.Context, widget *model.Widget) error {
	widget.ID = f.nextID
	f.nextID++
	f.widgets[widget.ID] = widget
	f.saved = widget
	return nil
}

func (f *fakeWidgetRepo) UpdateWidget(_ context.Context, widget *model.Widget) error {
	f.widgets[widget.ID] = widget
	f.saved = widget
	return nil
}

func (f *fakeWidgetRepo) DeleteWidget(_ context.Context, widgetID uint64) error {
	delete(f.widgets, widgetID)
	return nil
}

func (f *fakeWidgetRepo) DeleteByDashboardID(_ context.Context, dashboardID uint64) error {
	for id, w := range f.widgets {
		if w.DashboardID == dashboardID {
			delete(f.widgets, id)
		}
	}
	return nil
}

func (f *fakeWidgetRepo) GetWidgetByID(_ context.Context, widgetID uint64) (*model.Widget, error) {
	return f.widgets[widgetID], nil
}

func (f *fakeWidgetRepo) GetWidgetsByDashboardID(_ context.Context, dashboardID uint64) ([]*model.Widget, error) {
	result := make([]*model.Widget, 0)
	for _, w := range f.widgets {
		if w.DashboardID == dashboardID {
			result = append(result, w)
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].Position < result[j].Position })
	return result, nil
}

func (f *fakeWidgetRepo) GetMaxPosition(_ context.Context, _ uint64) (int, error) {
	return f.maxPosition, nil
}

type fakeDashboardRepo struct {
	dashboards map[uint64]*model.Dashboard
}

func newFakeDashboardRepo(dashboards ...*model.Dashboard) *fakeDashboardRepo {
	repo := &fakeDashboardRepo{dashboards: make(map[uint64]*model.Dashboard)}
	for _, d := range dashboards {
		repo.dashboards[d.ID] = d
	}
	return repo
}

func (f *fakeDashboardRepo) CreateDashboard(_ context.Context, dashboard *model.Dashboard) error {
	f.dashboards[dashboard.ID] = dashboard
	return nil
}

func (f *fakeDashboardRepo) DeleteDashboard(_ context.Context, dashboardID uint64) error {
	delete(f.dashboards, dashboardID)
	return nil
}

func (f *fakeDashboardRepo) GetDashboardByID(_ context.Context, dashboardID uint64) (*model.Dashboard, error) {
	return f.dashboards[dashboardID], nil
}

func (f *fakeDashboardRepo) GetDashboardsByUserID(_ context.Context, userID uint64) ([]*model.Dashboard, error) {
	result := make([]*model.Dashboard, 0)
	for _, d := range f.dashboards {
		if d.UserID == userID {
			result = append(result, d)
		}
	}
	return result, nil
}

type fakeAccountRepo struct {
	accounts map[uint64]*model.ConnectedAccount
	updated  *model.ConnectedAccount
}

func newFakeAccountRepo(accounts ...*model.ConnectedAccount) *fakeAccountRepo {
	repo := &fakeAccountRepo{accounts: make(map[uint64]*model.ConnectedAccount)}
	for _, a := range accounts {
		repo.accounts[a.ID] = a
	}
	return repo
}

func (f *fakeAccountRepo) GetAccountByID(_ context.Context, accountID uint64) (*model.ConnectedAccount, error) {
	return f.accounts[accountID], nil
}

func (f *fakeAccountRepo) GetAccountsByUserID(_ context.Context, userID uint64) ([]*model.ConnectedAccount, error) {
	result := make([]*model.ConnectedAccount, 0)
	for _, a := range f.accounts {
		if a.UserID == userID {
			result = append(result, a)
		}
	}
	return result, nil
}

func (f *fakeAccountRepo) GetActiveAccounts(_ context.Context) ([]*model.ConnectedAccount, error) {
	result := make([]*model.ConnectedAccount, 0)
	for _, a := range f.accounts {
		if a.IsActive {
			result = append(result, a)
		}
	}
	return result, nil
}

func (f *fakeAccountRepo) UpdateAccount(_ context.Context, account *model.ConnectedAccount) error {
	f.accounts[account.ID] = account
	f.updated = account
	return nil
}

type fakeSnapshotRepo struct {
	snapshots []*model.MetricSnapshot
	queryErr  error
	saved     []*model.MetricSnapshot
}

func (f *fakeSnapshotRepo) SaveOrUpdateSnapshot(_ context.Context, snapshot *model.MetricSnapshot) error {
	f.saved = append(f.saved, snapshot)
	return nil
}

func (f *fakeSnapshotRepo) GetSnapshotsByRange(_ context.Context, accountID uint64, from, to time.Time) ([]*model.MetricSnapshot, error) {
	if f.queryErr != nil {
		return nil, f.queryErr
	}
	result := make([]*model.MetricSnapshot, 0)
	for _, s := range f.snapshots {
		if s.AccountID == accountID && !s.MetricDate.Before(from) && !s.MetricDate.After(to) {
			result = append(result, s)
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].MetricDate.Before(result[j].MetricDate) })
	return result, nil
}

type fakeReportRepo struct {
	reports map[uint64]*model.Report
	nextID  uint64
}

func newFakeReportRepo(reports ...*model.Report) *fakeReportRepo {
	repo := &fakeReportRepo{reports: make(map[uint64]*model.Report), nextID: 1}
	for _, r := range reports {
		repo.reports[r.ID] = r
	}
	return repo
}

func (f *fakeReportRepo) CreateReport(_ context.Context, report *model.Report) error {
	report.ID = f.nextID
	f.nextID++
	f.reports[report.ID] = report
	return nil
}

func (f *fakeReportRepo) UpdateReport(_ context.Context, report *model.Report) error {
	f.reports[report.ID] = report
	return nil
}

func (f *fakeReportRepo) DeleteReport(_ context.Context, reportID uint64) error {
	delete(f.reports, reportID)
	return nil
}

func (f *fakeReportRepo) GetReportByID(_ context.Context, reportID uint64) (*model.Report, error) {
	return f.reports[reportID], nil
}

type fakeWidgetDataService struct {
	results map[uint64]*dto.WidgetDataDTO
	errs    map[uint64]error
}

func (f *fakeWidgetDataService) ResolveWidgetData(_ context.Context, widgetID uint64, _, _ time.Time) (*dto.WidgetDataDTO, error) {
	if err := f.errs[widgetID]; err != nil {
		return nil, err
	}
	return f.results[widgetID], nil
}

type fakeFetcher struct {
	insights insights.Insights
	err      error
	calls    int
}

func (f *fakeFetcher) FetchInsights(_ context.Context, _, _, _ string, _, _ time.Time) (insights.Insights, error) {
	f.calls++
	return f.insights, f.err
}

func registryWith(platform string, fetcher insights.Fetcher) *insights.Registry {
	registry := insights.NewRegistry()
	registry.Register(platform, fetcher)
	return registry
}
