package service

import (
	"Pulseboard/internal/api/dto"
	"Pulseboard/internal/model"
	"Pulseboard/internal/pkg/consts"
	"Pulseboard/internal/pkg/insights"
	"Pulseboard/internal/pkg/redis"
	"Pulseboard/internal/repository"
	"context"
	"fmt"
	"math"
	"math/rand"
	"time"

	log "log/slog"

	"github.com/goccy/go-json"
)

type WidgetDataService interface {
	ResolveWidgetData(ctx context.Context, widgetID uint64, from, to time.Time) (*dto.WidgetDataDTO, error)
}

type widgetDataServiceImpl struct {
	widgetRepo   repository.WidgetRepo
	accountRepo  repository.AccountRepo
	snapshotRepo repository.SnapshotRepo
	registry     *insights.Registry
	randFloat    func() float64 // [0,1)，可替换以便测试
}

func NewWidgetDataService(
	widgetRepo repository.WidgetRepo,
	accountRepo repository.AccountRepo,
	snapshotRepo repository.SnapshotRepo,
	registry *insights.Registry,
) WidgetDataService {
	return &widgetDataServiceImpl{
		widgetRepo:   widgetRepo,
		accountRepo:  accountRepo,
		snapshotRepo: snapshotRepo,
		registry:     registry,
		randFloat:    rand.Float64,
	}
}

// ResolveWidgetData 把 (组件, 日期区间) 解析为展示数据。
// 只有账号缺失/未激活/无凭证是硬错误；平台抓取和快照查询失败
// 一律降级为默认值或估算序列，保证看板始终可渲染
func (s *widgetDataServiceImpl) ResolveWidgetData(ctx context.Context, widgetID uint64, from, to time.Time) (*dto.WidgetDataDTO, error) {
	widget, err := s.widgetRepo.GetWidgetByID(ctx, widgetID)
	if err != nil {
		return nil, err
	}
	if widget == nil {
		return nil, ErrWidgetNotFound
	}

	if widget.AccountID == nil {
		return nil, ErrAccountNotFound
	}
	account, err := s.accountRepo.GetAccountByID(ctx, *widget.AccountID)
	if err != nil {
		return nil, err
	}
	if account == nil || !account.IsActive {
		return nil, ErrAccountNotFound
	}
	if account.AccessToken == "" {
		return nil, ErrMissingCredential
	}

	cacheKey := fmt.Sprintf("%s%d:%s:%s", consts.WidgetDataKey, widgetID, from.Format(time.DateOnly), to.Format(time.DateOnly))
	if cached := s.getCached(ctx, cacheKey); cached != nil {
		return cached, nil
	}

	current := s.fetchCurrent(ctx, widget, account, from, to)

	series, seriesEstimated := s.buildSeries(ctx, widget, account, current, from, to)

	previous, previousEstimated := s.resolvePrevious(ctx, widget, account, current, from, to)

	change := 0.0
	if previous > 0 {
		change = math.Round((current-previous)/previous*1000) / 10
	}

	source := consts.DataSourceSnapshot
	if seriesEstimated || previousEstimated {
		source = consts.DataSourceEstimated
	}

	result := &dto.WidgetDataDTO{
		WidgetID: widget.ID,
		Metric:   widget.Metric,
		Current:  current,
		Previous: math.Round(previous),
		Change:   change,
		Series:   series,
		Source:   source,
	}

	s.cacheResult(ctx, cacheKey, result)
	return result, nil
}

// fetchCurrent 拉取当期值，任何失败都降级为 0 而不是向上传播
func (s *widgetDataServiceImpl) fetchCurrent(ctx context.Context, widget *model.Widget, account *model.ConnectedAccount, from, to time.Time) float64 {
	data, err := s.registry.Fetch(ctx, account.Platform, account.PlatformAccountID, account.PlatformAccountType, account.AccessToken, from, to)
	if err != nil {
		log.WarnContext(ctx, "platform insights fetch failed, fallback to zero",
			"platform", account.Platform, "account_id", account.ID, "err", err)
		return 0
	}
	if data == nil {
		return 0
	}
	return data[widget.Metric]
}

// buildSeries 优先使用快照数据；没有任何快照时生成估算序列兜底
func (s *widgetDataServiceImpl) buildSeries(ctx context.Context, widget *model.Widget, account *model.ConnectedAccount, current float64, from, to time.Time) ([]*dto.SeriesPointDTO, bool) {
	snapshots, err := s.snapshotRepo.GetSnapshotsByRange(ctx, account.ID, from, to)
	if err != nil {
		// 查询失败视同无数据
		log.WarnContext(ctx, "snapshot query failed, fallback to synthetic series",
			"account_id", account.ID, "err", err)
		snapshots = nil
	}

	if len(snapshots) > 0 {
		if len(snapshots) > consts.MaxSeriesPoints {
			snapshots = snapshots[len(snapshots)-consts.MaxSeriesPoints:]
		}
		series := make([]*dto.SeriesPointDTO, 0, len(snapshots))
		for _, snapshot := range snapshots {
			series = append(series, &dto.SeriesPointDTO{
				Date:  snapshot.MetricDate.Format(time.DateOnly),
				Value: snapshot.Metrics[widget.Metric],
			})
		}
		return series, false
	}

	return s.syntheticSeries(current, from, to), true
}

// syntheticSeries 生成估算序列：每天一个点，在当期值 ±10% 内扰动。
// 这只是展示兜底，不是真实历史数据
func (s *widgetDataServiceImpl) syntheticSeries(current float64, from, to time.Time) []*dto.SeriesPointDTO {
	days := daysBetween(from, to)
	if days > consts.MaxSeriesPoints {
		days = consts.MaxSeriesPoints
	}
	series := make([]*dto.SeriesPointDTO, 0, days)
	for i := 0; i < days; i++ {
		noise := (s.randFloat()*2 - 1) * 0.1 * current
		series = append(series, &dto.SeriesPointDTO{
			Date:  from.AddDate(0, 0, i).Format(time.DateOnly),
			Value: math.Max(0, current+noise),
		})
	}
	return series
}

// resolvePrevious 取紧邻当前窗口之前、等长窗口的均值；
// 无快照时按当期值的 0.9~1.1 倍估算
func (s *widgetDataServiceImpl) resolvePrevious(ctx context.Context, widget *model.Widget, account *model.ConnectedAccount, current float64, from, to time.Time) (float64, bool) {
	days := daysBetween(from, to)
	prevTo := from.AddDate(0, 0, -1)
	prevFrom := prevTo.AddDate(0, 0, -(days - 1))

	snapshots, err := s.snapshotRepo.GetSnapshotsByRange(ctx, account.ID, prevFrom, prevTo)
	if err != nil {
		log.WarnContext(ctx, "previous window snapshot query failed",
			"account_id", account.ID, "err", err)
		snapshots = nil
	}

	if len(snapshots) > 0 {
		sum := 0.0
		for _, snapshot := range snapshots {
			sum += snapshot.Metrics[widget.Metric]
		}
		return sum / float64(len(snapshots)), false
	}

	factor := 0.9 + s.randFloat()*0.2
	return current * factor, true
}

func (s *widgetDataServiceImpl) getCached(ctx context.Context, key string) *dto.WidgetDataDTO {
	if !redis.Available() {
		return nil
	}
	value, err := redis.GetValue(ctx, key)
	if err != nil || value == "" {
		return nil
	}
	var result dto.WidgetDataDTO
	if err = json.Unmarshal([]byte(value), &result); err != nil {
		return nil
	}
	return &result
}

func (s *widgetDataServiceImpl) cacheResult(ctx context.Context, key string, result *dto.WidgetDataDTO) {
	if !redis.Available() {
		return
	}
	data, err := json.Marshal(result)
	if err != nil {
		return
	}

	// 缓存到次日零点前 5 分钟失效
	now := time.Now()
	midnight := time.Date(now.Year(), now.Month(), now.Day()+1, 0, 0, 0, 0, now.Location())
	expiration := time.Until(midnight) - time.Minute*5
	if expiration < 0 {
		return
	}
	_ = redis.SetWithExpiration(ctx, key, string(data), expiration)
}

// daysBetween 返回含两端的天数，最少 1 天
func daysBetween(from, to time.Time) int {
	days := int(to.Sub(from).Hours()/24) + 1
	if days < 1 {
		return 1
	}
	return days
}
