package service

import (
	"Pulseboard/internal/api/dto"
	"Pulseboard/internal/model"
	"Pulseboard/internal/pkg/catalog"
	"Pulseboard/internal/pkg/consts"
	"Pulseboard/internal/pkg/redis"
	"Pulseboard/internal/repository"
	"context"
	"strconv"

	"github.com/jinzhu/copier"
)

type WidgetService interface {
	CreateWidget(ctx context.Context, userID uint64, createDTO *dto.CreateWidgetDTO) (*dto.WidgetDTO, error)
	UpdateWidget(ctx context.Context, userID uint64, widgetID uint64, updateDTO *dto.UpdateWidgetDTO) (*dto.WidgetDTO, error)
	DeleteWidget(ctx context.Context, userID uint64, widgetID uint64) error
	GetWidgetsByDashboard(ctx context.Context, userID uint64, dashboardID uint64) ([]*dto.WidgetDTO, error)
}

type widgetServiceImpl struct {
	widgetRepo    repository.WidgetRepo
	dashboardRepo repository.DashboardRepo
	accountRepo   repository.AccountRepo
}

func NewWidgetService(
	widgetRepo repository.WidgetRepo,
	dashboardRepo repository.DashboardRepo,
	accountRepo repository.AccountRepo,
) WidgetService {
	return &widgetServiceImpl{
		widgetRepo:    widgetRepo,
		dashboardRepo: dashboardRepo,
		accountRepo:   accountRepo,
	}
}

var validPlatforms = map[string]bool{
	consts.PlatformMeta:     true,
	consts.PlatformLinkedIn: true,
	consts.PlatformYouTube:  true,
	consts.PlatformTikTok:   true,
	consts.PlatformAll:      true,
}

func (s *widgetServiceImpl) CreateWidget(ctx context.Context, userID uint64, createDTO *dto.CreateWidgetDTO) (*dto.WidgetDTO, error) {
	if !catalog.IsKnownWidgetType(createDTO.WidgetType) || !validPlatforms[createDTO.Platform] {
		return nil, ErrParamInvalid
	}

	size := createDTO.Size
	if size == "" {
		size = consts.WidgetSizeMedium
	}
	if !catalog.IsValidCombination(createDTO.WidgetType, size) {
		return nil, ErrInvalidSizeCombo
	}

	if err := s.checkDashboardOwner(ctx, userID, createDTO.DashboardID); err != nil {
		return nil, err
	}

	// 绑定了账号时，指标必须在该账号类型的目录范围内
	if createDTO.AccountID != nil {
		account, err := s.accountRepo.GetAccountByID(ctx, *createDTO.AccountID)
		if err != nil {
			return nil, err
		}
		if account == nil || account.UserID != userID {
			return nil, ErrAccountNotFound
		}
		if !catalog.Has(account.Platform, account.PlatformAccountType, createDTO.Metric) {
			return nil, ErrUnknownMetric
		}
	}

	maxPosition, err := s.widgetRepo.GetMaxPosition(ctx, createDTO.DashboardID)
	if err != nil {
		return nil, err
	}

	widget := &model.Widget{
		DashboardID: createDTO.DashboardID,
		WidgetType:  createDTO.WidgetType,
		Platform:    createDTO.Platform,
		AccountID:   createDTO.AccountID,
		Metric:      createDTO.Metric,
		Size:        size,
		Position:    maxPosition + 1,
		Title:       createDTO.Title,
		Config:      createDTO.Config,
	}
	if err = s.widgetRepo.CreateWidget(ctx, widget); err != nil {
		return nil, err
	}
	return toWidgetDTO(widget)
}

func (s *widgetServiceImpl) UpdateWidget(ctx context.Context, userID uint64, widgetID uint64, updateDTO *dto.UpdateWidgetDTO) (*dto.WidgetDTO, error) {
	widget, err := s.widgetRepo.GetWidgetByID(ctx, widgetID)
	if err != nil {
		return nil, err
	}
	if widget == nil {
		return nil, ErrWidgetNotFound
	}
	if err = s.checkDashboardOwner(ctx, userID, widget.DashboardID); err != nil {
		return nil, err
	}

	// 尺寸变更需要重新过组合校验
	if updateDTO.Size != nil {
		if !catalog.IsValidCombination(widget.WidgetType, *updateDTO.Size) {
			return nil, ErrInvalidSizeCombo
		}
		widget.Size = *updateDTO.Size
	}
	if updateDTO.Position != nil {
		widget.Position = *updateDTO.Position
	}
	if updateDTO.Title != nil {
		widget.Title = *updateDTO.Title
	}
	if updateDTO.Config != nil {
		widget.Config = updateDTO.Config
	}

	if err = s.widgetRepo.UpdateWidget(ctx, widget); err != nil {
		return nil, err
	}
	invalidateWidgetData(ctx, widgetID)
	return toWidgetDTO(widget)
}

func (s *widgetServiceImpl) DeleteWidget(ctx context.Context, userID uint64, widgetID uint64) error {
	widget, err := s.widgetRepo.GetWidgetByID(ctx, widgetID)
	if err != nil {
		return err
	}
	if widget == nil {
		return ErrWidgetNotFound
	}
	if err = s.checkDashboardOwner(ctx, userID, widget.DashboardID); err != nil {
		return err
	}
	if err = s.widgetRepo.DeleteWidget(ctx, widgetID); err != nil {
		return err
	}
	invalidateWidgetData(ctx, widgetID)
	return nil
}

func (s *widgetServiceImpl) GetWidgetsByDashboard(ctx context.Context, userID uint64, dashboardID uint64) ([]*dto.WidgetDTO, error) {
	if err := s.checkDashboardOwner(ctx, userID, dashboardID); err != nil {
		return nil, err
	}
	widgets, err := s.widgetRepo.GetWidgetsByDashboardID(ctx, dashboardID)
	if err != nil {
		return nil, err
	}
	result := make([]*dto.WidgetDTO, 0, len(widgets))
	for _, widget := range widgets {
		widgetDTO, err := toWidgetDTO(widget)
		if err != nil {
			return nil, err
		}
		result = append(result, widgetDTO)
	}
	return result, nil
}

func (s *widgetServiceImpl) checkDashboardOwner(ctx context.Context, userID uint64, dashboardID uint64) error {
	dashboard, err := s.dashboardRepo.GetDashboardByID(ctx, dashboardID)
	if err != nil {
		return err
	}
	if dashboard == nil {
		return ErrDashboardNotFound
	}
	if dashboard.UserID != userID {
		return UnauthorizedError
	}
	return nil
}

// invalidateWidgetData 组件变更后清掉它的所有区间缓存，避免次日零点前一直读到旧配置的数据
func invalidateWidgetData(ctx context.Context, widgetID uint64) {
	if !redis.Available() {
		return
	}
	pattern := consts.WidgetDataKey + strconv.FormatUint(widgetID, 10) + ":*"
	iter := redis.GetRdbClient().Scan(ctx, 0, pattern, 0).Iterator()
	for iter.Next(ctx) {
		_ = redis.DeleteKey(ctx, iter.Val())
	}
}

func toWidgetDTO(widget *model.Widget) (*dto.WidgetDTO, error) {
	widgetDTO := &dto.WidgetDTO{}
	if err := copier.Copy(widgetDTO, widget); err != nil {
		return nil, err
	}
	return widgetDTO, nil
}
