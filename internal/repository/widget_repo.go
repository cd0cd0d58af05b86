package repository

import (
	"Pulseboard/internal/model"
	"context"
	"errors"

	"gorm.io/gorm"
)

type WidgetRepo interface {
	CreateWidget(ctx context.Context, widget *model.Widget) error
	UpdateWidget(ctx context.Context, widget *model.Widget) error
	DeleteWidget(ctx context.Context, widgetID uint64) error
	DeleteByDashboardID(ctx context.Context, dashboardID uint64) error
	GetWidgetByID(ctx context.Context, widgetID uint64) (*model.Widget, error)
	GetWidgetsByDashboardID(ctx context.Context, dashboardID uint64) ([]*model.Widget, error)
	GetMaxPosition(ctx context.Context, dashboardID uint64) (int, error)
}

type widgetRepoImpl struct {
	db *gorm.DB
}

func NewWidgetRepo(db *gorm.DB) WidgetRepo {
	return &widgetRepoImpl{db: db}
}

func (s *widgetRepoImpl) CreateWidget(ctx context.Context, widget *model.Widget) error {
	return s.db.WithContext(ctx).Create(widget).Error
}

func (s *widgetRepoImpl) UpdateWidget(ctx context.Context, widget *model.Widget) error {
	return s.db.WithContext(ctx).Save(widget).Error
}

func (s *widgetRepoImpl) DeleteWidget(ctx context.Context, widgetID uint64) error {
	return s.db.WithContext(ctx).Delete(&model.Widget{}, widgetID).Error
}

func (s *widgetRepoImpl) DeleteByDashboardID(ctx context.Context, dashboardID uint64) error {
	return s.db.WithContext(ctx).Where("dashboard_id = ?", dashboardID).Delete(&model.Widget{}).Error
}

func (s *widgetRepoImpl) GetWidgetByID(ctx context.Context, widgetID uint64) (*model.Widget, error) {
	var widget model.Widget
	err := s.db.WithContext(ctx).First(&widget, widgetID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &widget, nil
}

func (s *widgetRepoImpl) GetWidgetsByDashboardID(ctx context.Context, dashboardID uint64) ([]*model.Widget, error) {
	widgets := make([]*model.Widget, 0)
	result := s.db.WithContext(ctx).
		Where("dashboard_id = ?", dashboardID).
		Order("position ASC").
		Find(&widgets)
	if result.Error != nil {
		return nil, result.Error
	}
	return widgets, nil
}

func (s *widgetRepoImpl) GetMaxPosition(ctx context.Context, dashboardID uint64) (int, error) {
	var maxPosition *int
	err := s.db.WithContext(ctx).
		Model(&model.Widget{}).
		Where("dashboard_id = ?", dashboardID).
		Select("MAX(position)").
		Scan(&maxPosition).Error
	if err != nil {
		return 0, err
	}
	if maxPosition == nil {
		return 0, nil
	}
	return *maxPosition, nil
}
