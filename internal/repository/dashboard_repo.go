package repository

import (
	"Pulseboard/internal/model"
	"context"
	"errors"

	"gorm.io/gorm"
)

type DashboardRepo interface {
	CreateDashboard(ctx context.Context, dashboard *model.Dashboard) error
	DeleteDashboard(ctx context.Context, dashboardID uint64) error
	GetDashboardByID(ctx context.Context, dashboardID uint64) (*model.Dashboard, error)
	GetDashboardsByUserID(ctx context.Context, userID uint64) ([]*model.Dashboard, error)
}

type dashboardRepoImpl struct {
	db *gorm.DB
}

func NewDashboardRepo(db *gorm.DB) DashboardRepo {
	return &dashboardRepoImpl{db: db}
}

func (s *dashboardRepoImpl) CreateDashboard(ctx context.Context, dashboard *model.Dashboard) error {
	return s.db.WithContext(ctx).Create(dashboard).Error
}

func (s *dashboardRepoImpl) DeleteDashboard(ctx context.Context, dashboardID uint64) error {
	return s.db.WithContext(ctx).Delete(&model.Dashboard{}, dashboardID).Error
}

func (s *dashboardRepoImpl) GetDashboardByID(ctx context.Context, dashboardID uint64) (*model.Dashboard, error) {
	var dashboard model.Dashboard
	err := s.db.WithContext(ctx).First(&dashboard, dashboardID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &dashboard, nil
}

func (s *dashboardRepoImpl) GetDashboardsByUserID(ctx context.Context, userID uint64) ([]*model.Dashboard, error) {
	dashboards := make([]*model.Dashboard, 0)
	result := s.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&dashboards)
	if result.Error != nil {
		return nil, result.Error
	}
	return dashboards, nil
}
