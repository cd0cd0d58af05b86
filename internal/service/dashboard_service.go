package service

import (
	"Pulseboard/internal/api/dto"
	"Pulseboard/internal/model"
	"Pulseboard/internal/repository"
	"context"

	"github.com/jinzhu/copier"
)

type DashboardService interface {
	CreateDashboard(ctx context.Context, userID uint64, createDTO *dto.CreateDashboardDTO) (*dto.DashboardDTO, error)
	GetDashboard(ctx context.Context, userID uint64, dashboardID uint64) (*dto.DashboardDTO, error)
	GetDashboards(ctx context.Context, userID uint64) ([]*dto.DashboardDTO, error)
	DeleteDashboard(ctx context.Context, userID uint64, dashboardID uint64) error
}

type dashboardServiceImpl struct {
	dashboardRepo repository.DashboardRepo
	widgetRepo    repository.WidgetRepo
}

func NewDashboardService(dashboardRepo repository.DashboardRepo, widgetRepo repository.WidgetRepo) DashboardService {
	return &dashboardServiceImpl{
		dashboardRepo: dashboardRepo,
		widgetRepo:    widgetRepo,
	}
}

func (s *dashboardServiceImpl) CreateDashboard(ctx context.Context, userID uint64, createDTO *dto.CreateDashboardDTO) (*dto.DashboardDTO, error) {
	dashboard := &model.Dashboard{
		UserID:     userID,
		Name:       createDTO.Name,
		ClientName: createDTO.ClientName,
	}
	if err := s.dashboardRepo.CreateDashboard(ctx, dashboard); err != nil {
		return nil, err
	}
	return toDashboardDTO(dashboard)
}

func (s *dashboardServiceImpl) GetDashboard(ctx context.Context, userID uint64, dashboardID uint64) (*dto.DashboardDTO, error) {
	dashboard, err := s.getOwnedDashboard(ctx, userID, dashboardID)
	if err != nil {
		return nil, err
	}
	return toDashboardDTO(dashboard)
}

func (s *dashboardServiceImpl) GetDashboards(ctx context.Context, userID uint64) ([]*dto.DashboardDTO, error) {
	dashboards, err := s.dashboardRepo.GetDashboardsByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	result := make([]*dto.DashboardDTO, 0, len(dashboards))
	for _, dashboard := range dashboards {
		dashboardDTO, err := toDashboardDTO(dashboard)
		if err != nil {
			return nil, err
		}
		result = append(result, dashboardDTO)
	}
	return result, nil
}

// DeleteDashboard 删除看板并清掉其下所有组件
func (s *dashboardServiceImpl) DeleteDashboard(ctx context.Context, userID uint64, dashboardID uint64) error {
	if _, err := s.getOwnedDashboard(ctx, userID, dashboardID); err != nil {
		return err
	}
	if err := s.widgetRepo.DeleteByDashboardID(ctx, dashboardID); err != nil {
		return err
	}
	return s.dashboardRepo.DeleteDashboard(ctx, dashboardID)
}

func (s *dashboardServiceImpl) getOwnedDashboard(ctx context.Context, userID uint64, dashboardID uint64) (*model.Dashboard, error) {
	dashboard, err := s.dashboardRepo.GetDashboardByID(ctx, dashboardID)
	if err != nil {
		return nil, err
	}
	if dashboard == nil {
		return nil, ErrDashboardNotFound
	}
	if dashboard.UserID != userID {
		return nil, UnauthorizedError
	}
	return dashboard, nil
}

func toDashboardDTO(dashboard *model.Dashboard) (*dto.DashboardDTO, error) {
	dashboardDTO := &dto.DashboardDTO{}
	if err := copier.Copy(dashboardDTO, dashboard); err != nil {
		return nil, err
	}
	return dashboardDTO, nil
}
