package handler

import (
	"Pulseboard/internal/api/dto"
	"Pulseboard/internal/pkg/response"
	"Pulseboard/internal/pkg/util"
	"Pulseboard/internal/service"
	"strconv"

	"github.com/gin-gonic/gin"
)

type DashboardHandler struct {
	dashboardSvc service.DashboardService
}

func NewDashboardHandler(dashboardSvc service.DashboardService) *DashboardHandler {
	return &DashboardHandler{
		dashboardSvc: dashboardSvc,
	}
}

func (s *DashboardHandler) CreateDashboard(c *gin.Context) {
	userID := c.GetUint64("user_id")

	var createDTO dto.CreateDashboardDTO
	if err := c.ShouldBindJSON(&createDTO); err != nil {
		response.Error(c, err)
		return
	}
	if err := util.ValidateDTO(&createDTO); err != nil {
		response.Error(c, err)
		return
	}

	dashboard, err := s.dashboardSvc.CreateDashboard(c.Request.Context(), userID, &createDTO)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, dashboard)
}

func (s *DashboardHandler) GetDashboards(c *gin.Context) {
	userID := c.GetUint64("user_id")

	dashboards, err := s.dashboardSvc.GetDashboards(c.Request.Context(), userID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, dashboards)
}

func (s *DashboardHandler) GetDashboard(c *gin.Context) {
	userID := c.GetUint64("user_id")
	dashboardIDStr := c.Param("dashboard_id")

	dashboardID, err := strconv.ParseUint(dashboardIDStr, 10, 64)
	if err != nil {
		response.Error(c, service.ErrParamInvalid)
		return
	}

	dashboard, err := s.dashboardSvc.GetDashboard(c.Request.Context(), userID, dashboardID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, dashboard)
}

func (s *DashboardHandler) DeleteDashboard(c *gin.Context) {
	userID := c.GetUint64("user_id")
	dashboardIDStr := c.Param("dashboard_id")

	dashboardID, err := strconv.ParseUint(dashboardIDStr, 10, 64)
	if err != nil {
		response.Error(c, service.ErrParamInvalid)
		return
	}

	if err = s.dashboardSvc.DeleteDashboard(c.Request.Context(), userID, dashboardID); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, nil)
}
