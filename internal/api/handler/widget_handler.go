package handler

import (
	"Pulseboard/internal/api/dto"
	"Pulseboard/internal/pkg/response"
	"Pulseboard/internal/pkg/util"
	"Pulseboard/internal/service"
	"strconv"

	"github.com/gin-gonic/gin"
)

type WidgetHandler struct {
	widgetSvc service.WidgetService
}

func NewWidgetHandler(widgetSvc service.WidgetService) *WidgetHandler {
	return &WidgetHandler{
		widgetSvc: widgetSvc,
	}
}

func (s *WidgetHandler) CreateWidget(c *gin.Context) {
	userID := c.GetUint64("user_id")

	var createDTO dto.CreateWidgetDTO
	if err := c.ShouldBindJSON(&createDTO); err != nil {
		response.Error(c, err)
		return
	}
	if err := util.ValidateDTO(&createDTO); err != nil {
		response.Error(c, err)
		return
	}

	widget, err := s.widgetSvc.CreateWidget(c.Request.Context(), userID, &createDTO)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, widget)
}

func (s *WidgetHandler) UpdateWidget(c *gin.Context) {
	userID := c.GetUint64("user_id")
	widgetIDStr := c.Param("widget_id")

	widgetID, err := strconv.ParseUint(widgetIDStr, 10, 64)
	if err != nil {
		response.Error(c, service.ErrParamInvalid)
		return
	}

	var updateDTO dto.UpdateWidgetDTO
	if err = c.ShouldBindJSON(&updateDTO); err != nil {
		response.Error(c, err)
		return
	}
	if err = util.ValidateDTO(&updateDTO); err != nil {
		response.Error(c, err)
		return
	}

	widget, err := s.widgetSvc.UpdateWidget(c.Request.Context(), userID, widgetID, &updateDTO)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, widget)
}

func (s *WidgetHandler) DeleteWidget(c *gin.Context) {
	userID := c.GetUint64("user_id")
	widgetIDStr := c.Param("widget_id")

	widgetID, err := strconv.ParseUint(widgetIDStr, 10, 64)
	if err != nil {
		response.Error(c, service.ErrParamInvalid)
		return
	}

	if err = s.widgetSvc.DeleteWidget(c.Request.Context(), userID, widgetID); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, nil)
}

func (s *WidgetHandler) GetWidgets(c *gin.Context) {
	userID := c.GetUint64("user_id")

	dashboardID, err := strconv.ParseUint(c.Query("dashboard_id"), 10, 64)
	if err != nil {
		response.Error(c, service.ErrParamInvalid)
		return
	}

	widgets, err := s.widgetSvc.GetWidgetsByDashboard(c.Request.Context(), userID, dashboardID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, widgets)
}
