package handler

import (
	"Pulseboard/internal/pkg/response"
	"Pulseboard/internal/service"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
)

type WidgetDataHandler struct {
	widgetDataSvc service.WidgetDataService
}

func NewWidgetDataHandler(widgetDataSvc service.WidgetDataService) *WidgetDataHandler {
	return &WidgetDataHandler{
		widgetDataSvc: widgetDataSvc,
	}
}

// GetWidgetData 解析单个组件在指定日期区间内的展示数据。
// 区间缺省为最近 30 天
func (s *WidgetDataHandler) GetWidgetData(c *gin.Context) {
	widgetIDStr := c.Param("widget_id")
	widgetID, err := strconv.ParseUint(widgetIDStr, 10, 64)
	if err != nil {
		response.Error(c, service.ErrParamInvalid)
		return
	}

	now := time.Now()
	from := now.AddDate(0, 0, -29)
	to := now

	if fromStr := c.Query("from"); fromStr != "" {
		if from, err = time.Parse(time.DateOnly, fromStr); err != nil {
			response.Error(c, service.ErrParamInvalid)
			return
		}
	}
	if toStr := c.Query("to"); toStr != "" {
		if to, err = time.Parse(time.DateOnly, toStr); err != nil {
			response.Error(c, service.ErrParamInvalid)
			return
		}
	}
	if to.Before(from) {
		response.Error(c, service.ErrParamInvalid)
		return
	}

	data, err := s.widgetDataSvc.ResolveWidgetData(c.Request.Context(), widgetID, from, to)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, data)
}
