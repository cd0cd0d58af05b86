package handler

import (
	"Pulseboard/internal/api/dto"
	"Pulseboard/internal/pkg/response"
	"Pulseboard/internal/pkg/util"
	"Pulseboard/internal/service"
	"strconv"

	"github.com/gin-gonic/gin"
)

type ReportHandler struct {
	reportSvc service.ReportService
}

func NewReportHandler(reportSvc service.ReportService) *ReportHandler {
	return &ReportHandler{
		reportSvc: reportSvc,
	}
}

func (s *ReportHandler) CompileReport(c *gin.Context) {
	userID := c.GetUint64("user_id")

	var compileDTO dto.CompileReportDTO
	if err := c.ShouldBindJSON(&compileDTO); err != nil {
		response.Error(c, err)
		return
	}
	if err := util.ValidateDTO(&compileDTO); err != nil {
		response.Error(c, err)
		return
	}

	report, err := s.reportSvc.CompileReport(c.Request.Context(), userID, &compileDTO)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, report)
}

func (s *ReportHandler) GetReport(c *gin.Context) {
	userID := c.GetUint64("user_id")
	reportIDStr := c.Param("report_id")

	reportID, err := strconv.ParseUint(reportIDStr, 10, 64)
	if err != nil {
		response.Error(c, service.ErrParamInvalid)
		return
	}

	report, err := s.reportSvc.GetReport(c.Request.Context(), userID, reportID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, report)
}

func (s *ReportHandler) DeleteReport(c *gin.Context) {
	userID := c.GetUint64("user_id")
	reportIDStr := c.Param("report_id")

	reportID, err := strconv.ParseUint(reportIDStr, 10, 64)
	if err != nil {
		response.Error(c, service.ErrParamInvalid)
		return
	}

	if err = s.reportSvc.DeleteReport(c.Request.Context(), userID, reportID); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, nil)
}
