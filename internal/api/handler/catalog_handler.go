package handler

import (
	"Pulseboard/internal/pkg/catalog"
	"Pulseboard/internal/pkg/response"

	"github.com/gin-gonic/gin"
)

type CatalogHandler struct{}

func NewCatalogHandler() *CatalogHandler {
	return &CatalogHandler{}
}

// GetMetrics 返回平台账号类型下可选的指标列表，驱动前端指标选择器。
// 未知组合返回空列表
func (s *CatalogHandler) GetMetrics(c *gin.Context) {
	platform := c.Query("platform")
	accountType := c.Query("account_type")

	response.Success(c, catalog.MetricsFor(platform, accountType))
}
