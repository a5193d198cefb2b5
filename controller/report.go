package controller

import (
	"net/http"

	"github.com/Xushengqwer/go-common/response"
	"github.com/gin-gonic/gin"

	"github.com/Xushengqwer/community_service/models/dto"
	"github.com/Xushengqwer/community_service/service"
)

// ReportController 定义举报提交控制器的结构体
type ReportController struct {
	reportService service.ReportService
}

// NewReportController 构造函数，注入服务层依赖
func NewReportController(reportService service.ReportService) *ReportController {
	return &ReportController{
		reportService: reportService,
	}
}

// CreateReport 处理提交举报的 HTTP 请求
// @Summary      提交举报
// @Description  对话题或回复提交一条举报。被举报内容必须存在；同一用户可重复举报。
// @Tags         reports (举报)
// @Accept       json
// @Produce      json
// @Param        request body dto.CreateReportRequest true "举报请求体"
// @Success      200 {object} vo.BaseResponseWrapper "举报提交成功"
// @Failure      400 {object} vo.BaseResponseWrapper "无效的请求负载"
// @Failure      401 {object} vo.BaseResponseWrapper "用户未登录"
// @Failure      404 {object} vo.BaseResponseWrapper "被举报内容未找到"
// @Failure      500 {object} vo.BaseResponseWrapper "提交举报时发生内部服务器错误"
// @Router       /api/v1/community/reports [post]
func (ctrl *ReportController) CreateReport(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	var req dto.CreateReportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondError(c, http.StatusBadRequest, response.ErrCodeClientInvalidInput, "无效的请求负载: "+err.Error())
		return
	}

	if err := ctrl.reportService.CreateReport(c.Request.Context(), userID, &req); err != nil {
		respondServiceError(c, err, "提交举报")
		return
	}

	response.RespondSuccess[any](c, nil, "举报提交成功")
}

// RegisterRoutes 注册 ReportController 的路由
func (ctrl *ReportController) RegisterRoutes(group *gin.RouterGroup) {
	group.POST("/reports", ctrl.CreateReport) // POST /api/v1/community/reports
}
