package controller

import (
	"net/http"

	"github.com/Xushengqwer/go-common/response"
	"github.com/gin-gonic/gin"

	"github.com/Xushengqwer/community_service/models/dto"
	"github.com/Xushengqwer/community_service/service"
)

// TopicAdminController 定义话题治理控制器的结构体（管理端）
type TopicAdminController struct {
	topicAdminService service.TopicAdminService
	reportService     service.ReportService
}

// NewTopicAdminController 构造函数，注入服务层依赖
func NewTopicAdminController(topicAdminService service.TopicAdminService, reportService service.ReportService) *TopicAdminController {
	return &TopicAdminController{
		topicAdminService: topicAdminService,
		reportService:     reportService,
	}
}

// SetLocked 处理管理员设置话题锁定标记的 HTTP 请求
// @Summary      设置话题锁定标记
// @Description  管理员锁定或解锁话题。锁定只拦截新增回复，投票/表情/收藏等参与行为不受影响。
// @Tags         admin-topics (管理员-话题)
// @Accept       json
// @Produce      json
// @Param        topic_id path uint64 true "话题 ID" Format(uint64)
// @Param        request body dto.SetLockedRequest true "锁定标记请求体"
// @Success      200 {object} vo.BaseResponseWrapper "锁定标记设置成功"
// @Failure      400 {object} vo.BaseResponseWrapper "无效的请求负载"
// @Failure      403 {object} vo.BaseResponseWrapper "没有管理员权限"
// @Failure      404 {object} vo.BaseResponseWrapper "话题未找到"
// @Failure      500 {object} vo.BaseResponseWrapper "设置锁定标记时发生内部服务器错误"
// @Router       /api/v1/community/admin/topics/{topic_id}/locked [put]
func (ctrl *TopicAdminController) SetLocked(c *gin.Context) {
	topicID, ok := parseIDParam(c, "topic_id")
	if !ok {
		return
	}

	var req dto.SetLockedRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondError(c, http.StatusBadRequest, response.ErrCodeClientInvalidInput, "无效的请求负载: "+err.Error())
		return
	}

	if err := ctrl.topicAdminService.SetLocked(c.Request.Context(), topicID, actorFromContext(c), req.Locked); err != nil {
		respondServiceError(c, err, "设置锁定标记")
		return
	}

	response.RespondSuccess[any](c, nil, "锁定标记设置成功")
}

// SetPinned 处理管理员设置话题置顶标记的 HTTP 请求
// @Summary      设置话题置顶标记
// @Description  管理员置顶或取消置顶话题。置顶话题在列表排序中总是排在前面。
// @Tags         admin-topics (管理员-话题)
// @Accept       json
// @Produce      json
// @Param        topic_id path uint64 true "话题 ID" Format(uint64)
// @Param        request body dto.SetPinnedRequest true "置顶标记请求体"
// @Success      200 {object} vo.BaseResponseWrapper "置顶标记设置成功"
// @Failure      400 {object} vo.BaseResponseWrapper "无效的请求负载"
// @Failure      403 {object} vo.BaseResponseWrapper "没有管理员权限"
// @Failure      404 {object} vo.BaseResponseWrapper "话题未找到"
// @Failure      500 {object} vo.BaseResponseWrapper "设置置顶标记时发生内部服务器错误"
// @Router       /api/v1/community/admin/topics/{topic_id}/pinned [put]
func (ctrl *TopicAdminController) SetPinned(c *gin.Context) {
	topicID, ok := parseIDParam(c, "topic_id")
	if !ok {
		return
	}

	var req dto.SetPinnedRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondError(c, http.StatusBadRequest, response.ErrCodeClientInvalidInput, "无效的请求负载: "+err.Error())
		return
	}

	if err := ctrl.topicAdminService.SetPinned(c.Request.Context(), topicID, actorFromContext(c), req.Pinned); err != nil {
		respondServiceError(c, err, "设置置顶标记")
		return
	}

	response.RespondSuccess[any](c, nil, "置顶标记设置成功")
}

// ListReports 处理管理员查询举报列表的 HTTP 请求
// @Summary      获取举报列表
// @Description  管理员按处理状态分页查询举报记录。
// @Tags         admin-topics (管理员-话题)
// @Accept       json
// @Produce      json
// @Param        status query int false "按处理状态筛选 (0:待处理, 1:已处理)，省略表示全部" Enums(0,1)
// @Param        page query int false "页码 (从1开始)" format(int32) minimum(1) default(1)
// @Param        page_size query int false "每页数量" format(int32) minimum(1) maximum(100) default(20)
// @Success      200 {object} vo.ReportPageResponseWrapper "成功响应，包含举报列表和总记录数"
// @Failure      400 {object} vo.BaseResponseWrapper "无效的查询参数"
// @Failure      403 {object} vo.BaseResponseWrapper "没有管理员权限"
// @Failure      500 {object} vo.BaseResponseWrapper "检索举报列表时发生内部服务器错误"
// @Router       /api/v1/community/admin/reports [get]
func (ctrl *TopicAdminController) ListReports(c *gin.Context) {
	var query dto.ReportListQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		response.RespondError(c, http.StatusBadRequest, response.ErrCodeClientInvalidInput, "无效的查询参数: "+err.Error())
		return
	}

	pageVO, err := ctrl.reportService.ListReports(c.Request.Context(), actorFromContext(c), &query)
	if err != nil {
		respondServiceError(c, err, "检索举报列表")
		return
	}

	response.RespondSuccess(c, pageVO, "举报列表获取成功")
}

// ResolveReport 处理管理员标记举报为已处理的 HTTP 请求
// @Summary      处理举报
// @Description  管理员将一条举报标记为已处理。重复处理是无害的空操作。
// @Tags         admin-topics (管理员-话题)
// @Accept       json
// @Produce      json
// @Param        report_id path uint64 true "举报 ID" Format(uint64)
// @Success      200 {object} vo.BaseResponseWrapper "举报处理成功"
// @Failure      400 {object} vo.BaseResponseWrapper "无效的举报 ID 格式"
// @Failure      403 {object} vo.BaseResponseWrapper "没有管理员权限"
// @Failure      404 {object} vo.BaseResponseWrapper "举报未找到"
// @Failure      500 {object} vo.BaseResponseWrapper "处理举报时发生内部服务器错误"
// @Router       /api/v1/community/admin/reports/{report_id}/resolve [put]
func (ctrl *TopicAdminController) ResolveReport(c *gin.Context) {
	reportID, ok := parseIDParam(c, "report_id")
	if !ok {
		return
	}

	if err := ctrl.reportService.ResolveReport(c.Request.Context(), actorFromContext(c), reportID); err != nil {
		respondServiceError(c, err, "处理举报")
		return
	}

	response.RespondSuccess[any](c, nil, "举报处理成功")
}

// RegisterRoutes 注册 TopicAdminController 的路由
func (ctrl *TopicAdminController) RegisterRoutes(group *gin.RouterGroup) {
	admin := group.Group("/admin")
	{
		admin.PUT("/topics/:topic_id/locked", ctrl.SetLocked)        // PUT /api/v1/community/admin/topics/:topic_id/locked
		admin.PUT("/topics/:topic_id/pinned", ctrl.SetPinned)        // PUT /api/v1/community/admin/topics/:topic_id/pinned
		admin.GET("/reports", ctrl.ListReports)                      // GET /api/v1/community/admin/reports
		admin.PUT("/reports/:report_id/resolve", ctrl.ResolveReport) // PUT /api/v1/community/admin/reports/:report_id/resolve
	}
}
