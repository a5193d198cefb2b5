package controller

import (
	"net/http"

	"github.com/Xushengqwer/go-common/response"
	"github.com/gin-gonic/gin"

	"github.com/Xushengqwer/community_service/models/dto"
	"github.com/Xushengqwer/community_service/service"
)

// EngagementController 定义收藏/订阅/浏览记录控制器的结构体
type EngagementController struct {
	engagementService service.EngagementService
}

// NewEngagementController 构造函数，注入服务层依赖
func NewEngagementController(engagementService service.EngagementService) *EngagementController {
	return &EngagementController{
		engagementService: engagementService,
	}
}

// ToggleBookmark 处理收藏切换的 HTTP 请求
// @Summary      切换话题收藏状态
// @Description  收藏或取消收藏话题（切换语义），返回切换后是否已收藏。
// @Tags         engagements (参与)
// @Accept       json
// @Produce      json
// @Param        topic_id path uint64 true "话题 ID" Format(uint64)
// @Success      200 {object} vo.ToggleStateResponseWrapper "收藏状态切换成功"
// @Failure      400 {object} vo.BaseResponseWrapper "无效的话题 ID 格式"
// @Failure      401 {object} vo.BaseResponseWrapper "用户未登录"
// @Failure      404 {object} vo.BaseResponseWrapper "话题未找到"
// @Failure      500 {object} vo.BaseResponseWrapper "切换收藏时发生内部服务器错误"
// @Router       /api/v1/community/topics/{topic_id}/bookmark [post]
func (ctrl *EngagementController) ToggleBookmark(c *gin.Context) {
	topicID, ok := parseIDParam(c, "topic_id")
	if !ok {
		return
	}
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	state, err := ctrl.engagementService.ToggleBookmark(c.Request.Context(), topicID, userID)
	if err != nil {
		respondServiceError(c, err, "切换收藏")
		return
	}

	response.RespondSuccess(c, state, "收藏状态切换成功")
}

// ToggleSubscription 处理订阅切换的 HTTP 请求
// @Summary      切换话题订阅状态
// @Description  订阅或取消订阅话题（切换语义）。订阅者会收到话题的新回复、状态流转与最佳答案通知。
// @Tags         engagements (参与)
// @Accept       json
// @Produce      json
// @Param        topic_id path uint64 true "话题 ID" Format(uint64)
// @Success      200 {object} vo.ToggleStateResponseWrapper "订阅状态切换成功"
// @Failure      400 {object} vo.BaseResponseWrapper "无效的话题 ID 格式"
// @Failure      401 {object} vo.BaseResponseWrapper "用户未登录"
// @Failure      404 {object} vo.BaseResponseWrapper "话题未找到"
// @Failure      500 {object} vo.BaseResponseWrapper "切换订阅时发生内部服务器错误"
// @Router       /api/v1/community/topics/{topic_id}/subscribe [post]
func (ctrl *EngagementController) ToggleSubscription(c *gin.Context) {
	topicID, ok := parseIDParam(c, "topic_id")
	if !ok {
		return
	}
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	state, err := ctrl.engagementService.ToggleSubscription(c.Request.Context(), topicID, userID)
	if err != nil {
		respondServiceError(c, err, "切换订阅")
		return
	}

	response.RespondSuccess(c, state, "订阅状态切换成功")
}

// RecordView 处理记录话题浏览的 HTTP 请求
// @Summary      记录话题浏览
// @Description  为话题增加一次浏览计数。客户端声明 skip_view 时本次访问不计入（同一浏览会话内的刷新场景）。
// @Tags         engagements (参与)
// @Accept       json
// @Produce      json
// @Param        topic_id path uint64 true "话题 ID" Format(uint64)
// @Param        request body dto.RecordViewRequest false "浏览记录请求体"
// @Success      200 {object} vo.BaseResponseWrapper "浏览记录成功"
// @Failure      400 {object} vo.BaseResponseWrapper "无效的话题 ID 格式"
// @Failure      500 {object} vo.BaseResponseWrapper "记录浏览时发生内部服务器错误"
// @Router       /api/v1/community/topics/{topic_id}/view [post]
func (ctrl *EngagementController) RecordView(c *gin.Context) {
	topicID, ok := parseIDParam(c, "topic_id")
	if !ok {
		return
	}

	// 请求体可选，绑定失败按默认值处理
	var req dto.RecordViewRequest
	_ = c.ShouldBindJSON(&req)

	if err := ctrl.engagementService.RecordView(c.Request.Context(), topicID, &req); err != nil {
		respondServiceError(c, err, "记录浏览")
		return
	}

	response.RespondSuccess[any](c, nil, "浏览记录成功")
}

// ListMyBookmarks 处理查询我的收藏列表的 HTTP 请求
// @Summary      获取我的收藏话题列表
// @Description  按收藏时间倒序分页获取当前登录用户收藏的话题。UserID 从请求上下文中获取。
// @Tags         engagements (参与)
// @Accept       json
// @Produce      json
// @Param        page query int false "页码 (从1开始)" format(int32) minimum(1) default(1)
// @Param        page_size query int false "每页数量" format(int32) minimum(1) maximum(100) default(20)
// @Success      200 {object} vo.TopicPageResponseWrapper "成功响应，包含收藏话题列表和总记录数"
// @Failure      400 {object} vo.BaseResponseWrapper "无效的查询参数"
// @Failure      401 {object} vo.BaseResponseWrapper "用户未登录"
// @Failure      500 {object} vo.BaseResponseWrapper "检索收藏列表时发生内部服务器错误"
// @Router       /api/v1/community/bookmarks/mine [get]
func (ctrl *EngagementController) ListMyBookmarks(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	var query dto.EngagementListQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		response.RespondError(c, http.StatusBadRequest, response.ErrCodeClientInvalidInput, "无效的查询参数: "+err.Error())
		return
	}

	pageVO, err := ctrl.engagementService.ListMyBookmarks(c.Request.Context(), userID, &query)
	if err != nil {
		respondServiceError(c, err, "检索收藏列表")
		return
	}

	response.RespondSuccess(c, pageVO, "收藏列表获取成功")
}

// ListMySubscriptions 处理查询我的订阅列表的 HTTP 请求
// @Summary      获取我的订阅话题列表
// @Description  按订阅时间倒序分页获取当前登录用户订阅的话题。UserID 从请求上下文中获取。
// @Tags         engagements (参与)
// @Accept       json
// @Produce      json
// @Param        page query int false "页码 (从1开始)" format(int32) minimum(1) default(1)
// @Param        page_size query int false "每页数量" format(int32) minimum(1) maximum(100) default(20)
// @Success      200 {object} vo.TopicPageResponseWrapper "成功响应，包含订阅话题列表和总记录数"
// @Failure      400 {object} vo.BaseResponseWrapper "无效的查询参数"
// @Failure      401 {object} vo.BaseResponseWrapper "用户未登录"
// @Failure      500 {object} vo.BaseResponseWrapper "检索订阅列表时发生内部服务器错误"
// @Router       /api/v1/community/subscriptions/mine [get]
func (ctrl *EngagementController) ListMySubscriptions(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	var query dto.EngagementListQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		response.RespondError(c, http.StatusBadRequest, response.ErrCodeClientInvalidInput, "无效的查询参数: "+err.Error())
		return
	}

	pageVO, err := ctrl.engagementService.ListMySubscriptions(c.Request.Context(), userID, &query)
	if err != nil {
		respondServiceError(c, err, "检索订阅列表")
		return
	}

	response.RespondSuccess(c, pageVO, "订阅列表获取成功")
}

// RegisterRoutes 注册 EngagementController 的路由
func (ctrl *EngagementController) RegisterRoutes(group *gin.RouterGroup) {
	group.POST("/topics/:topic_id/bookmark", ctrl.ToggleBookmark)      // POST /api/v1/community/topics/:topic_id/bookmark
	group.POST("/topics/:topic_id/subscribe", ctrl.ToggleSubscription) // POST /api/v1/community/topics/:topic_id/subscribe
	group.POST("/topics/:topic_id/view", ctrl.RecordView)              // POST /api/v1/community/topics/:topic_id/view
	group.GET("/bookmarks/mine", ctrl.ListMyBookmarks)                 // GET  /api/v1/community/bookmarks/mine
	group.GET("/subscriptions/mine", ctrl.ListMySubscriptions)         // GET  /api/v1/community/subscriptions/mine
}
