package controller

import (
	"net/http"

	"github.com/Xushengqwer/go-common/response"
	"github.com/gin-gonic/gin"

	"github.com/Xushengqwer/community_service/models/dto"
	"github.com/Xushengqwer/community_service/service"
)

// InteractionController 定义投票与表情反应控制器的结构体
type InteractionController struct {
	interactionService service.InteractionService
}

// NewInteractionController 构造函数，注入服务层依赖
func NewInteractionController(interactionService service.InteractionService) *InteractionController {
	return &InteractionController{
		interactionService: interactionService,
	}
}

// VoteTopic 处理话题投票的 HTTP 请求
// @Summary      对话题投票
// @Description  对话题投赞同/反对票。同向重复投票表示撤销，反向投票表示换票。返回切换后的投票状态。
// @Tags         interactions (互动)
// @Accept       json
// @Produce      json
// @Param        topic_id path uint64 true "话题 ID" Format(uint64)
// @Param        request body dto.VoteRequest true "投票请求体"
// @Success      200 {object} vo.VoteStateResponseWrapper "投票切换成功"
// @Failure      400 {object} vo.BaseResponseWrapper "无效的请求负载"
// @Failure      401 {object} vo.BaseResponseWrapper "用户未登录"
// @Failure      404 {object} vo.BaseResponseWrapper "话题未找到"
// @Failure      409 {object} vo.BaseResponseWrapper "并发投票冲突，请重试"
// @Failure      500 {object} vo.BaseResponseWrapper "投票时发生内部服务器错误"
// @Router       /api/v1/community/topics/{topic_id}/vote [post]
func (ctrl *InteractionController) VoteTopic(c *gin.Context) {
	topicID, ok := parseIDParam(c, "topic_id")
	if !ok {
		return
	}
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	var req dto.VoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondError(c, http.StatusBadRequest, response.ErrCodeClientInvalidInput, "无效的请求负载: "+err.Error())
		return
	}

	state, err := ctrl.interactionService.VoteTopic(c.Request.Context(), topicID, userID, &req)
	if err != nil {
		respondServiceError(c, err, "话题投票")
		return
	}

	response.RespondSuccess(c, state, "投票切换成功")
}

// VoteReply 处理回复投票的 HTTP 请求
// @Summary      对回复投票
// @Description  对回复投赞同/反对票。同向重复投票表示撤销，反向投票表示换票。返回切换后的投票状态。
// @Tags         interactions (互动)
// @Accept       json
// @Produce      json
// @Param        reply_id path uint64 true "回复 ID" Format(uint64)
// @Param        request body dto.VoteRequest true "投票请求体"
// @Success      200 {object} vo.VoteStateResponseWrapper "投票切换成功"
// @Failure      400 {object} vo.BaseResponseWrapper "无效的请求负载"
// @Failure      401 {object} vo.BaseResponseWrapper "用户未登录"
// @Failure      404 {object} vo.BaseResponseWrapper "回复未找到"
// @Failure      409 {object} vo.BaseResponseWrapper "并发投票冲突，请重试"
// @Failure      500 {object} vo.BaseResponseWrapper "投票时发生内部服务器错误"
// @Router       /api/v1/community/replies/{reply_id}/vote [post]
func (ctrl *InteractionController) VoteReply(c *gin.Context) {
	replyID, ok := parseIDParam(c, "reply_id")
	if !ok {
		return
	}
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	var req dto.VoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondError(c, http.StatusBadRequest, response.ErrCodeClientInvalidInput, "无效的请求负载: "+err.Error())
		return
	}

	state, err := ctrl.interactionService.VoteReply(c.Request.Context(), replyID, userID, &req)
	if err != nil {
		respondServiceError(c, err, "回复投票")
		return
	}

	response.RespondSuccess(c, state, "投票切换成功")
}

// ToggleReaction 处理表情反应切换的 HTTP 请求
// @Summary      切换表情反应
// @Description  对话题或回复切换某个表情：不存在则添加，已存在则撤销。不同表情互不影响。
// @Tags         interactions (互动)
// @Accept       json
// @Produce      json
// @Param        request body dto.ReactionRequest true "表情反应请求体"
// @Success      200 {object} vo.ToggleStateResponseWrapper "表情切换成功"
// @Failure      400 {object} vo.BaseResponseWrapper "无效的请求负载"
// @Failure      401 {object} vo.BaseResponseWrapper "用户未登录"
// @Failure      500 {object} vo.BaseResponseWrapper "切换表情时发生内部服务器错误"
// @Router       /api/v1/community/reactions [post]
func (ctrl *InteractionController) ToggleReaction(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	var req dto.ReactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondError(c, http.StatusBadRequest, response.ErrCodeClientInvalidInput, "无效的请求负载: "+err.Error())
		return
	}

	state, err := ctrl.interactionService.ToggleReaction(c.Request.Context(), userID, &req)
	if err != nil {
		respondServiceError(c, err, "切换表情")
		return
	}

	response.RespondSuccess(c, state, "表情切换成功")
}

// ListReactions 处理查询表情聚合的 HTTP 请求
// @Summary      获取目标的表情聚合 (公开)
// @Description  获取话题或回复上的表情聚合：按表情分组计数并附带反应者名单，按计数降序排列。
// @Tags         interactions (互动)
// @Accept       json
// @Produce      json
// @Param        target_type query int true "目标类型 (1:话题, 2:回复)" Enums(1,2)
// @Param        target_id query uint64 true "目标ID" Format(uint64) minimum(1)
// @Success      200 {object} vo.ReactionGroupListResponseWrapper "表情聚合检索成功"
// @Failure      400 {object} vo.BaseResponseWrapper "无效的查询参数"
// @Failure      500 {object} vo.BaseResponseWrapper "检索表情聚合时发生内部服务器错误"
// @Router       /api/v1/community/reactions [get]
func (ctrl *InteractionController) ListReactions(c *gin.Context) {
	var query dto.ReactionListQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		response.RespondError(c, http.StatusBadRequest, response.ErrCodeClientInvalidInput, "无效的查询参数: "+err.Error())
		return
	}

	groups, err := ctrl.interactionService.ListReactions(c.Request.Context(), &query)
	if err != nil {
		respondServiceError(c, err, "检索表情聚合")
		return
	}

	response.RespondSuccess(c, groups, "表情聚合检索成功")
}

// RegisterRoutes 注册 InteractionController 的路由
func (ctrl *InteractionController) RegisterRoutes(group *gin.RouterGroup) {
	group.POST("/topics/:topic_id/vote", ctrl.VoteTopic)  // POST /api/v1/community/topics/:topic_id/vote
	group.POST("/replies/:reply_id/vote", ctrl.VoteReply) // POST /api/v1/community/replies/:reply_id/vote

	reactions := group.Group("/reactions")
	{
		reactions.POST("", ctrl.ToggleReaction) // POST /api/v1/community/reactions
		reactions.GET("", ctrl.ListReactions)   // GET  /api/v1/community/reactions
	}
}
