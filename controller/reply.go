package controller

import (
	"net/http"

	"github.com/Xushengqwer/go-common/response"
	"github.com/gin-gonic/gin"

	"github.com/Xushengqwer/community_service/models/dto"
	"github.com/Xushengqwer/community_service/service"
)

// ReplyController 定义回复控制器的结构体
type ReplyController struct {
	replyService service.ReplyService
}

// NewReplyController 构造函数，注入服务层依赖
func NewReplyController(replyService service.ReplyService) *ReplyController {
	return &ReplyController{
		replyService: replyService,
	}
}

// AddReply 处理发表回复的 HTTP 请求
// @Summary      在话题下发表回复
// @Description  在指定话题下发表顶层回复或嵌套回复。话题锁定时拒绝；父回复必须属于同一话题。
// @Tags         replies (回复)
// @Accept       json
// @Produce      json
// @Param        topic_id path uint64 true "话题 ID" Format(uint64)
// @Param        request body dto.CreateReplyRequest true "发表回复请求体"
// @Success      200 {object} vo.ReplyResponseWrapper "回复发表成功"
// @Failure      400 {object} vo.BaseResponseWrapper "无效的请求负载或父回复引用非法"
// @Failure      404 {object} vo.BaseResponseWrapper "话题未找到"
// @Failure      409 {object} vo.BaseResponseWrapper "话题已锁定，禁止新增回复"
// @Failure      500 {object} vo.BaseResponseWrapper "发表回复时发生内部服务器错误"
// @Router       /api/v1/community/topics/{topic_id}/replies [post]
func (ctrl *ReplyController) AddReply(c *gin.Context) {
	topicID, ok := parseIDParam(c, "topic_id")
	if !ok {
		return
	}

	var req dto.CreateReplyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondError(c, http.StatusBadRequest, response.ErrCodeClientInvalidInput, "无效的请求负载: "+err.Error())
		return
	}

	replyVO, err := ctrl.replyService.AddReply(c.Request.Context(), topicID, &req)
	if err != nil {
		respondServiceError(c, err, "发表回复")
		return
	}

	response.RespondSuccess(c, replyVO, "回复发表成功")
}

// EditReply 处理编辑回复的 HTTP 请求
// @Summary      编辑指定ID的回复
// @Description  更新回复正文。仅回复作者或管理员可操作。
// @Tags         replies (回复)
// @Accept       json
// @Produce      json
// @Param        reply_id path uint64 true "回复 ID" Format(uint64)
// @Param        request body dto.UpdateReplyRequest true "编辑回复请求体"
// @Success      200 {object} vo.BaseResponseWrapper "回复编辑成功"
// @Failure      400 {object} vo.BaseResponseWrapper "无效的请求负载"
// @Failure      403 {object} vo.BaseResponseWrapper "没有操作权限"
// @Failure      404 {object} vo.BaseResponseWrapper "回复未找到"
// @Failure      500 {object} vo.BaseResponseWrapper "编辑回复时发生内部服务器错误"
// @Router       /api/v1/community/replies/{reply_id} [put]
func (ctrl *ReplyController) EditReply(c *gin.Context) {
	replyID, ok := parseIDParam(c, "reply_id")
	if !ok {
		return
	}

	var req dto.UpdateReplyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondError(c, http.StatusBadRequest, response.ErrCodeClientInvalidInput, "无效的请求负载: "+err.Error())
		return
	}

	if err := ctrl.replyService.EditReply(c.Request.Context(), replyID, actorFromContext(c), &req); err != nil {
		respondServiceError(c, err, "编辑回复")
		return
	}

	response.RespondSuccess[any](c, nil, "回复编辑成功")
}

// DeleteReply 处理删除回复的 HTTP 请求
// @Summary      删除指定ID的回复
// @Description  删除回复及其整棵子孙回复树，连带清理这些回复上的投票与表情。仅回复作者或管理员可操作。
// @Tags         replies (回复)
// @Accept       json
// @Produce      json
// @Param        reply_id path uint64 true "回复 ID" Format(uint64)
// @Success      200 {object} vo.BaseResponseWrapper "回复删除成功"
// @Failure      400 {object} vo.BaseResponseWrapper "无效的回复 ID 格式"
// @Failure      403 {object} vo.BaseResponseWrapper "没有操作权限"
// @Failure      404 {object} vo.BaseResponseWrapper "回复未找到"
// @Failure      500 {object} vo.BaseResponseWrapper "删除回复时发生内部服务器错误"
// @Router       /api/v1/community/replies/{reply_id} [delete]
func (ctrl *ReplyController) DeleteReply(c *gin.Context) {
	replyID, ok := parseIDParam(c, "reply_id")
	if !ok {
		return
	}

	if _, err := ctrl.replyService.DeleteReply(c.Request.Context(), replyID, actorFromContext(c)); err != nil {
		respondServiceError(c, err, "删除回复")
		return
	}

	response.RespondSuccess[any](c, nil, "回复删除成功")
}

// MarkBestAnswer 处理标记最佳答案的 HTTP 请求
// @Summary      标记话题的最佳答案
// @Description  将指定回复标记为话题的最佳答案，旧标记被替换。仅话题作者或管理员可操作。
// @Tags         replies (回复)
// @Accept       json
// @Produce      json
// @Param        topic_id path uint64 true "话题 ID" Format(uint64)
// @Param        reply_id path uint64 true "回复 ID" Format(uint64)
// @Success      200 {object} vo.BaseResponseWrapper "最佳答案标记成功"
// @Failure      400 {object} vo.BaseResponseWrapper "无效的 ID 格式"
// @Failure      403 {object} vo.BaseResponseWrapper "没有操作权限"
// @Failure      404 {object} vo.BaseResponseWrapper "话题或回复未找到"
// @Failure      500 {object} vo.BaseResponseWrapper "标记最佳答案时发生内部服务器错误"
// @Router       /api/v1/community/topics/{topic_id}/best-answer/{reply_id} [put]
func (ctrl *ReplyController) MarkBestAnswer(c *gin.Context) {
	topicID, ok := parseIDParam(c, "topic_id")
	if !ok {
		return
	}
	replyID, ok := parseIDParam(c, "reply_id")
	if !ok {
		return
	}

	if err := ctrl.replyService.MarkBestAnswer(c.Request.Context(), topicID, replyID, actorFromContext(c)); err != nil {
		respondServiceError(c, err, "标记最佳答案")
		return
	}

	response.RespondSuccess[any](c, nil, "最佳答案标记成功")
}

// RegisterRoutes 注册 ReplyController 的路由
func (ctrl *ReplyController) RegisterRoutes(group *gin.RouterGroup) {
	group.POST("/topics/:topic_id/replies", ctrl.AddReply)                   // POST /api/v1/community/topics/:topic_id/replies
	group.PUT("/topics/:topic_id/best-answer/:reply_id", ctrl.MarkBestAnswer) // PUT  /api/v1/community/topics/:topic_id/best-answer/:reply_id

	replies := group.Group("/replies")
	{
		replies.PUT("/:reply_id", ctrl.EditReply)      // PUT    /api/v1/community/replies/:reply_id
		replies.DELETE("/:reply_id", ctrl.DeleteReply) // DELETE /api/v1/community/replies/:reply_id
	}
}
