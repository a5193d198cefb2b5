package controller

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/Xushengqwer/go-common/response"
	"github.com/gin-gonic/gin"

	myErrors "github.com/Xushengqwer/community_service/myErrors"
	"github.com/Xushengqwer/community_service/service"
)

// HotTopicController 定义热门话题控制器的结构体
type HotTopicController struct {
	hotTopicService service.HotTopicServiceInterface
	topicService    service.TopicService // 缓存未命中时的详情回源路径
}

// NewHotTopicController 构造函数，注入服务层依赖
func NewHotTopicController(hotTopicService service.HotTopicServiceInterface, topicService service.TopicService) *HotTopicController {
	return &HotTopicController{
		hotTopicService: hotTopicService,
		topicService:    topicService,
	}
}

// GetHotTopicsByCursor 处理获取热门话题的 HTTP 请求
// @Summary      通过游标获取热门话题
// @Description  使用基于游标的分页方式，检索热门话题列表。榜单由定时任务按浏览量快照刷新。
// @Tags         hot-topics (热门话题)
// @Accept       json
// @Produce      json
// @Param        last_topic_id query uint64 false "上一页最后一个话题的 ID，首页省略" Format(uint64)
// @Param        limit query int true "每页话题数量" Format(int) minimum(1)
// @Success      200 {object} vo.ListHotTopicsByCursorResponseWrapper "热门话题检索成功"
// @Failure      400 {object} vo.BaseResponseWrapper "无效的输入参数"
// @Failure      500 {object} vo.BaseResponseWrapper "检索热门话题时发生内部服务器错误"
// @Router       /api/v1/community/hot-topics [get]
func (ctrl *HotTopicController) GetHotTopicsByCursor(c *gin.Context) {
	// 1. 处理 last_topic_id 参数（可选）
	var lastTopicID *uint64
	if lastTopicIDStr := c.Query("last_topic_id"); lastTopicIDStr != "" {
		id, err := strconv.ParseUint(lastTopicIDStr, 10, 64)
		if err != nil {
			response.RespondError(c, http.StatusBadRequest, response.ErrCodeClientInvalidInput, "无效的 last topic ID 格式")
			return
		}
		lastTopicID = &id
	}

	// 2. 处理 limit 参数（必填）
	limitStr := c.Query("limit")
	if limitStr == "" {
		response.RespondError(c, http.StatusBadRequest, response.ErrCodeClientInvalidInput, "limit 是必需的")
		return
	}
	limit, err := strconv.Atoi(limitStr)
	if err != nil || limit <= 0 {
		response.RespondError(c, http.StatusBadRequest, response.ErrCodeClientInvalidInput, "无效的 limit，必须是正整数")
		return
	}

	// 3. 调用服务层获取热门话题
	pageVO, err := ctrl.hotTopicService.GetHotTopicsByCursor(c.Request.Context(), lastTopicID, limit)
	if err != nil {
		response.RespondError(c, http.StatusInternalServerError, response.ErrCodeServerInternal, "检索热门话题失败: "+err.Error())
		return
	}

	response.RespondSuccess(c, pageVO, "热门话题检索成功")
}

// GetHotTopicDetail 处理获取热门话题详情的 HTTP 请求
// @Summary      根据话题 ID 获取热门话题详情
// @Description  优先从 Redis 缓存读取话题详情快照；缓存未命中时回源数据库路径组装。除非携带 skip_view=true，访问会计入浏览量。
// @Tags         hot-topics (热门话题)
// @Accept       json
// @Produce      json
// @Param        topic_id path uint64 true "话题 ID" Format(uint64)
// @Param        skip_view query bool false "本次访问不计入浏览量的客户端声明" default(false)
// @Success      200 {object} vo.TopicDetailResponseWrapper "热门话题详情检索成功"
// @Failure      400 {object} vo.BaseResponseWrapper "无效的话题 ID 格式"
// @Failure      404 {object} vo.BaseResponseWrapper "话题未找到"
// @Failure      500 {object} vo.BaseResponseWrapper "检索热门话题详情时发生内部服务器错误"
// @Router       /api/v1/community/hot-topics/{topic_id} [get]
func (ctrl *HotTopicController) GetHotTopicDetail(c *gin.Context) {
	topicID, ok := parseIDParam(c, "topic_id")
	if !ok {
		return
	}

	skipView := c.Query("skip_view") == "true"

	// 1. 优先走缓存快照
	detail, err := ctrl.hotTopicService.GetHotTopicDetail(c.Request.Context(), topicID, skipView)
	if err == nil {
		response.RespondSuccess(c, detail, "热门话题详情检索成功")
		return
	}
	if !errors.Is(err, myErrors.ErrCacheMiss) {
		response.RespondError(c, http.StatusInternalServerError, response.ErrCodeServerInternal, "检索热门话题详情失败: "+err.Error())
		return
	}

	// 2. 缓存未命中，回源数据库路径组装完整详情。
	// 浏览计数已在缓存路径触发过，回源时一律跳过，避免一次访问计两次。
	detail, err = ctrl.topicService.GetTopicDetail(c.Request.Context(), topicID, actorFromContext(c), true)
	if err != nil {
		respondServiceError(c, err, "检索热门话题详情")
		return
	}

	response.RespondSuccess(c, detail, "热门话题详情检索成功")
}

// RegisterRoutes 注册 HotTopicController 的路由
func (ctrl *HotTopicController) RegisterRoutes(group *gin.RouterGroup) {
	hotTopics := group.Group("/hot-topics")
	{
		hotTopics.GET("", ctrl.GetHotTopicsByCursor)        // GET /api/v1/community/hot-topics
		hotTopics.GET("/:topic_id", ctrl.GetHotTopicDetail) // GET /api/v1/community/hot-topics/:topic_id
	}
}
