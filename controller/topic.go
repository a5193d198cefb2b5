package controller

import (
	"mime/multipart"
	"net/http"

	"github.com/Xushengqwer/go-common/response"
	"github.com/gin-gonic/gin"

	"github.com/Xushengqwer/community_service/models/dto"
	"github.com/Xushengqwer/community_service/service"
)

// TopicController 定义话题控制器的结构体
type TopicController struct {
	topicService     service.TopicService
	topicListService service.TopicListService
}

// NewTopicController 构造函数，用于创建 TopicController 实例
func NewTopicController(topicService service.TopicService, topicListService service.TopicListService) *TopicController {
	return &TopicController{
		topicService:     topicService,
		topicListService: topicListService,
	}
}

// CreateTopic 处理创建话题的 HTTP 请求，可携带一个媒体文件（图片或视频）。
// @Summary      创建新话题
// @Description  使用提供的详情（作为独立表单字段）和可选的媒体文件创建一个新话题。请求体应为 multipart/form-data。
// @Tags         topics (话题)
// @Accept       multipart/form-data
// @Produce      json
// @Param        title formData string true "话题标题" maxLength(255)
// @Param        category formData string true "分类" maxLength(100)
// @Param        description formData string false "简介 (可选)" maxLength(500)
// @Param        content formData string true "正文"
// @Param        tags formData string false "标签集合，逗号拼接 (可选)" maxLength(255)
// @Param        author_id formData string true "作者ID"
// @Param        author_username formData string true "作者用户名" maxLength(50)
// @Param        author_avatar formData string false "作者头像 URL (可选)" format(url)
// @Param        media_type formData int false "媒体类型 (0:无, 1:图片, 2:视频)" Enums(0,1,2)
// @Param        media formData file false "媒体文件 (图片或视频，与 media_type 对应)"
// @Success      200 {object} vo.TopicResponseWrapper "话题创建成功"
// @Failure      400 {object} vo.BaseResponseWrapper "无效的请求负载或文件处理错误"
// @Failure      500 {object} vo.BaseResponseWrapper "创建话题时发生内部服务器错误"
// @Router       /api/v1/community/topics [post]
func (ctrl *TopicController) CreateTopic(c *gin.Context) {
	// 1. 解析 Multipart Form，超出内存限制的部分落到临时磁盘文件
	if err := c.Request.ParseMultipartForm(32 << 20); err != nil {
		response.RespondError(c, http.StatusBadRequest, response.ErrCodeClientInvalidInput, "解析表单数据失败: "+err.Error())
		return
	}

	// 2. 绑定独立表单字段到 DTO
	var req dto.CreateTopicRequest
	if err := c.ShouldBind(&req); err != nil {
		response.RespondError(c, http.StatusBadRequest, response.ErrCodeClientInvalidInput, "绑定请求数据失败: "+err.Error())
		return
	}

	// 3. 获取媒体文件（可选，至多一个）
	var mediaFile *multipart.FileHeader
	if form := c.Request.MultipartForm; form != nil {
		if files := form.File["media"]; len(files) > 0 {
			mediaFile = files[0]
		}
	}

	// 4. 调用服务层处理
	topicVO, err := ctrl.topicService.CreateTopic(c.Request.Context(), &req, mediaFile)
	if err != nil {
		respondServiceError(c, err, "创建话题")
		return
	}

	response.RespondSuccess(c, topicVO, "话题创建成功")
}

// GetTopicDetail 处理获取话题详情的 HTTP 请求
// @Summary      获取指定ID的话题详情 (公开)
// @Description  检索话题的完整视图：话题本体、树形回复、表情聚合，以及当前用户的投票/收藏/订阅状态。除非携带 skip_view=true，访问会计入浏览量。
// @Tags         topics (话题)
// @Accept       json
// @Produce      json
// @Param        topic_id path uint64 true "话题 ID" Format(uint64)
// @Param        skip_view query bool false "本次访问不计入浏览量的客户端声明" default(false)
// @Success      200 {object} vo.TopicDetailResponseWrapper "话题详情检索成功"
// @Failure      400 {object} vo.BaseResponseWrapper "无效的话题 ID 格式"
// @Failure      404 {object} vo.BaseResponseWrapper "话题未找到"
// @Failure      500 {object} vo.BaseResponseWrapper "检索话题详情时发生内部服务器错误"
// @Router       /api/v1/community/topics/{topic_id} [get]
func (ctrl *TopicController) GetTopicDetail(c *gin.Context) {
	topicID, ok := parseIDParam(c, "topic_id")
	if !ok {
		return
	}

	skipView := c.Query("skip_view") == "true"
	actor := actorFromContext(c)

	detail, err := ctrl.topicService.GetTopicDetail(c.Request.Context(), topicID, actor, skipView)
	if err != nil {
		respondServiceError(c, err, "检索话题详情")
		return
	}

	response.RespondSuccess(c, detail, "话题详情检索成功")
}

// UpdateTopic 处理更新话题内容的 HTTP 请求
// @Summary      更新指定ID的话题
// @Description  更新话题的可编辑字段（标题/简介/正文/分类/标签），仅提供的字段会被修改。仅话题作者或管理员可操作。
// @Tags         topics (话题)
// @Accept       json
// @Produce      json
// @Param        topic_id path uint64 true "话题 ID" Format(uint64)
// @Param        request body dto.UpdateTopicRequest true "更新话题请求体"
// @Success      200 {object} vo.BaseResponseWrapper "话题更新成功"
// @Failure      400 {object} vo.BaseResponseWrapper "无效的请求负载"
// @Failure      403 {object} vo.BaseResponseWrapper "没有操作权限"
// @Failure      404 {object} vo.BaseResponseWrapper "话题未找到"
// @Failure      500 {object} vo.BaseResponseWrapper "更新话题时发生内部服务器错误"
// @Router       /api/v1/community/topics/{topic_id} [put]
func (ctrl *TopicController) UpdateTopic(c *gin.Context) {
	topicID, ok := parseIDParam(c, "topic_id")
	if !ok {
		return
	}

	var req dto.UpdateTopicRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondError(c, http.StatusBadRequest, response.ErrCodeClientInvalidInput, "无效的请求负载: "+err.Error())
		return
	}

	if err := ctrl.topicService.UpdateTopic(c.Request.Context(), topicID, actorFromContext(c), &req); err != nil {
		respondServiceError(c, err, "更新话题")
		return
	}

	response.RespondSuccess[any](c, nil, "话题更新成功")
}

// DeleteTopic 处理删除话题的 HTTP 请求
// @Summary      删除指定ID的话题
// @Description  删除话题及其全部回复、投票、表情、收藏、订阅与举报记录。仅话题作者或管理员可操作。
// @Tags         topics (话题)
// @Accept       json
// @Produce      json
// @Param        topic_id path uint64 true "话题 ID" Format(uint64)
// @Success      200 {object} vo.BaseResponseWrapper "话题删除成功"
// @Failure      400 {object} vo.BaseResponseWrapper "无效的话题 ID 格式"
// @Failure      403 {object} vo.BaseResponseWrapper "没有操作权限"
// @Failure      404 {object} vo.BaseResponseWrapper "话题未找到"
// @Failure      500 {object} vo.BaseResponseWrapper "删除话题时发生内部服务器错误"
// @Router       /api/v1/community/topics/{topic_id} [delete]
func (ctrl *TopicController) DeleteTopic(c *gin.Context) {
	topicID, ok := parseIDParam(c, "topic_id")
	if !ok {
		return
	}

	if err := ctrl.topicService.DeleteTopic(c.Request.Context(), topicID, actorFromContext(c)); err != nil {
		respondServiceError(c, err, "删除话题")
		return
	}

	response.RespondSuccess[any](c, nil, "话题删除成功")
}

// SetTopicStatus 处理话题状态流转的 HTTP 请求
// @Summary      流转话题状态
// @Description  将话题流转到目标状态（0:开放, 1:已解决, 2:已关闭），任意状态间转换合法。仅话题作者或管理员可操作。
// @Tags         topics (话题)
// @Accept       json
// @Produce      json
// @Param        topic_id path uint64 true "话题 ID" Format(uint64)
// @Param        request body dto.UpdateTopicStatusRequest true "状态流转请求体"
// @Success      200 {object} vo.BaseResponseWrapper "话题状态更新成功"
// @Failure      400 {object} vo.BaseResponseWrapper "无效的请求负载"
// @Failure      403 {object} vo.BaseResponseWrapper "没有操作权限"
// @Failure      404 {object} vo.BaseResponseWrapper "话题未找到"
// @Failure      500 {object} vo.BaseResponseWrapper "更新话题状态时发生内部服务器错误"
// @Router       /api/v1/community/topics/{topic_id}/status [put]
func (ctrl *TopicController) SetTopicStatus(c *gin.Context) {
	topicID, ok := parseIDParam(c, "topic_id")
	if !ok {
		return
	}

	var req dto.UpdateTopicStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondError(c, http.StatusBadRequest, response.ErrCodeClientInvalidInput, "无效的请求负载: "+err.Error())
		return
	}

	if err := ctrl.topicService.SetTopicStatus(c.Request.Context(), topicID, actorFromContext(c), req.Status); err != nil {
		respondServiceError(c, err, "更新话题状态")
		return
	}

	response.RespondSuccess[any](c, nil, "话题状态更新成功")
}

// ListTopics 处理话题列表查询的 HTTP 请求
// @Summary      获取话题列表 (公开)
// @Description  按条件分页获取话题列表。支持分类/标签/作者/状态/时间范围筛选与关键词搜索，排序支持 latest / views / trending，置顶话题总是排在前面。
// @Tags         topics (话题)
// @Accept       json
// @Produce      json
// @Param        category query string false "按分类筛选"
// @Param        tag query string false "按标签筛选"
// @Param        author_id query string false "按作者筛选"
// @Param        status query int false "按状态筛选 (0:开放, 1:已解决, 2:已关闭)" Enums(0,1,2)
// @Param        keyword query string false "标题/简介关键词搜索"
// @Param        start_date query string false "创建时间下界 (RFC3339格式)" format(date-time)
// @Param        end_date query string false "创建时间上界 (RFC3339格式)" format(date-time)
// @Param        sort query string false "排序方式" Enums(latest,views,trending) default(latest)
// @Param        page query int false "页码 (从1开始)" format(int32) minimum(1) default(1)
// @Param        page_size query int false "每页数量" format(int32) minimum(1) maximum(100) default(20)
// @Success      200 {object} vo.TopicPageResponseWrapper "成功响应，包含话题列表和总记录数"
// @Failure      400 {object} vo.BaseResponseWrapper "无效的查询参数"
// @Failure      500 {object} vo.BaseResponseWrapper "检索话题列表时发生内部服务器错误"
// @Router       /api/v1/community/topics [get]
func (ctrl *TopicController) ListTopics(c *gin.Context) {
	var query dto.TopicListQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		response.RespondError(c, http.StatusBadRequest, response.ErrCodeClientInvalidInput, "无效的查询参数: "+err.Error())
		return
	}

	pageVO, err := ctrl.topicListService.ListTopics(c.Request.Context(), &query)
	if err != nil {
		respondServiceError(c, err, "检索话题列表")
		return
	}

	response.RespondSuccess(c, pageVO, "话题列表获取成功")
}

// GetTopicsTimeline 处理话题时间线查询的 HTTP 请求 (游标分页)
// @Summary      获取话题时间线列表 (公开)
// @Description  按 (创建时间, 话题ID) 游标分页获取话题列表，按时间倒序排列。
// @Tags         topics (话题)
// @Accept       json
// @Produce      json
// @Param        last_created_at query string false "上一页最后一条记录的创建时间 (RFC3339格式)" format(date-time)
// @Param        last_topic_id query uint64 false "上一页最后一条记录的话题ID" format(uint64) minimum(1)
// @Param        category query string false "按分类筛选"
// @Param        keyword query string false "标题关键词搜索"
// @Param        page_size query int false "每页数量" format(int32) minimum(1) maximum(100) default(20)
// @Success      200 {object} vo.TopicTimelinePageResponseWrapper "成功响应，包含话题列表和下一页游标信息"
// @Failure      400 {object} vo.BaseResponseWrapper "无效的查询参数"
// @Failure      500 {object} vo.BaseResponseWrapper "检索话题时间线时发生内部服务器错误"
// @Router       /api/v1/community/topics/timeline [get]
func (ctrl *TopicController) GetTopicsTimeline(c *gin.Context) {
	var query dto.TimelineQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		response.RespondError(c, http.StatusBadRequest, response.ErrCodeClientInvalidInput, "无效的查询参数: "+err.Error())
		return
	}

	timelineVO, err := ctrl.topicListService.GetTopicsTimeline(c.Request.Context(), &query)
	if err != nil {
		respondServiceError(c, err, "检索话题时间线")
		return
	}

	response.RespondSuccess(c, timelineVO, "话题时间线获取成功")
}

// RegisterRoutes 注册 TopicController 的路由
func (ctrl *TopicController) RegisterRoutes(group *gin.RouterGroup) {
	topics := group.Group("/topics")
	{
		topics.POST("", ctrl.CreateTopic)                    // POST   /api/v1/community/topics
		topics.GET("", ctrl.ListTopics)                      // GET    /api/v1/community/topics
		topics.GET("/timeline", ctrl.GetTopicsTimeline)      // GET    /api/v1/community/topics/timeline
		topics.GET("/:topic_id", ctrl.GetTopicDetail)        // GET    /api/v1/community/topics/:topic_id
		topics.PUT("/:topic_id", ctrl.UpdateTopic)           // PUT    /api/v1/community/topics/:topic_id
		topics.DELETE("/:topic_id", ctrl.DeleteTopic)        // DELETE /api/v1/community/topics/:topic_id
		topics.PUT("/:topic_id/status", ctrl.SetTopicStatus) // PUT    /api/v1/community/topics/:topic_id/status
	}
}
