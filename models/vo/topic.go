package vo

import (
	"time"

	"github.com/Xushengqwer/community_service/models/entities"
	"github.com/Xushengqwer/community_service/models/enums"
)

// TopicResponse 定义了话题基础信息的响应数据结构（列表页条目）
type TopicResponse struct {
	ID             uint64            `json:"id"`              // 话题ID
	Title          string            `json:"title"`           // 话题标题
	Category       string            `json:"category"`        // 分类
	Description    string            `json:"description"`     // 简介
	Tags           string            `json:"tags"`            // 标签集合，逗号拼接
	AuthorID       string            `json:"author_id"`       // 作者ID
	AuthorUsername string            `json:"author_username"` // 作者用户名
	AuthorAvatar   string            `json:"author_avatar"`   // 作者头像
	Status         enums.TopicStatus `json:"status"`          // 状态：0=开放, 1=已解决, 2=已关闭
	Locked         bool              `json:"locked"`          // 是否锁定（禁止新增回复）
	Pinned         bool              `json:"pinned"`          // 是否置顶
	ViewCount      int64             `json:"view_count"`      // 浏览量
	LikeCount      int64             `json:"like_count"`      // 点赞净值（赞同数-反对数）
	ReplyCount     int64             `json:"reply_count"`     // 回复数
	MediaType      enums.MediaType   `json:"media_type"`      // 媒体类型：0=无, 1=图片, 2=视频
	MediaURL       string            `json:"media_url"`       // 媒体访问地址
	CreatedAt      time.Time         `json:"created_at"`      // 创建时间
	UpdatedAt      time.Time         `json:"updated_at"`      // 更新时间
}

// TopicDetailVO 定义了话题详情页的完整视图对象。
// 聚合了话题本体、完整的回复树、表情聚合以及当前用户的参与状态。
type TopicDetailVO struct {
	Topic TopicResponse `json:"topic"` // 话题本体

	// 回复树，顶层回复按创建时间升序，子回复嵌套在 Children 中
	Replies []*ReplyVO `json:"replies"`

	// 话题上的表情聚合
	Reactions []*ReactionGroupVO `json:"reactions"`

	// --- 当前用户的参与状态（未登录时均为零值） ---
	UserVote   *enums.VoteType `json:"user_vote"`  // 当前用户对话题的投票，nil 表示未投票
	Bookmarked bool            `json:"bookmarked"` // 当前用户是否已收藏
	Subscribed bool            `json:"subscribed"` // 当前用户是否已订阅
}

// TopicPageVO 定义了话题分页查询的响应结构。
type TopicPageVO struct {
	Topics []*TopicResponse `json:"topics"` // 当前页的话题列表
	Total  int64            `json:"total"`  // 符合条件的总记录数
}

// TopicTimelinePageVO 定义了话题时间线游标分页查询的响应结构。
type TopicTimelinePageVO struct {
	Topics        []*TopicResponse `json:"topics"`          // 当前页的话题列表
	NextCreatedAt *time.Time       `json:"next_created_at"` // 下一页游标：创建时间，nil 表示没有下一页
	NextTopicID   *uint64          `json:"next_topic_id"`   // 下一页游标：话题ID，nil 表示没有下一页
}

// ListHotTopicsByCursorResponse 查看热门话题列表游标加载的响应结构。
type ListHotTopicsByCursorResponse struct {
	Topics     []*TopicResponse `json:"topics"`      // 话题列表
	NextCursor *uint64          `json:"next_cursor"` // 下一个游标，nil 表示无更多数据
}

// NewTopicResponseFromEntity 将话题实体转换为响应 VO。
// replyCount 由调用方批量统计后传入，避免 N+1 查询。
func NewTopicResponseFromEntity(topic *entities.Topic, replyCount int64) *TopicResponse {
	if topic == nil {
		return nil
	}
	return &TopicResponse{
		ID:             topic.ID,
		Title:          topic.Title,
		Category:       topic.Category,
		Description:    topic.Description,
		Tags:           topic.Tags,
		AuthorID:       topic.AuthorID,
		AuthorUsername: topic.AuthorUsername,
		AuthorAvatar:   topic.AuthorAvatar,
		Status:         topic.Status,
		Locked:         topic.Locked,
		Pinned:         topic.Pinned,
		ViewCount:      topic.ViewCount,
		LikeCount:      topic.LikeCount,
		ReplyCount:     replyCount,
		MediaType:      topic.MediaType,
		MediaURL:       topic.MediaURL,
		CreatedAt:      topic.CreatedAt,
		UpdatedAt:      topic.UpdatedAt,
	}
}

// MapTopicsToResponses 将话题实体列表转换为响应 VO 列表。
// replyCounts 是 话题ID -> 回复数 的映射，缺失的条目按 0 处理。
func MapTopicsToResponses(topics []*entities.Topic, replyCounts map[uint64]int64) []*TopicResponse {
	if len(topics) == 0 {
		return []*TopicResponse{} // 返回空切片而不是nil，便于前端处理
	}
	responses := make([]*TopicResponse, 0, len(topics))
	for _, topic := range topics {
		if topic == nil {
			continue
		}
		responses = append(responses, NewTopicResponseFromEntity(topic, replyCounts[topic.ID]))
	}
	return responses
}
