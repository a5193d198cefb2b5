package dto

import (
	"time"

	"github.com/Xushengqwer/community_service/models/enums"
)

// TopicSort 话题列表的排序方式
type TopicSort string

const (
	TopicSortLatest   TopicSort = "latest"   // 按创建时间倒序（默认）
	TopicSortViews    TopicSort = "views"    // 按浏览量倒序
	TopicSortTrending TopicSort = "trending" // 按热度分倒序（投票驱动，数据来自 Redis 热度榜）
)

// IsValid 校验排序方式是否合法，空值按 latest 处理。
func (s TopicSort) IsValid() bool {
	switch s {
	case "", TopicSortLatest, TopicSortViews, TopicSortTrending:
		return true
	default:
		return false
	}
}

// TopicListQuery 定义了按条件分页查询话题列表的请求数据结构
// - 所有筛选字段均为可选，nil 表示不按该维度筛选。
type TopicListQuery struct {
	Category  *string            `form:"category"`                                           // 按分类筛选
	Tag       *string            `form:"tag"`                                                // 按标签筛选（LIKE 匹配逗号拼接的标签串）
	AuthorID  *string            `form:"author_id"`                                          // 按作者筛选
	Status    *enums.TopicStatus `form:"status" binding:"omitempty,oneof=0 1 2"`             // 按状态筛选
	Keyword   *string            `form:"keyword"`                                            // 标题/简介关键词搜索
	StartDate *time.Time         `form:"start_date" time_format:"2006-01-02T15:04:05Z07:00"` // 创建时间下界
	EndDate   *time.Time         `form:"end_date" time_format:"2006-01-02T15:04:05Z07:00"`   // 创建时间上界

	Sort     TopicSort `form:"sort" binding:"omitempty,oneof=latest views trending"` // 排序方式，默认 latest
	Page     int       `form:"page" binding:"omitempty,gt=0"`                        // 页码，从 1 开始
	PageSize int       `form:"page_size" binding:"omitempty,gt=0,lte=100"`           // 每页数量
}

// TimelineQuery 定义了按时间线游标分页查询话题的请求数据结构
// - 游标为 (创建时间, 话题ID) 二元组，两者必须同时提供或同时省略。
type TimelineQuery struct {
	LastCreatedAt *time.Time `form:"last_created_at" time_format:"2006-01-02T15:04:05Z07:00"` // 上一页最后一条的创建时间
	LastTopicID   *uint64    `form:"last_topic_id"`                                           // 上一页最后一条的话题ID
	Category      *string    `form:"category"`                                                // 按分类筛选
	Keyword       *string    `form:"keyword"`                                                 // 标题关键词搜索
	PageSize      int        `form:"page_size" binding:"omitempty,gt=0,lte=100"`              // 每页数量
}
