package dto

import (
	"github.com/Xushengqwer/community_service/models/enums"
)

// CreateTopicRequest 定义了创建话题的请求数据结构
// - 添加了 binding 标签用于输入验证
type CreateTopicRequest struct {
	Title       string `json:"title" form:"title" binding:"required,max=255"`              // 话题标题，必填，最大255字符
	Category    string `json:"category" form:"category" binding:"required,max=100"`        // 分类，必填
	Description string `json:"description" form:"description" binding:"omitempty,max=500"` // 简介，可选
	Content     string `json:"content" form:"content" binding:"required"`                  // 正文，必填

	// 标签集合，逗号拼接的自由文本，例如 "budgeting,saving"
	Tags string `json:"tags" form:"tags" binding:"omitempty,max=255"`

	AuthorID       string `json:"author_id" form:"author_id" binding:"required"`                    // 作者ID，必填
	AuthorUsername string `json:"author_username" form:"author_username" binding:"required,max=50"` // 作者用户名，必填
	AuthorAvatar   string `json:"author_avatar" form:"author_avatar" binding:"omitempty,url|uri"`   // 作者头像 URL，可选

	// 媒体类型：0=无, 1=图片, 2=视频。图片与视频互斥。
	// 媒体文件本体作为 multipart/form-data 的文件字段上传，这里只声明类型。
	MediaType enums.MediaType `json:"media_type" form:"media_type" binding:"omitempty,oneof=0 1 2"`
}

// UpdateTopicRequest 定义了更新话题内容的请求数据结构
// - 所有字段均为可选，nil 表示不修改对应字段。
type UpdateTopicRequest struct {
	Title       *string `json:"title" binding:"omitempty,max=255"`
	Description *string `json:"description" binding:"omitempty,max=500"`
	Content     *string `json:"content" binding:"omitempty"`
	Category    *string `json:"category" binding:"omitempty,max=100"`
	Tags        *string `json:"tags" binding:"omitempty,max=255"`
}

// UpdateTopicStatusRequest 定义了话题状态流转的请求数据结构
type UpdateTopicStatusRequest struct {
	Status enums.TopicStatus `json:"status" binding:"oneof=0 1 2"` // 目标状态：0=开放, 1=已解决, 2=已关闭
}

// SetLockedRequest 定义了设置话题锁定标记的请求数据结构（管理端）
type SetLockedRequest struct {
	Locked bool `json:"locked"` // true=锁定（禁止新增回复），false=解锁
}

// SetPinnedRequest 定义了设置话题置顶标记的请求数据结构（管理端）
type SetPinnedRequest struct {
	Pinned bool `json:"pinned"` // true=置顶，false=取消置顶
}
