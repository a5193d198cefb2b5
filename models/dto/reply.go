package dto

// CreateReplyRequest 定义了发表回复的请求数据结构
type CreateReplyRequest struct {
	Content string `json:"content" binding:"required"` // 回复内容，必填

	// 父回复ID，省略表示顶层回复。
	// - 必须指向同一话题下的回复，跨话题嵌套会被拒绝。
	ParentReplyID *uint64 `json:"parent_reply_id" binding:"omitempty,gt=0"`

	AuthorID       string `json:"author_id" binding:"required"`              // 作者ID，必填
	AuthorUsername string `json:"author_username" binding:"required,max=50"` // 作者用户名，必填
	AuthorAvatar   string `json:"author_avatar" binding:"omitempty,url|uri"` // 作者头像 URL，可选
}

// UpdateReplyRequest 定义了编辑回复正文的请求数据结构
type UpdateReplyRequest struct {
	Content string `json:"content" binding:"required"` // 新的回复内容，必填
}
