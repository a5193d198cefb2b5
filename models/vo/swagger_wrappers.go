package vo

// --- 用于成功响应且包含具体 Data 的包装器 ---

// TopicResponseWrapper 对应 response.APIResponse[vo.TopicResponse]
type TopicResponseWrapper struct {
	Code    int           `json:"code" example:"0"`
	Message string        `json:"message,omitempty" example:"success"`
	Data    TopicResponse `json:"data"`
}

// TopicDetailResponseWrapper 对应 response.APIResponse[vo.TopicDetailVO]
type TopicDetailResponseWrapper struct {
	Code    int           `json:"code" example:"0"`
	Message string        `json:"message,omitempty" example:"success"`
	Data    TopicDetailVO `json:"data"`
}

// TopicPageResponseWrapper 对应 response.APIResponse[vo.TopicPageVO]
type TopicPageResponseWrapper struct {
	Code    int         `json:"code" example:"0"`
	Message string      `json:"message,omitempty" example:"success"`
	Data    TopicPageVO `json:"data"`
}

// TopicTimelinePageResponseWrapper 对应 response.APIResponse[vo.TopicTimelinePageVO]
type TopicTimelinePageResponseWrapper struct {
	Code    int                 `json:"code" example:"0"`
	Message string              `json:"message,omitempty" example:"success"`
	Data    TopicTimelinePageVO `json:"data"`
}

// ListHotTopicsByCursorResponseWrapper 对应 response.APIResponse[vo.ListHotTopicsByCursorResponse]
type ListHotTopicsByCursorResponseWrapper struct {
	Code    int                           `json:"code" example:"0"`
	Message string                        `json:"message,omitempty" example:"success"`
	Data    ListHotTopicsByCursorResponse `json:"data"`
}

// ReplyResponseWrapper 对应 response.APIResponse[vo.ReplyVO]
type ReplyResponseWrapper struct {
	Code    int     `json:"code" example:"0"`
	Message string  `json:"message,omitempty" example:"success"`
	Data    ReplyVO `json:"data"`
}

// VoteStateResponseWrapper 对应 response.APIResponse[vo.VoteStateVO]
type VoteStateResponseWrapper struct {
	Code    int         `json:"code" example:"0"`
	Message string      `json:"message,omitempty" example:"success"`
	Data    VoteStateVO `json:"data"`
}

// ToggleStateResponseWrapper 对应 response.APIResponse[vo.ToggleStateVO]
type ToggleStateResponseWrapper struct {
	Code    int           `json:"code" example:"0"`
	Message string        `json:"message,omitempty" example:"success"`
	Data    ToggleStateVO `json:"data"`
}

// ReactionGroupListResponseWrapper 对应 response.APIResponse[[]vo.ReactionGroupVO]
type ReactionGroupListResponseWrapper struct {
	Code    int                `json:"code" example:"0"`
	Message string             `json:"message,omitempty" example:"success"`
	Data    []*ReactionGroupVO `json:"data"`
}

// ReportPageResponseWrapper 对应 response.APIResponse[vo.ReportPageVO]
type ReportPageResponseWrapper struct {
	Code    int          `json:"code" example:"0"`
	Message string       `json:"message,omitempty" example:"success"`
	Data    ReportPageVO `json:"data"`
}

// --- 用于错误响应 或 简单成功响应（只有 Code 和 Message） ---

// BaseResponseWrapper 代表一个只包含 Code 和 Message 的响应。
// 适用于错误情况（RespondError 返回时 Data 为 nil 且 omitempty）
// 或某些成功操作（如 DELETE）可能也只返回 Code 和 Message。
type BaseResponseWrapper struct {
	Code    int    `json:"code" example:"0"`          // 成功时为 0, 错误时为具体错误码
	Message string `json:"message" example:"success"` // 成功或错误消息
}
