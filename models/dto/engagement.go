package dto

// EngagementListQuery 定义了查询用户收藏/订阅话题列表的请求数据结构
type EngagementListQuery struct {
	Page     int `form:"page" binding:"omitempty,gt=0"`              // 页码，从 1 开始
	PageSize int `form:"page_size" binding:"omitempty,gt=0,lte=100"` // 每页数量
}

// RecordViewRequest 定义了记录话题浏览的请求数据结构
// - SkipView 为 true 表示客户端声明本次访问不应计入浏览量
//   （例如同一浏览会话内的刷新），服务端信任该声明直接跳过计数。
type RecordViewRequest struct {
	SkipView bool `json:"skip_view"`
}
