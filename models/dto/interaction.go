package dto

import (
	"github.com/Xushengqwer/community_service/models/enums"
)

// VoteRequest 定义了投票切换的请求数据结构
// - 同向重复投票表示撤销，反向投票表示换票。
type VoteRequest struct {
	VoteType enums.VoteType `json:"vote_type" binding:"required,oneof=1 2"` // 投票方向：1=赞同, 2=反对
}

// ReactionRequest 定义了表情反应切换的请求数据结构
// - 重复提交相同表情表示撤销。
type ReactionRequest struct {
	TargetType enums.TargetType `json:"target_type" binding:"required,oneof=1 2"` // 目标类型：1=话题, 2=回复
	TargetID   uint64           `json:"target_id" binding:"required,gt=0"`        // 目标ID
	Emoji      string           `json:"emoji" binding:"required,max=32"`          // 表情符号本体

	// 用户名快照，聚合查询直接返回反应者名单使用
	UserName string `json:"user_name" binding:"required,max=50"`
}

// ReactionListQuery 定义了查询目标表情聚合的请求数据结构
type ReactionListQuery struct {
	TargetType enums.TargetType `form:"target_type" binding:"required,oneof=1 2"` // 目标类型：1=话题, 2=回复
	TargetID   uint64           `form:"target_id" binding:"required,gt=0"`        // 目标ID
}
