package moderation

import (
	"github.com/Xushengqwer/community_service/models/enums"
)

// Action 受审查的操作类别。
// - 策略只关心"这类操作归谁管"，不关心目标实体当前处于什么状态：
//   状态与锁定只在回复创建路径上生效，不约束管理动作本身。
type Action int

const (
	// ActionEditOwn 创作类操作：编辑/删除自己的内容
	ActionEditOwn Action = iota
	// ActionSetStatus 话题状态流转（开放/已解决/已关闭）
	ActionSetStatus
	// ActionAdmin 管理类操作：置顶、锁定、强制删除任意内容、处理举报
	ActionAdmin
)

// Actor 发起操作的主体（由网关透传的身份信息组装而来）。
type Actor struct {
	UserID string
	Role   enums.UserRole
}

// CanMutate 是所有话题/回复变更共用的纯决策函数。
// - 创作类操作: 内容所有者放行（管理员对任意内容同样放行）。
// - 状态流转: 话题所有者或管理员放行。
// - 管理类操作: 仅管理员放行。
// 返回 false 时调用方应以 myErrors.ErrForbidden 终止本次请求。
func CanMutate(actor Actor, ownerID string, action Action) bool {
	if actor.Role.IsAdmin() {
		return true
	}
	switch action {
	case ActionEditOwn, ActionSetStatus:
		return actor.UserID != "" && actor.UserID == ownerID
	default:
		return false
	}
}
