package events

import "time"

// NotificationType 社区活动通知的类别
type NotificationType string

const (
	// NotificationNewReply 话题下出现新回复
	NotificationNewReply NotificationType = "community.new_reply"
	// NotificationStatusChanged 话题状态发生流转
	NotificationStatusChanged NotificationType = "community.status_changed"
	// NotificationBestAnswer 回复被标记为最佳答案
	NotificationBestAnswer NotificationType = "community.best_answer"
)

// NotificationEvent 社区活动通知事件。
// - 发布到 CommunityNotification 主题，由下游通知服务消费后投递给订阅者。
// - 本服务只负责扇出事件，不关心通知的最终送达方式。
type NotificationEvent struct {
	EventID   string           `json:"event_id"`  // 事件唯一标识
	Timestamp time.Time        `json:"timestamp"` // 事件产生时间
	Type      NotificationType `json:"type"`      // 通知类别

	TopicID    uint64  `json:"topic_id"`           // 相关话题ID
	TopicTitle string  `json:"topic_title"`        // 话题标题快照，通知文案直接使用
	ReplyID    *uint64 `json:"reply_id,omitempty"` // 相关回复ID（新回复/最佳答案时携带）

	ActorID       string `json:"actor_id"`       // 触发者ID
	ActorUsername string `json:"actor_username"` // 触发者用户名快照

	// 接收者ID列表（话题订阅者，已剔除触发者本人）
	RecipientIDs []string `json:"recipient_ids"`
}

// UserProfileUpdatedEvent 用户资料变更事件。
// - 由用户服务发布到 UserProfileUpdated 主题，
//   本服务消费后刷新话题/回复/表情上的作者信息快照。
type UserProfileUpdatedEvent struct {
	EventID   string    `json:"event_id"`
	Timestamp time.Time `json:"timestamp"`

	UserID   string `json:"user_id"`  // 变更的用户ID
	Username string `json:"username"` // 最新用户名
	Avatar   string `json:"avatar"`   // 最新头像URL
}
