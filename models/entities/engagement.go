package entities

import "time"

// Bookmark 收藏事实行
// - 存在即表示"已收藏"，toggle 取消时物理删除。
// - 唯一索引保证每个 (话题, 用户) 至多一行。
type Bookmark struct {
	ID        uint64 `gorm:"primaryKey;autoIncrement"`
	TopicID   uint64 `gorm:"type:bigint;not null;uniqueIndex:uk_bookmarks"`
	UserID    string `gorm:"type:char(36);not null;uniqueIndex:uk_bookmarks;index:idx_bookmarks_user"`
	CreatedAt time.Time
}

// Subscription 订阅事实行
// - 存在即表示用户希望接收该话题的活动通知。
// - 通知投递本身由下游通知服务消费 Kafka 事件完成，本服务只维护订阅标记。
type Subscription struct {
	ID        uint64 `gorm:"primaryKey;autoIncrement"`
	TopicID   uint64 `gorm:"type:bigint;not null;uniqueIndex:uk_subscriptions;index:idx_subscriptions_topic"`
	UserID    string `gorm:"type:char(36);not null;uniqueIndex:uk_subscriptions;index:idx_subscriptions_user"`
	CreatedAt time.Time
}
