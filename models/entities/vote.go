package entities

import (
	"time"

	"github.com/Xushengqwer/community_service/models/enums"
)

// TopicVote 话题投票事实行
//   - 每个 (话题, 用户) 至多一行，由唯一索引 uk_topic_votes 作为硬约束兜底：
//     同一用户的两个并发首投请求即使都通过了应用层存在性检查，
//     也只会有一个 INSERT 成功，另一个收到重复键错误。
//   - 注意: 事实行使用硬删除（toggle 取消投票时物理删除），
//     不嵌入 BaseModel，否则软删除残留行会让唯一索引失去意义。
type TopicVote struct {
	ID        uint64         `gorm:"primaryKey;autoIncrement"`
	TopicID   uint64         `gorm:"type:bigint;not null;uniqueIndex:uk_topic_votes"`
	UserID    string         `gorm:"type:char(36);not null;uniqueIndex:uk_topic_votes"`
	VoteType  enums.VoteType `gorm:"type:int;not null"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// ReplyVote 回复投票事实行，约束语义与 TopicVote 一致
type ReplyVote struct {
	ID        uint64         `gorm:"primaryKey;autoIncrement"`
	ReplyID   uint64         `gorm:"type:bigint;not null;uniqueIndex:uk_reply_votes"`
	UserID    string         `gorm:"type:char(36);not null;uniqueIndex:uk_reply_votes"`
	VoteType  enums.VoteType `gorm:"type:int;not null"`
	CreatedAt time.Time
	UpdatedAt time.Time
}
