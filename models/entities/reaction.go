package entities

import (
	"time"

	"github.com/Xushengqwer/community_service/models/enums"
)

// Reaction 表情反应事实行
//   - 键为 (目标类型, 目标ID, 用户, 表情) 四元组，唯一索引 uk_reactions 兜底：
//     一个用户可以对同一目标持有多个不同表情，但同一表情至多一条。
//   - toggle 语义: 再次提交相同表情即撤销（硬删除），没有换票 (flip) 的情况。
type Reaction struct {
	ID         uint64           `gorm:"primaryKey;autoIncrement"`
	TargetType enums.TargetType `gorm:"type:int;not null;uniqueIndex:uk_reactions"`
	TargetID   uint64           `gorm:"type:bigint;not null;uniqueIndex:uk_reactions"`
	UserID     string           `gorm:"type:char(36);not null;uniqueIndex:uk_reactions"`

	// 表情符号本体，例如 "👍"。varchar(32) 以兼容多码点 emoji
	Emoji string `gorm:"type:varchar(32);not null;uniqueIndex:uk_reactions"`

	// 用户名快照，聚合查询直接返回反应者名单，避免跨服务查询
	UserName string `gorm:"type:varchar(50);not null"`

	CreatedAt time.Time
}
