package entities

import (
	"github.com/Xushengqwer/go-common/models/entities"
)

// Reply 回复实体
// - 使用场景: 话题详情页的回复树。数据层存储扁平记录，
//   通过 ParentReplyID 分组在读取侧重建树形视图，
//   避免在内存中维护可能成环的显式树结构。
// - 表名: replies
type Reply struct {
	entities.BaseModel // 嵌入自定义的 BaseModel ,包含 ID, CreatedAt, UpdatedAt, DeletedAt，支持软删除

	// 所属话题ID
	TopicID uint64 `gorm:"type:bigint;not null;index:idx_replies_topic"`

	// 作者ID，UUID格式
	AuthorID string `gorm:"type:char(36);not null;index"`

	// 作者用户名，冗余字段，通过 Kafka 消息异步同步
	AuthorUsername string `gorm:"type:varchar(50);not null"`

	// 作者头像，冗余字段，同上
	AuthorAvatar string `gorm:"type:varchar(255);not null"`

	// 回复内容
	Content string `gorm:"type:text;not null"`

	// 父回复ID，为 NULL 表示顶层回复
	// - 不变量: 若非空，必须指向同一话题下的回复，跨话题嵌套在写入时被拒绝
	// - 数据模型允许任意深度嵌套，一级嵌套在前端渲染为"对回复的评论"
	ParentReplyID *uint64 `gorm:"type:bigint;index:idx_replies_parent"`

	// 最佳答案标记
	// - 不变量: 同一话题下至多一条回复为 true，
	//   由 MarkBestAnswer 在单个事务内先清后设来保证
	BestAnswer bool `gorm:"default:false"`

	// 赞同数，派生缓存，真实来源是 reply_votes 事实表
	Upvotes int64 `gorm:"type:bigint;default:0"`

	// 反对数，派生缓存，同上
	Downvotes int64 `gorm:"type:bigint;default:0"`
}
