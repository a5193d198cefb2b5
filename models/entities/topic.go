package entities

import (
	"github.com/Xushengqwer/go-common/models/entities"

	"github.com/Xushengqwer/community_service/models/enums"
)

// Topic 话题实体（社区讨论的顶层主题帖）
// - 使用场景: 社区信息流列表页与话题详情页的数据载体
// - 表名: topics (GORM 默认使用结构体名复数形式)
type Topic struct {
	entities.BaseModel // 嵌入自定义的 BaseModel ,包含 ID, CreatedAt, UpdatedAt, DeletedAt，支持软删除

	// 标题，必填，最大长度255个字符
	// - GORM 标签: type:varchar(255) 指定数据库类型，not null 表示非空
	Title string `gorm:"type:varchar(255);not null"`

	// 分类，自由文本标签（例如 "Finance"、"Career"）
	// - 列表页按分类筛选时命中 idx_topics_category 索引
	Category string `gorm:"type:varchar(100);not null;index:idx_topics_category"`

	// 简介，列表页展示的一句话描述
	Description string `gorm:"type:varchar(500)"`

	// 正文，富文本内容，支持多行文本，存储为 TEXT 类型
	Content string `gorm:"type:text;not null"`

	// 标签集合，逗号拼接的自由文本（例如 "budgeting,saving"）
	// - 与上游教育平台保持一致的存储形式，筛选时使用 LIKE 匹配
	Tags string `gorm:"type:varchar(255)"`

	// 作者ID，关联用户服务，UUID格式（36个字符）
	AuthorID string `gorm:"type:char(36);not null;index"`

	// 作者用户名，冗余字段
	// - 设计意图: 列表页直接展示作者信息，避免跨服务调用
	// - 注意: 数据来源于用户服务，变更时通过 Kafka 消息异步同步
	AuthorUsername string `gorm:"type:varchar(50);not null"`

	// 作者头像，冗余字段，同上通过消息队列同步
	AuthorAvatar string `gorm:"type:varchar(255);not null"`

	// 生命周期状态，枚举类型：0=开放, 1=已解决, 2=已关闭
	// - 与 Locked 相互独立，任意状态转换都是合法的
	Status enums.TopicStatus `gorm:"type:int;default:0"`

	// 锁定标记，锁定后禁止新增回复，但不影响投票/表情/收藏等参与行为
	Locked bool `gorm:"default:false"`

	// 置顶标记，仅管理员可切换
	Pinned bool `gorm:"default:false"`

	// 浏览量，派生缓存
	// - 真实来源是 Redis 中的浏览计数，由定时任务批量回写到该字段
	ViewCount int64 `gorm:"type:bigint;default:0"`

	// 点赞净值（赞同数减去反对数），派生缓存
	// - 真实来源是 topic_votes 事实表，所有变更与事实行在同一事务内以原子增量维护
	LikeCount int64 `gorm:"type:bigint;default:0"`

	// 媒体类型，枚举类型：0=无, 1=图片, 2=视频（图片与视频互斥）
	MediaType enums.MediaType `gorm:"type:int;default:0"`

	// 媒体URL，媒体文件上传到 COS 后返回的公开访问地址
	MediaURL string `gorm:"type:varchar(1023)"`

	// 媒体在 COS 中的 ObjectKey，删除话题时清理对象存储使用
	MediaObjectKey string `gorm:"type:varchar(512)"`
}
