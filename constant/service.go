package constant

// 服务标识，用于链路追踪与日志标注
const (
	ServiceName    = "community_service"
	ServiceVersion = "1.0.0"
)

// 定时任务调度表达式 (cron V3，分钟级精度)
const (
	// SyncViewCountInterval 浏览量从 Redis 回写 MySQL 的调度周期
	SyncViewCountInterval = "*/5 * * * *"

	// HotTopicsCacheCronSpec 热门话题缓存快照的刷新周期
	HotTopicsCacheCronSpec = "*/10 * * * *"
)

// HotTopicsCacheSize 热门话题榜单快照的条目数 (Top N)
const HotTopicsCacheSize int64 = 100

// COSObjectKeyPrefixTopicMedia 话题媒体文件在 COS 中的对象键前缀
const COSObjectKeyPrefixTopicMedia = "community/topics/media/"
