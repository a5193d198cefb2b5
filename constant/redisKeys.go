package constant

// Redis Key 相关常量 (导出)
const (
	// --- Key 前缀 (用于动态生成 Key) ---

	// TopicViewCountPrefix 是话题浏览量计数器的 Key 前缀。
	// 每个话题会有一个对应的 String 类型的 Key，用于原子性计数。
	// 示例 Key: "topic_view_count:123" (其中 123 是 topicID)
	// Redis 类型: String
	// 示例值: "58" (表示话题 123 的浏览量为 58)
	TopicViewCountPrefix = "topic_view_count:"

	// TopicDetailCacheKeyPrefix 是热门话题详情缓存的 Key 前缀。
	// 示例 Key: "topic_detail:123"
	// Redis 类型: String (存储 JSON 序列化后的详情 VO)
	TopicDetailCacheKeyPrefix = "topic_detail:"

	// --- 固定 Key 名称 (全局使用的 Key) ---

	// TopicsHashKey 是热门话题基础信息 Hash 的 Key 名称。
	// Field 为 topicID，Value 为 JSON 序列化的话题实体快照。
	// Redis 类型: Hash
	TopicsHashKey = "topics"

	// TopicsRankKey 是全局话题浏览量排行榜的 Key 名称。
	// 成员是话题 ID，分数是浏览量，由浏览计数的 Lua 脚本实时维护。
	// Redis 类型: Sorted Set
	TopicsRankKey = "topic_rank"

	// HotTopicsRankKey 是热门话题榜单快照的 Key 名称。
	// 由定时任务从 TopicsRankKey 截取 Top N 生成，供信息流快速读取。
	// Redis 类型: Sorted Set
	HotTopicsRankKey = "hot_topic_rank"

	// TopicsTrendKey 是"近期热度"排行榜的 Key 名称。
	// 成员是话题 ID，分数随投票实时增减（赞 +1 / 取消 -1 / 反对 -1），
	// 用于 listTopics 的 trending 排序。
	// Redis 类型: Sorted Set
	TopicsTrendKey = "topic_trend"
)
