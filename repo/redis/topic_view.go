package redis

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/Xushengqwer/go-common/core"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/Xushengqwer/community_service/config"
	"github.com/Xushengqwer/community_service/constant"
)

// TopicViewRepository 定义了与话题浏览计数相关的 Redis 操作接口。
// - Redis 中的计数器是浏览量的权威来源，MySQL 的 view_count 列只是
//   由定时任务批量回写的展示缓存。
// - 浏览去重由客户端声明 (skipView 标记) 决定，服务端不做额外判定，
//   同一次浏览会话内的重复请求由调用方自行携带标记跳过。
type TopicViewRepository interface {
	// IncrementViewCount 原子性地增加话题浏览量，并同步刷新其在浏览排行 ZSet 中的分数。
	// - Lua 脚本保证计数器与 ZSet 的更新不会出现中间状态。
	IncrementViewCount(ctx context.Context, topicID uint64) error

	// GetViewCount 读取话题的当前浏览量。Key 不存在时返回 0。
	GetViewCount(ctx context.Context, topicID uint64) (int64, error)

	// GetAllViewCounts 使用 SCAN 命令分批获取 Redis 中所有话题的浏览量计数。
	// - 作为定时任务回写 MySQL 的数据源；SCAN 避免 KEYS 阻塞，MGET 批量取值。
	GetAllViewCounts(ctx context.Context) (map[uint64]int64, error)
}

type topicViewRepository struct {
	redisClient *redis.Client
	logger      *core.ZapLogger
	viewSyncCfg config.ViewSyncConfig
}

// NewTopicViewRepository 创建 TopicViewRepository 实例。
func NewTopicViewRepository(redisClient *redis.Client, logger *core.ZapLogger, viewSyncCfg config.ViewSyncConfig) TopicViewRepository {
	return &topicViewRepository{
		redisClient: redisClient,
		logger:      logger,
		viewSyncCfg: viewSyncCfg,
	}
}

// incrementViewScript 原子性地自增浏览计数并把最新值写入排行 ZSet。
var incrementViewScript = redis.NewScript(`
    local viewCount = redis.call("INCR", KEYS[1])
    redis.call("ZADD", KEYS[2], viewCount, ARGV[1])
    return viewCount
`)

// IncrementViewCount 实现浏览量的原子自增。
func (r *topicViewRepository) IncrementViewCount(ctx context.Context, topicID uint64) error {
	viewCountKey := fmt.Sprintf("%s%d", constant.TopicViewCountPrefix, topicID)

	_, err := incrementViewScript.Run(ctx, r.redisClient,
		[]string{viewCountKey, constant.TopicsRankKey}, topicID).Result()
	if err != nil {
		r.logger.Error("Lua 脚本执行失败：增加浏览量和更新排名",
			zap.Error(err),
			zap.Uint64("topicID", topicID),
		)
		return fmt.Errorf("原子性增加浏览量失败 (TopicID: %d): %w", topicID, err)
	}

	return nil
}

// GetViewCount 实现单个话题浏览量的读取。
func (r *topicViewRepository) GetViewCount(ctx context.Context, topicID uint64) (int64, error) {
	viewCountKey := fmt.Sprintf("%s%d", constant.TopicViewCountPrefix, topicID)

	val, err := r.redisClient.Get(ctx, viewCountKey).Result()
	if err != nil {
		if err == redis.Nil {
			return 0, nil
		}
		return 0, fmt.Errorf("读取话题浏览量失败 (TopicID: %d): %w", topicID, err)
	}

	count, parseErr := strconv.ParseInt(val, 10, 64)
	if parseErr != nil {
		r.logger.Error("解析话题浏览量失败", zap.String("key", viewCountKey), zap.String("value", val))
		return 0, fmt.Errorf("解析话题浏览量失败 (TopicID: %d): %w", topicID, parseErr)
	}
	return count, nil
}

// GetAllViewCounts 使用 SCAN 命令安全地迭代并获取所有话题的浏览量。
// 主要服务于定时任务，将 Redis 中的全量浏览数据回写到 MySQL。
func (r *topicViewRepository) GetAllViewCounts(ctx context.Context) (map[uint64]int64, error) {
	viewCounts := make(map[uint64]int64)
	var cursor uint64 = 0
	matchPattern := constant.TopicViewCountPrefix + "*"

	scanCount := r.viewSyncCfg.ScanBatchSize
	if scanCount <= 0 {
		scanCount = 1000
		r.logger.Warn("GetAllViewCounts: 配置中的 ScanBatchSize 无效或为零，使用默认值。",
			zap.Int64("defaultScanBatchSize", scanCount),
			zap.Int64("configuredScanBatchSize", r.viewSyncCfg.ScanBatchSize),
		)
	}

	r.logger.Info("开始扫描 Redis 获取所有话题浏览量",
		zap.String("pattern", matchPattern),
		zap.Int64("scan_batch_size", scanCount),
	)
	startTime := time.Now()

	for {
		keys, nextCursor, err := r.redisClient.Scan(ctx, cursor, matchPattern, scanCount).Result()
		if err != nil {
			r.logger.Error("执行 Redis SCAN 命令失败",
				zap.Error(err),
				zap.Uint64("cursor", cursor),
				zap.String("pattern", matchPattern),
			)
			return nil, fmt.Errorf("扫描 Redis Keys 失败 (模式: %s): %w", matchPattern, err)
		}

		if len(keys) > 0 {
			values, mgetErr := r.redisClient.MGet(ctx, keys...).Result()
			if mgetErr != nil {
				r.logger.Error("执行 Redis MGET 命令批量获取浏览量失败",
					zap.Error(mgetErr),
					zap.Strings("keys_in_batch", keys),
				)
				return nil, fmt.Errorf("批量获取浏览量值失败 (%d keys): %w", len(keys), mgetErr)
			}

			for i, key := range keys {
				topicIDStr := strings.TrimPrefix(key, constant.TopicViewCountPrefix)
				topicID, parseErr := strconv.ParseUint(topicIDStr, 10, 64)
				if parseErr != nil {
					r.logger.Error("从 Redis Key 解析 TopicID 失败，已跳过该 Key。",
						zap.Error(parseErr),
						zap.String("key", key),
					)
					continue
				}

				viewCount := int64(0)
				if i < len(values) && values[i] != nil {
					if valueStr, ok := values[i].(string); ok && valueStr != "" {
						parsedCount, parseCountErr := strconv.ParseInt(valueStr, 10, 64)
						if parseCountErr != nil {
							r.logger.Error("解析 Redis 中的浏览量值失败，该话题浏览量将视为 0。",
								zap.Error(parseCountErr),
								zap.String("key", key),
								zap.String("value_str", valueStr),
							)
						} else {
							viewCount = parsedCount
						}
					}
				} else {
					r.logger.Warn("MGET 未能获取到 Key 的值 (可能已删除)，该话题浏览量将视为 0。",
						zap.String("key", key),
					)
				}
				viewCounts[topicID] = viewCount
			}
		}

		cursor = nextCursor
		if cursor == 0 {
			break
		}
	}

	duration := time.Since(startTime)
	r.logger.Info("完成扫描 Redis 话题浏览量",
		zap.Int("total_unique_topics_found", len(viewCounts)),
		zap.Duration("duration", duration),
	)
	return viewCounts, nil
}
