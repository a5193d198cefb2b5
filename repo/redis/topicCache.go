package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"

	"github.com/Xushengqwer/go-common/core"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/Xushengqwer/community_service/constant"
	"github.com/Xushengqwer/community_service/models/entities"
	"github.com/Xushengqwer/community_service/models/vo"
	myErrors "github.com/Xushengqwer/community_service/myErrors"
)

// Cache 定义了话题相关的缓存操作接口。
// - 目标: 提供 Redis 缓存层，加速热点数据的访问，减轻数据库压力。
// - 包括: 热榜话题列表缓存、话题详情缓存、排名查询等。
type Cache interface {
	// GetTopicRank 获取指定话题在热榜 ZSet (`HotTopicsRankKey`) 中的排名（0-based, 降序）。
	// - 返回 -1 表示话题不在榜单中。
	GetTopicRank(ctx context.Context, topicID uint64) (int64, error)

	// GetTopicsByRange 从热榜 ZSet 获取指定排名范围内的话题 ID 列表。
	// - 用于分页加载热门话题列表，start/stop 是基于 0 的排名索引。
	GetTopicsByRange(ctx context.Context, start, stop int64) ([]uint64, error)

	// GetTopics 从 Redis Hash (`TopicsHashKey`) 中批量获取话题实体。
	// - 返回的话题实体中 ViewCount 反映的是缓存刷新时的快照值。
	GetTopics(ctx context.Context, topicIDs []uint64) ([]*entities.Topic, error)

	// GetTopicDetail 从 Redis 获取单个话题详情视图。
	// - 缓存未命中时返回 myErrors.ErrCacheMiss，上层服务需要处理回源。
	GetTopicDetail(ctx context.Context, topicID uint64) (*vo.TopicDetailVO, error)
}

type cacheImpl struct {
	redisClient *redis.Client
	logger      *core.ZapLogger
}

// NewCache 是 cacheImpl 的构造函数。
func NewCache(redisClient *redis.Client, logger *core.ZapLogger) Cache {
	return &cacheImpl{
		redisClient: redisClient,
		logger:      logger,
	}
}

// GetTopicRank 实现获取话题排名。
// 排名是 0-based，分数越高排名越靠前 (ZREVRANK)。
func (c *cacheImpl) GetTopicRank(ctx context.Context, topicID uint64) (int64, error) {
	key := constant.HotTopicsRankKey
	member := strconv.FormatUint(topicID, 10)

	rank, err := c.redisClient.ZRevRank(ctx, key, member).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			c.logger.Info("话题不在热榜 ZSet 中 (或 ZSet 本身不存在)",
				zap.Uint64("topicID", topicID),
				zap.String("key", key),
			)
			return -1, nil
		}
		c.logger.Error("从 Redis 获取话题排名失败",
			zap.Error(err),
			zap.Uint64("topicID", topicID),
			zap.String("key", key),
		)
		return -1, fmt.Errorf("获取话题(ID: %d)在热榜(key: %s)中的排名失败: %w", topicID, key, err)
	}

	return rank, nil
}

// GetTopicsByRange 实现按排名范围获取话题 ID。
// start 和 stop 是 0-based 的排名索引，按分数从高到低排列。
func (c *cacheImpl) GetTopicsByRange(ctx context.Context, start, stop int64) ([]uint64, error) {
	key := constant.HotTopicsRankKey

	if start < 0 {
		c.logger.Warn("GetTopicsByRange: start 参数为负数，视为无效请求，返回空列表。",
			zap.Int64("start", start),
			zap.Int64("stop", stop),
		)
		return []uint64{}, nil
	}
	if start > stop && stop != -1 {
		// stop 为 -1 表示到 ZSet 末尾，此时 start > stop 是可能的
		return []uint64{}, nil
	}

	idStrs, err := c.redisClient.ZRevRange(ctx, key, start, stop).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return []uint64{}, nil
		}
		c.logger.Error("从 Redis ZRevRange 按排名范围获取话题 ID 失败",
			zap.Error(err),
			zap.Int64("start", start),
			zap.Int64("stop", stop),
			zap.String("key", key),
		)
		return nil, fmt.Errorf("获取排名 %d-%d 的话题 ID 失败 (key: %s): %w", start, stop, key, err)
	}

	ids := make([]uint64, 0, len(idStrs))
	for _, idStr := range idStrs {
		id, parseErr := strconv.ParseUint(idStr, 10, 64)
		if parseErr != nil {
			c.logger.Warn("解析 ZSet 中的话题 ID 字符串失败，已跳过该 ID。",
				zap.Error(parseErr),
				zap.String("idStr", idStr),
				zap.String("rankKey", key),
			)
			continue
		}
		ids = append(ids, id)
	}

	return ids, nil
}

// GetTopics 从 Redis Hash 中批量获取话题实体。
func (c *cacheImpl) GetTopics(ctx context.Context, topicIDs []uint64) ([]*entities.Topic, error) {
	if len(topicIDs) == 0 {
		return []*entities.Topic{}, nil
	}

	hashKey := constant.TopicsHashKey
	fields := make([]string, len(topicIDs))
	for i, id := range topicIDs {
		fields[i] = strconv.FormatUint(id, 10)
	}

	values, err := c.redisClient.HMGet(ctx, hashKey, fields...).Result()
	if err != nil {
		c.logger.Error("从 Redis Hash 批量获取话题失败 (HMGET 执行错误)",
			zap.Error(err),
			zap.String("hashKey", hashKey),
			zap.Int("idCount", len(topicIDs)),
		)
		return nil, fmt.Errorf("批量获取话题缓存 (key: %s) 失败: %w", hashKey, err)
	}

	topics := make([]*entities.Topic, 0, len(topicIDs))
	cacheMissCount := 0
	unmarshalErrorCount := 0

	for i, val := range values {
		requestedTopicID := topicIDs[i]

		if val == nil {
			cacheMissCount++
			continue
		}

		jsonStr, ok := val.(string)
		if !ok {
			unmarshalErrorCount++
			c.logger.Error("话题 Hash 缓存中的值类型不是预期的字符串，跳过该话题",
				zap.Uint64("topicID", requestedTopicID),
				zap.String("hashKey", hashKey),
			)
			continue
		}

		var topic entities.Topic
		if jsonErr := json.Unmarshal([]byte(jsonStr), &topic); jsonErr != nil {
			unmarshalErrorCount++
			c.logger.Error("反序列化话题 Hash 缓存数据失败，跳过该话题",
				zap.Error(jsonErr),
				zap.Uint64("topicID", requestedTopicID),
				zap.String("hashKey", hashKey),
			)
			continue
		}

		topics = append(topics, &topic)
	}

	c.logger.Debug("批量获取话题 Hash 缓存完成",
		zap.String("hashKey", hashKey),
		zap.Int("requested_id_count", len(topicIDs)),
		zap.Int("found_in_cache_count", len(topics)),
		zap.Int("cache_miss_count", cacheMissCount),
		zap.Int("unmarshal_error_count", unmarshalErrorCount),
	)
	return topics, nil
}

// GetTopicDetail 从 Redis 获取单个话题详情 (vo.TopicDetailVO)。
// - 缓存未命中时返回 myErrors.ErrCacheMiss，上层服务应处理回源。
// - 缓存的是不含用户个人状态的共享视图，个人状态由服务层另行组装。
func (c *cacheImpl) GetTopicDetail(ctx context.Context, topicID uint64) (*vo.TopicDetailVO, error) {
	key := fmt.Sprintf("%s%d", constant.TopicDetailCacheKeyPrefix, topicID)

	jsonData, err := c.redisClient.Get(ctx, key).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			c.logger.Info("话题详情 VO 缓存未命中", zap.String("key", key), zap.Uint64("topicID", topicID))
			return nil, myErrors.ErrCacheMiss
		}
		c.logger.Error("从 Redis 获取话题详情 VO 失败 (GET 命令执行错误)",
			zap.Error(err),
			zap.String("key", key),
			zap.Uint64("topicID", topicID),
		)
		return nil, fmt.Errorf("获取话题(ID: %d)详情缓存 (key: %s) 失败: %w", topicID, key, err)
	}

	var topicDetailVO vo.TopicDetailVO
	if jsonErr := json.Unmarshal([]byte(jsonData), &topicDetailVO); jsonErr != nil {
		c.logger.Error("反序列化话题详情 VO 缓存数据失败",
			zap.Error(jsonErr),
			zap.String("key", key),
			zap.Uint64("topicID", topicID),
		)
		return nil, fmt.Errorf("解析话题(ID: %d)详情缓存 (key: %s) 数据失败: %w", topicID, key, jsonErr)
	}

	return &topicDetailVO, nil
}
