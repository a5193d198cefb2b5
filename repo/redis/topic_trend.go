package redis

import (
	"context"
	"fmt"
	"strconv"

	"github.com/Xushengqwer/go-common/core"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/Xushengqwer/community_service/constant"
)

// TopicTrendRepository 定义了话题热度分的 Redis 操作接口。
// 热度分是一个独立于浏览量的 ZSet：投票行为实时调整分数，
// trending 排序的列表查询直接按该 ZSet 的降序取 ID。
type TopicTrendRepository interface {
	// AdjustTrendScore 按增量调整话题的热度分 (ZINCRBY)。
	// - 赞同 +1、撤销 -1、换票 ±2，与净赞数变化保持同一口径。
	AdjustTrendScore(ctx context.Context, topicID uint64, delta int64) error

	// GetTopTrending 按热度分降序获取前 limit 个话题 ID。
	GetTopTrending(ctx context.Context, offset, limit int64) ([]uint64, error)

	// RemoveTopic 将话题从热度榜中移除（话题删除时调用）。
	RemoveTopic(ctx context.Context, topicID uint64) error
}

type topicTrendRepository struct {
	redisClient *redis.Client
	logger      *core.ZapLogger
}

// NewTopicTrendRepository 创建 TopicTrendRepository 实例。
func NewTopicTrendRepository(redisClient *redis.Client, logger *core.ZapLogger) TopicTrendRepository {
	return &topicTrendRepository{
		redisClient: redisClient,
		logger:      logger,
	}
}

// AdjustTrendScore 实现热度分的增量调整。
func (r *topicTrendRepository) AdjustTrendScore(ctx context.Context, topicID uint64, delta int64) error {
	if delta == 0 {
		return nil
	}
	member := strconv.FormatUint(topicID, 10)
	if err := r.redisClient.ZIncrBy(ctx, constant.TopicsTrendKey, float64(delta), member).Err(); err != nil {
		r.logger.Error("调整话题热度分失败",
			zap.Uint64("topicID", topicID),
			zap.Int64("delta", delta),
			zap.Error(err),
		)
		return fmt.Errorf("调整话题热度分失败 (TopicID: %d): %w", topicID, err)
	}
	return nil
}

// GetTopTrending 实现热度榜前 N 个话题 ID 的读取。
func (r *topicTrendRepository) GetTopTrending(ctx context.Context, offset, limit int64) ([]uint64, error) {
	if limit <= 0 {
		return []uint64{}, nil
	}

	members, err := r.redisClient.ZRevRange(ctx, constant.TopicsTrendKey, offset, offset+limit-1).Result()
	if err != nil {
		r.logger.Error("读取话题热度榜失败", zap.Error(err))
		return nil, fmt.Errorf("读取话题热度榜失败: %w", err)
	}

	ids := make([]uint64, 0, len(members))
	for _, member := range members {
		id, parseErr := strconv.ParseUint(member, 10, 64)
		if parseErr != nil {
			r.logger.Warn("热度榜成员无法解析为话题 ID，已跳过",
				zap.String("member", member),
				zap.Error(parseErr),
			)
			continue
		}
		ids = append(ids, id)
	}
	return ids, nil
}

// RemoveTopic 实现话题从热度榜的移除。
func (r *topicTrendRepository) RemoveTopic(ctx context.Context, topicID uint64) error {
	member := strconv.FormatUint(topicID, 10)
	if err := r.redisClient.ZRem(ctx, constant.TopicsTrendKey, member).Err(); err != nil {
		r.logger.Error("从热度榜移除话题失败", zap.Uint64("topicID", topicID), zap.Error(err))
		return fmt.Errorf("从热度榜移除话题失败 (TopicID: %d): %w", topicID, err)
	}
	return nil
}
