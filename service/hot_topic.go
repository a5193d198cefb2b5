package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Xushengqwer/go-common/core"
	"go.uber.org/zap"

	"github.com/Xushengqwer/community_service/models/vo"
	"github.com/Xushengqwer/community_service/repo/redis"
)

// HotTopicServiceInterface 定义了热门话题查询的业务逻辑接口。
// 热榜数据来自定时任务刷新的 Redis 快照，查询路径完全不回 MySQL。
type HotTopicServiceInterface interface {
	// GetHotTopicsByCursor 以游标方式加载热门话题列表。
	// - lastTopicID 为 nil 表示首次加载；游标已掉出榜单时返回错误提示客户端刷新。
	GetHotTopicsByCursor(ctx context.Context, lastTopicID *uint64, limit int) (*vo.ListHotTopicsByCursorResponse, error)

	// GetHotTopicDetail 从缓存获取热门话题详情（共享视图，不含用户个人状态）。
	// - 缓存未命中时返回 myErrors.ErrCacheMiss，由上层回源数据库路径。
	GetHotTopicDetail(ctx context.Context, topicID uint64, skipView bool) (*vo.TopicDetailVO, error)
}

// HotTopicService 是 HotTopicServiceInterface 的具体实现。
type HotTopicService struct {
	topicCache    redis.Cache
	topicViewRepo redis.TopicViewRepository
	logger        *core.ZapLogger
}

// NewHotTopicService 是 HotTopicService 的构造函数。
func NewHotTopicService(
	topicCache redis.Cache,
	topicViewRepo redis.TopicViewRepository,
	logger *core.ZapLogger,
) *HotTopicService {
	return &HotTopicService{
		topicCache:    topicCache,
		topicViewRepo: topicViewRepo,
		logger:        logger,
	}
}

// GetHotTopicsByCursor 实现游标方式获取热门话题列表。
func (s *HotTopicService) GetHotTopicsByCursor(ctx context.Context, lastTopicID *uint64, limit int) (*vo.ListHotTopicsByCursorResponse, error) {
	if limit <= 0 {
		s.logger.Warn("GetHotTopicsByCursor: 请求的 limit 小于或等于0", zap.Int("limit", limit))
		return nil, errors.New("limit 参数必须大于0")
	}

	var start int64
	if lastTopicID == nil {
		// 首次加载从榜首开始
		start = 0
	} else {
		rank, err := s.topicCache.GetTopicRank(ctx, *lastTopicID)
		if err != nil {
			s.logger.Error("获取上一页最后话题排名失败 (游标分页)",
				zap.Error(err), zap.Uint64p("lastTopicID", lastTopicID))
			return nil, fmt.Errorf("获取话题排名失败: %w", err)
		}
		if rank == -1 {
			// 游标话题已掉出榜单，让客户端决定刷新还是从头加载
			s.logger.Warn("游标 lastTopicID 已不在热榜中 (游标分页)",
				zap.Uint64p("lastTopicID", lastTopicID))
			return nil, fmt.Errorf("提供的游标话题(ID: %d)已不在热门榜单中，请刷新", *lastTopicID)
		}
		start = rank + 1
	}

	stop := start + int64(limit) - 1

	topicIDs, err := s.topicCache.GetTopicsByRange(ctx, start, stop)
	if err != nil {
		s.logger.Error("从缓存按排名范围获取话题 ID 失败 (游标分页)",
			zap.Error(err), zap.Int64("start", start), zap.Int64("stop", stop))
		return nil, fmt.Errorf("获取话题 ID 列表失败: %w", err)
	}
	if len(topicIDs) == 0 {
		// 已到达榜单末尾
		return &vo.ListHotTopicsByCursorResponse{Topics: []*vo.TopicResponse{}, NextCursor: nil}, nil
	}

	topics, err := s.topicCache.GetTopics(ctx, topicIDs)
	if err != nil {
		s.logger.Error("从缓存批量获取话题实体失败 (游标分页)",
			zap.Error(err), zap.Any("topicIDs", topicIDs))
		return nil, fmt.Errorf("获取话题数据失败: %w", err)
	}

	// Hash 缓存可能部分未命中，返回数量以 ZSet 的 ID 数为准确定游标
	topicResponses := make([]*vo.TopicResponse, 0, len(topics))
	for _, topic := range topics {
		if topic == nil {
			continue
		}
		// ViewCount 来自话题 Hash 缓存，是榜单刷新时的快照值
		topicResponses = append(topicResponses, vo.NewTopicResponseFromEntity(topic, 0))
	}

	var nextCursor *uint64
	if len(topicIDs) == limit && len(topicResponses) > 0 {
		lastReturnedID := topicIDs[len(topicIDs)-1]
		nextCursor = &lastReturnedID
	}

	return &vo.ListHotTopicsByCursorResponse{
		Topics:     topicResponses,
		NextCursor: nextCursor,
	}, nil
}

// GetHotTopicDetail 实现热门话题详情的缓存读取。
func (s *HotTopicService) GetHotTopicDetail(ctx context.Context, topicID uint64, skipView bool) (*vo.TopicDetailVO, error) {
	// 1. 异步增加浏览计数，客户端声明 skipView 时跳过
	if !skipView {
		go func(id uint64) {
			bgCtx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
			defer cancel()
			if err := s.topicViewRepo.IncrementViewCount(bgCtx, id); err != nil {
				s.logger.Error("异步增加热门话题浏览量失败",
					zap.Error(err), zap.Uint64("topicID", id))
			}
		}(topicID)
	}

	// 2. 从缓存获取详情，未命中时把 myErrors.ErrCacheMiss 透传给上层回源
	detail, err := s.topicCache.GetTopicDetail(ctx, topicID)
	if err != nil {
		s.logger.Warn("从缓存获取话题详情失败", zap.Error(err), zap.Uint64("topicID", topicID))
		return nil, err
	}
	return detail, nil
}
