package service

import (
	"context"

	"github.com/Xushengqwer/go-common/core"
	"go.uber.org/zap"

	"github.com/Xushengqwer/community_service/models/dto"
	"github.com/Xushengqwer/community_service/models/entities"
	"github.com/Xushengqwer/community_service/models/vo"
	"github.com/Xushengqwer/community_service/repo/mysql"
	"github.com/Xushengqwer/community_service/repo/redis"
)

// EngagementService 定义了处理收藏/订阅/浏览记录业务逻辑的接口。
type EngagementService interface {
	// ToggleBookmark 切换用户对话题的收藏状态，返回切换后是否已收藏。
	ToggleBookmark(ctx context.Context, topicID uint64, userID string) (*vo.ToggleStateVO, error)

	// ToggleSubscription 切换用户对话题的订阅状态，返回切换后是否已订阅。
	ToggleSubscription(ctx context.Context, topicID uint64, userID string) (*vo.ToggleStateVO, error)

	// RecordView 记录一次话题浏览。
	// - 客户端声明 skipView 时直接跳过，服务端信任该声明。
	// - 计数权威数据在 Redis，由定时任务批量回写 MySQL。
	RecordView(ctx context.Context, topicID uint64, req *dto.RecordViewRequest) error

	// ListMyBookmarks 按收藏时间倒序分页获取用户收藏的话题。
	ListMyBookmarks(ctx context.Context, userID string, query *dto.EngagementListQuery) (*vo.TopicPageVO, error)

	// ListMySubscriptions 按订阅时间倒序分页获取用户订阅的话题。
	ListMySubscriptions(ctx context.Context, userID string, query *dto.EngagementListQuery) (*vo.TopicPageVO, error)
}

type engagementService struct {
	engagementRepo mysql.EngagementRepository
	topicRepo      mysql.TopicRepository
	replyRepo      mysql.ReplyRepository
	topicViewRepo  redis.TopicViewRepository
	logger         *core.ZapLogger
}

// NewEngagementService 是 engagementService 的构造函数。
func NewEngagementService(
	engagementRepo mysql.EngagementRepository,
	topicRepo mysql.TopicRepository,
	replyRepo mysql.ReplyRepository,
	topicViewRepo redis.TopicViewRepository,
	logger *core.ZapLogger,
) EngagementService {
	return &engagementService{
		engagementRepo: engagementRepo,
		topicRepo:      topicRepo,
		replyRepo:      replyRepo,
		topicViewRepo:  topicViewRepo,
		logger:         logger,
	}
}

// ToggleBookmark 实现收藏状态的切换。
func (s *engagementService) ToggleBookmark(ctx context.Context, topicID uint64, userID string) (*vo.ToggleStateVO, error) {
	// 校验话题存在，避免收藏悬空 ID
	if _, err := s.topicRepo.GetTopicByID(ctx, topicID); err != nil {
		return nil, err
	}

	active, err := s.engagementRepo.ToggleBookmark(ctx, topicID, userID)
	if err != nil {
		return nil, err
	}
	return &vo.ToggleStateVO{Active: active}, nil
}

// ToggleSubscription 实现订阅状态的切换。
func (s *engagementService) ToggleSubscription(ctx context.Context, topicID uint64, userID string) (*vo.ToggleStateVO, error) {
	if _, err := s.topicRepo.GetTopicByID(ctx, topicID); err != nil {
		return nil, err
	}

	active, err := s.engagementRepo.ToggleSubscription(ctx, topicID, userID)
	if err != nil {
		return nil, err
	}
	return &vo.ToggleStateVO{Active: active}, nil
}

// RecordView 实现浏览记录的写入。
func (s *engagementService) RecordView(ctx context.Context, topicID uint64, req *dto.RecordViewRequest) error {
	if req != nil && req.SkipView {
		return nil
	}
	if err := s.topicViewRepo.IncrementViewCount(ctx, topicID); err != nil {
		s.logger.Error("记录话题浏览失败", zap.Error(err), zap.Uint64("topicID", topicID))
		return err
	}
	return nil
}

// ListMyBookmarks 实现用户收藏列表的查询。
func (s *engagementService) ListMyBookmarks(ctx context.Context, userID string, query *dto.EngagementListQuery) (*vo.TopicPageVO, error) {
	ids, total, err := s.engagementRepo.ListBookmarkedTopicIDs(ctx, userID, query.Page, query.PageSize)
	if err != nil {
		return nil, err
	}
	return s.assembleTopicPage(ctx, ids, total)
}

// ListMySubscriptions 实现用户订阅列表的查询。
func (s *engagementService) ListMySubscriptions(ctx context.Context, userID string, query *dto.EngagementListQuery) (*vo.TopicPageVO, error) {
	ids, total, err := s.engagementRepo.ListSubscribedTopicIDs(ctx, userID, query.Page, query.PageSize)
	if err != nil {
		return nil, err
	}
	return s.assembleTopicPage(ctx, ids, total)
}

// assembleTopicPage 按给定 ID 顺序组装话题分页视图。
// 事实表返回的顺序是页面顺序的权威来源，
// 批量查出的话题实体需要按 ID 顺序重排（已删除的话题会被自然跳过）。
func (s *engagementService) assembleTopicPage(ctx context.Context, ids []uint64, total int64) (*vo.TopicPageVO, error) {
	if len(ids) == 0 {
		return &vo.TopicPageVO{Topics: []*vo.TopicResponse{}, Total: total}, nil
	}

	topics, err := s.topicRepo.GetTopicsByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}

	replyCounts, err := s.replyRepo.GetReplyCountsByTopicIDs(ctx, ids)
	if err != nil {
		return nil, err
	}

	byID := make(map[uint64]*entities.Topic, len(topics))
	for _, topic := range topics {
		byID[topic.ID] = topic
	}
	ordered := make([]*entities.Topic, 0, len(ids))
	for _, id := range ids {
		if topic, ok := byID[id]; ok {
			ordered = append(ordered, topic)
		}
	}

	return &vo.TopicPageVO{
		Topics: vo.MapTopicsToResponses(ordered, replyCounts),
		Total:  total,
	}, nil
}
