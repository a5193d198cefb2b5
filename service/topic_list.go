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

// defaultListPageSize 列表查询未指定每页数量时的默认值。
const defaultListPageSize = 20

// TopicListService 定义了话题列表与时间线查询的业务逻辑接口。
type TopicListService interface {
	// ListTopics 按条件分页查询话题列表。
	// - latest / views 排序直接走 MySQL。
	// - trending 排序先从 Redis 热度榜取 ID，再回表组装，
	//   筛选条件在回表结果上生效。
	ListTopics(ctx context.Context, query *dto.TopicListQuery) (*vo.TopicPageVO, error)

	// GetTopicsTimeline 按 (创建时间, ID) 游标分页查询话题时间线。
	GetTopicsTimeline(ctx context.Context, query *dto.TimelineQuery) (*vo.TopicTimelinePageVO, error)
}

type topicListService struct {
	topicRepo      mysql.TopicRepository
	replyRepo      mysql.ReplyRepository
	topicTrendRepo redis.TopicTrendRepository
	logger         *core.ZapLogger
}

// NewTopicListService 是 topicListService 的构造函数。
func NewTopicListService(
	topicRepo mysql.TopicRepository,
	replyRepo mysql.ReplyRepository,
	topicTrendRepo redis.TopicTrendRepository,
	logger *core.ZapLogger,
) TopicListService {
	return &topicListService{
		topicRepo:      topicRepo,
		replyRepo:      replyRepo,
		topicTrendRepo: topicTrendRepo,
		logger:         logger,
	}
}

// ListTopics 实现话题列表查询。
func (s *topicListService) ListTopics(ctx context.Context, query *dto.TopicListQuery) (*vo.TopicPageVO, error) {
	if query.Sort == dto.TopicSortTrending {
		return s.listTrendingTopics(ctx, query)
	}

	topics, total, err := s.topicRepo.ListTopics(ctx, query)
	if err != nil {
		return nil, err
	}

	replyCounts, err := s.collectReplyCounts(ctx, topics)
	if err != nil {
		return nil, err
	}

	return &vo.TopicPageVO{
		Topics: vo.MapTopicsToResponses(topics, replyCounts),
		Total:  total,
	}, nil
}

// listTrendingTopics 实现 trending 排序的列表查询。
// 热度榜 ZSet 里的顺序是页面顺序的权威来源；
// 回表后已删除的话题被自然跳过，榜单残留由缓存刷新任务纠正。
func (s *topicListService) listTrendingTopics(ctx context.Context, query *dto.TopicListQuery) (*vo.TopicPageVO, error) {
	page := query.Page
	if page <= 0 {
		page = 1
	}
	pageSize := query.PageSize
	if pageSize <= 0 {
		pageSize = defaultListPageSize
	}
	offset := int64((page - 1) * pageSize)

	ids, err := s.topicTrendRepo.GetTopTrending(ctx, offset, int64(pageSize))
	if err != nil {
		return nil, err
	}
	if len(ids) == 0 {
		return &vo.TopicPageVO{Topics: []*vo.TopicResponse{}, Total: 0}, nil
	}

	topics, err := s.topicRepo.GetTopicsByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}

	// 按热度榜顺序重排，并在内存中应用筛选条件
	byID := make(map[uint64]*entities.Topic, len(topics))
	for _, topic := range topics {
		byID[topic.ID] = topic
	}
	ordered := make([]*entities.Topic, 0, len(ids))
	for _, id := range ids {
		topic, ok := byID[id]
		if !ok {
			continue
		}
		if !matchesListFilters(topic, query) {
			continue
		}
		ordered = append(ordered, topic)
	}

	replyCounts, err := s.collectReplyCounts(ctx, ordered)
	if err != nil {
		return nil, err
	}

	return &vo.TopicPageVO{
		Topics: vo.MapTopicsToResponses(ordered, replyCounts),
		Total:  int64(len(ordered)),
	}, nil
}

// GetTopicsTimeline 实现话题时间线的游标分页查询。
func (s *topicListService) GetTopicsTimeline(ctx context.Context, query *dto.TimelineQuery) (*vo.TopicTimelinePageVO, error) {
	topics, nextCreatedAt, nextTopicID, err := s.topicRepo.GetTopicsByTimeline(ctx, query)
	if err != nil {
		return nil, err
	}

	replyCounts, err := s.collectReplyCounts(ctx, topics)
	if err != nil {
		return nil, err
	}

	return &vo.TopicTimelinePageVO{
		Topics:        vo.MapTopicsToResponses(topics, replyCounts),
		NextCreatedAt: nextCreatedAt,
		NextTopicID:   nextTopicID,
	}, nil
}

// collectReplyCounts 批量统计一组话题的回复数。
// 统计失败降级为全 0 展示，列表可用性优先于回复数准确性。
func (s *topicListService) collectReplyCounts(ctx context.Context, topics []*entities.Topic) (map[uint64]int64, error) {
	if len(topics) == 0 {
		return map[uint64]int64{}, nil
	}
	ids := make([]uint64, 0, len(topics))
	for _, topic := range topics {
		ids = append(ids, topic.ID)
	}

	counts, err := s.replyRepo.GetReplyCountsByTopicIDs(ctx, ids)
	if err != nil {
		s.logger.Warn("批量统计话题回复数失败，列表降级为不展示回复数", zap.Error(err))
		return map[uint64]int64{}, nil
	}
	return counts, nil
}

// matchesListFilters 在内存中应用列表筛选条件（trending 路径专用）。
func matchesListFilters(topic *entities.Topic, query *dto.TopicListQuery) bool {
	if query.Category != nil && topic.Category != *query.Category {
		return false
	}
	if query.AuthorID != nil && topic.AuthorID != *query.AuthorID {
		return false
	}
	if query.Status != nil && topic.Status != *query.Status {
		return false
	}
	return true
}
