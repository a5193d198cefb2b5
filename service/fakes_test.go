package service

import (
	"context"
	"testing"
	"time"

	"github.com/Xushengqwer/go-common/commonerrors"
	commonConfig "github.com/Xushengqwer/go-common/config"
	"github.com/Xushengqwer/go-common/core"
	"gorm.io/gorm"

	"github.com/Xushengqwer/community_service/config"
	"github.com/Xushengqwer/community_service/models/dto"
	"github.com/Xushengqwer/community_service/models/entities"
	"github.com/Xushengqwer/community_service/models/enums"
	"github.com/Xushengqwer/community_service/models/vo"
	"github.com/Xushengqwer/community_service/mq/producer"
	myErrors "github.com/Xushengqwer/community_service/myErrors"
)

// newTestLogger 构造测试用的 ZapLogger。
func newTestLogger(t *testing.T) *core.ZapLogger {
	t.Helper()
	logger, err := core.NewZapLogger(commonConfig.ZapConfig{})
	if err != nil {
		t.Fatalf("初始化测试 logger 失败: %v", err)
	}
	return logger
}

// newTestNotifier 构造订阅者为空的通知器，事件扇出在空名单上短路。
func newTestNotifier(t *testing.T) *SubscriberNotifier {
	t.Helper()
	logger := newTestLogger(t)
	kafkaSvc := producer.NewKafkaProducer(config.KafkaConfig{}, logger)
	return NewSubscriberNotifier(&fakeEngagementRepo{}, kafkaSvc, logger)
}

// fakeTopicRepo 是 mysql.TopicRepository 的内存实现。
type fakeTopicRepo struct {
	topics map[uint64]*entities.Topic
}

func newFakeTopicRepo(topics ...*entities.Topic) *fakeTopicRepo {
	repo := &fakeTopicRepo{topics: make(map[uint64]*entities.Topic)}
	for _, topic := range topics {
		repo.topics[topic.ID] = topic
	}
	return repo
}

func (f *fakeTopicRepo) CreateTopic(_ context.Context, _ *gorm.DB, topic *entities.Topic) error {
	topic.ID = uint64(len(f.topics) + 1)
	f.topics[topic.ID] = topic
	return nil
}

func (f *fakeTopicRepo) GetTopicByID(_ context.Context, id uint64) (*entities.Topic, error) {
	topic, ok := f.topics[id]
	if !ok {
		return nil, commonerrors.ErrRepoNotFound
	}
	return topic, nil
}

func (f *fakeTopicRepo) UpdateTopic(_ context.Context, topicID uint64, title, description, content, category, tags *string) error {
	topic, ok := f.topics[topicID]
	if !ok {
		return commonerrors.ErrRepoNotFound
	}
	if title != nil {
		topic.Title = *title
	}
	if description != nil {
		topic.Description = *description
	}
	if content != nil {
		topic.Content = *content
	}
	if category != nil {
		topic.Category = *category
	}
	if tags != nil {
		topic.Tags = *tags
	}
	return nil
}

func (f *fakeTopicRepo) DeleteTopicCascade(_ context.Context, topicID uint64) error {
	if _, ok := f.topics[topicID]; !ok {
		return commonerrors.ErrRepoNotFound
	}
	delete(f.topics, topicID)
	return nil
}

func (f *fakeTopicRepo) ListTopics(_ context.Context, _ *dto.TopicListQuery) ([]*entities.Topic, int64, error) {
	result := make([]*entities.Topic, 0, len(f.topics))
	for _, topic := range f.topics {
		result = append(result, topic)
	}
	return result, int64(len(result)), nil
}

func (f *fakeTopicRepo) GetTopicsByTimeline(_ context.Context, _ *dto.TimelineQuery) ([]*entities.Topic, *time.Time, *uint64, error) {
	return []*entities.Topic{}, nil, nil, nil
}

func (f *fakeTopicRepo) GetTopicsByIDs(_ context.Context, ids []uint64) ([]*entities.Topic, error) {
	result := make([]*entities.Topic, 0, len(ids))
	for _, id := range ids {
		if topic, ok := f.topics[id]; ok {
			result = append(result, topic)
		}
	}
	return result, nil
}

// fakeReplyRepo 是 mysql.ReplyRepository 的内存实现。
type fakeReplyRepo struct {
	replies map[uint64]*entities.Reply
	nextID  uint64
}

func newFakeReplyRepo(replies ...*entities.Reply) *fakeReplyRepo {
	repo := &fakeReplyRepo{replies: make(map[uint64]*entities.Reply)}
	for _, reply := range replies {
		repo.replies[reply.ID] = reply
		if reply.ID > repo.nextID {
			repo.nextID = reply.ID
		}
	}
	return repo
}

func (f *fakeReplyRepo) CreateReply(_ context.Context, reply *entities.Reply) error {
	f.nextID++
	reply.ID = f.nextID
	f.replies[reply.ID] = reply
	return nil
}

func (f *fakeReplyRepo) GetReplyByID(_ context.Context, id uint64) (*entities.Reply, error) {
	reply, ok := f.replies[id]
	if !ok {
		return nil, commonerrors.ErrRepoNotFound
	}
	return reply, nil
}

func (f *fakeReplyRepo) ListRepliesByTopicID(_ context.Context, topicID uint64) ([]*entities.Reply, error) {
	result := make([]*entities.Reply, 0)
	for _, reply := range f.replies {
		if reply.TopicID == topicID {
			result = append(result, reply)
		}
	}
	return result, nil
}

func (f *fakeReplyRepo) UpdateReplyContent(_ context.Context, replyID uint64, content string) error {
	reply, ok := f.replies[replyID]
	if !ok {
		return commonerrors.ErrRepoNotFound
	}
	reply.Content = content
	return nil
}

func (f *fakeReplyRepo) DeleteReplyTree(_ context.Context, replyID uint64) (int64, error) {
	if _, ok := f.replies[replyID]; !ok {
		return 0, commonerrors.ErrRepoNotFound
	}
	// 删除自身及全部子孙
	deleted := int64(0)
	frontier := []uint64{replyID}
	for len(frontier) > 0 {
		current := frontier[0]
		frontier = frontier[1:]
		delete(f.replies, current)
		deleted++
		for id, reply := range f.replies {
			if reply.ParentReplyID != nil && *reply.ParentReplyID == current {
				frontier = append(frontier, id)
			}
		}
	}
	return deleted, nil
}

func (f *fakeReplyRepo) MarkBestAnswer(_ context.Context, topicID, replyID uint64) error {
	target, ok := f.replies[replyID]
	if !ok || target.TopicID != topicID {
		return commonerrors.ErrRepoNotFound
	}
	for _, reply := range f.replies {
		if reply.TopicID == topicID {
			reply.BestAnswer = false
		}
	}
	target.BestAnswer = true
	return nil
}

func (f *fakeReplyRepo) GetReplyCountsByTopicIDs(_ context.Context, topicIDs []uint64) (map[uint64]int64, error) {
	counts := make(map[uint64]int64)
	for _, reply := range f.replies {
		counts[reply.TopicID]++
	}
	result := make(map[uint64]int64, len(topicIDs))
	for _, id := range topicIDs {
		result[id] = counts[id]
	}
	return result, nil
}

// fakeEngagementRepo 是 mysql.EngagementRepository 的内存实现。
type fakeEngagementRepo struct {
	bookmarks     map[string][]uint64 // userID -> 收藏话题 ID（倒序）
	subscriptions map[string][]uint64
	subscribers   map[uint64][]string // topicID -> 订阅者
}

func (f *fakeEngagementRepo) ToggleBookmark(_ context.Context, topicID uint64, userID string) (bool, error) {
	if f.bookmarks == nil {
		f.bookmarks = make(map[string][]uint64)
	}
	for i, id := range f.bookmarks[userID] {
		if id == topicID {
			f.bookmarks[userID] = append(f.bookmarks[userID][:i], f.bookmarks[userID][i+1:]...)
			return false, nil
		}
	}
	f.bookmarks[userID] = append([]uint64{topicID}, f.bookmarks[userID]...)
	return true, nil
}

func (f *fakeEngagementRepo) ToggleSubscription(_ context.Context, topicID uint64, userID string) (bool, error) {
	if f.subscriptions == nil {
		f.subscriptions = make(map[string][]uint64)
	}
	for i, id := range f.subscriptions[userID] {
		if id == topicID {
			f.subscriptions[userID] = append(f.subscriptions[userID][:i], f.subscriptions[userID][i+1:]...)
			return false, nil
		}
	}
	f.subscriptions[userID] = append([]uint64{topicID}, f.subscriptions[userID]...)
	return true, nil
}

func (f *fakeEngagementRepo) ListBookmarkedTopicIDs(_ context.Context, userID string, _, _ int) ([]uint64, int64, error) {
	ids := f.bookmarks[userID]
	return ids, int64(len(ids)), nil
}

func (f *fakeEngagementRepo) ListSubscribedTopicIDs(_ context.Context, userID string, _, _ int) ([]uint64, int64, error) {
	ids := f.subscriptions[userID]
	return ids, int64(len(ids)), nil
}

func (f *fakeEngagementRepo) ListSubscribersByTopic(_ context.Context, topicID uint64) ([]string, error) {
	return f.subscribers[topicID], nil
}

func (f *fakeEngagementRepo) GetEngagementFlags(_ context.Context, topicID uint64, userID string) (bool, bool, error) {
	bookmarked := false
	for _, id := range f.bookmarks[userID] {
		if id == topicID {
			bookmarked = true
		}
	}
	subscribed := false
	for _, id := range f.subscriptions[userID] {
		if id == topicID {
			subscribed = true
		}
	}
	return bookmarked, subscribed, nil
}

// fakeViewRepo 是 redis.TopicViewRepository 的内存实现。
type fakeViewRepo struct {
	counts map[uint64]int64
}

func (f *fakeViewRepo) IncrementViewCount(_ context.Context, topicID uint64) error {
	if f.counts == nil {
		f.counts = make(map[uint64]int64)
	}
	f.counts[topicID]++
	return nil
}

func (f *fakeViewRepo) GetViewCount(_ context.Context, topicID uint64) (int64, error) {
	return f.counts[topicID], nil
}

func (f *fakeViewRepo) GetAllViewCounts(_ context.Context) (map[uint64]int64, error) {
	return f.counts, nil
}

// fakeTrendRepo 是 redis.TopicTrendRepository 的内存实现。
type fakeTrendRepo struct {
	scores map[uint64]int64
}

func (f *fakeTrendRepo) AdjustTrendScore(_ context.Context, topicID uint64, delta int64) error {
	if f.scores == nil {
		f.scores = make(map[uint64]int64)
	}
	f.scores[topicID] += delta
	return nil
}

func (f *fakeTrendRepo) GetTopTrending(_ context.Context, offset, limit int64) ([]uint64, error) {
	type pair struct {
		id    uint64
		score int64
	}
	pairs := make([]pair, 0, len(f.scores))
	for id, score := range f.scores {
		pairs = append(pairs, pair{id, score})
	}
	for i := 0; i < len(pairs); i++ {
		for j := i + 1; j < len(pairs); j++ {
			if pairs[j].score > pairs[i].score ||
				(pairs[j].score == pairs[i].score && pairs[j].id < pairs[i].id) {
				pairs[i], pairs[j] = pairs[j], pairs[i]
			}
		}
	}
	result := make([]uint64, 0, limit)
	for i := offset; i < int64(len(pairs)) && int64(len(result)) < limit; i++ {
		result = append(result, pairs[i].id)
	}
	return result, nil
}

func (f *fakeTrendRepo) RemoveTopic(_ context.Context, topicID uint64) error {
	delete(f.scores, topicID)
	return nil
}

// fakeTopicCache 是 redis.Cache 的内存实现，模拟热榜快照。
type fakeTopicCache struct {
	rankedIDs []uint64 // 热榜顺序（降序）
	topics    map[uint64]*entities.Topic
	details   map[uint64]*vo.TopicDetailVO
}

func (f *fakeTopicCache) GetTopicRank(_ context.Context, topicID uint64) (int64, error) {
	for i, id := range f.rankedIDs {
		if id == topicID {
			return int64(i), nil
		}
	}
	return -1, nil
}

func (f *fakeTopicCache) GetTopicsByRange(_ context.Context, start, stop int64) ([]uint64, error) {
	if start < 0 || start >= int64(len(f.rankedIDs)) {
		return []uint64{}, nil
	}
	if stop < 0 || stop >= int64(len(f.rankedIDs)) {
		stop = int64(len(f.rankedIDs)) - 1
	}
	return f.rankedIDs[start : stop+1], nil
}

func (f *fakeTopicCache) GetTopics(_ context.Context, topicIDs []uint64) ([]*entities.Topic, error) {
	result := make([]*entities.Topic, 0, len(topicIDs))
	for _, id := range topicIDs {
		if topic, ok := f.topics[id]; ok {
			result = append(result, topic)
		}
	}
	return result, nil
}

func (f *fakeTopicCache) GetTopicDetail(_ context.Context, topicID uint64) (*vo.TopicDetailVO, error) {
	detail, ok := f.details[topicID]
	if !ok {
		return nil, myErrors.ErrCacheMiss
	}
	return detail, nil
}

// newTopicEntity 构造指定 ID 的话题实体。
func newTopicEntity(id uint64, authorID string, locked bool) *entities.Topic {
	topic := &entities.Topic{
		Title:    "话题",
		Category: "General",
		Content:  "正文",
		AuthorID: authorID,
		Status:   enums.TopicOpen,
		Locked:   locked,
	}
	topic.ID = id
	return topic
}

// newReplyEntity 构造指定 ID 的回复实体。
func newReplyEntity(id, topicID uint64, authorID string, parentID *uint64) *entities.Reply {
	reply := &entities.Reply{
		TopicID:       topicID,
		AuthorID:      authorID,
		Content:       "回复",
		ParentReplyID: parentID,
	}
	reply.ID = id
	return reply
}
