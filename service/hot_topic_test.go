package service

import (
	"context"
	"errors"
	"testing"

	"github.com/Xushengqwer/community_service/models/entities"
	"github.com/Xushengqwer/community_service/models/vo"
	myErrors "github.com/Xushengqwer/community_service/myErrors"
)

func newHotCacheForTest(ids ...uint64) *fakeTopicCache {
	cache := &fakeTopicCache{
		rankedIDs: ids,
		topics:    make(map[uint64]*entities.Topic),
		details:   make(map[uint64]*vo.TopicDetailVO),
	}
	for _, id := range ids {
		cache.topics[id] = newTopicEntity(id, "author-1", false)
	}
	return cache
}

func TestGetHotTopicsByCursor_首次加载与翻页(t *testing.T) {
	cache := newHotCacheForTest(101, 102, 103, 104, 105)
	svc := NewHotTopicService(cache, &fakeViewRepo{}, newTestLogger(t))

	// 首次加载取榜首两条
	first, err := svc.GetHotTopicsByCursor(context.Background(), nil, 2)
	if err != nil {
		t.Fatalf("首次加载失败: %v", err)
	}
	if len(first.Topics) != 2 || first.Topics[0].ID != 101 || first.Topics[1].ID != 102 {
		t.Fatalf("首页应返回排名前两位的话题, 实际 %+v", first.Topics)
	}
	if first.NextCursor == nil || *first.NextCursor != 102 {
		t.Fatalf("首页游标应为 102")
	}

	// 用游标加载下一页
	second, err := svc.GetHotTopicsByCursor(context.Background(), first.NextCursor, 2)
	if err != nil {
		t.Fatalf("翻页失败: %v", err)
	}
	if len(second.Topics) != 2 || second.Topics[0].ID != 103 {
		t.Fatalf("第二页应从排名 2 开始, 实际 %+v", second.Topics)
	}
}

func TestGetHotTopicsByCursor_末页无游标(t *testing.T) {
	cache := newHotCacheForTest(101, 102, 103)
	svc := NewHotTopicService(cache, &fakeViewRepo{}, newTestLogger(t))

	cursor := uint64(102)
	page, err := svc.GetHotTopicsByCursor(context.Background(), &cursor, 5)
	if err != nil {
		t.Fatalf("加载末页失败: %v", err)
	}
	if len(page.Topics) != 1 || page.Topics[0].ID != 103 {
		t.Fatalf("末页应只剩排名最后的话题")
	}
	if page.NextCursor != nil {
		t.Fatalf("末页不应有游标")
	}
}

func TestGetHotTopicsByCursor_游标掉榜(t *testing.T) {
	cache := newHotCacheForTest(101, 102)
	svc := NewHotTopicService(cache, &fakeViewRepo{}, newTestLogger(t))

	cursor := uint64(999)
	if _, err := svc.GetHotTopicsByCursor(context.Background(), &cursor, 2); err == nil {
		t.Fatalf("游标话题已不在榜单时应返回错误")
	}
}

func TestGetHotTopicsByCursor_非法limit(t *testing.T) {
	svc := NewHotTopicService(newHotCacheForTest(), &fakeViewRepo{}, newTestLogger(t))

	if _, err := svc.GetHotTopicsByCursor(context.Background(), nil, 0); err == nil {
		t.Fatalf("limit 为 0 应返回错误")
	}
}

func TestGetHotTopicDetail_缓存未命中透传(t *testing.T) {
	cache := newHotCacheForTest(101)
	svc := NewHotTopicService(cache, &fakeViewRepo{}, newTestLogger(t))

	_, err := svc.GetHotTopicDetail(context.Background(), 999, true)
	if !errors.Is(err, myErrors.ErrCacheMiss) {
		t.Fatalf("期望 ErrCacheMiss, 实际 %v", err)
	}
}

func TestGetHotTopicDetail_缓存命中(t *testing.T) {
	cache := newHotCacheForTest(101)
	cache.details[101] = &vo.TopicDetailVO{
		Topic:   *vo.NewTopicResponseFromEntity(cache.topics[101], 0),
		Replies: []*vo.ReplyVO{},
	}
	svc := NewHotTopicService(cache, &fakeViewRepo{}, newTestLogger(t))

	detail, err := svc.GetHotTopicDetail(context.Background(), 101, true)
	if err != nil {
		t.Fatalf("读取缓存详情失败: %v", err)
	}
	if detail.Topic.ID != 101 {
		t.Fatalf("期望话题 101, 实际 %d", detail.Topic.ID)
	}
}
