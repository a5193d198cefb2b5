package service

import (
	"context"
	"testing"

	"github.com/Xushengqwer/community_service/models/dto"
)

func newEngagementServiceForTest(t *testing.T, topicRepo *fakeTopicRepo, engagementRepo *fakeEngagementRepo, viewRepo *fakeViewRepo) EngagementService {
	t.Helper()
	return NewEngagementService(engagementRepo, topicRepo, newFakeReplyRepo(), viewRepo, newTestLogger(t))
}

func TestToggleBookmark_交替切换(t *testing.T) {
	topicRepo := newFakeTopicRepo(newTopicEntity(1, "author-1", false))
	svc := newEngagementServiceForTest(t, topicRepo, &fakeEngagementRepo{}, &fakeViewRepo{})

	// 收藏 -> 取消 -> 再收藏，每次切换结果交替
	expected := []bool{true, false, true}
	for i, want := range expected {
		state, err := svc.ToggleBookmark(context.Background(), 1, "user-1")
		if err != nil {
			t.Fatalf("第 %d 次切换收藏失败: %v", i+1, err)
		}
		if state.Active != want {
			t.Fatalf("第 %d 次切换后期望 active=%v, 实际 %v", i+1, want, state.Active)
		}
	}
}

func TestToggleBookmark_话题不存在(t *testing.T) {
	svc := newEngagementServiceForTest(t, newFakeTopicRepo(), &fakeEngagementRepo{}, &fakeViewRepo{})

	if _, err := svc.ToggleBookmark(context.Background(), 42, "user-1"); err == nil {
		t.Fatalf("收藏不存在的话题应返回错误")
	}
}

func TestRecordView_SkipView声明被信任(t *testing.T) {
	viewRepo := &fakeViewRepo{}
	svc := newEngagementServiceForTest(t, newFakeTopicRepo(newTopicEntity(1, "author-1", false)), &fakeEngagementRepo{}, viewRepo)

	// skipView 声明跳过计数
	if err := svc.RecordView(context.Background(), 1, &dto.RecordViewRequest{SkipView: true}); err != nil {
		t.Fatalf("skipView 请求不应失败: %v", err)
	}
	if viewRepo.counts[1] != 0 {
		t.Fatalf("skipView 请求不应增加计数, 实际 %d", viewRepo.counts[1])
	}

	// 正常请求计数 +1
	if err := svc.RecordView(context.Background(), 1, &dto.RecordViewRequest{}); err != nil {
		t.Fatalf("记录浏览失败: %v", err)
	}
	if viewRepo.counts[1] != 1 {
		t.Fatalf("期望浏览量 1, 实际 %d", viewRepo.counts[1])
	}
}

func TestListMyBookmarks_页面顺序以事实表为准(t *testing.T) {
	topicRepo := newFakeTopicRepo(
		newTopicEntity(1, "author-1", false),
		newTopicEntity(2, "author-1", false),
		newTopicEntity(3, "author-1", false),
	)
	engagementRepo := &fakeEngagementRepo{}
	svc := newEngagementServiceForTest(t, topicRepo, engagementRepo, &fakeViewRepo{})

	// 依次收藏 1, 3, 2 —— 列表应按收藏时间倒序: 2, 3, 1
	for _, id := range []uint64{1, 3, 2} {
		if _, err := svc.ToggleBookmark(context.Background(), id, "user-1"); err != nil {
			t.Fatalf("收藏话题 %d 失败: %v", id, err)
		}
	}

	page, err := svc.ListMyBookmarks(context.Background(), "user-1", &dto.EngagementListQuery{Page: 1, PageSize: 10})
	if err != nil {
		t.Fatalf("查询收藏列表失败: %v", err)
	}
	if page.Total != 3 {
		t.Fatalf("期望总数 3, 实际 %d", page.Total)
	}
	wantOrder := []uint64{2, 3, 1}
	for i, want := range wantOrder {
		if page.Topics[i].ID != want {
			t.Fatalf("第 %d 位期望话题 %d, 实际 %d", i, want, page.Topics[i].ID)
		}
	}
}

func TestListMyBookmarks_已删除话题被跳过(t *testing.T) {
	topicRepo := newFakeTopicRepo(newTopicEntity(1, "author-1", false))
	engagementRepo := &fakeEngagementRepo{
		bookmarks: map[string][]uint64{"user-1": {99, 1}}, // 99 已不存在
	}
	svc := newEngagementServiceForTest(t, topicRepo, engagementRepo, &fakeViewRepo{})

	page, err := svc.ListMyBookmarks(context.Background(), "user-1", &dto.EngagementListQuery{Page: 1, PageSize: 10})
	if err != nil {
		t.Fatalf("查询收藏列表失败: %v", err)
	}
	if len(page.Topics) != 1 || page.Topics[0].ID != 1 {
		t.Fatalf("已删除的话题应被跳过, 实际返回 %d 条", len(page.Topics))
	}
}
