package service

import (
	"context"
	"errors"
	"testing"

	"github.com/Xushengqwer/go-common/commonerrors"

	"github.com/Xushengqwer/community_service/models/dto"
	"github.com/Xushengqwer/community_service/models/enums"
	"github.com/Xushengqwer/community_service/moderation"
	myErrors "github.com/Xushengqwer/community_service/myErrors"
)

func newReplyServiceForTest(t *testing.T, topicRepo *fakeTopicRepo, replyRepo *fakeReplyRepo) ReplyService {
	t.Helper()
	return NewReplyService(topicRepo, replyRepo, newTestNotifier(t), newTestLogger(t))
}

func TestAddReply_锁定话题拒绝新增回复(t *testing.T) {
	topicRepo := newFakeTopicRepo(newTopicEntity(1, "author-1", true))
	svc := newReplyServiceForTest(t, topicRepo, newFakeReplyRepo())

	_, err := svc.AddReply(context.Background(), 1, &dto.CreateReplyRequest{
		Content:        "test",
		AuthorID:       "user-2",
		AuthorUsername: "user2",
	})
	if !errors.Is(err, myErrors.ErrTopicLocked) {
		t.Fatalf("期望 ErrTopicLocked, 实际 %v", err)
	}
}

func TestAddReply_话题不存在(t *testing.T) {
	svc := newReplyServiceForTest(t, newFakeTopicRepo(), newFakeReplyRepo())

	_, err := svc.AddReply(context.Background(), 42, &dto.CreateReplyRequest{
		Content:        "test",
		AuthorID:       "user-2",
		AuthorUsername: "user2",
	})
	if !errors.Is(err, commonerrors.ErrRepoNotFound) {
		t.Fatalf("期望 ErrRepoNotFound, 实际 %v", err)
	}
}

func TestAddReply_父回复归属校验(t *testing.T) {
	topicRepo := newFakeTopicRepo(
		newTopicEntity(1, "author-1", false),
		newTopicEntity(2, "author-1", false),
	)
	// 回复 10 属于话题 2，在话题 1 下引用它是跨话题嵌套
	replyRepo := newFakeReplyRepo(newReplyEntity(10, 2, "user-3", nil))
	svc := newReplyServiceForTest(t, topicRepo, replyRepo)

	tests := []struct {
		name     string
		parentID uint64
	}{
		{"父回复不存在", 999},
		{"父回复属于其他话题", 10},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			parentID := tt.parentID
			_, err := svc.AddReply(context.Background(), 1, &dto.CreateReplyRequest{
				Content:        "nested",
				ParentReplyID:  &parentID,
				AuthorID:       "user-2",
				AuthorUsername: "user2",
			})
			if !errors.Is(err, myErrors.ErrInvalidParentReply) {
				t.Fatalf("期望 ErrInvalidParentReply, 实际 %v", err)
			}
		})
	}
}

func TestAddReply_正常发表顶层与嵌套回复(t *testing.T) {
	topicRepo := newFakeTopicRepo(newTopicEntity(1, "author-1", false))
	replyRepo := newFakeReplyRepo()
	svc := newReplyServiceForTest(t, topicRepo, replyRepo)

	root, err := svc.AddReply(context.Background(), 1, &dto.CreateReplyRequest{
		Content:        "顶层",
		AuthorID:       "user-2",
		AuthorUsername: "user2",
	})
	if err != nil {
		t.Fatalf("发表顶层回复失败: %v", err)
	}
	if root.ParentReplyID != nil {
		t.Fatalf("顶层回复的 ParentReplyID 应为 nil")
	}

	child, err := svc.AddReply(context.Background(), 1, &dto.CreateReplyRequest{
		Content:        "嵌套",
		ParentReplyID:  &root.ID,
		AuthorID:       "user-3",
		AuthorUsername: "user3",
	})
	if err != nil {
		t.Fatalf("发表嵌套回复失败: %v", err)
	}
	if child.ParentReplyID == nil || *child.ParentReplyID != root.ID {
		t.Fatalf("嵌套回复应指向父回复 %d", root.ID)
	}
}

func TestEditReply_权限校验(t *testing.T) {
	topicRepo := newFakeTopicRepo(newTopicEntity(1, "author-1", false))
	replyRepo := newFakeReplyRepo(newReplyEntity(10, 1, "user-2", nil))
	svc := newReplyServiceForTest(t, topicRepo, replyRepo)

	tests := []struct {
		name    string
		actor   moderation.Actor
		wantErr error
	}{
		{"作者本人可编辑", moderation.Actor{UserID: "user-2", Role: enums.RoleUser}, nil},
		{"其他用户被拒绝", moderation.Actor{UserID: "user-9", Role: enums.RoleUser}, myErrors.ErrForbidden},
		{"管理员可编辑", moderation.Actor{UserID: "admin-1", Role: enums.RoleAdmin}, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := svc.EditReply(context.Background(), 10, tt.actor, &dto.UpdateReplyRequest{Content: "新内容"})
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("期望 %v, 实际 %v", tt.wantErr, err)
			}
		})
	}
}

func TestDeleteReply_删除整棵子树(t *testing.T) {
	topicRepo := newFakeTopicRepo(newTopicEntity(1, "author-1", false))
	parentID := uint64(10)
	childID := uint64(11)
	replyRepo := newFakeReplyRepo(
		newReplyEntity(parentID, 1, "user-2", nil),
		newReplyEntity(childID, 1, "user-3", &parentID),
		newReplyEntity(12, 1, "user-4", &childID),
		newReplyEntity(20, 1, "user-5", nil), // 不在子树内
	)
	svc := newReplyServiceForTest(t, topicRepo, replyRepo)

	deleted, err := svc.DeleteReply(context.Background(), parentID, moderation.Actor{UserID: "user-2", Role: enums.RoleUser})
	if err != nil {
		t.Fatalf("删除回复树失败: %v", err)
	}
	if deleted != 3 {
		t.Fatalf("期望删除 3 条回复, 实际 %d", deleted)
	}
	if _, err := replyRepo.GetReplyByID(context.Background(), 20); err != nil {
		t.Fatalf("子树外的回复不应被删除: %v", err)
	}
}

func TestMarkBestAnswer_权限归话题作者(t *testing.T) {
	topicRepo := newFakeTopicRepo(newTopicEntity(1, "author-1", false))
	replyRepo := newFakeReplyRepo(
		newReplyEntity(10, 1, "user-2", nil),
		newReplyEntity(11, 1, "user-3", nil),
	)
	svc := newReplyServiceForTest(t, topicRepo, replyRepo)

	// 回复作者不能标记最佳答案
	err := svc.MarkBestAnswer(context.Background(), 1, 10, moderation.Actor{UserID: "user-2", Role: enums.RoleUser})
	if !errors.Is(err, myErrors.ErrForbidden) {
		t.Fatalf("回复作者标记最佳答案应被拒绝, 实际 %v", err)
	}

	// 话题作者标记成功
	owner := moderation.Actor{UserID: "author-1", Role: enums.RoleUser}
	if err := svc.MarkBestAnswer(context.Background(), 1, 10, owner); err != nil {
		t.Fatalf("话题作者标记最佳答案失败: %v", err)
	}

	// 换标后旧标记被清除，同一话题至多一个最佳答案
	if err := svc.MarkBestAnswer(context.Background(), 1, 11, owner); err != nil {
		t.Fatalf("换标最佳答案失败: %v", err)
	}
	old, _ := replyRepo.GetReplyByID(context.Background(), 10)
	current, _ := replyRepo.GetReplyByID(context.Background(), 11)
	if old.BestAnswer {
		t.Fatalf("旧的最佳答案标记应被清除")
	}
	if !current.BestAnswer {
		t.Fatalf("新的最佳答案标记未生效")
	}
}
