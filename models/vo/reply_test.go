package vo

import (
	"testing"
	"time"

	"github.com/Xushengqwer/community_service/models/entities"
)

func newReply(id uint64, parentID *uint64, createdAt time.Time) *entities.Reply {
	r := &entities.Reply{
		TopicID:       1,
		Content:       "content",
		ParentReplyID: parentID,
	}
	r.ID = id
	r.CreatedAt = createdAt
	return r
}

func uint64Ptr(v uint64) *uint64 { return &v }

func TestBuildReplyTree(t *testing.T) {
	base := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)

	// 结构:
	//   1
	//   ├── 3 (对1的回复)
	//   │   └── 4 (对3的回复，二级嵌套)
	//   2
	replies := []*entities.Reply{
		newReply(1, nil, base),
		newReply(2, nil, base.Add(2*time.Minute)),
		newReply(3, uint64Ptr(1), base.Add(1*time.Minute)),
		newReply(4, uint64Ptr(3), base.Add(3*time.Minute)),
	}

	roots := BuildReplyTree(replies)

	if len(roots) != 2 {
		t.Fatalf("顶层回复数 = %d, want 2", len(roots))
	}
	if roots[0].ID != 1 || roots[1].ID != 2 {
		t.Fatalf("顶层回复顺序 = [%d, %d], want [1, 2]", roots[0].ID, roots[1].ID)
	}
	if len(roots[0].Children) != 1 || roots[0].Children[0].ID != 3 {
		t.Fatalf("回复1的子回复不正确: %+v", roots[0].Children)
	}
	grandchildren := roots[0].Children[0].Children
	if len(grandchildren) != 1 || grandchildren[0].ID != 4 {
		t.Fatalf("回复3的子回复不正确: %+v", grandchildren)
	}
}

func TestBuildReplyTreeSameTimestampOrdering(t *testing.T) {
	base := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)

	// 同一秒创建的回复按 ID 升序兜底
	replies := []*entities.Reply{
		newReply(7, nil, base),
		newReply(5, nil, base),
		newReply(6, nil, base),
	}

	roots := BuildReplyTree(replies)
	if len(roots) != 3 {
		t.Fatalf("顶层回复数 = %d, want 3", len(roots))
	}
	for i, want := range []uint64{5, 6, 7} {
		if roots[i].ID != want {
			t.Errorf("roots[%d].ID = %d, want %d", i, roots[i].ID, want)
		}
	}
}

func TestBuildReplyTreeOrphanPromotion(t *testing.T) {
	base := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)

	// 父回复 99 不在列表中，孤儿节点应被提升为顶层而不是丢失
	replies := []*entities.Reply{
		newReply(1, nil, base),
		newReply(2, uint64Ptr(99), base.Add(time.Minute)),
	}

	roots := BuildReplyTree(replies)
	if len(roots) != 2 {
		t.Fatalf("顶层回复数 = %d, want 2 (孤儿节点应被提升)", len(roots))
	}
}

func TestBuildReplyTreeEmpty(t *testing.T) {
	if roots := BuildReplyTree(nil); len(roots) != 0 {
		t.Fatalf("空输入应返回空切片, got %d", len(roots))
	}
}
