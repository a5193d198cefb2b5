package vo

import (
	"reflect"
	"testing"

	"github.com/Xushengqwer/community_service/models/entities"
	"github.com/Xushengqwer/community_service/models/enums"
)

func newReaction(targetID uint64, userName, emoji string) *entities.Reaction {
	return &entities.Reaction{
		TargetType: enums.TargetTopic,
		TargetID:   targetID,
		UserID:     userName + "-id",
		UserName:   userName,
		Emoji:      emoji,
	}
}

func TestAggregateReactions(t *testing.T) {
	reactions := []*entities.Reaction{
		newReaction(1, "alice", "👍"),
		newReaction(1, "bob", "👍"),
		newReaction(1, "carol", "🎉"),
		newReaction(1, "dave", "👍"),
		newReaction(1, "erin", "🎉"),
	}

	groups := AggregateReactions(reactions)

	if len(groups) != 2 {
		t.Fatalf("分组数 = %d, want 2", len(groups))
	}
	// 数量降序: 👍 x3 在前, 🎉 x2 在后
	if groups[0].Emoji != "👍" || groups[0].Count != 3 {
		t.Errorf("groups[0] = %s x%d, want 👍 x3", groups[0].Emoji, groups[0].Count)
	}
	if groups[1].Emoji != "🎉" || groups[1].Count != 2 {
		t.Errorf("groups[1] = %s x%d, want 🎉 x2", groups[1].Emoji, groups[1].Count)
	}
	// 组内名单保持事实行的先后顺序
	if want := []string{"alice", "bob", "dave"}; !reflect.DeepEqual(groups[0].Users, want) {
		t.Errorf("👍 名单 = %v, want %v", groups[0].Users, want)
	}
}

func TestAggregateReactionsTieBreak(t *testing.T) {
	reactions := []*entities.Reaction{
		newReaction(1, "alice", "🎉"),
		newReaction(1, "bob", "👀"),
	}

	groups := AggregateReactions(reactions)
	if len(groups) != 2 {
		t.Fatalf("分组数 = %d, want 2", len(groups))
	}
	// 数量相同时按 emoji 字典序，输出稳定
	if groups[0].Emoji > groups[1].Emoji {
		t.Errorf("数量相同时分组顺序不稳定: [%s, %s]", groups[0].Emoji, groups[1].Emoji)
	}
}

func TestAggregateReactionsEmpty(t *testing.T) {
	if groups := AggregateReactions(nil); len(groups) != 0 {
		t.Fatalf("空输入应返回空切片, got %d", len(groups))
	}
}

func TestGroupReactionsByTarget(t *testing.T) {
	reactions := []*entities.Reaction{
		newReaction(1, "alice", "👍"),
		newReaction(2, "bob", "🎉"),
		newReaction(1, "carol", "👍"),
	}

	byTarget := GroupReactionsByTarget(reactions)
	if len(byTarget) != 2 {
		t.Fatalf("目标数 = %d, want 2", len(byTarget))
	}
	if byTarget[1][0].Count != 2 {
		t.Errorf("目标1的👍数量 = %d, want 2", byTarget[1][0].Count)
	}
	if byTarget[2][0].Emoji != "🎉" {
		t.Errorf("目标2的表情 = %s, want 🎉", byTarget[2][0].Emoji)
	}
}
