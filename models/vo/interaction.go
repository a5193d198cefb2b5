package vo

import (
	"sort"

	"github.com/Xushengqwer/community_service/models/entities"
	"github.com/Xushengqwer/community_service/models/enums"
)

// ReactionGroupVO 定义了单个表情在某目标上的聚合视图。
type ReactionGroupVO struct {
	Emoji string   `json:"emoji"` // 表情符号本体
	Count int64    `json:"count"` // 持有该表情的用户数
	Users []string `json:"users"` // 用户名名单，按反应时间先后排列
}

// VoteStateVO 定义了投票切换后的状态响应。
type VoteStateVO struct {
	VoteType *enums.VoteType `json:"vote_type"` // 切换后的投票状态，nil 表示已撤销
}

// ToggleStateVO 定义了收藏/订阅/表情等开关类切换的状态响应。
type ToggleStateVO struct {
	Active bool `json:"active"` // 切换后标记是否生效
}

// AggregateReactions 将表情事实行按 emoji 聚合为展示视图。
//   - 分组内用户名保持事实行的先后顺序（调用方按创建时间升序传入）。
//   - 分组之间按数量降序排列，数量相同时按 emoji 字典序，保证输出稳定。
func AggregateReactions(reactions []*entities.Reaction) []*ReactionGroupVO {
	if len(reactions) == 0 {
		return []*ReactionGroupVO{}
	}

	groups := make(map[string]*ReactionGroupVO)
	order := make([]string, 0)
	for _, reaction := range reactions {
		if reaction == nil {
			continue
		}
		group, ok := groups[reaction.Emoji]
		if !ok {
			group = &ReactionGroupVO{Emoji: reaction.Emoji, Users: []string{}}
			groups[reaction.Emoji] = group
			order = append(order, reaction.Emoji)
		}
		group.Count++
		group.Users = append(group.Users, reaction.UserName)
	}

	result := make([]*ReactionGroupVO, 0, len(order))
	for _, emoji := range order {
		result = append(result, groups[emoji])
	}
	sort.SliceStable(result, func(i, j int) bool {
		if result[i].Count == result[j].Count {
			return result[i].Emoji < result[j].Emoji
		}
		return result[i].Count > result[j].Count
	})
	return result
}

// GroupReactionsByTarget 将一批事实行按目标 ID 分组后分别聚合。
// 话题详情页一次性为全部回复组装表情聚合时使用。
func GroupReactionsByTarget(reactions []*entities.Reaction) map[uint64][]*ReactionGroupVO {
	byTarget := make(map[uint64][]*entities.Reaction)
	for _, reaction := range reactions {
		if reaction == nil {
			continue
		}
		byTarget[reaction.TargetID] = append(byTarget[reaction.TargetID], reaction)
	}

	result := make(map[uint64][]*ReactionGroupVO, len(byTarget))
	for targetID, rows := range byTarget {
		result[targetID] = AggregateReactions(rows)
	}
	return result
}
