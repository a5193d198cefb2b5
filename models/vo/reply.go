package vo

import (
	"sort"
	"time"

	"github.com/Xushengqwer/community_service/models/entities"
	"github.com/Xushengqwer/community_service/models/enums"
)

// ReplyVO 定义了回复的树形视图对象。
// 数据层存储的是扁平记录，树形结构由 BuildReplyTree 在读取侧重建。
type ReplyVO struct {
	ID             uint64    `json:"id"`              // 回复ID
	TopicID        uint64    `json:"topic_id"`        // 所属话题ID
	AuthorID       string    `json:"author_id"`       // 作者ID
	AuthorUsername string    `json:"author_username"` // 作者用户名
	AuthorAvatar   string    `json:"author_avatar"`   // 作者头像
	Content        string    `json:"content"`         // 回复内容
	ParentReplyID  *uint64   `json:"parent_reply_id"` // 父回复ID，nil 表示顶层回复
	BestAnswer     bool      `json:"best_answer"`     // 是否为最佳答案
	Upvotes        int64     `json:"upvotes"`         // 赞同数
	Downvotes      int64     `json:"downvotes"`       // 反对数
	CreatedAt      time.Time `json:"created_at"`      // 创建时间
	UpdatedAt      time.Time `json:"updated_at"`      // 更新时间

	// 当前用户对该回复的投票，nil 表示未投票（未登录时总是 nil）
	UserVote *enums.VoteType `json:"user_vote"`

	// 回复上的表情聚合
	Reactions []*ReactionGroupVO `json:"reactions"`

	// 子回复，按创建时间升序
	Children []*ReplyVO `json:"children"`
}

// NewReplyVOFromEntity 将回复实体转换为 VO（不含子节点）。
func NewReplyVOFromEntity(reply *entities.Reply) *ReplyVO {
	if reply == nil {
		return nil
	}
	return &ReplyVO{
		ID:             reply.ID,
		TopicID:        reply.TopicID,
		AuthorID:       reply.AuthorID,
		AuthorUsername: reply.AuthorUsername,
		AuthorAvatar:   reply.AuthorAvatar,
		Content:        reply.Content,
		ParentReplyID:  reply.ParentReplyID,
		BestAnswer:     reply.BestAnswer,
		Upvotes:        reply.Upvotes,
		Downvotes:      reply.Downvotes,
		CreatedAt:      reply.CreatedAt,
		UpdatedAt:      reply.UpdatedAt,
		Reactions:      []*ReactionGroupVO{},
		Children:       []*ReplyVO{},
	}
}

// BuildReplyTree 将扁平的回复列表重建为树形视图。
//   - 顶层回复与各层子回复均按 (创建时间, ID) 升序排列。
//   - 父回复缺失的节点（例如父节点已被删除但子节点因历史数据残留）
//     会被提升为顶层节点，保证不会静默丢失数据。
func BuildReplyTree(replies []*entities.Reply) []*ReplyVO {
	if len(replies) == 0 {
		return []*ReplyVO{}
	}

	// 1. 先为每条回复建立 VO 节点索引
	nodes := make(map[uint64]*ReplyVO, len(replies))
	ordered := make([]*ReplyVO, 0, len(replies))
	for _, reply := range replies {
		if reply == nil {
			continue
		}
		node := NewReplyVOFromEntity(reply)
		nodes[node.ID] = node
		ordered = append(ordered, node)
	}

	// 2. 挂载父子关系；孤儿节点提升为顶层
	roots := make([]*ReplyVO, 0)
	for _, node := range ordered {
		if node.ParentReplyID == nil {
			roots = append(roots, node)
			continue
		}
		parent, ok := nodes[*node.ParentReplyID]
		if !ok {
			roots = append(roots, node)
			continue
		}
		parent.Children = append(parent.Children, node)
	}

	// 3. 各层按 (创建时间, ID) 升序排序
	var sortLevel func(level []*ReplyVO)
	sortLevel = func(level []*ReplyVO) {
		sort.SliceStable(level, func(i, j int) bool {
			if level[i].CreatedAt.Equal(level[j].CreatedAt) {
				return level[i].ID < level[j].ID
			}
			return level[i].CreatedAt.Before(level[j].CreatedAt)
		})
		for _, node := range level {
			sortLevel(node.Children)
		}
	}
	sortLevel(roots)

	return roots
}

// AttachReplyReactions 将各回复的表情聚合递归挂载到回复树上。
func AttachReplyReactions(nodes []*ReplyVO, groups map[uint64][]*ReactionGroupVO) {
	for _, node := range nodes {
		if g, ok := groups[node.ID]; ok {
			node.Reactions = g
		}
		AttachReplyReactions(node.Children, groups)
	}
}

// AttachReplyVotes 将当前用户对各回复的投票状态递归挂载到回复树上。
func AttachReplyVotes(nodes []*ReplyVO, votes map[uint64]enums.VoteType) {
	for _, node := range nodes {
		if v, ok := votes[node.ID]; ok {
			voteCopy := v
			node.UserVote = &voteCopy
		}
		AttachReplyVotes(node.Children, votes)
	}
}
