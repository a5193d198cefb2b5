package service

import (
	"context"
	"time"

	"github.com/Xushengqwer/go-common/core"
	"go.uber.org/zap"

	"github.com/Xushengqwer/community_service/models/dto"
	"github.com/Xushengqwer/community_service/models/vo"
	"github.com/Xushengqwer/community_service/repo/mysql"
	"github.com/Xushengqwer/community_service/repo/redis"
)

// InteractionService 定义了处理投票与表情反应业务逻辑的接口。
// 这些操作全部是"切换"语义：同一请求重复提交会撤销前一次的效果，
// 天然幂等，客户端重试不会造成计数漂移。
type InteractionService interface {
	// VoteTopic 对话题投票（投/撤/换），返回切换后的投票状态。
	// - 投票净值变化会异步同步到近期热度榜。
	VoteTopic(ctx context.Context, topicID uint64, userID string, req *dto.VoteRequest) (*vo.VoteStateVO, error)

	// VoteReply 对回复投票（投/撤/换），返回切换后的投票状态。
	VoteReply(ctx context.Context, replyID uint64, userID string, req *dto.VoteRequest) (*vo.VoteStateVO, error)

	// ToggleReaction 切换用户对话题/回复的某个表情，返回切换后是否持有。
	ToggleReaction(ctx context.Context, userID string, req *dto.ReactionRequest) (*vo.ToggleStateVO, error)

	// ListReactions 获取目标上的表情聚合（按表情分组计数并附带反应者名单）。
	ListReactions(ctx context.Context, query *dto.ReactionListQuery) ([]*vo.ReactionGroupVO, error)
}

type interactionService struct {
	voteRepo       mysql.VoteRepository
	reactionRepo   mysql.ReactionRepository
	topicTrendRepo redis.TopicTrendRepository
	logger         *core.ZapLogger
}

// NewInteractionService 是 interactionService 的构造函数。
func NewInteractionService(
	voteRepo mysql.VoteRepository,
	reactionRepo mysql.ReactionRepository,
	topicTrendRepo redis.TopicTrendRepository,
	logger *core.ZapLogger,
) InteractionService {
	return &interactionService{
		voteRepo:       voteRepo,
		reactionRepo:   reactionRepo,
		topicTrendRepo: topicTrendRepo,
		logger:         logger,
	}
}

// VoteTopic 实现话题投票的切换。
func (s *interactionService) VoteTopic(ctx context.Context, topicID uint64, userID string, req *dto.VoteRequest) (*vo.VoteStateVO, error) {
	outcome, err := s.voteRepo.ToggleTopicVote(ctx, topicID, userID, req.VoteType)
	if err != nil {
		return nil, err
	}

	// 投票净值异步同步到近期热度榜。
	// 热度分只是排序信号，同步失败不影响投票结果，只记录日志。
	if outcome.NetDelta != 0 {
		go func(id uint64, delta int64) {
			bgCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			if trendErr := s.topicTrendRepo.AdjustTrendScore(bgCtx, id, delta); trendErr != nil {
				s.logger.Error("同步话题热度分失败",
					zap.Error(trendErr),
					zap.Uint64("topicID", id),
					zap.Int64("delta", delta),
				)
			}
		}(topicID, outcome.NetDelta)
	}

	return &vo.VoteStateVO{VoteType: outcome.NewState}, nil
}

// VoteReply 实现回复投票的切换。
func (s *interactionService) VoteReply(ctx context.Context, replyID uint64, userID string, req *dto.VoteRequest) (*vo.VoteStateVO, error) {
	outcome, err := s.voteRepo.ToggleReplyVote(ctx, replyID, userID, req.VoteType)
	if err != nil {
		return nil, err
	}
	return &vo.VoteStateVO{VoteType: outcome.NewState}, nil
}

// ToggleReaction 实现表情反应的切换。
func (s *interactionService) ToggleReaction(ctx context.Context, userID string, req *dto.ReactionRequest) (*vo.ToggleStateVO, error) {
	active, err := s.reactionRepo.ToggleReaction(ctx, req.TargetType, req.TargetID, userID, req.UserName, req.Emoji)
	if err != nil {
		return nil, err
	}

	s.logger.Info("表情反应切换成功",
		zap.Int("targetType", int(req.TargetType)),
		zap.Uint64("targetID", req.TargetID),
		zap.String("emoji", req.Emoji),
		zap.Bool("active", active),
	)
	return &vo.ToggleStateVO{Active: active}, nil
}

// ListReactions 实现目标表情聚合的查询。
// 聚合规则: 按表情分组计数，组间按计数降序（同数按表情字典序），
// 组内名单按反应时间先后排列。
func (s *interactionService) ListReactions(ctx context.Context, query *dto.ReactionListQuery) ([]*vo.ReactionGroupVO, error) {
	reactions, err := s.reactionRepo.ListReactionsByTarget(ctx, query.TargetType, query.TargetID)
	if err != nil {
		return nil, err
	}
	return vo.AggregateReactions(reactions), nil
}
