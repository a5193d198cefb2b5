package service

import (
	"context"

	"github.com/Xushengqwer/go-common/core"
	"go.uber.org/zap"

	"github.com/Xushengqwer/community_service/models/dto"
	"github.com/Xushengqwer/community_service/models/entities"
	"github.com/Xushengqwer/community_service/models/events"
	"github.com/Xushengqwer/community_service/models/vo"
	"github.com/Xushengqwer/community_service/moderation"
	myErrors "github.com/Xushengqwer/community_service/myErrors"
	"github.com/Xushengqwer/community_service/repo/mysql"
)

// ReplyService 定义了处理回复核心业务逻辑的接口。
type ReplyService interface {
	// AddReply 在话题下发表回复（顶层或嵌套）。
	// - 话题被锁定时拒绝，返回 myErrors.ErrTopicLocked。
	// - 父回复必须存在且属于同一话题，否则返回 myErrors.ErrInvalidParentReply。
	// - 发表成功后向话题订阅者（除发表者本人外）扇出通知事件。
	AddReply(ctx context.Context, topicID uint64, req *dto.CreateReplyRequest) (*vo.ReplyVO, error)

	// EditReply 编辑回复正文。仅回复作者或管理员可操作。
	EditReply(ctx context.Context, replyID uint64, actor moderation.Actor, req *dto.UpdateReplyRequest) error

	// DeleteReply 删除回复及其整棵子孙回复树。仅回复作者或管理员可操作。
	// - 返回本次删除的回复数量（含自身）。
	DeleteReply(ctx context.Context, replyID uint64, actor moderation.Actor) (int64, error)

	// MarkBestAnswer 将回复标记为话题的最佳答案。仅话题作者或管理员可操作。
	// - 同一话题至多一个最佳答案，重复标记会替换旧标记。
	// - 标记成功后通知话题订阅者。
	MarkBestAnswer(ctx context.Context, topicID, replyID uint64, actor moderation.Actor) error
}

type replyService struct {
	topicRepo mysql.TopicRepository
	replyRepo mysql.ReplyRepository
	notifier  *SubscriberNotifier
	logger    *core.ZapLogger
}

// NewReplyService 是 replyService 的构造函数。
// - notifier 与话题服务共享同一个实例，订阅者扇出统一走 Kafka。
func NewReplyService(
	topicRepo mysql.TopicRepository,
	replyRepo mysql.ReplyRepository,
	notifier *SubscriberNotifier,
	logger *core.ZapLogger,
) ReplyService {
	return &replyService{
		topicRepo: topicRepo,
		replyRepo: replyRepo,
		notifier:  notifier,
		logger:    logger,
	}
}

// AddReply 实现回复的发表。
func (s *replyService) AddReply(ctx context.Context, topicID uint64, req *dto.CreateReplyRequest) (*vo.ReplyVO, error) {
	// 1. 校验话题存在且未锁定。锁定只约束创作类行为。
	topic, err := s.topicRepo.GetTopicByID(ctx, topicID)
	if err != nil {
		return nil, err
	}
	if topic.Locked {
		s.logger.Warn("尝试在已锁定的话题下发表回复",
			zap.Uint64("topicID", topicID),
			zap.String("authorID", req.AuthorID),
		)
		return nil, myErrors.ErrTopicLocked
	}

	// 2. 嵌套回复需校验父回复归属：父回复必须存在且属于同一话题
	if req.ParentReplyID != nil {
		parent, parentErr := s.replyRepo.GetReplyByID(ctx, *req.ParentReplyID)
		if parentErr != nil {
			return nil, myErrors.ErrInvalidParentReply
		}
		if parent.TopicID != topicID {
			s.logger.Warn("父回复不属于目标话题，拒绝跨话题嵌套",
				zap.Uint64("topicID", topicID),
				zap.Uint64("parentReplyID", *req.ParentReplyID),
				zap.Uint64("parentTopicID", parent.TopicID),
			)
			return nil, myErrors.ErrInvalidParentReply
		}
	}

	// 3. 持久化回复
	reply := &entities.Reply{
		TopicID:        topicID,
		AuthorID:       req.AuthorID,
		AuthorUsername: req.AuthorUsername,
		AuthorAvatar:   req.AuthorAvatar,
		Content:        req.Content,
		ParentReplyID:  req.ParentReplyID,
	}
	if err := s.replyRepo.CreateReply(ctx, reply); err != nil {
		return nil, err
	}

	s.logger.Info("回复发表成功",
		zap.Uint64("replyID", reply.ID),
		zap.Uint64("topicID", topicID),
		zap.String("authorID", req.AuthorID),
	)

	// 4. 通知话题订阅者（fire-and-forget，发表者本人被剔除）
	actor := moderation.Actor{UserID: req.AuthorID}
	replyID := reply.ID
	s.notifier.NotifySubscribers(topicID, topic.Title, actor, events.NotificationNewReply, &replyID)

	return vo.NewReplyVOFromEntity(reply), nil
}

// EditReply 实现回复正文的编辑。
func (s *replyService) EditReply(ctx context.Context, replyID uint64, actor moderation.Actor, req *dto.UpdateReplyRequest) error {
	reply, err := s.replyRepo.GetReplyByID(ctx, replyID)
	if err != nil {
		return err
	}

	if !moderation.CanMutate(actor, reply.AuthorID, moderation.ActionEditOwn) {
		s.logger.Warn("非作者尝试编辑回复",
			zap.Uint64("replyID", replyID),
			zap.String("actorID", actor.UserID),
			zap.String("authorID", reply.AuthorID),
		)
		return myErrors.ErrForbidden
	}

	return s.replyRepo.UpdateReplyContent(ctx, replyID, req.Content)
}

// DeleteReply 实现回复树的删除。
// 删除回复会连带删除其全部子孙回复，以及这些回复上的投票与表情事实。
func (s *replyService) DeleteReply(ctx context.Context, replyID uint64, actor moderation.Actor) (int64, error) {
	reply, err := s.replyRepo.GetReplyByID(ctx, replyID)
	if err != nil {
		return 0, err
	}

	if !moderation.CanMutate(actor, reply.AuthorID, moderation.ActionEditOwn) {
		return 0, myErrors.ErrForbidden
	}

	deletedCount, err := s.replyRepo.DeleteReplyTree(ctx, replyID)
	if err != nil {
		s.logger.Error("删除回复树失败", zap.Error(err), zap.Uint64("replyID", replyID))
		return 0, err
	}

	s.logger.Info("回复树删除成功",
		zap.Uint64("replyID", replyID),
		zap.Int64("deletedCount", deletedCount),
		zap.String("actorID", actor.UserID),
	)
	return deletedCount, nil
}

// MarkBestAnswer 实现最佳答案的标记。
// 权限归话题作者（或管理员），而非回复作者。
func (s *replyService) MarkBestAnswer(ctx context.Context, topicID, replyID uint64, actor moderation.Actor) error {
	topic, err := s.topicRepo.GetTopicByID(ctx, topicID)
	if err != nil {
		return err
	}

	if !moderation.CanMutate(actor, topic.AuthorID, moderation.ActionSetStatus) {
		return myErrors.ErrForbidden
	}

	// 归属校验与旧标记清除在仓库层的同一事务内完成
	if err := s.replyRepo.MarkBestAnswer(ctx, topicID, replyID); err != nil {
		return err
	}

	s.logger.Info("最佳答案标记成功",
		zap.Uint64("topicID", topicID),
		zap.Uint64("replyID", replyID),
	)

	bestReplyID := replyID
	s.notifier.NotifySubscribers(topicID, topic.Title, actor, events.NotificationBestAnswer, &bestReplyID)
	return nil
}
