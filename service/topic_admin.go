package service

import (
	"context"

	"github.com/Xushengqwer/go-common/core"
	"go.uber.org/zap"

	"github.com/Xushengqwer/community_service/moderation"
	myErrors "github.com/Xushengqwer/community_service/myErrors"
	"github.com/Xushengqwer/community_service/repo/mysql"
)

// TopicAdminService 定义了话题治理操作（锁定/置顶）的业务逻辑接口。
// 这些操作仅管理员可执行。
type TopicAdminService interface {
	// SetLocked 设置话题的锁定标记。锁定只拦截新增回复，
	// 投票/表情/收藏等参与行为不受影响。
	SetLocked(ctx context.Context, topicID uint64, actor moderation.Actor, locked bool) error

	// SetPinned 设置话题的置顶标记。置顶话题在列表排序中优先。
	SetPinned(ctx context.Context, topicID uint64, actor moderation.Actor, pinned bool) error
}

type topicAdminService struct {
	topicRepo      mysql.TopicRepository
	topicAdminRepo mysql.TopicAdminRepository
	logger         *core.ZapLogger
}

// NewTopicAdminService 是 topicAdminService 的构造函数。
func NewTopicAdminService(
	topicRepo mysql.TopicRepository,
	topicAdminRepo mysql.TopicAdminRepository,
	logger *core.ZapLogger,
) TopicAdminService {
	return &topicAdminService{
		topicRepo:      topicRepo,
		topicAdminRepo: topicAdminRepo,
		logger:         logger,
	}
}

// SetLocked 实现话题锁定标记的设置。
func (s *topicAdminService) SetLocked(ctx context.Context, topicID uint64, actor moderation.Actor, locked bool) error {
	if !moderation.CanMutate(actor, "", moderation.ActionAdmin) {
		s.logger.Warn("非管理员尝试设置话题锁定标记",
			zap.Uint64("topicID", topicID),
			zap.String("actorID", actor.UserID),
		)
		return myErrors.ErrForbidden
	}

	// 校验话题存在，对不存在的话题返回明确的 404 而不是静默成功
	if _, err := s.topicRepo.GetTopicByID(ctx, topicID); err != nil {
		return err
	}

	if err := s.topicAdminRepo.UpdateLocked(ctx, topicID, locked); err != nil {
		return err
	}

	s.logger.Info("话题锁定标记已更新",
		zap.Uint64("topicID", topicID),
		zap.Bool("locked", locked),
		zap.String("actorID", actor.UserID),
	)
	return nil
}

// SetPinned 实现话题置顶标记的设置。
func (s *topicAdminService) SetPinned(ctx context.Context, topicID uint64, actor moderation.Actor, pinned bool) error {
	if !moderation.CanMutate(actor, "", moderation.ActionAdmin) {
		s.logger.Warn("非管理员尝试设置话题置顶标记",
			zap.Uint64("topicID", topicID),
			zap.String("actorID", actor.UserID),
		)
		return myErrors.ErrForbidden
	}

	if _, err := s.topicRepo.GetTopicByID(ctx, topicID); err != nil {
		return err
	}

	if err := s.topicAdminRepo.UpdatePinned(ctx, topicID, pinned); err != nil {
		return err
	}

	s.logger.Info("话题置顶标记已更新",
		zap.Uint64("topicID", topicID),
		zap.Bool("pinned", pinned),
		zap.String("actorID", actor.UserID),
	)
	return nil
}
