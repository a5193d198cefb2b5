package mysql

import (
	"context"
	"time"

	"github.com/Xushengqwer/go-common/commonerrors"
	"github.com/Xushengqwer/go-common/core"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/Xushengqwer/community_service/models/entities"
	"github.com/Xushengqwer/community_service/models/enums"
)

// TopicAdminRepository 定义了话题治理字段（状态/锁定/置顶）的更新接口。
// 与 TopicRepository 分开，是因为这些字段的写入路径受管控策略约束，
// 普通的内容编辑接口不应触碰它们。
type TopicAdminRepository interface {
	// UpdateTopicStatus 流转话题的生命周期状态。
	// - 任意状态间的转换都是合法的，不做状态机校验。
	UpdateTopicStatus(ctx context.Context, topicID uint64, status enums.TopicStatus) error

	// UpdateLocked 设置话题的锁定标记。锁定只拦截新增回复。
	UpdateLocked(ctx context.Context, topicID uint64, locked bool) error

	// UpdatePinned 设置话题的置顶标记。
	UpdatePinned(ctx context.Context, topicID uint64, pinned bool) error
}

type topicAdminRepository struct {
	db     *gorm.DB
	logger *core.ZapLogger
}

// NewTopicAdminRepository 是 topicAdminRepository 的构造函数。
func NewTopicAdminRepository(db *gorm.DB, logger *core.ZapLogger) TopicAdminRepository {
	return &topicAdminRepository{
		db:     db,
		logger: logger,
	}
}

// updateGovernanceField 更新话题上的单个治理字段。
func (r *topicAdminRepository) updateGovernanceField(ctx context.Context, topicID uint64, field string, value interface{}) error {
	result := r.db.WithContext(ctx).
		Model(&entities.Topic{}).
		Where("id = ? AND deleted_at IS NULL", topicID).
		Updates(map[string]interface{}{
			field:        value,
			"updated_at": time.Now(),
		})
	if result.Error != nil {
		r.logger.Error("更新话题治理字段失败",
			zap.Uint64("topicID", topicID),
			zap.String("field", field),
			zap.Any("value", value),
			zap.Error(result.Error),
		)
		return result.Error
	}
	if result.RowsAffected == 0 {
		return commonerrors.ErrRepoNotFound
	}
	return nil
}

// UpdateTopicStatus 实现话题状态的流转。
func (r *topicAdminRepository) UpdateTopicStatus(ctx context.Context, topicID uint64, status enums.TopicStatus) error {
	return r.updateGovernanceField(ctx, topicID, "status", status)
}

// UpdateLocked 实现话题锁定标记的设置。
func (r *topicAdminRepository) UpdateLocked(ctx context.Context, topicID uint64, locked bool) error {
	return r.updateGovernanceField(ctx, topicID, "locked", locked)
}

// UpdatePinned 实现话题置顶标记的设置。
func (r *topicAdminRepository) UpdatePinned(ctx context.Context, topicID uint64, pinned bool) error {
	return r.updateGovernanceField(ctx, topicID, "pinned", pinned)
}
