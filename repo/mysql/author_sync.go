package mysql

import (
	"context"
	"fmt"

	"github.com/Xushengqwer/go-common/core"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/Xushengqwer/community_service/models/entities"
)

// AuthorSyncRepository 定义了作者信息快照的同步接口。
// 话题/回复/表情上的作者用户名与头像是冗余快照，
// 用户服务发布资料变更事件后由 Kafka 消费者调用这里统一刷新。
type AuthorSyncRepository interface {
	// UpdateAuthorSnapshot 将用户的最新用户名与头像刷新到全部冗余位置。
	// - 三张表的更新在同一事务内完成，避免出现话题与回复署名不一致的窗口。
	UpdateAuthorSnapshot(ctx context.Context, userID, username, avatar string) error
}

type authorSyncRepository struct {
	db     *gorm.DB
	logger *core.ZapLogger
}

// NewAuthorSyncRepository 是 authorSyncRepository 的构造函数。
func NewAuthorSyncRepository(db *gorm.DB, logger *core.ZapLogger) AuthorSyncRepository {
	return &authorSyncRepository{
		db:     db,
		logger: logger,
	}
}

// UpdateAuthorSnapshot 实现作者快照的批量刷新。
func (r *authorSyncRepository) UpdateAuthorSnapshot(ctx context.Context, userID, username, avatar string) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&entities.Topic{}).
			Where("author_id = ?", userID).
			Updates(map[string]interface{}{
				"author_username": username,
				"author_avatar":   avatar,
			}).Error; err != nil {
			return fmt.Errorf("刷新话题作者快照失败: %w", err)
		}

		if err := tx.Model(&entities.Reply{}).
			Where("author_id = ?", userID).
			Updates(map[string]interface{}{
				"author_username": username,
				"author_avatar":   avatar,
			}).Error; err != nil {
			return fmt.Errorf("刷新回复作者快照失败: %w", err)
		}

		if err := tx.Model(&entities.Reaction{}).
			Where("user_id = ?", userID).
			Update("user_name", username).Error; err != nil {
			return fmt.Errorf("刷新表情用户名快照失败: %w", err)
		}

		return nil
	})

	if err != nil {
		r.logger.Error("同步作者信息快照失败", zap.String("userID", userID), zap.Error(err))
		return err
	}

	r.logger.Info("作者信息快照同步完成",
		zap.String("userID", userID),
		zap.String("username", username),
	)
	return nil
}
