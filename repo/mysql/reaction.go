package mysql

import (
	"context"
	"errors"
	"fmt"

	"github.com/Xushengqwer/go-common/core"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/Xushengqwer/community_service/models/entities"
	"github.com/Xushengqwer/community_service/models/enums"
	myErrors "github.com/Xushengqwer/community_service/myErrors"
)

// ReactionRepository 定义了表情反应事实在 MySQL 中的操作接口。
type ReactionRepository interface {
	// ToggleReaction 切换用户对目标的某个表情：不存在则添加，已存在则撤销。
	// - 返回切换后是否持有该表情。
	// - 表情没有"换票"语义，不同表情互不影响。
	ToggleReaction(ctx context.Context, targetType enums.TargetType, targetID uint64, userID, userName, emoji string) (bool, error)

	// ListReactionsByTarget 获取目标上的全部表情事实行。
	ListReactionsByTarget(ctx context.Context, targetType enums.TargetType, targetID uint64) ([]*entities.Reaction, error)

	// ListReactionsByTargets 批量获取一组目标上的表情事实行。
	// - 话题详情页一次性拉取话题与全部回复的表情时使用。
	ListReactionsByTargets(ctx context.Context, targetType enums.TargetType, targetIDs []uint64) ([]*entities.Reaction, error)
}

type reactionRepository struct {
	db     *gorm.DB
	logger *core.ZapLogger
}

// NewReactionRepository 是 reactionRepository 的构造函数。
func NewReactionRepository(db *gorm.DB, logger *core.ZapLogger) ReactionRepository {
	return &reactionRepository{
		db:     db,
		logger: logger,
	}
}

// ToggleReaction 实现表情的切换。
// 先尝试删除，删到了就是撤销；没删到则插入，唯一索引兜底并发重复。
func (r *reactionRepository) ToggleReaction(ctx context.Context, targetType enums.TargetType, targetID uint64, userID, userName, emoji string) (bool, error) {
	var active bool

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Where("target_type = ? AND target_id = ? AND user_id = ? AND emoji = ?",
			targetType, targetID, userID, emoji).
			Delete(&entities.Reaction{})
		if result.Error != nil {
			return fmt.Errorf("删除表情事实失败: %w", result.Error)
		}
		if result.RowsAffected > 0 {
			active = false
			return nil
		}

		reaction := entities.Reaction{
			TargetType: targetType,
			TargetID:   targetID,
			UserID:     userID,
			UserName:   userName,
			Emoji:      emoji,
		}
		if err := tx.Create(&reaction).Error; err != nil {
			if isDuplicateEntry(err) {
				return myErrors.ErrVoteConflict
			}
			return fmt.Errorf("插入表情事实失败: %w", err)
		}
		active = true
		return nil
	})

	if err != nil {
		if errors.Is(err, myErrors.ErrVoteConflict) {
			r.logger.Warn("表情切换发生并发冲突",
				zap.Uint64("targetID", targetID),
				zap.String("userID", userID),
				zap.String("emoji", emoji),
			)
		}
		return false, err
	}
	return active, nil
}

// ListReactionsByTarget 实现目标表情事实的查询。
func (r *reactionRepository) ListReactionsByTarget(ctx context.Context, targetType enums.TargetType, targetID uint64) ([]*entities.Reaction, error) {
	var reactions []*entities.Reaction
	err := r.db.WithContext(ctx).
		Where("target_type = ? AND target_id = ?", targetType, targetID).
		Order("created_at ASC").
		Order("id ASC").
		Find(&reactions).Error
	if err != nil {
		r.logger.Error("查询目标表情事实失败",
			zap.Int("targetType", int(targetType)),
			zap.Uint64("targetID", targetID),
			zap.Error(err),
		)
		return nil, err
	}
	return reactions, nil
}

// ListReactionsByTargets 实现一组目标表情事实的批量查询。
func (r *reactionRepository) ListReactionsByTargets(ctx context.Context, targetType enums.TargetType, targetIDs []uint64) ([]*entities.Reaction, error) {
	if len(targetIDs) == 0 {
		return []*entities.Reaction{}, nil
	}
	var reactions []*entities.Reaction
	err := r.db.WithContext(ctx).
		Where("target_type = ? AND target_id IN ?", targetType, targetIDs).
		Order("created_at ASC").
		Order("id ASC").
		Find(&reactions).Error
	if err != nil {
		r.logger.Error("批量查询目标表情事实失败",
			zap.Int("targetType", int(targetType)),
			zap.Int("targetCount", len(targetIDs)),
			zap.Error(err),
		)
		return nil, err
	}
	return reactions, nil
}
