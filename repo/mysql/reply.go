package mysql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Xushengqwer/go-common/commonerrors"
	"github.com/Xushengqwer/go-common/core"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/Xushengqwer/community_service/models/entities"
	"github.com/Xushengqwer/community_service/models/enums"
)

// ReplyRepository 定义了回复数据在 MySQL 中的持久化操作接口。
type ReplyRepository interface {
	// CreateReply 持久化一条新回复。
	// - 调用方负责校验父回复的归属（父回复必须属于同一话题）。
	CreateReply(ctx context.Context, reply *entities.Reply) error

	// GetReplyByID 根据 ID 检索回复。
	// - 未找到时返回 commonerrors.ErrRepoNotFound。
	GetReplyByID(ctx context.Context, id uint64) (*entities.Reply, error)

	// ListRepliesByTopicID 获取话题下全部回复（扁平列表）。
	// - 按 (created_at ASC, id ASC) 稳定排序，树形结构由上层组装。
	ListRepliesByTopicID(ctx context.Context, topicID uint64) ([]*entities.Reply, error)

	// UpdateReplyContent 更新回复正文。
	UpdateReplyContent(ctx context.Context, replyID uint64, content string) error

	// DeleteReplyTree 在单个事务内删除回复及其整棵子孙回复树，
	// 并硬删除这些回复上的投票与表情事实、软删除对应举报。
	// - 返回被删除的回复数量（含自身），用于上层统计。
	DeleteReplyTree(ctx context.Context, replyID uint64) (int64, error)

	// MarkBestAnswer 将指定回复标记为话题的最佳答案。
	// - 同一话题至多一个最佳答案：事务内先清除旧标记再设置新标记。
	MarkBestAnswer(ctx context.Context, topicID, replyID uint64) error

	// GetReplyCountsByTopicIDs 批量统计各话题的回复数。
	// - 服务于话题列表页的回复数展示，避免 N+1 查询。
	GetReplyCountsByTopicIDs(ctx context.Context, topicIDs []uint64) (map[uint64]int64, error)
}

type replyRepository struct {
	db     *gorm.DB
	logger *core.ZapLogger
}

// NewReplyRepository 是 replyRepository 的构造函数。
func NewReplyRepository(db *gorm.DB, logger *core.ZapLogger) ReplyRepository {
	return &replyRepository{
		db:     db,
		logger: logger,
	}
}

// CreateReply 实现回复的数据库插入操作。
func (r *replyRepository) CreateReply(ctx context.Context, reply *entities.Reply) error {
	if err := r.db.WithContext(ctx).Create(reply).Error; err != nil {
		r.logger.Error("创建回复数据库操作失败",
			zap.Error(err),
			zap.Uint64("topicID", reply.TopicID),
		)
		return err
	}
	return nil
}

// GetReplyByID 实现根据 ID 获取回复。
func (r *replyRepository) GetReplyByID(ctx context.Context, id uint64) (*entities.Reply, error) {
	var reply entities.Reply
	err := r.db.WithContext(ctx).First(&reply, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, commonerrors.ErrRepoNotFound
		}
		r.logger.Error("根据 ID 获取回复数据库查询失败", zap.Uint64("replyID", id), zap.Error(err))
		return nil, err
	}
	return &reply, nil
}

// ListRepliesByTopicID 实现获取话题下全部回复。
// 排序使用 (created_at, id) 双键，保证同一秒内创建的回复顺序稳定。
func (r *replyRepository) ListRepliesByTopicID(ctx context.Context, topicID uint64) ([]*entities.Reply, error) {
	var replies []*entities.Reply
	err := r.db.WithContext(ctx).
		Where("topic_id = ?", topicID).
		Order("created_at ASC").
		Order("id ASC").
		Find(&replies).Error
	if err != nil {
		r.logger.Error("获取话题回复列表数据库查询失败",
			zap.Uint64("topicID", topicID),
			zap.Error(err),
		)
		return nil, err
	}
	return replies, nil
}

// UpdateReplyContent 实现回复正文的更新。
func (r *replyRepository) UpdateReplyContent(ctx context.Context, replyID uint64, content string) error {
	result := r.db.WithContext(ctx).
		Model(&entities.Reply{}).
		Where("id = ? AND deleted_at IS NULL", replyID).
		Updates(map[string]interface{}{
			"content":    content,
			"updated_at": time.Now(),
		})
	if result.Error != nil {
		r.logger.Error("更新回复正文数据库操作失败", zap.Uint64("replyID", replyID), zap.Error(result.Error))
		return result.Error
	}
	if result.RowsAffected == 0 {
		return commonerrors.ErrRepoNotFound
	}
	return nil
}

// DeleteReplyTree 实现回复子树的级联删除。
// 子孙集合通过逐层 BFS 展开：回复树深度由业务控制在个位数，
// 层数次查询的成本可以接受，且不依赖 MySQL 8 的递归 CTE。
func (r *replyRepository) DeleteReplyTree(ctx context.Context, replyID uint64) (int64, error) {
	var deletedCount int64

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// 确认根回复存在
		var root entities.Reply
		if err := tx.First(&root, replyID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return commonerrors.ErrRepoNotFound
			}
			return err
		}

		// 逐层收集子孙回复 ID
		allIDs := []uint64{replyID}
		frontier := []uint64{replyID}
		for len(frontier) > 0 {
			var childIDs []uint64
			if err := tx.Model(&entities.Reply{}).
				Where("parent_reply_id IN ?", frontier).
				Pluck("id", &childIDs).Error; err != nil {
				return fmt.Errorf("查询子回复失败: %w", err)
			}
			allIDs = append(allIDs, childIDs...)
			frontier = childIDs
		}

		// 软删除整棵回复树
		result := tx.Where("id IN ?", allIDs).Delete(&entities.Reply{})
		if result.Error != nil {
			return fmt.Errorf("软删除回复树失败: %w", result.Error)
		}
		deletedCount = result.RowsAffected

		// 硬删除回复上的投票与表情事实
		if err := tx.Where("reply_id IN ?", allIDs).Delete(&entities.ReplyVote{}).Error; err != nil {
			return fmt.Errorf("删除回复投票事实失败: %w", err)
		}
		if err := tx.Where("target_type = ? AND target_id IN ?", enums.TargetReply, allIDs).
			Delete(&entities.Reaction{}).Error; err != nil {
			return fmt.Errorf("删除回复表情事实失败: %w", err)
		}

		// 软删除指向这些回复的举报
		if err := tx.Where("content_type = ? AND content_id IN ?", enums.ReportReply, allIDs).
			Delete(&entities.Report{}).Error; err != nil {
			return fmt.Errorf("删除回复举报记录失败: %w", err)
		}

		return nil
	})

	if err != nil {
		return 0, err
	}
	return deletedCount, nil
}

// MarkBestAnswer 实现最佳答案的标记。
// 清除旧标记与设置新标记在同一事务内完成，保证任意时刻
// 同一话题下 best_answer = true 的回复至多一条。
func (r *replyRepository) MarkBestAnswer(ctx context.Context, topicID, replyID uint64) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// 1. 校验回复存在且属于该话题
		var reply entities.Reply
		if err := tx.First(&reply, replyID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return commonerrors.ErrRepoNotFound
			}
			return err
		}
		if reply.TopicID != topicID {
			r.logger.Warn("尝试标记的最佳答案不属于该话题",
				zap.Uint64("topicID", topicID),
				zap.Uint64("replyID", replyID),
				zap.Uint64("replyTopicID", reply.TopicID),
			)
			return commonerrors.ErrRepoNotFound
		}

		// 2. 清除该话题下已有的最佳答案标记（重复标记时幂等）
		if err := tx.Model(&entities.Reply{}).
			Where("topic_id = ? AND best_answer = ?", topicID, true).
			Update("best_answer", false).Error; err != nil {
			return fmt.Errorf("清除旧最佳答案标记失败: %w", err)
		}

		// 3. 设置新的最佳答案
		if err := tx.Model(&entities.Reply{}).
			Where("id = ?", replyID).
			Update("best_answer", true).Error; err != nil {
			return fmt.Errorf("设置最佳答案标记失败: %w", err)
		}

		return nil
	})
}

// GetReplyCountsByTopicIDs 实现各话题回复数的批量统计。
func (r *replyRepository) GetReplyCountsByTopicIDs(ctx context.Context, topicIDs []uint64) (map[uint64]int64, error) {
	counts := make(map[uint64]int64, len(topicIDs))
	if len(topicIDs) == 0 {
		return counts, nil
	}

	type row struct {
		TopicID uint64
		Count   int64
	}
	var rows []row
	err := r.db.WithContext(ctx).
		Model(&entities.Reply{}).
		Select("topic_id, COUNT(*) as count").
		Where("topic_id IN ?", topicIDs).
		Group("topic_id").
		Scan(&rows).Error
	if err != nil {
		r.logger.Error("批量统计话题回复数失败", zap.Error(err), zap.Int("topicCount", len(topicIDs)))
		return nil, err
	}

	for _, rw := range rows {
		counts[rw.TopicID] = rw.Count
	}
	return counts, nil
}
