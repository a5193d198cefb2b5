package mysql

import (
	"context"
	"errors"
	"fmt"

	"github.com/Xushengqwer/go-common/core"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/Xushengqwer/community_service/models/entities"
	myErrors "github.com/Xushengqwer/community_service/myErrors"
)

// EngagementRepository 定义了收藏与订阅事实在 MySQL 中的操作接口。
// 两者是语义完全相同的"存在即生效"标记，仅事实表不同。
type EngagementRepository interface {
	// ToggleBookmark 切换用户对话题的收藏状态，返回切换后是否已收藏。
	ToggleBookmark(ctx context.Context, topicID uint64, userID string) (bool, error)

	// ToggleSubscription 切换用户对话题的订阅状态，返回切换后是否已订阅。
	ToggleSubscription(ctx context.Context, topicID uint64, userID string) (bool, error)

	// ListBookmarkedTopicIDs 按收藏时间倒序分页获取用户收藏的话题 ID。
	// - 返回: ID 列表, 总数, 错误。
	ListBookmarkedTopicIDs(ctx context.Context, userID string, page, pageSize int) ([]uint64, int64, error)

	// ListSubscribedTopicIDs 按订阅时间倒序分页获取用户订阅的话题 ID。
	ListSubscribedTopicIDs(ctx context.Context, userID string, page, pageSize int) ([]uint64, int64, error)

	// ListSubscribersByTopic 获取话题的全部订阅者 ID，用于活动通知扇出。
	ListSubscribersByTopic(ctx context.Context, topicID uint64) ([]string, error)

	// GetEngagementFlags 查询用户对话题是否已收藏/已订阅，详情页展示使用。
	GetEngagementFlags(ctx context.Context, topicID uint64, userID string) (bookmarked bool, subscribed bool, err error)
}

type engagementRepository struct {
	db     *gorm.DB
	logger *core.ZapLogger
}

// NewEngagementRepository 是 engagementRepository 的构造函数。
func NewEngagementRepository(db *gorm.DB, logger *core.ZapLogger) EngagementRepository {
	return &engagementRepository{
		db:     db,
		logger: logger,
	}
}

// toggleFact 以删除优先的方式切换一条事实行。
// 返回切换后事实是否存在。model 必须是指向空实体的指针，
// createFn 负责在需要插入时构造具体的事实行。
func (r *engagementRepository) toggleFact(
	ctx context.Context,
	deleteScope func(tx *gorm.DB) *gorm.DB,
	createFn func(tx *gorm.DB) error,
) (bool, error) {
	var active bool

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := deleteScope(tx)
		if result.Error != nil {
			return fmt.Errorf("删除事实行失败: %w", result.Error)
		}
		if result.RowsAffected > 0 {
			active = false
			return nil
		}
		if err := createFn(tx); err != nil {
			if isDuplicateEntry(err) {
				// 并发双写只允许一个成功，输掉的一方等价于已生效
				return myErrors.ErrVoteConflict
			}
			return fmt.Errorf("插入事实行失败: %w", err)
		}
		active = true
		return nil
	})

	if err != nil {
		return false, err
	}
	return active, nil
}

// ToggleBookmark 实现收藏切换。
func (r *engagementRepository) ToggleBookmark(ctx context.Context, topicID uint64, userID string) (bool, error) {
	active, err := r.toggleFact(ctx,
		func(tx *gorm.DB) *gorm.DB {
			return tx.Where("topic_id = ? AND user_id = ?", topicID, userID).Delete(&entities.Bookmark{})
		},
		func(tx *gorm.DB) error {
			return tx.Create(&entities.Bookmark{TopicID: topicID, UserID: userID}).Error
		},
	)
	if err != nil && !errors.Is(err, myErrors.ErrVoteConflict) {
		r.logger.Error("切换收藏状态失败",
			zap.Uint64("topicID", topicID),
			zap.String("userID", userID),
			zap.Error(err),
		)
	}
	return active, err
}

// ToggleSubscription 实现订阅切换。
func (r *engagementRepository) ToggleSubscription(ctx context.Context, topicID uint64, userID string) (bool, error) {
	active, err := r.toggleFact(ctx,
		func(tx *gorm.DB) *gorm.DB {
			return tx.Where("topic_id = ? AND user_id = ?", topicID, userID).Delete(&entities.Subscription{})
		},
		func(tx *gorm.DB) error {
			return tx.Create(&entities.Subscription{TopicID: topicID, UserID: userID}).Error
		},
	)
	if err != nil && !errors.Is(err, myErrors.ErrVoteConflict) {
		r.logger.Error("切换订阅状态失败",
			zap.Uint64("topicID", topicID),
			zap.String("userID", userID),
			zap.Error(err),
		)
	}
	return active, err
}

// ListBookmarkedTopicIDs 实现用户收藏话题 ID 的分页查询。
func (r *engagementRepository) ListBookmarkedTopicIDs(ctx context.Context, userID string, page, pageSize int) ([]uint64, int64, error) {
	if pageSize <= 0 {
		pageSize = 20
	}
	if page <= 0 {
		page = 1
	}

	var total int64
	if err := r.db.WithContext(ctx).Model(&entities.Bookmark{}).
		Where("user_id = ?", userID).
		Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var ids []uint64
	err := r.db.WithContext(ctx).Model(&entities.Bookmark{}).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Order("id DESC").
		Offset((page - 1) * pageSize).
		Limit(pageSize).
		Pluck("topic_id", &ids).Error
	if err != nil {
		r.logger.Error("查询用户收藏话题列表失败", zap.String("userID", userID), zap.Error(err))
		return nil, 0, err
	}
	return ids, total, nil
}

// ListSubscribedTopicIDs 实现用户订阅话题 ID 的分页查询。
func (r *engagementRepository) ListSubscribedTopicIDs(ctx context.Context, userID string, page, pageSize int) ([]uint64, int64, error) {
	if pageSize <= 0 {
		pageSize = 20
	}
	if page <= 0 {
		page = 1
	}

	var total int64
	if err := r.db.WithContext(ctx).Model(&entities.Subscription{}).
		Where("user_id = ?", userID).
		Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var ids []uint64
	err := r.db.WithContext(ctx).Model(&entities.Subscription{}).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Order("id DESC").
		Offset((page - 1) * pageSize).
		Limit(pageSize).
		Pluck("topic_id", &ids).Error
	if err != nil {
		r.logger.Error("查询用户订阅话题列表失败", zap.String("userID", userID), zap.Error(err))
		return nil, 0, err
	}
	return ids, total, nil
}

// ListSubscribersByTopic 实现话题订阅者的查询。
func (r *engagementRepository) ListSubscribersByTopic(ctx context.Context, topicID uint64) ([]string, error) {
	var userIDs []string
	err := r.db.WithContext(ctx).Model(&entities.Subscription{}).
		Where("topic_id = ?", topicID).
		Pluck("user_id", &userIDs).Error
	if err != nil {
		r.logger.Error("查询话题订阅者失败", zap.Uint64("topicID", topicID), zap.Error(err))
		return nil, err
	}
	return userIDs, nil
}

// GetEngagementFlags 实现用户收藏/订阅标记的查询。
func (r *engagementRepository) GetEngagementFlags(ctx context.Context, topicID uint64, userID string) (bool, bool, error) {
	if userID == "" {
		return false, false, nil
	}

	var bookmarkCount int64
	if err := r.db.WithContext(ctx).Model(&entities.Bookmark{}).
		Where("topic_id = ? AND user_id = ?", topicID, userID).
		Count(&bookmarkCount).Error; err != nil {
		return false, false, err
	}

	var subscriptionCount int64
	if err := r.db.WithContext(ctx).Model(&entities.Subscription{}).
		Where("topic_id = ? AND user_id = ?", topicID, userID).
		Count(&subscriptionCount).Error; err != nil {
		return false, false, err
	}

	return bookmarkCount > 0, subscriptionCount > 0, nil
}
