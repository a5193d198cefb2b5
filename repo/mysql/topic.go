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

	"github.com/Xushengqwer/community_service/models/dto"
	"github.com/Xushengqwer/community_service/models/entities"
	"github.com/Xushengqwer/community_service/models/enums"
)

// TopicRepository 定义了话题数据在 MySQL 中的持久化操作接口。
// 接口的设计旨在将数据访问逻辑与业务逻辑（服务层）解耦。
type TopicRepository interface {
	// CreateTopic 持久化一个新的话题记录。
	// - 这是话题生命周期的起点，对应用户发布话题的操作。
	CreateTopic(ctx context.Context, db *gorm.DB, topic *entities.Topic) error

	// GetTopicByID 根据单个 ID 检索话题信息。
	// - 如果未找到话题，返回 commonerrors.ErrRepoNotFound 错误。
	GetTopicByID(ctx context.Context, id uint64) (*entities.Topic, error)

	// UpdateTopic 更新指定话题的可编辑字段 (标题/简介/正文/分类/标签)。
	// - 传入 nil 表示不更新对应字段；总是会刷新 updated_at。
	UpdateTopic(ctx context.Context, topicID uint64, title, description, content, category, tags *string) error

	// DeleteTopicCascade 在单个事务内删除话题及其全部关联数据：
	// 回复（软删除）、话题与回复的投票事实、表情反应事实、
	// 收藏、订阅以及指向该话题的举报记录。
	// - 级联删除保证话题消失后不会留下可查询的孤儿数据。
	DeleteTopicCascade(ctx context.Context, topicID uint64) error

	// ListTopics 按条件分页查询话题列表。
	// - 支持分类/标签/作者/状态/时间范围筛选与关键词搜索，
	//   排序方式见 dto.TopicListQuery（latest / views）。
	// - 返回: 话题列表, 符合条件的总记录数, 错误。
	ListTopics(ctx context.Context, params *dto.TopicListQuery) ([]*entities.Topic, int64, error)

	// GetTopicsByTimeline 实现按时间线、条件筛选和游标分页查询话题列表。
	// - 返回: 话题列表, 下一页游标时间, 下一页游标ID, 错误。
	GetTopicsByTimeline(ctx context.Context, params *dto.TimelineQuery) ([]*entities.Topic, *time.Time, *uint64, error)

	// GetTopicsByIDs 根据 ID 列表批量检索话题。
	// - 服务于 trending 排序（Redis 给出有序 ID 列表后回表）与收藏/订阅列表。
	GetTopicsByIDs(ctx context.Context, ids []uint64) ([]*entities.Topic, error)
}

type topicRepository struct {
	db     *gorm.DB
	logger *core.ZapLogger
}

// NewTopicRepository 是 topicRepository 的构造函数。
func NewTopicRepository(db *gorm.DB, logger *core.ZapLogger) TopicRepository {
	return &topicRepository{
		db:     db,
		logger: logger,
	}
}

// CreateTopic 实现话题的数据库插入操作。
// 使用传入的 db 对象（可以是事务 tx）执行，便于服务层将插入纳入更大的事务。
func (r *topicRepository) CreateTopic(ctx context.Context, db *gorm.DB, topic *entities.Topic) error {
	if err := db.WithContext(ctx).Create(topic).Error; err != nil {
		return err
	}
	// 创建成功后，topic 对象会包含 GORM 自动生成的 ID 和时间戳。
	return nil
}

// GetTopicByID 实现根据单个 ID 获取话题。
func (r *topicRepository) GetTopicByID(ctx context.Context, id uint64) (*entities.Topic, error) {
	var topic entities.Topic
	err := r.db.WithContext(ctx).First(&topic, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			r.logger.Warn("根据 ID 获取话题未找到", zap.Uint64("topicID", id))
			return nil, commonerrors.ErrRepoNotFound
		}
		r.logger.Error("根据 ID 获取话题数据库查询失败", zap.Uint64("topicID", id), zap.Error(err))
		return nil, err
	}
	return &topic, nil
}

// UpdateTopic 实现话题可编辑字段的更新。
// 参数为指针类型，传入 nil 的字段不会被更新。
func (r *topicRepository) UpdateTopic(ctx context.Context, topicID uint64, title, description, content, category, tags *string) error {
	updateMap := make(map[string]interface{})

	if title != nil {
		updateMap["title"] = *title
	}
	if description != nil {
		updateMap["description"] = *description
	}
	if content != nil {
		updateMap["content"] = *content
	}
	if category != nil {
		updateMap["category"] = *category
	}
	if tags != nil {
		updateMap["tags"] = *tags
	}

	if len(updateMap) == 0 {
		r.logger.Info("没有提供任何有效的字段来更新话题 (所有可选参数均为nil)",
			zap.Uint64("topicID", topicID),
		)
		return nil
	}

	updateMap["updated_at"] = time.Now()

	result := r.db.WithContext(ctx).
		Model(&entities.Topic{}).
		Where("id = ? AND deleted_at IS NULL", topicID).
		Updates(updateMap)

	if result.Error != nil {
		r.logger.Error("更新话题数据库操作失败",
			zap.Error(result.Error),
			zap.Uint64("topicID", topicID),
			zap.Any("updateData", updateMap),
		)
		return result.Error
	}

	if result.RowsAffected == 0 {
		r.logger.Warn("尝试更新话题但未找到记录或记录已被删除", zap.Uint64("topicID", topicID))
		return commonerrors.ErrRepoNotFound
	}

	return nil
}

// DeleteTopicCascade 实现话题及关联数据的级联删除。
// 话题与回复走软删除（保留可追溯性），事实行（投票/表情/收藏/订阅）走硬删除，
// 否则唯一索引会被软删除残留行卡住。
func (r *topicRepository) DeleteTopicCascade(ctx context.Context, topicID uint64) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// 1. 软删除话题主记录；0 行受影响说明话题不存在。
		result := tx.Delete(&entities.Topic{}, topicID)
		if result.Error != nil {
			return fmt.Errorf("软删除话题主记录失败: %w", result.Error)
		}
		if result.RowsAffected == 0 {
			return commonerrors.ErrRepoNotFound
		}

		// 2. 收集该话题下全部回复 ID，用于清理回复级的事实行。
		var replyIDs []uint64
		if err := tx.Model(&entities.Reply{}).
			Where("topic_id = ?", topicID).
			Pluck("id", &replyIDs).Error; err != nil {
			return fmt.Errorf("查询话题回复 ID 失败: %w", err)
		}

		// 3. 软删除全部回复。
		if err := tx.Where("topic_id = ?", topicID).Delete(&entities.Reply{}).Error; err != nil {
			return fmt.Errorf("软删除话题回复失败: %w", err)
		}

		// 4. 硬删除事实行：话题投票、回复投票、表情、收藏、订阅。
		if err := tx.Where("topic_id = ?", topicID).Delete(&entities.TopicVote{}).Error; err != nil {
			return fmt.Errorf("删除话题投票事实失败: %w", err)
		}
		if len(replyIDs) > 0 {
			if err := tx.Where("reply_id IN ?", replyIDs).Delete(&entities.ReplyVote{}).Error; err != nil {
				return fmt.Errorf("删除回复投票事实失败: %w", err)
			}
		}
		if err := tx.Where("target_type = ? AND target_id = ?", enums.TargetTopic, topicID).
			Delete(&entities.Reaction{}).Error; err != nil {
			return fmt.Errorf("删除话题表情事实失败: %w", err)
		}
		if len(replyIDs) > 0 {
			if err := tx.Where("target_type = ? AND target_id IN ?", enums.TargetReply, replyIDs).
				Delete(&entities.Reaction{}).Error; err != nil {
				return fmt.Errorf("删除回复表情事实失败: %w", err)
			}
		}
		if err := tx.Where("topic_id = ?", topicID).Delete(&entities.Bookmark{}).Error; err != nil {
			return fmt.Errorf("删除收藏事实失败: %w", err)
		}
		if err := tx.Where("topic_id = ?", topicID).Delete(&entities.Subscription{}).Error; err != nil {
			return fmt.Errorf("删除订阅事实失败: %w", err)
		}

		// 5. 软删除指向该话题及其回复的举报记录。
		if err := tx.Where("content_type = ? AND content_id = ?", enums.ReportTopic, topicID).
			Delete(&entities.Report{}).Error; err != nil {
			return fmt.Errorf("删除话题举报记录失败: %w", err)
		}
		if len(replyIDs) > 0 {
			if err := tx.Where("content_type = ? AND content_id IN ?", enums.ReportReply, replyIDs).
				Delete(&entities.Report{}).Error; err != nil {
				return fmt.Errorf("删除回复举报记录失败: %w", err)
			}
		}

		return nil
	})
}

// ListTopics 实现按条件分页查询话题列表。
func (r *topicRepository) ListTopics(ctx context.Context, params *dto.TopicListQuery) ([]*entities.Topic, int64, error) {
	var topics []*entities.Topic
	var totalCount int64

	pageSize := params.PageSize
	if pageSize <= 0 {
		pageSize = 20
		r.logger.Warn("ListTopics 接收到的 PageSize 无效，使用默认值",
			zap.Int("receivedPageSize", params.PageSize),
			zap.Int("defaultPageSize", pageSize),
		)
	}
	page := params.Page
	if page <= 0 {
		page = 1
	}

	query := r.db.WithContext(ctx).Model(&entities.Topic{})
	countQuery := r.db.WithContext(ctx).Model(&entities.Topic{})

	applyFilters := func(q *gorm.DB) *gorm.DB {
		if params.Category != nil && *params.Category != "" {
			q = q.Where("category = ?", *params.Category)
		}
		if params.Tag != nil && *params.Tag != "" {
			// 标签为逗号拼接存储，LIKE 匹配即可满足本域的筛选需求
			q = q.Where("tags LIKE ?", "%"+*params.Tag+"%")
		}
		if params.AuthorID != nil && *params.AuthorID != "" {
			q = q.Where("author_id = ?", *params.AuthorID)
		}
		if params.Status != nil {
			q = q.Where("status = ?", *params.Status)
		}
		if params.Keyword != nil && *params.Keyword != "" {
			kw := "%" + *params.Keyword + "%"
			q = q.Where("(title LIKE ? OR description LIKE ?)", kw, kw)
		}
		if params.StartDate != nil {
			q = q.Where("created_at >= ?", *params.StartDate)
		}
		if params.EndDate != nil {
			q = q.Where("created_at <= ?", *params.EndDate)
		}
		return q
	}
	query = applyFilters(query)
	countQuery = applyFilters(countQuery)

	if err := countQuery.Count(&totalCount).Error; err != nil {
		r.logger.Error("话题列表计数查询失败", zap.Error(err), zap.Any("params", params))
		return nil, 0, fmt.Errorf("计数话题失败: %w", err)
	}
	if totalCount == 0 {
		return topics, 0, nil
	}

	// 排序：置顶话题永远排在最前，其后按请求的排序方式排列。
	switch params.Sort {
	case dto.TopicSortViews:
		query = query.Order("pinned DESC").Order("view_count DESC").Order("id DESC")
	default: // dto.TopicSortLatest
		query = query.Order("pinned DESC").Order("created_at DESC").Order("id DESC")
	}

	offset := (page - 1) * pageSize
	if err := query.Offset(offset).Limit(pageSize).Find(&topics).Error; err != nil {
		r.logger.Error("话题列表查询失败", zap.Error(err), zap.Any("params", params))
		return nil, 0, fmt.Errorf("查询话题列表失败: %w", err)
	}

	return topics, totalCount, nil
}

// GetTopicsByTimeline 实现按时间线、条件筛选和游标分页查询话题列表。
func (r *topicRepository) GetTopicsByTimeline(ctx context.Context, params *dto.TimelineQuery) ([]*entities.Topic, *time.Time, *uint64, error) {
	var topics []*entities.Topic

	pageSize := params.PageSize
	if pageSize <= 0 {
		pageSize = 20
	}

	query := r.db.WithContext(ctx).Model(&entities.Topic{})

	if params.Category != nil && *params.Category != "" {
		query = query.Where("category = ?", *params.Category)
	}
	if params.Keyword != nil && *params.Keyword != "" {
		query = query.Where("title LIKE ?", "%"+*params.Keyword+"%")
	}

	// 游标条件：严格按 (created_at, id) 双字段比较，保证同一秒内多条记录不漏不重。
	if params.LastCreatedAt != nil && params.LastTopicID != nil {
		query = query.Where("(created_at < ? OR (created_at = ? AND id < ?))",
			*params.LastCreatedAt, *params.LastCreatedAt, *params.LastTopicID)
	}

	query = query.Order("created_at DESC").Order("id DESC")

	// 查询 pageSize + 1 条记录，用于判断是否还有下一页。
	if err := query.Limit(pageSize + 1).Find(&topics).Error; err != nil {
		r.logger.Error("按时间线获取话题列表数据库查询失败",
			zap.Error(err),
			zap.Any("queryParams", params),
		)
		return nil, nil, nil, err
	}

	var nextCreatedAt *time.Time
	var nextTopicID *uint64

	if len(topics) > pageSize {
		lastInPage := topics[pageSize-1]
		nextCreatedAt = &lastInPage.CreatedAt
		nextTopicID = &lastInPage.ID
		topics = topics[:pageSize]
	}

	return topics, nextCreatedAt, nextTopicID, nil
}

// GetTopicsByIDs 实现按 ID 列表批量获取话题。
func (r *topicRepository) GetTopicsByIDs(ctx context.Context, ids []uint64) ([]*entities.Topic, error) {
	if len(ids) == 0 {
		return []*entities.Topic{}, nil
	}
	var topics []*entities.Topic
	if err := r.db.WithContext(ctx).Where("id IN ?", ids).Find(&topics).Error; err != nil {
		r.logger.Error("按 ID 列表批量获取话题失败", zap.Error(err), zap.Int("idCount", len(ids)))
		return nil, err
	}
	return topics, nil
}
