package mysql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Xushengqwer/go-common/core"
	"github.com/go-sql-driver/mysql"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/Xushengqwer/community_service/models/entities"
	"github.com/Xushengqwer/community_service/models/enums"
	myErrors "github.com/Xushengqwer/community_service/myErrors"
)

// mysqlDuplicateEntry 是 MySQL 唯一键冲突的错误码 (ER_DUP_ENTRY)。
const mysqlDuplicateEntry = 1062

// VoteOp 表示一次投票切换落到数据库上的操作类别。
type VoteOp int

const (
	VoteOpInsert VoteOp = iota // 首次投票：插入事实行
	VoteOpDelete               // 重复同向投票：删除事实行（撤销）
	VoteOpFlip                 // 反向投票：更新事实行（换票）
)

// VoteToggleOutcome 是投票切换的纯决策结果。
// - NewState 为 nil 表示切换后用户对该目标无投票。
// - NetDelta 是净赞数 (赞-踩) 的变化量，用于话题的 like_count 缓存列。
// - UpDelta / DownDelta 分别是赞数与踩数的变化量，用于回复的分列计数。
type VoteToggleOutcome struct {
	Op        VoteOp
	NewState  *enums.VoteType
	NetDelta  int64
	UpDelta   int64
	DownDelta int64
}

// ResolveVoteToggle 根据现有投票与本次请求计算切换结果。
// 规则:
//   - 无现有投票  -> 插入，计数 +1
//   - 同向重复投票 -> 删除，计数 -1（撤销）
//   - 反向投票    -> 换票，原方向 -1 且新方向 +1（净值变化为 ±2）
//
// 该函数不触碰数据库，便于对切换矩阵做穷举测试。
func ResolveVoteToggle(existing *enums.VoteType, requested enums.VoteType) VoteToggleOutcome {
	signOf := func(v enums.VoteType) int64 {
		if v == enums.VoteUp {
			return 1
		}
		return -1
	}

	if existing == nil {
		out := VoteToggleOutcome{Op: VoteOpInsert, NewState: &requested, NetDelta: signOf(requested)}
		if requested == enums.VoteUp {
			out.UpDelta = 1
		} else {
			out.DownDelta = 1
		}
		return out
	}

	if *existing == requested {
		out := VoteToggleOutcome{Op: VoteOpDelete, NewState: nil, NetDelta: -signOf(requested)}
		if requested == enums.VoteUp {
			out.UpDelta = -1
		} else {
			out.DownDelta = -1
		}
		return out
	}

	// 换票: 旧方向撤销 + 新方向生效
	out := VoteToggleOutcome{Op: VoteOpFlip, NewState: &requested, NetDelta: 2 * signOf(requested)}
	if requested == enums.VoteUp {
		out.UpDelta = 1
		out.DownDelta = -1
	} else {
		out.UpDelta = -1
		out.DownDelta = 1
	}
	return out
}

// VoteRepository 定义了话题/回复投票事实在 MySQL 中的操作接口。
// 投票事实行是权威数据，话题与回复上的计数列只是派生缓存，
// 两者的变更必须在同一事务内完成。
type VoteRepository interface {
	// ToggleTopicVote 对话题执行投票切换（投/撤/换），
	// 并在同一事务内按净值变化更新话题的 like_count。
	// - 返回本次切换的完整结果，NewState 为 nil 表示已撤销，
	//   NetDelta 供上层同步调整热度榜分数。
	// - 并发重复插入触发唯一键冲突时返回 myErrors.ErrVoteConflict。
	ToggleTopicVote(ctx context.Context, topicID uint64, userID string, voteType enums.VoteType) (VoteToggleOutcome, error)

	// ToggleReplyVote 对回复执行投票切换，
	// 并在同一事务内更新回复的 upvotes / downvotes 列。
	ToggleReplyVote(ctx context.Context, replyID uint64, userID string, voteType enums.VoteType) (VoteToggleOutcome, error)

	// GetTopicVote 查询用户对话题的当前投票状态（nil 表示未投票）。
	GetTopicVote(ctx context.Context, topicID uint64, userID string) (*enums.VoteType, error)

	// GetReplyVotesByUser 批量查询用户对一组回复的投票状态。
	GetReplyVotesByUser(ctx context.Context, replyIDs []uint64, userID string) (map[uint64]enums.VoteType, error)
}

type voteRepository struct {
	db     *gorm.DB
	logger *core.ZapLogger
}

// NewVoteRepository 是 voteRepository 的构造函数。
func NewVoteRepository(db *gorm.DB, logger *core.ZapLogger) VoteRepository {
	return &voteRepository{
		db:     db,
		logger: logger,
	}
}

// isDuplicateEntry 判断错误是否为 MySQL 唯一键冲突。
func isDuplicateEntry(err error) bool {
	var mysqlErr *mysql.MySQLError
	return errors.As(err, &mysqlErr) && mysqlErr.Number == mysqlDuplicateEntry
}

// ToggleTopicVote 实现话题投票的切换。
func (r *voteRepository) ToggleTopicVote(ctx context.Context, topicID uint64, userID string, voteType enums.VoteType) (VoteToggleOutcome, error) {
	var resolved VoteToggleOutcome

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// 1. 读取现有投票事实
		var existing entities.TopicVote
		var existingType *enums.VoteType
		err := tx.Where("topic_id = ? AND user_id = ?", topicID, userID).First(&existing).Error
		switch {
		case err == nil:
			existingType = &existing.VoteType
		case errors.Is(err, gorm.ErrRecordNotFound):
			existingType = nil
		default:
			return fmt.Errorf("查询现有话题投票失败: %w", err)
		}

		outcome := ResolveVoteToggle(existingType, voteType)
		resolved = outcome

		// 2. 按决策结果变更事实行
		switch outcome.Op {
		case VoteOpInsert:
			vote := entities.TopicVote{TopicID: topicID, UserID: userID, VoteType: voteType}
			if err := tx.Create(&vote).Error; err != nil {
				if isDuplicateEntry(err) {
					// 并发下另一请求抢先插入，本次让调用方重试
					return myErrors.ErrVoteConflict
				}
				return fmt.Errorf("插入话题投票事实失败: %w", err)
			}
		case VoteOpDelete:
			if err := tx.Delete(&entities.TopicVote{}, existing.ID).Error; err != nil {
				return fmt.Errorf("删除话题投票事实失败: %w", err)
			}
		case VoteOpFlip:
			if err := tx.Model(&entities.TopicVote{}).
				Where("id = ?", existing.ID).
				Updates(map[string]interface{}{
					"vote_type":  voteType,
					"updated_at": time.Now(),
				}).Error; err != nil {
				return fmt.Errorf("更新话题投票事实失败: %w", err)
			}
		}

		// 3. 同一事务内按净值变化更新话题的派生计数缓存
		if outcome.NetDelta != 0 {
			result := tx.Model(&entities.Topic{}).
				Where("id = ? AND deleted_at IS NULL", topicID).
				Update("like_count", gorm.Expr("like_count + ?", outcome.NetDelta))
			if result.Error != nil {
				return fmt.Errorf("更新话题净赞数缓存失败: %w", result.Error)
			}
			if result.RowsAffected == 0 {
				// 话题不存在或已删除，整个事务回滚
				return gorm.ErrRecordNotFound
			}
		}

		return nil
	})

	if err != nil {
		if errors.Is(err, myErrors.ErrVoteConflict) {
			r.logger.Warn("话题投票发生并发冲突",
				zap.Uint64("topicID", topicID),
				zap.String("userID", userID),
			)
		}
		return VoteToggleOutcome{}, err
	}
	return resolved, nil
}

// ToggleReplyVote 实现回复投票的切换。
func (r *voteRepository) ToggleReplyVote(ctx context.Context, replyID uint64, userID string, voteType enums.VoteType) (VoteToggleOutcome, error) {
	var resolved VoteToggleOutcome

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var existing entities.ReplyVote
		var existingType *enums.VoteType
		err := tx.Where("reply_id = ? AND user_id = ?", replyID, userID).First(&existing).Error
		switch {
		case err == nil:
			existingType = &existing.VoteType
		case errors.Is(err, gorm.ErrRecordNotFound):
			existingType = nil
		default:
			return fmt.Errorf("查询现有回复投票失败: %w", err)
		}

		outcome := ResolveVoteToggle(existingType, voteType)
		resolved = outcome

		switch outcome.Op {
		case VoteOpInsert:
			vote := entities.ReplyVote{ReplyID: replyID, UserID: userID, VoteType: voteType}
			if err := tx.Create(&vote).Error; err != nil {
				if isDuplicateEntry(err) {
					return myErrors.ErrVoteConflict
				}
				return fmt.Errorf("插入回复投票事实失败: %w", err)
			}
		case VoteOpDelete:
			if err := tx.Delete(&entities.ReplyVote{}, existing.ID).Error; err != nil {
				return fmt.Errorf("删除回复投票事实失败: %w", err)
			}
		case VoteOpFlip:
			if err := tx.Model(&entities.ReplyVote{}).
				Where("id = ?", existing.ID).
				Updates(map[string]interface{}{
					"vote_type":  voteType,
					"updated_at": time.Now(),
				}).Error; err != nil {
				return fmt.Errorf("更新回复投票事实失败: %w", err)
			}
		}

		// 回复维护赞/踩分列计数
		updates := map[string]interface{}{}
		if outcome.UpDelta != 0 {
			updates["upvotes"] = gorm.Expr("upvotes + ?", outcome.UpDelta)
		}
		if outcome.DownDelta != 0 {
			updates["downvotes"] = gorm.Expr("downvotes + ?", outcome.DownDelta)
		}
		if len(updates) > 0 {
			result := tx.Model(&entities.Reply{}).
				Where("id = ? AND deleted_at IS NULL", replyID).
				Updates(updates)
			if result.Error != nil {
				return fmt.Errorf("更新回复投票计数缓存失败: %w", result.Error)
			}
			if result.RowsAffected == 0 {
				return gorm.ErrRecordNotFound
			}
		}

		return nil
	})

	if err != nil {
		return VoteToggleOutcome{}, err
	}
	return resolved, nil
}

// GetTopicVote 实现用户话题投票状态的查询。
func (r *voteRepository) GetTopicVote(ctx context.Context, topicID uint64, userID string) (*enums.VoteType, error) {
	var vote entities.TopicVote
	err := r.db.WithContext(ctx).
		Where("topic_id = ? AND user_id = ?", topicID, userID).
		First(&vote).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &vote.VoteType, nil
}

// GetReplyVotesByUser 实现用户对一组回复投票状态的批量查询。
func (r *voteRepository) GetReplyVotesByUser(ctx context.Context, replyIDs []uint64, userID string) (map[uint64]enums.VoteType, error) {
	result := make(map[uint64]enums.VoteType, len(replyIDs))
	if len(replyIDs) == 0 || userID == "" {
		return result, nil
	}

	var votes []entities.ReplyVote
	err := r.db.WithContext(ctx).
		Where("reply_id IN ? AND user_id = ?", replyIDs, userID).
		Find(&votes).Error
	if err != nil {
		r.logger.Error("批量查询回复投票状态失败", zap.Error(err), zap.String("userID", userID))
		return nil, err
	}

	for _, v := range votes {
		result[v.ReplyID] = v.VoteType
	}
	return result, nil
}
