package service

import (
	"context"
	"fmt"
	"mime/multipart"
	"path/filepath"
	"strings"
	"time"

	"github.com/Xushengqwer/go-common/core"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/Xushengqwer/community_service/constant"
	"github.com/Xushengqwer/community_service/dependencies"
	"github.com/Xushengqwer/community_service/models/dto"
	"github.com/Xushengqwer/community_service/models/entities"
	"github.com/Xushengqwer/community_service/models/enums"
	"github.com/Xushengqwer/community_service/models/events"
	"github.com/Xushengqwer/community_service/models/vo"
	"github.com/Xushengqwer/community_service/moderation"
	myErrors "github.com/Xushengqwer/community_service/myErrors"
	"github.com/Xushengqwer/community_service/repo/mysql"
	"github.com/Xushengqwer/community_service/repo/redis"
)

// TopicService 定义了处理话题核心业务逻辑的接口。
type TopicService interface {
	// CreateTopic 处理用户发布新话题的业务流程。
	// - 如有媒体文件（图片或视频，互斥）先上传到 COS，再写入数据库。
	// - 数据库写入失败时清理已上传的 COS 对象，避免孤儿文件。
	CreateTopic(ctx context.Context, req *dto.CreateTopicRequest, mediaFile *multipart.FileHeader) (*vo.TopicResponse, error)

	// GetTopicDetail 获取话题详情页的完整视图。
	// - 聚合话题本体、回复树、表情聚合以及当前用户的参与状态。
	// - 除非客户端声明 skipView，否则异步增加浏览计数。
	GetTopicDetail(ctx context.Context, topicID uint64, actor moderation.Actor, skipView bool) (*vo.TopicDetailVO, error)

	// UpdateTopic 更新话题的可编辑字段。仅话题作者或管理员可操作。
	UpdateTopic(ctx context.Context, topicID uint64, actor moderation.Actor, req *dto.UpdateTopicRequest) error

	// DeleteTopic 删除话题及其全部关联数据。仅话题作者或管理员可操作。
	// - 数据库级联删除成功后，异步清理 Redis 榜单与 COS 媒体文件。
	DeleteTopic(ctx context.Context, topicID uint64, actor moderation.Actor) error

	// SetTopicStatus 流转话题的生命周期状态。仅话题作者或管理员可操作。
	// - 状态变更会向订阅者扇出通知事件。
	SetTopicStatus(ctx context.Context, topicID uint64, actor moderation.Actor, status enums.TopicStatus) error
}

type topicService struct {
	db             *gorm.DB
	topicRepo      mysql.TopicRepository
	topicAdminRepo mysql.TopicAdminRepository
	replyRepo      mysql.ReplyRepository
	voteRepo       mysql.VoteRepository
	reactionRepo   mysql.ReactionRepository
	engagementRepo mysql.EngagementRepository
	topicViewRepo  redis.TopicViewRepository
	topicTrendRepo redis.TopicTrendRepository
	cosClient      dependencies.COSClientInterface
	notifier       *SubscriberNotifier
	logger         *core.ZapLogger
}

// NewTopicService 是 topicService 的构造函数，通过依赖注入初始化服务实例。
func NewTopicService(
	db *gorm.DB,
	topicRepo mysql.TopicRepository,
	topicAdminRepo mysql.TopicAdminRepository,
	replyRepo mysql.ReplyRepository,
	voteRepo mysql.VoteRepository,
	reactionRepo mysql.ReactionRepository,
	engagementRepo mysql.EngagementRepository,
	topicViewRepo redis.TopicViewRepository,
	topicTrendRepo redis.TopicTrendRepository,
	cosClient dependencies.COSClientInterface,
	notifier *SubscriberNotifier,
	logger *core.ZapLogger,
) TopicService {
	return &topicService{
		db:             db,
		topicRepo:      topicRepo,
		topicAdminRepo: topicAdminRepo,
		replyRepo:      replyRepo,
		voteRepo:       voteRepo,
		reactionRepo:   reactionRepo,
		engagementRepo: engagementRepo,
		topicViewRepo:  topicViewRepo,
		topicTrendRepo: topicTrendRepo,
		cosClient:      cosClient,
		notifier:       notifier,
		logger:         logger,
	}
}

// generateMediaObjectKey 为话题媒体文件创建唯一的 COS 对象键。
// 规则: community/topics/media/YYYYMMDD/userID_uuid.ext
func (s *topicService) generateMediaObjectKey(originalFilename string, userID string) string {
	datePrefix := time.Now().Format("20060102")
	randomUUID := uuid.NewString()
	extension := strings.ToLower(filepath.Ext(originalFilename))

	return fmt.Sprintf("%s%s/%s_%s%s",
		constant.COSObjectKeyPrefixTopicMedia,
		datePrefix,
		userID,
		randomUUID,
		extension,
	)
}

// CreateTopic 处理用户创建新话题的请求，包括媒体上传和数据库操作。
func (s *topicService) CreateTopic(ctx context.Context, req *dto.CreateTopicRequest, mediaFile *multipart.FileHeader) (*vo.TopicResponse, error) {
	var mediaURL, mediaObjectKey string
	mediaType := req.MediaType

	// 1. 如携带媒体文件，先上传到 COS
	if mediaFile != nil && mediaType != enums.MediaNone {
		file, err := mediaFile.Open()
		if err != nil {
			s.logger.Error("打开媒体文件以上传失败",
				zap.String("filename", mediaFile.Filename),
				zap.Error(err))
			return nil, fmt.Errorf("打开媒体文件 %s 失败: %w", mediaFile.Filename, err)
		}

		contentType := mediaFile.Header.Get("Content-Type")
		if contentType == "" {
			contentType = "application/octet-stream"
			s.logger.Warn("未提供媒体文件的内容类型，使用默认值",
				zap.String("filename", mediaFile.Filename),
				zap.String("defaultContentType", contentType))
		}

		objectKey := s.generateMediaObjectKey(mediaFile.Filename, req.AuthorID)
		uploadedURL, err := s.cosClient.UploadFile(ctx, objectKey, file, mediaFile.Size, contentType)
		file.Close()
		if err != nil {
			s.logger.Error("上传媒体文件到 COS 失败",
				zap.String("filename", mediaFile.Filename),
				zap.String("objectKey", objectKey),
				zap.Error(err))
			return nil, fmt.Errorf("上传媒体文件 %s 到 COS 失败: %w", mediaFile.Filename, err)
		}
		mediaURL = uploadedURL
		mediaObjectKey = objectKey
	} else {
		// 未携带文件时媒体类型一律按"无"处理
		mediaType = enums.MediaNone
	}

	// 2. 写入数据库
	topic := &entities.Topic{
		Title:          req.Title,
		Category:       req.Category,
		Description:    req.Description,
		Content:        req.Content,
		Tags:           req.Tags,
		AuthorID:       req.AuthorID,
		AuthorUsername: req.AuthorUsername,
		AuthorAvatar:   req.AuthorAvatar,
		Status:         enums.TopicOpen,
		MediaType:      mediaType,
		MediaURL:       mediaURL,
		MediaObjectKey: mediaObjectKey,
	}

	if err := s.topicRepo.CreateTopic(ctx, s.db, topic); err != nil {
		s.logger.Error("创建话题数据库操作失败", zap.Error(err), zap.String("authorID", req.AuthorID))
		// 数据库写入失败时清理已上传的 COS 对象，避免孤儿文件
		if mediaObjectKey != "" {
			if cleanupErr := s.cosClient.DeleteObject(context.Background(), mediaObjectKey); cleanupErr != nil {
				s.logger.Error("清理孤立的 COS 媒体文件失败",
					zap.String("objectKey", mediaObjectKey),
					zap.Error(cleanupErr))
			}
		}
		return nil, err
	}

	s.logger.Info("话题创建成功",
		zap.Uint64("topicID", topic.ID),
		zap.String("authorID", topic.AuthorID),
	)
	return vo.NewTopicResponseFromEntity(topic, 0), nil
}

// GetTopicDetail 组装话题详情页的完整视图。
func (s *topicService) GetTopicDetail(ctx context.Context, topicID uint64, actor moderation.Actor, skipView bool) (*vo.TopicDetailVO, error) {
	// 1. 话题本体
	topic, err := s.topicRepo.GetTopicByID(ctx, topicID)
	if err != nil {
		return nil, err
	}

	// 2. 回复树与表情聚合
	replies, err := s.replyRepo.ListRepliesByTopicID(ctx, topicID)
	if err != nil {
		return nil, err
	}
	replyIDs := make([]uint64, 0, len(replies))
	for _, reply := range replies {
		replyIDs = append(replyIDs, reply.ID)
	}

	topicReactions, err := s.reactionRepo.ListReactionsByTarget(ctx, enums.TargetTopic, topicID)
	if err != nil {
		return nil, err
	}
	replyReactions, err := s.reactionRepo.ListReactionsByTargets(ctx, enums.TargetReply, replyIDs)
	if err != nil {
		return nil, err
	}

	// 3. 浏览量以 Redis 计数为准；Redis 中无数据时退回 MySQL 的回写值
	viewCount := topic.ViewCount
	if redisCount, viewErr := s.topicViewRepo.GetViewCount(ctx, topicID); viewErr == nil && redisCount > viewCount {
		viewCount = redisCount
	}

	topicResponse := vo.NewTopicResponseFromEntity(topic, int64(len(replies)))
	topicResponse.ViewCount = viewCount

	replyTree := vo.BuildReplyTree(replies)
	vo.AttachReplyReactions(replyTree, vo.GroupReactionsByTarget(replyReactions))

	detail := &vo.TopicDetailVO{
		Topic:     *topicResponse,
		Replies:   replyTree,
		Reactions: vo.AggregateReactions(topicReactions),
	}

	// 4. 当前用户的参与状态
	if actor.UserID != "" {
		userVote, voteErr := s.voteRepo.GetTopicVote(ctx, topicID, actor.UserID)
		if voteErr != nil {
			s.logger.Warn("查询用户话题投票状态失败，详情页降级为无个人状态",
				zap.Error(voteErr), zap.Uint64("topicID", topicID))
		} else {
			detail.UserVote = userVote
		}

		bookmarked, subscribed, flagErr := s.engagementRepo.GetEngagementFlags(ctx, topicID, actor.UserID)
		if flagErr != nil {
			s.logger.Warn("查询用户收藏/订阅状态失败，详情页降级为无个人状态",
				zap.Error(flagErr), zap.Uint64("topicID", topicID))
		} else {
			detail.Bookmarked = bookmarked
			detail.Subscribed = subscribed
		}

		replyVotes, rvErr := s.voteRepo.GetReplyVotesByUser(ctx, replyIDs, actor.UserID)
		if rvErr != nil {
			s.logger.Warn("查询用户回复投票状态失败，详情页降级为无个人状态",
				zap.Error(rvErr), zap.Uint64("topicID", topicID))
		} else {
			vo.AttachReplyVotes(detail.Replies, replyVotes)
		}
	}

	// 5. 异步增加浏览计数，客户端声明 skipView 时跳过
	if !skipView {
		go func(id uint64) {
			bgCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			if viewErr := s.topicViewRepo.IncrementViewCount(bgCtx, id); viewErr != nil {
				s.logger.Error("异步增加话题浏览量失败", zap.Error(viewErr), zap.Uint64("topicID", id))
			}
		}(topicID)
	}

	return detail, nil
}

// UpdateTopic 实现话题内容的更新。
func (s *topicService) UpdateTopic(ctx context.Context, topicID uint64, actor moderation.Actor, req *dto.UpdateTopicRequest) error {
	topic, err := s.topicRepo.GetTopicByID(ctx, topicID)
	if err != nil {
		return err
	}

	if !moderation.CanMutate(actor, topic.AuthorID, moderation.ActionEditOwn) {
		s.logger.Warn("非作者尝试编辑话题",
			zap.Uint64("topicID", topicID),
			zap.String("actorID", actor.UserID),
			zap.String("authorID", topic.AuthorID),
		)
		return myErrors.ErrForbidden
	}

	return s.topicRepo.UpdateTopic(ctx, topicID, req.Title, req.Description, req.Content, req.Category, req.Tags)
}

// DeleteTopic 实现话题的删除。
func (s *topicService) DeleteTopic(ctx context.Context, topicID uint64, actor moderation.Actor) error {
	topic, err := s.topicRepo.GetTopicByID(ctx, topicID)
	if err != nil {
		return err
	}

	if !moderation.CanMutate(actor, topic.AuthorID, moderation.ActionEditOwn) {
		return myErrors.ErrForbidden
	}

	if err := s.topicRepo.DeleteTopicCascade(ctx, topicID); err != nil {
		s.logger.Error("级联删除话题失败", zap.Error(err), zap.Uint64("topicID", topicID))
		return err
	}

	// 数据库删除成功后异步清理外部状态：热度榜与 COS 媒体。
	// 清理失败只记录日志，榜单残留会在下一轮快照刷新时被数据库状态纠正。
	mediaObjectKey := topic.MediaObjectKey
	go func(id uint64, objectKey string) {
		bgCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		if trendErr := s.topicTrendRepo.RemoveTopic(bgCtx, id); trendErr != nil {
			s.logger.Error("从热度榜移除已删除话题失败", zap.Error(trendErr), zap.Uint64("topicID", id))
		}
		if objectKey != "" {
			if cosErr := s.cosClient.DeleteObject(bgCtx, objectKey); cosErr != nil {
				s.logger.Error("删除话题媒体 COS 对象失败",
					zap.Error(cosErr),
					zap.Uint64("topicID", id),
					zap.String("objectKey", objectKey))
			}
		}
	}(topicID, mediaObjectKey)

	s.logger.Info("话题删除成功", zap.Uint64("topicID", topicID), zap.String("actorID", actor.UserID))
	return nil
}

// SetTopicStatus 实现话题状态的流转。
// 状态与锁定相互独立，任意状态间的转换都是合法的。
func (s *topicService) SetTopicStatus(ctx context.Context, topicID uint64, actor moderation.Actor, status enums.TopicStatus) error {
	topic, err := s.topicRepo.GetTopicByID(ctx, topicID)
	if err != nil {
		return err
	}

	if !moderation.CanMutate(actor, topic.AuthorID, moderation.ActionSetStatus) {
		return myErrors.ErrForbidden
	}

	if err := s.topicAdminRepo.UpdateTopicStatus(ctx, topicID, status); err != nil {
		s.logger.Error("更新话题状态失败", zap.Error(err), zap.Uint64("topicID", topicID))
		return err
	}

	// 状态流转向订阅者扇出通知（fire-and-forget）
	s.notifier.NotifySubscribers(topicID, topic.Title, actor, events.NotificationStatusChanged, nil)

	return nil
}
