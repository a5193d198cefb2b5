package consumer

import (
	"context"
	"encoding/json"

	"github.com/Xushengqwer/go-common/core"
	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"

	"github.com/Xushengqwer/community_service/models/events"
	"github.com/Xushengqwer/community_service/repo/mysql"
)

// MessageHandler 定义了处理 Kafka 消息的接口
type MessageHandler interface {
	Handle(ctx context.Context, msg kafka.Message) error
}

// UserProfileHandler 消费用户资料变更事件，
// 将最新的用户名与头像刷新到话题/回复/表情上的冗余快照。
type UserProfileHandler struct {
	logger         *core.ZapLogger
	authorSyncRepo mysql.AuthorSyncRepository
}

func NewUserProfileHandler(logger *core.ZapLogger, authorSyncRepo mysql.AuthorSyncRepository) *UserProfileHandler {
	return &UserProfileHandler{
		logger:         logger,
		authorSyncRepo: authorSyncRepo,
	}
}

func (h *UserProfileHandler) Handle(ctx context.Context, msg kafka.Message) error {
	h.logger.Debug("UserProfileHandler: 开始处理 Kafka 消息", zap.String("topic", msg.Topic))

	var event events.UserProfileUpdatedEvent
	if err := json.Unmarshal(msg.Value, &event); err != nil {
		h.logger.Error("UserProfileHandler: 反序列化 Kafka 消息失败",
			zap.Error(err),
			zap.ByteString("value", msg.Value),
		)
		return nil // 不重试无法解析的消息
	}

	if event.UserID == "" {
		h.logger.Warn("UserProfileHandler: 事件缺少 userID，已跳过", zap.String("event_id", event.EventID))
		return nil
	}

	h.logger.Info("UserProfileHandler: 成功解析用户资料变更消息",
		zap.String("event_id", event.EventID),
		zap.String("user_id", event.UserID),
	)

	// 快照刷新是幂等的，返回错误让消费循环记录并继续
	if err := h.authorSyncRepo.UpdateAuthorSnapshot(ctx, event.UserID, event.Username, event.Avatar); err != nil {
		h.logger.Error("UserProfileHandler: 刷新作者快照失败",
			zap.Error(err),
			zap.String("user_id", event.UserID),
		)
		return err
	}

	return nil
}
