package service

import (
	"context"
	"time"

	"github.com/Xushengqwer/go-common/core"
	"go.uber.org/zap"

	"github.com/Xushengqwer/community_service/models/events"
	"github.com/Xushengqwer/community_service/moderation"
	"github.com/Xushengqwer/community_service/mq/producer"
	"github.com/Xushengqwer/community_service/repo/mysql"
)

// SubscriberNotifier 负责把话题维度的动态扇出给订阅者。
// 话题服务与回复服务共用同一个实例，通知统一走 Kafka。
type SubscriberNotifier struct {
	engagementRepo mysql.EngagementRepository
	kafkaSvc       *producer.KafkaProducer
	logger         *core.ZapLogger
}

// NewSubscriberNotifier 是 SubscriberNotifier 的构造函数。
func NewSubscriberNotifier(
	engagementRepo mysql.EngagementRepository,
	kafkaSvc *producer.KafkaProducer,
	logger *core.ZapLogger,
) *SubscriberNotifier {
	return &SubscriberNotifier{
		engagementRepo: engagementRepo,
		kafkaSvc:       kafkaSvc,
		logger:         logger,
	}
}

// NotifySubscribers 查询话题订阅者并异步扇出通知事件（fire-and-forget）。
// - 触发者本人会被从接收者名单中剔除。
// - 没有接收者时事件不会发送。
func (n *SubscriberNotifier) NotifySubscribers(topicID uint64, topicTitle string, actor moderation.Actor, eventType events.NotificationType, replyID *uint64) {
	go func() {
		bgCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		subscriberIDs, err := n.engagementRepo.ListSubscribersByTopic(bgCtx, topicID)
		if err != nil {
			n.logger.Error("查询话题订阅者失败，通知事件未发送",
				zap.Error(err), zap.Uint64("topicID", topicID))
			return
		}

		recipients := make([]string, 0, len(subscriberIDs))
		for _, id := range subscriberIDs {
			if id != actor.UserID {
				recipients = append(recipients, id)
			}
		}

		event := events.NotificationEvent{
			Type:         eventType,
			TopicID:      topicID,
			TopicTitle:   topicTitle,
			ReplyID:      replyID,
			ActorID:      actor.UserID,
			RecipientIDs: recipients,
		}
		if kafkaErr := n.kafkaSvc.SendNotificationEvent(bgCtx, event); kafkaErr != nil {
			n.logger.Error("发送社区通知事件失败",
				zap.Error(kafkaErr),
				zap.String("type", string(eventType)),
				zap.Uint64("topicID", topicID))
		}
	}()
}
