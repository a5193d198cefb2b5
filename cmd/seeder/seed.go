package main

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/Xushengqwer/go-common/core"
	"github.com/brianvoe/gofakeit/v6"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/Xushengqwer/community_service/models/dto"
	"github.com/Xushengqwer/community_service/models/enums"
	"github.com/Xushengqwer/community_service/service"
)

var seedCategories = []string{"budgeting", "investing", "careers", "tech", "general"}

// Seed 通过服务层生成测试数据：每个话题附带若干顶层/嵌套回复和随机投票。
func Seed(
	ctx context.Context,
	topicSvc service.TopicService,
	replySvc service.ReplyService,
	interactionSvc service.InteractionService,
	logger *core.ZapLogger,
	numTopics int,
) {
	logger.Info("开始填充测试数据 (通过服务层)...", zap.Int("话题数量", numTopics))

	var wg sync.WaitGroup
	concurrencyLimit := 10
	semaphore := make(chan struct{}, concurrencyLimit)

	for i := 0; i < numTopics; i++ {
		wg.Add(1)
		semaphore <- struct{}{}

		go func(itemIndex int) {
			defer wg.Done()
			defer func() { <-semaphore }()

			authorID := uuid.New().String()
			createReq := &dto.CreateTopicRequest{
				Title:          gofakeit.Sentence(gofakeit.Number(5, 12)),
				Category:       seedCategories[gofakeit.Number(0, len(seedCategories)-1)],
				Description:    gofakeit.Sentence(gofakeit.Number(8, 20)),
				Content:        gofakeit.Paragraph(3, 5, 20, "\n\n"),
				Tags:           strings.Join([]string{gofakeit.Word(), gofakeit.Word()}, ","),
				AuthorID:       authorID,
				AuthorUsername: gofakeit.Username(),
				AuthorAvatar:   gofakeit.ImageURL(100, 100),
			}

			topic, err := topicSvc.CreateTopic(ctx, createReq, nil)
			if err != nil {
				logger.Error(fmt.Sprintf("创建话题 %d/%d 失败", itemIndex+1, numTopics),
					zap.Error(err),
					zap.String("title", createReq.Title),
					zap.String("author_id", createReq.AuthorID))
				return
			}
			logger.Info(fmt.Sprintf("成功创建话题 %d/%d", itemIndex+1, numTopics),
				zap.Uint64("topic_id", topic.ID),
				zap.String("title", topic.Title))

			seedReplies(ctx, replySvc, interactionSvc, logger, topic.ID)
			seedVotes(ctx, interactionSvc, logger, topic.ID)
		}(i)
	}

	wg.Wait()
	logger.Info("测试数据填充完毕 (通过服务层)。")
}

// seedReplies 在话题下生成若干顶层回复，并随机为部分回复挂一条嵌套子回复。
func seedReplies(
	ctx context.Context,
	replySvc service.ReplyService,
	interactionSvc service.InteractionService,
	logger *core.ZapLogger,
	topicID uint64,
) {
	numReplies := gofakeit.Number(0, 5)
	for i := 0; i < numReplies; i++ {
		reply, err := replySvc.AddReply(ctx, topicID, &dto.CreateReplyRequest{
			Content:        gofakeit.Sentence(gofakeit.Number(5, 25)),
			AuthorID:       uuid.New().String(),
			AuthorUsername: gofakeit.Username(),
			AuthorAvatar:   gofakeit.ImageURL(100, 100),
		})
		if err != nil {
			logger.Error("创建顶层回复失败", zap.Error(err), zap.Uint64("topic_id", topicID))
			continue
		}

		if gofakeit.Bool() {
			parentID := reply.ID
			if _, err := replySvc.AddReply(ctx, topicID, &dto.CreateReplyRequest{
				Content:        gofakeit.Sentence(gofakeit.Number(5, 15)),
				ParentReplyID:  &parentID,
				AuthorID:       uuid.New().String(),
				AuthorUsername: gofakeit.Username(),
				AuthorAvatar:   gofakeit.ImageURL(100, 100),
			}); err != nil {
				logger.Error("创建嵌套回复失败", zap.Error(err), zap.Uint64("parent_reply_id", parentID))
			}
		}

		if gofakeit.Bool() {
			if _, err := interactionSvc.VoteReply(ctx, reply.ID, uuid.New().String(), &dto.VoteRequest{
				VoteType: enums.VoteUp,
			}); err != nil {
				logger.Error("回复投票失败", zap.Error(err), zap.Uint64("reply_id", reply.ID))
			}
		}
	}
}

// seedVotes 为话题生成随机数量的赞同/反对票。
func seedVotes(
	ctx context.Context,
	interactionSvc service.InteractionService,
	logger *core.ZapLogger,
	topicID uint64,
) {
	numVotes := gofakeit.Number(0, 8)
	for i := 0; i < numVotes; i++ {
		voteType := enums.VoteUp
		if gofakeit.Number(0, 3) == 0 {
			voteType = enums.VoteDown
		}
		if _, err := interactionSvc.VoteTopic(ctx, topicID, uuid.New().String(), &dto.VoteRequest{
			VoteType: voteType,
		}); err != nil {
			logger.Error("话题投票失败", zap.Error(err), zap.Uint64("topic_id", topicID))
		}
	}
}
