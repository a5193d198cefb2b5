package tasks

import (
	"context"
	"time"

	"github.com/Xushengqwer/go-common/core"
	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"github.com/Xushengqwer/community_service/constant"
	"github.com/Xushengqwer/community_service/repo/mysql"
	"github.com/Xushengqwer/community_service/repo/redis"
)

// ViewCountSyncTask 负责定时将 Redis 中的话题浏览量回写到 MySQL。
// Redis 计数器是浏览量的事实来源，MySQL 中的 view_count 仅是周期性快照。
type ViewCountSyncTask struct {
	topicViewRepo  redis.TopicViewRepository            // Redis 仓库，读取全量浏览量
	topicBatchRepo mysql.TopicBatchOperationsRepository // MySQL 批量回写仓库
	cron           *cron.Cron
	logger         *core.ZapLogger
}

// NewViewCountSyncTask 初始化并启动浏览量回写的定时任务。
func NewViewCountSyncTask(
	topicViewRepo redis.TopicViewRepository,
	topicBatchRepo mysql.TopicBatchOperationsRepository,
	logger *core.ZapLogger,
) *ViewCountSyncTask {
	cronV3 := cron.New() // 默认分钟级精度
	task := &ViewCountSyncTask{
		topicViewRepo:  topicViewRepo,
		topicBatchRepo: topicBatchRepo,
		cron:           cronV3,
		logger:         logger,
	}
	task.startCronJob()
	return task
}

// startCronJob 配置并启动 cron 作业。
// 调度周期由 constant.SyncViewCountInterval 定义。
func (t *ViewCountSyncTask) startCronJob() {
	schedule := constant.SyncViewCountInterval
	t.logger.Info("准备启动话题浏览量回写MySQL定时任务", zap.String("schedule", schedule))

	entryID, err := t.cron.AddFunc(schedule, func() {
		t.logger.Info("话题浏览量回写MySQL任务开始执行...")
		startTime := time.Now()
		// 单次执行的超时需覆盖 Redis 全量扫描与 MySQL 批量更新。
		ctx, cancel := context.WithTimeout(context.Background(), 3*time.Minute)
		defer cancel()

		t.syncViewCountsToDB(ctx)

		duration := time.Since(startTime)
		t.logger.Info("话题浏览量回写MySQL任务执行完毕", zap.Duration("duration", duration))
	})

	if err != nil {
		// AddFunc 失败通常意味着 schedule 表达式写错了，直接快速失败。
		t.logger.Fatal("添加话题浏览量回写 cron 作业失败", zap.Error(err), zap.String("schedule", schedule))
	}

	t.cron.Start()
	t.logger.Info("话题浏览量回写MySQL定时任务已启动", zap.Uint("cronEntryID", uint(entryID)))
}

// syncViewCountsToDB 是单次回写的实际逻辑：
// 1. 从 Redis 扫描全量话题浏览量；
// 2. 调用 MySQL 仓库批量回写 view_count 快照。
func (t *ViewCountSyncTask) syncViewCountsToDB(ctx context.Context) {
	t.logger.Info("任务步骤1: 开始从 Redis 获取全量话题浏览量...")
	viewCounts, err := t.topicViewRepo.GetAllViewCounts(ctx)
	if err != nil {
		t.logger.Error("从 Redis 获取全量浏览量失败，本次回写中止。", zap.Error(err))
		return
	}

	countFromRedis := len(viewCounts)
	if countFromRedis == 0 {
		t.logger.Info("从 Redis 获取到的浏览量数据为空，无需回写 MySQL。")
		return
	}
	t.logger.Info("任务步骤1: 成功从 Redis 获取到浏览量数据。", zap.Int("话题数量", countFromRedis))

	t.logger.Info("任务步骤2: 开始将浏览量批量回写到 MySQL...")
	// BatchUpdateTopicViewCounts 内部按分片处理并记录各分片的失败，
	// 只有整体性错误（如构造 SQL 失败）才会返回到这里。
	if err := t.topicBatchRepo.BatchUpdateTopicViewCounts(ctx, viewCounts); err != nil {
		t.logger.Error("调用 MySQL 批量回写浏览量操作时发生错误",
			zap.Error(err),
			zap.Int("提交数量", countFromRedis),
		)
	} else {
		t.logger.Info("任务步骤2: 调用 MySQL 批量回写浏览量操作已完成。", zap.Int("提交数量", countFromRedis))
	}
}

// Stop 优雅地停止 cron 调度器。
// 返回的 context 会在正在运行的任务全部结束后关闭，供调用者等待。
func (t *ViewCountSyncTask) Stop() context.Context {
	t.logger.Info("正在停止话题浏览量回写MySQL定时任务...")
	stopCtx := t.cron.Stop()
	t.logger.Info("话题浏览量回写MySQL定时任务已停止调度。等待正在执行的任务完成...")
	return stopCtx
}
