package tasks

import (
	"context"
	"time"

	"github.com/Xushengqwer/go-common/core"
	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"github.com/Xushengqwer/community_service/constant"
	"github.com/Xushengqwer/community_service/repo/redis"
)

// HotTopicsCacheTask 负责定时刷新 Redis 中的热门话题缓存。
// 每轮先从总排行榜截取 Top N 生成热榜快照，再基于快照刷新
// 话题基础信息 Hash 与聚合详情缓存，供热门信息流接口直接读取。
type HotTopicsCacheTask struct {
	taskCache redis.TopicTaskCache
	cron      *cron.Cron
	logger    *core.ZapLogger
}

// NewHotTopicsCacheTask 初始化并启动热门话题缓存的定时任务。
func NewHotTopicsCacheTask(taskCache redis.TopicTaskCache, logger *core.ZapLogger) *HotTopicsCacheTask {
	cronV3 := cron.New() // 默认分钟级精度

	task := &HotTopicsCacheTask{
		taskCache: taskCache,
		cron:      cronV3,
		logger:    logger,
	}
	task.startCronJob()
	return task
}

// startCronJob 配置并启动 cron 作业。
func (t *HotTopicsCacheTask) startCronJob() {
	schedule := constant.HotTopicsCacheCronSpec
	t.logger.Info("准备启动热门话题缓存刷新定时任务", zap.String("schedule", schedule))

	entryID, err := t.cron.AddFunc(schedule, func() {
		t.logger.Info("热门话题缓存刷新任务开始执行...")
		startTime := time.Now()
		// 超时需覆盖快照生成与两步缓存回填的总耗时，并留出余量。
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Minute)
		defer cancel()

		t.syncHotCaches(ctx)

		duration := time.Since(startTime)
		t.logger.Info("热门话题缓存刷新任务执行完毕", zap.Duration("duration", duration))
	})

	if err != nil {
		t.logger.Fatal("添加热门话题缓存刷新 cron 作业失败", zap.Error(err), zap.String("schedule", schedule))
	}

	t.cron.Start()
	t.logger.Info("热门话题缓存刷新定时任务已启动", zap.Uint("cronEntryID", uint(entryID)))
}

// syncHotCaches 是单次刷新的实际逻辑，按顺序执行：
// 1. 从总排行榜截取 Top N，生成/覆盖热榜快照 ZSet；
// 2. 基于快照同步热门话题基础信息到 Hash；
// 3. 基于快照同步热门话题聚合详情到独立的 String Key。
// 任一步骤失败只记录日志并继续，下一轮刷新会自然修复。
func (t *HotTopicsCacheTask) syncHotCaches(ctx context.Context) {
	t.logger.Info("任务步骤1: 开始创建/更新热榜快照 ZSet...")
	if err := t.taskCache.CreateHotList(ctx, int(constant.HotTopicsCacheSize)); err != nil {
		// 快照是后续两步的数据源，失败时后续步骤会基于旧快照刷新。
		t.logger.Error("创建/更新热榜快照 ZSet 失败，后续缓存可能基于旧快照", zap.Error(err))
	} else {
		t.logger.Info("任务步骤1: 成功创建/更新热榜快照 ZSet")
	}

	t.logger.Info("任务步骤2: 开始同步热门话题基础信息到 Redis Hash...")
	if err := t.taskCache.CacheHotTopicsToRedis(ctx); err != nil {
		t.logger.Error("同步热门话题基础信息到 Redis Hash 失败", zap.Error(err))
	} else {
		t.logger.Info("任务步骤2: 成功同步热门话题基础信息到 Redis Hash")
	}

	t.logger.Info("任务步骤3: 开始同步热门话题详情到 Redis...")
	if err := t.taskCache.CacheHotTopicDetailsToRedis(ctx); err != nil {
		t.logger.Error("同步热门话题详情到 Redis 失败", zap.Error(err))
	} else {
		t.logger.Info("任务步骤3: 成功同步热门话题详情到 Redis")
	}
}

// Stop 优雅地停止 cron 调度器。
func (t *HotTopicsCacheTask) Stop() context.Context {
	t.logger.Info("正在停止热门话题缓存刷新定时任务...")
	stopCtx := t.cron.Stop()
	t.logger.Info("热门话题缓存刷新定时任务已停止调度。等待正在执行的任务完成...")
	return stopCtx
}
