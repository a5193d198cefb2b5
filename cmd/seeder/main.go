package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/Xushengqwer/go-common/core"
	"go.uber.org/zap"

	appConfig "github.com/Xushengqwer/community_service/config"
	"github.com/Xushengqwer/community_service/dependencies"
	"github.com/Xushengqwer/community_service/mq/producer"
	"github.com/Xushengqwer/community_service/repo/mysql"
	redisRepo "github.com/Xushengqwer/community_service/repo/redis"
	"github.com/Xushengqwer/community_service/service"
)

func main() {
	// --- 0. 解析命令行参数 ---
	var numTopics int
	var configFile string
	flag.StringVar(&configFile, "config", "config/config.development.yaml", "配置文件路径")
	flag.IntVar(&numTopics, "n", 50, "要生成的话题数量 (默认: 50)")
	var waitSeconds int
	flag.IntVar(&waitSeconds, "wait", 5, "数据填充后等待的秒数 (确保异步任务完成, 默认: 5秒)")
	flag.Parse()

	absConfigFile, err := filepath.Abs(configFile)
	if err != nil {
		fmt.Printf("无法获取配置文件的绝对路径 '%s': %v\n", configFile, err)
		absConfigFile = configFile
	}
	fmt.Printf("准备使用配置文件 '%s' (尝试绝对路径: '%s') 生成 %d 条测试话题...\n", configFile, absConfigFile, numTopics)

	if numTopics <= 0 {
		fmt.Println("错误: 生成的话题数量必须大于 0")
		os.Exit(1)
	}
	if waitSeconds < 0 {
		fmt.Println("错误: 等待秒数不能为负")
		os.Exit(1)
	}

	// --- 1. 加载配置 ---
	var cfg appConfig.CommunityConfig
	if err := core.LoadConfig(absConfigFile, &cfg); err != nil {
		fmt.Printf("加载配置失败 (%s): %v\n", absConfigFile, err)
		os.Exit(1)
	}
	fmt.Println("配置加载成功。")
	if cfg.MySQLConfig.Write.DSN == "" {
		fmt.Println("警告: MySQL Write DSN 为空。请检查配置文件路径与 `mysql.write.dsn` 配置项。")
	}

	// --- 2. 初始化日志记录器 ---
	logger, loggerErr := core.NewZapLogger(cfg.ZapConfig)
	if loggerErr != nil {
		fmt.Printf("初始化 ZapLogger 失败: %v\n", loggerErr)
		os.Exit(1)
	}
	defer func() {
		_ = logger.Logger().Sync()
	}()
	logger.Info("Logger 初始化成功 (Seeder)")

	// --- 3. 初始化 MySQL 数据库连接 ---
	db, dbErr := dependencies.InitMySQL(&cfg, logger)
	if dbErr != nil {
		logger.Fatal("初始化 MySQL 失败 (Seeder)", zap.Error(dbErr))
	}
	logger.Info("MySQL 连接成功 (Seeder)")

	// --- 4. 初始化 Kafka 生产者 ---
	kafkaProducer := producer.NewKafkaProducer(cfg.KafkaConfig, logger)
	logger.Info("Kafka 生产者已初始化 (Seeder)")

	// --- 5. 初始化 COS 客户端 ---
	cos, cosErr := dependencies.InitCOS(&cfg.COSConfig, logger)
	if cosErr != nil {
		logger.Fatal("初始化 COS 客户端失败 (Seeder)", zap.Error(cosErr))
	}
	logger.Info("COS 客户端初始化成功 (Seeder)")

	// --- 6. 初始化 Repositories ---
	topicRepo := mysql.NewTopicRepository(db, logger)
	topicAdminRepo := mysql.NewTopicAdminRepository(db, logger)
	replyRepo := mysql.NewReplyRepository(db, logger)
	voteRepo := mysql.NewVoteRepository(db, logger)
	reactionRepo := mysql.NewReactionRepository(db, logger)
	engagementRepo := mysql.NewEngagementRepository(db, logger)

	rdb, redisErr := dependencies.InitRedis(&cfg.RedisConfig, logger)
	if redisErr != nil {
		logger.Warn("初始化 Redis 失败 (Seeder)，部分依赖 Redis 的功能可能受限", zap.Error(redisErr))
	}
	var topicViewRepo redisRepo.TopicViewRepository
	var topicTrendRepo redisRepo.TopicTrendRepository
	if rdb != nil {
		topicViewRepo = redisRepo.NewTopicViewRepository(rdb, logger, cfg.ViewSyncConfig)
		topicTrendRepo = redisRepo.NewTopicTrendRepository(rdb, logger)
	} else {
		logger.Warn("Redis 仓库未初始化，浏览量与热度相关功能将不可用")
	}

	// --- 7. 初始化 Services ---
	notifier := service.NewSubscriberNotifier(engagementRepo, kafkaProducer, logger)
	topicSvc := service.NewTopicService(
		db,
		topicRepo,
		topicAdminRepo,
		replyRepo,
		voteRepo,
		reactionRepo,
		engagementRepo,
		topicViewRepo,
		topicTrendRepo,
		cos,
		notifier,
		logger,
	)
	replySvc := service.NewReplyService(topicRepo, replyRepo, notifier, logger)
	interactionSvc := service.NewInteractionService(voteRepo, reactionRepo, topicTrendRepo, logger)
	logger.Info("Services 已初始化 (Seeder)")

	// --- 8. 执行数据填充 ---
	ctx := context.Background()
	startTime := time.Now()
	logger.Info("开始执行数据填充...", zap.Int("预计话题数量", numTopics))

	Seed(ctx, topicSvc, replySvc, interactionSvc, logger, numTopics)

	duration := time.Since(startTime)
	logger.Info("数据填充主要逻辑完成！", zap.Duration("耗时", duration))

	// --- 9. 等待一段时间以确保异步 Kafka 任务有时间发送 ---
	if waitSeconds > 0 {
		logger.Info(fmt.Sprintf("Seeder: 数据填充请求已发送，等待 %d 秒以允许异步任务完成...", waitSeconds))
		time.Sleep(time.Duration(waitSeconds) * time.Second)
	}

	fmt.Printf("数据填充完成！总耗时（包括等待）: %v\n", time.Since(startTime))
	logger.Info("Seeder main: 所有任务完成（包括等待期），准备退出。")
}
