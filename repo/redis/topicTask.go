package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/Xushengqwer/go-common/core"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/Xushengqwer/community_service/constant"
	"github.com/Xushengqwer/community_service/models/entities"
	"github.com/Xushengqwer/community_service/models/enums"
	"github.com/Xushengqwer/community_service/models/vo"
	"github.com/Xushengqwer/community_service/repo/mysql"
)

// TopicTaskCache 定义了后台任务管理和维护话题相关缓存的操作接口。
type TopicTaskCache interface {
	// CreateHotList 原子性地从总排行榜 (`TopicsRankKey`) 截取前 N 条记录，
	// 生成/覆盖热榜快照 (`HotTopicsRankKey`)。后续缓存方法均依赖该快照。
	CreateHotList(ctx context.Context, n int) error

	// CacheHotTopicsToRedis 将 MySQL 中的热门话题基础信息加载到 Redis Hash。
	CacheHotTopicsToRedis(ctx context.Context) error

	// CacheHotTopicDetailsToRedis 将热门话题的聚合详情视图
	// （话题 + 回复树 + 表情聚合）加载到 Redis。
	CacheHotTopicDetailsToRedis(ctx context.Context) error
}

type topicTaskCacheImpl struct {
	redisClient  *redis.Client
	logger       *core.ZapLogger
	topicRepo    mysql.TopicRepository
	replyRepo    mysql.ReplyRepository
	reactionRepo mysql.ReactionRepository
}

// NewTopicTaskCacheImpl 创建 TopicTaskCache 的新实例。
func NewTopicTaskCacheImpl(
	redisClient *redis.Client,
	logger *core.ZapLogger,
	topicRepo mysql.TopicRepository,
	replyRepo mysql.ReplyRepository,
	reactionRepo mysql.ReactionRepository,
) TopicTaskCache {
	return &topicTaskCacheImpl{
		redisClient:  redisClient,
		logger:       logger,
		topicRepo:    topicRepo,
		replyRepo:    replyRepo,
		reactionRepo: reactionRepo,
	}
}

// createHotListScript 原子性地把总榜前 N 名复制为热榜快照。
// ZREVRANGE WITHSCORES 返回 {member1, score1, ...}，ZADD 需要 {score, member, ...}，
// 脚本内重组参数后一次性写入。
var createHotListScript = redis.NewScript(`
	local items_with_scores = redis.call("ZREVRANGE", KEYS[1], 0, tonumber(ARGV[1]) - 1, "WITHSCORES")
	redis.call("DEL", KEYS[2])

	if #items_with_scores > 0 then
		local args_for_zadd = { KEYS[2] }
		for i = 1, #items_with_scores, 2 do
			table.insert(args_for_zadd, items_with_scores[i+1])
			table.insert(args_for_zadd, items_with_scores[i])
		end
		redis.call("ZADD", unpack(args_for_zadd))
	end
	return #items_with_scores / 2
`)

// CreateHotList 原子性地从总排行榜截取前 N 条记录，生成或覆盖热榜快照。
func (c *topicTaskCacheImpl) CreateHotList(ctx context.Context, n int) error {
	if n <= 0 {
		c.logger.Info("CreateHotList: 请求创建的热榜大小 n 小于或等于 0，操作取消。", zap.Int("n", n))
		return nil
	}

	fullRankKey := constant.TopicsRankKey
	hotListKey := constant.HotTopicsRankKey

	c.logger.Info("开始创建/更新热榜快照",
		zap.String("sourceKey", fullRankKey),
		zap.String("destinationKey", hotListKey),
		zap.Int("size_n", n),
	)

	_, err := createHotListScript.Run(ctx, c.redisClient, []string{fullRankKey, hotListKey}, n).Result()
	if err != nil {
		c.logger.Error("执行 Lua 脚本创建热榜快照失败",
			zap.Error(err),
			zap.String("sourceKey", fullRankKey),
			zap.String("destinationKey", hotListKey),
			zap.Int("n", n),
		)
		return fmt.Errorf("创建热榜快照 (Top %d) 失败: %w", n, err)
	}

	c.logger.Info("成功创建/更新热榜快照", zap.String("key", hotListKey), zap.Int("requested_size_n", n))
	return nil
}

// readHotSnapshot 读取热榜快照，返回有序的话题 ID 列表与分数映射。
func (c *topicTaskCacheImpl) readHotSnapshot(ctx context.Context) ([]uint64, map[uint64]float64, error) {
	topicScores, err := c.redisClient.ZRevRangeWithScores(ctx,
		constant.HotTopicsRankKey, 0, constant.HotTopicsCacheSize-1).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return []uint64{}, map[uint64]float64{}, nil
		}
		return nil, nil, fmt.Errorf("获取热榜 ZSet (快照) 失败: %w", err)
	}

	ids := make([]uint64, 0, len(topicScores))
	scores := make(map[uint64]float64, len(topicScores))
	for _, z := range topicScores {
		idStr, ok := z.Member.(string)
		if !ok {
			return nil, nil, fmt.Errorf("热榜 ZSet (key: %s) 成员类型非字符串 (member: %v)，数据异常",
				constant.HotTopicsRankKey, z.Member)
		}
		id, parseErr := strconv.ParseUint(idStr, 10, 64)
		if parseErr != nil {
			return nil, nil, fmt.Errorf("解析热榜 ZSet (key: %s) 成员 ID '%s' 失败: %v，数据异常",
				constant.HotTopicsRankKey, idStr, parseErr)
		}
		ids = append(ids, id)
		scores[id] = z.Score
	}
	return ids, scores, nil
}

// CacheHotTopicsToRedis 将热门话题缓存到 Redis Hash（临时Key+RENAME策略）。
func (c *topicTaskCacheImpl) CacheHotTopicsToRedis(ctx context.Context) error {
	startTime := time.Now()
	c.logger.Info("开始同步热门话题到 Redis Hash (采用临时Key+RENAME策略)")

	finalHashKey := constant.TopicsHashKey
	tempHashKey := finalHashKey + "_temp_" + strconv.FormatInt(time.Now().UnixNano(), 10)

	hotTopicIDs, scoreMap, err := c.readHotSnapshot(ctx)
	if err != nil {
		c.logger.Error("读取热榜快照失败", zap.Error(err))
		return err
	}

	if len(hotTopicIDs) == 0 {
		c.logger.Info("热榜 ZSet (快照) 为空，将清空话题 Hash 缓存", zap.String("hashKeyToClear", finalHashKey))
		if delErr := c.redisClient.Del(ctx, finalHashKey).Err(); delErr != nil {
			c.logger.Error("清空话题 Hash 缓存失败", zap.Error(delErr), zap.String("key", finalHashKey))
		}
		return nil
	}

	topicsFromDB, dbErr := c.topicRepo.GetTopicsByIDs(ctx, hotTopicIDs)
	if dbErr != nil {
		c.logger.Error("从 MySQL 批量获取热门话题失败，本次缓存更新中止，现有缓存将保留。",
			zap.Error(dbErr), zap.Int("idCount", len(hotTopicIDs)))
		return fmt.Errorf("从数据库获取话题数据失败: %w", dbErr)
	}

	dbTopicsMap := make(map[uint64]*entities.Topic, len(topicsFromDB))
	for _, t := range topicsFromDB {
		dbTopicsMap[t.ID] = t
	}

	dataToCache := make(map[string]interface{})
	marshalErrors := 0
	for _, hotID := range hotTopicIDs {
		idStr := strconv.FormatUint(hotID, 10)
		topic, foundInDB := dbTopicsMap[hotID]
		if !foundInDB {
			c.logger.Warn("热榜中的 TopicID 在数据库中未找到，无法缓存该话题", zap.Uint64("topicID", hotID))
			continue
		}
		topicToCache := *topic
		if score, scoreExists := scoreMap[hotID]; scoreExists {
			// 使用 ZSet 快照中的分数作为浏览量
			topicToCache.ViewCount = int64(score)
		}
		jsonData, jsonErr := json.Marshal(topicToCache)
		if jsonErr != nil {
			c.logger.Error("序列化话题实体失败，跳过该话题", zap.Error(jsonErr), zap.Uint64("topicID", topicToCache.ID))
			marshalErrors++
			continue
		}
		dataToCache[idStr] = jsonData
	}

	if len(dataToCache) == 0 {
		c.logger.Error("未能准备任何有效的话题数据进行缓存 (DB未找到或序列化失败)，现有缓存将保留。",
			zap.Int("hotIDsFromZset", len(hotTopicIDs)),
			zap.Int("dbTopicsFetched", len(topicsFromDB)),
			zap.Int("marshalErrors", marshalErrors),
		)
		return errors.New("未能准备有效的话题数据进行缓存，操作中止")
	}

	pipe := c.redisClient.Pipeline()
	pipe.Del(ctx, tempHashKey)
	pipe.HMSet(ctx, tempHashKey, dataToCache)
	if _, execErr := pipe.Exec(ctx); execErr != nil {
		c.logger.Error("执行 Redis Pipeline (写入临时 Hash) 失败，现有缓存将保留。",
			zap.Error(execErr), zap.String("tempHashKey", tempHashKey))
		c.redisClient.Del(ctx, tempHashKey)
		return fmt.Errorf("写入临时话题 Hash 缓存 (key: %s) 失败: %w", tempHashKey, execErr)
	}

	if renameErr := c.redisClient.Rename(ctx, tempHashKey, finalHashKey).Err(); renameErr != nil {
		c.logger.Error("执行 Redis RENAME (temp 到 final Hash) 失败，新缓存可能在临时Key中。",
			zap.Error(renameErr),
			zap.String("tempHashKey", tempHashKey),
			zap.String("finalHashKey", finalHashKey),
		)
		c.redisClient.Del(ctx, tempHashKey)
		return fmt.Errorf("重命名临时 Hash (key: %s) 到最终 Hash (key: %s) 失败: %w", tempHashKey, finalHashKey, renameErr)
	}

	c.logger.Info("成功将热门话题同步到 Redis Hash",
		zap.String("finalHashKey", finalHashKey),
		zap.Int("cachedCount", len(dataToCache)),
		zap.Int("marshalErrors", marshalErrors),
		zap.Duration("duration", time.Since(startTime)),
	)
	return nil
}

// scanDetailKeys 扫描全部已缓存的话题详情 Key（不含临时 Key）。
func (c *topicTaskCacheImpl) scanDetailKeys(ctx context.Context) (map[uint64]string, error) {
	result := make(map[uint64]string)
	var cursor uint64
	scanPattern := constant.TopicDetailCacheKeyPrefix + "*"
	scanCount := int64(1000)

	for {
		keys, nextCursor, scanErr := c.redisClient.Scan(ctx, cursor, scanPattern, scanCount).Result()
		if scanErr != nil {
			return nil, fmt.Errorf("扫描已缓存详情Key (pattern: %s) 失败: %w", scanPattern, scanErr)
		}
		for _, key := range keys {
			suffix := strings.TrimPrefix(key, constant.TopicDetailCacheKeyPrefix)
			if strings.HasPrefix(suffix, "temp:") {
				continue
			}
			id, parseErr := strconv.ParseUint(suffix, 10, 64)
			if parseErr != nil {
				c.logger.Warn("解析已缓存的话题详情Key中的ID失败，跳过", zap.String("key", key), zap.Error(parseErr))
				continue
			}
			result[id] = key
		}
		cursor = nextCursor
		if cursor == 0 {
			break
		}
	}
	return result, nil
}

// CacheHotTopicDetailsToRedis 将热门话题的聚合详情同步到 Redis。
// 采用临时Key+RENAME及差量更新策略：新增/刷新热门话题的详情，删除掉榜话题的详情。
func (c *topicTaskCacheImpl) CacheHotTopicDetailsToRedis(ctx context.Context) error {
	startTime := time.Now()
	c.logger.Info("开始同步热门话题详情到 Redis (基于已生成的热榜快照)")

	// 1. 读取热榜快照
	hotTopicIDs, scoreMap, err := c.readHotSnapshot(ctx)
	if err != nil {
		c.logger.Error("读取热榜快照失败", zap.Error(err))
		return err
	}

	// 2. 获取当前已缓存的详情 Key
	cachedDetailIDsMap, err := c.scanDetailKeys(ctx)
	if err != nil {
		c.logger.Error("扫描已缓存的话题详情Key失败，无法进行差量更新，中止任务。", zap.Error(err))
		return err
	}

	// 热榜为空：清理全部旧详情缓存后结束
	if len(hotTopicIDs) == 0 {
		if len(cachedDetailIDsMap) > 0 {
			keysToDelete := make([]string, 0, len(cachedDetailIDsMap))
			for _, key := range cachedDetailIDsMap {
				keysToDelete = append(keysToDelete, key)
			}
			if delErr := c.redisClient.Del(ctx, keysToDelete...).Err(); delErr != nil {
				c.logger.Error("在热榜为空时清理所有话题详情缓存失败", zap.Error(delErr))
			} else {
				c.logger.Info("热榜为空，已清理所有旧的话题详情缓存", zap.Int("deletedCount", len(keysToDelete)))
			}
		}
		return nil
	}

	// 3. 计算差异：掉榜的详情删除，在榜的全部刷新
	hotIDsSet := make(map[uint64]bool, len(hotTopicIDs))
	for _, id := range hotTopicIDs {
		hotIDsSet[id] = true
	}
	var finalKeysToDelete []string
	for cachedID, finalKey := range cachedDetailIDsMap {
		if !hotIDsSet[cachedID] {
			finalKeysToDelete = append(finalKeysToDelete, finalKey)
		}
	}

	// 4. 阶段一：聚合详情并写入临时缓存区
	topicsFromDB, dbErr := c.topicRepo.GetTopicsByIDs(ctx, hotTopicIDs)
	if dbErr != nil {
		c.logger.Error("从MySQL批量获取话题失败，操作中止，不修改现有缓存。", zap.Error(dbErr))
		return fmt.Errorf("数据库获取话题数据失败: %w", dbErr)
	}
	topicsMap := make(map[uint64]*entities.Topic, len(topicsFromDB))
	for _, t := range topicsFromDB {
		topicsMap[t.ID] = t
	}

	tempKeyToFinalKeyMap := make(map[string]string)
	marshalErrors := 0
	pipe := c.redisClient.Pipeline()
	tempKeyWritesAttempted := 0

	for _, topicID := range hotTopicIDs {
		topic, found := topicsMap[topicID]
		if !found {
			c.logger.Warn("热榜中的 TopicID 在数据库中未找到，无法缓存其详情", zap.Uint64("topicID", topicID))
			continue
		}

		// 逐话题聚合回复树与表情；单个话题失败不影响其余话题
		replies, replyErr := c.replyRepo.ListRepliesByTopicID(ctx, topicID)
		if replyErr != nil {
			c.logger.Error("获取话题回复失败，跳过该话题的详情缓存", zap.Error(replyErr), zap.Uint64("topicID", topicID))
			continue
		}

		replyIDs := make([]uint64, 0, len(replies))
		for _, reply := range replies {
			replyIDs = append(replyIDs, reply.ID)
		}

		topicReactions, reactionErr := c.reactionRepo.ListReactionsByTarget(ctx, enums.TargetTopic, topicID)
		if reactionErr != nil {
			c.logger.Error("获取话题表情失败，跳过该话题的详情缓存", zap.Error(reactionErr), zap.Uint64("topicID", topicID))
			continue
		}
		replyReactions, reactionErr := c.reactionRepo.ListReactionsByTargets(ctx, enums.TargetReply, replyIDs)
		if reactionErr != nil {
			c.logger.Error("获取回复表情失败，跳过该话题的详情缓存", zap.Error(reactionErr), zap.Uint64("topicID", topicID))
			continue
		}

		viewCount := topic.ViewCount
		if score, ok := scoreMap[topicID]; ok {
			viewCount = int64(score)
		}
		topicResponse := vo.NewTopicResponseFromEntity(topic, int64(len(replies)))
		topicResponse.ViewCount = viewCount

		replyTree := vo.BuildReplyTree(replies)
		vo.AttachReplyReactions(replyTree, vo.GroupReactionsByTarget(replyReactions))

		detailVO := vo.TopicDetailVO{
			Topic:     *topicResponse,
			Replies:   replyTree,
			Reactions: vo.AggregateReactions(topicReactions),
		}

		idStr := strconv.FormatUint(topicID, 10)
		jsonData, jsonErr := json.Marshal(detailVO)
		if jsonErr != nil {
			c.logger.Error("序列化聚合后的话题详情VO失败，跳过", zap.Error(jsonErr), zap.Uint64("topicID", topicID))
			marshalErrors++
			continue
		}

		tempKey := constant.TopicDetailCacheKeyPrefix + "temp:" + idStr
		finalKey := constant.TopicDetailCacheKeyPrefix + idStr
		pipe.Set(ctx, tempKey, jsonData, 0)
		tempKeyToFinalKeyMap[tempKey] = finalKey
		tempKeyWritesAttempted++
	}

	if tempKeyWritesAttempted > 0 {
		if _, execErr := pipe.Exec(ctx); execErr != nil {
			c.logger.Error("Pipeline执行失败：写入聚合话题详情到临时Key时出错，操作中止，不修改现有缓存。",
				zap.Error(execErr), zap.Int("attemptedTempKeyWrites", tempKeyWritesAttempted))
			keysToClean := make([]string, 0, len(tempKeyToFinalKeyMap))
			for tKey := range tempKeyToFinalKeyMap {
				keysToClean = append(keysToClean, tKey)
			}
			if len(keysToClean) > 0 {
				c.redisClient.Del(ctx, keysToClean...)
			}
			return fmt.Errorf("写入新详情到临时缓存失败: %w", execErr)
		}
	}

	// 5. 阶段二：删除不再热门的话题详情缓存
	if len(finalKeysToDelete) > 0 {
		if delErr := c.redisClient.Del(ctx, finalKeysToDelete...).Err(); delErr != nil {
			c.logger.Warn("删除不再热门的话题详情时出错，部分旧缓存可能残留。",
				zap.Error(delErr), zap.Int("deleteKeyCount", len(finalKeysToDelete)))
		} else {
			c.logger.Info("成功删除不再热门的话题详情缓存", zap.Int("count", len(finalKeysToDelete)))
		}
	}

	// 6. 阶段三：激活新的话题详情缓存 (RENAME temp keys)
	if len(tempKeyToFinalKeyMap) > 0 {
		renamePipe := c.redisClient.Pipeline()
		for tempKey, finalKey := range tempKeyToFinalKeyMap {
			renamePipe.Rename(ctx, tempKey, finalKey)
		}
		if _, execErr := renamePipe.Exec(ctx); execErr != nil {
			c.logger.Error("Pipeline执行严重失败：RENAME临时Key到最终Key时出错。缓存状态可能不一致。",
				zap.Error(execErr), zap.Int("renameCount", len(tempKeyToFinalKeyMap)))
			return fmt.Errorf("RENAME临时缓存失败: %w", execErr)
		}
	}

	c.logger.Info("完成同步热门话题详情到 Redis 任务",
		zap.Int("cachedCount", len(tempKeyToFinalKeyMap)),
		zap.Int("deletedCount", len(finalKeysToDelete)),
		zap.Int("marshalErrors", marshalErrors),
		zap.Duration("duration", time.Since(startTime)),
	)
	return nil
}
