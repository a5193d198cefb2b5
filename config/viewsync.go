package config

// ViewSyncConfig 包含浏览量同步任务相关的配置
type ViewSyncConfig struct {
	// BatchSize 是将 Redis 中的浏览量同步到 MySQL 数据库时，每个数据库操作批次处理的话题数量。
	// 例如，如果从 Redis 获取到 200,000 条话题的浏览量需要同步，且 BatchSize 设置为 500，
	// 则同步任务会将这批数据分割成 400 个小批次，每个小批次通过一次
	// UPDATE ... CASE WHEN 语句完成。该参数主要影响单条 UPDATE 语句的复杂度。
	BatchSize int `mapstructure:"batchSize" json:"batchSize" yaml:"batchSize"`

	// ConcurrencyLevel 是执行浏览量同步任务时，并发处理数据批次的 worker (goroutine) 数量。
	// 该参数主要影响同时向数据库发起更新请求的并发连接数。
	ConcurrencyLevel int `mapstructure:"concurrencyLevel" json:"concurrencyLevel" yaml:"concurrencyLevel"`

	// ScanBatchSize 是从 Redis 使用 SCAN 命令获取所有话题浏览量 Key 时，
	// 传递给 SCAN 命令的 COUNT 参数的建议值。Redis 不保证精确返回此数量，
	// 较大的值可以减少 SCAN 的迭代次数，但单次调用会稍慢。
	ScanBatchSize int64 `mapstructure:"scanBatchSize" json:"scanBatchSize" yaml:"scanBatchSize"`
}
