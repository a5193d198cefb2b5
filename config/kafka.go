package config

type KafkaConfig struct {
	Brokers         []string `mapstructure:"brokers" json:"brokers" yaml:"brokers"`
	Topics          Topics   `mapstructure:"topics" json:"topics" yaml:"topics"`
	ConsumerGroupID string   `mapstructure:"consumer_group_id" json:"consumer_group_id" yaml:"consumer_group_id"`
}

type Topics struct {
	CommunityNotification string `mapstructure:"communityNotification" yaml:"communityNotification"` // 社区活动通知主题（回复/最佳答案/状态变更），由通知服务消费
	UserProfileUpdated    string `mapstructure:"userProfileUpdated" yaml:"userProfileUpdated"`       // 用户资料变更主题，本服务消费后同步话题/回复上的作者冗余字段
}
