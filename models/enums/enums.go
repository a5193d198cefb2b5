package enums

// TopicStatus 话题生命周期状态，枚举类型：0=开放, 1=已解决, 2=已关闭
// - 注意: 状态与锁定 (Locked) 是两个相互独立的维度。
//   一个已关闭但未锁定的话题仍然可以被话题主人标记为已解决，
//   这里刻意不做状态机校验（与上游业务保持一致的宽松语义）。
type TopicStatus int

const (
	TopicOpen   TopicStatus = iota // 开放中，可正常讨论
	TopicSolved                    // 已解决（通常伴随最佳答案）
	TopicClosed                    // 已关闭，仅作展示
)

// IsValid 校验状态值是否在合法范围内。
func (s TopicStatus) IsValid() bool {
	return s >= TopicOpen && s <= TopicClosed
}

// VoteType 投票类型，枚举类型：1=赞同, 2=反对
// - 设计意图: 从 1 开始，避免与数据库默认零值混淆。
type VoteType int

const (
	VoteUp   VoteType = 1 // 赞同票
	VoteDown VoteType = 2 // 反对票
)

// IsValid 校验投票类型是否合法。
func (v VoteType) IsValid() bool {
	return v == VoteUp || v == VoteDown
}

// Opposite 返回相反的投票类型，用于换票 (flip) 场景。
func (v VoteType) Opposite() VoteType {
	if v == VoteUp {
		return VoteDown
	}
	return VoteUp
}

// TargetType 表情反应的目标类型：1=话题, 2=回复
type TargetType int

const (
	TargetTopic TargetType = 1 // 话题
	TargetReply TargetType = 2 // 回复
)

// IsValid 校验目标类型是否合法。
func (t TargetType) IsValid() bool {
	return t == TargetTopic || t == TargetReply
}

// MediaType 话题附带媒体的类型：0=无, 1=图片, 2=视频
// - 图片和视频互斥，一个话题至多携带一个媒体引用。
type MediaType int

const (
	MediaNone  MediaType = iota // 无媒体
	MediaImage                  // 图片
	MediaVideo                  // 视频
)

// IsValid 校验媒体类型是否合法。
func (m MediaType) IsValid() bool {
	return m >= MediaNone && m <= MediaVideo
}

// ReportContentType 举报内容的类型：1=话题, 2=回复
type ReportContentType int

const (
	ReportTopic ReportContentType = 1
	ReportReply ReportContentType = 2
)

// IsValid 校验举报内容类型是否合法。
func (r ReportContentType) IsValid() bool {
	return r == ReportTopic || r == ReportReply
}

// ReportStatus 举报处理状态：0=待处理, 1=已处理
// - 举报本身是纯追加读取的数据，除存在性外没有更复杂的状态机。
type ReportStatus int

const (
	ReportPending  ReportStatus = iota // 待处理
	ReportResolved                     // 已处理
)

// UserRole 网关透传下来的用户角色：0=普通用户, 1=管理员
// - 与 UserID 一样由上游网关鉴权后通过请求头注入，本服务只做信任转发。
type UserRole int

const (
	RoleUser  UserRole = iota // 普通用户
	RoleAdmin                 // 管理员
)

// IsAdmin 判断角色是否为管理员。
func (r UserRole) IsAdmin() bool {
	return r == RoleAdmin
}
