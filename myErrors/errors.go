package myErrors

import "errors"

// ErrCacheMiss 表示在缓存层未找到对应的键值
var ErrCacheMiss = errors.New("cache: key not found (miss)")

// ErrForbidden 表示操作者既不是内容所有者也不是管理员，无权执行该操作。
// - 与 commonerrors.ErrUnauthorized（未登录）区分开，
//   以便前端分别提示"请先登录"和"你没有权限"。
var ErrForbidden = errors.New("forbidden: actor is neither owner nor admin")

// ErrTopicLocked 表示话题已被锁定，禁止新增回复。
// - 注意: 锁定只约束"创作类"行为，投票/表情/收藏等参与行为不受影响。
var ErrTopicLocked = errors.New("topic is locked, new replies are not allowed")

// ErrInvalidParentReply 表示父回复引用非法（不存在或不属于同一话题）。
var ErrInvalidParentReply = errors.New("parent reply does not belong to the same topic")

// ErrVoteConflict 表示同一用户对同一目标的并发投票请求发生了唯一键冲突。
// - 这是唯一索引兜底生效的信号：事实行只会被创建一次，
//   冲突方直接放弃本次 toggle，由调用方重新发起。
var ErrVoteConflict = errors.New("concurrent vote on the same target by the same user")
