package dto

import (
	"github.com/Xushengqwer/community_service/models/enums"
)

// CreateReportRequest 定义了提交举报的请求数据结构
type CreateReportRequest struct {
	ContentType enums.ReportContentType `json:"content_type" binding:"required,oneof=1 2"` // 被举报内容类型：1=话题, 2=回复
	ContentID   uint64                  `json:"content_id" binding:"required,gt=0"`        // 被举报内容ID
	Reason      string                  `json:"reason" binding:"required,max=500"`         // 举报理由
}

// ReportListQuery 定义了管理端查询举报列表的请求数据结构
type ReportListQuery struct {
	Status   *enums.ReportStatus `form:"status" binding:"omitempty,oneof=0 1"` // 按处理状态筛选，省略表示全部
	Page     int                 `form:"page" binding:"omitempty,gt=0"`
	PageSize int                 `form:"page_size" binding:"omitempty,gt=0,lte=100"`
}
