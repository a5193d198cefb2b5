package vo

import (
	"time"

	"github.com/Xushengqwer/community_service/models/entities"
	"github.com/Xushengqwer/community_service/models/enums"
)

// ReportVO 定义了举报记录的响应数据结构（管理端）
type ReportVO struct {
	ID          uint64                  `json:"id"`           // 举报ID
	ContentType enums.ReportContentType `json:"content_type"` // 被举报内容类型：1=话题, 2=回复
	ContentID   uint64                  `json:"content_id"`   // 被举报内容ID
	ReporterID  string                  `json:"reporter_id"`  // 举报人ID
	Reason      string                  `json:"reason"`       // 举报理由
	Status      enums.ReportStatus      `json:"status"`       // 处理状态：0=待处理, 1=已处理
	CreatedAt   time.Time               `json:"created_at"`   // 举报时间
}

// ReportPageVO 定义了举报分页查询的响应结构。
type ReportPageVO struct {
	Reports []*ReportVO `json:"reports"` // 当前页的举报列表
	Total   int64       `json:"total"`   // 符合条件的总记录数
}

// MapReportsToVOs 将举报实体列表转换为响应 VO 列表。
func MapReportsToVOs(reports []*entities.Report) []*ReportVO {
	if len(reports) == 0 {
		return []*ReportVO{}
	}
	result := make([]*ReportVO, 0, len(reports))
	for _, report := range reports {
		if report == nil {
			continue
		}
		result = append(result, &ReportVO{
			ID:          report.ID,
			ContentType: report.ContentType,
			ContentID:   report.ContentID,
			ReporterID:  report.ReporterID,
			Reason:      report.Reason,
			Status:      report.Status,
			CreatedAt:   report.CreatedAt,
		})
	}
	return result
}
