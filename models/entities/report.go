package entities

import (
	"github.com/Xushengqwer/go-common/models/entities"

	"github.com/Xushengqwer/community_service/models/enums"
)

// Report 举报记录
// - 纯追加/读取的数据，除存在性与处理标记外没有状态机。
// - 表名: reports
type Report struct {
	entities.BaseModel

	// 被举报内容的类型：1=话题, 2=回复
	ContentType enums.ReportContentType `gorm:"type:int;not null;index:idx_reports_content"`

	// 被举报内容的ID
	ContentID uint64 `gorm:"type:bigint;not null;index:idx_reports_content"`

	// 举报人ID
	ReporterID string `gorm:"type:char(36);not null"`

	// 举报理由，自由文本
	Reason string `gorm:"type:varchar(500);not null"`

	// 处理状态：0=待处理, 1=已处理
	Status enums.ReportStatus `gorm:"type:int;default:0"`
}
