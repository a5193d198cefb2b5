package mysql

import (
	"context"

	"github.com/Xushengqwer/go-common/commonerrors"
	"github.com/Xushengqwer/go-common/core"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/Xushengqwer/community_service/models/entities"
	"github.com/Xushengqwer/community_service/models/enums"
)

// ReportRepository 定义了举报记录在 MySQL 中的操作接口。
type ReportRepository interface {
	// CreateReport 持久化一条举报记录。
	// - 同一用户对同一内容可以多次举报，这里不做去重。
	CreateReport(ctx context.Context, report *entities.Report) error

	// ListReports 按处理状态分页查询举报记录（管理端）。
	// - status 为 nil 时返回全部状态的举报。
	ListReports(ctx context.Context, status *enums.ReportStatus, page, pageSize int) ([]*entities.Report, int64, error)

	// ResolveReport 将举报标记为已处理（管理端）。
	// - 举报不存在时返回 commonerrors.ErrRepoNotFound。
	// - 对已处理的举报重复调用是无害的空操作。
	ResolveReport(ctx context.Context, reportID uint64) error

	// CountPendingByContent 统计指向某内容的待处理举报数量。
	CountPendingByContent(ctx context.Context, contentType enums.ReportContentType, contentID uint64) (int64, error)
}

type reportRepository struct {
	db     *gorm.DB
	logger *core.ZapLogger
}

// NewReportRepository 是 reportRepository 的构造函数。
func NewReportRepository(db *gorm.DB, logger *core.ZapLogger) ReportRepository {
	return &reportRepository{
		db:     db,
		logger: logger,
	}
}

// CreateReport 实现举报记录的插入。
func (r *reportRepository) CreateReport(ctx context.Context, report *entities.Report) error {
	if err := r.db.WithContext(ctx).Create(report).Error; err != nil {
		r.logger.Error("创建举报记录失败",
			zap.Int("contentType", int(report.ContentType)),
			zap.Uint64("contentID", report.ContentID),
			zap.Error(err),
		)
		return err
	}
	return nil
}

// ListReports 实现举报记录的分页查询。
func (r *reportRepository) ListReports(ctx context.Context, status *enums.ReportStatus, page, pageSize int) ([]*entities.Report, int64, error) {
	if pageSize <= 0 {
		pageSize = 20
	}
	if page <= 0 {
		page = 1
	}

	query := r.db.WithContext(ctx).Model(&entities.Report{})
	if status != nil {
		query = query.Where("status = ?", *status)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var reports []*entities.Report
	err := query.
		Order("created_at DESC").
		Order("id DESC").
		Offset((page - 1) * pageSize).
		Limit(pageSize).
		Find(&reports).Error
	if err != nil {
		r.logger.Error("查询举报记录列表失败", zap.Error(err))
		return nil, 0, err
	}
	return reports, total, nil
}

// ResolveReport 实现举报的处理标记。
func (r *reportRepository) ResolveReport(ctx context.Context, reportID uint64) error {
	result := r.db.WithContext(ctx).Model(&entities.Report{}).
		Where("id = ? AND status = ?", reportID, enums.ReportPending).
		Update("status", enums.ReportResolved)
	if result.Error != nil {
		r.logger.Error("标记举报为已处理失败", zap.Uint64("reportID", reportID), zap.Error(result.Error))
		return result.Error
	}
	if result.RowsAffected == 0 {
		// 没有命中待处理行：区分"举报不存在"与"已处理过"
		var count int64
		if err := r.db.WithContext(ctx).Model(&entities.Report{}).
			Where("id = ?", reportID).Count(&count).Error; err != nil {
			return err
		}
		if count == 0 {
			return commonerrors.ErrRepoNotFound
		}
	}
	return nil
}

// CountPendingByContent 实现待处理举报数量的统计。
func (r *reportRepository) CountPendingByContent(ctx context.Context, contentType enums.ReportContentType, contentID uint64) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&entities.Report{}).
		Where("content_type = ? AND content_id = ? AND status = ?", contentType, contentID, enums.ReportPending).
		Count(&count).Error
	if err != nil {
		return 0, err
	}
	return count, nil
}
