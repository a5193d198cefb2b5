package service

import (
	"context"

	"github.com/Xushengqwer/go-common/core"
	"go.uber.org/zap"

	"github.com/Xushengqwer/community_service/models/dto"
	"github.com/Xushengqwer/community_service/models/entities"
	"github.com/Xushengqwer/community_service/models/enums"
	"github.com/Xushengqwer/community_service/models/vo"
	"github.com/Xushengqwer/community_service/moderation"
	myErrors "github.com/Xushengqwer/community_service/myErrors"
	"github.com/Xushengqwer/community_service/repo/mysql"
)

// ReportService 定义了举报提交与管理端查询的业务逻辑接口。
type ReportService interface {
	// CreateReport 提交一条对话题或回复的举报。
	// - 被举报内容必须存在；同一用户可重复举报，不做去重。
	CreateReport(ctx context.Context, reporterID string, req *dto.CreateReportRequest) error

	// ListReports 按处理状态分页查询举报记录。仅管理员可访问。
	ListReports(ctx context.Context, actor moderation.Actor, query *dto.ReportListQuery) (*vo.ReportPageVO, error)

	// ResolveReport 将举报标记为已处理。仅管理员可访问。
	ResolveReport(ctx context.Context, actor moderation.Actor, reportID uint64) error
}

type reportService struct {
	reportRepo mysql.ReportRepository
	topicRepo  mysql.TopicRepository
	replyRepo  mysql.ReplyRepository
	logger     *core.ZapLogger
}

// NewReportService 是 reportService 的构造函数。
func NewReportService(
	reportRepo mysql.ReportRepository,
	topicRepo mysql.TopicRepository,
	replyRepo mysql.ReplyRepository,
	logger *core.ZapLogger,
) ReportService {
	return &reportService{
		reportRepo: reportRepo,
		topicRepo:  topicRepo,
		replyRepo:  replyRepo,
		logger:     logger,
	}
}

// CreateReport 实现举报的提交。
func (s *reportService) CreateReport(ctx context.Context, reporterID string, req *dto.CreateReportRequest) error {
	// 校验被举报内容存在，不存在时返回 404
	switch req.ContentType {
	case enums.ReportTopic:
		if _, err := s.topicRepo.GetTopicByID(ctx, req.ContentID); err != nil {
			return err
		}
	case enums.ReportReply:
		if _, err := s.replyRepo.GetReplyByID(ctx, req.ContentID); err != nil {
			return err
		}
	}

	report := &entities.Report{
		ContentType: req.ContentType,
		ContentID:   req.ContentID,
		ReporterID:  reporterID,
		Reason:      req.Reason,
		Status:      enums.ReportPending,
	}
	if err := s.reportRepo.CreateReport(ctx, report); err != nil {
		return err
	}

	// 待处理举报的累计数供运营观察内容热度，统计失败不影响提交结果
	pendingCount, countErr := s.reportRepo.CountPendingByContent(ctx, req.ContentType, req.ContentID)
	if countErr != nil {
		s.logger.Warn("统计内容的待处理举报数量失败",
			zap.Uint64("contentID", req.ContentID),
			zap.Error(countErr),
		)
	}

	s.logger.Info("举报提交成功",
		zap.Uint64("reportID", report.ID),
		zap.Int("contentType", int(req.ContentType)),
		zap.Uint64("contentID", req.ContentID),
		zap.String("reporterID", reporterID),
		zap.Int64("pendingCountOnContent", pendingCount),
	)
	return nil
}

// ListReports 实现管理端的举报列表查询。
func (s *reportService) ListReports(ctx context.Context, actor moderation.Actor, query *dto.ReportListQuery) (*vo.ReportPageVO, error) {
	if !moderation.CanMutate(actor, "", moderation.ActionAdmin) {
		return nil, myErrors.ErrForbidden
	}

	reports, total, err := s.reportRepo.ListReports(ctx, query.Status, query.Page, query.PageSize)
	if err != nil {
		return nil, err
	}

	return &vo.ReportPageVO{
		Reports: vo.MapReportsToVOs(reports),
		Total:   total,
	}, nil
}

// ResolveReport 实现管理端的举报处理。
func (s *reportService) ResolveReport(ctx context.Context, actor moderation.Actor, reportID uint64) error {
	if !moderation.CanMutate(actor, "", moderation.ActionAdmin) {
		return myErrors.ErrForbidden
	}

	if err := s.reportRepo.ResolveReport(ctx, reportID); err != nil {
		return err
	}

	s.logger.Info("举报已标记为处理完成",
		zap.Uint64("reportID", reportID),
		zap.String("adminID", actor.UserID),
	)
	return nil
}
