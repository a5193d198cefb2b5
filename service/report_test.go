package service

import (
	"context"
	"errors"
	"testing"

	"github.com/Xushengqwer/go-common/commonerrors"

	"github.com/Xushengqwer/community_service/models/dto"
	"github.com/Xushengqwer/community_service/models/entities"
	"github.com/Xushengqwer/community_service/models/enums"
	"github.com/Xushengqwer/community_service/moderation"
	myErrors "github.com/Xushengqwer/community_service/myErrors"
)

// fakeReportRepo 是 mysql.ReportRepository 的内存实现。
type fakeReportRepo struct {
	reports map[uint64]*entities.Report
	nextID  uint64
}

func newFakeReportRepo() *fakeReportRepo {
	return &fakeReportRepo{reports: make(map[uint64]*entities.Report)}
}

func (f *fakeReportRepo) CreateReport(_ context.Context, report *entities.Report) error {
	f.nextID++
	report.ID = f.nextID
	f.reports[report.ID] = report
	return nil
}

func (f *fakeReportRepo) ListReports(_ context.Context, status *enums.ReportStatus, _, _ int) ([]*entities.Report, int64, error) {
	var matched []*entities.Report
	for _, report := range f.reports {
		if status != nil && report.Status != *status {
			continue
		}
		matched = append(matched, report)
	}
	return matched, int64(len(matched)), nil
}

func (f *fakeReportRepo) ResolveReport(_ context.Context, reportID uint64) error {
	report, ok := f.reports[reportID]
	if !ok {
		return commonerrors.ErrRepoNotFound
	}
	report.Status = enums.ReportResolved
	return nil
}

func (f *fakeReportRepo) CountPendingByContent(_ context.Context, contentType enums.ReportContentType, contentID uint64) (int64, error) {
	var count int64
	for _, report := range f.reports {
		if report.ContentType == contentType && report.ContentID == contentID && report.Status == enums.ReportPending {
			count++
		}
	}
	return count, nil
}

func TestCreateReport_被举报内容必须存在(t *testing.T) {
	reportRepo := newFakeReportRepo()
	svc := NewReportService(reportRepo, newFakeTopicRepo(), newFakeReplyRepo(), newTestLogger(t))

	tests := []struct {
		name string
		req  *dto.CreateReportRequest
	}{
		{"举报不存在的话题", &dto.CreateReportRequest{ContentType: enums.ReportTopic, ContentID: 99, Reason: "spam"}},
		{"举报不存在的回复", &dto.CreateReportRequest{ContentType: enums.ReportReply, ContentID: 99, Reason: "spam"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := svc.CreateReport(context.Background(), "user-1", tt.req)
			if !errors.Is(err, commonerrors.ErrRepoNotFound) {
				t.Fatalf("期望 ErrRepoNotFound, 实际: %v", err)
			}
		})
	}
	if len(reportRepo.reports) != 0 {
		t.Fatalf("校验失败时不应落库, 实际记录数: %d", len(reportRepo.reports))
	}
}

func TestCreateReport_正常提交为待处理状态(t *testing.T) {
	reportRepo := newFakeReportRepo()
	topicRepo := newFakeTopicRepo(newTopicEntity(1, "user-1", false))
	svc := NewReportService(reportRepo, topicRepo, newFakeReplyRepo(), newTestLogger(t))

	err := svc.CreateReport(context.Background(), "user-2", &dto.CreateReportRequest{
		ContentType: enums.ReportTopic,
		ContentID:   1,
		Reason:      "不当内容",
	})
	if err != nil {
		t.Fatalf("提交举报失败: %v", err)
	}

	report, ok := reportRepo.reports[1]
	if !ok {
		t.Fatal("举报记录未落库")
	}
	if report.Status != enums.ReportPending {
		t.Fatalf("新举报应为待处理状态, 实际: %v", report.Status)
	}
	if report.ReporterID != "user-2" {
		t.Fatalf("举报人记录错误: %s", report.ReporterID)
	}
}

func TestListReports_仅管理员可访问(t *testing.T) {
	svc := NewReportService(newFakeReportRepo(), newFakeTopicRepo(), newFakeReplyRepo(), newTestLogger(t))

	_, err := svc.ListReports(context.Background(), moderation.Actor{UserID: "user-1", Role: enums.RoleUser}, &dto.ReportListQuery{})
	if !errors.Is(err, myErrors.ErrForbidden) {
		t.Fatalf("普通用户应被拒绝, 实际: %v", err)
	}

	page, err := svc.ListReports(context.Background(), moderation.Actor{UserID: "admin-1", Role: enums.RoleAdmin}, &dto.ReportListQuery{})
	if err != nil {
		t.Fatalf("管理员查询失败: %v", err)
	}
	if page.Total != 0 {
		t.Fatalf("空库应返回 0 条, 实际: %d", page.Total)
	}
}

func TestResolveReport_权限与重复处理(t *testing.T) {
	reportRepo := newFakeReportRepo()
	topicRepo := newFakeTopicRepo(newTopicEntity(1, "user-1", false))
	svc := NewReportService(reportRepo, topicRepo, newFakeReplyRepo(), newTestLogger(t))

	if err := svc.CreateReport(context.Background(), "user-2", &dto.CreateReportRequest{
		ContentType: enums.ReportTopic,
		ContentID:   1,
		Reason:      "spam",
	}); err != nil {
		t.Fatalf("准备举报数据失败: %v", err)
	}

	admin := moderation.Actor{UserID: "admin-1", Role: enums.RoleAdmin}

	if err := svc.ResolveReport(context.Background(), moderation.Actor{UserID: "user-1", Role: enums.RoleUser}, 1); !errors.Is(err, myErrors.ErrForbidden) {
		t.Fatalf("普通用户应被拒绝, 实际: %v", err)
	}

	if err := svc.ResolveReport(context.Background(), admin, 1); err != nil {
		t.Fatalf("管理员处理举报失败: %v", err)
	}
	if reportRepo.reports[1].Status != enums.ReportResolved {
		t.Fatalf("举报应被标记为已处理, 实际: %v", reportRepo.reports[1].Status)
	}

	// 重复处理是无害的空操作
	if err := svc.ResolveReport(context.Background(), admin, 1); err != nil {
		t.Fatalf("重复处理不应报错: %v", err)
	}

	if err := svc.ResolveReport(context.Background(), admin, 99); !errors.Is(err, commonerrors.ErrRepoNotFound) {
		t.Fatalf("处理不存在的举报应返回 ErrRepoNotFound, 实际: %v", err)
	}
}
