package repo

import (
	"context"

	"github.com/shyam3raju/AI-Agent/app/display/internal/domain"
	"github.com/shyam3raju/AI-Agent/app/research_assistant/pkg/model"
)

// ReportRepo 报告仓库接口
type ReportRepo interface {
	// SaveReport 保存最终报告并返回 id
	SaveReport(ctx context.Context, report *model.FinalReport) (string, error)
	// ListReports 分页获取报告摘要列表
	ListReports(ctx context.Context, page, pageSize int) ([]*domain.ReportSummary, int, error)
	// GetReportByID 根据ID获取报告详情，不存在时返回 domain.ErrReportNotFound
	GetReportByID(ctx context.Context, id string) (*domain.Report, error)
}
