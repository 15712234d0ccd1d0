package usecase

import (
	"context"
	"strings"

	"github.com/go-kratos/kratos/v2/errors"
	"github.com/go-kratos/kratos/v2/log"

	"github.com/shyam3raju/AI-Agent/app/display/internal/domain"
	"github.com/shyam3raju/AI-Agent/app/display/internal/repo"
	"github.com/shyam3raju/AI-Agent/app/research_assistant/pkg/model"
)

// Pipeline 研究流水线
type Pipeline interface {
	ProcessQuery(ctx context.Context, query string) *model.FinalReport
}

// ReportUseCase 报告业务逻辑
type ReportUseCase struct {
	repo     repo.ReportRepo
	pipeline Pipeline
	log      *log.Helper
}

// NewReportUseCase 创建报告业务逻辑实例
func NewReportUseCase(repo repo.ReportRepo, pipeline Pipeline, logger log.Logger) *ReportUseCase {
	return &ReportUseCase{repo: repo, pipeline: pipeline, log: log.NewHelper(logger)}
}

// Research 同步执行一次研究并保存结果；保存失败不影响返回报告，此时 id 为空
func (uc *ReportUseCase) Research(ctx context.Context, query string) (*domain.Report, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, errors.BadRequest("EMPTY_QUERY", "query must not be empty")
	}

	result := uc.pipeline.ProcessQuery(ctx, query)

	out := &domain.Report{
		ReportSummary: domain.ReportSummary{Query: query, Status: result.Status},
		Result:        result,
	}
	id, err := uc.repo.SaveReport(ctx, result)
	if err != nil {
		uc.log.WithContext(ctx).Errorf("save report for %q: %v", query, err)
		return out, nil
	}
	out.ID = id
	return out, nil
}

// List 分页列出报告摘要
func (uc *ReportUseCase) List(ctx context.Context, page, pageSize int) ([]*domain.ReportSummary, int, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = 10
	}
	return uc.repo.ListReports(ctx, page, pageSize)
}

// GetByID 根据ID获取报告详情
func (uc *ReportUseCase) GetByID(ctx context.Context, id string) (*domain.Report, error) {
	return uc.repo.GetReportByID(ctx, id)
}
