package data

import (
	"context"
	"errors"

	"github.com/go-kratos/kratos/v2/log"

	"github.com/shyam3raju/AI-Agent/app/display/internal/domain"
	"github.com/shyam3raju/AI-Agent/app/display/internal/repo"
	"github.com/shyam3raju/AI-Agent/app/research_assistant/pkg/model"
	"github.com/shyam3raju/AI-Agent/app/research_assistant/pkg/storage"
)

type reportRepo struct {
	data *Data
	log  *log.Helper
}

func NewReportRepo(data *Data, logger log.Logger) repo.ReportRepo {
	return &reportRepo{
		data: data,
		log:  log.NewHelper(logger),
	}
}

func (r *reportRepo) SaveReport(ctx context.Context, report *model.FinalReport) (string, error) {
	return r.data.store.SaveReport(ctx, report)
}

func (r *reportRepo) ListReports(ctx context.Context, page, pageSize int) ([]*domain.ReportSummary, int, error) {
	items, total, err := r.data.store.ListReports(ctx, page, pageSize)
	if err != nil {
		return nil, 0, err
	}

	list := make([]*domain.ReportSummary, 0, len(items))
	for _, it := range items {
		list = append(list, &domain.ReportSummary{
			ID:        it.ID,
			Query:     it.Query,
			Status:    it.Status,
			CreatedAt: it.CreatedAt,
		})
	}
	return list, total, nil
}

func (r *reportRepo) GetReportByID(ctx context.Context, id string) (*domain.Report, error) {
	rec, err := r.data.store.GetReport(ctx, id)
	if errors.Is(err, storage.ErrNotFound) {
		return nil, domain.ErrReportNotFound
	}
	if err != nil {
		r.log.Errorf("get report %s: %v", id, err)
		return nil, err
	}

	return &domain.Report{
		ReportSummary: domain.ReportSummary{
			ID:        rec.ID,
			Query:     rec.Query,
			Status:    rec.Status,
			CreatedAt: rec.CreatedAt,
		},
		Result: rec.Report,
	}, nil
}
