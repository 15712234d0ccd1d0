package service

import (
	"context"
	"strconv"

	"github.com/go-kratos/kratos/v2/errors"
	"github.com/go-kratos/kratos/v2/log"
	"github.com/go-kratos/kratos/v2/transport/http"

	"github.com/shyam3raju/AI-Agent/app/display/internal/domain"
	"github.com/shyam3raju/AI-Agent/app/display/internal/usecase"
)

// ResearchReq 发起研究的请求体
type ResearchReq struct {
	Query string `json:"query"`
}

// ListReportsReply 报告列表
type ListReportsReply struct {
	Reports []*domain.ReportSummary `json:"reports"`
	Total   int                     `json:"total"`
}

type DisplayService struct {
	ucReport *usecase.ReportUseCase
	log      *log.Helper
}

func NewDisplayService(ucReport *usecase.ReportUseCase, logger log.Logger) *DisplayService {
	return &DisplayService{
		ucReport: ucReport,
		log:      log.NewHelper(logger),
	}
}

// Research POST /api/v1/research
func (s *DisplayService) Research(ctx http.Context) error {
	var req ResearchReq
	if err := ctx.Bind(&req); err != nil {
		return errors.BadRequest("INVALID_REQUEST", err.Error())
	}

	h := ctx.Middleware(func(c context.Context, in interface{}) (interface{}, error) {
		return s.ucReport.Research(c, in.(*ResearchReq).Query)
	})
	out, err := h(ctx, &req)
	if err != nil {
		return err
	}
	return ctx.Result(200, out)
}

// ListReports GET /api/v1/reports?page=&page_size=
func (s *DisplayService) ListReports(ctx http.Context) error {
	page, _ := strconv.Atoi(ctx.Query().Get("page"))
	pageSize, _ := strconv.Atoi(ctx.Query().Get("page_size"))

	reports, total, err := s.ucReport.List(ctx, page, pageSize)
	if err != nil {
		return err
	}
	if reports == nil {
		reports = []*domain.ReportSummary{}
	}
	return ctx.Result(200, &ListReportsReply{Reports: reports, Total: total})
}

// GetReport GET /api/v1/reports/{id}
func (s *DisplayService) GetReport(ctx http.Context) error {
	r, err := s.ucReport.GetByID(ctx, ctx.Vars().Get("id"))
	if err != nil {
		return err
	}
	return ctx.Result(200, r)
}
