package domain

import (
	"time"

	"github.com/go-kratos/kratos/v2/errors"

	"github.com/shyam3raju/AI-Agent/app/research_assistant/pkg/model"
)

// ErrReportNotFound 报告不存在
var ErrReportNotFound = errors.NotFound("REPORT_NOT_FOUND", "report not found")

// ReportSummary 报告摘要信息
type ReportSummary struct {
	ID        string       `json:"id"`
	Query     string       `json:"query"`
	Status    model.Status `json:"status"`
	CreatedAt time.Time    `json:"created_at"`
}

// Report 报告详情
type Report struct {
	ReportSummary
	Result *model.FinalReport `json:"report"`
}
