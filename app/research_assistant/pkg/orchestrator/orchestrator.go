package orchestrator

import (
	"context"
	"fmt"

	"github.com/shyam3raju/AI-Agent/app/research_assistant/pkg/logger"
	"github.com/shyam3raju/AI-Agent/app/research_assistant/pkg/metrics"
	"github.com/shyam3raju/AI-Agent/app/research_assistant/pkg/model"
)

// Researcher 研究阶段
type Researcher interface {
	Research(ctx context.Context, query string) (*model.ResearchFinding, error)
}

// Analyzer 分析阶段
type Analyzer interface {
	Analyze(ctx context.Context, finding *model.ResearchFinding) (*model.AnalysisResult, error)
}

// Decider 决策阶段
type Decider interface {
	Decide(ctx context.Context, analysis *model.AnalysisResult) (*model.DecisionResult, error)
}

// Options 运行选项
type Options struct {
	ProgressCallback func(phase Phase, progress int)
	Recorder         *metrics.Recorder
}

// Orchestrator 顺序执行三个阶段，不并发
type Orchestrator struct {
	researcher Researcher
	analyzer   Analyzer
	decider    Decider
	opts       Options
}

// New 创建编排器
func New(r Researcher, a Analyzer, d Decider, opts Options) *Orchestrator {
	return &Orchestrator{researcher: r, analyzer: a, decider: d, opts: opts}
}

// ProcessQuery 处理一次查询，总是返回报告，不会 panic
func (o *Orchestrator) ProcessQuery(ctx context.Context, query string) (report *model.FinalReport) {
	logger.Log.Infof("开始处理查询: %s", query)
	defer func() {
		if r := recover(); r != nil {
			logger.Log.Errorf("编排 panic [%s]: %v", query, r)
			report = &model.FinalReport{
				Query:  query,
				Status: model.StatusFailed,
				Error:  fmt.Sprintf("Orchestration failed: %v", r),
			}
		}
		o.opts.Recorder.IncRun(string(report.Status))
		logger.Log.WithField("status", report.Status).Infof("查询处理结束: %s", query)
	}()
	st := newTracker(o.opts.ProgressCallback)

	research, analysis, decision, err := o.runStages(ctx, st, query)
	if err != nil {
		logger.Log.Errorf("编排失败 [%s] 阶段 %s: %v", query, st.phase, err)
		if terr := st.advance(PhaseFailed); terr != nil {
			logger.Log.Errorf("%v", terr)
		}
		return &model.FinalReport{
			Query:  query,
			Status: model.StatusFailed,
			Error:  "Orchestration failed: " + err.Error(),
		}
	}

	report, err = formatReport(query, research, analysis, decision)
	if err != nil {
		logger.Log.Warnf("格式化报告失败，返回降级结果: %v", err)
		_ = st.advance(PhaseCompletedWithErrors)
		return degradedReport(query, err)
	}
	_ = st.advance(PhaseCompleted)
	return report
}

func (o *Orchestrator) runStages(ctx context.Context, st *tracker, query string) (
	research *model.ResearchFinding, analysis *model.AnalysisResult, decision *model.DecisionResult, err error,
) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%v", r)
		}
	}()

	research, err = runStage(st, PhaseResearching, func() (*model.ResearchFinding, error) {
		return o.researcher.Research(ctx, query)
	})
	if err != nil {
		return nil, nil, nil, err
	}

	analysis, err = runStage(st, PhaseAnalyzing, func() (*model.AnalysisResult, error) {
		return o.analyzer.Analyze(ctx, research)
	})
	if err != nil {
		return nil, nil, nil, err
	}

	decision, err = runStage(st, PhaseDeciding, func() (*model.DecisionResult, error) {
		return o.decider.Decide(ctx, analysis)
	})
	if err != nil {
		return nil, nil, nil, err
	}

	if err = st.advance(PhaseFormatting); err != nil {
		return nil, nil, nil, err
	}
	return research, analysis, decision, nil
}

func runStage[T any](st *tracker, phase Phase, call func() (*T, error)) (*T, error) {
	if err := st.advance(phase); err != nil {
		return nil, err
	}
	out, err := call()
	if err != nil {
		return nil, err
	}
	if out == nil {
		return nil, fmt.Errorf("%s stage returned no result", phase)
	}
	return out, nil
}
