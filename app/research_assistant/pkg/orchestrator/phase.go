package orchestrator

import (
	"fmt"
	"slices"

	"github.com/shyam3raju/AI-Agent/app/research_assistant/pkg/logger"
)

// Phase 流水线所处阶段
type Phase string

const (
	PhaseStart               Phase = "start"
	PhaseResearching         Phase = "researching"
	PhaseAnalyzing           Phase = "analyzing"
	PhaseDeciding            Phase = "deciding"
	PhaseFormatting          Phase = "formatting"
	PhaseCompleted           Phase = "completed"
	PhaseCompletedWithErrors Phase = "completed_with_errors"
	PhaseFailed              Phase = "failed"
)

// 合法的状态迁移。failed 只能由三个 stage 阶段进入，
// completed_with_errors 只能由 formatting 进入。
var transitions = map[Phase][]Phase{
	PhaseStart:       {PhaseResearching},
	PhaseResearching: {PhaseAnalyzing, PhaseFailed},
	PhaseAnalyzing:   {PhaseDeciding, PhaseFailed},
	PhaseDeciding:    {PhaseFormatting, PhaseFailed},
	PhaseFormatting:  {PhaseCompleted, PhaseCompletedWithErrors},
}

// 各阶段对应的进度百分比
var progressOf = map[Phase]int{
	PhaseStart:               0,
	PhaseResearching:         10,
	PhaseAnalyzing:           40,
	PhaseDeciding:            70,
	PhaseFormatting:          90,
	PhaseCompleted:           100,
	PhaseCompletedWithErrors: 100,
	PhaseFailed:              100,
}

// Terminal 是否为终止状态
func (p Phase) Terminal() bool {
	return p == PhaseCompleted || p == PhaseCompletedWithErrors || p == PhaseFailed
}

// CanTransition 判断 from → to 是否合法
func CanTransition(from, to Phase) bool {
	return slices.Contains(transitions[from], to)
}

// tracker 记录单次运行的状态并通知进度回调
type tracker struct {
	phase  Phase
	notify func(phase Phase, progress int)
}

func newTracker(notify func(Phase, int)) *tracker {
	t := &tracker{phase: PhaseStart, notify: notify}
	t.report()
	return t
}

func (t *tracker) advance(next Phase) error {
	if !CanTransition(t.phase, next) {
		return fmt.Errorf("illegal phase transition %s -> %s", t.phase, next)
	}
	t.phase = next
	t.report()
	return nil
}

// report 通知进度；回调自身的 panic 只记录日志，不影响流程
func (t *tracker) report() {
	if t.notify == nil {
		return
	}
	defer func() {
		if r := recover(); r != nil {
			logger.Log.Errorf("进度回调 panic [%s]: %v", t.phase, r)
		}
	}()
	t.notify(t.phase, progressOf[t.phase])
}
