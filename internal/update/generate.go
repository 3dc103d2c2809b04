package update

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/fixyourlife/fixyourlife/internal/plan"
)

const generateTimeout = 90 * time.Second

func (m Model) startGeneration() (tea.Model, tea.Cmd) {
	if m.Generator == nil {
		m.Status = StatusBar{Text: "no plan generator configured", IsError: true}
		return m, nil
	}
	if m.Generating {
		m.Status = StatusBar{Text: "generation already running"}
		return m, nil
	}
	m.Generating = true
	m.GenSeq++
	m.Status = StatusBar{Text: "generating plan"}
	return m, tea.Batch(m.genSpinner.Tick, generatePlanCmd(m.GenSeq, m.Generator, m.Inputs))
}

func generatePlanCmd(seq int, gen plan.Generator, inputs map[string]string) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), generateTimeout)
		defer cancel()

		planData, err := gen.GeneratePlan(ctx, inputs)
		if err != nil {
			return PlanGenerateErrMsg{Seq: seq, Err: err}
		}
		return PlanGeneratedMsg{Seq: seq, Plan: planData}
	}
}
