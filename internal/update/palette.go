package update

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/fixyourlife/fixyourlife/internal/commands"
)

func (m Model) handlePaletteKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.Palette.Active = false
		m.Palette.Input = ""
		m.Status = StatusBar{Text: "command palette closed"}
		return m, nil
	case "enter":
		return m.executePaletteCommand()
	case "backspace":
		if len(m.Palette.Input) > 0 {
			m.Palette.Input = m.Palette.Input[:len(m.Palette.Input)-1]
		}
		return m, nil
	default:
		if msg.Type == tea.KeyRunes {
			m.Palette.Input += string(msg.Runes)
		}
		if msg.Type == tea.KeySpace {
			m.Palette.Input += " "
		}
		return m, nil
	}
}

func (m Model) executePaletteCommand() (tea.Model, tea.Cmd) {
	input := m.Palette.Input
	m.Palette.Active = false
	m.Palette.Input = ""

	cmd, err := commands.Parse(input)
	if err != nil {
		m.Status = StatusBar{Text: err.Error(), IsError: true}
		return m, nil
	}

	var teaCmd tea.Cmd
	result, err := commands.Execute(cmd, commands.Handlers{
		Toggle: func(args commands.ToggleArgs) (commands.Result, error) {
			// Palette positions are 1-based.
			index := args.Index - 1
			if err := m.Session.ToggleCompletion(index); err != nil {
				return commands.Result{}, err
			}
			item := m.Session.Schedule()[index]
			if item.Completed {
				return commands.Result{Message: fmt.Sprintf("Task completed! %s", item.Task)}, nil
			}
			return commands.Result{Message: fmt.Sprintf("Task marked incomplete: %s", item.Task)}, nil
		},
		Reset: func() (commands.Result, error) {
			if m.Session.ResetAll() {
				return commands.Result{Message: "Daily tasks reset"}, nil
			}
			return commands.Result{Message: "nothing to reset"}, nil
		},
		Generate: func() (commands.Result, error) {
			next, genCmd := m.startGeneration()
			m = next.(Model)
			teaCmd = genCmd
			return commands.Result{Message: m.Status.Text}, nil
		},
		Message: func(args commands.MessageArgs) (commands.Result, error) {
			if err := m.Session.SetMotivationalMessage(args.Text); err != nil {
				return commands.Result{}, err
			}
			return commands.Result{Message: "motivational message updated"}, nil
		},
		Show: func(args commands.ShowArgs) (commands.Result, error) {
			switch args.View {
			case "schedule":
				m.CurrentView = ViewSchedule
			case "progress":
				m.CurrentView = ViewProgress
			case "reports":
				m.CurrentView = ViewReports
			}
			return commands.Result{Message: "view: " + args.View}, nil
		},
	})
	if err != nil {
		m.Status = StatusBar{Text: err.Error(), IsError: true}
		return m, nil
	}
	m.Status = StatusBar{Text: result.Message}
	m.notify("Command", result.Message, "info")
	return m, teaCmd
}
