package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/christmas-gifter/internal/service"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// onboardingModel is the first-launch screen. The user types recipient names
// one by one; saving replaces the whole list on the server in the entered
// order. The screen can be skipped, leaving the list empty.
type onboardingModel struct {
	ctx    context.Context
	gifter service.ClientGifterService

	input  textinput.Model
	names  []string
	saving bool
	errMsg string

	quitByUser bool
}

func newOnboardingModel(ctx context.Context, gifter service.ClientGifterService) onboardingModel {
	input := textinput.New()
	input.Placeholder = "Имя (например, Мама)"
	input.CharLimit = 80
	input.Width = 40
	input.Focus()

	return onboardingModel{
		ctx:    ctx,
		gifter: gifter,
		input:  input,
	}
}

func (m onboardingModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m onboardingModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if result, ok := msg.(peopleReplacedMsg); ok {
		m.saving = false
		if result.err != nil {
			m.errMsg = humanizeServerUnavailableError(result.err)
			return m, nil
		}
		return m, tea.Quit
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if ok {
		switch keyMsg.String() {
		case "ctrl+c":
			m.quitByUser = true
			return m, tea.Quit
		case "esc":
			// пропустить onboarding, список останется пустым
			return m, tea.Quit
		case "enter":
			name := strings.TrimSpace(m.input.Value())
			if name == "" {
				m.errMsg = "Имя не может быть пустым"
				return m, nil
			}
			m.names = append(m.names, name)
			m.input.SetValue("")
			m.errMsg = ""
			return m, nil
		case "backspace":
			// пустое поле + backspace удаляет последнее имя из списка
			if m.input.Value() == "" && len(m.names) > 0 {
				m.names = m.names[:len(m.names)-1]
				return m, nil
			}
		case "ctrl+s":
			if m.saving {
				return m, nil
			}
			if len(m.names) == 0 {
				m.errMsg = "Добавьте хотя бы одно имя или нажмите esc"
				return m, nil
			}
			m.errMsg = ""
			m.saving = true
			return m, m.cmdReplacePeople(m.names)
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m onboardingModel) View() string {
	var b strings.Builder

	b.WriteString("Кому вы готовите подарки в этом году?\n\n")
	b.WriteString("Имя       │ [")
	b.WriteString(m.input.View())
	b.WriteString("]\n\n")

	if len(m.names) == 0 {
		b.WriteString("Список пуст\n")
	} else {
		for i, name := range m.names {
			b.WriteString(fmt.Sprintf("%3d. %s\n", i+1, name))
		}
	}

	if m.saving {
		b.WriteString("\nСохранение...\n")
	}
	if m.errMsg != "" {
		b.WriteString("\n")
		b.WriteString(errorStyle.Render("Ошибка: " + m.errMsg))
		b.WriteString("\n")
	}

	return renderPage(
		"ПЕРВЫЙ ЗАПУСК: СПИСОК ПОЛУЧАТЕЛЕЙ",
		strings.TrimRight(b.String(), "\n"),
		"enter: добавить │ backspace: убрать последнего │ ctrl+s: сохранить │ esc: пропустить",
	)
}

func (m onboardingModel) cmdReplacePeople(names []string) tea.Cmd {
	ctx := m.ctx
	gifter := m.gifter

	return func() tea.Msg {
		_, err := gifter.ReplacePeople(ctx, names)
		return peopleReplacedMsg{err: err}
	}
}
