package tui

import (
	"errors"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/soratobu/tempo/internal/domain"
)

// InputStage tracks the two-step new-countdown flow.
type InputStage int

const (
	inputNone InputStage = iota
	inputName
	inputDuration
)

// beginCountdownInput opens the name prompt. Capacity is checked up front
// so the user is not asked to type a name that cannot be saved.
func (m *Model) beginCountdownInput() (tea.Model, tea.Cmd) {
	if len(m.countdowns.Entries) >= domain.MaxCountdowns {
		m.err = domain.ErrCountdownLimit
		return m, nil
	}
	m.inputStage = inputName
	m.nameInput.SetValue("")
	m.durInput.SetValue("")
	return m, m.nameInput.Focus()
}

func (m *Model) cancelCountdownInput() {
	m.inputStage = inputNone
	m.nameInput.Blur()
	m.durInput.Blur()
}

// handleInputKey drives the input overlay: enter advances name -> duration
// -> commit, escape cancels at any step, everything else edits the field.
func (m *Model) handleInputKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Escape) {
		m.cancelCountdownInput()
		return m, nil
	}

	switch m.inputStage {
	case inputName:
		if key.Matches(msg, m.keys.Enter) {
			if strings.TrimSpace(m.nameInput.Value()) == "" {
				m.cancelCountdownInput()
				return m, nil
			}
			m.inputStage = inputDuration
			m.nameInput.Blur()
			return m, m.durInput.Focus()
		}
		var cmd tea.Cmd
		m.nameInput, cmd = m.nameInput.Update(msg)
		return m, cmd

	case inputDuration:
		if key.Matches(msg, m.keys.Enter) {
			return m.commitCountdownInput()
		}
		var cmd tea.Cmd
		m.durInput, cmd = m.durInput.Update(msg)
		return m, cmd
	}

	return m, nil
}

func (m *Model) commitCountdownInput() (tea.Model, tea.Cmd) {
	duration := domain.ParseMMSS(strings.TrimSpace(m.durInput.Value()))
	if duration <= 0 {
		m.notice = "Enter a duration as MM:SS"
		return m, nil
	}

	name := domain.TruncateName(strings.TrimSpace(m.nameInput.Value()))
	if err := m.countdowns.Add(name, duration); err != nil {
		if errors.Is(err, domain.ErrCountdownLimit) {
			m.err = err
			m.cancelCountdownInput()
			return m, nil
		}
		m.err = err
		return m, nil
	}

	m.cancelCountdownInput()
	return m, m.saveCountdowns()
}
