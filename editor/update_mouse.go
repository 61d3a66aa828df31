package editor

import tea "github.com/charmbracelet/bubbletea"

func (m Model) updateMouse(msg tea.MouseMsg) (Model, tea.Cmd) {
	if !isManualScrollMouse(msg) {
		return m, nil
	}

	switch msg.Button { //nolint:exhaustive
	case tea.MouseButtonWheelDown:
		m.scroll(m.vp.ScrollUp)
	case tea.MouseButtonWheelUp:
		m.scroll(m.vp.ScrollDown)
	case tea.MouseButtonWheelRight:
		m.scroll(m.vp.ScrollLeft)
	case tea.MouseButtonWheelLeft:
		m.scroll(m.vp.ScrollRight)
	}
	return m, nil
}

func isManualScrollMouse(msg tea.MouseMsg) bool {
	return msg.Action == tea.MouseActionPress &&
		(msg.Button == tea.MouseButtonWheelUp ||
			msg.Button == tea.MouseButtonWheelDown ||
			msg.Button == tea.MouseButtonWheelLeft ||
			msg.Button == tea.MouseButtonWheelRight)
}
