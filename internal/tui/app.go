// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"github.com/MKhiriev/go-chat-client/models"
	tea "github.com/charmbracelet/bubbletea"
)

// RootModel routes between pages and collects the flow result.
type RootModel struct {
	pages      map[string]tea.Model
	current    string
	resultUser models.User
	quitByUser bool
}

func NewRootModel(pages map[string]tea.Model, start string) RootModel {
	return RootModel{pages: pages, current: start}
}

func (m RootModel) Init() tea.Cmd {
	if page, ok := m.pages[m.current]; ok {
		return page.Init()
	}
	return nil
}

func (m RootModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch typed := msg.(type) {
	case tea.KeyMsg:
		if typed.String() == "ctrl+c" {
			m.quitByUser = true
			return m, tea.Quit
		}
	case NavigateTo:
		if _, ok := m.pages[typed.Page]; ok {
			m.current = typed.Page
			cmd := m.pages[m.current].Init()
			if typed.Payload != nil {
				var payloadCmd tea.Cmd
				m.pages[m.current], payloadCmd = m.pages[m.current].Update(typed.Payload)
				return m, tea.Batch(cmd, payloadCmd)
			}
			return m, cmd
		}
		return m, nil
	case LoginResult:
		if typed.Err == nil {
			// страница сбрасывает поля ввода, после чего поток завершается
			page, _ := m.pages[m.current].Update(msg)
			m.pages[m.current] = page
			m.resultUser = typed.User
			return m, tea.Quit
		}
	}

	page, ok := m.pages[m.current]
	if !ok {
		return m, nil
	}

	updated, cmd := page.Update(msg)
	m.pages[m.current] = updated
	return m, cmd
}

func (m RootModel) View() string {
	if page, ok := m.pages[m.current]; ok {
		return page.View()
	}
	return ""
}
