// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/go-chat-client/internal/service"
	"github.com/MKhiriev/go-chat-client/internal/session"
	"github.com/MKhiriev/go-chat-client/internal/utils"
	"github.com/MKhiriev/go-chat-client/models"
	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

type dashboardFocus int

const (
	focusContacts dashboardFocus = iota
	focusInput
)

var errIdentityNotSet = errors.New("пользователь не установлен")

// dashboardModel is the Bubble Tea model for the main screen: the contact
// list, the history of the open conversation and the message input. Chat
// history requests are tagged with the contact id they were issued for, so a
// slow response for a previously selected contact never overwrites the
// conversation the user is looking at now.
type dashboardModel struct {
	ctx      context.Context
	services *service.ClientServices
	updates  <-chan models.Chat
	uuid     *utils.UUIDGenerator

	user    models.User
	hasUser bool

	contacts          []models.Contact
	idx               int
	selectedContactID string
	chat              *models.Chat
	messages          []models.Message

	input   textinput.Model
	focus   dashboardFocus
	loading bool
	opening bool
	status  string
	errMsg  string

	logout bool
}

type contactsLoadedMsg struct {
	contacts []models.Contact
	err      error
}

// chatLoadedMsg carries the contact id the request was issued for.
type chatLoadedMsg struct {
	contactID string
	chat      models.Chat
	err       error
}

type sendDoneMsg struct {
	err error
}

type chatPushedMsg struct {
	chat models.Chat
	ok   bool
}

func newDashboardModel(ctx context.Context, services *service.ClientServices, sess *session.Store, updates <-chan models.Chat) dashboardModel {
	input := textinput.New()
	input.Placeholder = "сообщение"
	input.CharLimit = 1024
	input.Width = 50

	m := dashboardModel{
		ctx:      ctx,
		services: services,
		updates:  updates,
		uuid:     utils.NewUUIDGenerator(),
		input:    input,
		loading:  true,
	}

	user, err := sess.Get()
	if err == nil {
		m.user = user
		m.hasUser = true
	}

	return m
}

func (m dashboardModel) Init() tea.Cmd {
	return tea.Batch(m.cmdLoadContacts(), m.cmdWaitPush())
}

func (m dashboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case contactsLoadedMsg:
		m.loading = false
		if msg.err != nil {
			m.errMsg = humanizeServerUnavailableError(msg.err)
			return m, nil
		}
		m.errMsg = ""
		m.contacts = msg.contacts
		if m.idx >= len(m.contacts) {
			m.idx = len(m.contacts) - 1
		}
		if m.idx < 0 {
			m.idx = 0
		}
		return m, nil

	case chatLoadedMsg:
		if msg.contactID != m.selectedContactID {
			// ответ для уже не выбранного контакта
			return m, nil
		}
		m.opening = false
		if msg.err != nil {
			m.errMsg = humanizeServerUnavailableError(msg.err)
			return m, nil
		}
		m.errMsg = ""
		chat := msg.chat
		m.chat = &chat
		m.messages = chat.Messages
		return m, nil

	case sendDoneMsg:
		if msg.err != nil {
			m.errMsg = fmt.Sprintf("Ошибка отправки: %v", msg.err)
			return m, nil
		}
		return m, nil

	case chatPushedMsg:
		if !msg.ok {
			return m, nil
		}
		if m.chat != nil && m.chat.ID == msg.chat.ID {
			chat := msg.chat
			m.chat = &chat
			m.messages = chat.Messages
		}
		return m, m.cmdWaitPush()
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		if m.focus == focusInput {
			var cmd tea.Cmd
			m.input, cmd = m.input.Update(msg)
			return m, cmd
		}
		return m, nil
	}

	if keyMsg.String() == "ctrl+c" {
		return m, tea.Quit
	}

	if m.focus == focusInput {
		return m.updateInput(keyMsg)
	}

	return m.updateContacts(keyMsg)
}

func (m dashboardModel) updateContacts(keyMsg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch keyMsg.String() {
	case "q":
		return m, tea.Quit
	case "up":
		if m.idx > 0 {
			m.idx--
		}
	case "down":
		if m.idx < len(m.contacts)-1 {
			m.idx++
		}
	case "r":
		if m.loading {
			return m, nil
		}
		m.loading = true
		m.status = ""
		m.errMsg = ""
		return m, m.cmdLoadContacts()
	case "enter":
		contact, ok := m.current()
		if !ok {
			m.status = "Нет контактов"
			return m, nil
		}
		m.selectedContactID = contact.ID
		m.opening = true
		m.status = ""
		m.errMsg = ""
		return m, m.cmdOpenChat(contact.ID)
	case "tab":
		if m.chat == nil {
			return m, nil
		}
		m.focus = focusInput
		m.input.Focus()
		return m, textinput.Blink
	case "c":
		text, ok := m.lastMessageText()
		if !ok {
			m.status = "Нечего копировать"
			return m, nil
		}
		if err := clipboard.WriteAll(text); err != nil {
			m.errMsg = fmt.Sprintf("Ошибка копирования: %v", err)
			return m, nil
		}
		m.status = "Скопировано"
	case "l":
		m.services.AuthService.Logout()
		m.logout = true
		return m, tea.Quit
	}

	return m, nil
}

func (m dashboardModel) updateInput(keyMsg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch keyMsg.String() {
	case "esc", "tab":
		m.focus = focusContacts
		m.input.Blur()
		return m, nil
	case "enter":
		text := m.input.Value()
		if strings.TrimSpace(text) == "" {
			return m, nil
		}
		if m.chat == nil || !m.hasUser {
			return m, nil
		}

		// сообщение появляется в истории сразу, до ответа сервера
		m.messages = append(m.messages, models.Message{
			ID:        m.uuid.Generate(),
			Text:      text,
			SenderID:  m.user.ID,
			CreatedAt: time.Now(),
			Pending:   true,
		})
		m.input.SetValue("")
		m.errMsg = ""
		return m, m.cmdSendMessage(m.chat.ID, text)
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(keyMsg)
	return m, cmd
}

func (m dashboardModel) View() string {
	out := ""

	if m.loading {
		out += "Загрузка контактов...\n"
		return renderPage("ЧАТЫ", strings.TrimRight(out, "\n"), m.hotKeys())
	}

	if m.errMsg != "" {
		out += "Ошибка: " + errorStyle.Render(m.errMsg) + "\n"
	}
	if m.status != "" {
		out += "Статус: " + m.status + "\n"
	}
	if out != "" {
		out += "\n"
	}

	if len(m.contacts) == 0 {
		out += "Контактов нет\n"
	} else {
		out += "Контакты\n"
		for i, contact := range m.contacts {
			cursor := " "
			if i == m.idx {
				cursor = ">"
			}
			marker := " "
			if contact.ID == m.selectedContactID {
				marker = "*"
			}
			out += fmt.Sprintf("%s%s %s\n", cursor, marker, fitText(contact.Username, 30))
		}
	}

	out += "\n"
	out += m.viewConversation()

	return renderPage("ЧАТЫ", strings.TrimRight(out, "\n"), m.hotKeys())
}

func (m dashboardModel) viewConversation() string {
	if m.opening {
		return "Загрузка переписки...\n"
	}
	if m.chat == nil {
		return "Выберите контакт и нажмите enter\n"
	}

	out := "Переписка с " + m.contactName(m.selectedContactID) + "\n"
	if len(m.messages) == 0 {
		out += "Сообщений пока нет\n"
	}
	for _, message := range m.messages {
		line := fmt.Sprintf("[%s] %s: %s", message.CreatedAt.Local().Format("15:04"), m.senderName(message.SenderID), message.Text)
		if message.Pending {
			line = pendingStyle.Render(line + " (отправка...)")
		}
		out += line + "\n"
	}

	out += "\n"
	out += "Сообщение │ [" + m.input.View() + "]\n"
	return out
}

func (m dashboardModel) hotKeys() string {
	if m.focus == focusInput {
		return "enter: отправить │ esc/tab: к контактам"
	}
	return "enter: открыть │ tab: писать │ r: обновить │ c: копировать │ l: выйти из аккаунта │ ↑/↓: нав."
}

func (m dashboardModel) current() (models.Contact, bool) {
	if len(m.contacts) == 0 || m.idx < 0 || m.idx >= len(m.contacts) {
		return models.Contact{}, false
	}
	return m.contacts[m.idx], true
}

func (m dashboardModel) contactName(id string) string {
	for _, contact := range m.contacts {
		if contact.ID == id {
			return contact.Username
		}
	}
	return "Неизвестный"
}

func (m dashboardModel) senderName(senderID string) string {
	if m.hasUser && senderID == m.user.ID {
		return "Вы"
	}
	return m.contactName(senderID)
}

func (m dashboardModel) lastMessageText() (string, bool) {
	if m.chat == nil || len(m.messages) == 0 {
		return "", false
	}
	return m.messages[len(m.messages)-1].Text, true
}

func (m dashboardModel) cmdLoadContacts() tea.Cmd {
	ctx := m.ctx
	svc := m.services.ChatService
	hasUser := m.hasUser

	return func() tea.Msg {
		if !hasUser {
			return contactsLoadedMsg{err: errIdentityNotSet}
		}
		contacts, err := svc.Contacts(ctx)
		return contactsLoadedMsg{contacts: contacts, err: err}
	}
}

func (m dashboardModel) cmdOpenChat(contactID string) tea.Cmd {
	ctx := m.ctx
	svc := m.services.ChatService
	userID := m.user.ID
	hasUser := m.hasUser

	return func() tea.Msg {
		if !hasUser {
			return chatLoadedMsg{contactID: contactID, err: errIdentityNotSet}
		}
		chat, err := svc.OpenChat(ctx, userID, contactID)
		return chatLoadedMsg{contactID: contactID, chat: chat, err: err}
	}
}

func (m dashboardModel) cmdSendMessage(chatID, text string) tea.Cmd {
	ctx := m.ctx
	svc := m.services.ChatService
	senderID := m.user.ID

	return func() tea.Msg {
		err := svc.SendMessage(ctx, chatID, text, senderID)
		return sendDoneMsg{err: err}
	}
}

func (m dashboardModel) cmdWaitPush() tea.Cmd {
	updates := m.updates
	if updates == nil {
		return nil
	}

	return func() tea.Msg {
		chat, ok := <-updates
		return chatPushedMsg{chat: chat, ok: ok}
	}
}
