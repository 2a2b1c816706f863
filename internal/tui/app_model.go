// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"time"

	"github.com/MKhiriev/go-dream-journal/internal/client"
	"github.com/MKhiriev/go-dream-journal/models"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

type screen int

const (
	screenLock screen = iota
	screenWelcome
	screenLogin
	screenRegister
	screenList
	screenDetail
	screenForm
	screenFilter
	screenNotifications
	screenShare
	screenSettings
	screenAbout
)

const (
	maxVisibleToasts = 3
	toastTTL         = 4 * time.Second
)

type appModel struct {
	ctx       context.Context
	shell     Shell
	buildInfo models.AppBuildInfo
	st        styles
	dark      bool
	now       func() time.Time

	current screen

	pin      inputForm
	welcome  welcomeModel
	login    inputForm
	register inputForm

	list          listModel
	detail        detailModel
	form          dreamFormModel
	filter        inputForm
	notifications notificationsModel
	share         shareModel
	settings      settingsModel

	showConfirm   bool
	pendingDelete string

	serverVersion string

	toasts []client.Toast
}

func newAppModel(ctx context.Context, shell Shell, buildInfo models.AppBuildInfo) appModel {
	dark := shell.DarkMode(ctx)
	m := appModel{
		ctx:       ctx,
		shell:     shell,
		buildInfo: buildInfo,
		st:        newStyles(dark),
		dark:      dark,
		now:       time.Now,
		pin:       newPinForm(),
		welcome:   newWelcomeModel(),
		login:     newLoginForm(),
		register:  newRegisterForm(),
		settings:  newSettingsModel(),
	}
	m.current = m.homeScreen()
	m.syncShell()
	return m
}

// homeScreen is where the user lands after unlocking or signing in.
func (m appModel) homeScreen() screen {
	if m.shell.Locked() {
		return screenLock
	}
	if _, ok := m.shell.CurrentUser(); ok {
		return screenList
	}
	return screenWelcome
}

func (m appModel) Init() tea.Cmd {
	return m.waitForChange()
}

func (m appModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
		if m.showConfirm {
			return m.updateConfirm(msg)
		}
	case changedMsg:
		m.syncShell()
		if _, ok := m.shell.CurrentUser(); !ok && m.current > screenRegister {
			m.current = screenWelcome
		}
		return m, tea.Batch(m.waitForChange(), m.expireToasts())
	case clearStatusMsg:
		m.dropExpiredToasts()
		return m, nil
	case unlockedMsg:
		m.pin.submitting = false
		if msg.ok {
			m.pin = newPinForm()
			m.current = m.homeScreen()
		}
		return m.afterAsync()
	case authDoneMsg:
		m.login.submitting = false
		m.register.submitting = false
		if msg.err == nil {
			m.login = newLoginForm()
			m.register = newRegisterForm()
			m.list = listModel{}
			m.current = screenList
		}
		return m.afterAsync()
	case signedOutMsg:
		m.current = screenWelcome
		return m.afterAsync()
	case dreamsReloadedMsg:
		return m.afterAsync()
	case dreamLoadedMsg:
		if msg.ok {
			m.detail = m.newDetail(msg.dream)
			m.current = screenDetail
		} else {
			m.toasts = append(m.toasts, client.Toast{Level: client.ToastError, Message: "dream not found", At: m.now()})
		}
		return m.afterAsync()
	case dreamSavedMsg:
		m.form.submitting = false
		if msg.err == nil {
			m.detail = m.newDetail(msg.dream)
			m.current = screenDetail
		}
		return m.afterAsync()
	case dreamDeletedMsg:
		if msg.err == nil {
			m.current = screenList
		}
		return m.afterAsync()
	case notificationsLoadedMsg:
		m.notifications = notificationsModel{views: msg.views}
		m.current = screenNotifications
		return m.afterAsync()
	case usersLoadedMsg:
		m.share.users = msg.users
		m.share.loading = false
		return m.afterAsync()
	case shareDoneMsg:
		if msg.err == nil {
			if m.share.sharedWith == nil {
				m.share.sharedWith = map[string]bool{}
			}
			m.share.sharedWith[msg.userID] = msg.shared
		}
		return m.afterAsync()
	case settingsDoneMsg:
		m.settings.input.submitting = false
		if msg.err == nil {
			m.settings.action = actionNone
		}
		return m.afterAsync()
	case themeToggledMsg:
		m.dark = msg.dark
		m.st = newStyles(msg.dark)
		return m.afterAsync()
	case serverVersionMsg:
		m.serverVersion = "unreachable"
		if msg.ok {
			m.serverVersion = msg.version
		}
		return m.afterAsync()
	case copiedMsg:
		if msg.err != nil {
			m.toasts = append(m.toasts, client.Toast{Level: client.ToastError, Message: "copy failed: " + msg.err.Error(), At: m.now()})
		} else {
			m.toasts = append(m.toasts, client.Toast{Level: client.ToastInfo, Message: "copied", At: m.now()})
		}
		return m, m.expireToasts()
	case tea.WindowSizeMsg:
		return m, nil
	}

	switch m.current {
	case screenLock:
		return m.updateLock(msg)
	case screenWelcome:
		return m.updateWelcome(msg)
	case screenLogin:
		return m.updateLogin(msg)
	case screenRegister:
		return m.updateRegister(msg)
	case screenList:
		return m.updateList(msg)
	case screenDetail:
		return m.updateDetail(msg)
	case screenForm:
		return m.updateForm(msg)
	case screenFilter:
		return m.updateFilter(msg)
	case screenNotifications:
		return m.updateNotifications(msg)
	case screenShare:
		return m.updateShare(msg)
	case screenSettings:
		return m.updateSettings(msg)
	case screenAbout:
		if keyMsg, ok := msg.(tea.KeyMsg); ok && key.Matches(keyMsg, keys.esc) {
			m.current = screenSettings
		}
	}

	return m, nil
}

func (m appModel) View() string {
	var body string
	switch m.current {
	case screenLock:
		body = m.viewLock()
	case screenWelcome:
		body = m.welcome.View(m.st)
	case screenLogin:
		body = m.viewLogin()
	case screenRegister:
		body = m.viewRegister()
	case screenList:
		body = m.viewList()
	case screenDetail:
		body = m.detail.View(m.st)
	case screenForm:
		body = m.form.View(m.st)
	case screenFilter:
		body = renderPage(m.st, "Filter dreams", m.filter.View(), "tab: next field  enter: apply  ctrl+r: clear  esc: back")
	case screenNotifications:
		body = m.notifications.View(m.st)
	case screenShare:
		body = m.share.View(m.st)
	case screenSettings:
		body = m.settings.View(m.st, m.dark, m.shell.PinEnabled(m.ctx))
	case screenAbout:
		body = renderBuildInfoWindow(m.st, m.buildInfo, m.serverVersion)
	}

	if m.showConfirm {
		body += "\n\n" + m.st.overlay.Render("Delete \""+fitText(m.detail.dream.Title, 40)+"\"?\n\ny: yes    n: no")
	}
	if toasts := m.viewToasts(); toasts != "" {
		body += "\n\n" + toasts
	}

	return m.st.app.Render(body)
}

// ── shell plumbing ──────────────────────────────────────────────────────────

// waitForChange turns the shell's change signal into a changedMsg.
func (m appModel) waitForChange() tea.Cmd {
	ctx := m.ctx
	changed := m.shell.Changed()
	return func() tea.Msg {
		select {
		case <-ctx.Done():
			return nil
		case <-changed:
			return changedMsg{}
		}
	}
}

// syncShell copies the shell caches and pending toasts into the model.
func (m *appModel) syncShell() {
	m.list.dreams = m.shell.Dreams()
	m.list.shared = m.shell.SharedWithMe()
	m.list.unread = m.shell.UnreadCount()
	m.list.filter = m.shell.Filter()
	m.list.clamp()

	m.toasts = append(m.toasts, m.shell.DrainToasts()...)
	if len(m.toasts) > maxVisibleToasts {
		m.toasts = m.toasts[len(m.toasts)-maxVisibleToasts:]
	}
}

func (m appModel) afterAsync() (tea.Model, tea.Cmd) {
	m.syncShell()
	return m, m.expireToasts()
}

func (m appModel) expireToasts() tea.Cmd {
	if len(m.toasts) == 0 {
		return nil
	}
	return tea.Tick(toastTTL, func(time.Time) tea.Msg { return clearStatusMsg{} })
}

func (m *appModel) dropExpiredToasts() {
	kept := m.toasts[:0]
	for _, t := range m.toasts {
		if m.now().Sub(t.At) < toastTTL {
			kept = append(kept, t)
		}
	}
	m.toasts = kept
}

func (m appModel) viewToasts() string {
	out := ""
	for i, t := range m.toasts {
		if i > 0 {
			out += "\n"
		}
		if t.Level == client.ToastError {
			out += m.st.err.Render("! " + t.Message)
		} else {
			out += m.st.info.Render("* " + t.Message)
		}
	}
	return out
}

func (m appModel) updateConfirm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.yes):
		m.showConfirm = false
		id := m.pendingDelete
		m.pendingDelete = ""
		if id == "" {
			return m, nil
		}
		return m, m.cmdDeleteDream(id)
	case key.Matches(msg, keys.no), key.Matches(msg, keys.esc):
		m.showConfirm = false
		m.pendingDelete = ""
	}
	return m, nil
}
