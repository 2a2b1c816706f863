// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import "github.com/MKhiriev/go-dream-journal/models"

type unlockedMsg struct {
	ok bool
}

type authDoneMsg struct {
	err error
}

type signedOutMsg struct{}

type dreamsReloadedMsg struct{}

type dreamLoadedMsg struct {
	dream models.Dream
	ok    bool
}

type dreamSavedMsg struct {
	dream models.Dream
	err   error
}

type dreamDeletedMsg struct {
	err error
}

type notificationsLoadedMsg struct {
	views []models.NotificationView
}

type usersLoadedMsg struct {
	users []models.ShareableUser
}

type shareDoneMsg struct {
	userID string
	shared bool
	err    error
}

type settingsDoneMsg struct {
	err error
}

type themeToggledMsg struct {
	dark bool
}

type serverVersionMsg struct {
	version string
	ok      bool
}

type copiedMsg struct {
	err error
}

// changedMsg reports that the shell changed in the background.
type changedMsg struct{}

type clearStatusMsg struct{}
