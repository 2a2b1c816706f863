// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	up            key.Binding
	down          key.Binding
	enter         key.Binding
	esc           key.Binding
	tab           key.Binding
	backtab       key.Binding
	quit          key.Binding
	save          key.Binding
	newItem       key.Binding
	edit          key.Binding
	delete        key.Binding
	copy          key.Binding
	share         key.Binding
	unshare       key.Binding
	filter        key.Binding
	reset         key.Binding
	reload        key.Binding
	notifications key.Binding
	settings      key.Binding
	lock          key.Binding
	logout        key.Binding
	yes           key.Binding
	no            key.Binding
}

var keys = keyMap{
	up:            key.NewBinding(key.WithKeys("up", "k")),
	down:          key.NewBinding(key.WithKeys("down", "j")),
	enter:         key.NewBinding(key.WithKeys("enter")),
	esc:           key.NewBinding(key.WithKeys("esc")),
	tab:           key.NewBinding(key.WithKeys("tab")),
	backtab:       key.NewBinding(key.WithKeys("shift+tab")),
	quit:          key.NewBinding(key.WithKeys("q", "ctrl+c")),
	save:          key.NewBinding(key.WithKeys("ctrl+s")),
	newItem:       key.NewBinding(key.WithKeys("n")),
	edit:          key.NewBinding(key.WithKeys("e")),
	delete:        key.NewBinding(key.WithKeys("d")),
	copy:          key.NewBinding(key.WithKeys("c")),
	share:         key.NewBinding(key.WithKeys("s")),
	unshare:       key.NewBinding(key.WithKeys("x")),
	filter:        key.NewBinding(key.WithKeys("/")),
	reset:         key.NewBinding(key.WithKeys("ctrl+r")),
	reload:        key.NewBinding(key.WithKeys("r")),
	notifications: key.NewBinding(key.WithKeys("b")),
	settings:      key.NewBinding(key.WithKeys("o")),
	lock:          key.NewBinding(key.WithKeys("L")),
	logout:        key.NewBinding(key.WithKeys("ctrl+l")),
	yes:           key.NewBinding(key.WithKeys("y")),
	no:            key.NewBinding(key.WithKeys("n")),
}
