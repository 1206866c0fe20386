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
	logout        key.Binding
	deleteAccount key.Binding
	newItem       key.Binding
	edit          key.Binding
	delete        key.Binding
	copy          key.Binding
	refresh       key.Binding
	filter        key.Binding
	summary       key.Binding
	save          key.Binding
	version       key.Binding
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
	logout:        key.NewBinding(key.WithKeys("l")),
	deleteAccount: key.NewBinding(key.WithKeys("X")),
	newItem:       key.NewBinding(key.WithKeys("n")),
	edit:          key.NewBinding(key.WithKeys("e")),
	delete:        key.NewBinding(key.WithKeys("d")),
	copy:          key.NewBinding(key.WithKeys("c")),
	refresh:       key.NewBinding(key.WithKeys("r")),
	filter:        key.NewBinding(key.WithKeys("f")),
	summary:       key.NewBinding(key.WithKeys("s")),
	save:          key.NewBinding(key.WithKeys("ctrl+s")),
	version:       key.NewBinding(key.WithKeys("v")),
	yes:           key.NewBinding(key.WithKeys("y")),
	no:            key.NewBinding(key.WithKeys("n", "esc")),
}
