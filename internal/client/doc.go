// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the dream-client runtime.
//
// [AppShell] composes the client engines into the state the terminal UI
// renders: the PIN lock, the signed-in user, the dream and shared-with-me
// caches, the unread badge and a queue of toasts. It keeps that state fresh
// from the server's realtime channel and a badge polling worker. [App] runs
// the shell together with a [UI].
package client
