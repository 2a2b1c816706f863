// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import "context"

// Client defines the minimal lifecycle contract for runnable client
// applications.
type Client interface {
	// Run starts the client application and blocks until exit.
	Run() error
}

// UI renders an [AppShell] and blocks until the user quits or ctx ends.
type UI interface {
	Run(ctx context.Context) error
}
