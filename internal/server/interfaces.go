// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

// Server defines the lifecycle of the transport servers managed by this
// package.
type Server interface {
	// RunServer starts serving and blocks until a stop signal arrives and
	// every listener has shut down.
	RunServer()

	// Shutdown gracefully stops all listeners.
	Shutdown()
}
