// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package workers runs the dream-client's background jobs: the unread badge
// poller and the realtime subscription loop.
package workers

// Worker is a background job. Run starts it and returns immediately; the
// job keeps running in its own goroutine.
type Worker interface {
	Run()
}

// Stopper is a Worker that can be cancelled. Stop blocks until the job's
// goroutine has exited.
type Stopper interface {
	Worker
	Stop()
}
