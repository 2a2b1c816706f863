// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"sync"
	"time"
)

// DefaultInterval is used by [NewPeriodic] for a non-positive interval.
const DefaultInterval = time.Minute

// Workers runs a group of workers together.
type Workers struct {
	workers []Worker
}

func NewWorkers(workers ...Worker) *Workers {
	return &Workers{workers: workers}
}

// Run starts every worker in order.
func (w *Workers) Run() {
	for _, worker := range w.workers {
		worker.Run()
	}
}

// Stop stops every worker that supports it, in reverse order.
func (w *Workers) Stop() {
	for i := len(w.workers) - 1; i >= 0; i-- {
		if s, ok := w.workers[i].(Stopper); ok {
			s.Stop()
		}
	}
}

// job is the cancellable goroutine shared by Periodic and Loop.
type job struct {
	mu     sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// start stops a previous run and launches fn under a child of parent.
func (j *job) start(parent context.Context, fn func(ctx context.Context)) {
	j.Stop()

	j.mu.Lock()
	ctx, cancel := context.WithCancel(parent)
	j.cancel = cancel
	j.wg.Add(1)
	j.mu.Unlock()

	go func() {
		defer j.wg.Done()
		fn(ctx)
	}()
}

// Stop is a no-op when the job is not running.
func (j *job) Stop() {
	j.mu.Lock()
	cancel := j.cancel
	j.cancel = nil
	j.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	j.wg.Wait()
}

// Periodic calls task on every tick of interval until stopped or until its
// parent context ends.
type Periodic struct {
	job

	parent   context.Context
	interval time.Duration
	task     func(ctx context.Context)
}

func NewPeriodic(parent context.Context, interval time.Duration, task func(ctx context.Context)) *Periodic {
	if interval <= 0 {
		interval = DefaultInterval
	}
	return &Periodic{parent: parent, interval: interval, task: task}
}

func (p *Periodic) Run() {
	p.start(p.parent, func(ctx context.Context) {
		t := time.NewTicker(p.interval)
		defer t.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case <-t.C:
				p.task(ctx)
			}
		}
	})
}

// Loop runs fn once in the background. fn must return when its context is
// cancelled.
type Loop struct {
	job

	parent context.Context
	fn     func(ctx context.Context)
}

func NewLoop(parent context.Context, fn func(ctx context.Context)) *Loop {
	return &Loop{parent: parent, fn: fn}
}

func (l *Loop) Run() {
	l.start(l.parent, l.fn)
}
