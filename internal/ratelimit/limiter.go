// Package ratelimit implements fixed-window request counting per client
// identity. Each identity gets its own counter and lock, so traffic for one
// client never blocks another; the shared map is only touched to find or
// create an identity's entry.
package ratelimit

import (
	"sync"
	"time"
)

type Rule struct {
	Window time.Duration
	Max    int
}

type Result struct {
	Allowed    bool
	Remaining  int
	RetryAfter time.Duration
}

type entry struct {
	mu    sync.Mutex
	start time.Time
	count int
}

type Limiter struct {
	rule Rule

	mu      sync.Mutex // guards the entries map, never held across counting
	entries map[string]*entry
}

func New(rule Rule) *Limiter {
	return &Limiter{
		rule:    rule,
		entries: make(map[string]*entry),
	}
}

func (l *Limiter) entryFor(key string) *entry {
	l.mu.Lock()
	defer l.mu.Unlock()

	e, ok := l.entries[key]
	if !ok {
		e = &entry{}
		l.entries[key] = e
	}
	return e
}

// Allow counts one request for key at the given instant. The window resets
// atomically once it has fully elapsed; denied requests do not increment the
// counter.
func (l *Limiter) Allow(key string, now time.Time) Result {
	e := l.entryFor(key)

	e.mu.Lock()
	defer e.mu.Unlock()

	if e.start.IsZero() || now.Sub(e.start) >= l.rule.Window {
		e.start = now
		e.count = 0
	}

	if e.count >= l.rule.Max {
		return Result{
			Allowed:    false,
			RetryAfter: l.rule.Window - now.Sub(e.start),
		}
	}

	e.count++

	return Result{Allowed: true, Remaining: l.rule.Max - e.count}
}
