// Package tracker counts failed patron logins and coordinates the block
// issued when a patron exceeds the allowed number of attempts.
package tracker

import (
	"context"
	"errors"
	"sync"
)

const DefaultMaxAttempts = 5

var ErrBlockInProgress = errors.New("block already in progress")

type record struct {
	attempts int
	blocking bool
}

// Tracker is safe for concurrent use. All counter mutation goes through mu.
type Tracker struct {
	max     int
	mu      sync.Mutex
	records map[string]*record
}

func New(maxAttempts int) *Tracker {
	if maxAttempts <= 0 {
		maxAttempts = DefaultMaxAttempts
	}
	return &Tracker{max: maxAttempts, records: map[string]*record{}}
}

func (t *Tracker) Max() int {
	return t.max
}

// Add records one failed login and returns the new count.
func (t *Tracker) Add(username string) int {
	t.mu.Lock()
	defer t.mu.Unlock()

	rec, ok := t.records[username]
	if !ok {
		rec = &record{}
		t.records[username] = rec
	}
	rec.attempts++
	return rec.attempts
}

// Check reports whether username has reached the maximum.
func (t *Tracker) Check(username string) bool {
	t.mu.Lock()
	defer t.mu.Unlock()

	rec, ok := t.records[username]
	return ok && rec.attempts >= t.max
}

func (t *Tracker) Attempts(username string) int {
	t.mu.Lock()
	defer t.mu.Unlock()

	if rec, ok := t.records[username]; ok {
		return rec.attempts
	}
	return 0
}

func (t *Tracker) Clear(username string) {
	t.mu.Lock()
	defer t.mu.Unlock()

	delete(t.records, username)
}

// Snapshot returns the failed login counts, keyed by username.
func (t *Tracker) Snapshot() map[string]int {
	t.mu.Lock()
	defer t.mu.Unlock()

	counts := make(map[string]int, len(t.records))
	for username, rec := range t.records {
		if rec.attempts > 0 {
			counts[username] = rec.attempts
		}
	}
	return counts
}

// Restore loads counts taken with Snapshot. A username already tracked keeps
// the higher of the two counts.
func (t *Tracker) Restore(counts map[string]int) {
	t.mu.Lock()
	defer t.mu.Unlock()

	for username, attempts := range counts {
		if attempts <= 0 {
			continue
		}
		rec, ok := t.records[username]
		if !ok {
			rec = &record{}
			t.records[username] = rec
		}
		rec.attempts = max(rec.attempts, attempts)
	}
}

// Block runs block for username. Only one block per username runs at a time;
// concurrent callers get ErrBlockInProgress. The record is cleared only when
// block succeeds, otherwise the count is kept and the error returned.
func (t *Tracker) Block(ctx context.Context, username string, block func(context.Context) error) error {
	t.mu.Lock()
	rec, ok := t.records[username]
	if !ok {
		rec = &record{}
		t.records[username] = rec
	}
	if rec.blocking {
		t.mu.Unlock()
		return ErrBlockInProgress
	}
	rec.blocking = true
	t.mu.Unlock()

	err := block(ctx)

	t.mu.Lock()
	defer t.mu.Unlock()
	if err != nil {
		rec.blocking = false
		return err
	}
	if current, ok := t.records[username]; ok && current == rec {
		delete(t.records, username)
	}
	return nil
}
