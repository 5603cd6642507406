// Package lock serializes claim processing per Pix key.
package lock

import (
	"context"
	"sync"
	"time"

	"pixclaim/pkg/platform/sentinel"
)

// DefaultWait bounds how long Acquire blocks when no wait is configured.
const DefaultWait = 5 * time.Second

type memoryEntry struct {
	sem  chan struct{}
	refs int
}

// MemoryLocker serializes callers within one process.
type MemoryLocker struct {
	mu      sync.Mutex
	entries map[string]*memoryEntry
	wait    time.Duration
}

// NewMemory constructs a process-local locker. wait <= 0 uses DefaultWait.
func NewMemory(wait time.Duration) *MemoryLocker {
	if wait <= 0 {
		wait = DefaultWait
	}
	return &MemoryLocker{entries: make(map[string]*memoryEntry), wait: wait}
}

// Acquire blocks until key is free, ctx ends, or the wait expires.
func (l *MemoryLocker) Acquire(ctx context.Context, key string) (func(), error) {
	entry := l.ref(key)

	timer := time.NewTimer(l.wait)
	defer timer.Stop()

	select {
	case entry.sem <- struct{}{}:
	case <-ctx.Done():
		l.unref(key)
		return nil, ctx.Err()
	case <-timer.C:
		l.unref(key)
		return nil, sentinel.ErrLockHeld
	}

	var once sync.Once
	return func() {
		once.Do(func() {
			<-entry.sem
			l.unref(key)
		})
	}, nil
}

func (l *MemoryLocker) ref(key string) *memoryEntry {
	l.mu.Lock()
	defer l.mu.Unlock()
	entry, ok := l.entries[key]
	if !ok {
		entry = &memoryEntry{sem: make(chan struct{}, 1)}
		l.entries[key] = entry
	}
	entry.refs++
	return entry
}

func (l *MemoryLocker) unref(key string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	entry, ok := l.entries[key]
	if !ok {
		return
	}
	entry.refs--
	if entry.refs == 0 {
		delete(l.entries, key)
	}
}

// size reports tracked keys.
func (l *MemoryLocker) size() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.entries)
}
