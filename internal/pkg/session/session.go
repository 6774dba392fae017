// Package session tracks per-stream server state and session identity.
package session

import (
	"sync/atomic"
	"time"
)

// Allocator hands out session IDs. IDs must be unique and monotonically
// increasing for the lifetime of the process; gaps are allowed.
type Allocator interface {
	Next() uint64
}

// AtomicAllocator is a race-free Allocator backed by an atomic counter.
// The allocator is the only state shared across sessions.
type AtomicAllocator struct {
	counter atomic.Uint64
}

// NewAtomicAllocator creates a new AtomicAllocator. The first allocated ID is 1.
func NewAtomicAllocator() *AtomicAllocator {
	return &AtomicAllocator{}
}

// Next allocates the next session ID.
func (a *AtomicAllocator) Next() uint64 {
	return a.counter.Add(1)
}

// Session captures the state of one bidirectional stream on the server.
// It is exclusively owned by the stream's handler goroutine and needs
// no synchronization of its own.
type Session struct {
	ID           uint64
	StartTime    time.Time
	RequestCount uint32
}

// New creates a Session with an ID drawn from the allocator.
func New(alloc Allocator) *Session {
	return &Session{
		ID:        alloc.Next(),
		StartTime: time.Now(),
	}
}

// Elapsed reports how long the session has been open, in milliseconds.
func (s *Session) Elapsed() int64 {
	return time.Since(s.StartTime).Milliseconds()
}
