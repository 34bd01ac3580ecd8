package usecase

import "sync"

// LeadLocks serializes mutating operations per lead. Leads are
// independent units of concurrency, so cross-lead operations never
// contend. Locks are only held across load-append-save; outbound sends
// happen after release.
type LeadLocks struct {
	mu    sync.Mutex
	locks map[int]*sync.Mutex
}

func NewLeadLocks() *LeadLocks {
	return &LeadLocks{locks: make(map[int]*sync.Mutex)}
}

func (l *LeadLocks) Lock(leadID int) {
	l.get(leadID).Lock()
}

func (l *LeadLocks) Unlock(leadID int) {
	l.get(leadID).Unlock()
}

func (l *LeadLocks) get(leadID int) *sync.Mutex {
	l.mu.Lock()
	defer l.mu.Unlock()

	m, ok := l.locks[leadID]
	if !ok {
		m = &sync.Mutex{}
		l.locks[leadID] = m
	}
	return m
}
