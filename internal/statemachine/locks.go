package statemachine

import "sync"

// memberLocks hands out one mutex per member, dropping it when unused
type memberLocks struct {
	mu    sync.Mutex
	locks map[string]*memberLock
}

type memberLock struct {
	mu   sync.Mutex
	refs int
}

func newMemberLocks() *memberLocks {
	return &memberLocks{locks: make(map[string]*memberLock)}
}

// Lock blocks until memberID is free and returns the matching unlock
func (l *memberLocks) Lock(memberID string) func() {
	l.mu.Lock()
	lock, ok := l.locks[memberID]
	if !ok {
		lock = &memberLock{}
		l.locks[memberID] = lock
	}
	lock.refs++
	l.mu.Unlock()

	lock.mu.Lock()

	return func() {
		lock.mu.Unlock()

		l.mu.Lock()
		lock.refs--
		if lock.refs == 0 {
			delete(l.locks, memberID)
		}
		l.mu.Unlock()
	}
}

func (l *memberLocks) size() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.locks)
}
