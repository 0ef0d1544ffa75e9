package application

import "sync"

// conversationLocks runs the turns of one conversation one at a time.
// An entry lives only while a turn holds or waits for it.
type conversationLocks struct {
	mu    sync.Mutex
	locks map[string]*conversationLock
}

type conversationLock struct {
	mu   sync.Mutex
	refs int
}

func newConversationLocks() *conversationLocks {
	return &conversationLocks{locks: map[string]*conversationLock{}}
}

// lock blocks until no other turn of conversationID is running. The returned
// func releases it.
func (l *conversationLocks) lock(conversationID string) (unlock func()) {
	l.mu.Lock()
	c, ok := l.locks[conversationID]
	if !ok {
		c = &conversationLock{}
		l.locks[conversationID] = c
	}
	c.refs++
	l.mu.Unlock()

	c.mu.Lock()
	return func() {
		c.mu.Unlock()
		l.mu.Lock()
		c.refs--
		if c.refs == 0 {
			delete(l.locks, conversationID)
		}
		l.mu.Unlock()
	}
}

// held returns how many conversations currently have a turn running or waiting.
func (l *conversationLocks) held() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.locks)
}
