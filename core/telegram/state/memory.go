package state

import "sync"

type memoryStore struct {
	days    int
	mu      sync.RWMutex
	cursors map[int64]Cursor
	locks   sync.Map // chatID -> *sync.Mutex
}

// NewMemoryStore returns an empty in-memory Store whose day indexes wrap
// within [0, days). It panics if days is not positive.
func NewMemoryStore(days int) Store {
	if days <= 0 {
		panic("state: day count must be positive")
	}
	return &memoryStore{days: days, cursors: make(map[int64]Cursor)}
}

func (s *memoryStore) Get(chatID int64) (Cursor, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	cur, ok := s.cursors[chatID]
	return cur, ok
}

// SetGroup selects group for the chat, creating the cursor on first use.
func (s *memoryStore) SetGroup(chatID int64, group string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	cur := s.cursors[chatID]
	cur.Group = group
	s.cursors[chatID] = cur
}

// SetDay stores day wrapped into the store's day range.
func (s *memoryStore) SetDay(chatID int64, day int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	cur := s.cursors[chatID]
	cur.Day = ((day % s.days) + s.days) % s.days
	s.cursors[chatID] = cur
}

func (s *memoryStore) Lock(chatID int64) func() {
	v, _ := s.locks.LoadOrStore(chatID, &sync.Mutex{})
	mu := v.(*sync.Mutex)
	mu.Lock()
	return mu.Unlock
}

func (s *memoryStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.cursors)
}
