package app

import "sync"

// CountStore owns the derived cart count and fans changes out to
// subscribers. The count never goes below zero.
//
// Only the integer is guarded. Callers performing read-modify-write
// sequences across network calls may interleave, and the next Set from a
// reconciling fetch repairs any drift.
type CountStore struct {
	mu     sync.Mutex
	count  int
	known  bool
	nextID int
	subs   map[int]func(int)
}

func NewCountStore() *CountStore {
	return &CountStore{subs: make(map[int]func(int))}
}

// Count returns the current derived count.
func (s *CountStore) Count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.count
}

// Known reports whether the count has been set since creation or the last
// Forget.
func (s *CountStore) Known() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.known
}

// Set replaces the count. Negative values are stored as zero.
func (s *CountStore) Set(n int) int {
	if n < 0 {
		n = 0
	}
	s.mu.Lock()
	s.count = n
	s.known = true
	subs := s.snapshotSubs()
	s.mu.Unlock()

	publish(subs, n)
	return n
}

// Adjust applies delta, flooring the result at zero, and returns it.
func (s *CountStore) Adjust(delta int) int {
	s.mu.Lock()
	n := s.count + delta
	if n < 0 {
		n = 0
	}
	s.count = n
	s.known = true
	subs := s.snapshotSubs()
	s.mu.Unlock()

	publish(subs, n)
	return n
}

// Forget zeroes the count and returns it to the unknown state.
func (s *CountStore) Forget() {
	s.mu.Lock()
	s.count = 0
	s.known = false
	subs := s.snapshotSubs()
	s.mu.Unlock()

	publish(subs, 0)
}

// Subscribe registers fn to receive every new count. fn runs on the
// goroutine that changed the count and must not block. The returned func
// removes the subscription and is safe to call more than once.
func (s *CountStore) Subscribe(fn func(int)) (unsubscribe func()) {
	if fn == nil {
		return func() {}
	}
	s.mu.Lock()
	id := s.nextID
	s.nextID++
	s.subs[id] = fn
	s.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			s.mu.Lock()
			delete(s.subs, id)
			s.mu.Unlock()
		})
	}
}

func (s *CountStore) snapshotSubs() []func(int) {
	if len(s.subs) == 0 {
		return nil
	}
	out := make([]func(int), 0, len(s.subs))
	for _, fn := range s.subs {
		out = append(out, fn)
	}
	return out
}

func publish(subs []func(int), n int) {
	for _, fn := range subs {
		fn(n)
	}
}
