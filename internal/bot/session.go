package bot

import "sync"

// State is where a user's dialog currently stands. Anything other than
// StateIdle makes the next plain message part of an ongoing capture.
type State int

const (
	StateIdle State = iota
	StateSearching
	StateAwaitingReminderText
	StateAwaitingReminderTime
)

type Session struct {
	State        State
	ReminderText string
}

// Sessions holds per-user dialog state. It is an explicit value owned by
// the Bot, shared between the update loop and nothing else, but guarded
// anyway since callbacks and messages may interleave.
type Sessions struct {
	mu sync.Mutex
	m  map[int64]Session
}

func NewSessions() *Sessions {
	return &Sessions{m: make(map[int64]Session)}
}

func (s *Sessions) Get(userID int64) Session {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.m[userID]
}

func (s *Sessions) Set(userID int64, sess Session) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.m[userID] = sess
}

func (s *Sessions) Clear(userID int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.m, userID)
}
