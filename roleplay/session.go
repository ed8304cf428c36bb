package roleplay

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

const (
	// MinMemoryLimit and MaxMemoryLimit bound how many turns a session retains.
	MinMemoryLimit = 2
	MaxMemoryLimit = 20
)

// Turn is one user-message/assistant-reply pair.
type Turn struct {
	User      string `json:"user"`
	Assistant string `json:"assistant"`
}

// Session holds the conversation state for one client.
// Turn access goes through the owning Store so the read-modify-write on the
// window is serialized per session.
type Session struct {
	ID        string
	RoleName  string
	Card      RoleCard
	CreatedAt time.Time

	mu    sync.Mutex
	limit int
	turns []Turn
}

// Limit returns the retention bound the session was created with.
func (s *Session) Limit() int {
	return s.limit
}

// History returns a copy of the retained turns in insertion order.
func (s *Session) History() []Turn {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Turn, len(s.turns))
	copy(out, s.turns)
	return out
}

func (s *Session) appendTurn(user, assistant string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.turns = append(s.turns, Turn{User: user, Assistant: assistant})
	for len(s.turns) > s.limit {
		s.turns = s.turns[1:]
	}
}

// Store is an in-memory session table. Sessions live until process exit;
// there is no TTL and no explicit deletion.
type Store struct {
	mu       sync.RWMutex
	sessions map[string]*Session
}

// NewStore creates an empty session store.
func NewStore() *Store {
	return &Store{sessions: make(map[string]*Session)}
}

// Create registers a new session and returns its identifier. The memory
// limit is clamped into [MinMemoryLimit, MaxMemoryLimit].
func (st *Store) Create(roleName string, card RoleCard, memoryLimit int) string {
	if memoryLimit < MinMemoryLimit {
		memoryLimit = MinMemoryLimit
	}
	if memoryLimit > MaxMemoryLimit {
		memoryLimit = MaxMemoryLimit
	}
	sess := &Session{
		ID:        uuid.NewString(),
		RoleName:  roleName,
		Card:      card,
		CreatedAt: time.Now(),
		limit:     memoryLimit,
	}
	st.mu.Lock()
	st.sessions[sess.ID] = sess
	st.mu.Unlock()
	return sess.ID
}

// Get looks up a session by id. The boolean is false when the session does
// not exist; callers surface that as a not-found response.
func (st *Store) Get(id string) (*Session, bool) {
	st.mu.RLock()
	sess, ok := st.sessions[id]
	st.mu.RUnlock()
	return sess, ok
}

// AppendTurn records one completed exchange on the session, evicting the
// oldest turn when the window is full. Returns false for unknown sessions.
func (st *Store) AppendTurn(id, user, assistant string) bool {
	sess, ok := st.Get(id)
	if !ok {
		return false
	}
	sess.appendTurn(user, assistant)
	return true
}
