package sessions

import (
	"sync"
	"time"

	"github.com/google/uuid"
	"ulascansenturk/weather-fetcher/internal/ui"
)

// ControllerFactory builds the controller for a newly created session.
type ControllerFactory func() *ui.Controller

type sessionEntry struct {
	controller *ui.Controller
	expiration time.Time
}

type Store interface {
	Get(id string) (*ui.Controller, bool)
	GetOrCreate(id string) (*ui.Controller, string)
	Sweep() int
	Len() int
}

// InMemoryStore keeps one controller per session id. Every access pushes the expiration
// out by ttl.
type InMemoryStore struct {
	sessions   map[string]sessionEntry
	mutex      sync.Mutex
	ttl        time.Duration
	newSession ControllerFactory
	now        func() time.Time
}

func NewInMemoryStore(ttl time.Duration, factory ControllerFactory) *InMemoryStore {
	return &InMemoryStore{
		sessions:   make(map[string]sessionEntry),
		ttl:        ttl,
		newSession: factory,
		now:        time.Now,
	}
}

func (m *InMemoryStore) Get(id string) (*ui.Controller, bool) {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	return m.touch(id)
}

// GetOrCreate returns the live controller for id, or a new controller under a fresh id
// when id is unknown or expired.
func (m *InMemoryStore) GetOrCreate(id string) (*ui.Controller, string) {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	if controller, ok := m.touch(id); ok {
		return controller, id
	}

	id = uuid.NewString()
	controller := m.newSession()
	m.sessions[id] = sessionEntry{
		controller: controller,
		expiration: m.now().Add(m.ttl),
	}

	return controller, id
}

// Sweep drops expired sessions and reports how many were removed.
func (m *InMemoryStore) Sweep() int {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	now := m.now()
	removed := 0
	for k, v := range m.sessions {
		if now.After(v.expiration) {
			delete(m.sessions, k)
			removed++
		}
	}

	return removed
}

func (m *InMemoryStore) Len() int {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	return len(m.sessions)
}

// touch must be called with the mutex held.
func (m *InMemoryStore) touch(id string) (*ui.Controller, bool) {
	if id == "" {
		return nil, false
	}

	entry, exists := m.sessions[id]
	if !exists {
		return nil, false
	}

	now := m.now()
	if now.After(entry.expiration) {
		delete(m.sessions, id)
		return nil, false
	}

	entry.expiration = now.Add(m.ttl)
	m.sessions[id] = entry

	return entry.controller, true
}
