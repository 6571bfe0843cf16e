package runtime

import "sync"

// Registry tracks the live session controllers hosted by this process,
// keyed by room name. One process may serve several rooms concurrently;
// sessions never share state beyond this index.
type Registry struct {
	mu       sync.RWMutex
	sessions map[string]*SessionController
}

func NewRegistry() *Registry {
	return &Registry{sessions: make(map[string]*SessionController)}
}

func (r *Registry) Add(roomName string, c *SessionController) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.sessions[roomName] = c
}

func (r *Registry) Get(roomName string) *SessionController {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.sessions[roomName]
}

func (r *Registry) Remove(roomName string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.sessions, roomName)
}

func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.sessions)
}
