// Package async negotiates dialogs pushed by one actor onto a player that
// runs on a different packet worker.
//
// The only state shared between the two actors' workers is the Registry and
// each Request's closed flags.
package async

import (
	"sort"
	"sync"
)

// Key identifies a session by its ordered (invoker, invokee) pair.
type Key struct {
	Invoker uint32
	Invokee uint32
}

// Registry holds the live async sessions, at most one per Key. It is safe
// for concurrent use.
type Registry struct {
	mu       sync.Mutex
	sessions map[Key]*Request
	// observe, when set, is called with the session count after each change.
	observe func(n int)
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{sessions: map[Key]*Request{}}
}

// TryAdd registers req under its key. It reports false when the key is
// taken.
func (r *Registry) TryAdd(req *Request) bool {
	r.mu.Lock()
	k := req.Key()
	if _, exists := r.sessions[k]; exists {
		r.mu.Unlock()
		return false
	}
	r.sessions[k] = req
	n := len(r.sessions)
	r.mu.Unlock()
	r.changed(n)
	return true
}

// TryRemove unregisters req. It reports false when req is not the request
// registered under its key.
func (r *Registry) TryRemove(req *Request) bool {
	r.mu.Lock()
	k := req.Key()
	if cur, ok := r.sessions[k]; !ok || cur != req {
		r.mu.Unlock()
		return false
	}
	delete(r.sessions, k)
	n := len(r.sessions)
	r.mu.Unlock()
	r.changed(n)
	return true
}

func (r *Registry) changed(n int) {
	if r.observe != nil {
		r.observe(n)
	}
}

// Get returns the request registered under k.
func (r *Registry) Get(k Key) (*Request, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	req, ok := r.sessions[k]
	return req, ok
}

// Len returns the number of registered sessions.
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.sessions)
}

// ForUser returns the sessions id takes part in on either side, ordered by
// key.
func (r *Registry) ForUser(id uint32) []*Request {
	r.mu.Lock()
	var out []*Request
	for k, req := range r.sessions {
		if k.Invoker == id || k.Invokee == id {
			out = append(out, req)
		}
	}
	r.mu.Unlock()
	sort.Slice(out, func(i, j int) bool {
		a, b := out[i].Key(), out[j].Key()
		if a.Invoker != b.Invoker {
			return a.Invoker < b.Invoker
		}
		return a.Invokee < b.Invokee
	})
	return out
}

// CounterpartName names the other party of id's session. Sessions where id
// is the invokee and has not closed its side win.
func (r *Registry) CounterpartName(id uint32) (string, bool) {
	var fallback string
	var found bool
	for _, req := range r.ForUser(id) {
		if req.Key().Invokee == id {
			if !req.invokeeClosed.Load() {
				return req.Invoker.Name(), true
			}
			if !found {
				fallback, found = req.Invoker.Name(), true
			}
			continue
		}
		if !found {
			fallback, found = req.Invokee.Name(), true
		}
	}
	return fallback, found
}

// CloseSide closes id's side of every session it takes part in.
func (r *Registry) CloseSide(id uint32) {
	for _, req := range r.ForUser(id) {
		req.Close(id)
	}
}

// CloseInvoker closes id's side of the sessions it started. Sessions id
// receives are left open.
func (r *Registry) CloseInvoker(id uint32) {
	for _, req := range r.ForUser(id) {
		if req.Key().Invoker == id {
			req.Close(id)
		}
	}
}
