package api

import "sync"

// UnauthorizedHandler is the session-event sink the dispatcher notifies when
// the server signals an expired or invalid session. It is injected at client
// construction so "at most one listener" is a structural guarantee, not a
// runtime convention.
type UnauthorizedHandler interface {
	OnUnauthorized()
}

// UnauthorizedFunc adapts a plain function to an UnauthorizedHandler.
type UnauthorizedFunc func()

func (f UnauthorizedFunc) OnUnauthorized() { f() }

// LogoutHook is a single-slot callback registry implementing
// UnauthorizedHandler. Registering a second callback silently replaces the
// first; that is acceptable only because the process has exactly one session
// owner. A multi-listener process would need a real subscriber list.
type LogoutHook struct {
	mu sync.Mutex
	fn func()
}

// Register stores the logout callback, overwriting any previous registration.
func (h *LogoutHook) Register(fn func()) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.fn = fn
}

// Clear removes the registered callback. Clearing an empty hook is a no-op.
func (h *LogoutHook) Clear() {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.fn = nil
}

// OnUnauthorized calls the registered callback if present. A panicking
// callback is swallowed; a misbehaving listener must not crash the request
// path.
func (h *LogoutHook) OnUnauthorized() {
	h.mu.Lock()
	fn := h.fn
	h.mu.Unlock()

	if fn == nil {
		return
	}
	defer func() { _ = recover() }()
	fn()
}
