package provider

import (
	"fmt"
	"sync"
)

// Hook names fired by the provider.
const (
	HookCreateContainer = "runtime.create_container"
	HookRouteBefore     = "app.route_before"
	HookLayoutFooter    = "runtime.layout_footer"
)

// Params carries hook arguments.
type Params map[string]any

// HookFunc handles a fired hook.
type HookFunc func(Params) error

// Observer binds a HookFunc to a hook name.
type Observer struct {
	Hook string
	Fn   HookFunc
}

// Hooks is a registry of named hook handlers, called in registration order.
type Hooks struct {
	mu       sync.RWMutex
	handlers map[string][]HookFunc
}

// NewHooks returns an empty registry.
func NewHooks() *Hooks {
	return &Hooks{handlers: make(map[string][]HookFunc)}
}

// Register adds fn to the handlers of name.
func (h *Hooks) Register(name string, fn HookFunc) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.handlers[name] = append(h.handlers[name], fn)
}

// Fire calls every handler registered for name. The first error stops the chain.
func (h *Hooks) Fire(name string, p Params) error {
	h.mu.RLock()
	fns := append([]HookFunc(nil), h.handlers[name]...)
	h.mu.RUnlock()

	for i, fn := range fns {
		if err := fn(p); err != nil {
			return fmt.Errorf("hook %s handler %d: %w", name, i, err)
		}
	}
	return nil
}

// Count returns the number of handlers registered for name.
func (h *Hooks) Count(name string) int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.handlers[name])
}
