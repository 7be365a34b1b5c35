package gateway

import (
	"fmt"
	"sort"
	"sync"
)

// Registry resolves adapters by method name. Registration happens at
// bootstrap from the admin payment settings; lookups are concurrent.
type Registry struct {
	mu       sync.RWMutex
	gateways map[string]Gateway
}

func NewRegistry() *Registry {
	return &Registry{
		gateways: make(map[string]Gateway),
	}
}

func (r *Registry) Register(g Gateway) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.gateways[g.Name()] = g
}

func (r *Registry) Resolve(name string) (Gateway, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	g, ok := r.gateways[name]
	if !ok {
		return nil, fmt.Errorf("payment method %q is not enabled", name)
	}
	return g, nil
}

// Names lists the enabled payment methods for the checkout page.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, 0, len(r.gateways))
	for name := range r.gateways {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
