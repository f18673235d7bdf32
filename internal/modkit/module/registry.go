package module

import "sync"

// Process wide port registry used while main composes the modules.
// Single process only, which is all this service needs.
var registry = struct {
	sync.RWMutex
	byName map[string]any
}{byName: map[string]any{}}

// Register stores a port bundle under the module name
func Register(name string, ports any) {
	registry.Lock()
	defer registry.Unlock()
	registry.byName[name] = ports
}

// PortsAs looks up a registered bundle and asserts it to T
func PortsAs[T any](name string) (T, bool) {
	registry.RLock()
	v, found := registry.byName[name]
	registry.RUnlock()
	if !found {
		var zero T
		return zero, false
	}
	out, ok := v.(T)
	return out, ok
}

// Reset clears the registry between tests
func Reset() {
	registry.Lock()
	defer registry.Unlock()
	registry.byName = map[string]any{}
}
