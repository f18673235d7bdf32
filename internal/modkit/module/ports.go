package module

import "reflect"

// PortsOf extracts an interface T from a module's Ports() bundle.
// The bundle may implement T itself or carry it on an exported struct field.
func PortsOf[T any](m Module) (T, bool) {
	var zero T
	bundle := m.Ports()
	if bundle == nil {
		return zero, false
	}
	if v, ok := bundle.(T); ok {
		return v, true
	}
	rv := reflect.ValueOf(bundle)
	if rv.Kind() != reflect.Struct {
		return zero, false
	}
	for i := 0; i < rv.NumField(); i++ {
		f := rv.Field(i)
		if !f.CanInterface() {
			continue
		}
		if v, ok := f.Interface().(T); ok {
			return v, true
		}
	}
	return zero, false
}

// MustPortsOf panics when the module does not expose T
func MustPortsOf[T any](m Module) T {
	v, ok := PortsOf[T](m)
	if !ok {
		panic("module: requested port not found on module " + m.Name())
	}
	return v
}
