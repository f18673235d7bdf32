package repokit

// Binder produces a domain repo bound to a concrete Queryer
type Binder[T any] interface {
	Bind(Queryer) T
}

// BindFunc adapts a plain function to the Binder interface
type BindFunc[T any] func(Queryer) T

func (f BindFunc[T]) Bind(q Queryer) T { return f(q) }

// MustBind binds after rejecting a nil Queryer, which is always a wiring bug
func MustBind[T any](b Binder[T], q Queryer) T {
	if q == nil {
		panic("repokit: nil Queryer")
	}
	return b.Bind(q)
}
