package httpkit

import "net/http"

// JSON-body route sugar. Every verb goes through the same bind and
// envelope path so validation behaves identically across modules.

// GetJSON mounts a JSON handler under GET
func GetJSON[T any](r Router, path string, h func(*http.Request, T) (any, error)) {
	r.Get(path, JSON(h))
}

// PostJSON mounts a JSON handler under POST
func PostJSON[T any](r Router, path string, h func(*http.Request, T) (any, error)) {
	r.Post(path, JSON(h))
}

// PutJSON mounts a JSON handler under PUT
func PutJSON[T any](r Router, path string, h func(*http.Request, T) (any, error)) {
	r.Put(path, JSON(h))
}

// PatchJSON mounts a JSON handler under PATCH
func PatchJSON[T any](r Router, path string, h func(*http.Request, T) (any, error)) {
	r.Patch(path, JSON(h))
}

// DeleteJSON mounts a JSON handler under DELETE
func DeleteJSON[T any](r Router, path string, h func(*http.Request, T) (any, error)) {
	r.Delete(path, JSON(h))
}

// Body-less variants

// Get mounts a body-less handler under GET
func Get(r Router, path string, h func(*http.Request) (any, error)) {
	r.Get(path, Call(h))
}

// Post mounts a body-less handler under POST
func Post(r Router, path string, h func(*http.Request) (any, error)) {
	r.Post(path, Call(h))
}

// Put mounts a body-less handler under PUT
func Put(r Router, path string, h func(*http.Request) (any, error)) {
	r.Put(path, Call(h))
}

// Patch mounts a body-less handler under PATCH
func Patch(r Router, path string, h func(*http.Request) (any, error)) {
	r.Patch(path, Call(h))
}

// Delete mounts a body-less handler under DELETE
func Delete(r Router, path string, h func(*http.Request) (any, error)) {
	r.Delete(path, Call(h))
}
