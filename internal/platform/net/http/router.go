package http

import "net/http"

// Handler is the function form every route in the service uses
type Handler = func(http.ResponseWriter, *http.Request)

// Router is the mounting surface modules receive.
// It mirrors the slice of chi the service actually needs.
type Router interface {
	Get(path string, h Handler)
	Post(path string, h Handler)
	Put(path string, h Handler)
	Patch(path string, h Handler)
	Delete(path string, h Handler)

	Handle(path string, h http.Handler)
	Use(mw ...func(http.Handler) http.Handler)
	Group(fn func(Router))
	Route(pattern string, fn func(Router))

	Mux() http.Handler
}
