package router

import (
	"net/http"
	"strings"

	"github.com/ferdiebergado/goexpress"
)

// Router abstracts the HTTP router so handlers and route mounting do not
// depend on a concrete implementation.
type Router interface {
	http.Handler
	Get(pattern string, handler http.HandlerFunc, middlewares ...func(next http.Handler) http.Handler)
	Post(pattern string, handler http.HandlerFunc, middlewares ...func(next http.Handler) http.Handler)
	Put(pattern string, handler http.HandlerFunc, middlewares ...func(next http.Handler) http.Handler)
	Patch(pattern string, handler http.HandlerFunc, middlewares ...func(next http.Handler) http.Handler)
	Delete(pattern string, handler http.HandlerFunc, middlewares ...func(next http.Handler) http.Handler)
	Options(pattern string, handler http.HandlerFunc, middlewares ...func(next http.Handler) http.Handler)
	Use(middleware func(next http.Handler) http.Handler)
	Group(prefix string, fn func(r Router), middlewares ...func(next http.Handler) http.Handler)
}

type goexpressRouter struct {
	handler *goexpress.Router
	prefix  string
	grouped []func(next http.Handler) http.Handler
}

var _ Router = (*goexpressRouter)(nil)

func NewGoexpressRouter() Router {
	return &goexpressRouter{handler: goexpress.New()}
}

func (r *goexpressRouter) Get(pattern string, handler http.HandlerFunc, middlewares ...func(next http.Handler) http.Handler) {
	r.handler.Get(r.pattern(pattern), handler, r.chain(middlewares)...)
}

func (r *goexpressRouter) Post(pattern string, handler http.HandlerFunc, middlewares ...func(next http.Handler) http.Handler) {
	r.handler.Post(r.pattern(pattern), handler, r.chain(middlewares)...)
}

func (r *goexpressRouter) Put(pattern string, handler http.HandlerFunc, middlewares ...func(next http.Handler) http.Handler) {
	r.handler.Put(r.pattern(pattern), handler, r.chain(middlewares)...)
}

func (r *goexpressRouter) Patch(pattern string, handler http.HandlerFunc, middlewares ...func(next http.Handler) http.Handler) {
	r.handler.Patch(r.pattern(pattern), handler, r.chain(middlewares)...)
}

func (r *goexpressRouter) Delete(pattern string, handler http.HandlerFunc, middlewares ...func(next http.Handler) http.Handler) {
	r.handler.Delete(r.pattern(pattern), handler, r.chain(middlewares)...)
}

func (r *goexpressRouter) Options(pattern string, handler http.HandlerFunc, middlewares ...func(next http.Handler) http.Handler) {
	r.handler.Options(r.pattern(pattern), handler, r.chain(middlewares)...)
}

func (r *goexpressRouter) Use(middleware func(next http.Handler) http.Handler) {
	r.handler.Use(middleware)
}

func (r *goexpressRouter) Group(prefix string, fn func(gr Router), middlewares ...func(next http.Handler) http.Handler) {
	fn(&goexpressRouter{
		handler: r.handler,
		prefix:  r.pattern(prefix),
		grouped: append(append([]func(next http.Handler) http.Handler{}, r.grouped...), middlewares...),
	})
}

func (r *goexpressRouter) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	r.handler.ServeHTTP(w, req)
}

func (r *goexpressRouter) pattern(pattern string) string {
	if r.prefix == "" {
		return pattern
	}
	return r.prefix + strings.TrimSuffix(pattern, "/")
}

func (r *goexpressRouter) chain(middlewares []func(next http.Handler) http.Handler) []func(next http.Handler) http.Handler {
	return append(append([]func(next http.Handler) http.Handler{}, r.grouped...), middlewares...)
}
