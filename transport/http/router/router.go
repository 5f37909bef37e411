package router

import (
	"net/http"

	"taskdesk/internal/handlers/category"
	"taskdesk/internal/handlers/page"
	"taskdesk/internal/handlers/stats"
	"taskdesk/internal/handlers/todo"

	"github.com/go-chi/chi/v5"
)

type DomainHandlers struct {
	Page     page.Handler
	Todo     todo.Handler
	Category category.Handler
	Stats    stats.Handler
}

type Router struct {
	DomainHandlers DomainHandlers
}

func (r *Router) SetupRoutes(router chi.Router) {
	r.DomainHandlers.Page.Router(router)

	router.Route("/api", func(routerGroup chi.Router) {
		r.DomainHandlers.Todo.Router(routerGroup)
		r.DomainHandlers.Category.Router(routerGroup)
		r.DomainHandlers.Stats.Router(routerGroup)
	})

	router.Handle("/static/*", http.StripPrefix("/static/", http.FileServer(http.Dir("web/static"))))
}

func New(domainHandlers DomainHandlers) Router {
	return Router{
		DomainHandlers: domainHandlers,
	}
}
