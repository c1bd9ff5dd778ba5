package router

import (
	"tripbook/internal/handlers/booking"
	"tripbook/internal/handlers/catalog"
	"tripbook/internal/handlers/occupancy"
	"tripbook/internal/handlers/session"

	"github.com/go-chi/chi/v5"
)

const apiVersion = "/v1"

type DomainHandlers struct {
	Catalog   catalog.Handler
	Occupancy occupancy.Handler
	Booking   booking.Handler
	Session   session.Handler
}

// mounter is a domain handler that registers its own endpoints.
type mounter interface {
	Router(router chi.Router)
}

type Router struct {
	DomainHandlers DomainHandlers
}

// SetupRoutes mounts every domain under /v1.
func (r *Router) SetupRoutes(router chi.Router) {
	handlers := []mounter{
		&r.DomainHandlers.Session,
		&r.DomainHandlers.Catalog,
		&r.DomainHandlers.Occupancy,
		&r.DomainHandlers.Booking,
	}

	router.Route(apiVersion, func(v1 chi.Router) {
		for _, handler := range handlers {
			handler.Router(v1)
		}
	})
}

func New(domainHandlers DomainHandlers) Router {
	return Router{
		DomainHandlers: domainHandlers,
	}
}
