package api

import (
	"github.com/go-chi/chi/v5"

	"github.com/youbeemuhwan/commercial/pkg/app"
	"github.com/youbeemuhwan/commercial/pkg/auth"
	"github.com/youbeemuhwan/commercial/pkg/config"
	"github.com/youbeemuhwan/commercial/services/item/application/handlers"
	appsvcs "github.com/youbeemuhwan/commercial/services/item/application/services"
)

// ItemRoutes registers item and image endpoints on the provided chi router.
func ItemRoutes(r chi.Router, a *app.Application) {
	Routes(r, appsvcs.New(a), a)
}

// Routes mounts the handlers over an already wired service container. Catalog
// mutations require an admin session when AUTH_REQUIRED is set.
func Routes(r chi.Router, svcs *appsvcs.Services, a *app.Application) {
	opts := handlers.Options{
		DefaultPageSize: a.Config.DefaultPageSize,
		MaxPageSize:     a.Config.MaxPageSize,
		Production:      a.Config.Environment == config.EnvProduction,
	}

	r.Route("/items", func(r chi.Router) {
		r.Get("/", handlers.NewListItemsHandler(svcs, opts).Execute)
		r.Post("/search", handlers.NewSearchItemsHandler(svcs, opts).Execute)
		r.Get("/{id}", handlers.NewGetItemHandler(svcs, opts).Execute)

		r.Group(func(r chi.Router) {
			if a.Config.AuthRequired {
				r.Use(auth.RequireAdmin(a.SessionStore, a.Logger))
			}
			r.Post("/", handlers.NewCreateItemHandler(svcs, opts).Execute)
			r.Put("/{id}", handlers.NewModifyItemHandler(svcs, opts).Execute)
			r.Delete("/{id}", handlers.NewDeleteItemHandler(svcs, opts).Execute)
		})
	})
	r.Get("/images/{name}", handlers.NewGetImageHandler(a.Storage, opts).Execute)
}
