package routes

import (
	"github.com/gofiber/fiber/v3"

	"github.com/Ritesh-sudo/MCPJobSearch/internal/delivery/http/handler"
	"github.com/Ritesh-sudo/MCPJobSearch/internal/service"
)

type Registry struct {
	health *handler.HealthHandler
	search *handler.SearchHandler
}

func NewRegistry(svc *service.SearchService) *Registry {
	return &Registry{
		health: handler.NewHealthHandler(),
		search: handler.NewSearchHandler(svc),
	}
}

func (r *Registry) Register(app *fiber.App) {
	if app == nil {
		return
	}

	app.Get("/health", r.health.HandleHealth)
	app.Get("/search", r.search.HandleSearchAll)
	app.Get("/search/:site", r.search.HandleSearchSite)
}
