package app

import (
	"fmt"
	"strings"

	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/cors"

	"github.com/Ritesh-sudo/MCPJobSearch/internal/config"
	"github.com/Ritesh-sudo/MCPJobSearch/internal/delivery/http/middleware"
	"github.com/Ritesh-sudo/MCPJobSearch/internal/delivery/http/routes"
	"github.com/Ritesh-sudo/MCPJobSearch/internal/fetch"
	"github.com/Ritesh-sudo/MCPJobSearch/internal/service"
)

type App struct {
	Fiber  *fiber.App
	Search *service.SearchService
}

func New(cfg config.Config) *App {
	f := fiber.New(fiber.Config{
		AppName: cfg.App.AppName,
	})

	svc := service.NewSearchService(fetch.NewFetcher())

	registerGlobalMiddleware(f)
	routes.NewRegistry(svc).Register(f)

	return &App{Fiber: f, Search: svc}
}

func Bootstrap(cfg config.Config) (*App, func() error, error) {
	app := New(cfg)
	return app, func() error { return nil }, nil
}

func registerGlobalMiddleware(app *fiber.App) {
	if app == nil {
		return
	}

	app.Use(cors.New())
	app.Use(middleware.NewAccessLogMiddleware(nil).Middleware())
	app.Use(middleware.NewErrorMiddleware().Middleware())
}

func ListenAddr(port string) (string, error) {
	p := strings.TrimSpace(port)
	if p == "" {
		return "", fmt.Errorf("empty HTTP port")
	}
	if strings.HasPrefix(p, ":") {
		return p, nil
	}
	return ":" + p, nil
}
