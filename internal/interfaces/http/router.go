package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/pedidos-sync/pkg/logger"
)

// RouterDeps dependencias para el router del simulador.
type RouterDeps struct {
	State *State
	Log   *logger.Logger
}

// Router registra los endpoints del backend simulado.
func Router(app *fiber.App, deps RouterDeps) {
	catalogHandler := NewCatalogHandler(deps.State)
	app.Get("/catalog", catalogHandler.Get)

	cartHandler := NewCartHandler(deps.State, deps.Log)
	app.Get("/cart/saved/:scope/:scopeId", cartHandler.Saved)
	app.Post("/cart/sync/:scope", cartHandler.Sync)

	requestHandler := NewRequestHandler(deps.State, deps.Log)
	app.Get("/areas", requestHandler.Areas)
	app.Get("/areas/:areaId/employees", requestHandler.Employees)
	app.Post("/request/acquire", requestHandler.Acquire)
	app.Get("/request/active", requestHandler.Active)
	app.Post("/request/activate/:requestId", requestHandler.Activate)
	app.Post("/request/move/:requestId", requestHandler.Move)
}
