package routes

import (
	"github.com/WajdiRaouafi/TrackPro-sub001/controllers"

	"github.com/gofiber/fiber/v2"
)

// SetupInventoryRoutes registers the monitoring and reorder engine routes.
func SetupInventoryRoutes(app *fiber.App, inventoryController *controllers.InventoryController) {
	// GET /alerts - low-stock alerts and upcoming deliveries
	app.Get("/alerts", inventoryController.GetAlerts)

	// GET /statistics - inventory rollup for the dashboard
	app.Get("/statistics", inventoryController.GetStatistics)

	// POST /reorders/run - trigger one reorder pass (409 while one is running)
	app.Post("/reorders/run", inventoryController.RunReorderPass)
}
