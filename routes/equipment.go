package routes

import (
	"github.com/WajdiRaouafi/TrackPro-sub001/controllers"

	"github.com/gofiber/fiber/v2"
)

// SetupEquipmentRoutes registers equipment CRUD routes.
func SetupEquipmentRoutes(app *fiber.App, equipmentController *controllers.EquipmentController) {
	equipment := app.Group("/equipment")

	equipment.Post("/", equipmentController.CreateEquipment)
	equipment.Get("/", equipmentController.ListEquipment)
	equipment.Get("/:id", equipmentController.GetEquipment)
	equipment.Put("/:id", equipmentController.UpdateEquipment)
	equipment.Delete("/:id", equipmentController.DeleteEquipment)
}
