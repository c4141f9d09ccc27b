package routes

import (
	"github.com/WajdiRaouafi/TrackPro-sub001/controllers"

	"github.com/gofiber/fiber/v2"
)

// SetupMaterialRoutes registers material CRUD routes.
func SetupMaterialRoutes(app *fiber.App, materialController *controllers.MaterialController) {
	materials := app.Group("/materials")

	materials.Post("/", materialController.CreateMaterial)
	materials.Get("/", materialController.ListMaterials)
	materials.Get("/:id", materialController.GetMaterial)
	materials.Put("/:id", materialController.UpdateMaterial)
	materials.Delete("/:id", materialController.DeleteMaterial)
}
