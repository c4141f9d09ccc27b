package routes

import (
	"github.com/WajdiRaouafi/TrackPro-sub001/controllers"

	"github.com/gofiber/fiber/v2"
)

// SetupSupplierRoutes registers supplier CRUD routes.
func SetupSupplierRoutes(app *fiber.App, supplierController *controllers.SupplierController) {
	suppliers := app.Group("/suppliers")

	suppliers.Post("/", supplierController.CreateSupplier)
	suppliers.Get("/", supplierController.ListSuppliers)
	suppliers.Get("/:id", supplierController.GetSupplier)
	suppliers.Put("/:id", supplierController.UpdateSupplier)
	suppliers.Delete("/:id", supplierController.DeleteSupplier)
}
