package routes

import (
	"github.com/WajdiRaouafi/TrackPro-sub001/controllers"

	"github.com/gofiber/fiber/v2"
)

// SetupProjectRoutes registers project CRUD routes.
func SetupProjectRoutes(app *fiber.App, projectController *controllers.ProjectController) {
	projects := app.Group("/projects")

	projects.Post("/", projectController.CreateProject)
	projects.Get("/", projectController.ListProjects)
	projects.Get("/:id", projectController.GetProject)
	projects.Put("/:id", projectController.UpdateProject)
	projects.Delete("/:id", projectController.DeleteProject)
}
