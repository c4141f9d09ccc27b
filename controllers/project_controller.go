package controllers

import (
	"errors"
	"strconv"

	"github.com/WajdiRaouafi/TrackPro-sub001/models"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// ProjectController handles CRUD for project records.
type ProjectController struct {
	DB *gorm.DB
}

// NewProjectController creates a new ProjectController.
func NewProjectController(db *gorm.DB) *ProjectController {
	return &ProjectController{DB: db}
}

// ProjectRequest is the create/update request body for a project.
type ProjectRequest struct {
	Name     string `json:"name"`
	Location string `json:"location"`
	IsActive *bool  `json:"is_active"`
}

// CreateProject creates a project record.
func (pc *ProjectController) CreateProject(c *fiber.Ctx) error {
	var req ProjectRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "invalid request body")
	}
	if req.Name == "" {
		return badRequest(c, "name is required")
	}

	project := models.Project{
		Name:     req.Name,
		Location: req.Location,
		IsActive: true,
	}
	if req.IsActive != nil {
		project.IsActive = *req.IsActive
	}

	if err := pc.DB.Create(&project).Error; err != nil {
		return internalError(c, "failed to create project")
	}
	return c.Status(201).JSON(project)
}

// ListProjects returns all projects.
func (pc *ProjectController) ListProjects(c *fiber.Ctx) error {
	var projects []models.Project
	if err := pc.DB.Order("id ASC").Find(&projects).Error; err != nil {
		return internalError(c, "failed to list projects")
	}
	return c.JSON(projects)
}

// GetProject returns a single project by id.
func (pc *ProjectController) GetProject(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid project id")
	}

	var project models.Project
	err = pc.DB.First(&project, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return notFound(c, "project not found")
	}
	if err != nil {
		return internalError(c, "failed to load project")
	}
	return c.JSON(project)
}

// UpdateProject updates a project record.
func (pc *ProjectController) UpdateProject(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid project id")
	}

	var project models.Project
	err = pc.DB.First(&project, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return notFound(c, "project not found")
	}
	if err != nil {
		return internalError(c, "failed to load project")
	}

	var req ProjectRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "invalid request body")
	}
	if req.Name == "" {
		return badRequest(c, "name is required")
	}

	project.Name = req.Name
	project.Location = req.Location
	if req.IsActive != nil {
		project.IsActive = *req.IsActive
	}

	if err := pc.DB.Save(&project).Error; err != nil {
		return internalError(c, "failed to update project")
	}
	return c.JSON(project)
}

// DeleteProject removes a project record.
func (pc *ProjectController) DeleteProject(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid project id")
	}

	res := pc.DB.Delete(&models.Project{}, id)
	if res.Error != nil {
		return internalError(c, "failed to delete project")
	}
	if res.RowsAffected == 0 {
		return notFound(c, "project not found")
	}
	return c.JSON(fiber.Map{"success": true})
}
