package controllers

import (
	"errors"
	"strconv"
	"time"

	"github.com/WajdiRaouafi/TrackPro-sub001/models"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// MaterialController handles CRUD for consumable materials.
type MaterialController struct {
	DB *gorm.DB
}

// NewMaterialController creates a new MaterialController.
func NewMaterialController(db *gorm.DB) *MaterialController {
	return &MaterialController{DB: db}
}

// MaterialRequest is the create/update request body for a material.
type MaterialRequest struct {
	Name             string  `json:"name"`
	Category         string  `json:"category"`
	Stock            int     `json:"stock"`
	Threshold        int     `json:"threshold"`
	UnitCost         float64 `json:"unit_cost"`
	NextResupplyDate *string `json:"next_resupply_date"` // YYYY-MM-DD
	SupplierID       *uint   `json:"supplier_id"`
	ProjectID        *uint   `json:"project_id"`
}

func (r *MaterialRequest) validate() string {
	if r.Name == "" {
		return "name is required"
	}
	if r.Stock < 0 {
		return "stock must not be negative"
	}
	if r.Threshold < 0 {
		return "threshold must not be negative"
	}
	if r.UnitCost < 0 {
		return "unit cost must not be negative"
	}
	return ""
}

// CreateMaterial creates a material record.
func (mc *MaterialController) CreateMaterial(c *fiber.Ctx) error {
	var req MaterialRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "invalid request body")
	}
	if msg := req.validate(); msg != "" {
		return badRequest(c, msg)
	}

	resupplyDate, err := parseDate(req.NextResupplyDate)
	if err != nil {
		return badRequest(c, "next_resupply_date must be YYYY-MM-DD")
	}

	material := models.Material{
		Name:             req.Name,
		Category:         req.Category,
		Stock:            req.Stock,
		Threshold:        req.Threshold,
		UnitCost:         req.UnitCost,
		NextResupplyDate: resupplyDate,
		SupplierID:       req.SupplierID,
		ProjectID:        req.ProjectID,
	}

	if err := mc.DB.Create(&material).Error; err != nil {
		return internalError(c, "failed to create material")
	}

	mc.DB.Preload("Supplier").Preload("Project").First(&material, material.ID)
	return c.Status(201).JSON(material)
}

// ListMaterials returns all materials with references resolved.
func (mc *MaterialController) ListMaterials(c *fiber.Ctx) error {
	var materials []models.Material
	if err := mc.DB.Preload("Supplier").Preload("Project").Order("id ASC").Find(&materials).Error; err != nil {
		return internalError(c, "failed to list materials")
	}
	return c.JSON(materials)
}

// GetMaterial returns a single material by id.
func (mc *MaterialController) GetMaterial(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid material id")
	}

	var material models.Material
	err = mc.DB.Preload("Supplier").Preload("Project").First(&material, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return notFound(c, "material not found")
	}
	if err != nil {
		return internalError(c, "failed to load material")
	}
	return c.JSON(material)
}

// UpdateMaterial updates a material. Saving through the model hook closes
// the shortage episode when stock is raised back to the threshold.
func (mc *MaterialController) UpdateMaterial(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid material id")
	}

	var material models.Material
	err = mc.DB.First(&material, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return notFound(c, "material not found")
	}
	if err != nil {
		return internalError(c, "failed to load material")
	}

	var req MaterialRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "invalid request body")
	}
	if msg := req.validate(); msg != "" {
		return badRequest(c, msg)
	}

	resupplyDate, err := parseDate(req.NextResupplyDate)
	if err != nil {
		return badRequest(c, "next_resupply_date must be YYYY-MM-DD")
	}

	material.Name = req.Name
	material.Category = req.Category
	material.Stock = req.Stock
	material.Threshold = req.Threshold
	material.UnitCost = req.UnitCost
	material.NextResupplyDate = resupplyDate
	material.SupplierID = req.SupplierID
	material.ProjectID = req.ProjectID

	if err := mc.DB.Save(&material).Error; err != nil {
		return internalError(c, "failed to update material")
	}

	mc.DB.Preload("Supplier").Preload("Project").First(&material, material.ID)
	return c.JSON(material)
}

// DeleteMaterial removes a material.
func (mc *MaterialController) DeleteMaterial(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid material id")
	}

	res := mc.DB.Delete(&models.Material{}, id)
	if res.Error != nil {
		return internalError(c, "failed to delete material")
	}
	if res.RowsAffected == 0 {
		return notFound(c, "material not found")
	}
	return c.JSON(fiber.Map{"success": true})
}

// parseDate parses an optional YYYY-MM-DD string as a UTC date.
func parseDate(value *string) (*time.Time, error) {
	if value == nil || *value == "" {
		return nil, nil
	}
	date, err := time.ParseInLocation("2006-01-02", *value, time.UTC)
	if err != nil {
		return nil, err
	}
	return &date, nil
}
