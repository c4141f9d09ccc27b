package controllers

import (
	"errors"
	"strconv"

	"github.com/WajdiRaouafi/TrackPro-sub001/models"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// EquipmentController handles CRUD for rentable equipment.
type EquipmentController struct {
	DB *gorm.DB
}

// NewEquipmentController creates a new EquipmentController.
func NewEquipmentController(db *gorm.DB) *EquipmentController {
	return &EquipmentController{DB: db}
}

// EquipmentRequest is the create/update request body for equipment.
type EquipmentRequest struct {
	Name             string  `json:"name"`
	Category         string  `json:"category"`
	Stock            int     `json:"stock"`
	Threshold        int     `json:"threshold"`
	DailyCost        float64 `json:"daily_cost"`
	NextResupplyDate *string `json:"next_resupply_date"` // YYYY-MM-DD
	ProjectID        *uint   `json:"project_id"`
}

func (r *EquipmentRequest) validate() string {
	if r.Name == "" {
		return "name is required"
	}
	if r.Stock < 0 {
		return "stock must not be negative"
	}
	if r.Threshold < 0 {
		return "threshold must not be negative"
	}
	if r.DailyCost < 0 {
		return "daily cost must not be negative"
	}
	return ""
}

// CreateEquipment creates an equipment record.
func (ec *EquipmentController) CreateEquipment(c *fiber.Ctx) error {
	var req EquipmentRequest
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

	equipment := models.Equipment{
		Name:             req.Name,
		Category:         req.Category,
		Stock:            req.Stock,
		Threshold:        req.Threshold,
		DailyCost:        req.DailyCost,
		NextResupplyDate: resupplyDate,
		ProjectID:        req.ProjectID,
	}

	if err := ec.DB.Create(&equipment).Error; err != nil {
		return internalError(c, "failed to create equipment")
	}

	ec.DB.Preload("Project").First(&equipment, equipment.ID)
	return c.Status(201).JSON(equipment)
}

// ListEquipment returns all equipment with project references resolved.
func (ec *EquipmentController) ListEquipment(c *fiber.Ctx) error {
	var equipment []models.Equipment
	if err := ec.DB.Preload("Project").Order("id ASC").Find(&equipment).Error; err != nil {
		return internalError(c, "failed to list equipment")
	}
	return c.JSON(equipment)
}

// GetEquipment returns a single equipment record by id.
func (ec *EquipmentController) GetEquipment(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid equipment id")
	}

	var equipment models.Equipment
	err = ec.DB.Preload("Project").First(&equipment, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return notFound(c, "equipment not found")
	}
	if err != nil {
		return internalError(c, "failed to load equipment")
	}
	return c.JSON(equipment)
}

// UpdateEquipment updates an equipment record through the model hook.
func (ec *EquipmentController) UpdateEquipment(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid equipment id")
	}

	var equipment models.Equipment
	err = ec.DB.First(&equipment, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return notFound(c, "equipment not found")
	}
	if err != nil {
		return internalError(c, "failed to load equipment")
	}

	var req EquipmentRequest
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

	equipment.Name = req.Name
	equipment.Category = req.Category
	equipment.Stock = req.Stock
	equipment.Threshold = req.Threshold
	equipment.DailyCost = req.DailyCost
	equipment.NextResupplyDate = resupplyDate
	equipment.ProjectID = req.ProjectID

	if err := ec.DB.Save(&equipment).Error; err != nil {
		return internalError(c, "failed to update equipment")
	}

	ec.DB.Preload("Project").First(&equipment, equipment.ID)
	return c.JSON(equipment)
}

// DeleteEquipment removes an equipment record.
func (ec *EquipmentController) DeleteEquipment(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid equipment id")
	}

	res := ec.DB.Delete(&models.Equipment{}, id)
	if res.Error != nil {
		return internalError(c, "failed to delete equipment")
	}
	if res.RowsAffected == 0 {
		return notFound(c, "equipment not found")
	}
	return c.JSON(fiber.Map{"success": true})
}
