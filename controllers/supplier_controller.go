package controllers

import (
	"errors"
	"strconv"
	"strings"

	"github.com/WajdiRaouafi/TrackPro-sub001/models"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// SupplierController handles CRUD for supplier records.
type SupplierController struct {
	DB *gorm.DB
}

// NewSupplierController creates a new SupplierController.
func NewSupplierController(db *gorm.DB) *SupplierController {
	return &SupplierController{DB: db}
}

// SupplierRequest is the create/update request body for a supplier.
type SupplierRequest struct {
	Name         string `json:"name"`
	ContactEmail string `json:"contact_email"`
	Phone        string `json:"phone"`
}

func (r *SupplierRequest) validate() string {
	if r.Name == "" {
		return "name is required"
	}
	if r.ContactEmail == "" || !strings.Contains(r.ContactEmail, "@") {
		return "contact_email must be a valid email address"
	}
	return ""
}

// CreateSupplier creates a supplier record.
func (sc *SupplierController) CreateSupplier(c *fiber.Ctx) error {
	var req SupplierRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "invalid request body")
	}
	if msg := req.validate(); msg != "" {
		return badRequest(c, msg)
	}

	supplier := models.Supplier{
		Name:         req.Name,
		ContactEmail: req.ContactEmail,
		Phone:        req.Phone,
	}
	if err := sc.DB.Create(&supplier).Error; err != nil {
		return internalError(c, "failed to create supplier")
	}
	return c.Status(201).JSON(supplier)
}

// ListSuppliers returns all suppliers.
func (sc *SupplierController) ListSuppliers(c *fiber.Ctx) error {
	var suppliers []models.Supplier
	if err := sc.DB.Order("id ASC").Find(&suppliers).Error; err != nil {
		return internalError(c, "failed to list suppliers")
	}
	return c.JSON(suppliers)
}

// GetSupplier returns a single supplier by id.
func (sc *SupplierController) GetSupplier(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid supplier id")
	}

	var supplier models.Supplier
	err = sc.DB.First(&supplier, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return notFound(c, "supplier not found")
	}
	if err != nil {
		return internalError(c, "failed to load supplier")
	}
	return c.JSON(supplier)
}

// UpdateSupplier updates a supplier record.
func (sc *SupplierController) UpdateSupplier(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid supplier id")
	}

	var supplier models.Supplier
	err = sc.DB.First(&supplier, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return notFound(c, "supplier not found")
	}
	if err != nil {
		return internalError(c, "failed to load supplier")
	}

	var req SupplierRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "invalid request body")
	}
	if msg := req.validate(); msg != "" {
		return badRequest(c, msg)
	}

	supplier.Name = req.Name
	supplier.ContactEmail = req.ContactEmail
	supplier.Phone = req.Phone

	if err := sc.DB.Save(&supplier).Error; err != nil {
		return internalError(c, "failed to update supplier")
	}
	return c.JSON(supplier)
}

// DeleteSupplier removes a supplier record.
func (sc *SupplierController) DeleteSupplier(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid supplier id")
	}

	res := sc.DB.Delete(&models.Supplier{}, id)
	if res.Error != nil {
		return internalError(c, "failed to delete supplier")
	}
	if res.RowsAffected == 0 {
		return notFound(c, "supplier not found")
	}
	return c.JSON(fiber.Map{"success": true})
}
