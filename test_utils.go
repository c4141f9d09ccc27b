package main

import (
	"time"

	"github.com/WajdiRaouafi/TrackPro-sub001/controllers"
	"github.com/WajdiRaouafi/TrackPro-sub001/models"
	"github.com/WajdiRaouafi/TrackPro-sub001/routes"
	"github.com/WajdiRaouafi/TrackPro-sub001/services"

	"github.com/gofiber/fiber/v2"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// setupTestDB creates an in-memory test database.
func setupTestDB() *gorm.DB {
	db, _ := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	db.AutoMigrate(&models.Project{}, &models.Supplier{}, &models.Material{}, &models.Equipment{})
	return db
}

// stubNotifier records deliveries instead of sending mail.
type stubNotifier struct {
	failFor map[string]error
	sent    []string
}

// Send records the delivery, or fails for configured addresses.
func (n *stubNotifier) Send(contactEmail string, payload services.ReorderPayload) error {
	if err := n.failFor[contactEmail]; err != nil {
		return err
	}
	n.sent = append(n.sent, contactEmail)
	return nil
}

// setupTestApp builds the full application over the given database.
func setupTestApp(db *gorm.DB, notifier services.Notifier) *fiber.App {
	app := fiber.New(fiber.Config{
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			code := fiber.StatusInternalServerError
			if e, ok := err.(*fiber.Error); ok {
				code = e.Code
			}
			return c.Status(code).JSON(fiber.Map{
				"error":   true,
				"message": err.Error(),
				"code":    code,
			})
		},
	})

	routes.SetupMaterialRoutes(app, controllers.NewMaterialController(db))
	routes.SetupEquipmentRoutes(app, controllers.NewEquipmentController(db))
	routes.SetupSupplierRoutes(app, controllers.NewSupplierController(db))
	routes.SetupProjectRoutes(app, controllers.NewProjectController(db))
	routes.SetupInventoryRoutes(app, controllers.NewInventoryController(db, notifier, 7))

	return app
}

// createTestSupplier creates a supplier and returns its id.
func createTestSupplier(db *gorm.DB, email string) uint {
	supplier := models.Supplier{Name: "Test Supplier", ContactEmail: email}
	db.Create(&supplier)
	return supplier.ID
}

// createTestProject creates a project and returns its id.
func createTestProject(db *gorm.DB, name string) uint {
	project := models.Project{Name: name, IsActive: true}
	db.Create(&project)
	return project.ID
}

// createTestMaterial creates a material with optional supplier and project refs.
func createTestMaterial(db *gorm.DB, name string, stock, threshold int, supplierID, projectID *uint) models.Material {
	material := models.Material{
		Name:       name,
		Category:   "construction",
		Stock:      stock,
		Threshold:  threshold,
		UnitCost:   10,
		SupplierID: supplierID,
		ProjectID:  projectID,
	}
	db.Create(&material)
	return material
}

// resupplyDate returns a UTC date pointer n days from now.
func resupplyDate(daysFromNow int) *time.Time {
	d := time.Now().UTC().AddDate(0, 0, daysFromNow)
	d = time.Date(d.Year(), d.Month(), d.Day(), 0, 0, 0, 0, time.UTC)
	return &d
}
