package main

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/WajdiRaouafi/TrackPro-sub001/controllers"
	"github.com/WajdiRaouafi/TrackPro-sub001/models"
	"github.com/WajdiRaouafi/TrackPro-sub001/routes"
	"github.com/WajdiRaouafi/TrackPro-sub001/services"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
)

func main() {
	// Database initialization
	db, err := models.InitDB()
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	// Auto migration
	db.AutoMigrate(&models.Project{}, &models.Supplier{}, &models.Material{}, &models.Equipment{})

	// Fiber application
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

	// Middleware
	app.Use(logger.New())

	corsOrigins := os.Getenv("CORS_ORIGINS")
	if corsOrigins == "" {
		corsOrigins = "http://localhost:3000,http://127.0.0.1:3000"
	}

	app.Use(cors.New(cors.Config{
		AllowOrigins:     corsOrigins,
		AllowHeaders:     "Origin, Content-Type, Accept, Authorization",
		AllowMethods:     "GET, POST, PUT, DELETE, OPTIONS",
		AllowCredentials: true,
	}))

	// Reorder notifications go out over SMTP
	smtpAddr := os.Getenv("SMTP_ADDR")
	if smtpAddr == "" {
		smtpAddr = "localhost:25"
	}
	smtpFrom := os.Getenv("SMTP_FROM")
	if smtpFrom == "" {
		smtpFrom = "inventory@trackpro.local"
	}
	notifier := services.NewSMTPNotifier(smtpAddr, smtpFrom)

	// Default look-ahead for resupply alerts
	windowDays := 7
	if raw := os.Getenv("RESUPPLY_WINDOW_DAYS"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 0 {
			log.Fatalf("invalid RESUPPLY_WINDOW_DAYS: %q", raw)
		}
		windowDays = parsed
	}

	// Controllers
	materialController := controllers.NewMaterialController(db)
	equipmentController := controllers.NewEquipmentController(db)
	supplierController := controllers.NewSupplierController(db)
	projectController := controllers.NewProjectController(db)
	inventoryController := controllers.NewInventoryController(db, notifier, windowDays)

	// Routes
	routes.SetupMaterialRoutes(app, materialController)
	routes.SetupEquipmentRoutes(app, equipmentController)
	routes.SetupSupplierRoutes(app, supplierController)
	routes.SetupProjectRoutes(app, projectController)
	routes.SetupInventoryRoutes(app, inventoryController)

	// Health check endpoint
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status":    "ok",
			"message":   "TrackPro Inventory Service is running",
			"timestamp": time.Now().Unix(),
		})
	})

	// Server startup
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	log.Printf("Server starting on port %s", port)
	log.Fatal(app.Listen(":" + port))
}
