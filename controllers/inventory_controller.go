package controllers

import (
	"errors"
	"time"

	"github.com/WajdiRaouafi/TrackPro-sub001/services"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// InventoryController exposes the monitoring and reorder engine: alert
// listings, statistics and the reorder pass trigger.
type InventoryController struct {
	store      services.ItemStore
	alerts     *services.AlertService
	reorder    *services.ReorderService
	windowDays int
	now        func() time.Time
}

// NewInventoryController wires the engine services over the database.
func NewInventoryController(db *gorm.DB, notifier services.Notifier, windowDays int) *InventoryController {
	store := services.NewGormItemStore(db)
	return &InventoryController{
		store:      store,
		alerts:     services.NewAlertService(store),
		reorder:    services.NewReorderService(store, notifier),
		windowDays: windowDays,
		now:        time.Now,
	}
}

// GetAlerts returns current low-stock alerts and upcoming deliveries.
func (ic *InventoryController) GetAlerts(c *fiber.Ctx) error {
	windowDays := c.QueryInt("window_days", ic.windowDays)

	report, err := ic.alerts.GetAlerts(windowDays)
	if errors.Is(err, services.ErrNegativeWindow) {
		return badRequest(c, err.Error())
	}
	if err != nil {
		return internalError(c, "failed to build alerts report")
	}
	return c.JSON(report)
}

// GetStatistics returns the inventory rollup for the dashboard.
func (ic *InventoryController) GetStatistics(c *fiber.Ctx) error {
	windowDays := c.QueryInt("window_days", ic.windowDays)
	if windowDays < 0 {
		return badRequest(c, services.ErrNegativeWindow.Error())
	}

	items, err := ic.store.ListAll()
	if err != nil {
		return internalError(c, "failed to load inventory")
	}

	today := services.ToUTCDate(ic.now())
	return c.JSON(services.AggregateStatistics(items, today, windowDays))
}

// RunReorderPass triggers one reorder pass. A pass already in flight is
// rejected with 409, never run concurrently.
func (ic *InventoryController) RunReorderPass(c *fiber.Ctx) error {
	result, err := ic.reorder.RunReorderPass(ic.now())
	if errors.Is(err, services.ErrPassInProgress) {
		return conflict(c, err.Error())
	}
	if err != nil {
		return internalError(c, "reorder pass failed")
	}
	return c.JSON(result)
}
