package main

import (
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/WajdiRaouafi/TrackPro-sub001/models"
	"github.com/WajdiRaouafi/TrackPro-sub001/services"

	"github.com/stretchr/testify/assert"
)

func TestGetAlerts(t *testing.T) {
	db := setupTestDB()
	app := setupTestApp(db, &stubNotifier{})

	supplierID := createTestSupplier(db, "acme@example.com")
	createTestMaterial(db, "Cement", 2, 10, &supplierID, nil)
	createTestMaterial(db, "Gravel", 50, 10, &supplierID, nil)

	later := createTestMaterial(db, "Rebar", 50, 10, &supplierID, nil)
	db.Model(&later).Update("next_resupply_date", resupplyDate(5))
	sooner := models.Equipment{Name: "Crane", Stock: 1, Threshold: 1, DailyCost: 300, NextResupplyDate: resupplyDate(2)}
	db.Create(&sooner)

	req := httptest.NewRequest("GET", "/alerts?window_days=7", nil)
	resp, err := app.Test(req)
	assert.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)

	var report services.AlertsReport
	json.NewDecoder(resp.Body).Decode(&report)

	// Cement (critical) and the crane (critical) are in alert, Gravel is not
	assert.Len(t, report.LowStock, 2)

	// Upcoming deliveries sorted soonest first
	if assert.Len(t, report.NearResupply, 2) {
		assert.Equal(t, "Crane", report.NearResupply[0].Item.Name)
		assert.Equal(t, "Rebar", report.NearResupply[1].Item.Name)
		if assert.NotNil(t, report.NearResupply[0].DaysRemaining) {
			assert.Equal(t, 2, *report.NearResupply[0].DaysRemaining)
		}
	}

	assert.Equal(t, 7, report.Meta.WindowDays)
	assert.False(t, report.Meta.GeneratedAt.IsZero())
}

func TestGetAlertsRejectsNegativeWindow(t *testing.T) {
	db := setupTestDB()
	app := setupTestApp(db, &stubNotifier{})

	req := httptest.NewRequest("GET", "/alerts?window_days=-1", nil)
	resp, err := app.Test(req)
	assert.NoError(t, err)
	assert.Equal(t, 400, resp.StatusCode)

	req = httptest.NewRequest("GET", "/statistics?window_days=-1", nil)
	resp, err = app.Test(req)
	assert.NoError(t, err)
	assert.Equal(t, 400, resp.StatusCode)
}

func TestGetStatistics(t *testing.T) {
	db := setupTestDB()
	app := setupTestApp(db, &stubNotifier{})

	supplierID := createTestSupplier(db, "acme@example.com")

	outOfStock := createTestMaterial(db, "Cement", 0, 10, &supplierID, nil)
	db.Model(&models.Material{}).Where("id = ?", outOfStock.ID).UpdateColumn("order_sent", true)
	createTestMaterial(db, "Gravel", 4, 10, &supplierID, nil) // critical

	healthy := models.Equipment{Name: "Crane", Stock: 2, Threshold: 1, DailyCost: 300, NextResupplyDate: resupplyDate(3)}
	db.Create(&healthy)

	req := httptest.NewRequest("GET", "/statistics?window_days=7", nil)
	resp, err := app.Test(req)
	assert.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)

	var stats services.Statistics
	json.NewDecoder(resp.Body).Decode(&stats)

	assert.Equal(t, 3, stats.Total)
	assert.Equal(t, 1, stats.OutOfStock)
	assert.Equal(t, 1, stats.BelowThreshold)
	assert.Equal(t, 1, stats.OrdersSentCount)
	assert.Equal(t, 1, stats.ResupplyWindowCount)

	// 0*10 + 4*10 + 2*300
	assert.Equal(t, 640.0, stats.StockValue)
}
