package main

import (
	"encoding/json"
	"errors"
	"net/http/httptest"
	"testing"

	"github.com/WajdiRaouafi/TrackPro-sub001/models"
	"github.com/WajdiRaouafi/TrackPro-sub001/services"

	"github.com/stretchr/testify/assert"
)

func TestReorderPassEndToEnd(t *testing.T) {
	db := setupTestDB()
	notifier := &stubNotifier{}
	app := setupTestApp(db, notifier)

	supplierID := createTestSupplier(db, "acme@example.com")
	projectID := createTestProject(db, "Bridge Renovation")
	shortage := createTestMaterial(db, "Cement", 2, 5, &supplierID, &projectID)
	createTestMaterial(db, "Gravel", 50, 5, &supplierID, &projectID)

	req := httptest.NewRequest("POST", "/reorders/run", nil)
	resp, err := app.Test(req)
	assert.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)

	var result services.ReorderResult
	json.NewDecoder(resp.Body).Decode(&result)
	assert.Equal(t, 1, result.OrdersSent)
	assert.Equal(t, []string{"acme@example.com"}, notifier.sent)

	var reloaded models.Material
	db.First(&reloaded, shortage.ID)
	assert.True(t, reloaded.OrderSent)

	// A second trigger sends nothing: the episode is already covered
	req = httptest.NewRequest("POST", "/reorders/run", nil)
	resp, err = app.Test(req)
	assert.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)

	json.NewDecoder(resp.Body).Decode(&result)
	assert.Equal(t, 0, result.OrdersSent)
	assert.Len(t, notifier.sent, 1)
}

func TestReorderPassPartialFailure(t *testing.T) {
	db := setupTestDB()
	notifier := &stubNotifier{failFor: map[string]error{
		"down@example.com": errors.New("connection refused"),
	}}
	app := setupTestApp(db, notifier)

	downID := createTestSupplier(db, "down@example.com")
	upID := createTestSupplier(db, "up@example.com")
	failing := createTestMaterial(db, "Cement", 2, 5, &downID, nil)
	succeeding := createTestMaterial(db, "Rebar", 1, 5, &upID, nil)

	req := httptest.NewRequest("POST", "/reorders/run", nil)
	resp, err := app.Test(req)
	assert.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)

	var result services.ReorderResult
	json.NewDecoder(resp.Body).Decode(&result)
	assert.Equal(t, 1, result.OrdersSent)

	var reloaded models.Material
	db.First(&reloaded, failing.ID)
	assert.False(t, reloaded.OrderSent)
	reloaded = models.Material{}
	db.First(&reloaded, succeeding.ID)
	assert.True(t, reloaded.OrderSent)

	// Once the supplier is reachable, the next pass picks the item up again
	notifier.failFor = nil
	req = httptest.NewRequest("POST", "/reorders/run", nil)
	resp, err = app.Test(req)
	assert.NoError(t, err)

	json.NewDecoder(resp.Body).Decode(&result)
	assert.Equal(t, 1, result.OrdersSent)

	reloaded = models.Material{}
	db.First(&reloaded, failing.ID)
	assert.True(t, reloaded.OrderSent)
}

func TestReorderPassSkipsMaterialWithoutSupplier(t *testing.T) {
	db := setupTestDB()
	notifier := &stubNotifier{}
	app := setupTestApp(db, notifier)

	orphan := createTestMaterial(db, "Cement", 0, 5, nil, nil)

	req := httptest.NewRequest("POST", "/reorders/run", nil)
	resp, err := app.Test(req)
	assert.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)

	var result services.ReorderResult
	json.NewDecoder(resp.Body).Decode(&result)
	assert.Equal(t, 0, result.OrdersSent)
	assert.Empty(t, notifier.sent)

	// Skipped for data quality, still eligible once a supplier is linked
	var reloaded models.Material
	db.First(&reloaded, orphan.ID)
	assert.False(t, reloaded.OrderSent)
}
