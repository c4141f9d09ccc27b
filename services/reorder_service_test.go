package services

import (
	"errors"
	"testing"
	"time"

	"github.com/WajdiRaouafi/TrackPro-sub001/models"

	"github.com/stretchr/testify/assert"
)

func shortageMaterial(id uint, email string) models.Material {
	m := models.Material{
		ID:        id,
		Name:      "Cement",
		Category:  "construction",
		Stock:     2,
		Threshold: 5,
		UnitCost:  12.5,
	}
	if email != "" {
		supplierID := id
		m.SupplierID = &supplierID
		m.Supplier = &models.Supplier{ID: supplierID, Name: "ACME", ContactEmail: email}
	}
	return m
}

func TestRunReorderPassSendsOncePerEpisode(t *testing.T) {
	store := &fakeStore{materials: []models.Material{shortageMaterial(1, "acme@example.com")}}
	notifier := &fakeNotifier{}
	service := NewReorderService(store, notifier)

	result, err := service.RunReorderPass(time.Now())
	assert.NoError(t, err)
	assert.Equal(t, 1, result.OrdersSent)
	assert.Len(t, notifier.sent, 1)
	assert.Equal(t, "acme@example.com", notifier.sent[0].email)
	assert.Equal(t, "Cement", notifier.sent[0].payload.ItemName)

	// Second pass finds the flag set and skips the item entirely
	result, err = service.RunReorderPass(time.Now())
	assert.NoError(t, err)
	assert.Equal(t, 0, result.OrdersSent)
	assert.Len(t, notifier.sent, 1)
}

func TestRunReorderPassPartialFailure(t *testing.T) {
	store := &fakeStore{materials: []models.Material{
		shortageMaterial(1, "broken@example.com"),
		shortageMaterial(2, "ok@example.com"),
	}}
	notifier := &fakeNotifier{failFor: map[string]error{
		"broken@example.com": errors.New("smtp timeout"),
	}}
	service := NewReorderService(store, notifier)

	result, err := service.RunReorderPass(time.Now())
	assert.NoError(t, err)
	assert.Equal(t, 1, result.OrdersSent)

	// Failed item stays eligible, delivered one is flagged
	assert.False(t, store.materials[0].OrderSent)
	assert.True(t, store.materials[1].OrderSent)

	// Next pass retries only the failed item
	notifier.failFor = nil
	result, err = service.RunReorderPass(time.Now())
	assert.NoError(t, err)
	assert.Equal(t, 1, result.OrdersSent)
	assert.True(t, store.materials[0].OrderSent)
}

func TestRunReorderPassSkipsHealthyItems(t *testing.T) {
	healthy := shortageMaterial(1, "acme@example.com")
	healthy.Stock = 50
	store := &fakeStore{materials: []models.Material{healthy}}
	notifier := &fakeNotifier{}
	service := NewReorderService(store, notifier)

	result, err := service.RunReorderPass(time.Now())
	assert.NoError(t, err)
	assert.Equal(t, 0, result.OrdersSent)
	assert.Empty(t, notifier.sent)
}

func TestRunReorderPassSkipsMissingContact(t *testing.T) {
	store := &fakeStore{materials: []models.Material{
		shortageMaterial(1, ""),
		shortageMaterial(2, "ok@example.com"),
	}}
	notifier := &fakeNotifier{}
	service := NewReorderService(store, notifier)

	result, err := service.RunReorderPass(time.Now())
	assert.NoError(t, err)
	assert.Equal(t, 1, result.OrdersSent)
	assert.Len(t, notifier.sent, 1)
	assert.False(t, store.materials[0].OrderSent)
}

func TestRunReorderPassStoreFailureIsolation(t *testing.T) {
	store := &fakeStore{
		materials: []models.Material{
			shortageMaterial(1, "first@example.com"),
			shortageMaterial(2, "second@example.com"),
		},
		markErr: map[uint]error{1: errors.New("disk full")},
	}
	notifier := &fakeNotifier{}
	service := NewReorderService(store, notifier)

	// Persisting the first flag fails, the pass still reaches the second
	result, err := service.RunReorderPass(time.Now())
	assert.NoError(t, err)
	assert.Equal(t, 1, result.OrdersSent)
	assert.Len(t, notifier.sent, 2)
	assert.Equal(t, []uint{2}, store.marked)
}

func TestRunReorderPassListFailure(t *testing.T) {
	store := &fakeStore{listErr: errors.New("connection refused")}
	service := NewReorderService(store, &fakeNotifier{})

	_, err := service.RunReorderPass(time.Now())
	assert.Error(t, err)
}

func TestRunReorderPassSingleFlight(t *testing.T) {
	block := make(chan struct{})
	entered := make(chan struct{}, 1)
	store := &fakeStore{materials: []models.Material{shortageMaterial(1, "acme@example.com")}}
	notifier := &fakeNotifier{block: block, entered: entered}
	service := NewReorderService(store, notifier)

	done := make(chan ReorderResult, 1)
	go func() {
		result, _ := service.RunReorderPass(time.Now())
		done <- result
	}()

	// Wait for the first pass to reach the notifier, then trigger again
	<-entered
	_, err := service.RunReorderPass(time.Now())
	assert.ErrorIs(t, err, ErrPassInProgress)

	close(block)
	result := <-done
	assert.Equal(t, 1, result.OrdersSent)

	// The lock is released once the pass finishes
	result, err = service.RunReorderPass(time.Now())
	assert.NoError(t, err)
	assert.Equal(t, 0, result.OrdersSent)
}
