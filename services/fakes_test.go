package services

import (
	"time"

	"github.com/WajdiRaouafi/TrackPro-sub001/models"

	"gorm.io/gorm"
)

// fakeStore is an in-memory ItemStore for engine tests.
type fakeStore struct {
	materials []models.Material
	records   []InventoryRecord
	listErr   error
	markErr   map[uint]error
	marked    []uint
}

func (f *fakeStore) ListMaterialsPendingOrder() ([]models.Material, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	var pending []models.Material
	for _, m := range f.materials {
		if !m.OrderSent {
			pending = append(pending, m)
		}
	}
	return pending, nil
}

func (f *fakeStore) ListByResupplyWindow(today time.Time, windowDays int) ([]InventoryRecord, error) {
	var included []InventoryRecord
	for _, r := range f.records {
		if InResupplyWindow(today, windowDays, r.NextResupplyDate).Included {
			included = append(included, r)
		}
	}
	SortByResupplyDate(included)
	return included, nil
}

func (f *fakeStore) MarkOrderSent(itemID uint) error {
	if err := f.markErr[itemID]; err != nil {
		return err
	}
	for i := range f.materials {
		if f.materials[i].ID == itemID {
			f.materials[i].OrderSent = true
			f.marked = append(f.marked, itemID)
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

func (f *fakeStore) ListAll() ([]InventoryRecord, error) {
	return f.records, nil
}

// sentMail records one fake notifier delivery.
type sentMail struct {
	email   string
	payload ReorderPayload
}

// fakeNotifier is a Notifier that fails for configured addresses.
type fakeNotifier struct {
	failFor map[string]error
	sent    []sentMail
	entered chan struct{} // when set, Send signals that it was reached
	block   chan struct{} // when set, Send waits until the channel closes
}

func (f *fakeNotifier) Send(contactEmail string, payload ReorderPayload) error {
	if f.entered != nil {
		f.entered <- struct{}{}
	}
	if f.block != nil {
		<-f.block
	}
	if err := f.failFor[contactEmail]; err != nil {
		return err
	}
	f.sent = append(f.sent, sentMail{email: contactEmail, payload: payload})
	return nil
}
