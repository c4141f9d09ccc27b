package services

import (
	"log"
	"sync"
	"time"

	"github.com/WajdiRaouafi/TrackPro-sub001/models"
)

// ReorderPayload carries everything a supplier needs to act on a reorder.
type ReorderPayload struct {
	ItemName         string     `json:"item_name"`
	Category         string     `json:"category"`
	Stock            int        `json:"stock"`
	Threshold        int        `json:"threshold"`
	UnitCost         float64    `json:"unit_cost"`
	NextResupplyDate *time.Time `json:"next_resupply_date"`
	ProjectName      string     `json:"project_name"`
}

// Notifier delivers a reorder message to a supplier contact. Transport
// failures are reported as errors, never panics.
type Notifier interface {
	Send(contactEmail string, payload ReorderPayload) error
}

// ReorderResult summarizes one reorder pass.
type ReorderResult struct {
	OrdersSent int `json:"orders_sent"`
}

// ReorderService runs reorder passes over materials pending an order.
type ReorderService struct {
	store    ItemStore
	notifier Notifier
	mu       sync.Mutex
}

// NewReorderService creates a new reorder service.
func NewReorderService(store ItemStore, notifier Notifier) *ReorderService {
	return &ReorderService{store: store, notifier: notifier}
}

// RunReorderPass evaluates every material still pending an order and
// notifies its supplier when stock is in alert. A material is flagged as
// sent only after delivery succeeds, so a failed send stays eligible for
// the next pass and a delivered one is never re-notified within the same
// shortage episode. Item-level failures are logged and skipped; the pass
// itself only fails when the candidate list cannot be read.
//
// At most one pass runs at a time: a trigger while another pass is running
// returns ErrPassInProgress.
func (s *ReorderService) RunReorderPass(now time.Time) (ReorderResult, error) {
	if !s.mu.TryLock() {
		return ReorderResult{}, ErrPassInProgress
	}
	defer s.mu.Unlock()

	materials, err := s.store.ListMaterialsPendingOrder()
	if err != nil {
		return ReorderResult{}, err
	}

	log.Printf("reorder pass started at %s, %d candidates", now.UTC().Format(time.RFC3339), len(materials))

	sent := 0
	for _, material := range materials {
		alert := EvaluateStock(material.Stock, material.Threshold)
		if !alert.InAlert {
			continue
		}

		email := supplierContact(material)
		if email == "" {
			// Data-quality gap, not a pass failure
			log.Printf("material %d (%s) has no supplier contact, skipping reorder", material.ID, material.Name)
			continue
		}

		payload := ReorderPayload{
			ItemName:         material.Name,
			Category:         material.Category,
			Stock:            material.Stock,
			Threshold:        material.Threshold,
			UnitCost:         material.UnitCost,
			NextResupplyDate: material.NextResupplyDate,
			ProjectName:      projectName(material),
		}

		if err := s.notifier.Send(email, payload); err != nil {
			// Flag untouched: the material stays eligible next pass
			log.Printf("reorder notification failed for material %d to %s: %v", material.ID, email, err)
			continue
		}

		if err := s.store.MarkOrderSent(material.ID); err != nil {
			log.Printf("failed to persist order flag for material %d: %v", material.ID, err)
			continue
		}

		sent++
	}

	return ReorderResult{OrdersSent: sent}, nil
}

func supplierContact(m models.Material) string {
	if m.Supplier == nil {
		return ""
	}
	return m.Supplier.ContactEmail
}

func projectName(m models.Material) string {
	if m.Project == nil {
		return ""
	}
	return m.Project.Name
}
