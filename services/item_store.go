package services

import (
	"time"

	"github.com/WajdiRaouafi/TrackPro-sub001/models"

	"gorm.io/gorm"
)

// Inventory item kinds.
const (
	KindMaterial  = "material"
	KindEquipment = "equipment"
)

// InventoryRecord is the read-side shape shared by materials and equipment.
// UnitCost carries the daily rental cost for equipment.
type InventoryRecord struct {
	ID               uint       `json:"id"`
	Kind             string     `json:"kind"`
	Name             string     `json:"name"`
	Category         string     `json:"category"`
	Stock            int        `json:"stock"`
	Threshold        int        `json:"threshold"`
	UnitCost         float64    `json:"unit_cost"`
	NextResupplyDate *time.Time `json:"next_resupply_date"`
	OrderSent        bool       `json:"order_sent"`
}

// ItemStore is the persistence surface the engine consumes.
type ItemStore interface {
	// ListMaterialsPendingOrder returns materials with OrderSent=false,
	// with supplier and project references resolved.
	ListMaterialsPendingOrder() ([]models.Material, error)

	// ListByResupplyWindow returns items whose next resupply date falls in
	// [today, today+windowDays], sorted by date ascending.
	ListByResupplyWindow(today time.Time, windowDays int) ([]InventoryRecord, error)

	// MarkOrderSent flags a material as notified for the current shortage
	// episode. Returns gorm.ErrRecordNotFound for an unknown id.
	MarkOrderSent(itemID uint) error

	// ListAll returns every material and equipment record.
	ListAll() ([]InventoryRecord, error)
}

// GormItemStore implements ItemStore over a GORM database.
type GormItemStore struct {
	db *gorm.DB
}

// NewGormItemStore creates a new GORM-backed item store.
func NewGormItemStore(db *gorm.DB) *GormItemStore {
	return &GormItemStore{db: db}
}

// ListMaterialsPendingOrder returns reorder candidates with references resolved.
func (s *GormItemStore) ListMaterialsPendingOrder() ([]models.Material, error) {
	var materials []models.Material
	err := s.db.Preload("Supplier").Preload("Project").
		Where("order_sent = ?", false).
		Order("id ASC").
		Find(&materials).Error
	return materials, err
}

// ListByResupplyWindow returns items with a delivery expected in the window.
func (s *GormItemStore) ListByResupplyWindow(today time.Time, windowDays int) ([]InventoryRecord, error) {
	today = ToUTCDate(today)
	until := today.AddDate(0, 0, windowDays)

	var materials []models.Material
	err := s.db.Where("next_resupply_date IS NOT NULL AND next_resupply_date >= ? AND next_resupply_date <= ?",
		today, until).Find(&materials).Error
	if err != nil {
		return nil, err
	}

	var equipment []models.Equipment
	err = s.db.Where("next_resupply_date IS NOT NULL AND next_resupply_date >= ? AND next_resupply_date <= ?",
		today, until).Find(&equipment).Error
	if err != nil {
		return nil, err
	}

	records := make([]InventoryRecord, 0, len(materials)+len(equipment))
	for _, m := range materials {
		records = append(records, materialRecord(m))
	}
	for _, e := range equipment {
		records = append(records, equipmentRecord(e))
	}
	SortByResupplyDate(records)
	return records, nil
}

// MarkOrderSent persists the sent flag for a material.
func (s *GormItemStore) MarkOrderSent(itemID uint) error {
	// UpdateColumn writes order_sent and nothing else, bypassing the
	// replenishment hook.
	res := s.db.Model(&models.Material{}).
		Where("id = ?", itemID).
		UpdateColumn("order_sent", true)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// ListAll returns every material and equipment record for aggregation.
func (s *GormItemStore) ListAll() ([]InventoryRecord, error) {
	var materials []models.Material
	if err := s.db.Order("id ASC").Find(&materials).Error; err != nil {
		return nil, err
	}

	var equipment []models.Equipment
	if err := s.db.Order("id ASC").Find(&equipment).Error; err != nil {
		return nil, err
	}

	records := make([]InventoryRecord, 0, len(materials)+len(equipment))
	for _, m := range materials {
		records = append(records, materialRecord(m))
	}
	for _, e := range equipment {
		records = append(records, equipmentRecord(e))
	}
	return records, nil
}

func materialRecord(m models.Material) InventoryRecord {
	return InventoryRecord{
		ID:               m.ID,
		Kind:             KindMaterial,
		Name:             m.Name,
		Category:         m.Category,
		Stock:            m.Stock,
		Threshold:        m.Threshold,
		UnitCost:         m.UnitCost,
		NextResupplyDate: m.NextResupplyDate,
		OrderSent:        m.OrderSent,
	}
}

func equipmentRecord(e models.Equipment) InventoryRecord {
	return InventoryRecord{
		ID:               e.ID,
		Kind:             KindEquipment,
		Name:             e.Name,
		Category:         e.Category,
		Stock:            e.Stock,
		Threshold:        e.Threshold,
		UnitCost:         e.DailyCost,
		NextResupplyDate: e.NextResupplyDate,
		OrderSent:        e.OrderSent,
	}
}
