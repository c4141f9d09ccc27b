package models

import (
	"time"

	"gorm.io/gorm"
)

// Material represents a consumable material tracked against a project.
type Material struct {
	ID               uint       `json:"id" gorm:"primaryKey"`
	Name             string     `json:"name" gorm:"not null;size:255"`
	Category         string     `json:"category" gorm:"default:''"`
	Stock            int        `json:"stock" gorm:"not null;default:0"`
	Threshold        int        `json:"threshold" gorm:"not null;default:0"`
	UnitCost         float64    `json:"unit_cost" gorm:"not null;default:0"`
	NextResupplyDate *time.Time `json:"next_resupply_date"`
	// OrderSent is true only after a reorder notification was delivered
	// for the current shortage episode.
	OrderSent bool `json:"order_sent" gorm:"default:false"`

	// Weak references, resolved on demand
	SupplierID *uint     `json:"supplier_id"`
	Supplier   *Supplier `json:"supplier,omitempty" gorm:"foreignKey:SupplierID"`
	ProjectID  *uint     `json:"project_id"`
	Project    *Project  `json:"project,omitempty" gorm:"foreignKey:ProjectID"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// BeforeCreate sets creation timestamps.
func (m *Material) BeforeCreate(tx *gorm.DB) error {
	m.CreatedAt = time.Now()
	m.UpdatedAt = time.Now()
	return nil
}

// BeforeSave updates the modification timestamp and closes the shortage
// episode: replenishing stock to the threshold or above re-arms alerts.
func (m *Material) BeforeSave(tx *gorm.DB) error {
	m.UpdatedAt = time.Now()
	if m.Stock >= m.Threshold {
		m.OrderSent = false
	}
	return nil
}
