package models

import (
	"time"

	"gorm.io/gorm"
)

// Equipment represents a rentable piece of equipment assigned to a project.
type Equipment struct {
	ID               uint       `json:"id" gorm:"primaryKey"`
	Name             string     `json:"name" gorm:"not null;size:255"`
	Category         string     `json:"category" gorm:"default:''"`
	Stock            int        `json:"stock" gorm:"not null;default:0"`
	Threshold        int        `json:"threshold" gorm:"not null;default:0"`
	DailyCost        float64    `json:"daily_cost" gorm:"not null;default:0"`
	NextResupplyDate *time.Time `json:"next_resupply_date"`
	OrderSent        bool       `json:"order_sent" gorm:"default:false"`

	ProjectID *uint    `json:"project_id"`
	Project   *Project `json:"project,omitempty" gorm:"foreignKey:ProjectID"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// BeforeCreate sets creation timestamps.
func (e *Equipment) BeforeCreate(tx *gorm.DB) error {
	e.CreatedAt = time.Now()
	e.UpdatedAt = time.Now()
	return nil
}

// BeforeSave updates the modification timestamp and re-arms alerts once
// stock is back at the threshold or above.
func (e *Equipment) BeforeSave(tx *gorm.DB) error {
	e.UpdatedAt = time.Now()
	if e.Stock >= e.Threshold {
		e.OrderSent = false
	}
	return nil
}
