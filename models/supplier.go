package models

import (
	"time"

	"gorm.io/gorm"
)

// Supplier represents a supplier record with its reorder contact.
type Supplier struct {
	ID           uint      `json:"id" gorm:"primaryKey"`
	Name         string    `json:"name" gorm:"not null;size:255"`
	ContactEmail string    `json:"contact_email" gorm:"uniqueIndex;not null"`
	Phone        string    `json:"phone" gorm:"default:''"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// BeforeCreate sets creation timestamps.
func (s *Supplier) BeforeCreate(tx *gorm.DB) error {
	s.CreatedAt = time.Now()
	s.UpdatedAt = time.Now()
	return nil
}

// BeforeUpdate updates the modification timestamp.
func (s *Supplier) BeforeUpdate(tx *gorm.DB) error {
	s.UpdatedAt = time.Now()
	return nil
}
