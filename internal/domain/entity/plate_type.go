package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// PlateType represents a rentable centering-plate size and its daily rate
type PlateType struct {
	ID         uuid.UUID      `gorm:"type:uuid;primary_key" json:"id"`
	Size       string         `gorm:"size:50;unique;not null" json:"size"`
	RatePerDay float64        `gorm:"type:decimal(15,2);not null" json:"rate_per_day"`
	TotalStock int            `gorm:"default:0" json:"total_stock"`
	CreatedAt  time.Time      `json:"created_at"`
	UpdatedAt  time.Time      `json:"updated_at"`
	DeletedAt  gorm.DeletedAt `gorm:"index" json:"-"`
}

// BeforeCreate generates a UUID before creating a new plate type
func (p *PlateType) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the PlateType model
func (PlateType) TableName() string {
	return "plate_types"
}
