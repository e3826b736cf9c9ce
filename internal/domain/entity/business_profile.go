package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// BusinessProfile holds the rental business details printed on bills and the
// fallback daily rate used when a plate size has no configured rate.
// A single row is expected; the seed creates it.
type BusinessProfile struct {
	ID                uuid.UUID      `gorm:"type:uuid;primary_key" json:"id"`
	Name              string         `gorm:"size:255;not null" json:"name"`
	Site              string         `gorm:"size:255" json:"site"`
	Mobile            string         `gorm:"size:50" json:"mobile"`
	Address           string         `gorm:"type:text" json:"address"`
	DefaultRatePerDay float64        `gorm:"type:decimal(15,2);default:0" json:"default_rate_per_day"`
	CreatedAt         time.Time      `json:"created_at"`
	UpdatedAt         time.Time      `json:"updated_at"`
	DeletedAt         gorm.DeletedAt `gorm:"index" json:"-"`
}

// BeforeCreate generates a UUID before creating a new profile
func (p *BusinessProfile) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the BusinessProfile model
func (BusinessProfile) TableName() string {
	return "business_profiles"
}
