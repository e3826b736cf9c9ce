package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Client represents a rental client (the party plates are issued to)
type Client struct {
	ID        uuid.UUID      `gorm:"type:uuid;primary_key" json:"id"`
	Name      string         `gorm:"size:255;not null" json:"name"`
	Site      *string        `gorm:"size:255" json:"site,omitempty"`
	Mobile    *string        `gorm:"size:50" json:"mobile,omitempty"`
	Address   *string        `gorm:"type:text" json:"address,omitempty"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	// Relationships
	Challans []Challan       `gorm:"foreignKey:ClientID" json:"-"`
	Returns  []ReturnChallan `gorm:"foreignKey:ClientID" json:"-"`
	Bills    []Bill          `gorm:"foreignKey:ClientID" json:"-"`
}

// BeforeCreate generates a UUID before creating a new client
func (c *Client) BeforeCreate(tx *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Client model
func (Client) TableName() string {
	return "clients"
}
