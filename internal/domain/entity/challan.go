package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Challan represents an issuance document recording plates lent to a client
type Challan struct {
	ID        uuid.UUID      `gorm:"type:uuid;primary_key" json:"id"`
	ClientID  uuid.UUID      `gorm:"type:uuid;not null;index" json:"client_id"`
	ChallanNo string         `gorm:"size:100;unique;not null" json:"challan_no"`
	Date      time.Time      `gorm:"type:date;not null;index" json:"date"`
	VehicleNo *string        `gorm:"size:50" json:"vehicle_no,omitempty"`
	Note      *string        `gorm:"type:text" json:"note,omitempty"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	// Relationships
	Client *Client       `gorm:"foreignKey:ClientID" json:"client,omitempty"`
	Items  []ChallanItem `gorm:"foreignKey:ChallanID" json:"items,omitempty"`
}

// BeforeCreate generates a UUID before creating a new challan
func (c *Challan) BeforeCreate(tx *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Challan model
func (Challan) TableName() string {
	return "challans"
}

// ChallanItem represents one plate-size line on a challan
type ChallanItem struct {
	ID            uuid.UUID      `gorm:"type:uuid;primary_key" json:"id"`
	ChallanID     uuid.UUID      `gorm:"type:uuid;not null;index" json:"challan_id"`
	PlateSize     string         `gorm:"size:50;not null;index" json:"plate_size"`
	Quantity      int            `gorm:"not null" json:"quantity"`
	BorrowedStock int            `gorm:"default:0" json:"borrowed_stock"`
	CreatedAt     time.Time      `json:"created_at"`
	UpdatedAt     time.Time      `json:"updated_at"`
	DeletedAt     gorm.DeletedAt `gorm:"index" json:"-"`

	// Relationships
	Challan Challan `gorm:"foreignKey:ChallanID" json:"-"`
}

// IssuedQuantity returns the total quantity issued on this line,
// own stock plus stock borrowed from a third party.
func (i ChallanItem) IssuedQuantity() int {
	return i.Quantity + i.BorrowedStock
}

// BeforeCreate generates a UUID before creating a new challan item
func (i *ChallanItem) BeforeCreate(tx *gorm.DB) error {
	if i.ID == uuid.Nil {
		i.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the ChallanItem model
func (ChallanItem) TableName() string {
	return "challan_items"
}
