package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ReturnChallan represents a document recording plates given back by a client
type ReturnChallan struct {
	ID        uuid.UUID      `gorm:"type:uuid;primary_key" json:"id"`
	ClientID  uuid.UUID      `gorm:"type:uuid;not null;index" json:"client_id"`
	ReturnNo  string         `gorm:"size:100;unique;not null" json:"return_no"`
	Date      time.Time      `gorm:"type:date;not null;index" json:"date"`
	Note      *string        `gorm:"type:text" json:"note,omitempty"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	// Relationships
	Client *Client      `gorm:"foreignKey:ClientID" json:"client,omitempty"`
	Items  []ReturnItem `gorm:"foreignKey:ReturnChallanID" json:"items,omitempty"`
}

// BeforeCreate generates a UUID before creating a new return challan
func (r *ReturnChallan) BeforeCreate(tx *gorm.DB) error {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the ReturnChallan model
func (ReturnChallan) TableName() string {
	return "return_challans"
}

// ReturnItem represents one plate-size line on a return challan
type ReturnItem struct {
	ID              uuid.UUID      `gorm:"type:uuid;primary_key" json:"id"`
	ReturnChallanID uuid.UUID      `gorm:"type:uuid;not null;index" json:"return_challan_id"`
	PlateSize       string         `gorm:"size:50;not null;index" json:"plate_size"`
	Quantity        int            `gorm:"not null" json:"quantity"`
	BorrowedStock   int            `gorm:"default:0" json:"borrowed_stock"`
	CreatedAt       time.Time      `json:"created_at"`
	UpdatedAt       time.Time      `json:"updated_at"`
	DeletedAt       gorm.DeletedAt `gorm:"index" json:"-"`

	// Relationships
	ReturnChallan ReturnChallan `gorm:"foreignKey:ReturnChallanID" json:"-"`
}

// ReturnedQuantity returns the total quantity returned on this line,
// own stock plus borrowed stock coming back.
func (i ReturnItem) ReturnedQuantity() int {
	return i.Quantity + i.BorrowedStock
}

// BeforeCreate generates a UUID before creating a new return item
func (i *ReturnItem) BeforeCreate(tx *gorm.DB) error {
	if i.ID == uuid.Nil {
		i.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the ReturnItem model
func (ReturnItem) TableName() string {
	return "return_items"
}
