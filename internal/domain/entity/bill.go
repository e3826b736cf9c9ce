package entity

import (
	"time"

	"github.com/centerhire/centerhire-api/internal/domain/enum"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Bill represents a finalized rental bill for a client
type Bill struct {
	ID       uuid.UUID  `gorm:"type:uuid;primary_key" json:"id"`
	ClientID uuid.UUID  `gorm:"type:uuid;not null;index" json:"client_id"`
	BillNo   string     `gorm:"size:100;unique;not null" json:"bill_no"`
	BillDate time.Time  `gorm:"type:date;not null;index" json:"bill_date"`

	// Snapshot of client display fields at billing time
	ClientName   string `gorm:"size:255" json:"client_name"`
	ClientSite   string `gorm:"size:255" json:"client_site"`
	ClientMobile string `gorm:"size:50" json:"client_mobile"`

	SubTotal          float64 `gorm:"type:decimal(15,2);default:0" json:"sub_total"`
	ExtraChargesTotal float64 `gorm:"type:decimal(15,2);default:0" json:"extra_charges_total"`
	DiscountsTotal    float64 `gorm:"type:decimal(15,2);default:0" json:"discounts_total"`
	GrandTotal        float64 `gorm:"type:decimal(15,2);default:0" json:"grand_total"`
	TotalPlates       int     `gorm:"default:0" json:"total_plates"`
	TotalDays         int     `gorm:"default:0" json:"total_days"`

	// Sequential is false when the bill number came from the degraded
	// clock-based fallback instead of the normal counter.
	Sequential bool            `gorm:"default:true" json:"sequential"`
	Status     enum.BillStatus `gorm:"default:0" json:"status"`

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	// Relationships
	Client  *Client      `gorm:"foreignKey:ClientID" json:"client,omitempty"`
	Items   []BillItem   `gorm:"foreignKey:BillID" json:"items,omitempty"`
	Charges []BillCharge `gorm:"foreignKey:BillID" json:"charges,omitempty"`
}

// BeforeCreate generates a UUID before creating a new bill
func (b *Bill) BeforeCreate(tx *gorm.DB) error {
	if b.ID == uuid.Nil {
		b.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Bill model
func (Bill) TableName() string {
	return "bills"
}

// BillItem is one reconciled challan line persisted on a bill
type BillItem struct {
	ID     uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	BillID uuid.UUID `gorm:"type:uuid;not null;index" json:"bill_id"`

	ChallanNo   string     `gorm:"size:100;not null" json:"challan_no"`
	ChallanDate time.Time  `gorm:"type:date;not null" json:"challan_date"`
	ReturnNo    string     `gorm:"size:100" json:"return_no"`
	ReturnDate  time.Time  `gorm:"type:date" json:"return_date"`
	PlateSize   string     `gorm:"size:50;not null" json:"plate_size"`

	IssuedQuantity      int     `gorm:"not null" json:"issued_quantity"`
	ReturnedQuantity    int     `gorm:"default:0" json:"returned_quantity"`
	OutstandingQuantity int     `gorm:"default:0" json:"outstanding_quantity"`
	DaysUsed            int     `gorm:"default:0" json:"days_used"`
	RatePerDay          float64 `gorm:"type:decimal(15,2);default:0" json:"rate_per_day"`
	ServiceCharge       float64 `gorm:"type:decimal(15,2);default:0" json:"service_charge"`
	IsPartialReturn     bool    `gorm:"default:false" json:"is_partial_return"`
	IsFullyReturned     bool    `gorm:"default:false" json:"is_fully_returned"`

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	// Relationships
	Bill Bill `gorm:"foreignKey:BillID" json:"-"`
}

// BeforeCreate generates a UUID before creating a new bill item
func (i *BillItem) BeforeCreate(tx *gorm.DB) error {
	if i.ID == uuid.Nil {
		i.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the BillItem model
func (BillItem) TableName() string {
	return "bill_items"
}

// BillCharge is an extra charge or discount row on a bill
type BillCharge struct {
	ID          uuid.UUID      `gorm:"type:uuid;primary_key" json:"id"`
	BillID      uuid.UUID      `gorm:"type:uuid;not null;index" json:"bill_id"`
	Description string         `gorm:"size:255;not null" json:"description"`
	Amount      float64        `gorm:"type:decimal(15,2);not null" json:"amount"`
	IsDiscount  bool           `gorm:"default:false" json:"is_discount"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`

	// Relationships
	Bill Bill `gorm:"foreignKey:BillID" json:"-"`
}

// BeforeCreate generates a UUID before creating a new bill charge
func (c *BillCharge) BeforeCreate(tx *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the BillCharge model
func (BillCharge) TableName() string {
	return "bill_charges"
}
