package entity

import (
	"time"

	"github.com/google/uuid"
)

// ClientTransactions bundles everything the billing engine needs for one
// client: all issuance challans and all return challans in the requested
// window, each ordered by date ascending as loaded from the store.
type ClientTransactions struct {
	Challans []Challan       `json:"challans"`
	Returns  []ReturnChallan `json:"returns"`
}

// RateCard maps plate sizes to per-day rates with a fallback default.
// It is built fresh for every calculation run and never mutated.
type RateCard struct {
	Rates       map[string]float64 `json:"rates"`
	DefaultRate float64            `json:"default_rate"`
}

// RateFor returns the configured rate for a plate size, or the default
// rate when the size is not in the card.
func (rc RateCard) RateFor(plateSize string) float64 {
	if rate, ok := rc.Rates[plateSize]; ok {
		return rate
	}
	return rc.DefaultRate
}

// ExtraCharge is a caller-supplied additive charge on a bill
type ExtraCharge struct {
	Description string  `json:"description"`
	Amount      float64 `json:"amount"`
}

// Discount is a caller-supplied subtractive amount on a bill
type Discount struct {
	Description string  `json:"description"`
	Amount      float64 `json:"amount"`
}

// MatchedChallan is one issued challan line reconciled against the pooled
// returns of its plate size. Computed fresh on every billing run.
type MatchedChallan struct {
	ChallanNo   string    `json:"challan_no"`
	ChallanDate time.Time `json:"challan_date"`
	ReturnNo    string    `json:"return_no,omitempty"`
	ReturnDate  time.Time `json:"return_date"`
	PlateSize   string    `json:"plate_size"`

	IssuedQuantity      int     `json:"issued_quantity"`
	ReturnedQuantity    int     `json:"returned_quantity"`
	OutstandingQuantity int     `json:"outstanding_quantity"`
	DaysUsed            int     `json:"days_used"`
	RatePerDay          float64 `json:"rate_per_day"`
	ServiceCharge       float64 `json:"service_charge"`
	IsPartialReturn     bool    `json:"is_partial_return"`
	IsFullyReturned     bool    `json:"is_fully_returned"`
}

// BillCalculation is the aggregate result of one billing run. It is handed
// to the persistence and rendering layers and never stored as-is.
type BillCalculation struct {
	ClientID uuid.UUID        `json:"client_id"`
	BillDate time.Time        `json:"bill_date"`
	Lines    []MatchedChallan `json:"lines"`

	SubTotal          float64 `json:"sub_total"`
	ExtraChargesTotal float64 `json:"extra_charges_total"`
	DiscountsTotal    float64 `json:"discounts_total"`
	GrandTotal        float64 `json:"grand_total"`
	TotalPlates       int     `json:"total_plates"`
	TotalDays         int     `json:"total_days"`

	ExtraCharges []ExtraCharge `json:"extra_charges,omitempty"`
	Discounts    []Discount    `json:"discounts,omitempty"`
}

// BillNumber is the result of bill numbering. Sequential is false when the
// number came from the clock-based fallback after a failed lookup, so
// consumers can tell degraded numbering apart from the normal counter.
type BillNumber struct {
	Value      string `json:"value"`
	Sequential bool   `json:"sequential"`
	Seq        int    `json:"seq,omitempty"`
}
