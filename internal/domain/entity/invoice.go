package entity

// InvoiceHeader holds the business header printed at the top of a bill invoice.
type InvoiceHeader struct {
	BusinessName string `json:"business_name"`
	Site         string `json:"site,omitempty"`
	Mobile       string `json:"mobile,omitempty"`
	Address      string `json:"address,omitempty"`
}

// InvoiceLine represents a single reconciled challan line on a printed invoice.
type InvoiceLine struct {
	ChallanNo   string  `json:"challan_no"`
	PlateSize   string  `json:"plate_size"`
	Quantity    int     `json:"quantity"`
	Days        int     `json:"days"`
	RatePerDay  float64 `json:"rate_per_day"`
	Amount      float64 `json:"amount"`
	Outstanding int     `json:"outstanding"`
}

// InvoiceAdjustment is an extra charge or discount line on a printed invoice.
type InvoiceAdjustment struct {
	Description string  `json:"description"`
	Amount      float64 `json:"amount"`
	IsDiscount  bool    `json:"is_discount"`
}

// Invoice is a value object representing a printable bill.
// It is NOT a database entity; it is composed from bill data at print time.
type Invoice struct {
	Header      InvoiceHeader       `json:"header"`
	BillNo      string              `json:"bill_no"`
	Date        string              `json:"date"`
	ClientName  string              `json:"client_name"`
	ClientSite  string              `json:"client_site,omitempty"`
	Mobile      string              `json:"mobile,omitempty"`
	Lines       []InvoiceLine       `json:"lines"`
	Adjustments []InvoiceAdjustment `json:"adjustments,omitempty"`
	SubTotal    float64             `json:"sub_total"`
	GrandTotal  float64             `json:"grand_total"`
	TotalPlates int                 `json:"total_plates"`
	TotalDays   int                 `json:"total_days"`
}
