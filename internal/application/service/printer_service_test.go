package service

import (
	"testing"

	"github.com/centerhire/centerhire-api/internal/domain/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatInvoiceContainsBillDetails(t *testing.T) {
	inv := &entity.Invoice{
		Header: entity.InvoiceHeader{
			BusinessName: "Centering Plates Rental",
			Mobile:       "9876500000",
		},
		BillNo:     "BILL-0042",
		Date:       "15/03/2024",
		ClientName: "Acme Constructions",
		Lines: []entity.InvoiceLine{
			{ChallanNo: "CH-0001", PlateSize: "2x3", Quantity: 10, Days: 2, RatePerDay: 2, Amount: 40, Outstanding: 3},
		},
		Adjustments: []entity.InvoiceAdjustment{
			{Description: "Transport", Amount: 20},
			{Description: "Goodwill", Amount: 5, IsDiscount: true},
		},
		SubTotal:    40,
		GrandTotal:  55,
		TotalPlates: 10,
		TotalDays:   2,
	}

	data := string(FormatInvoice(inv))

	assert.Contains(t, data, "Centering Plates Rental")
	assert.Contains(t, data, "BILL-0042")
	assert.Contains(t, data, "Acme Constructions")
	assert.Contains(t, data, "CH-0001")
	assert.Contains(t, data, "3 outstanding")
	assert.Contains(t, data, "Transport")
	assert.Contains(t, data, "-5.00")
	assert.Contains(t, data, "55.00")
}

func TestInvoiceFromBillSnapshotsAndLines(t *testing.T) {
	bill := &entity.Bill{
		BillNo:     "BILL-0001",
		BillDate:   date(2024, 3, 15),
		ClientName: "Acme Constructions",
		SubTotal:   40,
		GrandTotal: 55,
		Items: []entity.BillItem{
			{ChallanNo: "CH-0001", PlateSize: "2x3", IssuedQuantity: 10, DaysUsed: 2, RatePerDay: 2, ServiceCharge: 40},
		},
		Charges: []entity.BillCharge{
			{Description: "Goodwill", Amount: 5, IsDiscount: true},
		},
	}
	profile := &entity.BusinessProfile{Name: "Centering Plates Rental", Mobile: "9876500000"}

	inv := invoiceFromBill(bill, profile)

	assert.Equal(t, "BILL-0001", inv.BillNo)
	assert.Equal(t, "15/03/2024", inv.Date)
	assert.Equal(t, "Centering Plates Rental", inv.Header.BusinessName)
	require.Len(t, inv.Lines, 1)
	assert.Equal(t, 10, inv.Lines[0].Quantity)
	require.Len(t, inv.Adjustments, 1)
	assert.True(t, inv.Adjustments[0].IsDiscount)
}

func TestInvoiceFromBillNilProfile(t *testing.T) {
	bill := &entity.Bill{BillNo: "BILL-0001", BillDate: date(2024, 3, 15)}

	inv := invoiceFromBill(bill, nil)

	assert.Empty(t, inv.Header.BusinessName)
	assert.Equal(t, "BILL-0001", inv.BillNo)
}
