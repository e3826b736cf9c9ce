package service

import (
	"testing"
	"time"

	"github.com/centerhire/centerhire-api/internal/domain/entity"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func challan(no string, d time.Time, items ...entity.ChallanItem) entity.Challan {
	return entity.Challan{ChallanNo: no, Date: d, Items: items}
}

func returnChallan(no string, d time.Time, items ...entity.ReturnItem) entity.ReturnChallan {
	return entity.ReturnChallan{ReturnNo: no, Date: d, Items: items}
}

func TestCalculateFullReturn(t *testing.T) {
	calc := NewBillingCalculator(nil)

	result := calc.Calculate(&CalculateInput{
		ClientID: uuid.New(),
		BillDate: date(2024, 1, 31),
		Transactions: &entity.ClientTransactions{
			Challans: []entity.Challan{
				challan("CH-0001", date(2024, 1, 1), entity.ChallanItem{PlateSize: "2x3", Quantity: 10}),
			},
			Returns: []entity.ReturnChallan{
				returnChallan("RC-0001", date(2024, 1, 11), entity.ReturnItem{PlateSize: "2x3", Quantity: 10}),
			},
		},
		Rates: entity.RateCard{Rates: map[string]float64{"2x3": 5}},
	})

	require.Len(t, result.Lines, 1)
	line := result.Lines[0]
	assert.Equal(t, 10, line.IssuedQuantity)
	assert.Equal(t, 10, line.ReturnedQuantity)
	assert.Equal(t, 0, line.OutstandingQuantity)
	assert.Equal(t, 10, line.DaysUsed)
	assert.Equal(t, float64(500), line.ServiceCharge) // 10 plates x 10 days x 5
	assert.True(t, line.IsFullyReturned)
	assert.False(t, line.IsPartialReturn)
	assert.Equal(t, "RC-0001", line.ReturnNo)
	assert.Equal(t, float64(500), result.SubTotal)
	assert.Equal(t, float64(500), result.GrandTotal)
	assert.Equal(t, 10, result.TotalPlates)
	assert.Equal(t, 10, result.TotalDays)
}

func TestCalculateNoReturnsBillsToDate(t *testing.T) {
	calc := NewBillingCalculator(nil)
	billDate := date(2024, 1, 6)

	result := calc.Calculate(&CalculateInput{
		BillDate: billDate,
		Transactions: &entity.ClientTransactions{
			Challans: []entity.Challan{
				challan("CH-0001", date(2024, 1, 1), entity.ChallanItem{PlateSize: "2x3", Quantity: 4}),
			},
		},
		Rates: entity.RateCard{Rates: map[string]float64{"2x3": 2}},
	})

	require.Len(t, result.Lines, 1)
	line := result.Lines[0]
	assert.Equal(t, 0, line.ReturnedQuantity)
	assert.Equal(t, 4, line.OutstandingQuantity)
	assert.Equal(t, billDate, line.ReturnDate)
	assert.Empty(t, line.ReturnNo)
	assert.Equal(t, 5, line.DaysUsed)
	assert.Equal(t, float64(40), line.ServiceCharge)
	assert.False(t, line.IsFullyReturned)
	assert.False(t, line.IsPartialReturn)
}

func TestCalculatePartialReturnChargesFullQuantity(t *testing.T) {
	calc := NewBillingCalculator(nil)

	result := calc.Calculate(&CalculateInput{
		BillDate: date(2024, 1, 31),
		Transactions: &entity.ClientTransactions{
			Challans: []entity.Challan{
				challan("CH-0001", date(2024, 1, 1), entity.ChallanItem{PlateSize: "2x3", Quantity: 10}),
			},
			Returns: []entity.ReturnChallan{
				returnChallan("RC-0001", date(2024, 1, 6), entity.ReturnItem{PlateSize: "2x3", Quantity: 6}),
			},
		},
		Rates: entity.RateCard{Rates: map[string]float64{"2x3": 2}},
	})

	require.Len(t, result.Lines, 1)
	line := result.Lines[0]
	assert.Equal(t, 6, line.ReturnedQuantity)
	assert.Equal(t, 4, line.OutstandingQuantity)
	assert.Equal(t, 5, line.DaysUsed)
	// Full issued quantity is charged even though 4 plates are still out
	assert.Equal(t, float64(100), line.ServiceCharge)
	assert.True(t, line.IsPartialReturn)
	assert.False(t, line.IsFullyReturned)
}

func TestCalculateOverReturnClampsOutstanding(t *testing.T) {
	calc := NewBillingCalculator(nil)

	result := calc.Calculate(&CalculateInput{
		BillDate: date(2024, 2, 1),
		Transactions: &entity.ClientTransactions{
			Challans: []entity.Challan{
				challan("CH-0001", date(2024, 1, 1), entity.ChallanItem{PlateSize: "2x3", Quantity: 5}),
			},
			Returns: []entity.ReturnChallan{
				returnChallan("RC-0001", date(2024, 1, 10), entity.ReturnItem{PlateSize: "2x3", Quantity: 8}),
			},
		},
		Rates: entity.RateCard{Rates: map[string]float64{"2x3": 1}},
	})

	line := result.Lines[0]
	assert.Equal(t, 8, line.ReturnedQuantity)
	assert.Equal(t, 0, line.OutstandingQuantity)
	assert.True(t, line.IsFullyReturned)
}

func TestCalculateBorrowedStockCountsAsIssued(t *testing.T) {
	calc := NewBillingCalculator(nil)

	result := calc.Calculate(&CalculateInput{
		BillDate: date(2024, 1, 2),
		Transactions: &entity.ClientTransactions{
			Challans: []entity.Challan{
				challan("CH-0001", date(2024, 1, 1),
					entity.ChallanItem{PlateSize: "2x3", Quantity: 10, BorrowedStock: 5}),
			},
		},
		Rates: entity.RateCard{Rates: map[string]float64{"2x3": 1}},
	})

	line := result.Lines[0]
	assert.Equal(t, 15, line.IssuedQuantity)
	assert.Equal(t, float64(15), line.ServiceCharge)
}

func TestCalculateRateFallsBackToDefault(t *testing.T) {
	calc := NewBillingCalculator(nil)

	result := calc.Calculate(&CalculateInput{
		BillDate: date(2024, 1, 2),
		Transactions: &entity.ClientTransactions{
			Challans: []entity.Challan{
				challan("CH-0001", date(2024, 1, 1), entity.ChallanItem{PlateSize: "9x9", Quantity: 2}),
			},
		},
		Rates: entity.RateCard{Rates: map[string]float64{"2x3": 5}, DefaultRate: 3},
	})

	line := result.Lines[0]
	assert.Equal(t, float64(3), line.RatePerDay)
	assert.Equal(t, float64(6), line.ServiceCharge)
}

func TestCalculateLastReturnInLoadOrderWins(t *testing.T) {
	calc := NewBillingCalculator(nil)

	// The second return in load order carries an earlier date; the line
	// still takes it as the effective return.
	result := calc.Calculate(&CalculateInput{
		BillDate: date(2024, 2, 1),
		Transactions: &entity.ClientTransactions{
			Challans: []entity.Challan{
				challan("CH-0001", date(2024, 1, 1), entity.ChallanItem{PlateSize: "2x3", Quantity: 10}),
			},
			Returns: []entity.ReturnChallan{
				returnChallan("RC-0002", date(2024, 1, 20), entity.ReturnItem{PlateSize: "2x3", Quantity: 5}),
				returnChallan("RC-0001", date(2024, 1, 10), entity.ReturnItem{PlateSize: "2x3", Quantity: 5}),
			},
		},
		Rates: entity.RateCard{Rates: map[string]float64{"2x3": 1}},
	})

	line := result.Lines[0]
	assert.Equal(t, "RC-0001", line.ReturnNo)
	assert.Equal(t, date(2024, 1, 10), line.ReturnDate)
	assert.Equal(t, 9, line.DaysUsed)
	assert.Equal(t, 10, line.ReturnedQuantity)
}

func TestCalculatePoolingDoubleCountsAcrossLinesOfOneSize(t *testing.T) {
	calc := NewBillingCalculator(nil)

	// Two issued lines of the same size: the pooled return is counted
	// against both. Documented limitation of size-keyed matching.
	result := calc.Calculate(&CalculateInput{
		BillDate: date(2024, 1, 31),
		Transactions: &entity.ClientTransactions{
			Challans: []entity.Challan{
				challan("CH-0001", date(2024, 1, 1), entity.ChallanItem{PlateSize: "2x3", Quantity: 10}),
				challan("CH-0002", date(2024, 1, 5), entity.ChallanItem{PlateSize: "2x3", Quantity: 10}),
			},
			Returns: []entity.ReturnChallan{
				returnChallan("RC-0001", date(2024, 1, 10), entity.ReturnItem{PlateSize: "2x3", Quantity: 10}),
			},
		},
		Rates: entity.RateCard{Rates: map[string]float64{"2x3": 1}},
	})

	require.Len(t, result.Lines, 2)
	assert.Equal(t, 10, result.Lines[0].ReturnedQuantity)
	assert.Equal(t, 10, result.Lines[1].ReturnedQuantity)
	assert.True(t, result.Lines[0].IsFullyReturned)
	assert.True(t, result.Lines[1].IsFullyReturned)
}

func TestCalculateGrandTotalIdentity(t *testing.T) {
	calc := NewBillingCalculator(nil)

	result := calc.Calculate(&CalculateInput{
		BillDate: date(2024, 1, 11),
		Transactions: &entity.ClientTransactions{
			Challans: []entity.Challan{
				challan("CH-0001", date(2024, 1, 1), entity.ChallanItem{PlateSize: "2x3", Quantity: 10}),
			},
		},
		Rates: entity.RateCard{Rates: map[string]float64{"2x3": 2}},
		ExtraCharges: []entity.ExtraCharge{
			{Description: "Transport", Amount: 50},
			{Description: "Loading", Amount: 25},
		},
		Discounts: []entity.Discount{
			{Description: "Goodwill", Amount: 30},
		},
	})

	assert.Equal(t, float64(200), result.SubTotal)
	assert.Equal(t, float64(75), result.ExtraChargesTotal)
	assert.Equal(t, float64(30), result.DiscountsTotal)
	assert.Equal(t, result.SubTotal+result.ExtraChargesTotal-result.DiscountsTotal, result.GrandTotal)
}

func TestCalculateGrandTotalNotClamped(t *testing.T) {
	calc := NewBillingCalculator(nil)

	result := calc.Calculate(&CalculateInput{
		BillDate:     date(2024, 1, 2),
		Transactions: &entity.ClientTransactions{},
		Rates:        entity.RateCard{},
		Discounts: []entity.Discount{
			{Description: "Writeoff", Amount: 100},
		},
	})

	assert.Equal(t, float64(-100), result.GrandTotal)
}

func TestCalculateEmptyTransactions(t *testing.T) {
	calc := NewBillingCalculator(nil)

	result := calc.Calculate(&CalculateInput{
		BillDate:     date(2024, 1, 1),
		Transactions: &entity.ClientTransactions{},
		Rates:        entity.RateCard{},
	})

	assert.Empty(t, result.Lines)
	assert.Zero(t, result.SubTotal)
	assert.Zero(t, result.GrandTotal)
	assert.Zero(t, result.TotalPlates)
}

func TestRentalDays(t *testing.T) {
	tests := []struct {
		name string
		from time.Time
		to   time.Time
		want int
	}{
		{"same instant", date(2024, 1, 1), date(2024, 1, 1), 0},
		{"five days", date(2024, 1, 1), date(2024, 1, 6), 5},
		{"sub-day rounds up", date(2024, 1, 1), time.Date(2024, 1, 1, 6, 0, 0, 0, time.UTC), 1},
		{"partial day rounds up", date(2024, 1, 1), time.Date(2024, 1, 3, 1, 0, 0, 0, time.UTC), 3},
		{"reversed dates bill positively", date(2024, 1, 6), date(2024, 1, 1), 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, rentalDays(tt.from, tt.to))
		})
	}
}
