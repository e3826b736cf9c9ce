package service

import (
	"math"
	"time"

	"github.com/centerhire/centerhire-api/internal/domain/entity"
	"github.com/google/uuid"
)

// PricingPolicy determines the service charge for one reconciled challan line.
type PricingPolicy interface {
	Charge(issuedQuantity, daysUsed int, ratePerDay float64) float64
}

// FullQuantityPricing charges the full issued quantity for the full elapsed
// days, even when only part of the quantity has come back. Partial returns
// affect the outstanding count, not the charge. This matches how the
// business bills today; swap the policy to change it.
type FullQuantityPricing struct{}

// Charge implements PricingPolicy.
func (FullQuantityPricing) Charge(issuedQuantity, daysUsed int, ratePerDay float64) float64 {
	return float64(issuedQuantity) * float64(daysUsed) * ratePerDay
}

// BillingCalculator reconciles a client's issued challan lines against their
// returns and produces a BillCalculation. It is pure: all data comes in
// through CalculateInput and nothing is read or written elsewhere.
type BillingCalculator struct {
	policy PricingPolicy
}

// NewBillingCalculator creates a calculator with the given pricing policy.
// A nil policy falls back to FullQuantityPricing.
func NewBillingCalculator(policy PricingPolicy) *BillingCalculator {
	if policy == nil {
		policy = FullQuantityPricing{}
	}
	return &BillingCalculator{policy: policy}
}

// CalculateInput carries everything one billing run needs
type CalculateInput struct {
	ClientID     uuid.UUID
	BillDate     time.Time
	Transactions *entity.ClientTransactions
	Rates        entity.RateCard
	ExtraCharges []entity.ExtraCharge
	Discounts    []entity.Discount
}

// Calculate produces the bill calculation for one client as of the bill date.
//
// Matching is plate-size keyed: every return line of a given size, across all
// loaded return challans, is pooled against each issued line of that size.
// A client with two issued lines of one size therefore has the same returns
// counted against both. Known limitation of the matching policy; kept until
// per-challan allocation is worth the migration.
func (c *BillingCalculator) Calculate(in *CalculateInput) *entity.BillCalculation {
	calc := &entity.BillCalculation{
		ClientID:     in.ClientID,
		BillDate:     in.BillDate,
		ExtraCharges: in.ExtraCharges,
		Discounts:    in.Discounts,
	}

	for _, challan := range in.Transactions.Challans {
		for _, item := range challan.Items {
			line := c.reconcileLine(challan, item, in)
			calc.Lines = append(calc.Lines, line)
			calc.SubTotal += line.ServiceCharge
			calc.TotalPlates += line.IssuedQuantity
			calc.TotalDays += line.DaysUsed
		}
	}

	for _, charge := range in.ExtraCharges {
		calc.ExtraChargesTotal += charge.Amount
	}
	for _, discount := range in.Discounts {
		calc.DiscountsTotal += discount.Amount
	}
	// Not clamped: a discount larger than the charges yields a negative total
	calc.GrandTotal = calc.SubTotal + calc.ExtraChargesTotal - calc.DiscountsTotal

	return calc
}

// reconcileLine matches one issued challan line against the pooled returns
// of its plate size and prices it.
func (c *BillingCalculator) reconcileLine(challan entity.Challan, item entity.ChallanItem, in *CalculateInput) entity.MatchedChallan {
	issued := item.IssuedQuantity()

	var returned int
	var lastReturnNo string
	var lastReturnDate time.Time
	var hasReturn bool

	// Pool every matching return line in load order. The effective return
	// date is the last one encountered, not the latest by date; the loader
	// orders challans by date so these usually coincide, but multiple items
	// on one return keep the document's position in the sequence.
	for _, ret := range in.Transactions.Returns {
		for _, retItem := range ret.Items {
			if retItem.PlateSize != item.PlateSize {
				continue
			}
			returned += retItem.ReturnedQuantity()
			lastReturnNo = ret.ReturnNo
			lastReturnDate = ret.Date
			hasReturn = true
		}
	}

	returnDate := in.BillDate
	returnNo := ""
	if hasReturn {
		returnDate = lastReturnDate
		returnNo = lastReturnNo
	}

	outstanding := issued - returned
	if outstanding < 0 {
		outstanding = 0
	}

	days := rentalDays(challan.Date, returnDate)
	rate := in.Rates.RateFor(item.PlateSize)

	return entity.MatchedChallan{
		ChallanNo:           challan.ChallanNo,
		ChallanDate:         challan.Date,
		ReturnNo:            returnNo,
		ReturnDate:          returnDate,
		PlateSize:           item.PlateSize,
		IssuedQuantity:      issued,
		ReturnedQuantity:    returned,
		OutstandingQuantity: outstanding,
		DaysUsed:            days,
		RatePerDay:          rate,
		ServiceCharge:       c.policy.Charge(issued, days, rate),
		IsPartialReturn:     returned > 0 && returned < issued,
		IsFullyReturned:     returned >= issued,
	}
}

// rentalDays returns the number of billable days between two dates: the
// absolute difference rounded up to whole days, so a return recorded before
// the issue date still bills positively and a same-day partial-hour span
// counts as one day.
func rentalDays(from, to time.Time) int {
	diff := to.Sub(from)
	if diff < 0 {
		diff = -diff
	}
	return int(math.Ceil(diff.Hours() / 24))
}
