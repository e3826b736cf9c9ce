package service

import (
	"context"
	"time"

	"github.com/centerhire/centerhire-api/internal/domain/entity"
	"github.com/centerhire/centerhire-api/internal/domain/enum"
	"github.com/centerhire/centerhire-api/internal/domain/repository"
	"github.com/centerhire/centerhire-api/pkg/apperror"
	"github.com/centerhire/centerhire-api/pkg/pagination"
	"github.com/google/uuid"
)

// BillingService runs the billing pipeline: load a client's transactions,
// reconcile and price them, and (for CreateBill) number and persist the
// result. Preview and create share the same calculation path.
type BillingService struct {
	txReader      repository.TransactionReader
	billRepo      repository.BillRepository
	clientRepo    repository.ClientRepository
	plateTypeRepo repository.PlateTypeRepository
	profileRepo   repository.ProfileRepository
	calculator    *BillingCalculator
}

// NewBillingService creates a new billing service
func NewBillingService(
	txReader repository.TransactionReader,
	billRepo repository.BillRepository,
	clientRepo repository.ClientRepository,
	plateTypeRepo repository.PlateTypeRepository,
	profileRepo repository.ProfileRepository,
	calculator *BillingCalculator,
) *BillingService {
	return &BillingService{
		txReader:      txReader,
		billRepo:      billRepo,
		clientRepo:    clientRepo,
		plateTypeRepo: plateTypeRepo,
		profileRepo:   profileRepo,
		calculator:    calculator,
	}
}

// BillingInput represents one billing request
type BillingInput struct {
	ClientID     uuid.UUID
	BillDate     time.Time
	StartDate    *time.Time
	EndDate      *time.Time
	ExtraCharges []entity.ExtraCharge
	Discounts    []entity.Discount
}

// PreviewBill runs the reconciliation and calculation for a client without
// persisting anything. Loader errors abort the run; no partial result is
// returned.
func (s *BillingService) PreviewBill(ctx context.Context, input *BillingInput) (*entity.BillCalculation, error) {
	client, err := s.clientRepo.GetByID(ctx, input.ClientID)
	if err != nil {
		return nil, err
	}
	if client == nil {
		return nil, apperror.NewNotFoundError("Client")
	}

	rates, err := s.rateCard(ctx)
	if err != nil {
		return nil, err
	}

	// The window defaults to all history up to the bill date
	end := input.EndDate
	if end == nil {
		end = &input.BillDate
	}

	transactions, err := s.txReader.FetchTransactions(ctx, input.ClientID, input.StartDate, end)
	if err != nil {
		return nil, err
	}

	return s.calculator.Calculate(&CalculateInput{
		ClientID:     input.ClientID,
		BillDate:     input.BillDate,
		Transactions: transactions,
		Rates:        rates,
		ExtraCharges: input.ExtraCharges,
		Discounts:    input.Discounts,
	}), nil
}

// CreateBill runs the calculation, assigns the next bill number and persists
// the bill with its reconciled lines and adjustments.
func (s *BillingService) CreateBill(ctx context.Context, input *BillingInput) (*entity.Bill, error) {
	calc, err := s.PreviewBill(ctx, input)
	if err != nil {
		return nil, err
	}

	client, err := s.clientRepo.GetByID(ctx, input.ClientID)
	if err != nil {
		return nil, err
	}
	if client == nil {
		return nil, apperror.NewNotFoundError("Client")
	}

	number := nextBillNumber(ctx, s.billRepo)

	bill := &entity.Bill{
		ClientID:          calc.ClientID,
		BillNo:            number.Value,
		BillDate:          calc.BillDate,
		ClientName:        client.Name,
		SubTotal:          calc.SubTotal,
		ExtraChargesTotal: calc.ExtraChargesTotal,
		DiscountsTotal:    calc.DiscountsTotal,
		GrandTotal:        calc.GrandTotal,
		TotalPlates:       calc.TotalPlates,
		TotalDays:         calc.TotalDays,
		Sequential:        number.Sequential,
		// Preview is the draft path; a persisted bill is final
		Status: enum.BillStatusFinal,
	}
	if client.Site != nil {
		bill.ClientSite = *client.Site
	}
	if client.Mobile != nil {
		bill.ClientMobile = *client.Mobile
	}

	for _, line := range calc.Lines {
		bill.Items = append(bill.Items, entity.BillItem{
			ChallanNo:           line.ChallanNo,
			ChallanDate:         line.ChallanDate,
			ReturnNo:            line.ReturnNo,
			ReturnDate:          line.ReturnDate,
			PlateSize:           line.PlateSize,
			IssuedQuantity:      line.IssuedQuantity,
			ReturnedQuantity:    line.ReturnedQuantity,
			OutstandingQuantity: line.OutstandingQuantity,
			DaysUsed:            line.DaysUsed,
			RatePerDay:          line.RatePerDay,
			ServiceCharge:       line.ServiceCharge,
			IsPartialReturn:     line.IsPartialReturn,
			IsFullyReturned:     line.IsFullyReturned,
		})
	}
	for _, charge := range calc.ExtraCharges {
		bill.Charges = append(bill.Charges, entity.BillCharge{
			Description: charge.Description,
			Amount:      charge.Amount,
		})
	}
	for _, discount := range calc.Discounts {
		bill.Charges = append(bill.Charges, entity.BillCharge{
			Description: discount.Description,
			Amount:      discount.Amount,
			IsDiscount:  true,
		})
	}

	if err := s.billRepo.Create(ctx, bill); err != nil {
		return nil, err
	}

	return s.billRepo.GetWithDetails(ctx, bill.ID)
}

// GetBill retrieves a bill with its lines and adjustments
func (s *BillingService) GetBill(ctx context.Context, id uuid.UUID) (*entity.Bill, error) {
	bill, err := s.billRepo.GetWithDetails(ctx, id)
	if err != nil {
		return nil, err
	}
	if bill == nil {
		return nil, apperror.NewNotFoundError("Bill")
	}
	return bill, nil
}

// ListBills lists bills with filtering
func (s *BillingService) ListBills(ctx context.Context, params *repository.BillFilterParams) (*pagination.PaginatedResult[entity.Bill], error) {
	bills, total, err := s.billRepo.List(ctx, params)
	if err != nil {
		return nil, err
	}

	pag := pagination.NewPagination(params.Pagination.Page, params.Pagination.PerPage, total)
	return pagination.NewPaginatedResult(bills, pag), nil
}

// DeleteBill removes a bill
func (s *BillingService) DeleteBill(ctx context.Context, id uuid.UUID) error {
	bill, err := s.billRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if bill == nil {
		return apperror.NewNotFoundError("Bill")
	}
	return s.billRepo.Delete(ctx, id)
}

// rateCard assembles the immutable rate card for one calculation run from
// the plate type table and the business profile's default rate.
func (s *BillingService) rateCard(ctx context.Context) (entity.RateCard, error) {
	plateTypes, err := s.plateTypeRepo.GetAll(ctx)
	if err != nil {
		return entity.RateCard{}, err
	}

	rates := make(map[string]float64, len(plateTypes))
	for _, pt := range plateTypes {
		rates[pt.Size] = pt.RatePerDay
	}

	card := entity.RateCard{Rates: rates}
	profile, err := s.profileRepo.Get(ctx)
	if err != nil {
		return entity.RateCard{}, err
	}
	if profile != nil {
		card.DefaultRate = profile.DefaultRatePerDay
	}
	return card, nil
}
