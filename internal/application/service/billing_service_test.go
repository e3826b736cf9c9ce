package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/centerhire/centerhire-api/internal/domain/entity"
	"github.com/centerhire/centerhire-api/internal/domain/enum"
	"github.com/centerhire/centerhire-api/internal/domain/repository"
	"github.com/centerhire/centerhire-api/pkg/apperror"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// --- fakes ---

type fakeTransactionReader struct {
	transactions *entity.ClientTransactions
	err          error

	gotClientID uuid.UUID
	gotStart    *time.Time
	gotEnd      *time.Time
}

func (f *fakeTransactionReader) FetchTransactions(ctx context.Context, clientID uuid.UUID, startDate, endDate *time.Time) (*entity.ClientTransactions, error) {
	f.gotClientID = clientID
	f.gotStart = startDate
	f.gotEnd = endDate
	if f.err != nil {
		return nil, f.err
	}
	if f.transactions == nil {
		return &entity.ClientTransactions{}, nil
	}
	return f.transactions, nil
}

type fakeBillRepo struct {
	lastBillNo    string
	lastBillNoErr error
	created       *entity.Bill
	createErr     error
}

func (f *fakeBillRepo) Create(ctx context.Context, bill *entity.Bill) error {
	if f.createErr != nil {
		return f.createErr
	}
	bill.ID = uuid.New()
	f.created = bill
	return nil
}

func (f *fakeBillRepo) GetByID(ctx context.Context, id uuid.UUID) (*entity.Bill, error) {
	if f.created != nil && f.created.ID == id {
		return f.created, nil
	}
	return nil, nil
}

func (f *fakeBillRepo) GetWithDetails(ctx context.Context, id uuid.UUID) (*entity.Bill, error) {
	return f.GetByID(ctx, id)
}

func (f *fakeBillRepo) Delete(ctx context.Context, id uuid.UUID) error { return nil }

func (f *fakeBillRepo) List(ctx context.Context, params *repository.BillFilterParams) ([]entity.Bill, int64, error) {
	return nil, 0, nil
}

func (f *fakeBillRepo) GetLastBillNo(ctx context.Context) (string, error) {
	return f.lastBillNo, f.lastBillNoErr
}

func (f *fakeBillRepo) CountSince(ctx context.Context, since time.Time) (int64, error) {
	return 0, nil
}

func (f *fakeBillRepo) RevenueSince(ctx context.Context, since time.Time) (float64, error) {
	return 0, nil
}

type fakeClientRepo struct {
	clients map[uuid.UUID]*entity.Client
}

func (f *fakeClientRepo) Create(ctx context.Context, client *entity.Client) error { return nil }

func (f *fakeClientRepo) GetByID(ctx context.Context, id uuid.UUID) (*entity.Client, error) {
	return f.clients[id], nil
}

func (f *fakeClientRepo) Update(ctx context.Context, client *entity.Client) error { return nil }
func (f *fakeClientRepo) Delete(ctx context.Context, id uuid.UUID) error          { return nil }

func (f *fakeClientRepo) List(ctx context.Context, params *repository.ClientFilterParams) ([]entity.Client, int64, error) {
	return nil, 0, nil
}

func (f *fakeClientRepo) Count(ctx context.Context) (int64, error) { return 0, nil }

type fakePlateTypeRepo struct {
	plateTypes []entity.PlateType
	err        error
}

func (f *fakePlateTypeRepo) Create(ctx context.Context, plateType *entity.PlateType) error {
	return nil
}

func (f *fakePlateTypeRepo) GetByID(ctx context.Context, id uuid.UUID) (*entity.PlateType, error) {
	return nil, nil
}

func (f *fakePlateTypeRepo) GetBySize(ctx context.Context, size string) (*entity.PlateType, error) {
	return nil, nil
}

func (f *fakePlateTypeRepo) Update(ctx context.Context, plateType *entity.PlateType) error {
	return nil
}

func (f *fakePlateTypeRepo) Delete(ctx context.Context, id uuid.UUID) error { return nil }

func (f *fakePlateTypeRepo) GetAll(ctx context.Context) ([]entity.PlateType, error) {
	return f.plateTypes, f.err
}

type fakeProfileRepo struct {
	profile *entity.BusinessProfile
}

func (f *fakeProfileRepo) Get(ctx context.Context) (*entity.BusinessProfile, error) {
	return f.profile, nil
}

func (f *fakeProfileRepo) Update(ctx context.Context, profile *entity.BusinessProfile) error {
	return nil
}

// --- tests ---

func newTestBillingService(reader *fakeTransactionReader, billRepo *fakeBillRepo, clientID uuid.UUID) *BillingService {
	site := "North Yard"
	mobile := "9876500000"
	return NewBillingService(
		reader,
		billRepo,
		&fakeClientRepo{clients: map[uuid.UUID]*entity.Client{
			clientID: {ID: clientID, Name: "Acme Constructions", Site: &site, Mobile: &mobile},
		}},
		&fakePlateTypeRepo{plateTypes: []entity.PlateType{
			{Size: "2x3", RatePerDay: 2},
			{Size: "2x2", RatePerDay: 1.5},
		}},
		&fakeProfileRepo{profile: &entity.BusinessProfile{Name: "Centering Plates Rental", DefaultRatePerDay: 1}},
		NewBillingCalculator(nil),
	)
}

func TestPreviewBillDefaultsWindowEndToBillDate(t *testing.T) {
	clientID := uuid.New()
	reader := &fakeTransactionReader{}
	svc := newTestBillingService(reader, &fakeBillRepo{}, clientID)

	billDate := date(2024, 3, 15)
	_, err := svc.PreviewBill(context.Background(), &BillingInput{
		ClientID: clientID,
		BillDate: billDate,
	})

	require.NoError(t, err)
	assert.Equal(t, clientID, reader.gotClientID)
	assert.Nil(t, reader.gotStart)
	require.NotNil(t, reader.gotEnd)
	assert.Equal(t, billDate, *reader.gotEnd)
}

func TestPreviewBillKeepsExplicitWindow(t *testing.T) {
	clientID := uuid.New()
	reader := &fakeTransactionReader{}
	svc := newTestBillingService(reader, &fakeBillRepo{}, clientID)

	start := date(2024, 1, 1)
	end := date(2024, 2, 1)
	_, err := svc.PreviewBill(context.Background(), &BillingInput{
		ClientID:  clientID,
		BillDate:  date(2024, 3, 15),
		StartDate: &start,
		EndDate:   &end,
	})

	require.NoError(t, err)
	require.NotNil(t, reader.gotStart)
	require.NotNil(t, reader.gotEnd)
	assert.Equal(t, start, *reader.gotStart)
	assert.Equal(t, end, *reader.gotEnd)
}

func TestPreviewBillLoaderErrorAborts(t *testing.T) {
	clientID := uuid.New()
	reader := &fakeTransactionReader{err: errors.New("db down")}
	svc := newTestBillingService(reader, &fakeBillRepo{}, clientID)

	calc, err := svc.PreviewBill(context.Background(), &BillingInput{
		ClientID: clientID,
		BillDate: date(2024, 3, 15),
	})

	assert.Nil(t, calc)
	assert.EqualError(t, err, "db down")
}

func TestPreviewBillUnknownClient(t *testing.T) {
	reader := &fakeTransactionReader{}
	svc := newTestBillingService(reader, &fakeBillRepo{}, uuid.New())

	_, err := svc.PreviewBill(context.Background(), &BillingInput{
		ClientID: uuid.New(),
		BillDate: date(2024, 3, 15),
	})

	require.Error(t, err)
	appErr := apperror.GetAppError(err)
	assert.Equal(t, 404, appErr.Code)
}

func TestPreviewBillUsesRateCard(t *testing.T) {
	clientID := uuid.New()
	reader := &fakeTransactionReader{transactions: &entity.ClientTransactions{
		Challans: []entity.Challan{
			challan("CH-0001", date(2024, 3, 10),
				entity.ChallanItem{PlateSize: "2x3", Quantity: 10},
				entity.ChallanItem{PlateSize: "9x9", Quantity: 10}),
		},
	}}
	svc := newTestBillingService(reader, &fakeBillRepo{}, clientID)

	calc, err := svc.PreviewBill(context.Background(), &BillingInput{
		ClientID: clientID,
		BillDate: date(2024, 3, 15),
	})

	require.NoError(t, err)
	require.Len(t, calc.Lines, 2)
	assert.Equal(t, float64(2), calc.Lines[0].RatePerDay)
	// Unlisted size falls back to the profile default
	assert.Equal(t, float64(1), calc.Lines[1].RatePerDay)
}

func TestCreateBillPersistsCalculation(t *testing.T) {
	clientID := uuid.New()
	reader := &fakeTransactionReader{transactions: &entity.ClientTransactions{
		Challans: []entity.Challan{
			challan("CH-0001", date(2024, 3, 10), entity.ChallanItem{PlateSize: "2x3", Quantity: 10}),
		},
		Returns: []entity.ReturnChallan{
			returnChallan("RC-0001", date(2024, 3, 12), entity.ReturnItem{PlateSize: "2x3", Quantity: 10}),
		},
	}}
	billRepo := &fakeBillRepo{lastBillNo: "BILL-0041"}
	svc := newTestBillingService(reader, billRepo, clientID)

	bill, err := svc.CreateBill(context.Background(), &BillingInput{
		ClientID: clientID,
		BillDate: date(2024, 3, 15),
		ExtraCharges: []entity.ExtraCharge{
			{Description: "Transport", Amount: 20},
		},
		Discounts: []entity.Discount{
			{Description: "Goodwill", Amount: 5},
		},
	})

	require.NoError(t, err)
	require.NotNil(t, bill)
	assert.Equal(t, "BILL-0042", bill.BillNo)
	assert.True(t, bill.Sequential)
	assert.Equal(t, enum.BillStatusFinal, bill.Status)
	assert.Equal(t, "Acme Constructions", bill.ClientName)
	assert.Equal(t, "North Yard", bill.ClientSite)

	// 10 plates x 2 days x 2/day
	assert.Equal(t, float64(40), bill.SubTotal)
	assert.Equal(t, float64(55), bill.GrandTotal)

	require.Len(t, bill.Items, 1)
	assert.Equal(t, "CH-0001", bill.Items[0].ChallanNo)
	assert.Equal(t, "RC-0001", bill.Items[0].ReturnNo)

	require.Len(t, bill.Charges, 2)
	assert.False(t, bill.Charges[0].IsDiscount)
	assert.True(t, bill.Charges[1].IsDiscount)
}

func TestCreateBillFallbackNumberingStillPersists(t *testing.T) {
	clientID := uuid.New()
	reader := &fakeTransactionReader{}
	billRepo := &fakeBillRepo{lastBillNoErr: errors.New("lookup failed")}
	svc := newTestBillingService(reader, billRepo, clientID)

	bill, err := svc.CreateBill(context.Background(), &BillingInput{
		ClientID: clientID,
		BillDate: date(2024, 3, 15),
	})

	require.NoError(t, err)
	require.NotNil(t, bill)
	assert.False(t, bill.Sequential)
	assert.Contains(t, bill.BillNo, "BILL-T")
}
