package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/centerhire/centerhire-api/internal/application/service"
	"github.com/centerhire/centerhire-api/internal/domain/entity"
	"github.com/centerhire/centerhire-api/internal/domain/repository"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubTxReader struct {
	transactions *entity.ClientTransactions
}

func (s *stubTxReader) FetchTransactions(ctx context.Context, clientID uuid.UUID, startDate, endDate *time.Time) (*entity.ClientTransactions, error) {
	if s.transactions == nil {
		return &entity.ClientTransactions{}, nil
	}
	return s.transactions, nil
}

type stubBillRepo struct{}

func (s *stubBillRepo) Create(ctx context.Context, bill *entity.Bill) error {
	bill.ID = uuid.New()
	return nil
}

func (s *stubBillRepo) GetByID(ctx context.Context, id uuid.UUID) (*entity.Bill, error) {
	return nil, nil
}

func (s *stubBillRepo) GetWithDetails(ctx context.Context, id uuid.UUID) (*entity.Bill, error) {
	return &entity.Bill{ID: id}, nil
}

func (s *stubBillRepo) Delete(ctx context.Context, id uuid.UUID) error { return nil }

func (s *stubBillRepo) List(ctx context.Context, params *repository.BillFilterParams) ([]entity.Bill, int64, error) {
	return nil, 0, nil
}

func (s *stubBillRepo) GetLastBillNo(ctx context.Context) (string, error) { return "", nil }

func (s *stubBillRepo) CountSince(ctx context.Context, since time.Time) (int64, error) {
	return 0, nil
}

func (s *stubBillRepo) RevenueSince(ctx context.Context, since time.Time) (float64, error) {
	return 0, nil
}

type stubClientRepo struct {
	client *entity.Client
}

func (s *stubClientRepo) Create(ctx context.Context, client *entity.Client) error { return nil }

func (s *stubClientRepo) GetByID(ctx context.Context, id uuid.UUID) (*entity.Client, error) {
	if s.client != nil && s.client.ID == id {
		return s.client, nil
	}
	return nil, nil
}

func (s *stubClientRepo) Update(ctx context.Context, client *entity.Client) error { return nil }
func (s *stubClientRepo) Delete(ctx context.Context, id uuid.UUID) error          { return nil }

func (s *stubClientRepo) List(ctx context.Context, params *repository.ClientFilterParams) ([]entity.Client, int64, error) {
	return nil, 0, nil
}

func (s *stubClientRepo) Count(ctx context.Context) (int64, error) { return 0, nil }

type stubPlateTypeRepo struct{}

func (s *stubPlateTypeRepo) Create(ctx context.Context, plateType *entity.PlateType) error {
	return nil
}

func (s *stubPlateTypeRepo) GetByID(ctx context.Context, id uuid.UUID) (*entity.PlateType, error) {
	return nil, nil
}

func (s *stubPlateTypeRepo) GetBySize(ctx context.Context, size string) (*entity.PlateType, error) {
	return nil, nil
}

func (s *stubPlateTypeRepo) Update(ctx context.Context, plateType *entity.PlateType) error {
	return nil
}

func (s *stubPlateTypeRepo) Delete(ctx context.Context, id uuid.UUID) error { return nil }

func (s *stubPlateTypeRepo) GetAll(ctx context.Context) ([]entity.PlateType, error) {
	return []entity.PlateType{{Size: "2x3", RatePerDay: 2}}, nil
}

type stubProfileRepo struct{}

func (s *stubProfileRepo) Get(ctx context.Context) (*entity.BusinessProfile, error) {
	return &entity.BusinessProfile{Name: "Centering Plates Rental", DefaultRatePerDay: 1}, nil
}

func (s *stubProfileRepo) Update(ctx context.Context, profile *entity.BusinessProfile) error {
	return nil
}

func newTestBillRouter(clientID uuid.UUID, reader *stubTxReader) *gin.Engine {
	gin.SetMode(gin.TestMode)

	svc := service.NewBillingService(
		reader,
		&stubBillRepo{},
		&stubClientRepo{client: &entity.Client{ID: clientID, Name: "Acme Constructions"}},
		&stubPlateTypeRepo{},
		&stubProfileRepo{},
		service.NewBillingCalculator(nil),
	)
	h := NewBillHandler(svc)

	router := gin.New()
	router.POST("/bills/preview", h.Preview)
	return router
}

func previewRequest(t *testing.T, body gin.H) *http.Request {
	t.Helper()
	payload, err := json.Marshal(body)
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodPost, "/bills/preview", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	return req
}

func TestPreviewBillHappyPath(t *testing.T) {
	clientID := uuid.New()
	reader := &stubTxReader{transactions: &entity.ClientTransactions{
		Challans: []entity.Challan{
			{
				ChallanNo: "CH-0001",
				Date:      time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC),
				Items:     []entity.ChallanItem{{PlateSize: "2x3", Quantity: 10}},
			},
		},
	}}
	router := newTestBillRouter(clientID, reader)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, previewRequest(t, gin.H{
		"client_id": clientID,
		"bill_date": "2024-03-15",
	}))

	assert.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Success bool                    `json:"success"`
		Data    *entity.BillCalculation `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	require.NotNil(t, resp.Data)
	require.Len(t, resp.Data.Lines, 1)
	// 10 plates x 5 days x 2/day
	assert.Equal(t, float64(100), resp.Data.SubTotal)
}

func TestPreviewBillRejectsBadDate(t *testing.T) {
	clientID := uuid.New()
	router := newTestBillRouter(clientID, &stubTxReader{})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, previewRequest(t, gin.H{
		"client_id": clientID,
		"bill_date": "15/03/2024",
	}))

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestPreviewBillUnknownClientIs404(t *testing.T) {
	router := newTestBillRouter(uuid.New(), &stubTxReader{})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, previewRequest(t, gin.H{
		"client_id": uuid.New(),
		"bill_date": "2024-03-15",
	}))

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestBillRequestToInput(t *testing.T) {
	clientID := uuid.New()
	start := "2024-01-01"
	req := &billRequest{
		ClientID:  clientID,
		BillDate:  "2024-03-15",
		StartDate: &start,
	}
	req.ExtraCharges = append(req.ExtraCharges, struct {
		Description string  `json:"description" binding:"required"`
		Amount      float64 `json:"amount" binding:"required"`
	}{Description: "Transport", Amount: 20})

	input, msg := req.toInput()

	require.Empty(t, msg)
	assert.Equal(t, clientID, input.ClientID)
	assert.Equal(t, time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC), input.BillDate)
	require.NotNil(t, input.StartDate)
	assert.Nil(t, input.EndDate)
	require.Len(t, input.ExtraCharges, 1)
	assert.Equal(t, "Transport", input.ExtraCharges[0].Description)
}
