package service

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNextBillNumberIncrements(t *testing.T) {
	repo := &fakeBillRepo{lastBillNo: "BILL-0007"}

	number := nextBillNumber(context.Background(), repo)

	assert.Equal(t, "BILL-0008", number.Value)
	assert.True(t, number.Sequential)
	assert.Equal(t, 8, number.Seq)
}

func TestNextBillNumberStartsAtOne(t *testing.T) {
	repo := &fakeBillRepo{lastBillNo: ""}

	number := nextBillNumber(context.Background(), repo)

	assert.Equal(t, "BILL-0001", number.Value)
	assert.True(t, number.Sequential)
	assert.Equal(t, 1, number.Seq)
}

func TestNextBillNumberNonNumericSuffixStartsOver(t *testing.T) {
	repo := &fakeBillRepo{lastBillNo: "BILL-DRAFT"}

	number := nextBillNumber(context.Background(), repo)

	assert.Equal(t, "BILL-0001", number.Value)
	assert.True(t, number.Sequential)
}

func TestNextBillNumberGrowsPastPadding(t *testing.T) {
	repo := &fakeBillRepo{lastBillNo: "BILL-9999"}

	number := nextBillNumber(context.Background(), repo)

	assert.Equal(t, "BILL-10000", number.Value)
	assert.Equal(t, 10000, number.Seq)
}

func TestNextBillNumberFallsBackOnLookupFailure(t *testing.T) {
	repo := &fakeBillRepo{lastBillNoErr: errors.New("connection refused")}

	number := nextBillNumber(context.Background(), repo)

	assert.False(t, number.Sequential)
	assert.True(t, strings.HasPrefix(number.Value, "BILL-T"))
	assert.Zero(t, number.Seq)
}

func TestFallbackBillNumberShape(t *testing.T) {
	number := fallbackBillNumber(time.Date(2024, 3, 1, 12, 0, 0, 123456, time.UTC))

	assert.True(t, strings.HasPrefix(number.Value, "BILL-T"))
	assert.Len(t, number.Value, len("BILL-T")+6)
	assert.False(t, number.Sequential)
}

func TestTrailingDigits(t *testing.T) {
	tests := []struct {
		in     string
		want   int
		wantOK bool
	}{
		{"BILL-0007", 7, true},
		{"BILL-10000", 10000, true},
		{"BILL-", 0, false},
		{"", 0, false},
		{"0042", 42, true},
		{"BILL-T123", 123, true},
	}

	for _, tt := range tests {
		got, ok := trailingDigits(tt.in)
		assert.Equal(t, tt.wantOK, ok, tt.in)
		assert.Equal(t, tt.want, got, tt.in)
	}
}
