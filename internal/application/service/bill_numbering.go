package service

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/centerhire/centerhire-api/internal/domain/entity"
	"github.com/centerhire/centerhire-api/internal/domain/repository"
)

const billNumberPrefix = "BILL-"

// nextBillNumber derives the next sequential bill number from the most
// recently created bill. When the lookup fails the caller still gets a
// usable number derived from the clock, tagged Sequential=false so
// consumers can tell the degraded path apart.
func nextBillNumber(ctx context.Context, billRepo repository.BillRepository) entity.BillNumber {
	last, err := billRepo.GetLastBillNo(ctx)
	if err != nil {
		return fallbackBillNumber(time.Now())
	}

	seq := 1
	if suffix, ok := trailingDigits(last); ok {
		seq = suffix + 1
	}
	return entity.BillNumber{
		Value:      fmt.Sprintf("%s%04d", billNumberPrefix, seq),
		Sequential: true,
		Seq:        seq,
	}
}

// fallbackBillNumber builds a clock-derived number that cannot collide with
// the zero-padded sequential pattern.
func fallbackBillNumber(now time.Time) entity.BillNumber {
	return entity.BillNumber{
		Value:      fmt.Sprintf("%sT%06d", billNumberPrefix, now.UnixNano()%1_000_000),
		Sequential: false,
	}
}

// trailingDigits parses the numeric suffix of a bill number. Returns false
// for an empty string or a number without trailing digits.
func trailingDigits(s string) (int, bool) {
	end := len(s)
	start := end
	for start > 0 && s[start-1] >= '0' && s[start-1] <= '9' {
		start--
	}
	if start == end {
		return 0, false
	}
	n, err := strconv.Atoi(s[start:end])
	if err != nil {
		return 0, false
	}
	return n, true
}
