package repository

import (
	"context"
	"time"

	"github.com/centerhire/centerhire-api/internal/domain/entity"
	"github.com/google/uuid"
)

// TransactionReader loads the issuance and return history the billing engine
// reconciles. Both sequences come back ordered by date ascending with their
// line items attached. A nil start or end date leaves that side of the
// window open. Store errors are returned unchanged; there is no retry and
// no caching, every call re-queries.
type TransactionReader interface {
	FetchTransactions(ctx context.Context, clientID uuid.UUID, startDate, endDate *time.Time) (*entity.ClientTransactions, error)
}
