package activity

import (
	"context"
	"time"

	"github.com/loudent/library/internal/domain/activity"
	"github.com/loudent/library/pkg/dispatch"
	"github.com/loudent/library/pkg/metrics"
	"github.com/loudent/library/pkg/mq"
)

// BatchEvent is published after a completed batch so downstream consumers
// (notifications, audit) can react to checkout traffic. Publishing is
// best effort and never affects the response.
type BatchEvent struct {
	Operation     string                     `json:"operation"`
	AccountNumber string                     `json:"account_number,omitempty"`
	Results       []activity.OperationResult `json:"results"`
	OccurredAt    time.Time                  `json:"occurred_at"`
}

// CheckoutBooksUseCase runs a checkout batch through the dispatcher. The
// whole batch is one dispatched operation; individual copies report their
// outcome through per-item notes.
type CheckoutBooksUseCase struct {
	dispatcher *dispatch.Dispatcher
	activities activity.Service
	publisher  *mq.Publisher
}

// NewCheckoutBooksUseCase creates the use case. publisher may be nil when
// event publishing is disabled.
func NewCheckoutBooksUseCase(d *dispatch.Dispatcher, activities activity.Service, publisher *mq.Publisher) *CheckoutBooksUseCase {
	return &CheckoutBooksUseCase{dispatcher: d, activities: activities, publisher: publisher}
}

func (uc *CheckoutBooksUseCase) Execute(ctx context.Context, accountNumber string, bookIDs []string) ([]activity.OperationResult, error) {
	results, err := dispatch.Do(uc.dispatcher, ctx, "checkoutBooks",
		func(ctx context.Context) ([]activity.OperationResult, error) {
			return uc.activities.CheckoutBooks(ctx, accountNumber, bookIDs)
		})
	if err != nil {
		return nil, err
	}

	for _, res := range results {
		metrics.ObserveBatchItem("checkoutBooks", res.Note)
	}
	if uc.publisher != nil {
		uc.publisher.PublishAsync("activity.checkout", BatchEvent{
			Operation:     "checkout",
			AccountNumber: accountNumber,
			Results:       results,
			OccurredAt:    time.Now().UTC(),
		})
	}
	return results, nil
}
