package activity

import (
	"context"
	"time"

	"github.com/loudent/library/internal/domain/activity"
	"github.com/loudent/library/pkg/dispatch"
	"github.com/loudent/library/pkg/metrics"
	"github.com/loudent/library/pkg/mq"
)

// CheckinBooksUseCase runs a checkin batch through the dispatcher.
// Checkin needs no account: the record itself names the borrower.
type CheckinBooksUseCase struct {
	dispatcher *dispatch.Dispatcher
	activities activity.Service
	publisher  *mq.Publisher
}

// NewCheckinBooksUseCase creates the use case. publisher may be nil when
// event publishing is disabled.
func NewCheckinBooksUseCase(d *dispatch.Dispatcher, activities activity.Service, publisher *mq.Publisher) *CheckinBooksUseCase {
	return &CheckinBooksUseCase{dispatcher: d, activities: activities, publisher: publisher}
}

func (uc *CheckinBooksUseCase) Execute(ctx context.Context, bookIDs []string) ([]activity.OperationResult, error) {
	results, err := dispatch.Do(uc.dispatcher, ctx, "checkinBooks",
		func(ctx context.Context) ([]activity.OperationResult, error) {
			return uc.activities.CheckinBooks(ctx, bookIDs)
		})
	if err != nil {
		return nil, err
	}

	for _, res := range results {
		metrics.ObserveBatchItem("checkinBooks", res.Note)
	}
	if uc.publisher != nil {
		uc.publisher.PublishAsync("activity.checkin", BatchEvent{
			Operation:  "checkin",
			Results:    results,
			OccurredAt: time.Now().UTC(),
		})
	}
	return results, nil
}
