package queries

import (
	"context"
	"time"
)

type ReportQueries interface {
	PaymentsForDay(ctx context.Context, day time.Time) (*DailyReportView, error)
}

type ReportReadStore interface {
	FindPaymentsBetween(ctx context.Context, from, to time.Time) ([]*ReportRow, error)
}

type reportQueriesImpl struct {
	readStore ReportReadStore
}

func NewReportQueries(readStore ReportReadStore) ReportQueries {
	return &reportQueriesImpl{
		readStore: readStore,
	}
}

// PaymentsForDay lists the payments recorded during one calendar day in
// the day's own location, newest first.
func (q *reportQueriesImpl) PaymentsForDay(ctx context.Context, day time.Time) (*DailyReportView, error) {
	from := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, day.Location())
	to := from.AddDate(0, 0, 1)

	rows, err := q.readStore.FindPaymentsBetween(ctx, from, to)
	if err != nil {
		return nil, err
	}

	var total int64
	for _, row := range rows {
		total += row.AmountPaid
	}

	return &DailyReportView{
		Date:        from.Format("2006-01-02"),
		TotalAmount: total,
		Count:       len(rows),
		Payments:    rows,
	}, nil
}
