package queries

import (
	"context"

	"smartpark/internal/domain/billing"
	"smartpark/internal/infra"
	"smartpark/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrPaymentNotFound    = errs.New("payment not found")
	ErrRecordNotCompleted = errs.New("parking record is not completed")
)

type PaymentQueries interface {
	GetByRecordID(ctx context.Context, recordID uuid.UUID) (*PaymentView, error)
	List(ctx context.Context) ([]*PaymentView, error)
	QuoteForRecord(ctx context.Context, recordID uuid.UUID) (*FeeQuoteView, error)
}

type PaymentReadStore interface {
	FindByRecordID(ctx context.Context, recordID uuid.UUID) (*PaymentView, error)
	FindAll(ctx context.Context) ([]*PaymentView, error)
}

type paymentQueriesImpl struct {
	readStore       PaymentReadStore
	recordReadStore RecordReadStore
	engine          *billing.Engine
}

func NewPaymentQueries(readStore PaymentReadStore, recordReadStore RecordReadStore, engine *billing.Engine) PaymentQueries {
	return &paymentQueriesImpl{
		readStore:       readStore,
		recordReadStore: recordReadStore,
		engine:          engine,
	}
}

func (q *paymentQueriesImpl) GetByRecordID(ctx context.Context, recordID uuid.UUID) (*PaymentView, error) {
	view, err := q.readStore.FindByRecordID(ctx, recordID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrPaymentNotFound
		}
		return nil, err
	}
	return view, nil
}

func (q *paymentQueriesImpl) List(ctx context.Context) ([]*PaymentView, error) {
	return q.readStore.FindAll(ctx)
}

// QuoteForRecord prices a completed record without recording anything.
func (q *paymentQueriesImpl) QuoteForRecord(ctx context.Context, recordID uuid.UUID) (*FeeQuoteView, error) {
	rec, err := q.recordReadStore.FindByID(ctx, recordID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrRecordNotFound
		}
		return nil, err
	}

	if rec.Status != "Completed" {
		return nil, ErrRecordNotCompleted
	}

	quote, err := q.engine.Quote(int(rec.DurationMinutes))
	if err != nil {
		return nil, errs.Wrap(err, "failed to quote fee")
	}

	return &FeeQuoteView{
		RecordID:        rec.ID,
		DurationMinutes: rec.DurationMinutes,
		BilledHours:     quote.Hours,
		Amount:          quote.Fee,
	}, nil
}
