package queries

import (
	"context"

	"smartpark/internal/infra"
	"smartpark/internal/pkg/errs"
)

var ErrSlotNotFound = errs.New("slot not found")

type SlotQueries interface {
	GetByNumber(ctx context.Context, slotNumber string) (*SlotView, error)
	List(ctx context.Context) ([]*SlotView, error)
	ListAvailable(ctx context.Context) ([]*SlotView, error)
}

type SlotReadStore interface {
	FindByNumber(ctx context.Context, slotNumber string) (*SlotView, error)
	FindAll(ctx context.Context) ([]*SlotView, error)
	FindByStatus(ctx context.Context, status string) ([]*SlotView, error)
}

type slotQueriesImpl struct {
	readStore SlotReadStore
}

func NewSlotQueries(readStore SlotReadStore) SlotQueries {
	return &slotQueriesImpl{
		readStore: readStore,
	}
}

func (q *slotQueriesImpl) GetByNumber(ctx context.Context, slotNumber string) (*SlotView, error) {
	view, err := q.readStore.FindByNumber(ctx, slotNumber)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrSlotNotFound
		}
		return nil, err
	}
	return view, nil
}

func (q *slotQueriesImpl) List(ctx context.Context) ([]*SlotView, error) {
	return q.readStore.FindAll(ctx)
}

func (q *slotQueriesImpl) ListAvailable(ctx context.Context) ([]*SlotView, error) {
	return q.readStore.FindByStatus(ctx, "Available")
}
