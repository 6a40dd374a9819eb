package queries

import (
	"context"

	"smartpark/internal/infra"
	"smartpark/internal/pkg/errs"

	"github.com/google/uuid"
)

var ErrRecordNotFound = errs.New("parking record not found")

type RecordQueries interface {
	GetByID(ctx context.Context, id uuid.UUID) (*RecordView, error)
	List(ctx context.Context) ([]*RecordView, error)
	ListActive(ctx context.Context) ([]*RecordView, error)
}

type RecordReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*RecordView, error)
	FindAll(ctx context.Context) ([]*RecordView, error)
	FindByStatus(ctx context.Context, status string) ([]*RecordView, error)
}

type recordQueriesImpl struct {
	readStore RecordReadStore
}

func NewRecordQueries(readStore RecordReadStore) RecordQueries {
	return &recordQueriesImpl{
		readStore: readStore,
	}
}

func (q *recordQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*RecordView, error) {
	view, err := q.readStore.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrRecordNotFound
		}
		return nil, err
	}
	return view, nil
}

func (q *recordQueriesImpl) List(ctx context.Context) ([]*RecordView, error) {
	return q.readStore.FindAll(ctx)
}

func (q *recordQueriesImpl) ListActive(ctx context.Context) ([]*RecordView, error) {
	return q.readStore.FindByStatus(ctx, "Active")
}
