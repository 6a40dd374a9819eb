package queries

import (
	"context"
	"strings"

	"smartpark/internal/infra"
	"smartpark/internal/pkg/errs"
)

var ErrCarNotFound = errs.New("car not found")

type CarQueries interface {
	GetByPlate(ctx context.Context, plateNumber string) (*CarView, error)
	List(ctx context.Context) ([]*CarView, error)
}

type CarReadStore interface {
	FindByPlate(ctx context.Context, plateNumber string) (*CarView, error)
	FindAll(ctx context.Context) ([]*CarView, error)
}

type carQueriesImpl struct {
	readStore CarReadStore
}

func NewCarQueries(readStore CarReadStore) CarQueries {
	return &carQueriesImpl{
		readStore: readStore,
	}
}

func (q *carQueriesImpl) GetByPlate(ctx context.Context, plateNumber string) (*CarView, error) {
	view, err := q.readStore.FindByPlate(ctx, strings.ToUpper(strings.TrimSpace(plateNumber)))
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrCarNotFound
		}
		return nil, err
	}
	return view, nil
}

func (q *carQueriesImpl) List(ctx context.Context) ([]*CarView, error) {
	return q.readStore.FindAll(ctx)
}
