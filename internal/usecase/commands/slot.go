package commands

import (
	"context"

	"smartpark/internal/domain/slot"
	reqdto "smartpark/internal/handler/dto/request"
	"smartpark/internal/infra"
	"smartpark/internal/infra/db"
	"smartpark/internal/pkg/errs"
	"smartpark/internal/usecase/queries"
	"smartpark/internal/usecase/shared"

	"github.com/jackc/pgx/v5/pgxpool"
)

var (
	ErrSlotNotFound            = errs.New("slot not found")
	ErrSlotAlreadyExists       = errs.New("slot already exists")
	ErrSlotOccupied            = errs.New("slot is occupied")
	ErrDomainValidation        = errs.New("domain validation error")
	ErrDatabaseOperationFailed = errs.New("database operation failed")
)

type SlotCommands interface {
	Create(ctx context.Context, req reqdto.CreateSlotRequest) (*queries.SlotView, error)
	Delete(ctx context.Context, slotNumber string) error
}

type slotCommandsImpl struct {
	slotRepo    SlotRepository
	slotQueries queries.SlotQueries
	db          *pgxpool.Pool
}

func NewSlotCommands(slotRepo SlotRepository, slotQueries queries.SlotQueries, db *pgxpool.Pool) SlotCommands {
	return &slotCommandsImpl{
		slotRepo:    slotRepo,
		slotQueries: slotQueries,
		db:          db,
	}
}

func (c *slotCommandsImpl) Create(ctx context.Context, req reqdto.CreateSlotRequest) (*queries.SlotView, error) {
	s, err := slot.NewSlot(req.SlotNumber)
	if err != nil {
		return nil, errs.Mark(err, ErrDomainValidation)
	}

	_, err = shared.RunInTx(ctx, c.db, func(tx db.DBTX) (struct{}, error) {
		if createErr := c.slotRepo.Create(ctx, tx, s); createErr != nil {
			if infra.IsKind(createErr, infra.KindDuplicateKey) {
				return struct{}{}, ErrSlotAlreadyExists
			}
			return struct{}{}, errs.Mark(createErr, ErrDatabaseOperationFailed)
		}
		return struct{}{}, nil
	})
	if err != nil {
		return nil, err
	}

	return c.slotQueries.GetByNumber(ctx, s.Number().Value())
}

// Delete removes a slot that is not in use. An occupied slot is a conflict.
func (c *slotCommandsImpl) Delete(ctx context.Context, slotNumber string) error {
	n, err := slot.NewNumber(slotNumber)
	if err != nil {
		return errs.Mark(err, ErrDomainValidation)
	}

	_, err = shared.WithDefaultRetry(ctx, c.db, func(tx db.DBTX) (struct{}, error) {
		s, findErr := c.slotRepo.FindByNumberForUpdate(ctx, tx, n.Value())
		if findErr != nil {
			if infra.IsKind(findErr, infra.KindNotFound) {
				return struct{}{}, ErrSlotNotFound
			}
			return struct{}{}, errs.Mark(findErr, ErrDatabaseOperationFailed)
		}

		if !s.IsAvailable() {
			return struct{}{}, ErrSlotOccupied
		}

		if delErr := c.slotRepo.Delete(ctx, tx, n.Value()); delErr != nil {
			return struct{}{}, errs.Mark(delErr, ErrDatabaseOperationFailed)
		}
		return struct{}{}, nil
	})
	return err
}
