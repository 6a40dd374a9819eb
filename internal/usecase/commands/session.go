package commands

import (
	"context"
	"errors"

	"smartpark/internal/domain/billing"
	"smartpark/internal/domain/car"
	"smartpark/internal/domain/record"
	"smartpark/internal/domain/slot"
	reqdto "smartpark/internal/handler/dto/request"
	"smartpark/internal/infra"
	"smartpark/internal/infra/db"
	"smartpark/internal/pkg/clock"
	"smartpark/internal/pkg/errs"
	"smartpark/internal/usecase/queries"
	"smartpark/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

var (
	ErrRecordNotFound         = errs.New("parking record not found")
	ErrRecordAlreadyCompleted = errs.New("parking record already completed")
	ErrRecordHasPayment       = errs.New("parking record has a payment")
)

type EntryResult struct {
	Record     *queries.RecordView
	CarOutcome EnsureOutcome
}

type ExitResult struct {
	Record      *queries.RecordView
	BilledHours int
	Fee         int64
}

type SessionCommands interface {
	RecordEntry(ctx context.Context, req reqdto.EntryRequest) (*EntryResult, error)
	RecordExit(ctx context.Context, recordID uuid.UUID, req reqdto.ExitRequest) (*ExitResult, error)
	DeleteRecord(ctx context.Context, recordID uuid.UUID) error
}

type sessionCommandsImpl struct {
	slotRepo      SlotRepository
	carRepo       CarRepository
	recordRepo    RecordRepository
	recordQueries queries.RecordQueries
	engine        *billing.Engine
	db            *pgxpool.Pool
	clock         clock.Clock
}

func NewSessionCommands(
	slotRepo SlotRepository,
	carRepo CarRepository,
	recordRepo RecordRepository,
	recordQueries queries.RecordQueries,
	engine *billing.Engine,
	db *pgxpool.Pool,
	clock clock.Clock,
) SessionCommands {
	return &sessionCommandsImpl{
		slotRepo:      slotRepo,
		carRepo:       carRepo,
		recordRepo:    recordRepo,
		recordQueries: recordQueries,
		engine:        engine,
		db:            db,
		clock:         clock,
	}
}

// RecordEntry occupies a slot, upserts the car registration and opens an
// Active record, all inside one transaction. The slot row is locked first so
// two concurrent entries against the same slot serialize; the loser sees the
// slot already occupied.
func (s *sessionCommandsImpl) RecordEntry(ctx context.Context, req reqdto.EntryRequest) (*EntryResult, error) {
	slotNumber, err := slot.NewNumber(req.SlotNumber)
	if err != nil {
		return nil, errs.Mark(err, ErrDomainValidation)
	}
	plate, err := car.NewPlateNumber(req.PlateNumber)
	if err != nil {
		return nil, errs.Mark(err, ErrDomainValidation)
	}

	type entryOut struct {
		recordID uuid.UUID
		outcome  EnsureOutcome
	}

	out, err := shared.WithDefaultRetry(ctx, s.db, func(tx db.DBTX) (entryOut, error) {
		var zero entryOut

		slotEntity, findErr := s.slotRepo.FindByNumberForUpdate(ctx, tx, slotNumber.Value())
		if findErr != nil {
			if infra.IsKind(findErr, infra.KindNotFound) {
				return zero, ErrSlotNotFound
			}
			return zero, errs.Mark(findErr, ErrDatabaseOperationFailed)
		}

		if occupyErr := slotEntity.Occupy(); occupyErr != nil {
			return zero, ErrSlotOccupied
		}

		outcome, ensureErr := s.ensureCar(ctx, tx, plate, req.DriverName, req.PhoneNumber)
		if ensureErr != nil {
			return zero, ensureErr
		}

		rec := record.NewRecord(slotNumber.Value(), plate.Value(), s.clock.Now())
		if createErr := s.recordRepo.Create(ctx, tx, rec); createErr != nil {
			if infra.IsKind(createErr, infra.KindDuplicateKey) {
				return zero, ErrSlotOccupied
			}
			return zero, errs.Mark(createErr, ErrDatabaseOperationFailed)
		}

		if statusErr := s.slotRepo.UpdateStatus(ctx, tx, slotNumber.Value(), slotEntity.Status()); statusErr != nil {
			return zero, errs.Mark(statusErr, ErrDatabaseOperationFailed)
		}

		return entryOut{recordID: rec.ID(), outcome: outcome}, nil
	})
	if err != nil {
		return nil, err
	}

	view, err := s.recordQueries.GetByID(ctx, out.recordID)
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	return &EntryResult{Record: view, CarOutcome: out.outcome}, nil
}

// ensureCar registers the car on first sight and refreshes the driver
// details on later visits, last write wins.
func (s *sessionCommandsImpl) ensureCar(ctx context.Context, tx db.DBTX, plate car.PlateNumber, driverName, phoneNumber string) (EnsureOutcome, error) {
	existing, err := s.carRepo.FindByPlate(ctx, tx, plate.Value())
	if err != nil {
		if !infra.IsKind(err, infra.KindNotFound) {
			return "", errs.Mark(err, ErrDatabaseOperationFailed)
		}

		entity, newErr := car.NewCar(plate.Value(), driverName, phoneNumber)
		if newErr != nil {
			return "", errs.Mark(newErr, ErrDomainValidation)
		}
		if createErr := s.carRepo.Create(ctx, tx, entity); createErr != nil {
			return "", errs.Mark(createErr, ErrDatabaseOperationFailed)
		}
		return EnsureCreated, nil
	}

	name, err := car.NewDriverName(driverName)
	if err != nil {
		return "", errs.Mark(err, ErrDomainValidation)
	}
	phone, err := car.NewPhoneNumber(phoneNumber)
	if err != nil {
		return "", errs.Mark(err, ErrDomainValidation)
	}

	if !existing.UpdateDriver(name, phone) {
		return EnsureUnchanged, nil
	}

	if err := s.carRepo.Update(ctx, tx, existing); err != nil {
		return "", errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return EnsureUpdated, nil
}

// RecordExit completes an Active record, fixes its duration and frees the
// slot, then prices the stay. The exit time defaults to the current clock
// but can be supplied by the caller, e.g. when an attendant backfills a
// missed exit.
func (s *sessionCommandsImpl) RecordExit(ctx context.Context, recordID uuid.UUID, req reqdto.ExitRequest) (*ExitResult, error) {
	exitTime := s.clock.Now()
	if req.ExitTime != nil {
		exitTime = *req.ExitTime
	}

	quote, err := shared.WithDefaultRetry(ctx, s.db, func(tx db.DBTX) (billing.Quote, error) {
		var zero billing.Quote

		rec, findErr := s.recordRepo.FindByIDForUpdate(ctx, tx, recordID)
		if findErr != nil {
			if infra.IsKind(findErr, infra.KindNotFound) {
				return zero, ErrRecordNotFound
			}
			return zero, errs.Mark(findErr, ErrDatabaseOperationFailed)
		}

		if closeErr := rec.Close(exitTime); closeErr != nil {
			if errors.Is(closeErr, record.ErrExitBeforeEntry) {
				return zero, errs.Mark(closeErr, ErrDomainValidation)
			}
			return zero, ErrRecordAlreadyCompleted
		}

		if updateErr := s.recordRepo.Update(ctx, tx, rec); updateErr != nil {
			return zero, errs.Mark(updateErr, ErrDatabaseOperationFailed)
		}

		if releaseErr := s.releaseSlot(ctx, tx, rec.SlotNumber()); releaseErr != nil {
			return zero, releaseErr
		}

		return s.engine.QuoteForRecord(rec)
	})
	if err != nil {
		return nil, err
	}

	view, err := s.recordQueries.GetByID(ctx, recordID)
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	return &ExitResult{
		Record:      view,
		BilledHours: quote.Hours,
		Fee:         quote.Fee,
	}, nil
}

// DeleteRecord removes a record outright. Deleting an Active record frees
// its slot; a paid record cannot be deleted.
func (s *sessionCommandsImpl) DeleteRecord(ctx context.Context, recordID uuid.UUID) error {
	_, err := shared.WithDefaultRetry(ctx, s.db, func(tx db.DBTX) (struct{}, error) {
		rec, findErr := s.recordRepo.FindByIDForUpdate(ctx, tx, recordID)
		if findErr != nil {
			if infra.IsKind(findErr, infra.KindNotFound) {
				return struct{}{}, ErrRecordNotFound
			}
			return struct{}{}, errs.Mark(findErr, ErrDatabaseOperationFailed)
		}

		if rec.IsActive() {
			if releaseErr := s.releaseSlot(ctx, tx, rec.SlotNumber()); releaseErr != nil {
				return struct{}{}, releaseErr
			}
		}

		if delErr := s.recordRepo.Delete(ctx, tx, recordID); delErr != nil {
			if infra.IsKind(delErr, infra.KindForeignKeyViolated) {
				return struct{}{}, ErrRecordHasPayment
			}
			return struct{}{}, errs.Mark(delErr, ErrDatabaseOperationFailed)
		}
		return struct{}{}, nil
	})
	return err
}

func (s *sessionCommandsImpl) releaseSlot(ctx context.Context, tx db.DBTX, slotNumber string) error {
	slotEntity, err := s.slotRepo.FindByNumberForUpdate(ctx, tx, slotNumber)
	if err != nil {
		// The slot may have been removed after the record was written;
		// the record itself is still valid history.
		if infra.IsKind(err, infra.KindNotFound) {
			return nil
		}
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}

	slotEntity.Release()
	if err := s.slotRepo.UpdateStatus(ctx, tx, slotNumber, slotEntity.Status()); err != nil {
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return nil
}
