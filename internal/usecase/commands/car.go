package commands

import (
	"context"

	"smartpark/internal/domain/car"
	reqdto "smartpark/internal/handler/dto/request"
	"smartpark/internal/infra"
	"smartpark/internal/infra/db"
	"smartpark/internal/pkg/errs"
	"smartpark/internal/pkg/patch"
	"smartpark/internal/usecase/queries"
	"smartpark/internal/usecase/shared"

	"github.com/jackc/pgx/v5/pgxpool"
)

var (
	ErrCarNotFound      = errs.New("car not found")
	ErrCarAlreadyExists = errs.New("car already exists")
	ErrCarInUse         = errs.New("car has parking records")
)

type CarCommands interface {
	Register(ctx context.Context, req reqdto.RegisterCarRequest) (*queries.CarView, error)
	Update(ctx context.Context, plateNumber string, req reqdto.UpdateCarRequest) (*queries.CarView, error)
	Delete(ctx context.Context, plateNumber string) error
}

type carCommandsImpl struct {
	carRepo    CarRepository
	carQueries queries.CarQueries
	db         *pgxpool.Pool
}

func NewCarCommands(carRepo CarRepository, carQueries queries.CarQueries, db *pgxpool.Pool) CarCommands {
	return &carCommandsImpl{
		carRepo:    carRepo,
		carQueries: carQueries,
		db:         db,
	}
}

func (c *carCommandsImpl) Register(ctx context.Context, req reqdto.RegisterCarRequest) (*queries.CarView, error) {
	entity, err := car.NewCar(req.PlateNumber, req.DriverName, req.PhoneNumber)
	if err != nil {
		return nil, errs.Mark(err, ErrDomainValidation)
	}

	_, err = shared.RunInTx(ctx, c.db, func(tx db.DBTX) (struct{}, error) {
		if createErr := c.carRepo.Create(ctx, tx, entity); createErr != nil {
			if infra.IsKind(createErr, infra.KindDuplicateKey) {
				return struct{}{}, ErrCarAlreadyExists
			}
			return struct{}{}, errs.Mark(createErr, ErrDatabaseOperationFailed)
		}
		return struct{}{}, nil
	})
	if err != nil {
		return nil, err
	}

	return c.carQueries.GetByPlate(ctx, entity.PlateNumber().Value())
}

// Update applies a partial change to the driver details. Omitted fields keep
// their stored values.
func (c *carCommandsImpl) Update(ctx context.Context, plateNumber string, req reqdto.UpdateCarRequest) (*queries.CarView, error) {
	plate, err := car.NewPlateNumber(plateNumber)
	if err != nil {
		return nil, errs.Mark(err, ErrDomainValidation)
	}

	_, err = shared.WithDefaultRetry(ctx, c.db, func(tx db.DBTX) (struct{}, error) {
		entity, findErr := c.carRepo.FindByPlate(ctx, tx, plate.Value())
		if findErr != nil {
			if infra.IsKind(findErr, infra.KindNotFound) {
				return struct{}{}, ErrCarNotFound
			}
			return struct{}{}, errs.Mark(findErr, ErrDatabaseOperationFailed)
		}

		name, nameErr := car.NewDriverName(patch.Coalesce(req.DriverName, entity.DriverName().Value()))
		if nameErr != nil {
			return struct{}{}, errs.Mark(nameErr, ErrDomainValidation)
		}
		phone, phoneErr := car.NewPhoneNumber(patch.Coalesce(req.PhoneNumber, entity.PhoneNumber().Value()))
		if phoneErr != nil {
			return struct{}{}, errs.Mark(phoneErr, ErrDomainValidation)
		}

		if !entity.UpdateDriver(name, phone) {
			return struct{}{}, nil
		}

		if updateErr := c.carRepo.Update(ctx, tx, entity); updateErr != nil {
			return struct{}{}, errs.Mark(updateErr, ErrDatabaseOperationFailed)
		}
		return struct{}{}, nil
	})
	if err != nil {
		return nil, err
	}

	return c.carQueries.GetByPlate(ctx, plate.Value())
}

func (c *carCommandsImpl) Delete(ctx context.Context, plateNumber string) error {
	plate, err := car.NewPlateNumber(plateNumber)
	if err != nil {
		return errs.Mark(err, ErrDomainValidation)
	}

	_, err = shared.RunInTx(ctx, c.db, func(tx db.DBTX) (struct{}, error) {
		if delErr := c.carRepo.Delete(ctx, tx, plate.Value()); delErr != nil {
			if infra.IsKind(delErr, infra.KindNotFound) {
				return struct{}{}, ErrCarNotFound
			}
			if infra.IsKind(delErr, infra.KindForeignKeyViolated) {
				return struct{}{}, ErrCarInUse
			}
			return struct{}{}, errs.Mark(delErr, ErrDatabaseOperationFailed)
		}
		return struct{}{}, nil
	})
	return err
}
