package repository

import (
	"context"
	"time"

	"smartpark/internal/domain/car"
	"smartpark/internal/infra"
	"smartpark/internal/infra/db"
	"smartpark/internal/pkg/pgconv"
)

type CarRepository struct{}

func NewCarRepository() *CarRepository {
	return &CarRepository{}
}

func (r *CarRepository) Create(ctx context.Context, dbtx db.DBTX, c *car.Car) error {
	_, err := dbtx.Exec(ctx, `
		INSERT INTO cars (plate_number, driver_name, phone_number)
		VALUES ($1, $2, $3)`,
		c.PlateNumber().Value(), c.DriverName().Value(), c.PhoneNumber().Value())
	if err != nil {
		if isDuplicateKey(err) {
			return infra.WrapRepoErr("car already exists", err, infra.KindDuplicateKey)
		}
		return infra.WrapRepoErr("failed to create car", err)
	}
	return nil
}

func (r *CarRepository) FindByPlate(ctx context.Context, dbtx db.DBTX, plateNumber string) (*car.Car, error) {
	row := dbtx.QueryRow(ctx, `
		SELECT plate_number, driver_name, phone_number, created_at, updated_at
		FROM cars
		WHERE plate_number = $1`,
		plateNumber)

	var (
		plate     string
		name      string
		phone     string
		createdAt time.Time
		updatedAt time.Time
	)
	if err := row.Scan(&plate, &name, &phone, &createdAt, &updatedAt); err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("car not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find car by plate", err)
	}

	return reconstructCar(plate, name, phone, createdAt, updatedAt)
}

func (r *CarRepository) Update(ctx context.Context, dbtx db.DBTX, c *car.Car) error {
	tag, err := dbtx.Exec(ctx, `
		UPDATE cars
		SET driver_name = $2, phone_number = $3, updated_at = now()
		WHERE plate_number = $1`,
		c.PlateNumber().Value(), c.DriverName().Value(), c.PhoneNumber().Value())
	if err != nil {
		return infra.WrapRepoErr("failed to update car", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("car not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *CarRepository) Delete(ctx context.Context, dbtx db.DBTX, plateNumber string) error {
	tag, err := dbtx.Exec(ctx, `
		DELETE FROM cars
		WHERE plate_number = $1`,
		plateNumber)
	if err != nil {
		if isForeignKeyViolation(err) {
			return infra.WrapRepoErr("car is referenced by parking records", err, infra.KindForeignKeyViolated)
		}
		return infra.WrapRepoErr("failed to delete car", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("car not found", nil, infra.KindNotFound)
	}
	return nil
}

func reconstructCar(plate, name, phone string, createdAt, updatedAt time.Time) (*car.Car, error) {
	p, err := car.NewPlateNumber(plate)
	if err != nil {
		return nil, infra.WrapRepoErr("corrupt plate number in storage", err)
	}
	n, err := car.NewDriverName(name)
	if err != nil {
		return nil, infra.WrapRepoErr("corrupt driver name in storage", err)
	}
	ph, err := car.NewPhoneNumber(phone)
	if err != nil {
		return nil, infra.WrapRepoErr("corrupt phone number in storage", err)
	}

	return car.ReconstructCar(p, n, ph, createdAt, updatedAt), nil
}
