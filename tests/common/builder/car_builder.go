//go:build unit || e2e

package builder

import (
	"time"

	domcar "smartpark/internal/domain/car"
	reqdto "smartpark/internal/handler/dto/request"
	"smartpark/internal/usecase/queries"
)

type CarBuilder struct {
	PlateNumber string
	DriverName  string
	PhoneNumber string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func NewCarBuilder() *CarBuilder {
	now := time.Now()
	return &CarBuilder{
		PlateNumber: "RAB123C",
		DriverName:  "Jean Bosco",
		PhoneNumber: "0788123456",
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

func (b *CarBuilder) With(mutate func(*CarBuilder)) *CarBuilder {
	mutate(b)
	return b
}

// Build methods
func (b *CarBuilder) BuildDomain() (*domcar.Car, error) {
	return domcar.NewCar(b.PlateNumber, b.DriverName, b.PhoneNumber)
}

func (b *CarBuilder) BuildRegisterRequestDTO() reqdto.RegisterCarRequest {
	return reqdto.RegisterCarRequest{
		PlateNumber: b.PlateNumber,
		DriverName:  b.DriverName,
		PhoneNumber: b.PhoneNumber,
	}
}

func (b *CarBuilder) BuildUpdateRequestDTO() reqdto.UpdateCarRequest {
	driverName := b.DriverName
	phoneNumber := b.PhoneNumber
	return reqdto.UpdateCarRequest{
		DriverName:  &driverName,
		PhoneNumber: &phoneNumber,
	}
}

func (b *CarBuilder) BuildView() *queries.CarView {
	return &queries.CarView{
		PlateNumber: b.PlateNumber,
		DriverName:  b.DriverName,
		PhoneNumber: b.PhoneNumber,
		CreatedAt:   b.CreatedAt,
		UpdatedAt:   b.UpdatedAt,
	}
}

// Fluent builder methods
func (b *CarBuilder) WithPlateNumber(plateNumber string) *CarBuilder {
	b.PlateNumber = plateNumber
	return b
}

func (b *CarBuilder) WithDriverName(driverName string) *CarBuilder {
	b.DriverName = driverName
	return b
}

func (b *CarBuilder) WithPhoneNumber(phoneNumber string) *CarBuilder {
	b.PhoneNumber = phoneNumber
	return b
}
