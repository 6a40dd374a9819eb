package car

import (
	"time"
)

// Car is keyed by its plate number; there is no surrogate ID.
type Car struct {
	plateNumber PlateNumber
	driverName  DriverName
	phoneNumber PhoneNumber
	createdAt   time.Time
	updatedAt   time.Time
}

func NewCar(plateNumber, driverName, phoneNumber string) (*Car, error) {
	plate, err := NewPlateNumber(plateNumber)
	if err != nil {
		return nil, err
	}

	name, err := NewDriverName(driverName)
	if err != nil {
		return nil, err
	}

	phone, err := NewPhoneNumber(phoneNumber)
	if err != nil {
		return nil, err
	}

	return &Car{
		plateNumber: plate,
		driverName:  name,
		phoneNumber: phone,
	}, nil
}

func ReconstructCar(
	plateNumber PlateNumber,
	driverName DriverName,
	phoneNumber PhoneNumber,
	createdAt, updatedAt time.Time,
) *Car {
	return &Car{
		plateNumber: plateNumber,
		driverName:  driverName,
		phoneNumber: phoneNumber,
		createdAt:   createdAt,
		updatedAt:   updatedAt,
	}
}

// UpdateDriver applies a last-write-wins change to the driver details and
// reports whether anything actually changed.
func (c *Car) UpdateDriver(driverName DriverName, phoneNumber PhoneNumber) bool {
	changed := false
	if c.driverName != driverName {
		c.driverName = driverName
		changed = true
	}
	if c.phoneNumber != phoneNumber {
		c.phoneNumber = phoneNumber
		changed = true
	}
	return changed
}

func (c *Car) PlateNumber() PlateNumber { return c.plateNumber }
func (c *Car) DriverName() DriverName   { return c.driverName }
func (c *Car) PhoneNumber() PhoneNumber { return c.phoneNumber }
func (c *Car) CreatedAt() time.Time     { return c.createdAt }
func (c *Car) UpdatedAt() time.Time     { return c.updatedAt }
