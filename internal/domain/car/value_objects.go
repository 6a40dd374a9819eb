package car

import (
	"errors"
	"regexp"
	"strings"
)

var (
	ErrInvalidPlateNumber = errors.New("invalid plate number format")
	ErrInvalidDriverName  = errors.New("invalid driver name")
	ErrInvalidPhoneNumber = errors.New("invalid phone number format")
)

// Rwandan civilian plate: "RA", one series letter (I, M, O, Y never issued),
// three digits, one trailing letter. Stored uppercase.
var plateRegex = regexp.MustCompile(`^RA[BCDEFGHJKLNPQRSTUVWXZ]\d{3}[A-Z]$`)

var driverNameRegex = regexp.MustCompile(`^[A-Za-z\s'-]{2,}$`)

// Rwandan mobile numbers: 072/073/078/079 followed by seven digits.
var phoneRegex = regexp.MustCompile(`^07[2389]\d{7}$`)

type PlateNumber struct {
	value string
}

func NewPlateNumber(s string) (PlateNumber, error) {
	s = strings.ToUpper(strings.TrimSpace(s))
	if !plateRegex.MatchString(s) {
		return PlateNumber{}, ErrInvalidPlateNumber
	}
	return PlateNumber{value: s}, nil
}

func (p PlateNumber) Value() string {
	return p.value
}

type DriverName struct {
	value string
}

func NewDriverName(s string) (DriverName, error) {
	s = strings.TrimSpace(s)
	if !driverNameRegex.MatchString(s) {
		return DriverName{}, ErrInvalidDriverName
	}
	return DriverName{value: s}, nil
}

func (d DriverName) Value() string {
	return d.value
}

type PhoneNumber struct {
	value string
}

func NewPhoneNumber(s string) (PhoneNumber, error) {
	s = strings.TrimSpace(s)
	if !phoneRegex.MatchString(s) {
		return PhoneNumber{}, ErrInvalidPhoneNumber
	}
	return PhoneNumber{value: s}, nil
}

func (p PhoneNumber) Value() string {
	return p.value
}
