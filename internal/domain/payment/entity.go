package payment

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var ErrNonPositiveAmount = errors.New("payment amount must be positive")

// Payment settles exactly one completed parking record. It is immutable
// once created.
type Payment struct {
	id              uuid.UUID
	parkingRecordID uuid.UUID
	amountPaid      int64
	paymentDate     time.Time
	createdAt       time.Time
}

func NewPayment(parkingRecordID uuid.UUID, amountPaid int64, paymentDate time.Time) (*Payment, error) {
	if amountPaid <= 0 {
		return nil, ErrNonPositiveAmount
	}

	return &Payment{
		id:              uuid.New(),
		parkingRecordID: parkingRecordID,
		amountPaid:      amountPaid,
		paymentDate:     paymentDate,
	}, nil
}

func ReconstructPayment(
	id, parkingRecordID uuid.UUID,
	amountPaid int64,
	paymentDate, createdAt time.Time,
) *Payment {
	return &Payment{
		id:              id,
		parkingRecordID: parkingRecordID,
		amountPaid:      amountPaid,
		paymentDate:     paymentDate,
		createdAt:       createdAt,
	}
}

func (p *Payment) ID() uuid.UUID              { return p.id }
func (p *Payment) ParkingRecordID() uuid.UUID { return p.parkingRecordID }
func (p *Payment) AmountPaid() int64          { return p.amountPaid }
func (p *Payment) PaymentDate() time.Time     { return p.paymentDate }
func (p *Payment) CreatedAt() time.Time       { return p.createdAt }
