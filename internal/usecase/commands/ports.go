package commands

import (
	"context"

	"smartpark/internal/domain/car"
	"smartpark/internal/domain/payment"
	"smartpark/internal/domain/record"
	"smartpark/internal/domain/slot"
	"smartpark/internal/domain/user"
	"smartpark/internal/infra/db"

	"github.com/google/uuid"
)

// Write-side ports. Every method takes the db.DBTX it should run on so a
// command can compose several calls inside one transaction.
type SlotRepository interface {
	Create(ctx context.Context, dbtx db.DBTX, s *slot.Slot) error
	FindByNumber(ctx context.Context, dbtx db.DBTX, number string) (*slot.Slot, error)
	FindByNumberForUpdate(ctx context.Context, dbtx db.DBTX, number string) (*slot.Slot, error)
	UpdateStatus(ctx context.Context, dbtx db.DBTX, number string, status slot.Status) error
	Delete(ctx context.Context, dbtx db.DBTX, number string) error
}

type CarRepository interface {
	Create(ctx context.Context, dbtx db.DBTX, c *car.Car) error
	FindByPlate(ctx context.Context, dbtx db.DBTX, plateNumber string) (*car.Car, error)
	Update(ctx context.Context, dbtx db.DBTX, c *car.Car) error
	Delete(ctx context.Context, dbtx db.DBTX, plateNumber string) error
}

type RecordRepository interface {
	Create(ctx context.Context, dbtx db.DBTX, rec *record.Record) error
	FindByID(ctx context.Context, dbtx db.DBTX, id uuid.UUID) (*record.Record, error)
	FindByIDForUpdate(ctx context.Context, dbtx db.DBTX, id uuid.UUID) (*record.Record, error)
	Update(ctx context.Context, dbtx db.DBTX, rec *record.Record) error
	Delete(ctx context.Context, dbtx db.DBTX, id uuid.UUID) error
}

type PaymentRepository interface {
	Create(ctx context.Context, dbtx db.DBTX, p *payment.Payment) error
	FindByRecordID(ctx context.Context, dbtx db.DBTX, recordID uuid.UUID) (*payment.Payment, error)
}

type UserRepository interface {
	Create(ctx context.Context, dbtx db.DBTX, u *user.User) error
	FindByEmail(ctx context.Context, dbtx db.DBTX, email string) (*user.User, error)
	UpdateLastLogin(ctx context.Context, dbtx db.DBTX, id uuid.UUID) error
}

// EnsureOutcome reports what ensuring a car registration actually did.
type EnsureOutcome string

const (
	EnsureCreated   EnsureOutcome = "created"
	EnsureUpdated   EnsureOutcome = "updated"
	EnsureUnchanged EnsureOutcome = "unchanged"
)
