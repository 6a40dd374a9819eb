package record

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrAlreadyCompleted = errors.New("parking record is already completed")
	ErrExitBeforeEntry  = errors.New("exit time cannot be before entry time")
)

// Record is one parking session: Active from entry until Close fixes the
// exit time and duration, after which it never reverts.
type Record struct {
	id          uuid.UUID
	slotNumber  string
	plateNumber string
	entryTime   time.Time
	exitTime    *time.Time
	duration    int // minutes, derived on Close
	status      Status
	createdAt   time.Time
	updatedAt   time.Time
}

func NewRecord(slotNumber, plateNumber string, entryTime time.Time) *Record {
	return &Record{
		id:          uuid.New(),
		slotNumber:  slotNumber,
		plateNumber: plateNumber,
		entryTime:   entryTime,
		status:      StatusActive,
	}
}

func ReconstructRecord(
	id uuid.UUID,
	slotNumber, plateNumber string,
	entryTime time.Time,
	exitTime *time.Time,
	duration int,
	status Status,
	createdAt, updatedAt time.Time,
) *Record {
	return &Record{
		id:          id,
		slotNumber:  slotNumber,
		plateNumber: plateNumber,
		entryTime:   entryTime,
		exitTime:    exitTime,
		duration:    duration,
		status:      status,
		createdAt:   createdAt,
		updatedAt:   updatedAt,
	}
}

// Close fixes the exit time, derives the duration as whole minutes rounded
// up (a one-second stay counts as one minute), and completes the session.
func (r *Record) Close(exitTime time.Time) error {
	if r.status == StatusCompleted {
		return ErrAlreadyCompleted
	}
	if exitTime.Before(r.entryTime) {
		return ErrExitBeforeEntry
	}

	r.exitTime = &exitTime
	r.duration = ceilMinutes(exitTime.Sub(r.entryTime))
	r.status = StatusCompleted
	return nil
}

func ceilMinutes(d time.Duration) int {
	if d <= 0 {
		return 0
	}
	return int((d + time.Minute - 1) / time.Minute)
}

func (r *Record) IsActive() bool {
	return r.status == StatusActive
}

func (r *Record) IsCompleted() bool {
	return r.status == StatusCompleted
}

func (r *Record) ID() uuid.UUID        { return r.id }
func (r *Record) SlotNumber() string   { return r.slotNumber }
func (r *Record) PlateNumber() string  { return r.plateNumber }
func (r *Record) EntryTime() time.Time { return r.entryTime }
func (r *Record) ExitTime() *time.Time { return r.exitTime }
func (r *Record) Duration() int        { return r.duration }
func (r *Record) Status() Status       { return r.status }
func (r *Record) CreatedAt() time.Time { return r.createdAt }
func (r *Record) UpdatedAt() time.Time { return r.updatedAt }
