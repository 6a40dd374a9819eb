//go:build unit || e2e

package builder

import (
	"time"

	domrecord "smartpark/internal/domain/record"
	reqdto "smartpark/internal/handler/dto/request"
	"smartpark/internal/usecase/queries"

	"github.com/google/uuid"
)

type RecordBuilder struct {
	ID              uuid.UUID
	SlotNumber      string
	PlateNumber     string
	DriverName      string
	PhoneNumber     string
	EntryTime       time.Time
	ExitTime        *time.Time
	DurationMinutes int32
	Status          string
}

func NewRecordBuilder() *RecordBuilder {
	return &RecordBuilder{
		ID:          uuid.New(),
		SlotNumber:  "A1",
		PlateNumber: "RAB123C",
		DriverName:  "Jean Bosco",
		PhoneNumber: "0788123456",
		EntryTime:   time.Now().Add(-2 * time.Hour),
		Status:      string(domrecord.StatusActive),
	}
}

func (b *RecordBuilder) With(mutate func(*RecordBuilder)) *RecordBuilder {
	mutate(b)
	return b
}

// Build methods
func (b *RecordBuilder) BuildDomain() *domrecord.Record {
	return domrecord.NewRecord(b.SlotNumber, b.PlateNumber, b.EntryTime)
}

func (b *RecordBuilder) BuildEntryRequestDTO() reqdto.EntryRequest {
	return reqdto.EntryRequest{
		SlotNumber:  b.SlotNumber,
		PlateNumber: b.PlateNumber,
		DriverName:  b.DriverName,
		PhoneNumber: b.PhoneNumber,
	}
}

func (b *RecordBuilder) BuildView() *queries.RecordView {
	driverName := b.DriverName
	return &queries.RecordView{
		ID:              b.ID,
		SlotNumber:      b.SlotNumber,
		PlateNumber:     b.PlateNumber,
		DriverName:      &driverName,
		EntryTime:       b.EntryTime,
		ExitTime:        b.ExitTime,
		DurationMinutes: b.DurationMinutes,
		Status:          b.Status,
		CreatedAt:       b.EntryTime,
		UpdatedAt:       b.EntryTime,
	}
}

// Fluent builder methods
func (b *RecordBuilder) WithSlotNumber(slotNumber string) *RecordBuilder {
	b.SlotNumber = slotNumber
	return b
}

func (b *RecordBuilder) WithPlateNumber(plateNumber string) *RecordBuilder {
	b.PlateNumber = plateNumber
	return b
}

func (b *RecordBuilder) WithEntryTime(entryTime time.Time) *RecordBuilder {
	b.EntryTime = entryTime
	return b
}

func (b *RecordBuilder) AsCompleted(exitTime time.Time, durationMinutes int32) *RecordBuilder {
	b.ExitTime = &exitTime
	b.DurationMinutes = durationMinutes
	b.Status = string(domrecord.StatusCompleted)
	return b
}
