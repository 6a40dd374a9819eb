package queries

import (
	"time"

	"github.com/google/uuid"
)

// SlotView represents read-optimized parking slot data
type SlotView struct {
	SlotNumber string    `json:"slot_number"`
	Status     string    `json:"status"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// CarView represents read-optimized car data
type CarView struct {
	PlateNumber string    `json:"plate_number"`
	DriverName  string    `json:"driver_name"`
	PhoneNumber string    `json:"phone_number"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// RecordView represents read-optimized parking record data joined with
// the car registered for its plate
type RecordView struct {
	ID              uuid.UUID  `json:"id"`
	SlotNumber      string     `json:"slot_number"`
	PlateNumber     string     `json:"plate_number"`
	DriverName      *string    `json:"driver_name,omitempty"`
	EntryTime       time.Time  `json:"entry_time"`
	ExitTime        *time.Time `json:"exit_time,omitempty"`
	DurationMinutes int32      `json:"duration_minutes"`
	Status          string     `json:"status"`
	CreatedAt       time.Time  `json:"created_at"`
	UpdatedAt       time.Time  `json:"updated_at"`
}

// PaymentView represents read-optimized payment data
type PaymentView struct {
	ID              uuid.UUID `json:"id"`
	ParkingRecordID uuid.UUID `json:"parking_record_id"`
	AmountPaid      int64     `json:"amount_paid"`
	PaymentDate     time.Time `json:"payment_date"`
	CreatedAt       time.Time `json:"created_at"`
}

// FeeQuoteView is the billed-hours breakdown for a completed record
type FeeQuoteView struct {
	RecordID        uuid.UUID `json:"record_id"`
	DurationMinutes int32     `json:"duration_minutes"`
	BilledHours     int       `json:"billed_hours"`
	Amount          int64     `json:"amount"`
}

// ReportRow is one payment joined with its parking record and car
type ReportRow struct {
	PaymentID       uuid.UUID  `json:"payment_id"`
	AmountPaid      int64      `json:"amount_paid"`
	PaymentDate     time.Time  `json:"payment_date"`
	RecordID        uuid.UUID  `json:"record_id"`
	SlotNumber      string     `json:"slot_number"`
	PlateNumber     string     `json:"plate_number"`
	DriverName      *string    `json:"driver_name,omitempty"`
	EntryTime       time.Time  `json:"entry_time"`
	ExitTime        *time.Time `json:"exit_time,omitempty"`
	DurationMinutes int32      `json:"duration_minutes"`
}

// DailyReportView aggregates the payments recorded on a single local day
type DailyReportView struct {
	Date        string       `json:"date"`
	TotalAmount int64        `json:"total_amount"`
	Count       int          `json:"count"`
	Payments    []*ReportRow `json:"payments"`
}

// AuthorizedUserView represents read-optimized user data with authorization info
type AuthorizedUserView struct {
	ID       uuid.UUID `json:"id"`
	Email    string    `json:"email"`
	Role     string    `json:"role"`
	IsActive bool      `json:"is_active"`
}
