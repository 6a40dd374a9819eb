package response

import (
	"time"

	"smartpark/internal/usecase/commands"
	"smartpark/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type RecordResponse struct {
	ID              uuid.UUID  `json:"id"`
	SlotNumber      string     `json:"slotNumber"`
	PlateNumber     string     `json:"plateNumber"`
	DriverName      *string    `json:"driverName,omitempty"`
	EntryTime       time.Time  `json:"entryTime"`
	ExitTime        *time.Time `json:"exitTime,omitempty"`
	DurationMinutes int32      `json:"duration"`
	Status          string     `json:"status"`
	CreatedAt       time.Time  `json:"createdAt"`
	UpdatedAt       time.Time  `json:"updatedAt"`
}

type EntryResponse struct {
	Record     *RecordResponse `json:"record"`
	CarOutcome string          `json:"carOutcome"`
}

type ExitResponse struct {
	Record      *RecordResponse `json:"record"`
	BilledHours int             `json:"billedHours"`
	Fee         int64           `json:"fee"`
}

func FromRecordView(v *queries.RecordView) *RecordResponse {
	var resp RecordResponse
	_ = copier.Copy(&resp, v)
	return &resp
}

func FromRecordViews(views []*queries.RecordView) []*RecordResponse {
	result := make([]*RecordResponse, len(views))
	for i, v := range views {
		result[i] = FromRecordView(v)
	}
	return result
}

func FromEntryResult(r *commands.EntryResult) *EntryResponse {
	return &EntryResponse{
		Record:     FromRecordView(r.Record),
		CarOutcome: string(r.CarOutcome),
	}
}

func FromExitResult(r *commands.ExitResult) *ExitResponse {
	return &ExitResponse{
		Record:      FromRecordView(r.Record),
		BilledHours: r.BilledHours,
		Fee:         r.Fee,
	}
}
