package response

import (
	"time"

	"smartpark/internal/usecase/queries"

	"github.com/google/uuid"
)

type ReportRowResponse struct {
	PaymentID       uuid.UUID  `json:"paymentId"`
	AmountPaid      int64      `json:"amountPaid"`
	PaymentDate     time.Time  `json:"paymentDate"`
	RecordID        uuid.UUID  `json:"recordId"`
	SlotNumber      string     `json:"slotNumber"`
	PlateNumber     string     `json:"plateNumber"`
	DriverName      string     `json:"driverName"`
	EntryTime       time.Time  `json:"entryTime"`
	ExitTime        *time.Time `json:"exitTime,omitempty"`
	DurationMinutes int32      `json:"duration"`
}

type DailyReportResponse struct {
	Date        string               `json:"date"`
	TotalAmount int64                `json:"totalAmount"`
	Count       int                  `json:"count"`
	Payments    []*ReportRowResponse `json:"payments"`
}

func FromDailyReportView(v *queries.DailyReportView) *DailyReportResponse {
	rows := make([]*ReportRowResponse, len(v.Payments))
	for i, row := range v.Payments {
		// A payment whose car row is gone still reports, with a blank driver.
		driverName := ""
		if row.DriverName != nil {
			driverName = *row.DriverName
		}
		rows[i] = &ReportRowResponse{
			PaymentID:       row.PaymentID,
			AmountPaid:      row.AmountPaid,
			PaymentDate:     row.PaymentDate,
			RecordID:        row.RecordID,
			SlotNumber:      row.SlotNumber,
			PlateNumber:     row.PlateNumber,
			DriverName:      driverName,
			EntryTime:       row.EntryTime,
			ExitTime:        row.ExitTime,
			DurationMinutes: row.DurationMinutes,
		}
	}

	return &DailyReportResponse{
		Date:        v.Date,
		TotalAmount: v.TotalAmount,
		Count:       v.Count,
		Payments:    rows,
	}
}
