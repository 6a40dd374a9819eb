package response

import (
	"time"

	"smartpark/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type PaymentResponse struct {
	ID              uuid.UUID `json:"id"`
	ParkingRecordID uuid.UUID `json:"parkingRecordId"`
	AmountPaid      int64     `json:"amountPaid"`
	PaymentDate     time.Time `json:"paymentDate"`
	CreatedAt       time.Time `json:"createdAt"`
}

type FeeQuoteResponse struct {
	RecordID        uuid.UUID `json:"recordId"`
	DurationMinutes int32     `json:"duration"`
	BilledHours     int       `json:"billedHours"`
	Amount          int64     `json:"amount"`
}

func FromPaymentView(v *queries.PaymentView) *PaymentResponse {
	var resp PaymentResponse
	_ = copier.Copy(&resp, v)
	return &resp
}

func FromPaymentViews(views []*queries.PaymentView) []*PaymentResponse {
	result := make([]*PaymentResponse, len(views))
	for i, v := range views {
		result[i] = FromPaymentView(v)
	}
	return result
}

func FromFeeQuoteView(v *queries.FeeQuoteView) *FeeQuoteResponse {
	var resp FeeQuoteResponse
	_ = copier.Copy(&resp, v)
	return &resp
}
