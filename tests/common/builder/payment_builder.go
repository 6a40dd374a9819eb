//go:build unit || e2e

package builder

import (
	"time"

	dompayment "smartpark/internal/domain/payment"
	reqdto "smartpark/internal/handler/dto/request"
	"smartpark/internal/usecase/queries"

	"github.com/google/uuid"
)

type PaymentBuilder struct {
	ParkingRecordID uuid.UUID
	AmountPaid      int64
	PaymentDate     time.Time
}

func NewPaymentBuilder() *PaymentBuilder {
	return &PaymentBuilder{
		ParkingRecordID: uuid.New(),
		AmountPaid:      1000,
		PaymentDate:     time.Now(),
	}
}

func (b *PaymentBuilder) With(mutate func(*PaymentBuilder)) *PaymentBuilder {
	mutate(b)
	return b
}

// Build methods
func (b *PaymentBuilder) BuildDomain() (*dompayment.Payment, error) {
	return dompayment.NewPayment(b.ParkingRecordID, b.AmountPaid, b.PaymentDate)
}

func (b *PaymentBuilder) BuildPayRequestDTO() reqdto.PayRequest {
	return reqdto.PayRequest{
		AmountPaid: b.AmountPaid,
	}
}

func (b *PaymentBuilder) BuildView() *queries.PaymentView {
	return &queries.PaymentView{
		ID:              uuid.New(),
		ParkingRecordID: b.ParkingRecordID,
		AmountPaid:      b.AmountPaid,
		PaymentDate:     b.PaymentDate,
		CreatedAt:       b.PaymentDate,
	}
}

// Fluent builder methods
func (b *PaymentBuilder) WithParkingRecordID(recordID uuid.UUID) *PaymentBuilder {
	b.ParkingRecordID = recordID
	return b
}

func (b *PaymentBuilder) WithAmountPaid(amount int64) *PaymentBuilder {
	b.AmountPaid = amount
	return b
}
