package repository

import (
	"context"
	"time"

	"smartpark/internal/domain/payment"
	"smartpark/internal/infra"
	"smartpark/internal/infra/db"
	"smartpark/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type PaymentRepository struct{}

func NewPaymentRepository() *PaymentRepository {
	return &PaymentRepository{}
}

func (r *PaymentRepository) Create(ctx context.Context, dbtx db.DBTX, p *payment.Payment) error {
	_, err := dbtx.Exec(ctx, `
		INSERT INTO payments (id, parking_record_id, amount_paid, payment_date)
		VALUES ($1, $2, $3, $4)`,
		p.ID(), p.ParkingRecordID(), p.AmountPaid(), p.PaymentDate())
	if err != nil {
		if isDuplicateKey(err) {
			return infra.WrapRepoErr("payment already exists for this parking record", err, infra.KindDuplicateKey)
		}
		if isForeignKeyViolation(err) {
			return infra.WrapRepoErr("parking record does not exist", err, infra.KindForeignKeyViolated)
		}
		return infra.WrapRepoErr("failed to create payment", err)
	}
	return nil
}

func (r *PaymentRepository) FindByRecordID(ctx context.Context, dbtx db.DBTX, recordID uuid.UUID) (*payment.Payment, error) {
	row := dbtx.QueryRow(ctx, `
		SELECT id, parking_record_id, amount_paid, payment_date, created_at
		FROM payments
		WHERE parking_record_id = $1`,
		recordID)

	var (
		id          uuid.UUID
		recID       uuid.UUID
		amount      int64
		paymentDate time.Time
		createdAt   time.Time
	)
	if err := row.Scan(&id, &recID, &amount, &paymentDate, &createdAt); err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("payment not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find payment by record", err)
	}

	return payment.ReconstructPayment(id, recID, amount, paymentDate, createdAt), nil
}
