package commands

import (
	"context"

	"smartpark/internal/domain/payment"
	reqdto "smartpark/internal/handler/dto/request"
	"smartpark/internal/infra"
	"smartpark/internal/infra/db"
	"smartpark/internal/pkg/clock"
	"smartpark/internal/pkg/errs"
	"smartpark/internal/usecase/queries"
	"smartpark/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

var (
	ErrRecordNotCompleted   = errs.New("parking record is not completed")
	ErrPaymentAlreadyExists = errs.New("payment already exists for this record")
)

type PaymentCommands interface {
	Pay(ctx context.Context, recordID uuid.UUID, req reqdto.PayRequest) (*queries.PaymentView, error)
}

type paymentCommandsImpl struct {
	recordRepo     RecordRepository
	paymentRepo    PaymentRepository
	paymentQueries queries.PaymentQueries
	db             *pgxpool.Pool
	clock          clock.Clock
}

func NewPaymentCommands(
	recordRepo RecordRepository,
	paymentRepo PaymentRepository,
	paymentQueries queries.PaymentQueries,
	db *pgxpool.Pool,
	clock clock.Clock,
) PaymentCommands {
	return &paymentCommandsImpl{
		recordRepo:     recordRepo,
		paymentRepo:    paymentRepo,
		paymentQueries: paymentQueries,
		db:             db,
		clock:          clock,
	}
}

// Pay settles a completed record. The amount is taken as given; the quoted
// fee is advisory and operators may charge a corrected amount.
func (c *paymentCommandsImpl) Pay(ctx context.Context, recordID uuid.UUID, req reqdto.PayRequest) (*queries.PaymentView, error) {
	_, err := shared.WithDefaultRetry(ctx, c.db, func(tx db.DBTX) (struct{}, error) {
		rec, findErr := c.recordRepo.FindByIDForUpdate(ctx, tx, recordID)
		if findErr != nil {
			if infra.IsKind(findErr, infra.KindNotFound) {
				return struct{}{}, ErrRecordNotFound
			}
			return struct{}{}, errs.Mark(findErr, ErrDatabaseOperationFailed)
		}

		if !rec.IsCompleted() {
			return struct{}{}, ErrRecordNotCompleted
		}

		p, newErr := payment.NewPayment(recordID, req.AmountPaid, c.clock.Now())
		if newErr != nil {
			return struct{}{}, errs.Mark(newErr, ErrDomainValidation)
		}

		if createErr := c.paymentRepo.Create(ctx, tx, p); createErr != nil {
			if infra.IsKind(createErr, infra.KindDuplicateKey) {
				return struct{}{}, ErrPaymentAlreadyExists
			}
			return struct{}{}, errs.Mark(createErr, ErrDatabaseOperationFailed)
		}
		return struct{}{}, nil
	})
	if err != nil {
		return nil, err
	}

	return c.paymentQueries.GetByRecordID(ctx, recordID)
}
