package readstore

import (
	"context"
	"time"

	"smartpark/internal/infra"
	"smartpark/internal/infra/db"
	"smartpark/internal/pkg/pgconv"
	"smartpark/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

type PaymentReadStore struct {
	db db.DBTX
}

func NewPaymentReadStore(dbtx db.DBTX) *PaymentReadStore {
	return &PaymentReadStore{db: dbtx}
}

func (r *PaymentReadStore) FindByRecordID(ctx context.Context, recordID uuid.UUID) (*queries.PaymentView, error) {
	row := r.db.QueryRow(ctx, `
		SELECT id, parking_record_id, amount_paid, payment_date, created_at
		FROM payments
		WHERE parking_record_id = $1`,
		recordID)

	view, err := scanPaymentView(row)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("payment not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find payment by record", err)
	}
	return view, nil
}

func (r *PaymentReadStore) FindAll(ctx context.Context) ([]*queries.PaymentView, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, parking_record_id, amount_paid, payment_date, created_at
		FROM payments
		ORDER BY payment_date DESC`)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list payments", err)
	}
	defer rows.Close()

	result := make([]*queries.PaymentView, 0)
	for rows.Next() {
		view, err := scanPaymentView(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan payment row", err)
		}
		result = append(result, view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read payment rows", err)
	}
	return result, nil
}

// FindPaymentsBetween joins each payment in [from, to) with its parking
// record and the car registered for the plate, newest payment first.
func (r *PaymentReadStore) FindPaymentsBetween(ctx context.Context, from, to time.Time) ([]*queries.ReportRow, error) {
	rows, err := r.db.Query(ctx, `
		SELECT p.id, p.amount_paid, p.payment_date,
		       r.id, r.slot_number, r.plate_number, c.driver_name,
		       r.entry_time, r.exit_time, r.duration_minutes
		FROM payments p
		JOIN parking_records r ON r.id = p.parking_record_id
		LEFT JOIN cars c ON c.plate_number = r.plate_number
		WHERE p.payment_date >= $1 AND p.payment_date < $2
		ORDER BY p.payment_date DESC`,
		from, to)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list payments for report", err)
	}
	defer rows.Close()

	result := make([]*queries.ReportRow, 0)
	for rows.Next() {
		var (
			row        queries.ReportRow
			driverName pgtype.Text
			exitTime   pgtype.Timestamptz
		)
		if err := rows.Scan(
			&row.PaymentID, &row.AmountPaid, &row.PaymentDate,
			&row.RecordID, &row.SlotNumber, &row.PlateNumber, &driverName,
			&row.EntryTime, &exitTime, &row.DurationMinutes,
		); err != nil {
			return nil, infra.WrapRepoErr("failed to scan report row", err)
		}

		row.DriverName = pgconv.StringPtrFromPgtype(driverName)
		if exitTime.Valid {
			t := exitTime.Time
			row.ExitTime = &t
		}
		result = append(result, &row)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read report rows", err)
	}
	return result, nil
}

func scanPaymentView(row pgx.Row) (*queries.PaymentView, error) {
	var view queries.PaymentView
	if err := row.Scan(&view.ID, &view.ParkingRecordID, &view.AmountPaid, &view.PaymentDate, &view.CreatedAt); err != nil {
		return nil, err
	}
	return &view, nil
}
