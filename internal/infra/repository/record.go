package repository

import (
	"context"
	"time"

	"smartpark/internal/domain/record"
	"smartpark/internal/infra"
	"smartpark/internal/infra/db"
	"smartpark/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type RecordRepository struct{}

func NewRecordRepository() *RecordRepository {
	return &RecordRepository{}
}

func (r *RecordRepository) Create(ctx context.Context, dbtx db.DBTX, rec *record.Record) error {
	_, err := dbtx.Exec(ctx, `
		INSERT INTO parking_records (id, slot_number, plate_number, entry_time, duration_minutes, status)
		VALUES ($1, $2, $3, $4, $5, $6)`,
		rec.ID(), rec.SlotNumber(), rec.PlateNumber(), rec.EntryTime(), rec.Duration(), rec.Status().String())
	if err != nil {
		if isDuplicateKey(err) {
			// Partial unique index: one Active record per slot
			return infra.WrapRepoErr("slot already has an active record", err, infra.KindDuplicateKey)
		}
		if isForeignKeyViolation(err) {
			return infra.WrapRepoErr("slot or car does not exist", err, infra.KindForeignKeyViolated)
		}
		return infra.WrapRepoErr("failed to create parking record", err)
	}
	return nil
}

func (r *RecordRepository) FindByID(ctx context.Context, dbtx db.DBTX, id uuid.UUID) (*record.Record, error) {
	return r.findByID(ctx, dbtx, id, false)
}

// FindByIDForUpdate locks the record row so a concurrent exit or payment
// against the same record serializes behind this transaction.
func (r *RecordRepository) FindByIDForUpdate(ctx context.Context, dbtx db.DBTX, id uuid.UUID) (*record.Record, error) {
	return r.findByID(ctx, dbtx, id, true)
}

func (r *RecordRepository) findByID(ctx context.Context, dbtx db.DBTX, id uuid.UUID, forUpdate bool) (*record.Record, error) {
	query := `
		SELECT id, slot_number, plate_number, entry_time, exit_time, duration_minutes, status, created_at, updated_at
		FROM parking_records
		WHERE id = $1`
	if forUpdate {
		query += `
		FOR UPDATE`
	}

	row := dbtx.QueryRow(ctx, query, id)

	var (
		recID      uuid.UUID
		slotNumber string
		plate      string
		entryTime  time.Time
		exitTime   pgtype.Timestamptz
		duration   int32
		status     string
		createdAt  time.Time
		updatedAt  time.Time
	)
	if err := row.Scan(&recID, &slotNumber, &plate, &entryTime, &exitTime, &duration, &status, &createdAt, &updatedAt); err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("parking record not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find parking record", err)
	}

	var exit *time.Time
	if exitTime.Valid {
		t := exitTime.Time
		exit = &t
	}

	return record.ReconstructRecord(
		recID, slotNumber, plate,
		entryTime, exit, int(duration),
		record.Status(status),
		createdAt, updatedAt,
	), nil
}

// Update persists the exit-side fields fixed by Record.Close.
func (r *RecordRepository) Update(ctx context.Context, dbtx db.DBTX, rec *record.Record) error {
	tag, err := dbtx.Exec(ctx, `
		UPDATE parking_records
		SET exit_time = $2, duration_minutes = $3, status = $4, updated_at = now()
		WHERE id = $1`,
		rec.ID(), rec.ExitTime(), rec.Duration(), rec.Status().String())
	if err != nil {
		return infra.WrapRepoErr("failed to update parking record", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("parking record not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *RecordRepository) Delete(ctx context.Context, dbtx db.DBTX, id uuid.UUID) error {
	tag, err := dbtx.Exec(ctx, `
		DELETE FROM parking_records
		WHERE id = $1`,
		id)
	if err != nil {
		return infra.WrapRepoErr("failed to delete parking record", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("parking record not found", nil, infra.KindNotFound)
	}
	return nil
}
