package repository

import (
	"context"
	"time"

	"smartpark/internal/domain/slot"
	"smartpark/internal/infra"
	"smartpark/internal/infra/db"
	"smartpark/internal/pkg/pgconv"
)

type SlotRepository struct{}

func NewSlotRepository() *SlotRepository {
	return &SlotRepository{}
}

func (r *SlotRepository) Create(ctx context.Context, dbtx db.DBTX, s *slot.Slot) error {
	_, err := dbtx.Exec(ctx, `
		INSERT INTO parking_slots (slot_number, slot_status)
		VALUES ($1, $2)`,
		s.Number().Value(), s.Status().String())
	if err != nil {
		if isDuplicateKey(err) {
			return infra.WrapRepoErr("parking slot already exists", err, infra.KindDuplicateKey)
		}
		return infra.WrapRepoErr("failed to create parking slot", err)
	}
	return nil
}

// FindByNumberForUpdate locks the slot row for the rest of the transaction,
// serializing concurrent entries against the same slot.
func (r *SlotRepository) FindByNumberForUpdate(ctx context.Context, dbtx db.DBTX, number string) (*slot.Slot, error) {
	row := dbtx.QueryRow(ctx, `
		SELECT slot_number, slot_status, created_at, updated_at
		FROM parking_slots
		WHERE slot_number = $1
		FOR UPDATE`,
		number)

	return scanSlot(row)
}

func (r *SlotRepository) FindByNumber(ctx context.Context, dbtx db.DBTX, number string) (*slot.Slot, error) {
	row := dbtx.QueryRow(ctx, `
		SELECT slot_number, slot_status, created_at, updated_at
		FROM parking_slots
		WHERE slot_number = $1`,
		number)

	return scanSlot(row)
}

func (r *SlotRepository) UpdateStatus(ctx context.Context, dbtx db.DBTX, number string, status slot.Status) error {
	tag, err := dbtx.Exec(ctx, `
		UPDATE parking_slots
		SET slot_status = $2, updated_at = now()
		WHERE slot_number = $1`,
		number, status.String())
	if err != nil {
		return infra.WrapRepoErr("failed to update slot status", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("parking slot not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *SlotRepository) Delete(ctx context.Context, dbtx db.DBTX, number string) error {
	tag, err := dbtx.Exec(ctx, `
		DELETE FROM parking_slots
		WHERE slot_number = $1`,
		number)
	if err != nil {
		return infra.WrapRepoErr("failed to delete parking slot", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("parking slot not found", nil, infra.KindNotFound)
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanSlot(row rowScanner) (*slot.Slot, error) {
	var (
		number    string
		status    string
		createdAt time.Time
		updatedAt time.Time
	)
	if err := row.Scan(&number, &status, &createdAt, &updatedAt); err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("parking slot not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find parking slot", err)
	}

	n, err := slot.NewNumber(number)
	if err != nil {
		return nil, infra.WrapRepoErr("corrupt slot number in storage", err)
	}

	return slot.ReconstructSlot(n, slot.Status(status), createdAt, updatedAt), nil
}
