package readstore

import (
	"context"

	"smartpark/internal/infra"
	"smartpark/internal/infra/db"
	"smartpark/internal/pkg/pgconv"
	"smartpark/internal/usecase/queries"

	"github.com/jackc/pgx/v5"
)

type SlotReadStore struct {
	db db.DBTX
}

func NewSlotReadStore(dbtx db.DBTX) *SlotReadStore {
	return &SlotReadStore{db: dbtx}
}

func (r *SlotReadStore) FindByNumber(ctx context.Context, slotNumber string) (*queries.SlotView, error) {
	row := r.db.QueryRow(ctx, `
		SELECT slot_number, slot_status, created_at, updated_at
		FROM parking_slots
		WHERE slot_number = $1`,
		slotNumber)

	view, err := scanSlotView(row)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("slot not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find slot by number", err)
	}
	return view, nil
}

func (r *SlotReadStore) FindAll(ctx context.Context) ([]*queries.SlotView, error) {
	rows, err := r.db.Query(ctx, `
		SELECT slot_number, slot_status, created_at, updated_at
		FROM parking_slots
		ORDER BY slot_number ASC`)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list slots", err)
	}
	defer rows.Close()

	return collectSlotViews(rows)
}

func (r *SlotReadStore) FindByStatus(ctx context.Context, status string) ([]*queries.SlotView, error) {
	rows, err := r.db.Query(ctx, `
		SELECT slot_number, slot_status, created_at, updated_at
		FROM parking_slots
		WHERE slot_status = $1
		ORDER BY slot_number ASC`,
		status)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list slots by status", err)
	}
	defer rows.Close()

	return collectSlotViews(rows)
}

func collectSlotViews(rows pgx.Rows) ([]*queries.SlotView, error) {
	result := make([]*queries.SlotView, 0)
	for rows.Next() {
		view, err := scanSlotView(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan slot row", err)
		}
		result = append(result, view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read slot rows", err)
	}
	return result, nil
}

func scanSlotView(row pgx.Row) (*queries.SlotView, error) {
	var view queries.SlotView
	if err := row.Scan(&view.SlotNumber, &view.Status, &view.CreatedAt, &view.UpdatedAt); err != nil {
		return nil, err
	}
	return &view, nil
}
