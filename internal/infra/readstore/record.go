package readstore

import (
	"context"

	"smartpark/internal/infra"
	"smartpark/internal/infra/db"
	"smartpark/internal/pkg/pgconv"
	"smartpark/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

type RecordReadStore struct {
	db db.DBTX
}

func NewRecordReadStore(dbtx db.DBTX) *RecordReadStore {
	return &RecordReadStore{db: dbtx}
}

const recordViewQuery = `
	SELECT r.id, r.slot_number, r.plate_number, c.driver_name,
	       r.entry_time, r.exit_time, r.duration_minutes, r.status,
	       r.created_at, r.updated_at
	FROM parking_records r
	LEFT JOIN cars c ON c.plate_number = r.plate_number`

func (r *RecordReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.RecordView, error) {
	row := r.db.QueryRow(ctx, recordViewQuery+`
	WHERE r.id = $1`,
		id)

	view, err := scanRecordView(row)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("parking record not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find parking record", err)
	}
	return view, nil
}

func (r *RecordReadStore) FindAll(ctx context.Context) ([]*queries.RecordView, error) {
	rows, err := r.db.Query(ctx, recordViewQuery+`
	ORDER BY r.entry_time DESC`)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list parking records", err)
	}
	defer rows.Close()

	return collectRecordViews(rows)
}

func (r *RecordReadStore) FindByStatus(ctx context.Context, status string) ([]*queries.RecordView, error) {
	rows, err := r.db.Query(ctx, recordViewQuery+`
	WHERE r.status = $1
	ORDER BY r.entry_time DESC`,
		status)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list parking records by status", err)
	}
	defer rows.Close()

	return collectRecordViews(rows)
}

func collectRecordViews(rows pgx.Rows) ([]*queries.RecordView, error) {
	result := make([]*queries.RecordView, 0)
	for rows.Next() {
		view, err := scanRecordView(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan parking record row", err)
		}
		result = append(result, view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read parking record rows", err)
	}
	return result, nil
}

func scanRecordView(row pgx.Row) (*queries.RecordView, error) {
	var (
		view       queries.RecordView
		driverName pgtype.Text
		exitTime   pgtype.Timestamptz
	)
	if err := row.Scan(
		&view.ID, &view.SlotNumber, &view.PlateNumber, &driverName,
		&view.EntryTime, &exitTime, &view.DurationMinutes, &view.Status,
		&view.CreatedAt, &view.UpdatedAt,
	); err != nil {
		return nil, err
	}

	view.DriverName = pgconv.StringPtrFromPgtype(driverName)
	if exitTime.Valid {
		t := exitTime.Time
		view.ExitTime = &t
	}
	return &view, nil
}
