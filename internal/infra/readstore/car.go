package readstore

import (
	"context"

	"smartpark/internal/infra"
	"smartpark/internal/infra/db"
	"smartpark/internal/pkg/pgconv"
	"smartpark/internal/usecase/queries"

	"github.com/jackc/pgx/v5"
)

type CarReadStore struct {
	db db.DBTX
}

func NewCarReadStore(dbtx db.DBTX) *CarReadStore {
	return &CarReadStore{db: dbtx}
}

func (r *CarReadStore) FindByPlate(ctx context.Context, plateNumber string) (*queries.CarView, error) {
	row := r.db.QueryRow(ctx, `
		SELECT plate_number, driver_name, phone_number, created_at, updated_at
		FROM cars
		WHERE plate_number = $1`,
		plateNumber)

	view, err := scanCarView(row)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("car not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find car by plate", err)
	}
	return view, nil
}

func (r *CarReadStore) FindAll(ctx context.Context) ([]*queries.CarView, error) {
	rows, err := r.db.Query(ctx, `
		SELECT plate_number, driver_name, phone_number, created_at, updated_at
		FROM cars
		ORDER BY plate_number ASC`)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list cars", err)
	}
	defer rows.Close()

	result := make([]*queries.CarView, 0)
	for rows.Next() {
		view, err := scanCarView(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan car row", err)
		}
		result = append(result, view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read car rows", err)
	}
	return result, nil
}

func scanCarView(row pgx.Row) (*queries.CarView, error) {
	var view queries.CarView
	if err := row.Scan(&view.PlateNumber, &view.DriverName, &view.PhoneNumber, &view.CreatedAt, &view.UpdatedAt); err != nil {
		return nil, err
	}
	return &view, nil
}
