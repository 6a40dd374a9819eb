//go:build unit || e2e

package dbtest

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

// bcrypt hash of "password123"
const testPasswordHash = "$2a$12$uhAjVE9f92IGYv3E25pJNetg.27lVt0p7jmLWjqjmhOg92ldPS0A."

func CreateTestUser(t *testing.T, db DBLike, email, role string) uuid.UUID {
	t.Helper()

	userID := uuid.New()
	ctx := context.Background()

	tag, err := db.Exec(ctx, "INSERT INTO users (id, email, password_hash, role, is_active) VALUES ($1, $2, $3, $4, true) ON CONFLICT (email) DO NOTHING",
		userID, email, testPasswordHash, role)
	require.NoError(t, err)

	if tag.RowsAffected() == 0 {
		_ = db.QueryRow(ctx, "SELECT id FROM users WHERE email = $1", email).Scan(&userID)
	}

	return userID
}

func CreateTestSlot(t *testing.T, db DBLike, slotNumber, status string) {
	t.Helper()

	ctx := context.Background()
	_, err := db.Exec(ctx, "INSERT INTO parking_slots (slot_number, slot_status) VALUES ($1, $2) ON CONFLICT (slot_number) DO UPDATE SET slot_status = $2",
		slotNumber, status)
	require.NoError(t, err)
}

func CreateTestCar(t *testing.T, db DBLike, plateNumber, driverName, phoneNumber string) {
	t.Helper()

	ctx := context.Background()
	_, err := db.Exec(ctx, "INSERT INTO cars (plate_number, driver_name, phone_number) VALUES ($1, $2, $3) ON CONFLICT (plate_number) DO NOTHING",
		plateNumber, driverName, phoneNumber)
	require.NoError(t, err)
}

func CreateActiveRecord(t *testing.T, db DBLike, slotNumber, plateNumber string, entryTime time.Time) uuid.UUID {
	t.Helper()

	recordID := uuid.New()
	ctx := context.Background()
	_, err := db.Exec(ctx, "INSERT INTO parking_records (id, slot_number, plate_number, entry_time, status) VALUES ($1, $2, $3, $4, 'Active')",
		recordID, slotNumber, plateNumber, entryTime)
	require.NoError(t, err)

	return recordID
}

func CreateCompletedRecord(t *testing.T, db DBLike, slotNumber, plateNumber string, entryTime, exitTime time.Time, durationMinutes int32) uuid.UUID {
	t.Helper()

	recordID := uuid.New()
	ctx := context.Background()
	_, err := db.Exec(ctx, "INSERT INTO parking_records (id, slot_number, plate_number, entry_time, exit_time, duration_minutes, status) VALUES ($1, $2, $3, $4, $5, $6, 'Completed')",
		recordID, slotNumber, plateNumber, entryTime, exitTime, durationMinutes)
	require.NoError(t, err)

	return recordID
}

func CreateTestPayment(t *testing.T, db DBLike, recordID uuid.UUID, amountPaid int64, paymentDate time.Time) uuid.UUID {
	t.Helper()

	paymentID := uuid.New()
	ctx := context.Background()
	_, err := db.Exec(ctx, "INSERT INTO payments (id, parking_record_id, amount_paid, payment_date) VALUES ($1, $2, $3, $4)",
		paymentID, recordID, amountPaid, paymentDate)
	require.NoError(t, err)

	return paymentID
}

// no static reference data; the schema starts empty
func SeedReferenceData(pool *pgxpool.Pool) error {
	return nil
}

var (
	buildTruncateOnce sync.Once
	truncateSQL       atomic.Value // string
)

// truncates all tables and reseeds reference data
func ResetDB(pool *pgxpool.Pool) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	buildTruncateOnce.Do(func() {
		rows, err := pool.Query(ctx, `
		  SELECT 'public.' || quote_ident(tablename)
		  FROM pg_tables
		  WHERE schemaname = 'public'
		    AND tablename NOT IN ('schema_migrations')`)
		if err != nil {
			truncateSQL.Store("")
			return
		}
		defer rows.Close()
		var tables []string
		for rows.Next() {
			var t string
			if err := rows.Scan(&t); err != nil {
				truncateSQL.Store("")
				return
			}
			tables = append(tables, t)
		}
		if rows.Err() != nil {
			truncateSQL.Store("")
			return
		}
		if len(tables) == 0 {
			truncateSQL.Store("SELECT 1")
			return
		}
		truncateSQL.Store("TRUNCATE " + strings.Join(tables, ", ") + " RESTART IDENTITY CASCADE;")
	})
	sqlAny := truncateSQL.Load()
	if sqlAny == nil || sqlAny.(string) == "" {
		return fmt.Errorf("failed to build TRUNCATE SQL")
	}
	if _, err := pool.Exec(ctx, sqlAny.(string)); err != nil {
		return err
	}

	return SeedReferenceData(pool)
}
