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

func CreateTestGuest(t *testing.T, db DBLike, document, fullName string) uuid.UUID {
	t.Helper()

	guestID := uuid.New()
	ctx := context.Background()

	tag, err := db.Exec(ctx,
		"INSERT INTO guests (id, document, full_name, country) VALUES ($1, $2, $3, 'PT') ON CONFLICT (document) DO NOTHING",
		guestID, document, fullName)
	require.NoError(t, err)

	if tag.RowsAffected() == 0 {
		_ = db.QueryRow(ctx, "SELECT id FROM guests WHERE document = $1", document).Scan(&guestID)
	}

	return guestID
}

func LookupRoomID(t *testing.T, db DBLike, hotelName string, number int) uuid.UUID {
	t.Helper()

	var roomID uuid.UUID
	err := db.QueryRow(context.Background(), `
		SELECT r.id FROM rooms r
		JOIN hotels h ON h.id = r.hotel_id
		WHERE h.name = $1 AND r.number = $2`, hotelName, number).Scan(&roomID)
	require.NoError(t, err)

	return roomID
}

func GuestPoints(t *testing.T, db DBLike, guestID uuid.UUID) int {
	t.Helper()

	var points int
	err := db.QueryRow(context.Background(), "SELECT points FROM guests WHERE id = $1", guestID).Scan(&points)
	require.NoError(t, err)

	return points
}

// inserts the hotel catalog every test scenario builds on
func SeedReferenceData(pool *pgxpool.Pool) error {
	ctx := context.Background()

	_, err := pool.Exec(ctx, `
		WITH hotel AS (
		    INSERT INTO hotels (name, location, stars)
		    VALUES ('Grand Plaza', 'Lisbon', 4)
		    RETURNING id
		),
		room_rows AS (
		    INSERT INTO rooms (hotel_id, number, floor, room_type, capacity, amenities)
		    SELECT id, v.number, v.floor, v.room_type, v.capacity, v.amenities
		    FROM hotel, (VALUES
		        (101, 1, 'double', 2, 'wifi,tv'),
		        (102, 1, 'double', 2, 'wifi,tv'),
		        (201, 2, 'suite',  4, 'wifi,tv,jacuzzi')
		    ) AS v(number, floor, room_type, capacity, amenities)
		),
		tariff_rows AS (
		    INSERT INTO tariffs (hotel_id, room_type, season, base_price, variation_percent)
		    SELECT id, v.room_type, v.season, v.base_price, v.variation_percent
		    FROM hotel, (VALUES
		        ('double', 'low',  80.00, -30.00),
		        ('double', 'high', 80.00,  25.00),
		        ('suite',  'low',  80.00, -30.00),
		        ('suite',  'high', 80.00,  25.00)
		    ) AS v(room_type, season, base_price, variation_percent)
		)
		INSERT INTO services (hotel_id, name, price)
		SELECT id, v.name, v.price
		FROM hotel, (VALUES
		    ('breakfast',     12.50),
		    ('spa',           25.00),
		    ('parking',        5.00),
		    ('late_checkout',  0.00)
		) AS v(name, price);
	`)
	return err
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
		    AND tablename NOT IN ('atlas_schema_revisions')`)
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
