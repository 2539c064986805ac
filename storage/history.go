package storage

import (
	"database/sql"
	"fmt"
	"strings"

	_ "github.com/mattn/go-sqlite3"
)

// BookingRecord is a booking created from this client, kept locally so
// history and stats work without the backend.
type BookingRecord struct {
	ID            string  `json:"id"`
	UnitID        string  `json:"unit_id"`
	UnitName      string  `json:"unit_name"`
	UnitType      string  `json:"unit_type"`
	PricingPeriod string  `json:"pricing_period"`
	PaymentOption string  `json:"payment_option"`
	StartDate     string  `json:"start_date"`
	MoveInDate    string  `json:"move_in_date"`
	Price         float64 `json:"price"`
	CreatedAt     string  `json:"created_at"`
}

type HistoryFilter struct {
	From string
	To   string
}

func OpenHistoryDB() (*sql.DB, error) {
	if _, err := ensureConfigDir(); err != nil {
		return nil, err
	}
	path, err := HistoryPath()
	if err != nil {
		return nil, err
	}

	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, err
	}

	if err := ensureHistorySchema(db); err != nil {
		_ = db.Close()
		return nil, err
	}

	return db, nil
}

func ensureHistorySchema(db *sql.DB) error {
	createTable := `
CREATE TABLE IF NOT EXISTS bookings (
  id TEXT PRIMARY KEY,
  unit_id TEXT,
  unit_name TEXT,
  unit_type TEXT,
  pricing_period TEXT,
  payment_option TEXT,
  start_date TEXT,
  move_in_date TEXT,
  price REAL,
  created_at TEXT
);`

	if _, err := db.Exec(createTable); err != nil {
		return fmt.Errorf("create bookings table: %w", err)
	}

	if _, err := db.Exec("CREATE INDEX IF NOT EXISTS idx_bookings_start ON bookings(start_date);"); err != nil {
		return fmt.Errorf("create bookings index: %w", err)
	}

	return nil
}

func AddRecordIfNotExists(db *sql.DB, record BookingRecord) (bool, error) {
	query := `
INSERT OR IGNORE INTO bookings (
  id, unit_id, unit_name, unit_type, pricing_period, payment_option, start_date, move_in_date, price, created_at
) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?);`

	res, err := db.Exec(
		query,
		record.ID,
		record.UnitID,
		record.UnitName,
		record.UnitType,
		record.PricingPeriod,
		record.PaymentOption,
		record.StartDate,
		record.MoveInDate,
		record.Price,
		record.CreatedAt,
	)
	if err != nil {
		return false, err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return affected > 0, nil
}

func RemoveRecord(db *sql.DB, id string) (bool, error) {
	res, err := db.Exec("DELETE FROM bookings WHERE id = ?", id)
	if err != nil {
		return false, err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return affected > 0, nil
}

func ListRecords(db *sql.DB, filter HistoryFilter) ([]BookingRecord, error) {
	base := `
SELECT id, unit_id, unit_name, unit_type, pricing_period, payment_option, start_date, move_in_date, price, created_at
FROM bookings`

	conds := []string{}
	args := []any{}

	if filter.From != "" {
		conds = append(conds, "start_date >= ?")
		args = append(args, filter.From)
	}
	if filter.To != "" {
		conds = append(conds, "start_date <= ?")
		args = append(args, filter.To)
	}

	query := base
	if len(conds) > 0 {
		query += " WHERE " + strings.Join(conds, " AND ")
	}
	query += " ORDER BY start_date, created_at"

	rows, err := db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	records := []BookingRecord{}
	for rows.Next() {
		var record BookingRecord
		var price sql.NullFloat64
		if err := rows.Scan(
			&record.ID,
			&record.UnitID,
			&record.UnitName,
			&record.UnitType,
			&record.PricingPeriod,
			&record.PaymentOption,
			&record.StartDate,
			&record.MoveInDate,
			&price,
			&record.CreatedAt,
		); err != nil {
			return nil, err
		}
		if price.Valid {
			record.Price = price.Float64
		}
		records = append(records, record)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return records, nil
}
