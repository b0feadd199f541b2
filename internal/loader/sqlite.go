package loader

import (
	"database/sql"
	"fmt"
	"log"

	_ "modernc.org/sqlite"

	"StockLens/internal/model"
)

// SQLiteSource reads daily closing prices from a `prices` table in a
// SQLite database file:
//
//	CREATE TABLE prices (
//		id     INTEGER PRIMARY KEY AUTOINCREMENT,
//		symbol TEXT NOT NULL,
//		date   TEXT,
//		close  REAL NOT NULL
//	)
//
// Insertion order is taken as chronological, mirroring CSV row order.
// The source is read-only; nothing is ever written back.
type SQLiteSource struct {
	db   *sql.DB
	path string
}

// OpenSQLiteSource opens the SQLite database at dbPath.
func OpenSQLiteSource(dbPath string) (*SQLiteSource, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping sqlite: %w", err)
	}
	log.Printf("[INFO] sqlite price source opened: %s", dbPath)
	return &SQLiteSource{db: db, path: dbPath}, nil
}

func (s *SQLiteSource) Name() string { return "sqlite" }

func (s *SQLiteSource) LoadSeries(symbol string) (*model.PriceSeries, error) {
	rows, err := s.db.Query(
		`SELECT COALESCE(date, ''), close FROM prices WHERE symbol = ? ORDER BY id`, symbol)
	if err != nil {
		return nil, fmt.Errorf("query prices: %w", err)
	}
	defer rows.Close()

	series := &model.PriceSeries{Symbol: symbol}
	for rows.Next() {
		var dateStr string
		var close float64
		if err := rows.Scan(&dateStr, &close); err != nil {
			return nil, fmt.Errorf("scan price row: %w", err)
		}
		if close < 0 {
			return nil, fmt.Errorf("%s: negative close %v for %s: %w", s.path, close, symbol, ErrParse)
		}
		series.Points = append(series.Points, model.PricePoint{
			Date:  parseDate(dateStr),
			Close: close,
		})
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate price rows: %w", err)
	}
	return series, nil
}

func (s *SQLiteSource) Close() error {
	return s.db.Close()
}
