package export

import (
	"context"
	"database/sql"
	"errors"

	"github.com/ukaji3/screener-go/pkg/screener/models"

	_ "modernc.org/sqlite" // Pure-Go SQLite driver.
)

// schema recreates every table so the database reflects a single run.
var schema = []string{
	`DROP TABLE IF EXISTS symbols`,
	`DROP TABLE IF EXISTS records`,
	`DROP TABLE IF EXISTS expirations`,
	`DROP TABLE IF EXISTS bounds`,
	`CREATE TABLE symbols (
		position    INTEGER NOT NULL,
		symbol      TEXT NOT NULL,
		description TEXT NOT NULL
	)`,
	`CREATE TABLE records (
		symbol         TEXT PRIMARY KEY,
		category_name  TEXT NOT NULL,
		prior_close    REAL,
		signal         REAL,
		today_date     TEXT,
		pd1_percent_ll REAL,
		pd1_percent_ul REAL
	)`,
	`CREATE TABLE expirations (
		symbol         TEXT NOT NULL,
		position       INTEGER NOT NULL,
		expiration     TEXT NOT NULL,
		days_to_expiry INTEGER NOT NULL,
		median         REAL,
		PRIMARY KEY (symbol, position)
	)`,
	`CREATE TABLE bounds (
		symbol   TEXT NOT NULL,
		position INTEGER NOT NULL,
		grp      TEXT NOT NULL,
		key      TEXT NOT NULL,
		lower    REAL,
		upper    REAL
	)`,
}

// WriteSQLite writes the directory and the parsed data to a SQLite database
// at path. Existing tables are replaced.
func WriteSQLite(ctx context.Context, path string, symbols []models.SymbolEntry, data *models.ScreenerData) error {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return err
	}
	defer db.Close()

	for _, stmt := range schema {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return err
		}
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	if err := insertAll(ctx, tx, symbols, data); err != nil {
		return errors.Join(err, tx.Rollback())
	}
	return tx.Commit()
}

func insertAll(ctx context.Context, tx *sql.Tx, symbols []models.SymbolEntry, data *models.ScreenerData) error {
	for i, s := range symbols {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO symbols (position, symbol, description) VALUES (?, ?, ?)`,
			i, s.Symbol, s.Description); err != nil {
			return err
		}
	}

	for _, name := range data.Names() {
		record, _ := data.Get(name)
		md := record.Metadata
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO records (symbol, category_name, prior_close, signal, today_date, pd1_percent_ll, pd1_percent_ul)
			 VALUES (?, ?, ?, ?, ?, ?, ?)`,
			name, record.CategoryName, md.PriorClose, md.Signal, md.TodayDate, md.PD1PercentLL, md.PD1PercentUL); err != nil {
			return err
		}

		for pos, exp := range record.Expirations {
			if _, err := tx.ExecContext(ctx,
				`INSERT INTO expirations (symbol, position, expiration, days_to_expiry, median) VALUES (?, ?, ?, ?, ?)`,
				name, pos, exp.Expiration, exp.DaysToExpiry, exp.Median); err != nil {
				return err
			}
			for _, b := range exp.Bounds() {
				if _, err := tx.ExecContext(ctx,
					`INSERT INTO bounds (symbol, position, grp, key, lower, upper) VALUES (?, ?, ?, ?, ?, ?)`,
					name, pos, b.Group, b.Key, b.Lower, b.Upper); err != nil {
					return err
				}
			}
		}
	}
	return nil
}
