package storage

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/jacksmith/pcat/internal/model"
	_ "modernc.org/sqlite"
)

const sqliteSchema = `
CREATE TABLE IF NOT EXISTS projects (
	position        INTEGER PRIMARY KEY,
	kind            TEXT    NOT NULL,
	title           TEXT    NOT NULL,
	estimated_hours INTEGER NOT NULL
);
CREATE TABLE IF NOT EXISTS tasks (
	project_position INTEGER NOT NULL REFERENCES projects(position) ON DELETE CASCADE,
	position         INTEGER NOT NULL,
	text             TEXT    NOT NULL,
	PRIMARY KEY (project_position, position)
);`

// openSQLite opens the catalog database at path with foreign keys enforced.
func openSQLite(ctx context.Context, path string) (*sql.DB, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}
	// A single connection keeps the pragma below in effect for every statement
	db.SetMaxOpenConns(1)

	if _, err := db.ExecContext(ctx, "PRAGMA foreign_keys = ON"); err != nil {
		db.Close()
		return nil, fmt.Errorf("enabling foreign keys: %w", err)
	}
	return db, nil
}

// withinTx runs fn in a transaction, rolling back if fn fails.
func withinTx(ctx context.Context, db *sql.DB, fn func(tx *sql.Tx) error) error {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}

	if err := fn(tx); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			return fmt.Errorf("rollback failed: %v (original error: %w)", rbErr, err)
		}
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing transaction: %w", err)
	}
	return nil
}

// saveSQLite replaces every row in the catalog database in one transaction.
func saveSQLite(ctx context.Context, path string, projects []model.Project) error {
	db, err := openSQLite(ctx, path)
	if err != nil {
		return err
	}
	defer db.Close()

	return withinTx(ctx, db, func(tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx, sqliteSchema); err != nil {
			return fmt.Errorf("creating schema: %w", err)
		}
		if _, err := tx.ExecContext(ctx, "DELETE FROM tasks"); err != nil {
			return fmt.Errorf("clearing tasks: %w", err)
		}
		if _, err := tx.ExecContext(ctx, "DELETE FROM projects"); err != nil {
			return fmt.Errorf("clearing projects: %w", err)
		}

		for i, r := range model.ToRecords(projects) {
			pos := i + 1
			if _, err := tx.ExecContext(ctx,
				"INSERT INTO projects (position, kind, title, estimated_hours) VALUES (?, ?, ?, ?)",
				pos, string(r.Kind), r.Title, r.EstimatedHours,
			); err != nil {
				return fmt.Errorf("inserting project %d: %w", pos, err)
			}
			for j, task := range r.Tasks {
				if _, err := tx.ExecContext(ctx,
					"INSERT INTO tasks (project_position, position, text) VALUES (?, ?, ?)",
					pos, j+1, task,
				); err != nil {
					return fmt.Errorf("inserting task %d of project %d: %w", j+1, pos, err)
				}
			}
		}
		return nil
	})
}

// loadSQLite reads the catalog database in position order.
// Any query failure means the file is not a usable catalog and is
// reported as ErrParse.
func loadSQLite(ctx context.Context, path string) ([]model.Project, error) {
	db, err := openSQLite(ctx, path)
	if err != nil {
		return nil, fmt.Errorf("%w %s: %w", ErrParse, path, err)
	}
	defer db.Close()

	records, err := querySQLiteRecords(ctx, db)
	if err != nil {
		return nil, fmt.Errorf("%w %s: %w", ErrParse, path, err)
	}

	projects, err := model.FromRecords(records)
	if err != nil {
		return nil, fmt.Errorf("%w %s: %w", ErrParse, path, err)
	}
	return projects, nil
}

func querySQLiteRecords(ctx context.Context, db *sql.DB) ([]model.Record, error) {
	rows, err := db.QueryContext(ctx,
		"SELECT position, kind, title, estimated_hours FROM projects ORDER BY position")
	if err != nil {
		return nil, fmt.Errorf("querying projects: %w", err)
	}
	defer rows.Close()

	var records []model.Record
	byPosition := make(map[int]int)
	for rows.Next() {
		var (
			pos  int
			kind string
			r    model.Record
		)
		if err := rows.Scan(&pos, &kind, &r.Title, &r.EstimatedHours); err != nil {
			return nil, fmt.Errorf("scanning project: %w", err)
		}
		r.Kind = model.Kind(kind)
		byPosition[pos] = len(records)
		records = append(records, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating projects: %w", err)
	}

	taskRows, err := db.QueryContext(ctx,
		"SELECT project_position, text FROM tasks ORDER BY project_position, position")
	if err != nil {
		return nil, fmt.Errorf("querying tasks: %w", err)
	}
	defer taskRows.Close()

	for taskRows.Next() {
		var (
			pos  int
			text string
		)
		if err := taskRows.Scan(&pos, &text); err != nil {
			return nil, fmt.Errorf("scanning task: %w", err)
		}
		i, ok := byPosition[pos]
		if !ok {
			return nil, fmt.Errorf("task references missing project %d", pos)
		}
		records[i].Tasks = append(records[i].Tasks, text)
	}
	if err := taskRows.Err(); err != nil {
		return nil, fmt.Errorf("iterating tasks: %w", err)
	}

	return records, nil
}
