package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	_ "github.com/lib/pq"
	"github.com/scotus-oa/transcripts/models"
	"github.com/spf13/viper"
)

var db *sql.DB

var errNoDB = errors.New("database connection could not be found")

const createSchemaSQL = `CREATE SCHEMA IF NOT EXISTS transcripts;
CREATE TABLE IF NOT EXISTS transcripts.cleaning_run (
	id uuid PRIMARY KEY,
	case_id text NOT NULL,
	transcript integer NOT NULL,
	sections integer NOT NULL,
	original_turns integer NOT NULL,
	cleaned_turns integer NOT NULL,
	created_at timestamp with time zone NOT NULL
);
CREATE INDEX IF NOT EXISTS cleaning_run_case_id_idx ON transcripts.cleaning_run (case_id);`

const insertRunSQL = `INSERT INTO transcripts.cleaning_run
	(id, case_id, transcript, sections, original_turns, cleaned_turns, created_at)
	VALUES ($1, $2, $3, $4, $5, $6, $7)`

const selectRunsSQL = `SELECT id, case_id, transcript, sections, original_turns, cleaned_turns, created_at
	FROM transcripts.cleaning_run WHERE case_id = $1 ORDER BY created_at, transcript`

func connectDB() (*sql.DB, error) {
	conn, err := sql.Open("postgres", viper.GetString("database_uri"))
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}
	if err := conn.Ping(); err != nil {
		return nil, fmt.Errorf("connecting to database: %w", err)
	}
	return conn, nil
}

func ensureSchema(ctx context.Context) error {
	if db == nil {
		return errNoDB
	}
	if _, err := db.ExecContext(ctx, createSchemaSQL); err != nil {
		return fmt.Errorf("creating schema: %w", err)
	}
	return nil
}

// recordCleaningRuns stores one row per transcript in a single transaction, filling in IDs and timestamps
func recordCleaningRuns(ctx context.Context, runs []models.CleaningRun) error {
	if db == nil {
		return errNoDB
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("starting transaction: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx, insertRunSQL)
	if err != nil {
		tx.Rollback()
		return fmt.Errorf("preparing insert: %w", err)
	}
	defer stmt.Close()

	now := time.Now().UTC()
	for i := range runs {
		runs[i].ID = uuid.New()
		runs[i].CreatedAt = now
		r := runs[i]
		if _, err := stmt.ExecContext(ctx, r.ID.String(), r.CaseID, r.Transcript, r.Sections, r.OriginalTurns, r.CleanedTurns, r.CreatedAt); err != nil {
			tx.Rollback()
			return fmt.Errorf("inserting cleaning run: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing cleaning runs: %w", err)
	}
	return nil
}

func listCleaningRuns(ctx context.Context, id models.CaseID) ([]models.CleaningRun, error) {
	if db == nil {
		return nil, errNoDB
	}

	rows, err := db.QueryContext(ctx, selectRunsSQL, id.String())
	if err != nil {
		return nil, fmt.Errorf("querying cleaning runs: %w", err)
	}
	defer rows.Close()

	runs := []models.CleaningRun{}
	for rows.Next() {
		var r models.CleaningRun
		var runID string
		if err := rows.Scan(&runID, &r.CaseID, &r.Transcript, &r.Sections, &r.OriginalTurns, &r.CleanedTurns, &r.CreatedAt); err != nil {
			return nil, fmt.Errorf("reading cleaning run: %w", err)
		}
		if r.ID, err = uuid.Parse(runID); err != nil {
			return nil, fmt.Errorf("reading cleaning run id: %w", err)
		}
		runs = append(runs, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("reading cleaning runs: %w", err)
	}
	return runs, nil
}
