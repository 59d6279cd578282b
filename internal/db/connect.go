package db

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/jackc/pgx/v5/stdlib" // driver: pgx
	_ "modernc.org/sqlite"             // driver: sqlite
)

type Driver string

const (
	DriverSQLite   Driver = "sqlite"
	DriverPostgres Driver = "postgres"
)

// Open opens a DB and ensures schema exists.
func Open(ctx context.Context, driver Driver, dsn string) (*sql.DB, error) {
	var drvName string
	switch driver {
	case DriverSQLite:
		drvName = "sqlite" // modernc driver
		if dsn == "" {
			dsn = "file:hanjastudy.db?cache=shared&mode=rwc&_pragma=busy_timeout(5000)"
		}
	case DriverPostgres:
		drvName = "pgx" // pgx stdlib driver
		if dsn == "" {
			dsn = "postgres://localhost:5432/hanjastudy?sslmode=disable"
		}
	default:
		return nil, fmt.Errorf("unsupported driver: %s", driver)
	}

	db, err := sql.Open(drvName, dsn)
	if err != nil {
		return nil, err
	}
	if err := db.PingContext(ctx); err != nil {
		return nil, err
	}

	if err := ensureSchema(ctx, db, driver); err != nil {
		return nil, err
	}
	return db, nil
}

func ensureSchema(ctx context.Context, db *sql.DB, driver Driver) error {
	var schema string
	switch driver {
	case DriverSQLite:
		schema = schemaSQLite
	case DriverPostgres:
		schema = schemaPostgres
	}
	_, err := db.ExecContext(ctx, schema)
	return err
}

const schemaSQLite = `
PRAGMA foreign_keys=ON;

CREATE TABLE IF NOT EXISTS study_progress (
  grade TEXT PRIMARY KEY,
  current_index INTEGER NOT NULL,
  total_count INTEGER NOT NULL,
  completed_count INTEGER NOT NULL,
  last_study_date TEXT NOT NULL,
  study_time_sec INTEGER NOT NULL
);

CREATE TABLE IF NOT EXISTS quiz_results (
  seq INTEGER PRIMARY KEY AUTOINCREMENT, -- BIGSERIAL in Postgres
  id TEXT NOT NULL,
  grade TEXT NOT NULL,
  quiz_type TEXT NOT NULL,
  score INTEGER NOT NULL,
  total_questions INTEGER NOT NULL,
  correct_answers INTEGER NOT NULL,
  taken_at TEXT NOT NULL,
  study_time_sec INTEGER NOT NULL
);

CREATE TABLE IF NOT EXISTS study_stats (
  id INTEGER PRIMARY KEY CHECK (id = 1),
  total_study_time_sec INTEGER NOT NULL,
  total_hanja_studied INTEGER NOT NULL,
  total_quizzes_taken INTEGER NOT NULL,
  average_score INTEGER NOT NULL,
  streak_days INTEGER NOT NULL,
  last_study_date TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS wrong_answers (
  hanja_char TEXT NOT NULL,
  grade TEXT NOT NULL,
  seq INTEGER NOT NULL,
  user_answer TEXT NOT NULL,
  correct_answer TEXT NOT NULL,
  quiz_type TEXT NOT NULL,
  missed_at TEXT NOT NULL,
  attempts INTEGER NOT NULL,
  PRIMARY KEY (hanja_char, grade)
);
`

const schemaPostgres = `
CREATE TABLE IF NOT EXISTS study_progress (
  grade TEXT PRIMARY KEY,
  current_index INTEGER NOT NULL,
  total_count INTEGER NOT NULL,
  completed_count INTEGER NOT NULL,
  last_study_date TEXT NOT NULL,
  study_time_sec INTEGER NOT NULL
);

CREATE TABLE IF NOT EXISTS quiz_results (
  seq BIGSERIAL PRIMARY KEY,
  id TEXT NOT NULL,
  grade TEXT NOT NULL,
  quiz_type TEXT NOT NULL,
  score INTEGER NOT NULL,
  total_questions INTEGER NOT NULL,
  correct_answers INTEGER NOT NULL,
  taken_at TEXT NOT NULL,
  study_time_sec INTEGER NOT NULL
);

CREATE TABLE IF NOT EXISTS study_stats (
  id INTEGER PRIMARY KEY CHECK (id = 1),
  total_study_time_sec INTEGER NOT NULL,
  total_hanja_studied INTEGER NOT NULL,
  total_quizzes_taken INTEGER NOT NULL,
  average_score INTEGER NOT NULL,
  streak_days INTEGER NOT NULL,
  last_study_date TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS wrong_answers (
  hanja_char TEXT NOT NULL,
  grade TEXT NOT NULL,
  seq BIGINT NOT NULL,
  user_answer TEXT NOT NULL,
  correct_answer TEXT NOT NULL,
  quiz_type TEXT NOT NULL,
  missed_at TEXT NOT NULL,
  attempts INTEGER NOT NULL,
  PRIMARY KEY (hanja_char, grade)
);
`
