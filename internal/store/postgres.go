// Package store persists analysis runs to Postgres so audits can be
// compared over time.
package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"
	_ "github.com/jackc/pgx/v5/stdlib"

	"missed-task-audit/internal/report"
)

const connectTimeout = 12 * time.Second

// Config describes the target database.
type Config struct {
	URL    string
	Schema string
	Tag    string
}

// URLFromEnv resolves the database URL from the environment.
func URLFromEnv() string {
	if value := strings.TrimSpace(os.Getenv("MISSED_TASK_AUDIT_DB_URL")); value != "" {
		return value
	}
	return strings.TrimSpace(os.Getenv("DATABASE_URL"))
}

var validSchema = regexp.MustCompile(`^[a-zA-Z_][a-zA-Z0-9_]*$`)

func sanitizeSchema(value string) (string, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return "", errors.New("db schema is required")
	}
	if !validSchema.MatchString(value) {
		return "", fmt.Errorf("invalid schema name: %s", value)
	}
	return value, nil
}

// StoreRun persists one analysis run (summary row plus finding rows)
// and returns the run id.
func StoreRun(analysis report.Analysis, summary report.Summary, source string, cfg Config) (string, error) {
	schema, db, ctx, cancel, err := connect(cfg)
	if err != nil {
		return "", err
	}
	defer cancel()
	defer db.Close()

	return storeRunTx(ctx, db, analysis, summary, source, schema, cfg.Tag)
}

// SeedRun stores the run only when no runs exist yet. It returns an
// empty id when the database already holds audit data.
func SeedRun(analysis report.Analysis, summary report.Summary, source string, cfg Config) (string, error) {
	schema, db, ctx, cancel, err := connect(cfg)
	if err != nil {
		return "", err
	}
	defer cancel()
	defer db.Close()

	var count int
	if err := db.QueryRowContext(ctx, fmt.Sprintf(`SELECT COUNT(*) FROM %s.audit_runs`, schema)).Scan(&count); err != nil {
		return "", err
	}
	if count > 0 {
		return "", nil
	}

	return storeRunTx(ctx, db, analysis, summary, source, schema, cfg.Tag)
}

func connect(cfg Config) (string, *sql.DB, context.Context, context.CancelFunc, error) {
	schema, err := sanitizeSchema(cfg.Schema)
	if err != nil {
		return "", nil, nil, nil, err
	}

	db, err := sql.Open("pgx", cfg.URL)
	if err != nil {
		return "", nil, nil, nil, err
	}

	ctx, cancel := context.WithTimeout(context.Background(), connectTimeout)

	if err := db.PingContext(ctx); err != nil {
		cancel()
		db.Close()
		return "", nil, nil, nil, err
	}
	if err := ensureSchema(ctx, db, schema); err != nil {
		cancel()
		db.Close()
		return "", nil, nil, nil, err
	}

	return schema, db, ctx, cancel, nil
}

func storeRunTx(ctx context.Context, db *sql.DB, analysis report.Analysis, summary report.Summary, source string, schema string, tag string) (string, error) {
	runID := uuid.New()

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return "", err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	_, err = tx.ExecContext(ctx, fmt.Sprintf(`
		INSERT INTO %s.audit_runs (
			id, source, total_issues, employees_affected, tasks_affected,
			avg_days_missed, followup_count, escalate_count,
			critical_count, high_count, medium_count, low_count,
			error_count, warning_count, run_tag
		) VALUES (
			$1,$2,$3,$4,$5,
			$6,$7,$8,
			$9,$10,$11,$12,
			$13,$14,$15
		)`, schema),
		runID,
		nullString(source),
		summary.TotalIssues,
		summary.EmployeesAffected,
		summary.TasksAffected,
		summary.AvgDaysMissed,
		summary.ActionBreakdown[report.ActionFollowUp],
		summary.ActionBreakdown[report.ActionEscalate],
		summary.PriorityBreakdown[string(report.PriorityCritical)],
		summary.PriorityBreakdown[string(report.PriorityHigh)],
		summary.PriorityBreakdown[string(report.PriorityMedium)],
		summary.PriorityBreakdown[string(report.PriorityLow)],
		len(analysis.Errors),
		len(analysis.Warnings),
		nullString(tag),
	)
	if err != nil {
		return "", err
	}

	insertFindingSQL := fmt.Sprintf(`
		INSERT INTO %s.audit_findings (
			id, run_id, employee, task, dates_missed, action, priority, days_missed
		) VALUES (
			$1,$2,$3,$4,$5,$6,$7,$8
		)`, schema)

	for _, finding := range analysis.Findings {
		_, err = tx.ExecContext(ctx, insertFindingSQL,
			uuid.New(),
			runID,
			finding.Employee,
			finding.Task,
			finding.DatesMissed,
			finding.Action,
			string(finding.Priority),
			finding.DaysMissed,
		)
		if err != nil {
			return "", err
		}
	}

	if err = tx.Commit(); err != nil {
		return "", err
	}
	return runID.String(), nil
}

func ensureSchema(ctx context.Context, db *sql.DB, schema string) error {
	if _, err := db.ExecContext(ctx, fmt.Sprintf(`CREATE SCHEMA IF NOT EXISTS %s`, schema)); err != nil {
		return err
	}

	_, err := db.ExecContext(ctx, fmt.Sprintf(`
		CREATE TABLE IF NOT EXISTS %s.audit_runs (
			id uuid PRIMARY KEY,
			source text,
			total_issues integer NOT NULL,
			employees_affected integer NOT NULL,
			tasks_affected integer NOT NULL,
			avg_days_missed numeric(8,2) NOT NULL,
			followup_count integer NOT NULL,
			escalate_count integer NOT NULL,
			critical_count integer NOT NULL,
			high_count integer NOT NULL,
			medium_count integer NOT NULL,
			low_count integer NOT NULL,
			error_count integer NOT NULL,
			warning_count integer NOT NULL,
			run_tag text,
			created_at timestamptz NOT NULL DEFAULT now()
		)`, schema))
	if err != nil {
		return err
	}

	_, err = db.ExecContext(ctx, fmt.Sprintf(`
		CREATE TABLE IF NOT EXISTS %s.audit_findings (
			id uuid PRIMARY KEY,
			run_id uuid NOT NULL REFERENCES %s.audit_runs(id) ON DELETE CASCADE,
			employee text NOT NULL,
			task text NOT NULL,
			dates_missed text NOT NULL,
			action text NOT NULL,
			priority text NOT NULL,
			days_missed integer NOT NULL,
			created_at timestamptz NOT NULL DEFAULT now()
		)`, schema, schema))
	if err != nil {
		return err
	}

	_, err = db.ExecContext(ctx, fmt.Sprintf(`CREATE INDEX IF NOT EXISTS %s_audit_findings_run_idx ON %s.audit_findings (run_id)`, schema, schema))
	if err != nil {
		return err
	}
	_, err = db.ExecContext(ctx, fmt.Sprintf(`CREATE INDEX IF NOT EXISTS %s_audit_findings_priority_idx ON %s.audit_findings (priority)`, schema, schema))
	return err
}

func nullString(value string) sql.NullString {
	if strings.TrimSpace(value) == "" {
		return sql.NullString{}
	}
	return sql.NullString{String: value, Valid: true}
}
