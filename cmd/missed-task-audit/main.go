package main

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"missed-task-audit/internal/config"
	"missed-task-audit/internal/export"
	"missed-task-audit/internal/ingest"
	"missed-task-audit/internal/report"
	"missed-task-audit/internal/sample"
	"missed-task-audit/internal/store"
)

var (
	version   = "dev"
	commit    = "none"
	buildDate = "unknown"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "missed-task-audit",
		Short: "Analyze daily staff reports for missed-task patterns",
		Long: `missed-task-audit ingests daily task-completion records (CSV),
detects consecutive-miss runs per employee and task, scores each run
into a priority tier, and emits prioritized follow-up and escalation
findings with summary statistics.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.AddCommand(newAnalyzeCmd())
	rootCmd.AddCommand(newValidateCmd())
	rootCmd.AddCommand(newSampleCmd())
	rootCmd.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print version info",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("missed-task-audit %s (%s, %s)\n", version, commit, buildDate)
		},
	})

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func newAnalyzeCmd() *cobra.Command {
	var (
		inputPath   string
		rulesPath   string
		jsonOut     string
		alertsOut   string
		planOut     string
		minPriority string
		dbEnabled   bool
		dbSchema    string
		dbTag       string
		initDB      bool
	)

	cmd := &cobra.Command{
		Use:   "analyze",
		Short: "Analyze a daily report CSV and print findings",
		RunE: func(cmd *cobra.Command, args []string) error {
			if inputPath == "" {
				return errors.New("--input is required")
			}

			opts := report.Options{}
			if rulesPath != "" {
				loaded, err := config.Load(rulesPath)
				if err != nil {
					return err
				}
				opts = loaded
			}

			table, err := ingest.ReadFile(inputPath)
			if err != nil {
				return err
			}

			ok, message := report.Validate(table)
			if !ok {
				return errors.New(message)
			}

			analysis := report.Analyze(table, opts)
			summary := report.Summarize(analysis.Findings)

			printAnalysis(inputPath, table, opts, message, analysis, summary)

			if jsonOut != "" {
				rep := export.Report{
					GeneratedAt: time.Now().UTC(),
					Source:      inputPath,
					Findings:    analysis.Findings,
					Summary:     summary,
					Errors:      analysis.Errors,
					Warnings:    analysis.Warnings,
				}
				if err := export.WriteJSON(jsonOut, rep); err != nil {
					return err
				}
				fmt.Printf("\nJSON report saved to %s\n", jsonOut)
			}

			if alertsOut != "" {
				threshold, ok := report.ParsePriority(minPriority)
				if !ok {
					return fmt.Errorf("invalid --min-priority value: %s", minPriority)
				}
				if err := export.WriteAlertsCSV(alertsOut, analysis.Findings, threshold); err != nil {
					return err
				}
				fmt.Printf("Alert CSV saved to %s\n", alertsOut)
			}

			if planOut != "" {
				if err := export.WriteActionPlan(planOut, analysis.Findings); err != nil {
					return err
				}
				fmt.Printf("Action plan saved to %s\n", planOut)
			}

			if dbEnabled || initDB {
				dbURL := store.URLFromEnv()
				if dbURL == "" {
					return errors.New("database URL missing; set MISSED_TASK_AUDIT_DB_URL or DATABASE_URL")
				}
				cfg := store.Config{URL: dbURL, Schema: dbSchema, Tag: dbTag}
				seeded := false
				if initDB {
					runID, err := store.SeedRun(analysis, summary, inputPath, cfg)
					if err != nil {
						return err
					}
					if runID != "" {
						seeded = true
						fmt.Printf("\nSeeded Postgres with initial audit run (run_id=%s)\n", runID)
					} else {
						fmt.Println("\nAudit data already present; skipping seed.")
					}
				}
				if dbEnabled {
					if seeded {
						fmt.Println("Skipped duplicate insert; current run already used for seed.")
					} else {
						runID, err := store.StoreRun(analysis, summary, inputPath, cfg)
						if err != nil {
							return err
						}
						fmt.Printf("\nStored audit run in Postgres (run_id=%s)\n", runID)
					}
				}
			}

			return nil
		},
	}

	cmd.Flags().StringVar(&inputPath, "input", "", "Path to daily report CSV")
	cmd.Flags().StringVar(&rulesPath, "rules", "", "Optional YAML rules file (keyword rules, gap, statuses)")
	cmd.Flags().StringVar(&jsonOut, "json", "", "Optional JSON output path")
	cmd.Flags().StringVar(&alertsOut, "alerts", "", "Optional CSV output for alert findings")
	cmd.Flags().StringVar(&planOut, "plan", "", "Optional text output for the action plan")
	cmd.Flags().StringVar(&minPriority, "min-priority", "high", "Minimum priority for alerts (critical, high, medium, low)")
	cmd.Flags().BoolVar(&dbEnabled, "db", false, "Store run in Postgres (requires MISSED_TASK_AUDIT_DB_URL or DATABASE_URL)")
	cmd.Flags().StringVar(&dbSchema, "db-schema", "missed_task_audit", "Postgres schema for audit tables")
	cmd.Flags().StringVar(&dbTag, "db-tag", "", "Optional label for this audit run")
	cmd.Flags().BoolVar(&initDB, "init-db", false, "Initialize database schema and seed data if empty")

	return cmd
}

func newValidateCmd() *cobra.Command {
	var inputPath string

	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Check a daily report CSV without analyzing it",
		RunE: func(cmd *cobra.Command, args []string) error {
			if inputPath == "" {
				return errors.New("--input is required")
			}
			table, err := ingest.ReadFile(inputPath)
			if err != nil {
				return err
			}
			ok, message := report.Validate(table)
			if !ok {
				return errors.New(message)
			}
			fmt.Println(message)
			return nil
		},
	}

	cmd.Flags().StringVar(&inputPath, "input", "", "Path to daily report CSV")
	return cmd
}

func newSampleCmd() *cobra.Command {
	var (
		outPath string
		days    int
		seed    int64
	)

	cmd := &cobra.Command{
		Use:   "sample",
		Short: "Generate a sample daily report CSV",
		RunE: func(cmd *cobra.Command, args []string) error {
			if outPath == "" {
				return errors.New("--out is required")
			}
			table := sample.Generate(seed, time.Now().UTC(), days)
			if err := export.WriteTableCSV(outPath, table); err != nil {
				return err
			}
			fmt.Printf("Sample data saved to %s (%d records)\n", outPath, len(table.Rows))
			return nil
		},
	}

	cmd.Flags().StringVar(&outPath, "out", "", "Output CSV path")
	cmd.Flags().IntVar(&days, "days", 10, "Number of trailing days to cover")
	cmd.Flags().Int64Var(&seed, "seed", 1, "Random seed for reproducible data")
	return cmd
}
