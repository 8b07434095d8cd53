// ABOUTME: CLI commands for exporting and restoring wellness data.
// ABOUTME: Supports JSON, YAML, Markdown and Excel export, and JSON restore.
package main

import (
	"bytes"
	"fmt"
	"os"
	"time"

	"github.com/fatih/color"
	"github.com/harperreed/wellness/internal/models"
	"github.com/harperreed/wellness/internal/sheet"
	"github.com/harperreed/wellness/internal/storage"
	"github.com/harperreed/wellness/internal/wellness"
	"github.com/spf13/cobra"
)

var (
	exportOutput   string
	exportSince    string
	restoreConfirm bool
)

var exportCmd = &cobra.Command{
	Use:   "export <format>",
	Short: "Export wellness data",
	Long: `Export wellness data in various formats.

FORMATS:

  json       Full JSON export (suitable for backup/restore)
  yaml       YAML export (human-readable, entries grouped by day)
  markdown   Markdown tables (roster, one table per day, injury log)
  xlsx       Excel workbook with one "Bien-être" tab per day (requires -o)

OPTIONS:

  --output, -o   Write to file instead of stdout
  --since        Only include days since this date (markdown and xlsx)

EXAMPLES:

  wellness export json -o backup.json
  wellness export yaml
  wellness export markdown --since 2026-01-01
  wellness export xlsx -o saison.xlsx`,
	Args:      cobra.ExactArgs(1),
	ValidArgs: []string{"json", "yaml", "markdown", "xlsx"},
	RunE: func(cmd *cobra.Command, args []string) error {
		format := args[0]

		var since *time.Time
		if exportSince != "" {
			t, err := time.Parse(models.DateLayout, exportSince)
			if err != nil {
				return fmt.Errorf("invalid date format: %s (use YYYY-MM-DD)", exportSince)
			}
			since = &t
		}

		snap := store.Snapshot()
		var data []byte
		var err error

		switch format {
		case "json":
			data, err = storage.ExportJSON(snap.Export())
		case "yaml":
			data, err = storage.ExportYAML(snap.Export())
		case "markdown":
			data = []byte(storage.ExportMarkdown(snap.Export(), since))
		case "xlsx":
			if exportOutput == "" {
				return fmt.Errorf("xlsx export needs an output file (-o)")
			}
			data, err = exportWorkbook(snap, since)
		default:
			return fmt.Errorf("unknown format: %s (use json, yaml, markdown or xlsx)", format)
		}

		if err != nil {
			return fmt.Errorf("export failed: %w", err)
		}

		if exportOutput != "" {
			if err := os.WriteFile(exportOutput, data, 0600); err != nil {
				return fmt.Errorf("failed to write file: %w", err)
			}
			color.Green("✓ Exported to %s", exportOutput)
		} else {
			fmt.Println(string(data))
		}

		return nil
	},
}

func exportWorkbook(snap *wellness.Snapshot, since *time.Time) ([]byte, error) {
	var days []sheet.DaySheet
	for _, d := range snap.Dates() {
		t, err := time.Parse(models.DateLayout, d)
		if err != nil {
			continue
		}
		if since != nil && t.Before(*since) {
			continue
		}
		days = append(days, sheet.DaySheet{Date: t, Entries: snap.Day(d)})
	}

	var buf bytes.Buffer
	if err := sheet.WriteWorkbook(&buf, days); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

var restoreCmd = &cobra.Command{
	Use:   "restore <file>",
	Short: "Restore wellness data from a JSON backup",
	Long: `Restore wellness data from a JSON backup made with 'wellness export json'.

This REPLACES all current data (players, entries, injuries and settings)
with the content of the backup.

EXAMPLES:

  wellness restore backup.json
  wellness restore backup.json --yes`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		filename := args[0]

		raw, err := os.ReadFile(filename)
		if err != nil {
			return fmt.Errorf("failed to read file: %w", err)
		}
		data, err := storage.ParseJSON(raw)
		if err != nil {
			return fmt.Errorf("restore failed: %w", err)
		}

		fmt.Printf("Backup from %s: %d players, %d entries, %d injuries\n",
			data.ExportedAt.Format(models.DateLayout), len(data.Players), len(data.Entries), len(data.Injuries))
		if !confirm("This will replace all current data. Continue?", restoreConfirm) {
			fmt.Println("Canceled.")
			return nil
		}

		if err := store.Replace(data); err != nil {
			return fmt.Errorf("restore failed: %w", err)
		}

		color.Green("✓ Restored from %s", filename)
		return nil
	},
}

func init() {
	exportCmd.Flags().StringVarP(&exportOutput, "output", "o", "", "output file (default: stdout)")
	exportCmd.Flags().StringVar(&exportSince, "since", "", "only include days since date (YYYY-MM-DD)")
	restoreCmd.Flags().BoolVarP(&restoreConfirm, "yes", "y", false, "skip confirmation prompt")

	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(restoreCmd)
}
