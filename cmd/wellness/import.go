// ABOUTME: CLI command for importing wellness sheets.
// ABOUTME: Single-day import by default, block listing and block import for weekly sheets.
package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/harperreed/wellness/internal/sheet"
	"github.com/spf13/cobra"
)

var (
	importListBlocks bool
	importDates      []string
	importAllBlocks  bool
)

var importCmd = &cobra.Command{
	Use:     "import [file|url]",
	Aliases: []string{"i"},
	Short:   "Import a wellness sheet",
	Long: `Import a wellness questionnaire sheet.

SOURCES:

  CSV file        comma, semicolon or tab separated; UTF-8 with or without BOM
  Excel file      .xlsx or .xlsm; the "Bien-être" tab is used when present
  Google Sheets   a docs.google.com/spreadsheets link (the sheet must be shared)
  CSV URL         any http(s) URL serving CSV

  Without an argument the configured sheet_url is used.

SINGLE-DAY SHEETS:

  One header row (Joueur, Poids, Sommeil, Charge mentale, Motivation, HDC,
  BDC, Remarque) with the date somewhere above it. Re-importing the same day
  replaces each player's entry.

WEEKLY SHEETS:

  Several day blocks side by side, each with its own "Joueur" column and a
  date above it.

  --blocks        list the day blocks without importing
  --date          import the block for this date (repeatable, YYYY-MM-DD)
  --all-blocks    import every dated block

EXAMPLES:

  wellness import bien-etre.csv
  wellness import https://docs.google.com/spreadsheets/d/<id>/edit
  wellness import semaine.xlsx --blocks
  wellness import semaine.xlsx --date 2026-01-05 --date 2026-01-06
  wellness import semaine.xlsx --all-blocks`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		source := cfg.SheetURL
		if len(args) == 1 {
			source = args[0]
		}
		if source == "" {
			return fmt.Errorf("no source given and no sheet_url configured")
		}

		switch {
		case importListBlocks:
			return listBlocks(cmd, source)
		case importAllBlocks || len(importDates) > 0:
			return importBlocks(cmd, source)
		default:
			return importSingleDay(cmd, source)
		}
	},
}

func importSingleDay(cmd *cobra.Command, source string) error {
	res, err := importer.ImportSingleDay(cmd.Context(), source)
	if err != nil {
		return fmt.Errorf("import failed: %w", err)
	}

	color.Green("✓ Imported %d entries for %s", res.EntriesCount, res.Date)
	printNewPlayers(res.NewPlayers)
	printDiagnostics(res.Diagnostics)
	return nil
}

func listBlocks(cmd *cobra.Command, source string) error {
	listing, err := importer.ListBlocks(cmd.Context(), source)
	if err != nil {
		return fmt.Errorf("failed to list blocks: %w", err)
	}

	fmt.Printf("Header row %d, %d day blocks\n\n", listing.HeaderRow+1, len(listing.Blocks))
	for _, b := range listing.Blocks {
		fmt.Printf("  %s  %s  %s\n",
			b.DateKey(),
			faint.Sprintf("column %d", b.StartCol+1),
			truncate(b.Label, 40))
	}
	for _, b := range listing.Unresolved {
		color.Yellow("  ?           column %d  %s (no date found)", b.StartCol+1, truncate(b.Label, 40))
	}
	return nil
}

func importBlocks(cmd *cobra.Command, source string) error {
	var dates []time.Time
	if !importAllBlocks {
		for _, d := range importDates {
			t, ok := sheet.ParseDate(d)
			if !ok {
				return fmt.Errorf("invalid date: %s", d)
			}
			dates = append(dates, t)
		}
	}

	res, err := importer.ImportBlocks(cmd.Context(), source, dates)
	if err != nil {
		return fmt.Errorf("import failed: %w", err)
	}

	color.Green("✓ Imported %d entries over %d days", res.EntriesCount, len(res.DatesImported))
	fmt.Printf("  %s\n", faint.Sprint(strings.Join(res.DatesImported, ", ")))
	printNewPlayers(res.NewPlayers)
	if len(res.Unresolved) > 0 {
		color.Yellow("⚠ %d blocks without a date were skipped: %s",
			len(res.Unresolved), strings.Join(res.Unresolved, ", "))
	}
	printDiagnostics(res.Diagnostics)
	return nil
}

func printNewPlayers(names []string) {
	if len(names) == 0 {
		return
	}
	fmt.Printf("  New players (%d): %s\n", len(names), strings.Join(names, ", "))
}

func printDiagnostics(d sheet.Diagnostics) {
	if d.FallbackMapping {
		color.Yellow("⚠ Columns were mapped by position; check the imported values")
	}
	if d.DateFallback {
		color.Yellow("⚠ No date found in the sheet; today's date was used")
	}
	if skipped := d.Skipped(); skipped > 0 {
		fmt.Println(faint.Sprintf("  %d rows skipped (%d totals, %d remarks, %d empty)",
			skipped, d.AggregateRows, d.RemarkRows, d.EmptyRows))
	}
	if d.DuplicateRows > 0 {
		fmt.Println(faint.Sprintf("  %d repeated names, the last row was kept", d.DuplicateRows))
	}
}

func init() {
	importCmd.Flags().BoolVar(&importListBlocks, "blocks", false, "list the day blocks of a weekly sheet")
	importCmd.Flags().StringArrayVar(&importDates, "date", nil, "import the block for this date (repeatable)")
	importCmd.Flags().BoolVar(&importAllBlocks, "all-blocks", false, "import every dated block")
	rootCmd.AddCommand(importCmd)
}
