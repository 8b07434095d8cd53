// ABOUTME: CLI commands for the injury log.
// ABOUTME: Add, list, heal and delete injuries; show the recovery table.
package main

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/harperreed/wellness/internal/models"
	"github.com/harperreed/wellness/internal/sheet"
	"github.com/harperreed/wellness/internal/wellness"
	"github.com/spf13/cobra"
)

var (
	injuryCircumstance string
	injuryDate         string
	injuryNotes        string
	injuryActiveOnly   bool
)

var injuryCmd = &cobra.Command{
	Use:     "injury",
	Aliases: []string{"injuries", "inj"},
	Short:   "Track player injuries",
	Long: `Track player injuries and estimated return dates.

Each injury has a zone and a grade (1 mild, 2 moderate, 3 severe). The
estimated return date comes from the recovery table ('wellness injury zones').
Adding an injury marks the player Injured; healing their last active injury
marks them Return-to-play.

EXAMPLES:

  wellness injury add dupont hamstring 2 --circumstance match
  wellness injury add martin ankle 1 --date 2026-01-04 --notes "inversion"
  wellness injury list --active
  wellness injury heal 3f2a1b7c
  wellness injury zones`,
}

var injuryAddCmd = &cobra.Command{
	Use:   "add <player> <zone> <grade>",
	Short: "Record an injury",
	Args:  cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		zone, ok := models.ParseInjuryZone(args[1])
		if !ok {
			return fmt.Errorf("unknown injury zone: %s\nRun 'wellness injury zones' for the list", args[1])
		}
		grade, err := strconv.Atoi(args[2])
		if err != nil {
			return fmt.Errorf("invalid grade: %s", args[2])
		}
		circ, ok := models.ParseCircumstance(injuryCircumstance)
		if !ok {
			return fmt.Errorf("unknown circumstance: %s", injuryCircumstance)
		}
		date, err := parseDateFlag(injuryDate)
		if err != nil {
			return err
		}

		inj, err := store.AddInjury(wellness.InjuryInput{
			Player:       args[0],
			Zone:         zone,
			Grade:        grade,
			Circumstance: circ,
			Date:         date,
			Notes:        injuryNotes,
		})
		if err != nil {
			return fmt.Errorf("failed to add injury: %w", err)
		}

		color.Green("✓ Recorded %s injury for %s", inj.Zone, inj.PlayerName)
		fmt.Printf("  %s grade %d, back around %s (%d days)\n",
			faint.Sprint(shortID(inj.ID)), inj.Grade,
			inj.EstimatedReturn.Format(models.DateLayout), inj.EstimatedDays)
		return nil
	},
}

var injuryListCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List injuries",
	RunE: func(cmd *cobra.Command, args []string) error {
		injuries := store.ListInjuries(injuryActiveOnly)
		if len(injuries) == 0 {
			fmt.Println("No injuries found.")
			return nil
		}

		now := time.Now()
		for _, i := range injuries {
			state := color.New(color.FgRed).Sprintf("%d days left", i.DaysRemaining(now))
			if !i.Active() {
				state = color.New(color.FgGreen).Sprintf("healed %s", i.HealedAt.Format(models.DateLayout))
			}
			fmt.Printf("%s %s %s %s %s %s %s\n",
				faint.Sprint(shortID(i.ID)),
				faint.Sprint(i.Date.Format(models.DateLayout)),
				padRight(i.PlayerName, 16),
				padRight(string(i.Zone), 22),
				fmt.Sprintf("G%d", i.Grade),
				progressBar(i.Progress(now), 10),
				state)
		}
		return nil
	},
}

var injuryHealCmd = &cobra.Command{
	Use:   "heal <id>",
	Short: "Mark an injury healed",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		at, err := parseDateFlag(injuryDate)
		if err != nil {
			return err
		}
		inj, err := store.HealInjury(args[0], at)
		if err != nil {
			return fmt.Errorf("failed to heal injury: %w", err)
		}
		color.Green("✓ %s injury of %s healed", inj.Zone, inj.PlayerName)
		return nil
	},
}

var injuryDeleteCmd = &cobra.Command{
	Use:     "delete <id>",
	Aliases: []string{"del", "rm"},
	Short:   "Delete an injury record",
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		inj, err := store.DeleteInjury(args[0])
		if err != nil {
			return fmt.Errorf("failed to delete injury: %w", err)
		}
		color.Yellow("✗ Deleted %s injury of %s", inj.Zone, inj.PlayerName)
		fmt.Printf("  %s\n", faint.Sprint(shortID(inj.ID)))
		return nil
	},
}

var injuryZonesCmd = &cobra.Command{
	Use:   "zones",
	Short: "Show the recovery table",
	Long:  `Show every injury zone with its estimated recovery days per grade.`,
	Annotations: map[string]string{
		noStore: "true",
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		fmt.Printf("%s %8s %8s %8s\n", padRight("Zone", 24), "Grade 1", "Grade 2", "Grade 3")
		for _, z := range models.AllInjuryZones {
			days := models.InjuryZones[z]
			fmt.Printf("%s %8d %8d %8d\n", padRight(string(z), 24), days[0], days[1], days[2])
		}
		fmt.Println()
		fmt.Println(faint.Sprint("Days until an estimated return to play."))
		return nil
	},
}

// parseDateFlag accepts YYYY-MM-DD or any sheet date; empty means today.
func parseDateFlag(s string) (time.Time, error) {
	if s == "" {
		return time.Now(), nil
	}
	if t, err := time.Parse(models.DateLayout, s); err == nil {
		return t, nil
	}
	if t, ok := sheet.ParseDate(s); ok {
		return t, nil
	}
	return time.Time{}, fmt.Errorf("invalid date: %s (use YYYY-MM-DD)", s)
}

func progressBar(p float64, width int) string {
	filled := int(p*float64(width) + 0.5)
	if filled > width {
		filled = width
	}
	if filled < 0 {
		filled = 0
	}
	return "[" + strings.Repeat("#", filled) + strings.Repeat(".", width-filled) + "]"
}

func init() {
	injuryAddCmd.Flags().StringVar(&injuryCircumstance, "circumstance", "", "Match, Training, Weights, Outside sport or Other")
	injuryAddCmd.Flags().StringVar(&injuryDate, "date", "", "injury date (YYYY-MM-DD, default today)")
	injuryAddCmd.Flags().StringVar(&injuryNotes, "notes", "", "notes for the injury")
	injuryListCmd.Flags().BoolVar(&injuryActiveOnly, "active", false, "only injuries not yet healed")
	injuryHealCmd.Flags().StringVar(&injuryDate, "date", "", "healing date (YYYY-MM-DD, default today)")

	injuryCmd.AddCommand(injuryAddCmd)
	injuryCmd.AddCommand(injuryListCmd)
	injuryCmd.AddCommand(injuryHealCmd)
	injuryCmd.AddCommand(injuryDeleteCmd)
	injuryCmd.AddCommand(injuryZonesCmd)
	rootCmd.AddCommand(injuryCmd)
}
