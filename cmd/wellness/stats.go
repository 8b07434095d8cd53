// ABOUTME: CLI commands for squad statistics.
// ABOUTME: Day averages, alerts, Z-score trend and per-player history.
package main

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/harperreed/wellness/internal/models"
	"github.com/harperreed/wellness/internal/sheet"
	"github.com/harperreed/wellness/internal/stats"
	"github.com/harperreed/wellness/internal/wellness"
	"github.com/spf13/cobra"
)

var (
	filterGroup    string
	filterLine     string
	filterPosition string
	filterPlayer   string

	averageBreakdown bool
	zscoreMetric     string
	zscoreDays       int
	historyDays      int
)

var averageCmd = &cobra.Command{
	Use:     "average [date]",
	Aliases: []string{"avg"},
	Short:   "Average wellness for a day",
	Long: `Show the average of each metric for a day, optionally for part of the squad.

The global score is the mean of each player's own average. Without a date the
latest imported day is used.

EXAMPLES:

  wellness average                       # Whole team, latest day
  wellness average 2026-01-06
  wellness average --group Forwards
  wellness average --line "Front row"
  wellness average --position talonneur
  wellness average --player dupont
  wellness average --breakdown           # Team, groups and lines`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		snap := store.Snapshot()
		date, err := pickDate(snap, args)
		if err != nil {
			return err
		}

		if averageBreakdown {
			rows := stats.Breakdown(snap, date)
			if len(rows) == 0 {
				fmt.Printf("No data for %s.\n", date)
				return nil
			}
			fmt.Printf("Wellness on %s\n\n", date)
			printAggregateHeader()
			for _, agg := range rows {
				printAggregate(agg.Label, agg)
			}
			return nil
		}

		f, err := buildFilter()
		if err != nil {
			return err
		}
		agg := stats.TeamAverage(snap, date, f)
		if agg == nil {
			fmt.Printf("No data for %s (%s).\n", date, f.String())
			return nil
		}
		fmt.Printf("Wellness on %s\n\n", date)
		printAggregateHeader()
		printAggregate(f.String(), agg)
		return nil
	},
}

var alertsCmd = &cobra.Command{
	Use:   "alerts [date]",
	Short: "Players who need attention",
	Long: `List the alerts raised for a day.

RULES:

  low_value   a metric at or below low_value_threshold
  weight      weight further than weight_threshold from the target weight
  variation   average dropped by variation_threshold or more since the
              player's previous entry

Thresholds are changed with 'wellness settings set'.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		snap := store.Snapshot()
		date, err := pickDate(snap, args)
		if err != nil {
			return err
		}

		alerts := stats.AlertsForDate(snap, date)
		if len(alerts) == 0 {
			color.Green("✓ No alerts for %s", date)
			return nil
		}

		fmt.Printf("%d alerts for %s\n\n", len(alerts), date)
		for _, a := range alerts {
			fmt.Printf("  %s %s\n", padRight(a.Player, 16), describeAlert(a))
		}
		return nil
	},
}

var zscoreCmd = &cobra.Command{
	Use:     "zscore",
	Aliases: []string{"trend"},
	Short:   "Z-score trend of the squad",
	Long: `Show how each day compares with the days before it.

For every date the filtered day average is compared with the averages of the
previous zscore_days dates. Scores below zscore_warning are flagged, below
zscore_alert are critical. Days with too little history have no score.

METRICS:

  global (default), sleep, mental_load, motivation, hdc, bdc

EXAMPLES:

  wellness zscore
  wellness zscore --metric sleep --days 14
  wellness zscore --group Backs`,
	RunE: func(cmd *cobra.Command, args []string) error {
		metric, ok := models.ParseMetric(zscoreMetric)
		if !ok {
			return fmt.Errorf("unknown metric: %s", zscoreMetric)
		}
		f, err := buildFilter()
		if err != nil {
			return err
		}

		points := stats.ZScoreSeries(store.Snapshot(), metric, f, zscoreDays)
		if len(points) == 0 {
			fmt.Println("No data imported yet.")
			return nil
		}

		fmt.Printf("%s, %s\n\n", models.MetricLabels[metric], f.String())
		for _, p := range points {
			z := faint.Sprint("     -")
			if p.ZScore != nil {
				z = bandColor(p.Band).Sprintf("%+6.2f", *p.ZScore)
			}
			fmt.Printf("  %s %6s %s\n", p.Date, formatScore(p.Value), z)
		}
		return nil
	},
}

var historyCmd = &cobra.Command{
	Use:   "history <player>",
	Short: "A player's recent entries",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		p, err := store.GetPlayer(args[0])
		if err != nil {
			return err
		}

		points := stats.PlayerHistory(store.Snapshot(), p.Name, historyDays)
		if len(points) == 0 {
			fmt.Printf("No entries for %s.\n", p.Name)
			return nil
		}

		fmt.Printf("%s, %s, target %.1f kg\n\n", p.Name, p.Position, p.TargetWeight)
		fmt.Printf("  %s %6s %6s %6s %6s %6s %6s %6s\n",
			padRight("Date", 10), "Weight", "Sleep", "Mental", "Motiv", "HDC", "BDC", "Avg")
		for _, h := range points {
			e := h.Entry
			remark := ""
			if e.Remark != "" {
				remark = faint.Sprintf(" (%s)", truncate(e.Remark, 30))
			}
			fmt.Printf("  %s %6s %6s %6s %6s %6s %6s %6s%s\n",
				h.Date, formatWeight(e.Weight),
				formatScore(e.Sleep), formatScore(e.MentalLoad), formatScore(e.Motivation),
				formatScore(e.HDC), formatScore(e.BDC), formatScore(h.Average), remark)
		}
		return nil
	},
}

func buildFilter() (*stats.Filter, error) {
	f := &stats.Filter{
		Group:    filterGroup,
		Line:     filterLine,
		Position: models.Position(filterPosition),
	}
	if filterPlayer != "" {
		p, err := store.GetPlayer(filterPlayer)
		if err != nil {
			return nil, err
		}
		f.PlayerID = p.ID
	}
	if err := f.Validate(); err != nil {
		return nil, err
	}
	if f.IsZero() {
		return nil, nil
	}
	return f, nil
}

// pickDate returns the date argument as YYYY-MM-DD, or the latest imported date.
func pickDate(snap *wellness.Snapshot, args []string) (string, error) {
	if len(args) == 0 || args[0] == "" {
		latest, ok := snap.LatestDate()
		if !ok {
			return "", fmt.Errorf("no wellness data imported yet")
		}
		return latest, nil
	}
	t, ok := sheet.ParseDate(args[0])
	if !ok {
		return "", fmt.Errorf("invalid date: %s", args[0])
	}
	return sheet.FormatDate(t), nil
}

func printAggregateHeader() {
	fmt.Printf("  %s %5s %6s %6s %6s %6s %6s %6s\n",
		padRight("", 16), "n", "Sleep", "Mental", "Motiv", "HDC", "BDC", "Global")
}

func printAggregate(label string, a *stats.Aggregate) {
	fmt.Printf("  %s %5d %6s %6s %6s %6s %6s %6s\n",
		padRight(truncate(label, 16), 16), a.Count,
		formatScore(a.Sleep), formatScore(a.MentalLoad), formatScore(a.Motivation),
		formatScore(a.HDC), formatScore(a.BDC), formatScore(a.Global))
}

func describeAlert(a stats.Alert) string {
	switch a.Kind {
	case stats.AlertLowValue:
		return color.New(color.FgRed).Sprintf("%s at %g (threshold %g)",
			strings.ToLower(models.MetricLabels[a.Metric]), a.Value, a.Threshold)
	case stats.AlertWeight:
		return color.New(color.FgYellow).Sprintf("weight %.1f kg, %+.1f from target %.1f",
			a.Value, a.Diff, a.Target)
	case stats.AlertVariation:
		msg := fmt.Sprintf("average %.2f, %+.2f", a.Value, a.Diff)
		if a.Since != "" {
			msg += " since " + a.Since
		}
		return color.New(color.FgMagenta).Sprint(msg)
	}
	return string(a.Kind)
}

func bandColor(b stats.Band) *color.Color {
	switch b {
	case stats.BandCritical:
		return color.New(color.FgRed)
	case stats.BandWarning:
		return color.New(color.FgYellow)
	default:
		return color.New(color.FgGreen)
	}
}

func formatWeight(v *float64) string {
	if v == nil {
		return "-"
	}
	return fmt.Sprintf("%.1f", *v)
}

func init() {
	for _, c := range []*cobra.Command{averageCmd, zscoreCmd} {
		c.Flags().StringVarP(&filterGroup, "group", "g", "", "only this group (Forwards or Backs)")
		c.Flags().StringVarP(&filterLine, "line", "l", "", "only this line (e.g. \"Front row\")")
		c.Flags().StringVar(&filterPosition, "position", "", "only this position (English or French label)")
		c.Flags().StringVar(&filterPlayer, "player", "", "only this player (name or ID)")
	}
	averageCmd.Flags().BoolVarP(&averageBreakdown, "breakdown", "b", false, "show team, groups and lines")
	zscoreCmd.Flags().StringVarP(&zscoreMetric, "metric", "m", "global", "metric to follow")
	zscoreCmd.Flags().IntVarP(&zscoreDays, "days", "n", 30, "number of most recent dates to show (0 for all)")
	historyCmd.Flags().IntVarP(&historyDays, "days", "n", 14, "number of most recent entries (0 for all)")

	rootCmd.AddCommand(averageCmd)
	rootCmd.AddCommand(alertsCmd)
	rootCmd.AddCommand(zscoreCmd)
	rootCmd.AddCommand(historyCmd)
}
