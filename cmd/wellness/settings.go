// ABOUTME: CLI commands for alerting and Z-score thresholds.
// ABOUTME: Show, set one threshold, or reset to defaults.
package main

import (
	"fmt"
	"strconv"

	"github.com/fatih/color"
	"github.com/harperreed/wellness/internal/models"
	"github.com/spf13/cobra"
)

var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Alerting and trend thresholds",
	Long: `Show and change the thresholds used by alerts and the Z-score trend.

KEYS:

  low_value_threshold   metric score at or below which a player is flagged (1-5)
  variation_threshold   drop in a player's average since their last entry (0.5-4)
  weight_threshold      allowed kg away from the target weight (0.5-10)
  zscore_days           days of history behind each Z-score (7-60)
  zscore_alert          Z-score below which a day is critical (-3 to 0)
  zscore_warning        Z-score below which a day is a warning (-3 to 0)
  zscore_min_history    days of history needed before a Z-score is shown

EXAMPLES:

  wellness settings show
  wellness settings set low_value_threshold 2.5
  wellness settings reset`,
}

var settingsShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show current thresholds",
	RunE: func(cmd *cobra.Command, args []string) error {
		printSettings(store.Settings())
		return nil
	},
}

var settingsSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Change one threshold",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		u, err := settingsUpdate(args[0], args[1])
		if err != nil {
			return err
		}
		settings, err := store.UpdateSettings(u)
		if err != nil {
			return fmt.Errorf("failed to update settings: %w", err)
		}
		color.Green("✓ %s = %s", args[0], args[1])
		printSettings(settings)
		return nil
	},
}

var settingsResetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Restore default thresholds",
	RunE: func(cmd *cobra.Command, args []string) error {
		settings, err := store.ResetSettings()
		if err != nil {
			return fmt.Errorf("failed to reset settings: %w", err)
		}
		color.Green("✓ Settings reset to defaults")
		printSettings(settings)
		return nil
	},
}

func settingsUpdate(key, value string) (models.SettingsUpdate, error) {
	var u models.SettingsUpdate

	f, ferr := strconv.ParseFloat(value, 64)
	n, nerr := strconv.Atoi(value)

	switch key {
	case "low_value_threshold":
		u.LowValueThreshold = &f
	case "variation_threshold":
		u.VariationThreshold = &f
	case "weight_threshold":
		u.WeightThreshold = &f
	case "zscore_alert":
		u.ZScoreAlert = &f
	case "zscore_warning":
		u.ZScoreWarning = &f
	case "zscore_days":
		if nerr != nil {
			return u, fmt.Errorf("%s must be a whole number, got %q", key, value)
		}
		u.ZScoreDays = &n
		return u, nil
	case "zscore_min_history":
		if nerr != nil {
			return u, fmt.Errorf("%s must be a whole number, got %q", key, value)
		}
		u.ZScoreMinHistory = &n
		return u, nil
	default:
		return u, fmt.Errorf("unknown setting: %s", key)
	}
	if ferr != nil {
		return u, fmt.Errorf("%s must be a number, got %q", key, value)
	}
	return u, nil
}

func printSettings(s models.Settings) {
	rows := []struct {
		key   string
		value string
	}{
		{"low_value_threshold", fmt.Sprintf("%g", s.LowValueThreshold)},
		{"variation_threshold", fmt.Sprintf("%g", s.VariationThreshold)},
		{"weight_threshold", fmt.Sprintf("%g kg", s.WeightThreshold)},
		{"zscore_days", strconv.Itoa(s.ZScoreDays)},
		{"zscore_alert", fmt.Sprintf("%g", s.ZScoreAlert)},
		{"zscore_warning", fmt.Sprintf("%g", s.ZScoreWarning)},
		{"zscore_min_history", strconv.Itoa(s.ZScoreMinHistory)},
	}
	for _, r := range rows {
		fmt.Printf("  %s %s\n", padRight(r.key, 22), r.value)
	}
}

func init() {
	settingsCmd.AddCommand(settingsShowCmd)
	settingsCmd.AddCommand(settingsSetCmd)
	settingsCmd.AddCommand(settingsResetCmd)
	rootCmd.AddCommand(settingsCmd)
}
