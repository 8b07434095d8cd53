// ABOUTME: CLI commands for managing the squad roster.
// ABOUTME: List, add, update and delete players by name or ID prefix.
package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/harperreed/wellness/internal/models"
	"github.com/harperreed/wellness/internal/wellness"
	"github.com/spf13/cobra"
)

var (
	playersGroup   string
	playerPosition string
	playerStatus   string
	playerWeight   float64
	playerNewName  string
)

var playersCmd = &cobra.Command{
	Use:     "players",
	Aliases: []string{"player", "p"},
	Short:   "Manage the squad roster",
	Long: `Manage the squad roster.

Players are created automatically the first time an import sees their name,
with a default position (Loosehead prop) and target weight (the imported
weight, or 90 kg). Use 'players update' to set the real values.

Players are referenced by full ID, by name (case-insensitive) or by an ID
prefix of at least 4 characters.

POSITIONS:

  Forwards   Loosehead prop, Hooker, Tighthead prop (Front row)
             Lock (Second row)
             Flanker, Number eight (Back row)
  Backs      Scrum-half, Fly-half (Half-backs)
             Centre (Centres), Wing (Wings), Fullback (Fullback)

  French labels are accepted: pilier gauche, talonneur, pilier droit,
  2eme ligne, 3eme ligne aile, 3eme ligne centre, demi de melee,
  demi d'ouverture, centre, ailier, arriere.

STATUS:

  Fit, Injured, Rehabilitation, Return-to-play`,
}

var playersListCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List players",
	RunE: func(cmd *cobra.Command, args []string) error {
		if playersGroup != "" && !models.IsValidGroup(playersGroup) {
			return fmt.Errorf("unknown group: %s (use Forwards or Backs)", playersGroup)
		}

		var shown int
		for _, p := range store.ListPlayers() {
			if playersGroup != "" && p.Group() != playersGroup {
				continue
			}
			fmt.Printf("%s %s %s %s %s\n",
				faint.Sprint(shortID(p.ID)),
				padRight(p.Name, 20),
				padRight(string(p.Position), 16),
				statusColor(p.Status).Sprint(padRight(string(p.Status), 14)),
				faint.Sprintf("%.1f kg", p.TargetWeight))
			shown++
		}
		if shown == 0 {
			fmt.Println("No players found.")
		}
		return nil
	},
}

var playersAddCmd = &cobra.Command{
	Use:   "add <name>",
	Short: "Add a player",
	Long: `Add a player to the roster.

Examples:
  wellness players add Dupont --position Talonneur --weight 104
  wellness players add "Martin" --status Injured`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		p := models.NewPlayer(args[0])
		if playerPosition != "" {
			pos, ok := models.ParsePosition(playerPosition)
			if !ok {
				return fmt.Errorf("unknown position: %s", playerPosition)
			}
			p.WithPosition(pos)
		}
		if playerStatus != "" {
			st, ok := models.ParseStatus(playerStatus)
			if !ok {
				return fmt.Errorf("unknown status: %s", playerStatus)
			}
			p.WithStatus(st)
		}
		if playerWeight > 0 {
			p.WithTargetWeight(playerWeight)
		}

		if err := store.CreatePlayer(p); err != nil {
			return fmt.Errorf("failed to add player: %w", err)
		}

		color.Green("✓ Added %s", p.Name)
		fmt.Printf("  %s %s, %.1f kg\n", faint.Sprint(shortID(p.ID)), p.Position, p.TargetWeight)
		return nil
	},
}

var playersUpdateCmd = &cobra.Command{
	Use:   "update <player>",
	Short: "Update a player",
	Long: `Update a player's name, position, status or target weight.

Renaming does not rename past entries; they stay under the old name.

Examples:
  wellness players update dupont --position Hooker
  wellness players update 3f2a --weight 101.5 --status Fit`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var u wellness.PlayerUpdate
		flags := cmd.Flags()
		if flags.Changed("name") {
			u.Name = &playerNewName
		}
		if flags.Changed("position") {
			pos, ok := models.ParsePosition(playerPosition)
			if !ok {
				return fmt.Errorf("unknown position: %s", playerPosition)
			}
			u.Position = &pos
		}
		if flags.Changed("status") {
			st, ok := models.ParseStatus(playerStatus)
			if !ok {
				return fmt.Errorf("unknown status: %s", playerStatus)
			}
			u.Status = &st
		}
		if flags.Changed("weight") {
			u.TargetWeight = &playerWeight
		}
		if u == (wellness.PlayerUpdate{}) {
			return fmt.Errorf("nothing to update (use --name, --position, --status or --weight)")
		}

		p, err := store.UpdatePlayer(args[0], u)
		if err != nil {
			return fmt.Errorf("failed to update player: %w", err)
		}

		color.Green("✓ Updated %s", p.Name)
		fmt.Printf("  %s %s, %s, %.1f kg\n", faint.Sprint(shortID(p.ID)), p.Position, p.Status, p.TargetWeight)
		return nil
	},
}

var playersDeleteCmd = &cobra.Command{
	Use:     "delete <player>",
	Aliases: []string{"del", "rm"},
	Short:   "Delete a player",
	Long: `Delete a player from the roster.

The player's wellness entries are kept and still count in team averages.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		p, err := store.DeletePlayer(args[0])
		if err != nil {
			return fmt.Errorf("failed to delete player: %w", err)
		}
		color.Yellow("✗ Deleted %s", p.Name)
		fmt.Printf("  %s\n", faint.Sprint(shortID(p.ID)))
		return nil
	},
}

func statusColor(s models.Status) *color.Color {
	switch s {
	case models.StatusInjured:
		return color.New(color.FgRed)
	case models.StatusRehabilitation, models.StatusReturnToPlay:
		return color.New(color.FgYellow)
	default:
		return color.New(color.FgGreen)
	}
}

func init() {
	playersListCmd.Flags().StringVarP(&playersGroup, "group", "g", "", "only players of this group (Forwards or Backs)")

	for _, c := range []*cobra.Command{playersAddCmd, playersUpdateCmd} {
		c.Flags().StringVar(&playerPosition, "position", "", "position (English or French label)")
		c.Flags().StringVar(&playerStatus, "status", "", "status (Fit, Injured, Rehabilitation, Return-to-play)")
		c.Flags().Float64Var(&playerWeight, "weight", 0, "target weight in kg")
	}
	playersUpdateCmd.Flags().StringVar(&playerNewName, "name", "", "new name")

	playersCmd.AddCommand(playersListCmd)
	playersCmd.AddCommand(playersAddCmd)
	playersCmd.AddCommand(playersUpdateCmd)
	playersCmd.AddCommand(playersDeleteCmd)
	rootCmd.AddCommand(playersCmd)
}
