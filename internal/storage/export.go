// ABOUTME: Export and import functionality for wellness data.
// ABOUTME: Supports JSON, YAML, and Markdown export formats.
package storage

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/harperreed/wellness/internal/models"
	"gopkg.in/yaml.v3"
)

// ExportVersion is the format version written to exports.
const ExportVersion = "1.0"

// ExportData represents the full export format for wellness data.
type ExportData struct {
	Version    string                  `json:"version" yaml:"version"`
	ExportedAt time.Time               `json:"exported_at" yaml:"exported_at"`
	Tool       string                  `json:"tool" yaml:"tool"`
	Players    []*models.Player        `json:"players" yaml:"players"`
	Entries    []*models.WellnessEntry `json:"entries" yaml:"entries"`
	Injuries   []*models.Injury        `json:"injuries" yaml:"injuries"`
	Settings   *models.Settings        `json:"settings,omitempty" yaml:"settings,omitempty"`
}

// GetAllData reads everything from a repository for export.
func GetAllData(repo Repository) (*ExportData, error) {
	players, err := repo.ListPlayers()
	if err != nil {
		return nil, fmt.Errorf("list players: %w", err)
	}

	entries, err := repo.ListEntries()
	if err != nil {
		return nil, fmt.Errorf("list entries: %w", err)
	}

	injuries, err := repo.ListInjuries()
	if err != nil {
		return nil, fmt.Errorf("list injuries: %w", err)
	}

	settings, err := repo.LoadSettings()
	if err != nil {
		return nil, fmt.Errorf("load settings: %w", err)
	}

	return &ExportData{
		Version:    ExportVersion,
		ExportedAt: time.Now(),
		Tool:       "wellness",
		Players:    players,
		Entries:    entries,
		Injuries:   injuries,
		Settings:   settings,
	}, nil
}

// ImportData writes an export into a repository. Existing records with the
// same keys are replaced.
func ImportData(repo Repository, data *ExportData) error {
	for _, p := range data.Players {
		if err := repo.SavePlayer(p); err != nil {
			return fmt.Errorf("import player: %w", err)
		}
	}

	if err := repo.SaveEntries(data.Entries); err != nil {
		return fmt.Errorf("import entries: %w", err)
	}

	for _, i := range data.Injuries {
		if err := repo.SaveInjury(i); err != nil {
			return fmt.Errorf("import injury: %w", err)
		}
	}

	if data.Settings != nil {
		if err := repo.SaveSettings(*data.Settings); err != nil {
			return fmt.Errorf("import settings: %w", err)
		}
	}

	return nil
}

// ParseJSON decodes a JSON export.
func ParseJSON(raw []byte) (*ExportData, error) {
	var data ExportData
	if err := json.Unmarshal(raw, &data); err != nil {
		return nil, fmt.Errorf("unmarshal JSON: %w", err)
	}
	for _, e := range data.Entries {
		e.Name = models.NormalizeName(e.Name)
	}
	return &data, nil
}

// ExportJSON renders an export as indented JSON.
func ExportJSON(data *ExportData) ([]byte, error) {
	return json.MarshalIndent(data, "", "  ")
}

// ExportYAML renders an export as YAML with entries grouped by date.
func ExportYAML(data *ExportData) ([]byte, error) {
	yamlData := struct {
		Version    string                 `yaml:"version"`
		ExportedAt string                 `yaml:"exported_at"`
		Tool       string                 `yaml:"tool"`
		Players    []yamlPlayer           `yaml:"players"`
		Days       map[string][]yamlEntry `yaml:"days"`
		Injuries   []yamlInjury           `yaml:"injuries,omitempty"`
		Settings   *models.Settings       `yaml:"settings,omitempty"`
	}{
		Version:    data.Version,
		ExportedAt: data.ExportedAt.Format(time.RFC3339),
		Tool:       data.Tool,
		Players:    make([]yamlPlayer, 0, len(data.Players)),
		Days:       make(map[string][]yamlEntry),
		Settings:   data.Settings,
	}

	for _, p := range data.Players {
		yamlData.Players = append(yamlData.Players, yamlPlayer{
			ID:           p.ID.String()[:8],
			Name:         p.Name,
			Position:     string(p.Position),
			Status:       string(p.Status),
			TargetWeight: p.TargetWeight,
		})
	}

	for _, e := range data.Entries {
		ye := yamlEntry{
			Name:       e.Name,
			Weight:     e.Weight,
			Sleep:      e.Sleep,
			MentalLoad: e.MentalLoad,
			Motivation: e.Motivation,
			HDC:        e.HDC,
			BDC:        e.BDC,
			Remark:     e.Remark,
		}
		yamlData.Days[e.Date] = append(yamlData.Days[e.Date], ye)
	}

	for _, i := range data.Injuries {
		yi := yamlInjury{
			ID:              i.ID.String()[:8],
			Player:          i.PlayerName,
			Zone:            string(i.Zone),
			Grade:           i.Grade,
			Circumstance:    string(i.Circumstance),
			Date:            i.Date.Format(models.DateLayout),
			EstimatedReturn: i.EstimatedReturn.Format(models.DateLayout),
			Notes:           i.Notes,
		}
		if i.HealedAt != nil {
			yi.HealedAt = i.HealedAt.Format(models.DateLayout)
		}
		yamlData.Injuries = append(yamlData.Injuries, yi)
	}

	return yaml.Marshal(yamlData)
}

type yamlPlayer struct {
	ID           string  `yaml:"id"`
	Name         string  `yaml:"name"`
	Position     string  `yaml:"position"`
	Status       string  `yaml:"status"`
	TargetWeight float64 `yaml:"target_weight"`
}

type yamlEntry struct {
	Name       string   `yaml:"name"`
	Weight     *float64 `yaml:"weight,omitempty"`
	Sleep      *float64 `yaml:"sleep,omitempty"`
	MentalLoad *float64 `yaml:"mental_load,omitempty"`
	Motivation *float64 `yaml:"motivation,omitempty"`
	HDC        *float64 `yaml:"hdc,omitempty"`
	BDC        *float64 `yaml:"bdc,omitempty"`
	Remark     string   `yaml:"remark,omitempty"`
}

type yamlInjury struct {
	ID              string `yaml:"id"`
	Player          string `yaml:"player"`
	Zone            string `yaml:"zone"`
	Grade           int    `yaml:"grade"`
	Circumstance    string `yaml:"circumstance"`
	Date            string `yaml:"date"`
	EstimatedReturn string `yaml:"estimated_return"`
	HealedAt        string `yaml:"healed_at,omitempty"`
	Notes           string `yaml:"notes,omitempty"`
}

// ExportMarkdown renders the roster, one table per day, and the injury log.
// Days before since are left out when since is set.
func ExportMarkdown(data *ExportData, since *time.Time) string {
	var sb strings.Builder
	now := time.Now()

	sb.WriteString(fmt.Sprintf("# Wellness Export - %s\n\n", now.Format(models.DateLayout)))
	sb.WriteString(fmt.Sprintf("Generated: %s\n\n", now.Format(time.RFC3339)))

	if len(data.Players) > 0 {
		sb.WriteString("## Players\n\n")
		sb.WriteString("| Name | Position | Status | Target weight |\n")
		sb.WriteString("|------|----------|--------|---------------|\n")
		for _, p := range data.Players {
			sb.WriteString(fmt.Sprintf("| %s | %s | %s | %.1f kg |\n",
				p.Name, p.Position, p.Status, p.TargetWeight))
		}
		sb.WriteString("\n")
	}

	byDate := make(map[string][]*models.WellnessEntry)
	for _, e := range data.Entries {
		if since != nil && e.Date < since.Format(models.DateLayout) {
			continue
		}
		byDate[e.Date] = append(byDate[e.Date], e)
	}
	dates := make([]string, 0, len(byDate))
	for d := range byDate {
		dates = append(dates, d)
	}
	sort.Sort(sort.Reverse(sort.StringSlice(dates)))

	for _, d := range dates {
		sb.WriteString(fmt.Sprintf("## %s\n\n", d))
		sb.WriteString("| Player | Weight | Sleep | Mental load | Motivation | HDC | BDC | Average | Remark |\n")
		sb.WriteString("|--------|--------|-------|-------------|------------|-----|-----|---------|--------|\n")
		for _, e := range byDate[d] {
			avg := ""
			if a, ok := e.Average(); ok {
				avg = fmt.Sprintf("%.2f", a)
			}
			sb.WriteString(fmt.Sprintf("| %s | %s | %s | %s | %s | %s | %s | %s | %s |\n",
				e.Name,
				formatOptional(e.Weight, "%.1f"),
				formatOptional(e.Sleep, "%g"),
				formatOptional(e.MentalLoad, "%g"),
				formatOptional(e.Motivation, "%g"),
				formatOptional(e.HDC, "%g"),
				formatOptional(e.BDC, "%g"),
				avg,
				e.Remark))
		}
		sb.WriteString("\n")
	}

	if len(data.Injuries) > 0 {
		sb.WriteString("## Injuries\n\n")
		sb.WriteString("| Date | Player | Zone | Grade | Circumstance | Estimated return | Healed |\n")
		sb.WriteString("|------|--------|------|-------|--------------|------------------|--------|\n")
		for _, i := range data.Injuries {
			healed := ""
			if i.HealedAt != nil {
				healed = i.HealedAt.Format(models.DateLayout)
			}
			sb.WriteString(fmt.Sprintf("| %s | %s | %s | %d | %s | %s | %s |\n",
				i.Date.Format(models.DateLayout), i.PlayerName, i.Zone, i.Grade,
				i.Circumstance, i.EstimatedReturn.Format(models.DateLayout), healed))
		}
	}

	return sb.String()
}

func formatOptional(v *float64, format string) string {
	if v == nil {
		return ""
	}
	return fmt.Sprintf(format, *v)
}
