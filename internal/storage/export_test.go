// ABOUTME: Tests for export and import functionality.
// ABOUTME: Covers JSON round trips, YAML grouping and Markdown tables.
package storage

import (
	"strings"
	"testing"
	"time"

	"github.com/harperreed/wellness/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func seedRepo(t *testing.T, repo Repository) *models.Player {
	t.Helper()

	p := models.NewPlayer("DUPONT").WithPosition(models.PositionLock)
	require.NoError(t, repo.SavePlayer(p))

	e1 := models.NewEntry("2026-01-05", "DUPONT").WithWeight(101)
	e1.SetValue(models.MetricSleep, 3)
	e2 := models.NewEntry("2026-01-06", "DUPONT").WithRemark("ça va")
	e2.SetValue(models.MetricSleep, 4)
	e2.SetValue(models.MetricMotivation, 5)
	require.NoError(t, repo.SaveEntries([]*models.WellnessEntry{e1, e2}))

	inj, err := models.NewInjury(p, models.ZoneAnkle, 1, models.CircumstanceTraining, time.Date(2026, 1, 6, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	require.NoError(t, repo.SaveInjury(inj))

	s := models.DefaultSettings()
	s.ZScoreDays = 21
	require.NoError(t, repo.SaveSettings(s))
	return p
}

func TestGetAllDataAndJSONRoundTrip(t *testing.T) {
	src := setupTestDB(t)
	p := seedRepo(t, src)

	data, err := GetAllData(src)
	require.NoError(t, err)
	assert.Equal(t, ExportVersion, data.Version)
	assert.Equal(t, "wellness", data.Tool)
	assert.Len(t, data.Players, 1)
	assert.Len(t, data.Entries, 2)
	assert.Len(t, data.Injuries, 1)
	require.NotNil(t, data.Settings)
	assert.Equal(t, 21, data.Settings.ZScoreDays)

	raw, err := ExportJSON(data)
	require.NoError(t, err)

	parsed, err := ParseJSON(raw)
	require.NoError(t, err)

	dst := NewKVStore(NewMemoryKV())
	require.NoError(t, ImportData(dst, parsed))

	players, err := dst.ListPlayers()
	require.NoError(t, err)
	require.Len(t, players, 1)
	assert.Equal(t, p.ID, players[0].ID)

	entries, err := dst.ListEntries()
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, "ça va", entries[1].Remark)

	settings, err := dst.LoadSettings()
	require.NoError(t, err)
	require.NotNil(t, settings)
	assert.Equal(t, 21, settings.ZScoreDays)
}

func TestParseJSONNormalizesNames(t *testing.T) {
	data, err := ParseJSON([]byte(`{"version":"1.0","entries":[{"date":"2026-01-06","name":" dupont ","sleep":4}]}`))
	require.NoError(t, err)
	require.Len(t, data.Entries, 1)
	assert.Equal(t, "DUPONT", data.Entries[0].Name)

	_, err = ParseJSON([]byte("not json"))
	assert.Error(t, err)
}

func TestExportYAMLGroupsByDay(t *testing.T) {
	repo := NewKVStore(NewMemoryKV())
	seedRepo(t, repo)

	data, err := GetAllData(repo)
	require.NoError(t, err)

	raw, err := ExportYAML(data)
	require.NoError(t, err)

	var decoded struct {
		Tool string                              `yaml:"tool"`
		Days map[string][]map[string]interface{} `yaml:"days"`
	}
	require.NoError(t, yaml.Unmarshal(raw, &decoded))
	assert.Equal(t, "wellness", decoded.Tool)
	require.Len(t, decoded.Days, 2)
	require.Len(t, decoded.Days["2026-01-06"], 1)
	assert.Equal(t, "DUPONT", decoded.Days["2026-01-06"][0]["name"])
	_, hasWeight := decoded.Days["2026-01-06"][0]["weight"]
	assert.False(t, hasWeight, "missing values are omitted")
}

func TestExportMarkdown(t *testing.T) {
	repo := NewKVStore(NewMemoryKV())
	seedRepo(t, repo)
	data, err := GetAllData(repo)
	require.NoError(t, err)

	md := ExportMarkdown(data, nil)
	assert.Contains(t, md, "# Wellness Export")
	assert.Contains(t, md, "| DUPONT | Lock | Fit | 90.0 kg |")
	assert.Contains(t, md, "## 2026-01-06")
	assert.Contains(t, md, "| DUPONT |  | 4 |  | 5 |  |  | 4.50 | ça va |")
	assert.Contains(t, md, "## Injuries")
	assert.Less(t, strings.Index(md, "## 2026-01-06"), strings.Index(md, "## 2026-01-05"), "newest day first")

	since := time.Date(2026, 1, 6, 0, 0, 0, 0, time.UTC)
	md = ExportMarkdown(data, &since)
	assert.NotContains(t, md, "## 2026-01-05")
	assert.Contains(t, md, "## 2026-01-06")
}
