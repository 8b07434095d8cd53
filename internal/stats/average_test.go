// ABOUTME: Tests for day averages, filters and the group breakdown.
// ABOUTME: Includes the mean-of-means rule for the global score.
package stats

import (
	"testing"

	"github.com/harperreed/wellness/internal/models"
	"github.com/harperreed/wellness/internal/sheet"
	"github.com/harperreed/wellness/internal/wellness"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTeamAverageEndToEnd(t *testing.T) {
	table := sheet.Table{
		{"Joueur", "Poids", "Sommeil", "Charge mentale", "Motivation", "HDC", "BDC", "Remarque"},
		{"EQUIPE", "", "4", "3", "5", "4", "4", ""},
		{"DUPONT", "92", "4", "3", "5", "4", "4", "ça va"},
	}
	b, err := sheet.ImportSingleDay(table, sheet.Options{})
	require.NoError(t, err)

	store := wellness.New(nil, nil)
	res, err := store.ApplyImport(b)
	require.NoError(t, err)
	assert.Equal(t, 1, res.EntriesCount)
	assert.Equal(t, 1, res.NewPlayersCount)

	agg := TeamAverage(store.Snapshot(), res.Date, nil)
	require.NotNil(t, agg)
	assert.Equal(t, 4.0, *agg.Sleep)
	assert.Equal(t, 4.0, *agg.Global)
	assert.Equal(t, 1, agg.Count)
}

func TestTeamAverageMeanOfMeans(t *testing.T) {
	snap := snapshot(nil,
		mkEntry(dayN(0), "A", metrics{models.MetricSleep: 5}),
		mkEntry(dayN(0), "B", metrics{models.MetricSleep: 1, models.MetricMotivation: 1}),
	)

	agg := TeamAverage(snap, dayN(0), nil)
	require.NotNil(t, agg)
	assert.InDelta(t, 3.0, *agg.Global, 1e-9)
	assert.InDelta(t, 3.0, *agg.Sleep, 1e-9)
	assert.InDelta(t, 1.0, *agg.Motivation, 1e-9)
	assert.Nil(t, agg.HDC)
}

func TestTeamAverageSymmetricCase(t *testing.T) {
	snap := snapshot(nil,
		mkEntry(dayN(0), "A", metrics{models.MetricSleep: 5, models.MetricMotivation: 1}),
		mkEntry(dayN(0), "B", metrics{models.MetricSleep: 1, models.MetricMotivation: 5}),
	)
	agg := TeamAverage(snap, dayN(0), nil)
	require.NotNil(t, agg)
	assert.InDelta(t, 3.0, *agg.Global, 1e-9)
}

func TestTeamAverageNoData(t *testing.T) {
	snap := snapshot(nil, mkEntry(dayN(0), "A", metrics{models.MetricSleep: 3}))
	assert.Nil(t, TeamAverage(snap, dayN(5), nil))
	assert.Nil(t, TeamAverage(snap, dayN(0), &Filter{Group: models.GroupBacks}))
}

func TestTeamAverageFilters(t *testing.T) {
	hooker := models.NewPlayer("HOOKER").WithPosition(models.PositionHooker)
	wing := models.NewPlayer("WING").WithPosition(models.PositionWing)
	lock := models.NewPlayer("LOCK").WithPosition(models.PositionLock)
	snap := snapshot([]*models.Player{hooker, wing, lock},
		mkEntry(dayN(0), "HOOKER", metrics{models.MetricSleep: 2}),
		mkEntry(dayN(0), "WING", metrics{models.MetricSleep: 5}),
		mkEntry(dayN(0), "LOCK", metrics{models.MetricSleep: 4}),
		mkEntry(dayN(0), "GHOST", metrics{models.MetricSleep: 1}),
	)

	tests := []struct {
		name  string
		f     *Filter
		count int
		sleep float64
	}{
		{"team includes unmatched rows", nil, 4, 3.0},
		{"forwards", &Filter{Group: models.GroupForwards}, 2, 3.0},
		{"backs", &Filter{Group: models.GroupBacks}, 1, 5.0},
		{"front row", &Filter{Line: models.LineFrontRow}, 1, 2.0},
		{"french position label", &Filter{Position: "Deuxième ligne"}, 1, 4.0},
		{"player", &Filter{PlayerID: wing.ID}, 1, 5.0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			agg := TeamAverage(snap, dayN(0), tt.f)
			require.NotNil(t, agg)
			assert.Equal(t, tt.count, agg.Count)
			assert.InDelta(t, tt.sleep, *agg.Sleep, 1e-9)
		})
	}
}

func TestFilterValidate(t *testing.T) {
	assert.NoError(t, (*Filter)(nil).Validate())
	assert.NoError(t, (&Filter{Group: models.GroupBacks, Line: models.LineWings}).Validate())
	assert.Error(t, (&Filter{Group: "Subs"}).Validate())
	assert.Error(t, (&Filter{Line: "Midfield"}).Validate())
	assert.Error(t, (&Filter{Position: "Goalkeeper"}).Validate())
	assert.Equal(t, "Team", (&Filter{}).String())
	assert.Equal(t, models.LineWings, (&Filter{Line: models.LineWings}).String())
}

func TestBreakdown(t *testing.T) {
	hooker := models.NewPlayer("HOOKER").WithPosition(models.PositionHooker)
	wing := models.NewPlayer("WING").WithPosition(models.PositionWing)
	snap := snapshot([]*models.Player{hooker, wing},
		mkEntry(dayN(0), "HOOKER", metrics{models.MetricSleep: 2}),
		mkEntry(dayN(0), "WING", metrics{models.MetricSleep: 4}),
	)

	rows := Breakdown(snap, dayN(0))
	var labels []string
	for _, r := range rows {
		labels = append(labels, r.Label)
	}
	assert.Equal(t, []string{"Team", models.GroupForwards, models.LineFrontRow, models.GroupBacks, models.LineWings}, labels)
	assert.Nil(t, Breakdown(snap, dayN(3)))
}
