// ABOUTME: Tests for low-value, weight and variation alerts.
// ABOUTME: Rows without a matching player never alert.
package stats

import (
	"testing"

	"github.com/harperreed/wellness/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func kinds(alerts []Alert) []AlertKind {
	var out []AlertKind
	for _, a := range alerts {
		out = append(out, a.Kind)
	}
	return out
}

func TestAlertsLowValuePerMetric(t *testing.T) {
	p := models.NewPlayer("DUPONT")
	snap := snapshot([]*models.Player{p},
		mkEntry(dayN(0), "DUPONT", metrics{models.MetricSleep: 2, models.MetricMotivation: 1, models.MetricHDC: 2.5}),
		mkEntry(dayN(0), "GHOST", metrics{models.MetricSleep: 1}),
	)

	alerts := AlertsForDate(snap, dayN(0))
	require.Len(t, alerts, 2)
	assert.Equal(t, models.MetricSleep, alerts[0].Metric)
	assert.Equal(t, models.MetricMotivation, alerts[1].Metric)
	assert.Equal(t, 1.0, alerts[1].Value)
	assert.Equal(t, p.ID, alerts[0].PlayerID)
}

func TestAlertsWeight(t *testing.T) {
	p := models.NewPlayer("DUPONT").WithTargetWeight(90)
	heavy := mkEntry(dayN(0), "DUPONT", nil).WithWeight(92.5)
	snap := snapshot([]*models.Player{p}, heavy)

	alerts := AlertsForDate(snap, dayN(0))
	require.Len(t, alerts, 1)
	assert.Equal(t, AlertWeight, alerts[0].Kind)
	assert.InDelta(t, 2.5, alerts[0].Diff, 1e-9)
	assert.Equal(t, 90.0, alerts[0].Target)

	light := mkEntry(dayN(1), "DUPONT", nil).WithWeight(87)
	within := mkEntry(dayN(2), "DUPONT", nil).WithWeight(92)
	snap = snapshot([]*models.Player{p}, light, within)
	alerts = AlertsForDate(snap, dayN(1))
	require.Len(t, alerts, 1)
	assert.InDelta(t, -3.0, alerts[0].Diff, 1e-9)
	assert.Empty(t, AlertsForDate(snap, dayN(2)))
}

func TestAlertsVariation(t *testing.T) {
	p := models.NewPlayer("DUPONT")
	snap := snapshot([]*models.Player{p},
		mkEntry(dayN(0), "DUPONT", metrics{models.MetricSleep: 5, models.MetricMotivation: 5}),
		mkEntry(dayN(1), "MARTIN", metrics{models.MetricSleep: 3}),
		mkEntry(dayN(2), "DUPONT", metrics{models.MetricSleep: 3, models.MetricMotivation: 3.5}),
		mkEntry(dayN(3), "DUPONT", metrics{models.MetricSleep: 3, models.MetricMotivation: 3}),
	)

	alerts := AlertsForDate(snap, dayN(2))
	require.Equal(t, []AlertKind{AlertVariation}, kinds(alerts))
	assert.Equal(t, dayN(0), alerts[0].Since)
	assert.InDelta(t, -1.75, alerts[0].Diff, 1e-9)
	require.NotNil(t, alerts[0].Previous)
	assert.Equal(t, 5.0, *alerts[0].Previous)

	assert.Empty(t, AlertsForDate(snap, dayN(3)))
	assert.Empty(t, AlertsForDate(snap, dayN(0)))
}
