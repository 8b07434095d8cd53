// ABOUTME: Tolerant numeric parsing for hand-edited spreadsheet cells.
// ABOUTME: Handles comma decimals, embedded spaces, and spreadsheet error sentinels.
package sheet

import (
	"math"
	"strconv"
	"strings"

	"github.com/harperreed/wellness/internal/models"
	"github.com/harperreed/wellness/internal/textnorm"
)

var blankTokens = map[string]bool{
	"":     true,
	"-":    true,
	"nan":  true,
	"none": true,
	"null": true,
}

var spaceStripper = strings.NewReplacer(" ", "", "\u00a0", "", "\u202f", "", "\t", "")

// ParseNumber reads a cell as a float. Sentinel errors such as #DIV/0!,
// #N/A or #VALUE!, blanks and dashes yield false.
func ParseNumber(cell string) (float64, bool) {
	s := spaceStripper.Replace(strings.TrimSpace(cell))
	if blankTokens[textnorm.Fold(s)] || strings.HasPrefix(s, "#") {
		return 0, false
	}
	s = strings.Replace(s, ",", ".", 1)
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, false
	}
	return v, true
}

// parseMetric reads a 1-5 questionnaire score.
func parseMetric(cell string) (float64, bool) {
	v, ok := ParseNumber(cell)
	if !ok || v < models.MetricMin || v > models.MetricMax {
		return 0, false
	}
	return v, true
}

// parseWeight reads a body weight in kg within the plausibility window.
func parseWeight(cell string) (float64, bool) {
	v, ok := ParseNumber(cell)
	if !ok || v < models.WeightMin || v > models.WeightMax {
		return 0, false
	}
	return v, true
}
