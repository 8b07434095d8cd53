// ABOUTME: Multi-block import for sheets that lay days out side by side.
// ABOUTME: Two phases: list the dated blocks, then import the selected dates.
package sheet

import (
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/harperreed/wellness/internal/models"
	"github.com/harperreed/wellness/internal/textnorm"
	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"
)

var (
	// ErrNoBlocks means no "player" marker cell was found.
	ErrNoBlocks = errors.New("no player blocks found")
	// ErrNoMatchingBlocks means none of the selected dates has a block.
	ErrNoMatchingBlocks = errors.New("no block matches the selected dates")
)

// blockMarkers are the exact folded texts that start a block.
var blockMarkers = map[string]bool{
	"joueur":  true,
	"joueurs": true,
	"player":  true,
	"players": true,
	"nom":     true,
	"name":    true,
}

// Fixed offsets from the marker column inside a block.
var blockOffsets = map[Field]int{
	FieldSleep:      1,
	FieldMentalLoad: 2,
	FieldMotivation: 3,
	FieldHDC:        4,
	FieldBDC:        5,
}

// Remark header search window, relative to the marker column.
const (
	remarkOffsetMin = 6
	remarkOffsetMax = 9
)

var remarkKeywords = []string{"remarque", "remark", "comment", "observation"}

// Block is one day's column range.
type Block struct {
	Index    int       `json:"index"`
	StartCol int       `json:"start_col"`
	EndCol   int       `json:"end_col"`
	Date     time.Time `json:"date"`
	HasDate  bool      `json:"has_date"`
	Label    string    `json:"label"`
}

// DateKey is the block date as YYYY-MM-DD, or "" when unresolved.
func (b Block) DateKey() string {
	if !b.HasDate {
		return ""
	}
	return FormatDate(b.Date)
}

// BlockListing is the result of the listing phase.
type BlockListing struct {
	HeaderRow  int     `json:"header_row"`
	Blocks     []Block `json:"blocks"`
	Unresolved []Block `json:"unresolved"`
}

// Dates returns the distinct block dates in chronological order.
func (l *BlockListing) Dates() []time.Time {
	seen := make(map[string]bool)
	var out []time.Time
	for _, b := range l.Blocks {
		if !seen[b.DateKey()] {
			seen[b.DateKey()] = true
			out = append(out, b.Date)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Before(out[j]) })
	return out
}

// ListBlocks finds the marker row, splits it into blocks, and associates each
// block with the nearest date above it at or left of its start column. A date
// left of the previous block's marker belongs to that block and is not reused.
func ListBlocks(t Table, opts Options) (*BlockListing, error) {
	opts = opts.withDefaults()
	if t.IsEmpty() {
		return nil, ErrEmptyTable
	}

	markerRow, starts := findMarkers(t, opts.HeaderScanRows)
	if markerRow < 0 {
		return nil, fmt.Errorf("%w in the first %d rows", ErrNoBlocks, opts.HeaderScanRows)
	}

	dates := findDates(t, markerRow)
	width := t.Width()
	listing := &BlockListing{HeaderRow: markerRow}

	for i, start := range starts {
		end := width - 1
		if i+1 < len(starts) {
			end = starts[i+1] - 1
		}
		lowerBound := -1
		if i > 0 {
			lowerBound = starts[i-1]
		}

		b := Block{Index: i, StartCol: start, EndCol: end}
		if d, ok := nearestDate(dates, lowerBound, start); ok {
			b.Date = d
			b.HasDate = true
			b.Label = d.Format("Mon 02 Jan 2006")
			listing.Blocks = append(listing.Blocks, b)
			continue
		}
		b.Label = fmt.Sprintf("block %d (column %s)", i+1, columnName(start))
		listing.Unresolved = append(listing.Unresolved, b)
	}

	return listing, nil
}

// findMarkers returns the first row with marker cells and their columns.
func findMarkers(t Table, maxRows int) (int, []int) {
	for r := 0; r < len(t) && r < maxRows; r++ {
		var cols []int
		for c, text := range t[r] {
			if blockMarkers[textnorm.Fold(text)] {
				cols = append(cols, c)
			}
		}
		if len(cols) > 0 {
			return r, cols
		}
	}
	return -1, nil
}

// nearestDate picks the date with the greatest column in (lower, start],
// preferring the row closest to the header on ties.
func nearestDate(dates []dateCell, lower, start int) (time.Time, bool) {
	best := -1
	for i, d := range dates {
		if d.Col <= lower || d.Col > start {
			continue
		}
		if best < 0 || d.Col > dates[best].Col || (d.Col == dates[best].Col && d.Row > dates[best].Row) {
			best = i
		}
	}
	if best < 0 {
		return time.Time{}, false
	}
	return dates[best].Date, true
}

func columnName(col int) string {
	name, err := excelize.ColumnNumberToName(col + 1)
	if err != nil {
		return fmt.Sprintf("#%d", col+1)
	}
	return name
}

// MultiBatch is the result of importing selected blocks.
type MultiBatch struct {
	Batches     []*Batch    `json:"batches"`
	Unresolved  []Block     `json:"unresolved"`
	Diagnostics Diagnostics `json:"diagnostics"`
}

// EntriesCount totals the entries across batches.
func (mb *MultiBatch) EntriesCount() int {
	n := 0
	for _, b := range mb.Batches {
		n += len(b.Entries)
	}
	return n
}

// ImportBlocks imports every dated block whose date is in selected. Blocks
// sharing a date merge by player name, later blocks winning.
func ImportBlocks(t Table, selected []time.Time, opts Options) (*MultiBatch, error) {
	opts = opts.withDefaults()
	log := opts.Logger

	listing, err := ListBlocks(t, opts)
	if err != nil {
		return nil, err
	}

	want := make(map[string]bool, len(selected))
	for _, d := range selected {
		want[FormatDate(d)] = true
	}

	for _, b := range listing.Unresolved {
		log.Warn("block has no date and cannot be imported",
			zap.String("block", b.Label))
	}

	classifier := NewClassifier(opts.Vocabulary, opts.MaxNameLength)
	byDate := make(map[string]*Batch)
	result := &MultiBatch{Unresolved: listing.Unresolved}

	for _, b := range listing.Blocks {
		key := b.DateKey()
		if !want[key] {
			continue
		}

		mapping := blockMapping(t.Row(listing.HeaderRow), b)
		var diag Diagnostics
		entries := classifier.collectEntries(t, listing.HeaderRow+1, mapping, key, &diag)

		batch, ok := byDate[key]
		if !ok {
			batch = &Batch{Date: b.Date, Mapping: mapping}
			byDate[key] = batch
			result.Batches = append(result.Batches, batch)
		}
		batch.Entries = mergeEntries(batch.Entries, entries)
		batch.Diagnostics.Add(diag)
		result.Diagnostics.Add(diag)

		log.Debug("parsed block",
			zap.String("block", b.Label),
			zap.Int("entries", len(entries)))
	}

	if len(result.Batches) == 0 {
		return nil, ErrNoMatchingBlocks
	}

	sort.Slice(result.Batches, func(i, j int) bool {
		return result.Batches[i].Date.Before(result.Batches[j].Date)
	})
	return result, nil
}

// blockMapping places fields at fixed offsets from the marker column and
// searches for a remark header near the end of the block.
func blockMapping(header []string, b Block) ColumnMapping {
	m := emptyMapping()
	m.Name = b.StartCol
	for f, off := range blockOffsets {
		if col := b.StartCol + off; col <= b.EndCol {
			m.set(f, col)
		}
	}
	for off := remarkOffsetMin; off <= remarkOffsetMax; off++ {
		col := b.StartCol + off
		if col > b.EndCol {
			break
		}
		if col < len(header) && containsAny(textnorm.Fold(header[col]), remarkKeywords) {
			m.Remark = col
			break
		}
	}
	return m
}

// mergeEntries upserts incoming into existing by player name.
func mergeEntries(existing, incoming []*models.WellnessEntry) []*models.WellnessEntry {
	index := make(map[string]int, len(existing))
	for i, e := range existing {
		index[e.Name] = i
	}
	for _, e := range incoming {
		if i, ok := index[e.Name]; ok {
			existing[i] = e
			continue
		}
		index[e.Name] = len(existing)
		existing = append(existing, e)
	}
	return existing
}
