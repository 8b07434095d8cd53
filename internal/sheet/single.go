// ABOUTME: Single-day import: one date, one header row, one block of players.
// ABOUTME: Pure function of the table; the store applies the resulting batch.
package sheet

import (
	"fmt"
	"time"

	"github.com/harperreed/wellness/internal/models"
	"go.uber.org/zap"
)

// Diagnostics counts what an import skipped and which heuristics it used.
type Diagnostics struct {
	RowsScanned     int  `json:"rows_scanned"`
	BlankRows       int  `json:"blank_rows"`
	AggregateRows   int  `json:"aggregate_rows"`
	RemarkRows      int  `json:"remark_rows"`
	EmptyRows       int  `json:"empty_rows"`
	DuplicateRows   int  `json:"duplicate_rows"`
	FallbackMapping bool `json:"fallback_mapping"`
	DateFallback    bool `json:"date_fallback"`
}

// Skipped is the number of non-blank rows that produced no entry.
func (d Diagnostics) Skipped() int {
	return d.AggregateRows + d.RemarkRows + d.EmptyRows
}

// Degraded reports whether a heuristic fallback was used.
func (d Diagnostics) Degraded() bool {
	return d.FallbackMapping || d.DateFallback
}

// Add accumulates o into d.
func (d *Diagnostics) Add(o Diagnostics) {
	d.RowsScanned += o.RowsScanned
	d.BlankRows += o.BlankRows
	d.AggregateRows += o.AggregateRows
	d.RemarkRows += o.RemarkRows
	d.EmptyRows += o.EmptyRows
	d.DuplicateRows += o.DuplicateRows
	d.FallbackMapping = d.FallbackMapping || o.FallbackMapping
	d.DateFallback = d.DateFallback || o.DateFallback
}

// Batch is the validated output of an import for one date.
type Batch struct {
	Date        time.Time               `json:"date"`
	Entries     []*models.WellnessEntry `json:"entries"`
	Mapping     ColumnMapping           `json:"mapping"`
	Diagnostics Diagnostics             `json:"diagnostics"`
}

// DateKey is the batch date as YYYY-MM-DD.
func (b *Batch) DateKey() string {
	return FormatDate(b.Date)
}

// ImportSingleDay locates the date and header, maps columns, and builds
// entries for every player row below the header.
func ImportSingleDay(t Table, opts Options) (*Batch, error) {
	opts = opts.withDefaults()
	log := opts.Logger

	if t.IsEmpty() {
		return nil, ErrEmptyTable
	}

	batch := &Batch{}
	date, ok := FindDate(t, opts.DateScanRows)
	if !ok {
		date = opts.today()
		batch.Diagnostics.DateFallback = true
		log.Warn("no date found in leading rows, using today",
			zap.Int("scanned_rows", opts.DateScanRows),
			zap.String("date", FormatDate(date)))
	}
	batch.Date = date

	headerRow, err := FindHeaderRow(t, opts.HeaderScanRows)
	if err != nil {
		return nil, err
	}

	mapping, err := MapColumns(t.Row(headerRow))
	if err != nil {
		return nil, fmt.Errorf("header row %d: %w", headerRow+1, err)
	}
	if mapping.Fallback {
		batch.Diagnostics.FallbackMapping = true
		log.Warn("header keywords matched too few columns, using positional layout",
			zap.Int("header_row", headerRow+1),
			zap.Stringer("mapping", mapping))
	}
	batch.Mapping = mapping

	classifier := NewClassifier(opts.Vocabulary, opts.MaxNameLength)
	batch.Entries = classifier.collectEntries(t, headerRow+1, mapping, batch.DateKey(), &batch.Diagnostics)

	log.Debug("parsed single-day sheet",
		zap.String("date", batch.DateKey()),
		zap.Int("entries", len(batch.Entries)),
		zap.Int("skipped", batch.Diagnostics.Skipped()))

	return batch, nil
}
