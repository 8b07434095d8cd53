// ABOUTME: Importer glues table sources, the pure sheet importers, and the store.
// ABOUTME: Sources are local CSV/Excel files, Google Sheets links, or CSV URLs.
package wellness

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/harperreed/wellness/internal/sheet"
	"go.uber.org/zap"
)

// ErrNoFetcher is returned when a URL source is given without a fetcher.
var ErrNoFetcher = errors.New("remote sources require a fetcher")

// Importer runs imports against a store.
type Importer struct {
	store   *Store
	opts    sheet.Options
	fetcher *sheet.Fetcher
	logger  *zap.Logger
}

// NewImporter creates an Importer. fetcher may be nil for local files only.
func NewImporter(store *Store, opts sheet.Options, fetcher *sheet.Fetcher) *Importer {
	logger := opts.Logger
	if logger == nil {
		logger = store.logger
		opts.Logger = logger
	}
	return &Importer{store: store, opts: opts, fetcher: fetcher, logger: logger}
}

// Load reads a source into a raw table.
func (im *Importer) Load(ctx context.Context, source string) (sheet.Table, error) {
	source = strings.TrimSpace(source)

	if strings.HasPrefix(source, "http://") || strings.HasPrefix(source, "https://") {
		if im.fetcher == nil {
			return nil, ErrNoFetcher
		}
		if sheet.IsSheetsURL(source) {
			return im.fetcher.FetchSheet(ctx, source)
		}
		return im.fetcher.FetchCSV(ctx, source)
	}

	f, err := os.Open(source)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", source, err)
	}
	defer func() { _ = f.Close() }()

	switch strings.ToLower(filepath.Ext(source)) {
	case ".xlsx", ".xlsm":
		t, sheetName, err := sheet.ReadExcel(f)
		if err != nil {
			return nil, err
		}
		im.logger.Debug("read workbook", zap.String("file", source), zap.String("sheet", sheetName))
		return t, nil
	default:
		return sheet.ReadCSV(f)
	}
}

// ImportSingleDay imports a single-day sheet and applies it to the store.
func (im *Importer) ImportSingleDay(ctx context.Context, source string) (*ImportResult, error) {
	t, err := im.Load(ctx, source)
	if err != nil {
		return nil, err
	}
	return im.ImportTable(t)
}

// ImportTable imports an already loaded single-day table.
func (im *Importer) ImportTable(t sheet.Table) (*ImportResult, error) {
	batch, err := sheet.ImportSingleDay(t, im.opts)
	if err != nil {
		return nil, fmt.Errorf("import sheet: %w", err)
	}
	return im.store.ApplyImport(batch)
}

// ListBlocks lists the dated blocks of a multi-day sheet without importing.
func (im *Importer) ListBlocks(ctx context.Context, source string) (*sheet.BlockListing, error) {
	t, err := im.Load(ctx, source)
	if err != nil {
		return nil, err
	}
	return sheet.ListBlocks(t, im.opts)
}

// ImportBlocks imports the blocks whose dates are selected. No dates selects
// every dated block.
func (im *Importer) ImportBlocks(ctx context.Context, source string, dates []time.Time) (*MultiImportResult, error) {
	t, err := im.Load(ctx, source)
	if err != nil {
		return nil, err
	}
	return im.ImportTableBlocks(t, dates)
}

// ImportTableBlocks imports selected blocks from an already loaded table.
func (im *Importer) ImportTableBlocks(t sheet.Table, dates []time.Time) (*MultiImportResult, error) {
	if len(dates) == 0 {
		listing, err := sheet.ListBlocks(t, im.opts)
		if err != nil {
			return nil, fmt.Errorf("list blocks: %w", err)
		}
		dates = listing.Dates()
	}
	mb, err := sheet.ImportBlocks(t, dates, im.opts)
	if err != nil {
		return nil, fmt.Errorf("import blocks: %w", err)
	}
	return im.store.ApplyMultiImport(mb)
}
