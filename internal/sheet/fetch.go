// ABOUTME: Google Sheets CSV fetcher built on resty with timeout and retries.
// ABOUTME: Turns a sheet share URL into the gviz CSV export URL for one tab.
package sheet

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"net/url"
	"regexp"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"go.uber.org/zap"
)

// DefaultSheetName is the tab the wellness questionnaire lives in.
const DefaultSheetName = "Bien-être"

const defaultSheetsBaseURL = "https://docs.google.com"

var (
	// ErrInvalidSheetURL means no spreadsheet ID could be found in the URL.
	ErrInvalidSheetURL = errors.New("invalid Google Sheets URL")
	// ErrSheetNotPublic means Google answered with an HTML page instead of CSV.
	ErrSheetNotPublic = errors.New("sheet is not shared publicly")
)

var sheetIDRe = regexp.MustCompile(`/d/([a-zA-Z0-9_-]+)`)

// FetchConfig configures a Fetcher. Zero values use defaults.
type FetchConfig struct {
	BaseURL   string
	SheetName string
	Timeout   time.Duration
	Retries   int
	Logger    *zap.Logger
}

// Fetcher downloads sheets as CSV.
type Fetcher struct {
	client    *resty.Client
	baseURL   string
	sheetName string
	logger    *zap.Logger
}

// NewFetcher creates a Fetcher.
func NewFetcher(cfg FetchConfig) *Fetcher {
	if cfg.BaseURL == "" {
		cfg.BaseURL = defaultSheetsBaseURL
	}
	if cfg.SheetName == "" {
		cfg.SheetName = DefaultSheetName
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 30 * time.Second
	}
	if cfg.Retries < 0 {
		cfg.Retries = 0
	}
	if cfg.Logger == nil {
		cfg.Logger = zap.NewNop()
	}

	client := resty.New().
		SetTimeout(cfg.Timeout).
		SetRetryCount(cfg.Retries).
		SetRetryWaitTime(500 * time.Millisecond).
		SetRetryMaxWaitTime(5 * time.Second).
		SetHeader("Accept", "text/csv").
		AddRetryCondition(func(r *resty.Response, err error) bool {
			return err != nil || r.StatusCode() >= 500
		})

	return &Fetcher{
		client:    client,
		baseURL:   strings.TrimRight(cfg.BaseURL, "/"),
		sheetName: cfg.SheetName,
		logger:    cfg.Logger,
	}
}

// ExtractSheetID pulls the spreadsheet ID out of a share URL.
func ExtractSheetID(sheetURL string) (string, error) {
	m := sheetIDRe.FindStringSubmatch(sheetURL)
	if m == nil {
		return "", fmt.Errorf("%w: %s", ErrInvalidSheetURL, sheetURL)
	}
	return m[1], nil
}

// IsSheetsURL reports whether s looks like a Google Sheets document URL.
func IsSheetsURL(s string) bool {
	return strings.Contains(s, "docs.google.com/spreadsheets") && sheetIDRe.MatchString(s)
}

// ExportURL builds the CSV export URL for a spreadsheet ID.
func (f *Fetcher) ExportURL(sheetID string) string {
	q := url.Values{}
	q.Set("tqx", "out:csv")
	q.Set("sheet", f.sheetName)
	return fmt.Sprintf("%s/spreadsheets/d/%s/gviz/tq?%s", f.baseURL, url.PathEscape(sheetID), q.Encode())
}

// FetchSheet downloads the wellness tab of a Google Sheets document.
func (f *Fetcher) FetchSheet(ctx context.Context, sheetURL string) (Table, error) {
	id, err := ExtractSheetID(sheetURL)
	if err != nil {
		return nil, err
	}
	return f.FetchCSV(ctx, f.ExportURL(id))
}

// FetchCSV downloads any CSV URL.
func (f *Fetcher) FetchCSV(ctx context.Context, csvURL string) (Table, error) {
	start := time.Now()
	resp, err := f.client.R().SetContext(ctx).Get(csvURL)
	if err != nil {
		return nil, fmt.Errorf("fetch sheet: %w", err)
	}
	if resp.IsError() {
		return nil, fmt.Errorf("fetch sheet: %s", resp.Status())
	}
	if strings.Contains(resp.Header().Get("Content-Type"), "text/html") {
		return nil, ErrSheetNotPublic
	}

	f.logger.Debug("fetched sheet",
		zap.Int("status", resp.StatusCode()),
		zap.Int("bytes", len(resp.Body())),
		zap.Duration("elapsed", time.Since(start)))

	return ReadCSV(bytes.NewReader(resp.Body()))
}
