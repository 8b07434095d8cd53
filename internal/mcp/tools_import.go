// ABOUTME: MCP tools for importing wellness sheets.
// ABOUTME: Single-day import, block listing and selected-block import.
package mcp

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/harperreed/wellness/internal/wellness"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

type sourceInput struct {
	Source string `json:"source,omitempty" jsonschema:"CSV or Excel file path, Google Sheets URL, or CSV URL; defaults to the configured sheet"`
}

type importOutput struct {
	Result  *wellness.ImportResult `json:"result"`
	Message string                 `json:"message"`
}

type blockOutput struct {
	Date   string `json:"date"`
	Label  string `json:"label"`
	Column int    `json:"column"`
}

type listBlocksOutput struct {
	HeaderRow  int           `json:"header_row"`
	Blocks     []blockOutput `json:"blocks"`
	Unresolved []string      `json:"unresolved,omitempty"`
}

type importBlocksInput struct {
	Source string   `json:"source,omitempty" jsonschema:"CSV or Excel file path, Google Sheets URL, or CSV URL; defaults to the configured sheet"`
	Dates  []string `json:"dates,omitempty" jsonschema:"Block dates to import (YYYY-MM-DD); empty imports every dated block"`
}

type importBlocksOutput struct {
	Result  *wellness.MultiImportResult `json:"result"`
	Message string                      `json:"message"`
}

func (s *Server) source(in string) (string, error) {
	if in = strings.TrimSpace(in); in != "" {
		return in, nil
	}
	if s.defaultSource != "" {
		return s.defaultSource, nil
	}
	return "", fmt.Errorf("source is required (no default sheet configured)")
}

func (s *Server) handleImportSheet(ctx context.Context, req *mcp.CallToolRequest, input sourceInput) (*mcp.CallToolResult, any, error) {
	src, err := s.source(input.Source)
	if err != nil {
		return nil, nil, err
	}
	res, err := s.importer.ImportSingleDay(ctx, src)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to import: %w", err)
	}

	msg := fmt.Sprintf("Imported %d entries for %s (%d new players)", res.EntriesCount, res.Date, res.NewPlayersCount)
	if res.Diagnostics.FallbackMapping {
		msg += "; columns were mapped by position, check the result"
	}
	if res.Diagnostics.DateFallback {
		msg += "; no date found in the sheet, today was used"
	}
	return nil, importOutput{Result: res, Message: msg}, nil
}

func (s *Server) handleListBlocks(ctx context.Context, req *mcp.CallToolRequest, input sourceInput) (*mcp.CallToolResult, any, error) {
	src, err := s.source(input.Source)
	if err != nil {
		return nil, nil, err
	}
	listing, err := s.importer.ListBlocks(ctx, src)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to list blocks: %w", err)
	}

	out := listBlocksOutput{HeaderRow: listing.HeaderRow + 1, Blocks: []blockOutput{}}
	for _, b := range listing.Blocks {
		out.Blocks = append(out.Blocks, blockOutput{Date: b.DateKey(), Label: b.Label, Column: b.StartCol + 1})
	}
	for _, b := range listing.Unresolved {
		out.Unresolved = append(out.Unresolved, b.Label)
	}
	return nil, out, nil
}

func (s *Server) handleImportBlocks(ctx context.Context, req *mcp.CallToolRequest, input importBlocksInput) (*mcp.CallToolResult, any, error) {
	src, err := s.source(input.Source)
	if err != nil {
		return nil, nil, err
	}

	var dates []time.Time
	for _, d := range input.Dates {
		t, err := parseDay(d)
		if err != nil {
			return nil, nil, err
		}
		dates = append(dates, t)
	}

	res, err := s.importer.ImportBlocks(ctx, src, dates)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to import blocks: %w", err)
	}
	return nil, importBlocksOutput{
		Result: res,
		Message: fmt.Sprintf("Imported %d entries over %d dates (%d new players)",
			res.EntriesCount, len(res.DatesImported), res.NewPlayersCount),
	}, nil
}
