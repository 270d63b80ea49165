// Package mapgen renders the published economic table as a standalone HTML
// dashboard: an animated choropleth with growth and condition layers and a
// per-country history chart.
package mapgen

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"econmap/internal/econ"
	"econmap/internal/etl"
	"econmap/internal/logging"
)

// ErrNoRows is returned when the input holds no mappable rows.
var ErrNoRows = errors.New("no mappable rows")

// Generator reads the published table and writes the dashboard page.
type Generator struct {
	Engine *etl.Engine
	Input  econ.Source
	Output string
	Page   PageOptions
}

// Report summarizes a generated page.
type Report struct {
	Rows      int    `json:"rows"`
	Years     []int  `json:"years"`
	Countries int    `json:"countries"`
	Output    string `json:"output"`
}

// Generate loads the table, builds the page and writes it to g.Output.
// The page is written to a temporary file first and renamed into place.
func (g *Generator) Generate(ctx context.Context) (*Report, error) {
	log := logging.FromContext(ctx)

	rows, err := LoadRows(ctx, g.Engine, g.Input)
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, ErrNoRows
	}
	years := Years(rows)
	countries := len(BuildHistory(rows))
	log.Info("map data loaded", "rows", len(rows), "years", len(years), "countries", countries)

	if err := writePage(g.Output, rows, g.Page); err != nil {
		return nil, err
	}
	log.Info("map written", "path", g.Output)

	return &Report{Rows: len(rows), Years: years, Countries: countries, Output: g.Output}, nil
}

func writePage(path string, rows []Row, opts PageOptions) (err error) {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create output dir: %w", err)
		}
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), ".mapgen-*.html")
	if err != nil {
		return fmt.Errorf("create output: %w", err)
	}
	defer func() {
		if err != nil {
			tmp.Close()
			os.Remove(tmp.Name())
		}
	}()

	w := bufio.NewWriter(tmp)
	if err := RenderPage(w, rows, opts); err != nil {
		return fmt.Errorf("render page: %w", err)
	}
	if err := w.Flush(); err != nil {
		return fmt.Errorf("write page: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close output: %w", err)
	}
	if err := os.Chmod(tmp.Name(), 0o644); err != nil {
		return fmt.Errorf("chmod output: %w", err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("rename output: %w", err)
	}
	return nil
}
