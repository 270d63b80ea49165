package econ

import (
	"context"
	"fmt"
	"time"

	"econmap/internal/domain"
	"econmap/internal/etl"
	"econmap/internal/logging"
)

// defaultUnresolvedSample caps how many unresolved names the warning lists.
const defaultUnresolvedSample = 10

// Source names a registered etl source and its config.
type Source struct {
	Type   string
	Config etl.SourceConfig
}

// CSVSource is a csv_file source reading path.
func CSVSource(path string) Source {
	return Source{Type: "csv_file", Config: etl.SourceConfig{"filePath": path}}
}

// Pipeline is one batch run: load both sources, normalize, join, resolve
// codes, derive metrics and publish the resolved rows to every target.
type Pipeline struct {
	GDP       Source
	Inflation Source
	Years     YearRange
	Resolver  CodeResolver
	Engine    *etl.Engine

	// UnresolvedSample is how many unresolved names the warning lists (default 10).
	UnresolvedSample int
}

// Result summarizes a run.
type Result struct {
	GDPRows       int              `json:"gdpRows"`
	InflationRows int              `json:"inflationRows"`
	JoinedRows    int              `json:"joinedRows"`
	Rows          int              `json:"rows"`
	Countries     int              `json:"countries"`
	Unresolved    []string         `json:"unresolved"`
	Loads         []etl.LoadResult `json:"loads"`
	Duration      time.Duration    `json:"duration"`
}

// Run executes the pipeline once. Any load or write failure aborts the run.
func (p *Pipeline) Run(ctx context.Context) (*Result, error) {
	start := time.Now()
	log := logging.FromContext(ctx)

	rows, res, err := p.Build(ctx)
	if err != nil {
		return nil, err
	}

	records := OutputRecords(rows)
	loads, err := p.Engine.Publish(ctx, OutputSchema, records)
	if err != nil {
		return nil, fmt.Errorf("publish: %w", err)
	}
	for _, l := range loads {
		log.Info("table written", "target", l.Name, "path", l.Target, "rows", l.RowsWritten)
	}

	res.Loads = loads
	res.Duration = time.Since(start)
	return res, nil
}

// Build runs every stage up to, but not including, publishing and returns
// the final resolved rows.
func (p *Pipeline) Build(ctx context.Context) ([]domain.EnrichedRecord, *Result, error) {
	log := logging.FromContext(ctx)
	years := p.Years
	if years == (YearRange{}) {
		years = DefaultYears
	}

	gdpTable, err := p.Engine.Extract(ctx, p.GDP.Type, p.GDP.Config, GDPStages(years)...)
	if err != nil {
		return nil, nil, fmt.Errorf("load gdp: %w", err)
	}
	gdp := GDPRecords(gdpTable.Records)
	log.Info("gdp normalized", "rows", len(gdp))

	inflTable, err := p.Engine.ExtractWith(ctx, p.Inflation.Type, p.Inflation.Config, InflationPlan(years))
	if err != nil {
		return nil, nil, fmt.Errorf("load inflation: %w", err)
	}
	inflation := InflationRecords(inflTable.Records)
	log.Info("inflation normalized", "rows", len(inflation))

	joined := Join(gdp, inflation)
	log.Info("datasets joined", "rows", len(joined))

	enriched, unresolved := AttachCodes(joined, p.Resolver)
	if len(unresolved) > 0 {
		sample := p.UnresolvedSample
		if sample <= 0 {
			sample = defaultUnresolvedSample
		}
		log.Warn("failed to map countries",
			"count", len(unresolved),
			"sample", unresolved[:min(len(unresolved), sample)],
		)
	}
	Derive(enriched)

	final := KeepResolved(enriched)
	countries := CountCountries(final)
	log.Info("final data", "rows", len(final), "countries", countries)

	return final, &Result{
		GDPRows:       len(gdp),
		InflationRows: len(inflation),
		JoinedRows:    len(joined),
		Rows:          len(final),
		Countries:     countries,
		Unresolved:    unresolved,
	}, nil
}
