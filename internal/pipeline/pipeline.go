package pipeline

import (
	"context"
	"database/sql"
	"fmt"
	"io"
	"log/slog"

	"techrank/internal/company"
	"techrank/internal/export"
	"techrank/internal/extract"
	"techrank/internal/report"
	"techrank/internal/runlog"
	"techrank/internal/transform"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
)

var tracer = otel.Tracer("techrank/pipeline")
var meter = otel.Meter("techrank/pipeline")
var recordCounter, _ = meter.Int64Counter(
	"techrank.records",
	metric.WithDescription("records handled by each pipeline stage"),
)

type Fetcher interface {
	Get(ctx context.Context, url string) (string, error)
}

type Result struct {
	Raw     []company.Raw
	Records []company.Record
	Reports []report.Result
}

type Pipeline struct {
	Config  Config
	Fetcher Fetcher
	// receives the extract preview and query results
	Out io.Writer
}

func countRecords(ctx context.Context, stage string, n int) {
	recordCounter.Add(ctx, int64(n), metric.WithAttributes(attribute.String("stage", stage)))
}

// Run fetches, extracts, transforms and loads the company table, then prints
// the fixed reports. Progress is appended to the run log after every stage;
// a failed stage leaves no line behind.
func (p Pipeline) Run(ctx context.Context) (Result, error) {
	ctx, span := tracer.Start(ctx, "Run")
	defer span.End()

	result, err := p.run(ctx)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "pipeline failed")
	}
	return result, err
}

func (p Pipeline) run(ctx context.Context) (Result, error) {
	var result Result
	cfg := p.Config
	log := runlog.New(cfg.Output.Log)

	layout, err := extract.LayoutByName(cfg.Layout)
	if err != nil {
		return result, err
	}
	err = log.Log(ctx, "Preliminaries complete. Initiating ETL process")
	if err != nil {
		return result, err
	}

	markup, err := p.Fetcher.Get(ctx, cfg.Source.Url)
	if err != nil {
		return result, fmt.Errorf("fetch: %w", err)
	}
	result.Raw, err = extract.Parse(ctx, markup, layout)
	if err != nil {
		return result, fmt.Errorf("extract: %w", err)
	}
	countRecords(ctx, "extract", len(result.Raw))
	report.RenderRaw(p.Out, "Extracted companies", result.Raw, cfg.Preview)
	err = log.Log(ctx, "Data extraction complete. Initiating Transformation process")
	if err != nil {
		return result, err
	}

	result.Records, err = transform.Transform(ctx, result.Raw)
	if err != nil {
		return result, fmt.Errorf("transform: %w", err)
	}
	countRecords(ctx, "transform", len(result.Records))
	err = log.Log(ctx, "Data transformation complete. Initiating Loading process")
	if err != nil {
		return result, err
	}

	err = export.WriteCSV(ctx, cfg.Output.Csv, result.Records)
	if err != nil {
		return result, fmt.Errorf("write csv: %w", err)
	}
	err = log.Log(ctx, "Data saved to CSV file")
	if err != nil {
		return result, err
	}

	db, err := cfg.Output.Database.OpenDB()
	if err != nil {
		return result, err
	}
	closed := false
	defer func() {
		if !closed {
			db.Close()
		}
	}()
	slog.DebugContext(ctx, "opened database", "db", cfg.Output.Database.Describe())
	err = log.Log(ctx, "SQL Connection initiated")
	if err != nil {
		return result, err
	}

	result.Reports, err = p.load(ctx, log, db, result.Records)
	if err != nil {
		return result, err
	}

	closed = true
	err = db.Close()
	if err != nil {
		return result, fmt.Errorf("close db: %w", err)
	}
	err = log.Log(ctx, "Server Connection closed")
	return result, err
}

func (p Pipeline) load(ctx context.Context, log *runlog.Logger, db *sql.DB, records []company.Record) ([]report.Result, error) {
	table := p.Config.Output.Table

	err := export.LoadTable(ctx, db, table, records)
	if err != nil {
		return nil, fmt.Errorf("load table: %w", err)
	}
	countRecords(ctx, "load", len(records))
	err = log.Log(ctx, "Data loaded to Database as a table, Executing queries")
	if err != nil {
		return nil, err
	}

	reports, err := report.Run(ctx, db, table, p.Out)
	if err != nil {
		return nil, fmt.Errorf("report: %w", err)
	}
	err = log.Log(ctx, "Process Complete")
	if err != nil {
		return nil, err
	}
	return reports, nil
}
