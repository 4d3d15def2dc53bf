package report

import (
	"context"
	"database/sql"
	"fmt"
	"io"
	"strconv"

	"techrank/internal/company"
	"techrank/internal/export"
	"techrank/lib/tableutil"

	"github.com/jedib0t/go-pretty/v6/table"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
)

var tracer = otel.Tracer("techrank/report")

// Query is a fixed "top N by column" read over the loaded table.
type Query struct {
	Title  string
	Column string
	Limit  int
}

// Queries are the reports printed after every load.
var Queries = []Query{
	{Title: "Top 3 companies by revenue", Column: company.ColumnRevenue, Limit: 3},
	{Title: "Top 3 companies by profit margin", Column: company.ColumnProfitMargin, Limit: 3},
	{Title: "Top company by revenue per employee", Column: company.ColumnRevenuePerEmployee, Limit: 1},
}

func (q Query) sql(quotedTable string) string {
	return fmt.Sprintf(
		"select * from %s order by %s desc limit %d",
		quotedTable, export.QuoteIdentifier(q.Column), q.Limit,
	)
}

type Result struct {
	Query   Query
	Records []company.Record
}

func scanRecords(rows *sql.Rows) ([]company.Record, error) {
	defer rows.Close()

	var out []company.Record
	for rows.Next() {
		var r company.Record
		err := rows.Scan(
			&r.Index,
			&r.Company,
			&r.RevenueB,
			&r.Employees,
			&r.RevenuePerEmployee,
			&r.Headquarters,
			&r.ProfitMargin,
		)
		if err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	return out, rows.Err()
}

// ReadAll returns every record in the table in load order.
func ReadAll(ctx context.Context, db *sql.DB, table string) ([]company.Record, error) {
	quoted, err := export.QuoteTable(table)
	if err != nil {
		return nil, err
	}
	rows, err := db.QueryContext(ctx, fmt.Sprintf("select * from %s order by rowid", quoted))
	if err != nil {
		return nil, err
	}
	return scanRecords(rows)
}

func Execute(ctx context.Context, db *sql.DB, table string, query Query) (Result, error) {
	ctx, span := tracer.Start(ctx, "Execute")
	defer span.End()
	span.SetAttributes(
		attribute.String("table", table),
		attribute.String("column", query.Column),
	)

	quoted, err := export.QuoteTable(table)
	if err != nil {
		return Result{}, err
	}
	rows, err := db.QueryContext(ctx, query.sql(quoted))
	if err != nil {
		return Result{}, fmt.Errorf("%s: %w", query.Title, err)
	}
	records, err := scanRecords(rows)
	if err != nil {
		return Result{}, fmt.Errorf("%s: %w", query.Title, err)
	}
	return Result{Query: query, Records: records}, nil
}

// Run executes every query in Queries and prints each result to `out`.
func Run(ctx context.Context, db *sql.DB, table string, out io.Writer) ([]Result, error) {
	results := make([]Result, 0, len(Queries))
	for _, q := range Queries {
		res, err := Execute(ctx, db, table, q)
		if err != nil {
			return nil, err
		}
		Render(out, res.Query.Title, res.Records)
		results = append(results, res)
	}
	return results, nil
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// Render prints records as a table with an index column.
func Render(out io.Writer, title string, records []company.Record) {
	t := tableutil.NewTable(out)
	t.SetTitle(title)

	header := table.Row{""}
	for _, c := range company.AllColumns {
		header = append(header, c)
	}
	t.AppendHeader(header)

	for _, r := range records {
		t.AppendRow(table.Row{
			r.Index,
			r.Company,
			formatFloat(r.RevenueB),
			r.Employees,
			formatFloat(r.RevenuePerEmployee),
			r.Headquarters,
			formatFloat(r.ProfitMargin),
		})
	}
	t.Render()
}

// RenderRaw prints the first `limit` raw rows as extracted from the page.
func RenderRaw(out io.Writer, title string, rows []company.Raw, limit int) {
	t := tableutil.NewTable(out)
	t.SetTitle(title)

	header := table.Row{""}
	for _, c := range company.Columns {
		header = append(header, c)
	}
	t.AppendHeader(header)

	for i, r := range rows {
		if i >= limit {
			break
		}
		row := table.Row{r.Index}
		for _, f := range r.Fields() {
			row = append(row, f)
		}
		t.AppendRow(row)
	}
	t.Render()
}
