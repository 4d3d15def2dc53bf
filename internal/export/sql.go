package export

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"regexp"
	"strings"

	"techrank/internal/company"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

var tracer = otel.Tracer("techrank/export")

var ErrInvalidTableName = errors.New("invalid table name")

var identifierRegex = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

// QuoteTable checks that `name` is a plain identifier and returns it quoted,
// ready to be placed in sql text.
func QuoteTable(name string) (string, error) {
	if !identifierRegex.MatchString(name) {
		return "", fmt.Errorf("%w: '%s'", ErrInvalidTableName, name)
	}
	return QuoteIdentifier(name), nil
}

// QuoteIdentifier double-quotes a column or table name.
func QuoteIdentifier(name string) string {
	return `"` + strings.ReplaceAll(name, `"`, `""`) + `"`
}

const IndexColumn = "index"

func createTableSql(table string) string {
	return fmt.Sprintf(
		`create table %s (
	%s integer,
	%s text,
	%s real,
	%s integer,
	%s real,
	%s text,
	%s real
)`,
		table,
		QuoteIdentifier(IndexColumn),
		QuoteIdentifier(company.ColumnCompany),
		QuoteIdentifier(company.ColumnRevenue),
		QuoteIdentifier(company.ColumnEmployees),
		QuoteIdentifier(company.ColumnRevenuePerEmployee),
		QuoteIdentifier(company.ColumnHeadquarters),
		QuoteIdentifier(company.ColumnProfitMargin),
	)
}

// LoadTable replaces `table` with the given records. Everything runs in
// one transaction.
func LoadTable(ctx context.Context, db *sql.DB, table string, records []company.Record) error {
	ctx, span := tracer.Start(ctx, "LoadTable")
	defer span.End()
	span.SetAttributes(attribute.String("table", table))

	quoted, err := QuoteTable(table)
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		return err
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx, fmt.Sprintf("drop table if exists %s", quoted))
	if err != nil {
		return fmt.Errorf("drop table: %w", err)
	}
	_, err = tx.ExecContext(ctx, createTableSql(quoted))
	if err != nil {
		return fmt.Errorf("create table: %w", err)
	}
	_, err = tx.ExecContext(ctx, fmt.Sprintf(
		"create index %s on %s (%s)",
		QuoteIdentifier("ix_"+table+"_index"), quoted, QuoteIdentifier(IndexColumn),
	))
	if err != nil {
		return fmt.Errorf("create index: %w", err)
	}

	columns := make([]string, 0, len(company.AllColumns)+1)
	columns = append(columns, QuoteIdentifier(IndexColumn))
	for _, c := range company.AllColumns {
		columns = append(columns, QuoteIdentifier(c))
	}
	insert, err := tx.PrepareContext(ctx, fmt.Sprintf(
		"insert into %s (%s) values (?, ?, ?, ?, ?, ?, ?)",
		quoted, strings.Join(columns, ", "),
	))
	if err != nil {
		return fmt.Errorf("prepare insert: %w", err)
	}
	defer insert.Close()

	for _, r := range records {
		_, err = insert.ExecContext(
			ctx,
			r.Index,
			r.Company,
			r.RevenueB,
			r.Employees,
			r.RevenuePerEmployee,
			r.Headquarters,
			r.ProfitMargin,
		)
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, "failed to insert record")
			return fmt.Errorf("insert %s: %w", r.Company, err)
		}
	}

	err = tx.Commit()
	if err != nil {
		return err
	}

	slog.DebugContext(ctx, "loaded table", "table", table, "records", len(records))
	return nil
}
