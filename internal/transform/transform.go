package transform

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strconv"

	"techrank/internal/company"
	"techrank/lib/textutil"

	"github.com/shopspring/decimal"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

var tracer = otel.Tracer("techrank/transform")

var ErrZeroEmployees = errors.New("employee count is zero")

// FieldError reports a cell that could not be cast after cleanup.
type FieldError struct {
	Index  int
	Column string
	Value  string
	Err    error
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("row %d: %s: cannot parse '%s': %s", e.Index, e.Column, e.Value, e.Err)
}

func (e *FieldError) Unwrap() error {
	return e.Err
}

func ParseRevenue(raw string) (float64, error) {
	return strconv.ParseFloat(textutil.StripChars(textutil.StripCitations(raw), "$", "B"), 64)
}

func ParseEmployees(raw string) (int64, error) {
	return strconv.ParseInt(textutil.StripChars(textutil.StripCitations(raw), ","), 10, 64)
}

func ParseRevenuePerEmployee(raw string) (float64, error) {
	return strconv.ParseFloat(textutil.StripChars(textutil.StripCitations(raw), ",", "K", "$"), 64)
}

func CleanHeadquarters(raw string) string {
	return textutil.StripCitations(raw)
}

// ProfitMargin is revenue (billions) * 1000 / employees * 100, rounded to
// two places. Rounding works on the exact binary value, so 2.6749999... is
// 2.67 even though it prints as 2.675.
func ProfitMargin(revenueB float64, employees int64) (float64, error) {
	if employees == 0 {
		return 0, ErrZeroEmployees
	}
	margin := revenueB * 1000 / float64(employees) * 100
	return decimal.NewFromFloatWithExponent(margin, -2).InexactFloat64(), nil
}

// Record converts a single raw row.
func Record(raw company.Raw) (company.Record, error) {
	fail := func(column, value string, err error) (company.Record, error) {
		return company.Record{}, &FieldError{Index: raw.Index, Column: column, Value: value, Err: err}
	}

	revenue, err := ParseRevenue(raw.Revenue)
	if err != nil {
		return fail(company.ColumnRevenue, raw.Revenue, err)
	}
	employees, err := ParseEmployees(raw.Employees)
	if err != nil {
		return fail(company.ColumnEmployees, raw.Employees, err)
	}
	perEmployee, err := ParseRevenuePerEmployee(raw.RevenuePerEmployee)
	if err != nil {
		return fail(company.ColumnRevenuePerEmployee, raw.RevenuePerEmployee, err)
	}
	margin, err := ProfitMargin(revenue, employees)
	if err != nil {
		return fail(company.ColumnEmployees, raw.Employees, err)
	}

	return company.Record{
		Index:              raw.Index,
		Company:            raw.Company,
		RevenueB:           revenue,
		Employees:          employees,
		RevenuePerEmployee: perEmployee,
		Headquarters:       CleanHeadquarters(raw.Headquarters),
		ProfitMargin:       margin,
	}, nil
}

// Transform cleans every row and sorts the result by profit margin, highest
// first. Rows with equal margins keep their document order. The first row
// that fails to parse fails the whole batch.
func Transform(ctx context.Context, rows []company.Raw) ([]company.Record, error) {
	_, span := tracer.Start(ctx, "Transform")
	defer span.End()

	out := make([]company.Record, 0, len(rows))
	for _, raw := range rows {
		record, err := Record(raw)
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, "failed to transform row")
			return nil, err
		}
		out = append(out, record)
	}

	SortByProfitMargin(out)

	span.SetAttributes(attribute.Int("rows", len(out)))
	return out, nil
}

func SortByProfitMargin(records []company.Record) {
	slices.SortStableFunc(records, func(a, b company.Record) int {
		switch {
		case a.ProfitMargin > b.ProfitMargin:
			return -1
		case a.ProfitMargin < b.ProfitMargin:
			return 1
		}
		return 0
	})
}
