package export

import (
	"context"
	"encoding/csv"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"

	"techrank/internal/company"
)

// the leading blank column holds the record index
var csvHeader = append([]string{""}, company.AllColumns...)

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func csvRow(r company.Record) []string {
	return []string{
		strconv.Itoa(r.Index),
		r.Company,
		formatFloat(r.RevenueB),
		strconv.FormatInt(r.Employees, 10),
		formatFloat(r.RevenuePerEmployee),
		r.Headquarters,
		formatFloat(r.ProfitMargin),
	}
}

// WriteCSV replaces the file at `path` with the records, creating parent
// directories as needed.
func WriteCSV(ctx context.Context, path string, records []company.Record) error {
	_, span := tracer.Start(ctx, "WriteCSV")
	defer span.End()

	err := os.MkdirAll(filepath.Dir(path), 0755)
	if err != nil {
		return fmt.Errorf("failed to create directory: %w", err)
	}

	file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0644)
	if err != nil {
		return fmt.Errorf("failed to open file: %w", err)
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	err = writer.Write(csvHeader)
	if err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}
	for i, r := range records {
		err = writer.Write(csvRow(r))
		if err != nil {
			return fmt.Errorf("failed to write record %d: %w", i, err)
		}
	}
	writer.Flush()
	err = writer.Error()
	if err != nil {
		return err
	}

	slog.DebugContext(ctx, "wrote csv", "path", path, "records", len(records))
	return file.Close()
}

// ReadCSV reads a file written by WriteCSV.
func ReadCSV(path string) ([]company.Record, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.FieldsPerRecord = len(csvHeader)
	lines, err := reader.ReadAll()
	if err != nil {
		return nil, err
	}
	if len(lines) == 0 {
		return nil, fmt.Errorf("%s: missing header", path)
	}

	records := make([]company.Record, 0, len(lines)-1)
	for i, line := range lines[1:] {
		record, err := parseCsvRow(line)
		if err != nil {
			return nil, fmt.Errorf("%s: line %d: %w", path, i+2, err)
		}
		records = append(records, record)
	}
	return records, nil
}

func parseCsvRow(line []string) (company.Record, error) {
	var r company.Record
	var err error

	r.Index, err = strconv.Atoi(line[0])
	if err != nil {
		return r, err
	}
	r.Company = line[1]
	r.RevenueB, err = strconv.ParseFloat(line[2], 64)
	if err != nil {
		return r, err
	}
	r.Employees, err = strconv.ParseInt(line[3], 10, 64)
	if err != nil {
		return r, err
	}
	r.RevenuePerEmployee, err = strconv.ParseFloat(line[4], 64)
	if err != nil {
		return r, err
	}
	r.Headquarters = line[5]
	r.ProfitMargin, err = strconv.ParseFloat(line[6], 64)
	if err != nil {
		return r, err
	}
	return r, nil
}
