package extract

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"techrank/internal/company"
	"techrank/lib/htmlutil"

	"github.com/PuerkitoBio/goquery"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

var tracer = otel.Tracer("techrank/extract")

var (
	ErrTableNotFound = errors.New("table not found")
	ErrColumnCount   = errors.New("unexpected column count")
	ErrEmptyCell     = errors.New("empty cell")
)

// Parse finds the layout's table in `markup` and returns one raw record per
// data row, in document order. The first row is the header and is skipped, as
// is any row without cells.
func Parse(ctx context.Context, markup string, layout Layout) ([]company.Raw, error) {
	ctx, span := tracer.Start(ctx, "Parse")
	defer span.End()
	span.SetAttributes(attribute.String("layout", layout.Name))

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(markup))
	if err != nil {
		span.SetStatus(codes.Error, "failed to parse html")
		return nil, err
	}

	tables := doc.Find(layout.TableSelector)
	if tables.Length() <= layout.TableIndex {
		err := fmt.Errorf(
			"%w: wanted '%s' #%d but the page has %d",
			ErrTableNotFound, layout.TableSelector, layout.TableIndex, tables.Length(),
		)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}

	rows := tables.Eq(layout.TableIndex).Find("tr")
	minCells := layout.MinCells()

	var out []company.Raw
	for i := 1; i < rows.Length(); i++ {
		cells := rows.Eq(i).Find("td")
		if cells.Length() == 0 {
			slog.DebugContext(ctx, "skipping row without cells", "row", i)
			continue
		}
		if layout.RequireAnchor && cells.Eq(0).Find("a").Length() == 0 {
			slog.DebugContext(ctx, "skipping row without link", "row", i)
			continue
		}
		if cells.Length() < minCells {
			err := fmt.Errorf(
				"row %d: %w: got %d cells, need %d",
				i, ErrColumnCount, cells.Length(), minCells,
			)
			span.SetStatus(codes.Error, err.Error())
			return nil, err
		}

		var fields [5]string
		for f, offset := range layout.Offsets {
			cell := cells.Eq(offset)
			text := htmlutil.Text(cell)
			if f == 0 && layout.CompanyFromAnchor {
				anchor, ok := htmlutil.AnchorText(cell)
				if ok && anchor != "" {
					text = anchor
				}
			}
			if text == "" {
				err := fmt.Errorf("row %d: %w: %s", i, ErrEmptyCell, layout.column(f))
				span.SetStatus(codes.Error, err.Error())
				return nil, err
			}
			fields[f] = text
		}

		out = append(out, company.Raw{
			Index:              len(out),
			Company:            fields[0],
			Revenue:            fields[1],
			Employees:          fields[2],
			RevenuePerEmployee: fields[3],
			Headquarters:       fields[4],
		})
	}

	span.SetAttributes(attribute.Int("rows", len(out)))
	return out, nil
}
