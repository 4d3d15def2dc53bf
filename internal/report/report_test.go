package report

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"techrank/internal/company"
	"techrank/internal/export"
	"techrank/lib/testutil"

	"github.com/stretchr/testify/require"
)

const testTable = "Largest_tech_companies"

var fixture = []company.Record{
	{Index: 0, Company: "Amazon", RevenueB: 513.98, Employees: 1541000, RevenuePerEmployee: 333, Headquarters: "Seattle, Washington", ProfitMargin: 33.35},
	{Index: 1, Company: "Apple", RevenueB: 394.33, Employees: 164000, RevenuePerEmployee: 2404, Headquarters: "Cupertino, California", ProfitMargin: 240.45},
	{Index: 2, Company: "Alphabet", RevenueB: 282.84, Employees: 190234, RevenuePerEmployee: 1487, Headquarters: "Mountain View, California", ProfitMargin: 148.68},
	{Index: 3, Company: "Samsung Electronics", RevenueB: 234.13, Employees: 266673, RevenuePerEmployee: 877, Headquarters: "Suwon, South Korea", ProfitMargin: 87.8},
	{Index: 4, Company: "Microsoft", RevenueB: 198.27, Employees: 221000, RevenuePerEmployee: 897, Headquarters: "Redmond, Washington", ProfitMargin: 89.71},
}

func setup(t testing.TB) testutil.ServiceResult {
	res := testutil.SetupService(t, testutil.ServiceParams{})
	err := export.LoadTable(context.Background(), res.DB, testTable, fixture)
	if err != nil {
		t.Fatal(err)
	}
	return res
}

func companies(records []company.Record) []string {
	names := make([]string, len(records))
	for i, r := range records {
		names[i] = r.Company
	}
	return names
}

func TestRun(t *testing.T) {
	res := setup(t)

	var out bytes.Buffer
	results, err := Run(context.Background(), res.DB, testTable, &out)
	require.NoError(t, err)
	require.Len(t, results, 3)

	require.Equal(t, []string{"Amazon", "Apple", "Alphabet"}, companies(results[0].Records))
	require.Equal(t, []string{"Apple", "Alphabet", "Microsoft"}, companies(results[1].Records))
	require.Equal(t, []string{"Apple"}, companies(results[2].Records))

	require.Equal(t, fixture[1], results[2].Records[0])

	printed := out.String()
	require.Contains(t, printed, "Top 3 companies by revenue")
	require.Contains(t, printed, "Revenue per Employee ($K)")
	require.Contains(t, printed, "Cupertino, California")
}

func TestExecuteRevenueOrder(t *testing.T) {
	res := setup(t)

	result, err := Execute(context.Background(), res.DB, testTable, Queries[0])
	require.NoError(t, err)
	require.Len(t, result.Records, 3)
	for i := 0; i+1 < len(result.Records); i++ {
		require.Greater(t, result.Records[i].RevenueB, result.Records[i+1].RevenueB)
	}
}

func TestExecuteInvalidTable(t *testing.T) {
	res := setup(t)

	_, err := Execute(context.Background(), res.DB, "companies; drop", Queries[0])
	require.True(t, errors.Is(err, export.ErrInvalidTableName))
}

func TestReadAll(t *testing.T) {
	res := setup(t)

	records, err := ReadAll(context.Background(), res.DB, testTable)
	require.NoError(t, err)
	require.Equal(t, fixture, records)
}

func TestRenderRaw(t *testing.T) {
	rows := []company.Raw{
		{Index: 0, Company: "Amazon", Revenue: "$513.98", Employees: "1,541,000", RevenuePerEmployee: "$333K", Headquarters: "Seattle"},
		{Index: 1, Company: "Apple", Revenue: "$394.33", Employees: "164,000", RevenuePerEmployee: "$2,404K", Headquarters: "Cupertino"},
	}

	var out bytes.Buffer
	RenderRaw(&out, "Extracted", rows, 1)
	require.Contains(t, out.String(), "Amazon")
	require.NotContains(t, out.String(), "Apple")
}

func TestLookup(t *testing.T) {
	matches := Lookup(fixture, "samsung", 2)
	require.Len(t, matches, 2)
	require.Equal(t, "Samsung Electronics", matches[0].Record.Company)
	require.Equal(t, 1.0, matches[0].Similarity)

	matches = Lookup(fixture, "Microsfot", 1)
	require.Len(t, matches, 1)
	require.Equal(t, "Microsoft", matches[0].Record.Company)

	require.Empty(t, Lookup(fixture, "  ", 3))
}
