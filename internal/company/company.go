// Package company holds the record types that flow through the pipeline.
package company

const (
	ColumnCompany            = "Company"
	ColumnRevenue            = "Revenue ($B)"
	ColumnEmployees          = "Employees"
	ColumnRevenuePerEmployee = "Revenue per Employee ($K)"
	ColumnHeadquarters       = "Headquarters"
	ColumnProfitMargin       = "Profit Margin (%)"
)

// Columns are the fields extracted from the source table, in order.
var Columns = []string{
	ColumnCompany,
	ColumnRevenue,
	ColumnEmployees,
	ColumnRevenuePerEmployee,
	ColumnHeadquarters,
}

// AllColumns are Columns plus the derived profit margin.
var AllColumns = append(append([]string{}, Columns...), ColumnProfitMargin)

// Raw is one table row as it appears in the page, before any cleanup.
type Raw struct {
	// Index is the position of the row among the extracted rows.
	Index              int
	Company            string
	Revenue            string
	Employees          string
	RevenuePerEmployee string
	Headquarters       string
}

// Fields returns the raw values in the order of Columns.
func (r Raw) Fields() []string {
	return []string{r.Company, r.Revenue, r.Employees, r.RevenuePerEmployee, r.Headquarters}
}

// Record is a cleaned row.
type Record struct {
	Index              int
	Company            string
	RevenueB           float64
	Employees          int64
	RevenuePerEmployee float64
	Headquarters       string
	ProfitMargin       float64
}
