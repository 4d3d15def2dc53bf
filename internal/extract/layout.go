package extract

import (
	"fmt"
	"strings"

	"techrank/internal/company"
)

// Layout describes where the company table lives in the page and which cell
// holds which field.
type Layout struct {
	Name          string
	TableSelector string
	// index into the elements matched by TableSelector
	TableIndex int
	// cell position of each field, in the order of company.Columns
	Offsets [5]int
	// when set, only rows whose first cell contains a link are data rows
	RequireAnchor bool
	// when set, the company name is the text of the first link in its cell
	CompanyFromAnchor bool
}

// Classed reads the second "wikitable" table, fields live in cells 2 to 6.
var Classed = Layout{
	Name:          "classed",
	TableSelector: "table.wikitable",
	TableIndex:    1,
	Offsets:       [5]int{2, 3, 4, 5, 6},
}

// Tagged reads the second table of any class, the rank column is a link and
// fields live in cells 1 to 5.
var Tagged = Layout{
	Name:              "tagged",
	TableSelector:     "table",
	TableIndex:        1,
	Offsets:           [5]int{1, 2, 3, 4, 5},
	RequireAnchor:     true,
	CompanyFromAnchor: true,
}

var layouts = []Layout{Classed, Tagged}

// LayoutNames lists the names accepted by LayoutByName.
func LayoutNames() []string {
	names := make([]string, len(layouts))
	for i, l := range layouts {
		names[i] = l.Name
	}
	return names
}

func LayoutByName(name string) (Layout, error) {
	for _, l := range layouts {
		if l.Name == name {
			return l, nil
		}
	}
	return Layout{}, fmt.Errorf(
		"unknown layout '%s', expected one of: %s",
		name, strings.Join(LayoutNames(), ", "),
	)
}

// MinCells is the smallest number of cells a data row must have.
func (l Layout) MinCells() int {
	highest := 0
	for _, o := range l.Offsets {
		if o > highest {
			highest = o
		}
	}
	return highest + 1
}

func (l Layout) column(field int) string {
	return company.Columns[field]
}
