package htmlutil

import (
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/require"
)

func parse(t testing.TB, markup string) *goquery.Document {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(markup))
	if err != nil {
		t.Fatal(err)
	}
	return doc
}

func TestNormalize(t *testing.T) {
	testCases := []struct {
		in       string
		expected string
	}{
		{in: "  Apple \n", expected: "Apple"},
		{in: "Santa Clara,   California", expected: "Santa Clara, California"},
		{in: "\tCupertino\x00", expected: "Cupertino"},
		{in: "", expected: ""},
	}
	for _, test := range testCases {
		require.Equal(t, test.expected, Normalize(test.in))
	}
}

func TestText(t *testing.T) {
	doc := parse(t, `<table><tr><td> <a href="/wiki/Apple">Apple</a> Inc.<sup>[1]</sup></td><td>Seoul<br>South Korea</td></tr></table>`)
	cells := doc.Find("td")

	require.Equal(t, "Apple Inc.[1]", Text(cells.Eq(0)))
	require.Equal(t, "Seoul South Korea", Text(cells.Eq(1)))
}

func TestAnchorText(t *testing.T) {
	doc := parse(t, `<table><tr><td><a href="/wiki/Apple">Apple</a></td><td>none</td></tr></table>`)
	cells := doc.Find("td")

	text, ok := AnchorText(cells.Eq(0))
	require.True(t, ok)
	require.Equal(t, "Apple", text)

	_, ok = AnchorText(cells.Eq(1))
	require.False(t, ok)
}
