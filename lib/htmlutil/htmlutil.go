package htmlutil

import (
	"bytes"
	"regexp"
	"strings"
	"unicode"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

func GetText(node *html.Node) string {
	var buffer bytes.Buffer
	getTextRecursive(node, &buffer)
	return buffer.String()
}

func getTextRecursive(node *html.Node, buffer *bytes.Buffer) {
	if node == nil {
		return
	}
	if node.Type == html.TextNode {
		buffer.WriteString(node.Data)
		return
	}
	// <br> separates words visually even though it carries no text
	if node.Type == html.ElementNode && node.DataAtom == atom.Br {
		buffer.WriteByte(' ')
		return
	}
	child := node.FirstChild
	for child != nil {
		getTextRecursive(child, buffer)
		child = child.NextSibling
	}
}

var innerWhitespace = regexp.MustCompile(`\s\s+`)

func removeNonPrintable(s string) string {
	newStr := strings.Builder{}
	for _, c := range s {
		if unicode.IsSpace(c) {
			newStr.WriteRune(' ')
			continue
		}
		if unicode.IsPrint(c) {
			newStr.WriteRune(c)
		}
	}
	return newStr.String()
}

// Normalize drops non-printable characters, turns any unicode space into a
// plain space, trims the ends and collapses runs of inner whitespace.
func Normalize(s string) string {
	s = removeNonPrintable(s)
	s = strings.Trim(s, " ")
	s = innerWhitespace.ReplaceAllString(s, " ")
	return s
}

// Text is the normalized text content of every node in the selection.
func Text(sel *goquery.Selection) string {
	var buffer bytes.Buffer
	for _, n := range sel.Nodes {
		getTextRecursive(n, &buffer)
	}
	return Normalize(buffer.String())
}

// AnchorText returns the normalized text of the first anchor inside the
// selection, ok is false when there is none.
func AnchorText(sel *goquery.Selection) (text string, ok bool) {
	anchor := sel.Find("a").First()
	if anchor.Length() == 0 {
		return "", false
	}
	return Text(anchor), true
}
