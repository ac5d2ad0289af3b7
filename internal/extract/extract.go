package extract

import (
	"bytes"
	"io"
	"regexp"
	"strings"

	"golang.org/x/net/html"
)

// erbTag matches embedded ruby tags ex: `<%= active? ? "a" : "b" %>`
var erbTag = regexp.MustCompile(`(?s)<%.*?%>`)

// Attribute is a class attribute value found in a template
type Attribute struct {
	Line    int    // 1-based line of the tag holding the attribute
	Value   string // value with erb tags removed
	Dynamic bool   // true if erb tags were removed from the value
}

// ClassAttributes returns all class attribute values of a html or erb template
func ClassAttributes(r io.Reader) ([]Attribute, error) {
	z := html.NewTokenizer(r)
	var attrs []Attribute
	line := 1
	for {
		tt := z.Next()
		if tt == html.ErrorToken {
			if err := z.Err(); err != io.EOF {
				return attrs, err
			}
			return attrs, nil
		}
		// attribute unescaping rewrites the raw buffer in place
		newlines := bytes.Count(z.Raw(), []byte("\n"))
		if tt == html.StartTagToken || tt == html.SelfClosingTagToken {
			_, hasAttr := z.TagName()
			for hasAttr {
				var key, val []byte
				key, val, hasAttr = z.TagAttr()
				if !strings.EqualFold(string(key), "class") {
					continue
				}
				attrs = append(attrs, newAttribute(line, string(val)))
			}
		}
		line += newlines
	}
}

func newAttribute(line int, value string) Attribute {
	a := Attribute{Line: line, Value: value}
	if erbTag.MatchString(value) {
		a.Dynamic = true
		a.Value = erbTag.ReplaceAllString(value, " ")
	}
	return a
}
