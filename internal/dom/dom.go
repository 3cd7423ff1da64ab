// Package dom is a server-side stand-in for the page DOM: a per-request set
// of named elements that controllers fill in and page templates render.
package dom

import (
	"fmt"
	"net/url"
	"strings"
)

// Option is one entry of a select element.
type Option struct {
	Value    string
	Text     string
	Selected bool
}

// Element is a named node of the hosting page.
type Element struct {
	ID       string
	HTML     string // inner HTML, already escaped
	Text     string // label for links and buttons
	Href     string
	Value    string
	Hidden   bool
	Disabled bool
	Options  []Option
}

// Append adds an HTML fragment after the current content.
func (e *Element) Append(html string) {
	if e == nil {
		return
	}
	e.HTML += html
}

type MissingElementError struct {
	Page string
	ID   string
}

func (e *MissingElementError) Error() string {
	return fmt.Sprintf("dom: page %q has no element #%s", e.Page, e.ID)
}

// Document holds the elements a page declares, in declaration order.
type Document struct {
	Page     string
	URL      *url.URL
	elements map[string]*Element
}

func NewDocument(page string, u *url.URL, ids ...string) *Document {
	if u == nil {
		u = &url.URL{Path: "/"}
	}
	d := &Document{Page: page, URL: u, elements: make(map[string]*Element, len(ids))}
	for _, id := range ids {
		d.elements[id] = &Element{ID: id}
	}
	return d
}

// Element returns the element or nil.
func (d *Document) Element(id string) *Element {
	if d == nil {
		return nil
	}
	return d.elements[id]
}

// Has reports whether the page declares id.
func (d *Document) Has(id string) bool { return d.Element(id) != nil }

// Require returns every listed element, or the first missing one as a
// *MissingElementError.
func (d *Document) Require(ids ...string) (map[string]*Element, error) {
	out := make(map[string]*Element, len(ids))
	for _, id := range ids {
		el := d.Element(id)
		if el == nil {
			page := ""
			if d != nil {
				page = d.Page
			}
			return nil, &MissingElementError{Page: page, ID: id}
		}
		out[id] = el
	}
	return out, nil
}

// QueryParam returns the trimmed query value and whether it is non-empty.
func (d *Document) QueryParam(name string) (string, bool) {
	if d == nil || d.URL == nil {
		return "", false
	}
	v := strings.TrimSpace(d.URL.Query().Get(name))
	return v, v != ""
}
