package onix

import (
	"encoding/xml"
	"io"
	"strings"

	"github.com/pkg/errors"
)

var errNoRootElement = errors.New("no root element found")

// Element is one node of a parsed ONIX document tree. An element's own
// attributes live alongside its children, so extractors can treat both
// uniformly.
type Element struct {
	Tag        string
	Attributes map[string]string
	Text       string
	Children   []*Element
}

// Parse parses an XML document into an Element tree. Character data is
// trimmed of surrounding whitespace.
func Parse(content string) (*Element, error) {
	decoder := xml.NewDecoder(strings.NewReader(content))
	var root *Element
	var stack []*Element

	for {
		tok, err := decoder.Token()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, errors.Wrap(err, "xml parse error")
		}

		switch t := tok.(type) {
		case xml.StartElement:
			elem := &Element{Tag: t.Name.Local}
			if len(t.Attr) > 0 {
				elem.Attributes = make(map[string]string, len(t.Attr))
				for _, attr := range t.Attr {
					elem.Attributes[attr.Name.Local] = attr.Value
				}
			}

			if len(stack) > 0 {
				parent := stack[len(stack)-1]
				parent.Children = append(parent.Children, elem)
			} else {
				root = elem
			}
			stack = append(stack, elem)

		case xml.EndElement:
			if len(stack) > 0 {
				current := stack[len(stack)-1]
				current.Text = strings.TrimSpace(current.Text)
				stack = stack[:len(stack)-1]
			}

		case xml.CharData:
			if len(stack) > 0 {
				current := stack[len(stack)-1]
				current.Text += string(t)
			}
		}
	}

	if root == nil {
		return nil, errNoRootElement
	}

	return root, nil
}

// First returns the first direct child with the given tag, matched
// case-insensitively. Safe to call on a nil receiver.
func (e *Element) First(tag string) *Element {
	if e == nil {
		return nil
	}
	for _, child := range e.Children {
		if strings.EqualFold(child.Tag, tag) {
			return child
		}
	}
	return nil
}

// All returns every direct child with the given tag, in document order.
func (e *Element) All(tag string) []*Element {
	if e == nil {
		return nil
	}
	var matches []*Element
	for _, child := range e.Children {
		if strings.EqualFold(child.Tag, tag) {
			matches = append(matches, child)
		}
	}
	return matches
}

// Value returns the element's trimmed text content, or "" for a nil element.
func (e *Element) Value() string {
	if e == nil {
		return ""
	}
	return strings.TrimSpace(e.Text)
}

// ChildValue returns the text content of the first child with the given tag.
func (e *Element) ChildValue(tag string) string {
	return e.First(tag).Value()
}
