package onix

import (
	"os"
	"strings"

	"github.com/pkg/errors"
)

// ParseError reports a file whose contents could not be interpreted as an
// ONIX message. It is fatal for the whole file, as opposed to a failure of a
// single product within it. Source carries the sender name when the header
// was readable before the failure.
type ParseError struct {
	Message string
	Source  string
}

func (e *ParseError) Error() string {
	return e.Message
}

// ParseResult is the outcome of parsing one ONIX file: the parsed products in
// document order and the sender name from the message header, when present.
type ParseResult struct {
	Books  []*ParsedBook
	Source string
}

// ParseFile reads and parses one ONIX file. Structural failures (malformed
// XML, missing message root, no products) come back as *ParseError; a read
// failure comes back as a plain wrapped error.
func ParseFile(path string) (*ParseResult, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.WithStack(err)
	}
	return ParseMessage(string(data))
}

// ParseMessage parses the contents of an ONIX message. The root element is
// accepted in any casing, and short-tag, reference-tag, and mixed documents
// are all handled via normalization.
func ParseMessage(content string) (*ParseResult, error) {
	root, err := Parse(content)
	if err != nil {
		return nil, &ParseError{Message: err.Error()}
	}
	if !strings.EqualFold(root.Tag, "ONIXMessage") {
		return nil, &ParseError{Message: "root element not found"}
	}

	doc := Normalize(root)
	source := doc.First("Header").First("Sender").ChildValue("SenderName")

	products := doc.All("Product")
	if len(products) == 0 {
		return nil, &ParseError{Message: "no products found", Source: source}
	}

	result := &ParseResult{Source: source, Books: make([]*ParsedBook, 0, len(products))}
	for _, product := range products {
		result.Books = append(result.Books, ParseProduct(product))
	}
	return result, nil
}
