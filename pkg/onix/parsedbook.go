package onix

// ParsedBook is the flat record assembled from one Product element. Every
// field is best-effort: a missing or malformed sub-structure leaves the field
// at its zero value rather than failing the product.
type ParsedBook struct {
	RecordReference string
	ISBN13          string
	ISBN10          string
	Title           string
	Subtitle        string
	Author          string
	Contributors    []string
	Description     string
	Publisher       string
	Imprint         string
	PublicationDate string
	Price           string
	Currency        string
	Genre           string
	Subjects        []string
	Keywords        []string
	PageCount       *int
	ProductForm     string
	CoverImageURL   string
}

// Identifier returns the best available identity for catalog matching, in
// priority order ISBN-13, ISBN-10, record reference. An empty return means
// the record can never match an existing row and is always treated as new.
func (b *ParsedBook) Identifier() string {
	switch {
	case b.ISBN13 != "":
		return b.ISBN13
	case b.ISBN10 != "":
		return b.ISBN10
	default:
		return b.RecordReference
	}
}

// HasIdentity reports whether the record carries any matchable identifier.
func (b *ParsedBook) HasIdentity() bool {
	return b.Identifier() != ""
}
