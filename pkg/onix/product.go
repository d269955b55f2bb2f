package onix

// ParseProduct normalizes one product node and assembles a ParsedBook from
// it. No field is mandatory: a product yielding neither identity nor title is
// still returned, and deciding what to do with it is the importer's job.
func ParseProduct(product *Element) *ParsedBook {
	p := Normalize(product)

	desc := p.First("DescriptiveDetail")
	collateral := p.First("CollateralDetail")
	publishing := p.First("PublishingDetail")

	book := &ParsedBook{
		RecordReference: p.ChildValue("RecordReference"),
		ProductForm:     desc.ChildValue("ProductForm"),
		Description:     extractDescription(collateral),
		CoverImageURL:   extractCoverImage(collateral),
		PageCount:       extractPageCount(desc),
	}

	book.ISBN13, book.ISBN10 = extractIdentifiers(p)
	book.Title, book.Subtitle = extractTitle(desc)
	book.Author, book.Contributors = extractContributors(desc)
	book.Publisher, book.Imprint, book.PublicationDate = extractPublishing(publishing)
	book.Price, book.Currency = extractPrice(p)
	book.Genre, book.Subjects, book.Keywords = extractSubjects(desc)

	return book
}
