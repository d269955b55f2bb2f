package onix

import (
	"strconv"
	"strings"

	"github.com/binderyapp/bindery/pkg/htmlutil"
)

// ONIX code list values the extractors care about.
const (
	idTypeISBN10  = "02"
	idTypeISBN13  = "03"
	idTypeISBN13A = "15" // ISBN-13 carried as GTIN-13

	roleAuthor = "A01"

	textTypeShortDescription = "02"
	textTypeDescription      = "03"

	resourceTypeFrontCover = "01"

	dateRolePublication = "01"

	schemeBIC      = "12"
	schemeBISAC    = "10"
	schemeKeywords = "20"

	extentTypeMainContent      = "00"
	extentTypeMainContentCount = "10"
)

// extractIdentifiers scans the product's identifier composites. Type code 03
// or 15 sets the ISBN-13, type code 02 the ISBN-10; a repeated type code
// overwrites the earlier value.
func extractIdentifiers(product *Element) (isbn13, isbn10 string) {
	for _, id := range product.All("ProductIdentifier") {
		value := id.ChildValue("IDValue")
		if value == "" {
			continue
		}
		switch id.ChildValue("ProductIDType") {
		case idTypeISBN13, idTypeISBN13A:
			isbn13 = value
		case idTypeISBN10:
			isbn10 = value
		}
	}
	return isbn13, isbn10
}

// extractTitle reads the first title element of the first title composite. A
// title prefix, when present, is joined to the without-prefix form with a
// single space.
func extractTitle(desc *Element) (title, subtitle string) {
	elem := desc.First("TitleDetail").First("TitleElement")
	if elem == nil {
		return "", ""
	}

	subtitle = elem.ChildValue("Subtitle")

	withoutPrefix := elem.ChildValue("TitleWithoutPrefix")
	if withoutPrefix == "" {
		return elem.ChildValue("TitleText"), subtitle
	}
	if prefix := elem.ChildValue("TitlePrefix"); prefix != "" {
		return prefix + " " + withoutPrefix, subtitle
	}
	return withoutPrefix, subtitle
}

// extractContributors collects every resolvable person name in document
// order. The first contributor with role A01 becomes the primary author; if
// no A01 contributor exists the author stays empty even when other
// contributors are present.
func extractContributors(desc *Element) (author string, contributors []string) {
	for _, c := range desc.All("Contributor") {
		name := contributorName(c)
		if name == "" {
			continue
		}
		contributors = append(contributors, name)
		if author == "" && c.ChildValue("ContributorRole") == roleAuthor {
			author = name
		}
	}
	return author, contributors
}

func contributorName(c *Element) string {
	if name := c.ChildValue("PersonName"); name != "" {
		return name
	}
	if name := c.ChildValue("PersonNameInverted"); name != "" {
		return name
	}
	before := c.ChildValue("NamesBeforeKey")
	key := c.ChildValue("KeyNames")
	if before != "" && key != "" {
		return before + " " + key
	}
	return key
}

// extractDescription returns the first long (03) or short (02) text block in
// document order, with HTML stripped and whitespace collapsed.
func extractDescription(collateral *Element) string {
	for _, tc := range collateral.All("TextContent") {
		switch tc.ChildValue("TextType") {
		case textTypeDescription, textTypeShortDescription:
			return htmlutil.StripTags(tc.ChildValue("Text"))
		}
	}
	return ""
}

// extractCoverImage returns the first front-cover resource link.
func extractCoverImage(collateral *Element) string {
	for _, sr := range collateral.All("SupportingResource") {
		if sr.ChildValue("ResourceContentType") != resourceTypeFrontCover {
			continue
		}
		if link := sr.First("ResourceVersion").ChildValue("ResourceLink"); link != "" {
			return link
		}
	}
	return ""
}

// extractPublishing reads publisher and imprint names and the publication
// date. Only the publication date role counts; embargo, announcement, and
// other roles are ignored.
func extractPublishing(pub *Element) (publisher, imprint, pubDate string) {
	publisher = pub.First("Publisher").ChildValue("PublisherName")
	imprint = pub.First("Imprint").ChildValue("ImprintName")

	for _, pd := range pub.All("PublishingDate") {
		if pd.ChildValue("PublishingDateRole") != dateRolePublication {
			continue
		}
		if date := pd.ChildValue("Date"); date != "" {
			return publisher, imprint, date
		}
	}
	return publisher, imprint, ""
}

// extractPrice reads the first price of the first supply detail block. Amount
// and currency combine into one display string when both are present.
func extractPrice(product *Element) (display, currency string) {
	price := product.First("ProductSupply").First("SupplyDetail").First("Price")
	if price == nil {
		return "", ""
	}

	amount := price.ChildValue("PriceAmount")
	currency = price.ChildValue("CurrencyCode")
	if amount == "" {
		return "", currency
	}
	if currency != "" {
		return amount + " " + currency, currency
	}
	return amount, ""
}

// extractSubjects classifies each subject composite by scheme. Scheme 20
// (keywords) entries are split on ";"; the first BIC (12) or BISAC (10)
// subject becomes the genre. Every subject's text accumulates into the
// subjects list regardless of scheme.
func extractSubjects(desc *Element) (genre string, subjects, keywords []string) {
	for _, s := range desc.All("Subject") {
		text := s.ChildValue("SubjectHeadingText")
		if text == "" {
			text = s.ChildValue("SubjectCode")
		}
		if text == "" {
			continue
		}

		subjects = append(subjects, text)

		switch s.ChildValue("SubjectSchemeIdentifier") {
		case schemeKeywords:
			for _, kw := range strings.Split(text, ";") {
				if kw = strings.TrimSpace(kw); kw != "" {
					keywords = append(keywords, kw)
				}
			}
		case schemeBIC, schemeBISAC:
			if genre == "" {
				genre = text
			}
		}
	}
	return genre, subjects, keywords
}

// extractPageCount reads the first main-content extent (type 00 or 10). A
// value that does not parse as an integer yields no page count.
func extractPageCount(desc *Element) *int {
	for _, ext := range desc.All("Extent") {
		switch ext.ChildValue("ExtentType") {
		case extentTypeMainContent, extentTypeMainContentCount:
			n, err := strconv.Atoi(ext.ChildValue("ExtentValue"))
			if err != nil {
				return nil
			}
			return &n
		}
	}
	return nil
}
