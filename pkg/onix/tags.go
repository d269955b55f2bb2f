package onix

// referenceTags maps ONIX 3.0 short tags (lowercased) to their reference-tag
// equivalents. Composite elements use their lowercased reference name as the
// short form, so reference-tag documents pass through this table unchanged
// apart from canonical capitalization. Only the subset of the vocabulary this
// pipeline reads is listed; unmapped tags pass through as-is.
var referenceTags = map[string]string{
	"onixmessage": "ONIXMessage",

	// Message header
	"header": "Header",
	"sender": "Sender",
	"x298":   "SenderName",
	"x307":   "SentDateTime",

	// Product and identifiers
	"product":           "Product",
	"a001":              "RecordReference",
	"a002":              "NotificationType",
	"productidentifier": "ProductIdentifier",
	"b221":              "ProductIDType",
	"b244":              "IDValue",

	// Descriptive detail
	"descriptivedetail": "DescriptiveDetail",
	"b012":              "ProductForm",
	"titledetail":       "TitleDetail",
	"b202":              "TitleType",
	"titleelement":      "TitleElement",
	"x409":              "TitleElementLevel",
	"b030":              "TitlePrefix",
	"b031":              "TitleWithoutPrefix",
	"b203":              "TitleText",
	"b029":              "Subtitle",
	"contributor":       "Contributor",
	"b034":              "SequenceNumber",
	"b035":              "ContributorRole",
	"b036":              "PersonName",
	"b037":              "PersonNameInverted",
	"b039":              "NamesBeforeKey",
	"b040":              "KeyNames",
	"language":          "Language",
	"b253":              "LanguageRole",
	"b252":              "LanguageCode",
	"subject":           "Subject",
	"x425":              "MainSubject",
	"b067":              "SubjectSchemeIdentifier",
	"b069":              "SubjectCode",
	"b070":              "SubjectHeadingText",
	"extent":            "Extent",
	"b218":              "ExtentType",
	"b219":              "ExtentValue",
	"b220":              "ExtentUnit",

	// Collateral detail
	"collateraldetail":   "CollateralDetail",
	"textcontent":        "TextContent",
	"x426":               "TextType",
	"x427":               "ContentAudience",
	"d104":               "Text",
	"supportingresource": "SupportingResource",
	"x436":               "ResourceContentType",
	"x437":               "ResourceMode",
	"resourceversion":    "ResourceVersion",
	"x441":               "ResourceForm",
	"x435":               "ResourceLink",

	// Publishing detail
	"publishingdetail": "PublishingDetail",
	"imprint":          "Imprint",
	"b079":             "ImprintName",
	"publisher":        "Publisher",
	"b291":             "PublishingRole",
	"b081":             "PublisherName",
	"publishingdate":   "PublishingDate",
	"x448":             "PublishingDateRole",
	"b306":             "Date",

	// Supply
	"productsupply": "ProductSupply",
	"supplydetail":  "SupplyDetail",
	"price":         "Price",
	"x462":          "PriceType",
	"j151":          "PriceAmount",
	"j152":          "CurrencyCode",
}
