package onix

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const referenceMessage = `<?xml version="1.0" encoding="UTF-8"?>
<ONIXMessage release="3.0">
	<Header>
		<Sender>
			<SenderName>APONIX</SenderName>
		</Sender>
	</Header>
	<Product>
		<RecordReference>REC-001</RecordReference>
		<ProductIdentifier>
			<ProductIDType>15</ProductIDType>
			<IDValue>9780000000001</IDValue>
		</ProductIdentifier>
		<DescriptiveDetail>
			<TitleDetail>
				<TitleElement>
					<TitleText>First Book</TitleText>
				</TitleElement>
			</TitleDetail>
		</DescriptiveDetail>
	</Product>
	<Product>
		<RecordReference>REC-002</RecordReference>
		<ProductIdentifier>
			<ProductIDType>15</ProductIDType>
			<IDValue>9780000000002</IDValue>
		</ProductIdentifier>
		<DescriptiveDetail>
			<TitleDetail>
				<TitleElement>
					<TitleText>Second Book</TitleText>
				</TitleElement>
			</TitleDetail>
		</DescriptiveDetail>
	</Product>
</ONIXMessage>`

const shortTagMessage = `<?xml version="1.0" encoding="UTF-8"?>
<onixmessage release="3.0">
	<header>
		<sender>
			<x298>APONIX</x298>
		</sender>
	</header>
	<product>
		<a001>REC-001</a001>
		<productidentifier>
			<b221>15</b221>
			<b244>9780000000001</b244>
		</productidentifier>
		<descriptivedetail>
			<titledetail>
				<titleelement>
					<b203>First Book</b203>
				</titleelement>
			</titledetail>
		</descriptivedetail>
	</product>
	<product>
		<a001>REC-002</a001>
		<productidentifier>
			<b221>15</b221>
			<b244>9780000000002</b244>
		</productidentifier>
		<descriptivedetail>
			<titledetail>
				<titleelement>
					<b203>Second Book</b203>
				</titleelement>
			</titledetail>
		</descriptivedetail>
	</product>
</onixmessage>`

func TestParseMessage(t *testing.T) {
	t.Parallel()

	result, err := ParseMessage(referenceMessage)
	require.NoError(t, err)

	assert.Equal(t, "APONIX", result.Source)
	require.Len(t, result.Books, 2)
	assert.Equal(t, "REC-001", result.Books[0].RecordReference)
	assert.Equal(t, "9780000000001", result.Books[0].ISBN13)
	assert.Equal(t, "First Book", result.Books[0].Title)
	assert.Equal(t, "Second Book", result.Books[1].Title)
}

func TestParseMessage_ShortTagsMatchReferenceTags(t *testing.T) {
	t.Parallel()

	fromReference, err := ParseMessage(referenceMessage)
	require.NoError(t, err)
	fromShort, err := ParseMessage(shortTagMessage)
	require.NoError(t, err)

	assert.Equal(t, fromReference, fromShort)
}

func TestParseMessage_MixedDialects(t *testing.T) {
	t.Parallel()

	result, err := ParseMessage(`<ONIXMessage>
		<Product>
			<a001>REC-001</a001>
			<DescriptiveDetail>
				<titledetail>
					<TitleElement>
						<b203>Mixed Book</b203>
					</TitleElement>
				</titledetail>
			</DescriptiveDetail>
		</Product>
	</ONIXMessage>`)
	require.NoError(t, err)

	require.Len(t, result.Books, 1)
	assert.Equal(t, "REC-001", result.Books[0].RecordReference)
	assert.Equal(t, "Mixed Book", result.Books[0].Title)
}

func TestParseMessage_NoHeader(t *testing.T) {
	t.Parallel()

	result, err := ParseMessage(`<ONIXMessage><Product><RecordReference>R</RecordReference></Product></ONIXMessage>`)
	require.NoError(t, err)
	assert.Empty(t, result.Source)
	require.Len(t, result.Books, 1)
}

func TestParseMessage_MalformedXML(t *testing.T) {
	t.Parallel()

	_, err := ParseMessage(`<ONIXMessage><Product>`)
	require.Error(t, err)

	var parseErr *ParseError
	require.ErrorAs(t, err, &parseErr)
}

func TestParseMessage_Empty(t *testing.T) {
	t.Parallel()

	_, err := ParseMessage("")
	require.Error(t, err)

	var parseErr *ParseError
	require.ErrorAs(t, err, &parseErr)
	assert.Equal(t, "no root element found", parseErr.Message)
}

func TestParseMessage_WrongRoot(t *testing.T) {
	t.Parallel()

	_, err := ParseMessage(`<catalog><Product/></catalog>`)
	require.Error(t, err)

	var parseErr *ParseError
	require.ErrorAs(t, err, &parseErr)
	assert.Equal(t, "root element not found", parseErr.Message)
}

func TestParseMessage_NoProducts(t *testing.T) {
	t.Parallel()

	_, err := ParseMessage(`<ONIXMessage>
		<Header>
			<Sender>
				<SenderName>Ingram</SenderName>
			</Sender>
		</Header>
	</ONIXMessage>`)
	require.Error(t, err)

	var parseErr *ParseError
	require.ErrorAs(t, err, &parseErr)
	assert.Equal(t, "no products found", parseErr.Message)
	assert.Equal(t, "Ingram", parseErr.Source)
}

func TestParseFile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "feed.xml")
	require.NoError(t, os.WriteFile(path, []byte(referenceMessage), 0o644))

	result, err := ParseFile(path)
	require.NoError(t, err)
	assert.Equal(t, "APONIX", result.Source)
	assert.Len(t, result.Books, 2)
}

func TestParseFile_Missing(t *testing.T) {
	t.Parallel()

	_, err := ParseFile(filepath.Join(t.TempDir(), "missing.xml"))
	require.Error(t, err)

	// Read failures are not parse errors.
	var parseErr *ParseError
	assert.False(t, errors.As(err, &parseErr))
}
