package onix

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalize_ShortTags(t *testing.T) {
	t.Parallel()

	root, err := Parse(`<product><a001>REC-001</a001><b012>BC</b012></product>`)
	require.NoError(t, err)

	out := Normalize(root)
	assert.Equal(t, "Product", out.Tag)
	require.Len(t, out.Children, 2)
	assert.Equal(t, "RecordReference", out.Children[0].Tag)
	assert.Equal(t, "REC-001", out.Children[0].Text)
	assert.Equal(t, "ProductForm", out.Children[1].Tag)
}

func TestNormalize_CaseInsensitive(t *testing.T) {
	t.Parallel()

	root, err := Parse(`<PRODUCT><A001>REC-001</A001></PRODUCT>`)
	require.NoError(t, err)

	out := Normalize(root)
	assert.Equal(t, "Product", out.Tag)
	assert.Equal(t, "RecordReference", out.Children[0].Tag)
}

func TestNormalize_UnmappedTagsPassThrough(t *testing.T) {
	t.Parallel()

	root, err := Parse(`<product><CustomTag attr="x">v</CustomTag></product>`)
	require.NoError(t, err)

	out := Normalize(root)
	require.Len(t, out.Children, 1)
	assert.Equal(t, "CustomTag", out.Children[0].Tag)
	assert.Equal(t, "x", out.Children[0].Attributes["attr"])
}

func TestNormalize_DoesNotMutateInput(t *testing.T) {
	t.Parallel()

	root, err := Parse(`<product><a001>REC-001</a001></product>`)
	require.NoError(t, err)

	_ = Normalize(root)
	assert.Equal(t, "product", root.Tag)
	assert.Equal(t, "a001", root.Children[0].Tag)
}

func TestNormalize_Idempotent(t *testing.T) {
	t.Parallel()

	root, err := Parse(`<product><a001>REC-001</a001></product>`)
	require.NoError(t, err)

	once := Normalize(root)
	twice := Normalize(once)
	assert.Equal(t, once, twice)
}

func TestNormalize_Nil(t *testing.T) {
	t.Parallel()
	assert.Nil(t, Normalize(nil))
}
