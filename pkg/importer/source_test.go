package importer

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDetectSource(t *testing.T) {
	t.Parallel()

	sources := []string{"APONIX", "Hachette", "Ingram"}

	tests := []struct {
		name     string
		filename string
		expected string
	}{
		{
			name:     "exact token",
			filename: "example_APONIX.xml",
			expected: "APONIX",
		},
		{
			name:     "case insensitive",
			filename: "ingram_20260829.xml",
			expected: "Ingram",
		},
		{
			name:     "token mid-filename",
			filename: "2026-08-hachette-delta.xml",
			expected: "Hachette",
		},
		{
			name:     "first configured token wins",
			filename: "APONIX_via_Ingram.xml",
			expected: "APONIX",
		},
		{
			name:     "no match",
			filename: "feed.xml",
			expected: UnknownSource,
		},
		{
			name:     "empty filename",
			filename: "",
			expected: UnknownSource,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.expected, DetectSource(tt.filename, sources))
		})
	}
}

func TestDetectSource_NoSources(t *testing.T) {
	t.Parallel()
	assert.Equal(t, UnknownSource, DetectSource("example_APONIX.xml", nil))
}
