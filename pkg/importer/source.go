package importer

import "strings"

// UnknownSource is reported when a filename matches none of the configured
// source tokens and the file carries no sender name.
const UnknownSource = "Unknown"

// DetectSource matches the filename against the known publisher/feed tokens,
// case-insensitively. First configured token wins.
func DetectSource(filename string, sources []string) string {
	lower := strings.ToLower(filename)
	for _, source := range sources {
		if strings.Contains(lower, strings.ToLower(source)) {
			return source
		}
	}
	return UnknownSource
}
