package menu

import (
	_ "embed"
	"strings"
)

//go:embed sample_guide.md
var sampleGuide string

// SampleGuide parses the embedded Frankfurt sample guide. It is used by the
// CLI when no guide file is given, and by tests that need realistic data.
func SampleGuide() *Guide {
	guide, err := ParseGuide(strings.NewReader(sampleGuide))
	if err != nil {
		// The sample is embedded and known-good
		panic(err)
	}
	return guide
}
