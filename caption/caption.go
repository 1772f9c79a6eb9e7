// Package caption detects figure captions in reconstructed text lines.
//
// A caption is a line beginning with "Figure" or "Fig" (optionally followed
// by a period), whitespace, then one or more digits. Matching is
// case-insensitive and the resulting label is always normalized to the long
// form "Figure <N>" regardless of which variant appeared in the document.
package caption

import (
	"fmt"
	"regexp"
	"strconv"

	"github.com/RobbieRao/figcrop/layout"
)

// captionPattern matches caption lines such as "Figure 3: results",
// "Fig. 3" or "FIGURE.3". The first capture group is the figure number.
var captionPattern = regexp.MustCompile(`(?i)^\s*fig(?:ure)?\.?\s*(\d+)`)

// Match is a line identified as a figure caption.
type Match struct {
	// Line is the caption line itself.
	Line layout.Line

	// Index is the figure number parsed from the caption (positive).
	Index int

	// Label is the normalized caption label, always "Figure <N>".
	Label string
}

// Detect returns a match for every caption line in the sequence, in line
// order. Lines that are not captions are ignored; a page with no captions
// yields an empty result, which is not an error.
func Detect(lines []layout.Line) []Match {
	var matches []Match
	for _, line := range lines {
		m, ok := matchLine(line)
		if !ok {
			continue
		}
		matches = append(matches, m)
	}
	return matches
}

// matchLine tests a single line against the caption pattern.
func matchLine(line layout.Line) (Match, bool) {
	groups := captionPattern.FindStringSubmatch(line.Text)
	if groups == nil {
		return Match{}, false
	}
	index, err := strconv.Atoi(groups[1])
	if err != nil || index <= 0 {
		// \d+ can still overflow or parse to zero ("Figure 0").
		return Match{}, false
	}
	return Match{
		Line:  line,
		Index: index,
		Label: fmt.Sprintf("Figure %d", index),
	}, true
}
