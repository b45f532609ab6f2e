package label

import "strings"

// Alignment labels for nature-aligned classification.
const (
	Aligned      = 1
	NotAligned   = 0
	Unclassified = -1
)

// Keyword lists are matched against cleaned (lowercased) text.
var alignedKeywords = []string{
	"lightness",
	"clarity",
	"natural energy",
	"deep sleep",
	"satvic",
	"prana",
	"shuddhi",
	"tapas",
	"ahimsa",
	"mother earth",
	"seasonal eating",
	"living food",
	"returning to my roots",
	"new person",
}

var notAlignedKeywords = []string{
	"weight loss",
	"sugar levels",
	"kilograms",
	"science says otherwise",
	"protein deficiency",
	"too expensive",
	"office lunch",
	"society pressure",
	"cant live without tea",
	"can t live without tea",
	"too bland",
}

// Alignment classifies text as nature-aligned (1), not aligned (0), or
// unclassified (-1). Text hitting both keyword lists stays unclassified
// rather than being forced into either bucket.
func Alignment(text string) int {
	v := strings.ToLower(text)

	hasAligned := containsAny(v, alignedKeywords)
	hasNot := containsAny(v, notAlignedKeywords)

	switch {
	case hasAligned && !hasNot:
		return Aligned
	case hasNot && !hasAligned:
		return NotAligned
	default:
		return Unclassified
	}
}

func containsAny(text string, keywords []string) bool {
	for _, k := range keywords {
		if strings.Contains(text, k) {
			return true
		}
	}
	return false
}
