package label

import (
	"strings"

	"github.com/RadhiFadlillah/whatlanggo"
)

// Language labels comment text as "Hindi" or "English". The corpus is
// bilingual; anything that is not detected as Hindi, including empty or
// undetectable text, is labeled English.
func Language(text string) string {
	v := strings.TrimSpace(text)
	if v == "" {
		return "English"
	}
	info := whatlanggo.Detect(v)
	if info.Lang == whatlanggo.Hin {
		return "Hindi"
	}
	return "English"
}
