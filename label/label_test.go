package label

import "testing"

func TestClean(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"empty", "", ""},
		{"lowercases", "GREAT Video", "great video"},
		{"strips url", "watch this https://youtu.be/abc123 now", "watch this now"},
		{"strips www url", "see www.example.com/page for more", "see for more"},
		{"strips emoji", "loved it \U0001F60D\U0001F525", "loved it"},
		{"strips punctuation", "wow!!! so good...", "wow so good"},
		{"keeps digits", "lost 5 kgs in 30 days", "lost 5 kgs in 30 days"},
		{"keeps devanagari", "बहुत अच्छा video", "बहुत अच्छा video"},
		{"collapses whitespace", "too   many\t\tspaces\n\nhere", "too many spaces here"},
		{"trims", "  padded  ", "padded"},
		{"only symbols", "!!! ??? ***", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Clean(tt.in); got != tt.want {
				t.Errorf("Clean(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestLanguage(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"empty", "", "English"},
		{"whitespace only", "   ", "English"},
		{"english sentence", "this video completely changed how i eat", "English"},
		{"hindi sentence", "यह वीडियो बहुत अच्छा है मैंने बहुत कुछ सीखा", "Hindi"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Language(tt.in); got != tt.want {
				t.Errorf("Language(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestSentimentLabel(t *testing.T) {
	tests := []struct {
		score float64
		want  string
	}{
		{0.9, "Positive"},
		{0.05, "Positive"},
		{0.049, "Neutral"},
		{0, "Neutral"},
		{-0.049, "Neutral"},
		{-0.05, "Negative"},
		{-0.9, "Negative"},
	}

	for _, tt := range tests {
		if got := SentimentLabel(tt.score); got != tt.want {
			t.Errorf("SentimentLabel(%v) = %q, want %q", tt.score, got, tt.want)
		}
	}
}

func TestSentimentScore(t *testing.T) {
	l := NewLabeler()

	pos := l.SentimentScore("this is wonderful, i love it, absolutely amazing")
	if pos <= 0 {
		t.Errorf("positive text scored %v, want > 0", pos)
	}

	neg := l.SentimentScore("this is terrible, i hate it, absolutely awful")
	if neg >= 0 {
		t.Errorf("negative text scored %v, want < 0", neg)
	}

	if s := l.SentimentScore(""); s != 0 {
		t.Errorf("empty text scored %v, want 0", s)
	}
}

func TestAlignment(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want int
	}{
		{"aligned keyword", "i feel so much lightness after switching", Aligned},
		{"aligned phrase", "finally returning to my roots with this diet", Aligned},
		{"not aligned keyword", "only doing this for weight loss honestly", NotAligned},
		{"not aligned phrase", "my sugar levels dropped a lot", NotAligned},
		{"both buckets", "so much clarity but it is too expensive for me", Unclassified},
		{"neither bucket", "nice video keep it up", Unclassified},
		{"empty", "", Unclassified},
		{"case insensitive", "PRANA flows differently now", Aligned},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Alignment(tt.in); got != tt.want {
				t.Errorf("Alignment(%q) = %d, want %d", tt.in, got, tt.want)
			}
		})
	}
}
