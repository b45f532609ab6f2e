// Package export writes labeled comment tables as per-channel CSV and
// Excel artifacts.
package export

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
	"unicode"
)

// Row is one labeled comment, one line of the output table.
type Row struct {
	VideoTitle     string
	CommentText    string
	CommentDate    string
	LikeCount      int64
	Language       string
	SentimentScore float64
	SentimentLabel string
	NatureAligned  int
}

// columns is the output header, fixed order.
var columns = []string{
	"Video_Title",
	"Comment_Text",
	"Comment_Date",
	"Like_Count",
	"Language_Label",
	"Sentiment_Score",
	"Sentiment_Label",
	"Nature_Aligned",
}

// strings renders a row as CSV fields in column order.
func (r Row) strings() []string {
	return []string{
		r.VideoTitle,
		r.CommentText,
		r.CommentDate,
		strconv.FormatInt(r.LikeCount, 10),
		r.Language,
		strconv.FormatFloat(r.SentimentScore, 'f', -1, 64),
		r.SentimentLabel,
		strconv.Itoa(r.NatureAligned),
	}
}

// values renders a row as cell values for the Excel writer.
func (r Row) values() []interface{} {
	return []interface{}{
		r.VideoTitle,
		r.CommentText,
		r.CommentDate,
		r.LikeCount,
		r.Language,
		r.SentimentScore,
		r.SentimentLabel,
		r.NatureAligned,
	}
}

// TopLiked returns the k most-liked rows, most liked first. Ties keep the
// input order.
func TopLiked(rows []Row, k int) []Row {
	sorted := make([]Row, len(rows))
	copy(sorted, rows)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].LikeCount > sorted[j].LikeCount
	})
	if k > 0 && len(sorted) > k {
		sorted = sorted[:k]
	}
	return sorted
}

// Slug converts a channel name into a filesystem-safe file stem:
// lowercase, runs of non-alphanumerics collapsed to single underscores.
func Slug(name string) string {
	var b strings.Builder
	lastUnderscore := false
	for _, r := range strings.ToLower(strings.TrimSpace(name)) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(r)
			lastUnderscore = false
		} else if !lastUnderscore {
			b.WriteByte('_')
			lastUnderscore = true
		}
	}
	s := strings.Trim(b.String(), "_")
	if s == "" {
		return "channel"
	}
	return s
}

// Artifacts lists the files written for one channel.
type Artifacts struct {
	CSV      string
	TopCSV   string
	Workbook string
}

// WriteChannel writes all artifacts for one channel under dir: the labeled
// table, the top-K most-liked slice, and an Excel workbook carrying both.
func WriteChannel(dir, channelName string, rows []Row, topK int) (Artifacts, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return Artifacts{}, fmt.Errorf("export: create output dir: %w", err)
	}

	slug := Slug(channelName)
	top := TopLiked(rows, topK)

	a := Artifacts{
		CSV:      filepath.Join(dir, slug+".csv"),
		TopCSV:   filepath.Join(dir, fmt.Sprintf("%s_top_%d_liked.csv", slug, topK)),
		Workbook: filepath.Join(dir, slug+".xlsx"),
	}

	if err := WriteCSV(a.CSV, rows); err != nil {
		return Artifacts{}, err
	}
	if err := WriteCSV(a.TopCSV, top); err != nil {
		return Artifacts{}, err
	}
	if err := WriteWorkbook(a.Workbook, rows, top); err != nil {
		return Artifacts{}, err
	}
	return a, nil
}
