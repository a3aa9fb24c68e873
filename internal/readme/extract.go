// Package readme extracts verified-answer markers from README text.
package readme

import (
	"regexp"
	"strings"
)

// Entry is one verified-answer marker: a title and the repository-relative
// path of the file it points at.
type Entry struct {
	Title string
	Path  string
}

// markerPattern matches one verified-answer marker:
//
//	✅ **Title Here** → `path/to/file.md`
//
// The title and the text between title and arrow are non-greedy, and (?s)
// lets them span line breaks. Fragments missing the checkmark, the bold
// markers or the backtick-wrapped path simply do not match: this is a
// pattern scan, not a validating parser.
var markerPattern = regexp.MustCompile("(?s)✅\\s+\\*\\*(.+?)\\*\\*.*?→\\s*`([^`]+)`")

// ExtractEntries returns every verified-answer entry in text, first to last.
// Text with no markers yields an empty slice.
func ExtractEntries(text string) []Entry {
	matches := markerPattern.FindAllStringSubmatch(text, -1)
	entries := make([]Entry, 0, len(matches))
	for _, m := range matches {
		entries = append(entries, Entry{
			Title: strings.TrimSpace(m[1]),
			Path:  m[2],
		})
	}
	return entries
}
