package readme

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractEntries_NoMarkers(t *testing.T) {
	text := "# Project\n\nJust a normal README with no markers.\n"
	entries := ExtractEntries(text)
	assert.Empty(t, entries)
}

func TestExtractEntries_EmptyText(t *testing.T) {
	assert.Empty(t, ExtractEntries(""))
}

func TestExtractEntries_PreservesOrder(t *testing.T) {
	text := "✅ **Title A** more text → `path/a.md`\n" +
		"✅ **Title B** → `dir/b.md`\n"

	entries := ExtractEntries(text)
	require.Len(t, entries, 2)
	assert.Equal(t, Entry{Title: "Title A", Path: "path/a.md"}, entries[0])
	assert.Equal(t, Entry{Title: "Title B", Path: "dir/b.md"}, entries[1])
}

func TestExtractEntries_MissingBackticks(t *testing.T) {
	// Path is not wrapped in backticks, so the fragment yields no match.
	text := "✅ **Title** → path/a.md\n"
	assert.Empty(t, ExtractEntries(text))
}

func TestExtractEntries_MissingCheckmark(t *testing.T) {
	text := "**Title** → `path/a.md`\n"
	assert.Empty(t, ExtractEntries(text))
}

func TestExtractEntries_SpansLineBreaks(t *testing.T) {
	// The arrow and path may land on the following line.
	text := "✅ **Wrapped Title** some explanation\n→ `answers/wrapped.md`\n"

	entries := ExtractEntries(text)
	require.Len(t, entries, 1)
	assert.Equal(t, "Wrapped Title", entries[0].Title)
	assert.Equal(t, "answers/wrapped.md", entries[0].Path)
}

func TestExtractEntries_TrimsTitleWhitespace(t *testing.T) {
	text := "✅ ** Padded Title ** → `a.md`"

	entries := ExtractEntries(text)
	require.Len(t, entries, 1)
	assert.Equal(t, "Padded Title", entries[0].Title)
}

func TestExtractEntries_InlineFragment(t *testing.T) {
	// The marker does not have to own the whole line.
	text := "See ✅ **Inline** answer → `inline.md` for details."

	entries := ExtractEntries(text)
	require.Len(t, entries, 1)
	assert.Equal(t, Entry{Title: "Inline", Path: "inline.md"}, entries[0])
}
