// Package chunker splits document text into bounded, contiguous passages
// suitable for embedding.
package chunker

import (
	"strings"
	"unicode/utf8"

	"github.com/insyte-labs/insyte-cli/internal/core/domain"
)

// breakSearchFraction bounds how far back from the size limit a natural
// break point may be: only the final 30% of a span is searched, so every
// passage keeps at least 70% of the maximum size.
const breakSearchFraction = 0.7

// Split chunks text into non-overlapping passages of at most maxSize
// bytes, preferring to break at paragraph, sentence, line, then word
// boundaries, with a hard cut when no boundary exists. A hard cut never
// lands inside a multi-byte rune; the only way a passage exceeds maxSize
// is when maxSize is smaller than a single rune. Passages are exact
// substrings: concatenating them reconstructs the input byte for byte.
//
// Whitespace-only input yields no passages. Anything else yields at least
// one; input shorter than maxSize yields exactly one passage covering the
// whole text. StartOffset is filled in; DocumentID, Filename and Ordinal
// are left for the caller.
func Split(text string, maxSize int) []domain.Passage {
	if maxSize <= 0 {
		maxSize = domain.DefaultMaxChunkSize
	}
	if strings.TrimSpace(text) == "" {
		return nil
	}

	var passages []domain.Passage
	pos := 0
	for pos < len(text) {
		end := pos + maxSize
		if end >= len(text) {
			end = len(text)
		} else {
			end = breakPoint(text, pos, end)
		}

		passages = append(passages, domain.Passage{
			StartOffset: pos,
			Text:        text[pos:end],
		})
		pos = end
	}

	return passages
}

// breakPoint finds the best split position in text[start:limit], searching
// only the tail of the span. Preference order: paragraph break, sentence
// end, line break, word break. Falls back to a hard cut at the nearest
// rune boundary at or before the limit.
func breakPoint(text string, start, limit int) int {
	searchStart := start + int(float64(limit-start)*breakSearchFraction)
	window := text[searchStart:limit]

	if idx := strings.LastIndex(window, "\n\n"); idx >= 0 {
		return searchStart + idx + 2
	}

	best := -1
	for _, ending := range []string{". ", "! ", "? ", ".\n", "!\n", "?\n", "。", "！", "？"} {
		if idx := strings.LastIndex(window, ending); idx >= 0 && idx+len(ending) > best {
			best = idx + len(ending)
		}
	}
	if best >= 0 {
		return searchStart + best
	}

	if idx := strings.LastIndex(window, "\n"); idx >= 0 {
		return searchStart + idx + 1
	}
	if idx := strings.LastIndex(window, " "); idx >= 0 {
		return searchStart + idx + 1
	}

	return hardCut(text, start, limit)
}

// hardCut backs the cut position up to a rune boundary so a multi-byte
// character is never split across passages.
func hardCut(text string, start, limit int) int {
	for limit > start && !utf8.RuneStart(text[limit]) {
		limit--
	}
	if limit == start {
		// maxSize is smaller than the rune at start; emit the whole rune.
		_, n := utf8.DecodeRuneInString(text[start:])
		return start + n
	}
	return limit
}
